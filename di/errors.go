package di

import (
	"errors"
	"strconv"
)

var (
	// ErrFrozenKernel is returned when Register is called after the first
	// resolution. The kernel freezes on first Get/GetNamed so that shared,
	// concurrent reads never race a registration.
	ErrFrozenKernel = errors.New("di: kernel is frozen after first resolution")

	// ErrNilProvider is returned when a binding is registered without a
	// provider (a zero Binding, or Eager/Transient/Dynamic given a nil func).
	ErrNilProvider = errors.New("di: nil provider")

	// ErrProviderPanic is returned if a provider panics during resolution.
	ErrProviderPanic = errors.New("di: panic during provider invocation")
)

// UnqualifiedRequestError is returned when a token has only named bindings
// and no qualifier is found anywhere in the request's ancestor chain.
type UnqualifiedRequestError struct{ Token Token }

// Error implements the error interface.
func (e UnqualifiedRequestError) Error() string {
	// Example: di: token "engine.options" requires a qualifier and none was found
	return "di: token " + strconv.Quote(string(e.Token)) + " requires a qualifier and none was found"
}

// NoMatchingBindingError is returned when no registered binding matches the
// (token, qualifier) pair of a request.
type NoMatchingBindingError struct {
	// Token is the token requested.
	Token Token

	// Qualifier is the qualifier in effect for the request, if any.
	Qualifier string

	// Named reports whether a qualifier was in effect.
	Named bool
}

// Error implements the error interface.
func (e NoMatchingBindingError) Error() string {
	// Example: di: no binding for token "engine.options" named "SEAT"
	if e.Named {
		return "di: no binding for token " + strconv.Quote(string(e.Token)) + " named " + strconv.Quote(e.Qualifier)
	}
	return "di: no binding for token " + strconv.Quote(string(e.Token))
}

// AmbiguousBindingError is returned when more than one binding matches in
// the winning tier (two unconditional bindings for an unqualified request,
// or two bindings registered under the same name). It indicates a setup
// bug and is never retried.
type AmbiguousBindingError struct {
	Token Token

	// Matches is the number of bindings that matched.
	Matches int
}

// Error implements the error interface.
func (e AmbiguousBindingError) Error() string {
	// Example: di: ambiguous bindings for token "engine" (2 matches)
	return "di: ambiguous bindings for token " + strconv.Quote(string(e.Token)) +
		" (" + strconv.Itoa(e.Matches) + " matches)"
}

// WrongTypeBindingError is returned by the typed accessors when a token
// resolves but the bound value is not the requested type.
type WrongTypeBindingError struct {
	// Token is the token requested.
	Token Token

	// GotType is reflect.TypeOf(raw).String() for the resolved value.
	GotType string
}

// Error implements the error interface.
func (e WrongTypeBindingError) Error() string {
	// Example: di: token "engine" resolved to wrong type (*engine.Options)
	return "di: token " + strconv.Quote(string(e.Token)) + " resolved to wrong type (" + e.GotType + ")"
}
