package di

// Token identifies an abstraction to resolve.
//
// Tokens are opaque: bindings are matched by equality, never by structure.
// Tokens are typically defined as package-level constants to avoid typos.
//
// Example:
//
//	const (
//	  TokenOptions di.Token = "engine.options"
//	  TokenEngine  di.Token = "engine"
//	)
type Token string

// Tok converts a string into a Token.
//
// This is a small convenience for defining tokens (often as constants).
func Tok(name string) Token { return Token(name) }
