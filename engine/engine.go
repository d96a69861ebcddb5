// Package engine provides the sample consumer resolved through the kernel:
// a component constructed from a factory that may add one level of
// indirection before yielding its options.
package engine

import (
	"errors"
	"reflect"

	"github.com/sghaida/qdi/di"
)

// Options is the engine configuration produced per qualifier.
type Options struct {
	Make     string   `yaml:"make"`
	TorqueNM int      `yaml:"torque_nm"`
	CostUSD  int      `yaml:"cost_usd"`
	Features []string `yaml:"features"`
}

// clone returns a copy whose slice storage is independent of the original.
func (o Options) clone() Options {
	cp := o
	if len(o.Features) > 0 {
		cp.Features = make([]string, len(o.Features))
		copy(cp.Features, o.Features)
	}
	return cp
}

// Factory produces the engine configuration, possibly behind one more
// resolution step.
type Factory func() (di.Result, error)

// ErrNilFactory is returned when New is called without a factory.
var ErrNilFactory = errors.New("engine: nil options factory")

// NarrowingError is returned when a factory result is neither terminal
// Options nor an indirect step that yields Options.
type NarrowingError struct {
	// GotType is the type of the value that failed to narrow.
	GotType string
}

// Error implements the error interface.
func (e NarrowingError) Error() string {
	// Example: engine: factory result is not engine options (string)
	return "engine: factory result is not engine options (" + e.GotType + ")"
}

// Engine holds a configuration fixed at construction. There is no state
// beyond that: construction either configures the engine or fails.
type Engine struct {
	opts Options
}

// New invokes factory exactly once and narrows its result: a terminal
// value must already be Options; an indirect result is invoked once more
// and must then be Options. Errors from the factory or the indirect step
// propagate as-is; anything else fails with NarrowingError.
func New(factory Factory) (*Engine, error) {
	if factory == nil {
		return nil, ErrNilFactory
	}

	res, err := factory()
	if err != nil {
		return nil, err
	}

	if raw, ok := res.Value(); ok {
		opts, ok := raw.(Options)
		if !ok {
			return nil, NarrowingError{GotType: typeName(raw)}
		}
		return &Engine{opts: opts.clone()}, nil
	}

	next, ok := res.Next()
	if !ok {
		return nil, NarrowingError{GotType: "<empty result>"}
	}

	raw, err := next()
	if err != nil {
		return nil, err
	}
	opts, ok := raw.(Options)
	if !ok {
		return nil, NarrowingError{GotType: typeName(raw)}
	}
	return &Engine{opts: opts.clone()}, nil
}

// Options returns a defensive copy of the engine configuration. Mutating
// the returned value, including its Features slice, does not affect the
// engine's own state.
func (e *Engine) Options() Options { return e.opts.clone() }

func typeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
