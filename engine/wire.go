package engine

import "github.com/sghaida/qdi/di"

// Tokens resolved by the engine wiring.
const (
	// TokenEngine resolves to a *Engine.
	TokenEngine di.Token = "engine"

	// TokenOptions resolves to an Options value; bound per qualifier.
	TokenOptions di.Token = "engine.options"

	// TokenOptionsFactory resolves to a di.Deferred over TokenOptions.
	TokenOptionsFactory di.Token = "engine.options.factory"
)

// RegisterOptions binds one named options variant.
func RegisterOptions(k *di.Kernel, name string, opts Options) error {
	return k.Register(TokenOptions, di.Constant(opts).WhenNamed(name))
}

// RegisterFactory binds the factory indirection: a dynamic provider that
// snapshots the qualifier active at provider time and defers the options
// lookup behind it. The Deferred is returned uninvoked; whoever receives it
// calls it later and still lands on the snapshotted name.
func RegisterFactory(k *di.Kernel) error {
	return k.Register(TokenOptionsFactory, di.Dynamic(func(inv di.Invocation) (any, error) {
		return inv.Defer(TokenOptions), nil
	}))
}

// RegisterEngine binds the engine constructor. The factory dependency is
// resolved through a child request node, so the engine inherits the
// qualifier of whichever named resolution asked for it.
func RegisterEngine(k *di.Kernel) error {
	return k.Register(TokenEngine, di.Transient(func(inv di.Invocation) (any, error) {
		raw, err := inv.Resolve(TokenOptionsFactory)
		if err != nil {
			return nil, err
		}
		deferred, ok := raw.(di.Deferred)
		if !ok {
			return nil, di.WrongTypeBindingError{Token: TokenOptionsFactory, GotType: typeName(raw)}
		}
		return New(func() (di.Result, error) {
			return di.Indirect(deferred.Call), nil
		})
	}))
}

// Install registers the full engine graph: every preset as a named options
// binding, the factory indirection, and the engine constructor.
func Install(k *di.Kernel, presets map[string]Options) error {
	if err := RegisterPresets(k, presets); err != nil {
		return err
	}
	if err := RegisterFactory(k); err != nil {
		return err
	}
	return RegisterEngine(k)
}
