package di

// Provider produces a value for one resolution of a token.
//
// The four kinds differ in when they run:
//
//   - Constant: never runs, returns a fixed value
//   - Eager: runs once at Register time, memoized
//   - Transient: runs on every resolution, builds an instance from
//     dependencies resolved through the Invocation
//   - Dynamic: runs on every resolution with the live request context;
//     its result is returned verbatim, so a returned Deferred is handed to
//     the caller rather than invoked
type Provider interface {
	provide(inv Invocation) (any, error)
	kind() string
}

// ProviderFunc is the signature shared by per-request providers. fn
// receives the Invocation bound to the current request node and may
// resolve dependencies or snapshot the active qualifier through it.
type ProviderFunc func(inv Invocation) (any, error)

type constantProvider struct{ value any }

func (p constantProvider) provide(Invocation) (any, error) { return p.value, nil }
func (p constantProvider) kind() string                    { return "constant" }

// Constant binds a fixed value.
func Constant(value any) Binding {
	return Binding{provider: constantProvider{value: value}}
}

// eagerProvider memoizes its function's result at Register time.
type eagerProvider struct {
	fn    func() (any, error)
	value any
}

func (p *eagerProvider) provide(Invocation) (any, error) { return p.value, nil }
func (p *eagerProvider) kind() string                    { return "eager" }

// materialize runs the eager function once. Called by Register, so a
// failing eager provider surfaces at setup rather than at resolution.
func (p *eagerProvider) materialize() error {
	v, err := p.fn()
	if err != nil {
		return err
	}
	p.value = v
	p.fn = nil
	return nil
}

// Eager binds a function invoked once when the binding is registered; the
// memoized result is returned on every resolution.
func Eager(fn func() (any, error)) Binding {
	if fn == nil {
		return Binding{}
	}
	return Binding{provider: &eagerProvider{fn: fn}}
}

type transientProvider struct{ fn ProviderFunc }

func (p transientProvider) provide(inv Invocation) (any, error) { return p.fn(inv) }
func (p transientProvider) kind() string                        { return "transient" }

// Transient binds a per-request constructor. fn runs on every resolution
// and resolves its dependencies through inv, which parents child lookups
// at the current request node so qualifiers propagate down.
func Transient(fn ProviderFunc) Binding {
	if fn == nil {
		return Binding{}
	}
	return Binding{provider: transientProvider{fn: fn}}
}

type dynamicProvider struct{ fn ProviderFunc }

func (p dynamicProvider) provide(inv Invocation) (any, error) { return p.fn(inv) }
func (p dynamicProvider) kind() string                        { return "dynamic" }

// Dynamic binds a context-sensitive provider. fn runs fresh on every
// resolution; nothing about a previous invocation (in particular the
// qualifier it saw) is carried over. A Deferred returned by fn is passed
// to the caller uninvoked.
func Dynamic(fn ProviderFunc) Binding {
	if fn == nil {
		return Binding{}
	}
	return Binding{provider: dynamicProvider{fn: fn}}
}
