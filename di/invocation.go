package di

// Invocation is the evaluation context handed to Transient and Dynamic
// providers. It is bound to the request node that triggered the provider
// and is only valid for the duration of that provider call. Providers that
// hand values to later callers must not capture the Invocation; they
// snapshot what they need via Defer instead.
type Invocation struct {
	kernel *Kernel
	node   *request
}

// Token returns the token of the current request node.
func (inv Invocation) Token() Token { return inv.node.token }

// Qualifier returns the nearest qualifier in the live request chain. It
// re-walks the chain on every call.
func (inv Invocation) Qualifier() (string, bool) { return inv.node.qualifier() }

// Resolve looks up a dependency through a child request node parented at
// the current node, so the nearest-qualifier walk passes through it.
func (inv Invocation) Resolve(token Token) (any, error) {
	return inv.kernel.resolve(inv.node.child(token))
}

// ResolveNamed looks up a dependency under an explicit qualifier, shadowing
// any qualifier above the current node for that subtree.
func (inv Invocation) ResolveNamed(token Token, name string) (any, error) {
	return inv.kernel.resolve(inv.node.namedChild(token, name))
}

// Defer snapshots the current qualifier by value and returns a Deferred
// that resolves token later as a fresh top-level request under that
// snapshot. The request node itself is never captured, so a retained
// Deferred cannot observe the context of a later, unrelated resolution.
func (inv Invocation) Defer(token Token) Deferred {
	name, named := inv.node.qualifier()
	return Deferred{kernel: inv.kernel, token: token, name: name, named: named}
}

// Deferred is a pending lookup carrying a by-value qualifier snapshot taken
// when it was created. Call may run any number of times; each run is an
// independent resolution against the kernel with its own request chain.
type Deferred struct {
	kernel *Kernel
	token  Token
	name   string
	named  bool
}

// Call performs the deferred resolution.
func (d Deferred) Call() (any, error) {
	if d.named {
		return d.kernel.GetNamed(d.token, d.name)
	}
	return d.kernel.Get(d.token)
}

// Token returns the token the Deferred resolves.
func (d Deferred) Token() Token { return d.token }

// Qualifier returns the snapshot taken when the Deferred was created.
func (d Deferred) Qualifier() (string, bool) { return d.name, d.named }
