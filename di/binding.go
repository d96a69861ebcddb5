package di

// Binding pairs a provider with an optional qualifier predicate.
//
// A binding without a predicate applies to every request for its token; a
// binding restricted with WhenNamed applies only when the request resolves
// under exactly that name. Bindings are plain values created via Constant,
// Eager, Transient or Dynamic and handed to (*Kernel).Register.
type Binding struct {
	name     string
	named    bool
	provider Provider
}

// WhenNamed restricts the binding to requests whose nearest qualifier
// equals name.
func (b Binding) WhenNamed(name string) Binding {
	b.name = name
	b.named = true
	return b
}

// Named returns the binding's qualifier restriction, if any.
func (b Binding) Named() (string, bool) { return b.name, b.named }
