package di

// Result is the discriminated outcome of a factory invocation: either a
// terminal value or one more resolution step. Consumers branch on the tag
// instead of probing whether a value happens to be callable.
type Result struct {
	value    any
	next     func() (any, error)
	terminal bool
}

// Terminal wraps a final value.
func Terminal(value any) Result { return Result{value: value, terminal: true} }

// Indirect wraps one more resolution step, typically a Deferred's Call.
func Indirect(next func() (any, error)) Result { return Result{next: next} }

// Value returns the terminal value if the Result is terminal.
func (r Result) Value() (any, bool) { return r.value, r.terminal }

// Next returns the pending step if the Result is indirect.
func (r Result) Next() (func() (any, error), bool) { return r.next, r.next != nil }
