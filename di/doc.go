// Package di provides a small dependency resolution kernel with named
// qualifiers and factory-indirected bindings.
//
// A Kernel stores bindings keyed by Token. A binding is unconditional or
// restricted to a qualifier via WhenNamed; resolution picks the exact-name
// match first and falls back to the unconditional binding. Each Get or
// GetNamed call builds an ephemeral chain of request nodes, one per
// recursive lookup, and the qualifier in effect at any node is found by
// walking that chain upward to the nearest named ancestor.
//
// The chain walk is recomputed on every provider invocation and no request
// node outlives its call. Providers that return values consumed later (a
// factory handed to a constructor, say) snapshot the active qualifier by
// value through Invocation.Defer; the resulting Deferred re-resolves under
// that snapshot no matter what the kernel serves in between. This is what
// keeps two resolutions of the same token under different names isolated
// from each other on a shared kernel.
//
// Provider kinds:
//   - Constant: a fixed value
//   - Eager: invoked once at Register time and memoized
//   - Transient: a per-request constructor resolving deps via Invocation
//   - Dynamic: re-evaluated per resolution; results returned verbatim
//
// Failures are typed and synchronous: UnqualifiedRequestError,
// NoMatchingBindingError, AmbiguousBindingError, plus ErrFrozenKernel for
// registrations after the first resolution.
//
// Import
//
//	"github.com/sghaida/qdi/di"
package di
