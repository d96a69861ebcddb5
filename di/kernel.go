package di

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Kernel is the binding registry and resolution engine.
//
// Bindings are registered during an initialization phase; the first Get or
// GetNamed freezes the kernel and later registrations fail with
// ErrFrozenKernel. A frozen kernel is safe for concurrent resolutions:
// every call allocates its own request chain and shares nothing mutable.
type Kernel struct {
	mu       sync.RWMutex
	bindings map[Token][]Binding
	frozen   bool
	log      *zap.Logger
}

// KernelOption configures a Kernel.
type KernelOption func(*Kernel)

// WithLogger installs a structured logger. Registrations and top-level
// resolutions are logged at debug level. The default is a no-op logger.
func WithLogger(log *zap.Logger) KernelOption {
	return func(k *Kernel) {
		if log != nil {
			k.log = log
		}
	}
}

// NewKernel creates an empty kernel.
func NewKernel(opts ...KernelOption) *Kernel {
	k := &Kernel{
		bindings: make(map[Token][]Binding),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Register appends a binding for token. Setup-time only: registering after
// the first resolution fails with ErrFrozenKernel. Eager providers are
// evaluated here, so their failures surface at setup.
func (k *Kernel) Register(token Token, b Binding) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.frozen {
		return ErrFrozenKernel
	}
	if b.provider == nil {
		return ErrNilProvider
	}
	if ep, ok := b.provider.(*eagerProvider); ok {
		if err := ep.materialize(); err != nil {
			return err
		}
	}

	k.bindings[token] = append(k.bindings[token], b)

	k.log.Debug("binding registered",
		zap.String("token", string(token)),
		zap.String("qualifier", b.name),
		zap.Bool("named", b.named),
		zap.String("provider", b.provider.kind()),
	)
	return nil
}

// Get resolves token with no qualifier.
func (k *Kernel) Get(token Token) (any, error) {
	return k.top(&request{token: token})
}

// GetNamed resolves token under qualifier name.
func (k *Kernel) GetNamed(token Token, name string) (any, error) {
	return k.top(&request{token: token, name: name, named: true})
}

// Frozen reports whether the first resolution has happened.
func (k *Kernel) Frozen() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.frozen
}

// Bindings returns the number of bindings registered for token.
func (k *Kernel) Bindings(token Token) int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.bindings[token])
}

// top freezes the kernel and runs one root resolution. The correlation id
// exists only in log fields; resolution state lives on the request chain.
func (k *Kernel) top(root *request) (any, error) {
	k.mu.Lock()
	k.frozen = true
	k.mu.Unlock()

	id := uuid.NewString()
	k.log.Debug("resolution started",
		zap.String("resolution_id", id),
		zap.String("token", string(root.token)),
		zap.String("qualifier", root.name),
		zap.Bool("named", root.named),
	)

	val, err := k.resolve(root)
	if err != nil {
		k.log.Debug("resolution failed",
			zap.String("resolution_id", id),
			zap.String("token", string(root.token)),
			zap.Error(err),
		)
		return nil, err
	}

	k.log.Debug("resolution finished",
		zap.String("resolution_id", id),
		zap.String("token", string(root.token)),
	)
	return val, nil
}

// resolve evaluates the binding matched by node's token and the nearest
// qualifier in node's chain.
func (k *Kernel) resolve(node *request) (any, error) {
	b, err := k.lookup(node)
	if err != nil {
		return nil, err
	}
	return invoke(b.provider, Invocation{kernel: k, node: node})
}

// lookup selects the binding for node. Exact-qualifier matches take
// precedence over always-applies bindings; more than one match in the
// winning tier is ambiguous.
func (k *Kernel) lookup(node *request) (Binding, error) {
	k.mu.RLock()
	all := k.bindings[node.token]
	k.mu.RUnlock()

	name, named := node.qualifier()

	if len(all) == 0 {
		return Binding{}, NoMatchingBindingError{Token: node.token, Qualifier: name, Named: named}
	}

	var exact, open []Binding
	sawNamed := false
	for _, b := range all {
		switch {
		case !b.named:
			open = append(open, b)
		case named && b.name == name:
			exact = append(exact, b)
		default:
			sawNamed = true
		}
	}

	tier := exact
	if len(tier) == 0 {
		tier = open
	}

	switch {
	case len(tier) == 1:
		return tier[0], nil
	case len(tier) > 1:
		return Binding{}, AmbiguousBindingError{Token: node.token, Matches: len(tier)}
	case !named && sawNamed:
		return Binding{}, UnqualifiedRequestError{Token: node.token}
	default:
		return Binding{}, NoMatchingBindingError{Token: node.token, Qualifier: name, Named: named}
	}
}

// invoke runs a provider and converts panics into errors, so a failed
// resolution always surfaces synchronously to the immediate caller.
func invoke(p Provider, inv Invocation) (val any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			val = nil
			err = fmt.Errorf("%w: %v", ErrProviderPanic, rec)
		}
	}()

	return p.provide(inv)
}
