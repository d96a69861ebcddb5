package di

// request is one node in the ephemeral resolution tree: the token asked
// for, the qualifier attached at this node (if any), and the parent link.
//
// Nodes are immutable after creation and live only for the duration of the
// Get/GetNamed call that created the root. They are passed down the call
// stack and never stored anywhere that outlives the call; anything a
// provider wants to keep past its own invocation must be snapshotted by
// value (see Invocation.Defer).
type request struct {
	token  Token
	name   string
	named  bool
	parent *request
}

// qualifier returns the nearest qualifier in the chain: the node's own if
// it has one, else the closest qualified ancestor.
//
// The walk is recomputed on every call. There is no memoization keyed by
// token anywhere in the package, so two resolutions of the same token under
// different names can never observe each other's qualifier.
func (r *request) qualifier() (string, bool) {
	for n := r; n != nil; n = n.parent {
		if n.named {
			return n.name, true
		}
	}
	return "", false
}

// child creates the node for a recursive dependency lookup parented at r.
// The child carries no qualifier of its own, so the walk passes through it
// to whatever name r's chain is resolving under.
func (r *request) child(token Token) *request {
	return &request{token: token, parent: r}
}

// namedChild creates a child node carrying its own qualifier, shadowing any
// qualifier above it for the subtree below.
func (r *request) namedChild(token Token, name string) *request {
	return &request{token: token, name: name, named: true, parent: r}
}
