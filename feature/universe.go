package feature

import "github.com/kappaphon/sncfst/sncerr"

// Universe is the process-wide ordered sequence of feature names, F.
// Order is fixed at construction time and used as the canonical ordering
// for every derived feature set (V, P, and natural-class literals) in the
// rest of the module.
type Universe struct {
	names []string
	index map[string]int
}

// NewUniverse builds a Universe from an ordered, duplicate-free list of
// feature names. The order given here is F's canonical order.
func NewUniverse(names []string) (*Universe, error) {
	index := make(map[string]int, len(names))
	for i, n := range names {
		if n == "" {
			return nil, sncerr.Schema("feature universe: empty feature name at position %d", i)
		}
		if _, dup := index[n]; dup {
			return nil, sncerr.Schema("feature universe: duplicate feature name %q", n)
		}
		index[n] = i
	}
	cp := make([]string, len(names))
	copy(cp, names)
	return &Universe{names: cp, index: index}, nil
}

// Len returns |F|.
func (u *Universe) Len() int {
	return len(u.names)
}

// Names returns F in canonical order. The returned slice must not be
// mutated by callers.
func (u *Universe) Names() []string {
	return u.names
}

// IndexOf returns the canonical position of name in F, and whether name is
// a member of F at all.
func (u *Universe) IndexOf(name string) (int, bool) {
	i, ok := u.index[name]
	return i, ok
}

// Has reports whether name is a member of F.
func (u *Universe) Has(name string) bool {
	_, ok := u.index[name]
	return ok
}

// Order returns F restricted to the given set of names, in F's canonical
// order — used to derive V_order and P_order from an unordered feature set
// (spec: "F's order restricted to each set").
func (u *Universe) Order(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for _, n := range u.names {
		if set[n] {
			out = append(out, n)
		}
	}
	return out
}
