package feature

import (
	"math/bits"
	"sort"
	"strings"
)

// Bundle is a partial mapping from feature name to {PLUS, MINUS}; absence of
// a feature denotes UNSPEC. Internally it is a pair of bitsets indexed by a
// Universe's canonical feature index — the representation the design notes
// prefer ("the bitset form makes Unify/Subtract bit-parallel") since |F| is
// expected to be small. A Bundle is only meaningful relative to the
// Universe it was built against.
type Bundle struct {
	u     *Universe
	plus  bitset
	minus bitset
}

// bitset is a small fixed-width-word bitset, word-at-a-time for Unify and
// Subtract.
type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (b bitset) get(i int) bool {
	if i/64 >= len(b) {
		return false
	}
	return b[i/64]&(1<<uint(i%64)) != 0
}

func (b bitset) set(i int) {
	b[i/64] |= 1 << uint(i%64)
}

func (b bitset) clone() bitset {
	cp := make(bitset, len(b))
	copy(cp, b)
	return cp
}

func (b bitset) or(o bitset) bitset {
	n := len(b)
	if len(o) > n {
		n = len(o)
	}
	out := make(bitset, n)
	for i := range out {
		var a, c uint64
		if i < len(b) {
			a = b[i]
		}
		if i < len(o) {
			c = o[i]
		}
		out[i] = a | c
	}
	return out
}

func (b bitset) andNot(o bitset) bitset {
	out := make(bitset, len(b))
	for i := range out {
		var c uint64
		if i < len(o) {
			c = o[i]
		}
		out[i] = b[i] &^ c
	}
	return out
}

func (b bitset) popcount() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount64(w)
	}
	return n
}

// EmptyBundle returns the full-underspecification identity bundle over u.
func EmptyBundle(u *Universe) Bundle {
	return Bundle{u: u, plus: newBitset(u.Len()), minus: newBitset(u.Len())}
}

// Get returns the polarity assigned to name, or UNSPEC if name is absent
// from the bundle (or not a member of F at all).
func (b Bundle) Get(name string) Ternary {
	i, ok := b.u.IndexOf(name)
	if !ok {
		return Unspec
	}
	if b.plus.get(i) {
		return Plus
	}
	if b.minus.get(i) {
		return Minus
	}
	return Unspec
}

// With returns a new bundle with name set to value, overwriting any prior
// polarity for name. value == UNSPEC clears name.
func (b Bundle) With(name string, value Ternary) Bundle {
	i, ok := b.u.IndexOf(name)
	if !ok {
		return b
	}
	out := Bundle{u: b.u, plus: b.plus.clone(), minus: b.minus.clone()}
	out.plus[i/64] &^= 1 << uint(i%64)
	out.minus[i/64] &^= 1 << uint(i%64)
	switch value {
	case Plus:
		out.plus.set(i)
	case Minus:
		out.minus.set(i)
	}
	return out
}

// Unify computes Unify(A, B) = A ∪ {(F,c) ∈ B | F ∉ dom(A)}: left-biased,
// never overwrites a feature already present in b.
func (b Bundle) Unify(other Bundle) Bundle {
	onlyOther := other.domain().andNot(b.domain())
	return Bundle{
		u:     b.u,
		plus:  b.plus.or(other.plus.maskedBy(onlyOther)),
		minus: b.minus.or(other.minus.maskedBy(onlyOther)),
	}
}

// Subtract computes Subtract(A, B) = {(F,c) ∈ A | (F,c) ∉ B}: removes only
// exact polarity matches.
func (b Bundle) Subtract(other Bundle) Bundle {
	return Bundle{
		u:     b.u,
		plus:  b.plus.andNot(other.plus),
		minus: b.minus.andNot(other.minus),
	}
}

// maskedBy returns a bitset equal to b wherever mask is set, and cleared
// elsewhere.
func (b bitset) maskedBy(mask bitset) bitset {
	out := make(bitset, len(b))
	for i := range out {
		var m uint64
		if i < len(mask) {
			m = mask[i]
		}
		out[i] = b[i] & m
	}
	return out
}

func (b Bundle) domain() bitset {
	return b.plus.or(b.minus)
}

// Project restricts b to the given feature names (Proj(e, S), S finite).
// Fails (per the caller's validation, not here) is the caller's
// responsibility — Project silently ignores names outside F or outside b's
// domain, matching "restriction" semantics.
func (b Bundle) Project(names []string) Bundle {
	out := EmptyBundle(b.u)
	for _, n := range names {
		if v := b.Get(n); v != Unspec {
			out = out.With(n, v)
		}
	}
	return out
}

// Names returns the feature names set in b (PLUS or MINUS), in F's
// canonical order.
func (b Bundle) Names() []string {
	var out []string
	for i, n := range b.u.names {
		if b.plus.get(i) || b.minus.get(i) {
			out = append(out, n)
		}
	}
	return out
}

// Len returns the number of features set in b.
func (b Bundle) Len() int {
	return b.domain().popcount()
}

// Equal reports whether a and b assign the same polarity to every feature.
func (a Bundle) Equal(b Bundle) bool {
	if len(a.plus) != len(b.plus) || len(a.minus) != len(b.minus) {
		// pad to compare; bitsets may differ in length if built against
		// universes of different (but compatible) sizes
		n := len(a.plus)
		if len(b.plus) > n {
			n = len(b.plus)
		}
		ap, am := padTo(a.plus, n), padTo(a.minus, n)
		bp, bm := padTo(b.plus, n), padTo(b.minus, n)
		return equalWords(ap, bp) && equalWords(am, bm)
	}
	return equalWords(a.plus, b.plus) && equalWords(a.minus, b.minus)
}

func padTo(b bitset, n int) bitset {
	if len(b) >= n {
		return b
	}
	out := make(bitset, n)
	copy(out, b)
	return out
}

func equalWords(a, b bitset) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String renders b as a sorted "+F1 -F2" literal list, for diagnostics and
// Out-DSL error messages.
func (b Bundle) String() string {
	names := b.Names()
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = b.Get(n).String() + n
	}
	return "{" + strings.Join(parts, " ") + "}"
}
