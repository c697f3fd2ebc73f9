/*
Package witness implements the witness alphabet Σ_V: ternary k-tuples over
a feature order V_order (or its P_order subsequence), their base-3 label
encoding, and the coordinate projection π_P between them.

A Frame precomputes everything that depends only on a feature order
(powers of 3, the name→coordinate index) once per rule compilation; the
builder holds one Frame for V and one for P and reuses both across every
arc. Encode and ProjectInto do not allocate; Decode, Project, NewTuple,
ToBundle and FromBundle return newly allocated values on every call.
*/
package witness

import (
	"github.com/kappaphon/sncfst/feature"
)

// Tuple is a fixed-length vector of ternary values aligned with some
// Frame's Order.
type Tuple []feature.Ternary

// Frame is V_order or P_order plus its derived encoding tables.
type Frame struct {
	Order []string
	index map[string]int
	pow3  []int // pow3[i] = 3^i, len k+1
}

// NewFrame builds a Frame for the given feature order (already sorted by
// the caller into canonical F order — Frame does not re-sort).
func NewFrame(order []string) *Frame {
	idx := make(map[string]int, len(order))
	for i, n := range order {
		idx[n] = i
	}
	pow3 := make([]int, len(order)+1)
	pow3[0] = 1
	for i := 1; i < len(pow3); i++ {
		pow3[i] = pow3[i-1] * 3
	}
	return &Frame{Order: order, index: idx, pow3: pow3}
}

// K returns |V| (or |P|), the tuple width.
func (f *Frame) K() int {
	return len(f.Order)
}

// Size returns 3^k, the size of the witness alphabet over this frame.
func (f *Frame) Size() int {
	return f.pow3[len(f.pow3)-1]
}

// IndexOf returns the coordinate position of a feature name within this
// frame's order, and whether it is present at all.
func (f *Frame) IndexOf(name string) (int, bool) {
	i, ok := f.index[name]
	return i, ok
}

// NewTuple allocates a zero (all-UNSPEC) tuple sized for this frame.
func (f *Frame) NewTuple() Tuple {
	return make(Tuple, f.K())
}

// Encode computes label(t) = 1 + Σ tᵢ·3ⁱ. Label 0 is reserved for ε and is
// never produced by Encode.
func (f *Frame) Encode(t Tuple) int {
	label := 0
	for i, v := range t {
		label += int(v) * f.pow3[i]
	}
	return label + 1
}

// Decode is the inverse of Encode: decode(encode(t)) == t for all t.
func (f *Frame) Decode(label int) Tuple {
	n := label - 1
	out := f.NewTuple()
	for i := 0; i < f.K(); i++ {
		out[i] = feature.Ternary(n % 3)
		n /= 3
	}
	return out
}

// ProjectInto writes the coordinates of t (a tuple over f) that belong to
// sub's order into dst, in sub's order. dst must already be sized
// sub.K(); this makes the call allocation-free for repeated use. A feature
// of sub's order that is absent from f's order is written as UNSPEC; for
// π_P, sub's order is a subsequence of f's order (P ⊆ V).
func (f *Frame) ProjectInto(t Tuple, sub *Frame, dst Tuple) {
	for i, name := range sub.Order {
		if j, ok := f.index[name]; ok {
			dst[i] = t[j]
		} else {
			dst[i] = feature.Unspec
		}
	}
}

// Project is the allocating convenience form of ProjectInto.
func (f *Frame) Project(t Tuple, sub *Frame) Tuple {
	dst := sub.NewTuple()
	f.ProjectInto(t, sub, dst)
	return dst
}

// ToBundle converts a tuple over this frame's order into a feature.Bundle
// over u (u must be a superset universe of this frame's order).
func (f *Frame) ToBundle(u *feature.Universe, t Tuple) feature.Bundle {
	b := feature.EmptyBundle(u)
	for i, name := range f.Order {
		if t[i] != feature.Unspec {
			b = b.With(name, t[i])
		}
	}
	return b
}

// FromBundle restricts bundle to this frame's order and returns it as a
// tuple, mapping features absent from the bundle to UNSPEC.
func (f *Frame) FromBundle(b feature.Bundle) Tuple {
	out := f.NewTuple()
	for i, name := range f.Order {
		out[i] = b.Get(name)
	}
	return out
}

// All calls yield for every tuple in Σ_f, in ascending label order
// (1..3^k), stopping early if yield returns false. The scratch tuple
// passed to yield is reused across calls — the callback must not retain it
// past the call.
func (f *Frame) All(yield func(label int, t Tuple) bool) {
	k := f.K()
	scratch := f.NewTuple()
	total := f.Size()
	for label := 1; label <= total; label++ {
		n := label - 1
		for i := 0; i < k; i++ {
			scratch[i] = feature.Ternary(n % 3)
			n /= 3
		}
		if !yield(label, scratch) {
			return
		}
	}
}
