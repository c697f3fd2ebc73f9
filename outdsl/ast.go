/*
Package outdsl implements the Out expression language: parser, canonical
AST and a pure evaluator shared by both the reference evaluator (package
refeval) and the transducer builder (package transducer) — sharing one
evaluator is what makes "reference ≡ compiled" a property of the code
rather than something that needs separate testing for each side.

The AST is a tagged variant — six node kinds, each its own Go type
implementing Node — in the spirit of the teacher's terex.Atom/AtomType
tagged-value pattern (terex/terex.go), but as a plain interface + type
switch rather than a boxed Atom, since the Out DSL has a small, closed set
of node shapes and no need for terex's general Lisp-cons machinery.
*/
package outdsl

import (
	"fmt"
	"strings"

	"github.com/kappaphon/sncfst/feature"
)

// Node is an Out expression. The six concrete types below are the only
// implementations; Eval and ValidateFeatures type-switch over them.
type Node interface {
	node()
	String() string
}

// Inr is the bare INR leaf.
type Inr struct{}

// Trm is the bare TRM leaf.
type Trm struct{}

// Lit is (lit polarity feature).
type Lit struct {
	Polarity feature.Ternary
	Feature  string
}

// All is the sentinel passed to Proj meaning "the full feature universe".
var All = []string{"*"}

// IsAll reports whether a Proj's feature list is the ALL sentinel.
func IsAll(features []string) bool {
	return len(features) == 1 && features[0] == "*"
}

// Proj is (proj expr (feature*|*)).
type Proj struct {
	Inner    Node
	Features []string // All (see IsAll) or a finite, possibly empty, list
}

// Unify is (unify a b).
type Unify struct {
	A, B Node
}

// Subtract is (subtract a b).
type Subtract struct {
	A, B Node
}

func (Inr) node()      {}
func (Trm) node()      {}
func (Lit) node()      {}
func (Proj) node()     {}
func (Unify) node()    {}
func (Subtract) node() {}

func (Inr) String() string { return "INR" }
func (Trm) String() string { return "TRM" }

func (n Lit) String() string {
	return fmt.Sprintf("(lit %s %s)", n.Polarity.String(), n.Feature)
}

func (n Proj) String() string {
	if IsAll(n.Features) {
		return fmt.Sprintf("(proj %s *)", n.Inner)
	}
	return fmt.Sprintf("(proj %s (%s))", n.Inner, strings.Join(n.Features, " "))
}

func (n Unify) String() string {
	return fmt.Sprintf("(unify %s %s)", n.A, n.B)
}

func (n Subtract) String() string {
	return fmt.Sprintf("(subtract %s %s)", n.A, n.B)
}

// Walk calls visit for n and, recursively, for every descendant node in
// pre-order. Used by both feature-dependency collection (package
// depanalysis) and ValidateFeatures below.
func Walk(n Node, visit func(Node)) {
	visit(n)
	switch t := n.(type) {
	case Proj:
		Walk(t.Inner, visit)
	case Unify:
		Walk(t.A, visit)
		Walk(t.B, visit)
	case Subtract:
		Walk(t.A, visit)
		Walk(t.B, visit)
	}
}

// ValidateFeatures checks that every feature named anywhere in n (Lit
// features, Proj feature lists) is a member of u.
func ValidateFeatures(n Node, u *feature.Universe) error {
	var err error
	Walk(n, func(node Node) {
		if err != nil {
			return
		}
		switch t := node.(type) {
		case Lit:
			if !u.Has(t.Feature) {
				err = fmt.Errorf("out expression %s: unknown feature %q", t, t.Feature)
			}
		case Proj:
			if !IsAll(t.Features) {
				for _, f := range t.Features {
					if !u.Has(f) {
						err = fmt.Errorf("out expression %s: unknown feature %q", t, f)
						return
					}
				}
			}
		}
	})
	return err
}
