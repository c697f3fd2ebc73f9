/*
Package depanalysis computes, for a single rule, the minimal feature sets V
(grammar-visible features) and P ⊆ V (Out-visible terminator features) that
the transducer builder needs to avoid materialising a brute-force
transducer over the whole of F.

The traversal mirrors the teacher's LR closure computation (lr/tables.go's
worklist-over-item-sets shape), but walks the Out AST instead of an LR item
set, and tracks a "TRM-tainted" flag instead of a dotted-item position.
Feature sets are kept as github.com/emirpasic/gods/sets/treeset ordered
sets keyed by a feature's canonical index in F, which gives the final
"F's order restricted to the set" (V_order / P_order) for free by iterating
the tree in order — exactly how lr/tables.go uses treeset/arraylist for
LR(0) item-set closures.
*/
package depanalysis

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/kappaphon/sncfst/feature"
	"github.com/kappaphon/sncfst/outdsl"
	"github.com/kappaphon/sncfst/ruleset"
	"github.com/kappaphon/sncfst/sncerr"
)

// Result is the outcome of analysing one rule: V and P in canonical
// (F-restricted) order, and whether a Proj(_, ALL) forced V to the entire
// universe.
type Result struct {
	V      []string
	P      []string
	VFull  bool
}

// Analyze computes V and P for rule against universe u.
func Analyze(rule ruleset.Rule, u *feature.Universe) (Result, error) {
	vSet := treeset.NewWith(utils.IntComparator)
	add := func(names map[string]bool) {
		for n := range names {
			if i, ok := u.IndexOf(n); ok {
				vSet.Add(i)
			}
		}
	}
	add(rule.Inr.Features())
	add(rule.Trm.Features())
	add(rule.Cnd.Features())

	namedInOut := make(map[string]bool)
	vFull := false
	pEqualsV := false

	outdsl.Walk(rule.Out, func(n outdsl.Node) {
		switch t := n.(type) {
		case outdsl.Lit:
			namedInOut[t.Feature] = true
		case outdsl.Proj:
			if outdsl.IsAll(t.Features) {
				vFull = true
				if containsTrm(t.Inner) {
					pEqualsV = true
				}
			} else {
				for _, f := range t.Features {
					namedInOut[f] = true
				}
			}
		}
	})
	add(namedInOut)

	if vFull {
		allIdx := make([]int, u.Len())
		for i := range allIdx {
			allIdx[i] = i
		}
		vSet.Clear()
		vSet.Add(toInterfaceSlice(allIdx)...)
	}

	vOrder := orderedNames(vSet, u)

	var pOrder []string
	if pEqualsV {
		pOrder = vOrder
	} else if containsTrm(rule.Out) {
		pSet := treeset.NewWith(utils.IntComparator)
		for n := range namedInOut {
			if i, ok := u.IndexOf(n); ok {
				pSet.Add(i)
			}
		}
		pOrder = orderedNames(pSet, u)
	}

	if err := checkSubset(pOrder, vOrder); err != nil {
		return Result{}, err
	}
	return Result{V: vOrder, P: pOrder, VFull: vFull}, nil
}

// containsTrm reports whether TRM appears anywhere in n's subtree. Taint
// propagates unconditionally through Proj, Unify and Subtract — the only
// connective nodes in this grammar — so this is equivalently "is the whole
// Out expression TRM-tainted" when called on the root.
func containsTrm(n outdsl.Node) bool {
	found := false
	outdsl.Walk(n, func(node outdsl.Node) {
		if _, ok := node.(outdsl.Trm); ok {
			found = true
		}
	})
	return found
}

func orderedNames(set *treeset.Set, u *feature.Universe) []string {
	values := set.Values()
	names := make([]string, 0, len(values))
	names_u := u.Names()
	for _, v := range values {
		names = append(names, names_u[v.(int)])
	}
	return names
}

func toInterfaceSlice(idx []int) []interface{} {
	out := make([]interface{}, len(idx))
	for i, v := range idx {
		out[i] = v
	}
	return out
}

func checkSubset(p, v []string) error {
	vSet := make(map[string]bool, len(v))
	for _, n := range v {
		vSet[n] = true
	}
	for _, n := range p {
		if !vSet[n] {
			return sncerr.InternalInvariant("P is not a subset of V: %q in P but not in V", n)
		}
	}
	return nil
}
