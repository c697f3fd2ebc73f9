/*
Package predicate lowers a natural class (inr/trm/cnd) to a total boolean
predicate over Σ_V tuples. Compilation resolves each literal's feature to
its coordinate index in a witness.Frame once; the returned closure then
only does index/value comparisons, so it is O(|class|) and allocation-free
on every call — the hot path the builder and reference evaluator both run
once per input symbol.
*/
package predicate

import (
	"github.com/kappaphon/sncfst/feature"
	"github.com/kappaphon/sncfst/ruleset"
	"github.com/kappaphon/sncfst/sncerr"
	"github.com/kappaphon/sncfst/witness"
)

// Pred is a compiled membership test over Σ_V.
type Pred func(t witness.Tuple) bool

type check struct {
	coord int
	want  feature.Ternary
}

// Compile lowers class to a predicate over frame. Every feature named in
// class must be present in frame's order — callers are expected to have
// derived frame from a dependency analysis that already guarantees this.
func Compile(class ruleset.NaturalClass, frame *witness.Frame) (Pred, error) {
	if len(class) == 0 {
		return func(witness.Tuple) bool { return true }, nil
	}
	checks := make([]check, len(class))
	for i, lit := range class {
		idx, ok := frame.IndexOf(lit.Feature)
		if !ok {
			return nil, sncerr.InternalInvariant("predicate: feature %q not in frame order", lit.Feature)
		}
		checks[i] = check{coord: idx, want: lit.Polarity}
	}
	return func(t witness.Tuple) bool {
		for _, c := range checks {
			if t[c.coord] != c.want {
				return false
			}
		}
		return true
	}, nil
}
