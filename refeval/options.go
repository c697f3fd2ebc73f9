/*
Package refeval implements the reference evaluator: S&C semantics applied
directly to symbol strings, without ever materialising a transducer. It
shares package transducer's CompiledRule.EvalArc with the builder, so
"reference ≡ compiled" (specification §8 property 6) is a consequence of
calling the same code, not a separately-maintained parallel implementation.
*/
package refeval

import "github.com/kappaphon/sncfst/ruleset"

// Options mirrors the evaluation-time knobs of specification §6 that are
// not builder knobs (those live in transducer.BuildOptions): Strict also
// governs output symbol resolution here.
type Options struct {
	// Strict requires output bundle → symbol resolution to be unique
	// (specification §4.3); default false.
	Strict bool
	// DirectionOverride, when set, overrides every rule's own Dir for
	// this evaluation call uniformly (specification §6, SPEC_FULL.md §C.4
	// — a partial per-rule override is not supported).
	DirectionOverride *ruleset.Direction
	// IncludeInput includes a copy of each rule's input word alongside its
	// output in pipeline rows (specification §6).
	IncludeInput bool
}

func (o Options) directionFor(r ruleset.Rule) ruleset.Direction {
	if o.DirectionOverride != nil {
		return *o.DirectionOverride
	}
	return r.Dir
}
