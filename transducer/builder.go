package transducer

import (
	"github.com/kappaphon/sncfst/obs"
	"github.com/kappaphon/sncfst/sncerr"
	"github.com/kappaphon/sncfst/transducer/arctable"
	"github.com/kappaphon/sncfst/witness"
)

// DefaultMaxArcs is the default arc budget (specification §6).
const DefaultMaxArcs = 5_000_000

// BuildOptions configures the builder.
type BuildOptions struct {
	// MaxArcs caps the projected arc count (1+3^|P|)·3^|V| before any
	// construction happens. Zero means DefaultMaxArcs.
	MaxArcs int
	// Progress, if non-nil, is called every ProgressEvery arcs (and once
	// more with done==total on completion) from the same thread that owns
	// the builder. It must not mutate builder state (specification §5).
	Progress func(done, total int)
	// ProgressEvery controls the callback cadence; zero means every 10000
	// arcs.
	ProgressEvery int
}

func (o BuildOptions) maxArcs() int {
	if o.MaxArcs <= 0 {
		return DefaultMaxArcs
	}
	return o.MaxArcs
}

func (o BuildOptions) progressEvery() int {
	if o.ProgressEvery <= 0 {
		return 10000
	}
	return o.ProgressEvery
}

// Transducer is the compiled T_V: a total, deterministic, length-preserving
// mapping over Σ_V, with one qF state and one true-state per Σ_P tuple.
// Every state is final.
type Transducer struct {
	RuleID string
	V      []string
	P      []string
	VFrame *witness.Frame
	PFrame *witness.Frame
	Table  *arctable.Dense
}

// Build constructs T_V for rule, following the arc schema of specification
// §4.5 exactly via CompiledRule.EvalArc — the same routine the reference
// evaluator uses, so this function can never silently diverge from
// package refeval (specification §9).
func Build(compiled *CompiledRule, opts BuildOptions) (*Transducer, error) {
	log := obs.For("transducer.builder")

	projected := compiled.ArcCount()
	budget := opts.maxArcs()
	if projected > budget {
		return nil, sncerr.ArcBudgetExceeded(compiled.Rule.ID, projected, budget)
	}
	log.Debug().
		Str("rule_id", compiled.Rule.ID).
		Int("v", compiled.VFrame.K()).
		Int("p", compiled.PFrame.K()).
		Int("projected_arcs", projected).
		Msg("building transducer")

	numStates := compiled.NumStates()
	numLabels := compiled.VFrame.Size()
	table := arctable.NewDense(numStates, numLabels)

	every := opts.progressEvery()
	done := 0
	var buildErr error
	for state := 0; state < numStates && buildErr == nil; state++ {
		compiled.VFrame.All(func(label int, xV witness.Tuple) bool {
			next, output, evalErr := compiled.EvalArc(state, xV)
			if evalErr != nil {
				// A well-formed, validated rule cannot reach this: every
				// feature the Out expression names is already a member of
				// V by construction (package depanalysis). Surfacing it as
				// an error rather than panicking still respects "no
				// partial output is emitted" — the half-built table below
				// is simply discarded.
				buildErr = sncerr.InternalInvariant("rule %q: arc eval failed at state %d label %d: %v",
					compiled.Rule.ID, state, label, evalErr)
				return false
			}
			outLabel := compiled.VFrame.Encode(output)
			table.Set(state, label, int32(next), int32(outLabel))
			done++
			if opts.Progress != nil && done%every == 0 {
				opts.Progress(done, projected)
			}
			return true
		})
	}
	if buildErr != nil {
		return nil, buildErr
	}
	if opts.Progress != nil {
		opts.Progress(projected, projected)
	}

	if !table.AllWritten() {
		return nil, sncerr.InternalInvariant("rule %q: transducer construction left unwritten arcs", compiled.Rule.ID)
	}

	return &Transducer{
		RuleID: compiled.Rule.ID,
		V:      compiled.VFrame.Order,
		P:      compiled.PFrame.Order,
		VFrame: compiled.VFrame,
		PFrame: compiled.PFrame,
		Table:  table,
	}, nil
}
