package refeval

import (
	"github.com/samber/oops"

	"github.com/kappaphon/sncfst/feature"
	"github.com/kappaphon/sncfst/obs"
	"github.com/kappaphon/sncfst/ruleset"
	"github.com/kappaphon/sncfst/sncerr"
	"github.com/kappaphon/sncfst/transducer"
)

// Step records one position's transition for a single rule application,
// returned by ApplyRule alongside the output word and kept per rule in
// RuleResult by ApplyPipeline.
type Step struct {
	Position   int
	FromState  int
	ToState    int
	InputLabel int
	OutLabel   int
	Symbol     string
}

// ApplyRule runs one rule over one word (specification §4.6): reverses the
// word first for RIGHT-direction rules (running the machine as LEFT
// throughout, then reversing the output), walks left-to-right threading a
// single memory state, and resolves each output tuple back to a surface
// symbol via the alphabet.
func ApplyRule(compiled *transducer.CompiledRule, alphabet *feature.Alphabet, word []string, opts Options) ([]string, []Step, error) {
	log := obs.For("refeval")
	dir := opts.directionFor(compiled.Rule)

	input := word
	if dir == ruleset.Right {
		input = reverseStrings(word)
	}

	output := make([]string, len(input))
	steps := make([]Step, len(input))
	state := transducer.QF

	for i, sym := range input {
		bundle, ok := alphabet.Bundle(sym)
		if !ok {
			return nil, nil, sncerr.UnknownSymbol(compiled.Rule.ID, sym, i)
		}
		xV := compiled.VFrame.FromBundle(bundle)
		next, outTuple, err := compiled.EvalArc(state, xV)
		if err != nil {
			return nil, nil, err
		}
		// Out only ever speaks about V; features outside V (and V-features
		// Out leaves unset) pass through from the original symbol untouched.
		// Left-biased Unify gives the new V-assignments priority and falls
		// back to the original full bundle everywhere else, so resolution
		// is against the whole alphabet rather than just its V-projection —
		// otherwise two symbols identical on V but distinct outside it would
		// be indistinguishable once V doesn't cover all of F.
		outBundleV := compiled.VFrame.ToBundle(compiled.Universe, outTuple)
		fullOut := outBundleV.Unify(bundle)
		outSym, err := alphabet.Resolve(fullOut, compiled.Universe.Names(), opts.Strict)
		if err != nil {
			return nil, nil, oops.Code(sncerr.KindSymbolResolution).
				With("rule_id", compiled.Rule.ID).
				With("position", i).
				Wrapf(err, "rule %q: output resolution failed at position %d", compiled.Rule.ID, i)
		}
		steps[i] = Step{
			Position:   i,
			FromState:  state,
			ToState:    next,
			InputLabel: compiled.VFrame.Encode(xV),
			OutLabel:   compiled.VFrame.Encode(outTuple),
			Symbol:     outSym,
		}
		output[i] = outSym
		state = next
	}

	if dir == ruleset.Right {
		output = reverseStrings(output)
		steps = reverseSteps(steps)
	}

	log.Debug().Str("rule_id", compiled.Rule.ID).Int("len", len(word)).Msg("applied rule")
	return output, steps, nil
}

func reverseStrings(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[len(in)-1-i] = s
	}
	return out
}

func reverseSteps(in []Step) []Step {
	out := make([]Step, len(in))
	for i, s := range in {
		out[len(in)-1-i] = s
	}
	return out
}
