package refeval

import (
	"strings"

	"github.com/kappaphon/sncfst/feature"
	"github.com/kappaphon/sncfst/obs"
	"github.com/kappaphon/sncfst/ruleset"
	"github.com/kappaphon/sncfst/sncerr"
	"github.com/kappaphon/sncfst/transducer"
)

// CompareToTransducer walks word through the reference evaluator and through
// t's own arc table in lockstep, asserting that the two agree at every
// position (specification §4.6, last paragraph): "the evaluator asserts
// that labels traversed match arc-by-arc; any mismatch is a
// ConsistencyError that names the rule, input word, and first divergent
// position." Since t is built by transducer.Build calling the very same
// CompiledRule.EvalArc this function calls, a mismatch here can only mean t
// was built from a different CompiledRule (a different rule or universe)
// than the one passed in — this is a caller-misuse detector, not a correctness proof of
// EvalArc itself.
func CompareToTransducer(compiled *transducer.CompiledRule, t *transducer.Transducer, alphabet *feature.Alphabet, word []string, opts Options) error {
	log := obs.For("refeval")
	dir := opts.directionFor(compiled.Rule)

	input := word
	if dir == ruleset.Right {
		input = reverseStrings(word)
	}

	wordStr := strings.Join(word, " ")
	state := transducer.QF
	for i, sym := range input {
		bundle, ok := alphabet.Bundle(sym)
		if !ok {
			return sncerr.UnknownSymbol(compiled.Rule.ID, sym, i)
		}
		xV := compiled.VFrame.FromBundle(bundle)
		label := compiled.VFrame.Encode(xV)

		refNext, refOutTuple, err := compiled.EvalArc(state, xV)
		if err != nil {
			return err
		}
		refOutLabel := compiled.VFrame.Encode(refOutTuple)

		tableNext, tableOutLabel := t.Table.Value(state, label)

		if int(tableNext) != refNext || int(tableOutLabel) != refOutLabel {
			return sncerr.Consistency(compiled.Rule.ID, wordStr, i,
				"compiled transducer arc diverges from reference evaluator at this position")
		}
		state = refNext
	}

	log.Debug().Str("rule_id", compiled.Rule.ID).Int("len", len(word)).Msg("compared against transducer")
	return nil
}
