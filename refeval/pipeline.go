package refeval

import (
	"github.com/samber/oops"

	"github.com/kappaphon/sncfst/feature"
	"github.com/kappaphon/sncfst/obs"
	"github.com/kappaphon/sncfst/ruleset"
	"github.com/kappaphon/sncfst/sncerr"
	"github.com/kappaphon/sncfst/transducer"
)

// RuleResult is one rule's contribution to a pipeline run.
type RuleResult struct {
	RuleID string
	Input  []string // only populated when Options.IncludeInput is set
	Output []string
	Steps  []Step
}

// ApplyPipeline runs every rule of doc in document order, threading each
// rule's output word into the next rule's input (specification §4.6: "for
// multi-rule pipelines, rules are applied in document order; each rule's
// output is the next rule's input"). It stops at the first rule that fails
// to compile or apply, wrapping the failure with the offending rule's id —
// unlike ruleset.Validate, a pipeline has no meaning to continue past a
// broken link.
func ApplyPipeline(doc ruleset.Document, u *feature.Universe, alphabet *feature.Alphabet, word []string, opts Options) ([]string, []RuleResult, error) {
	log := obs.For("refeval")
	results := make([]RuleResult, 0, len(doc.Rules))

	current := word
	for _, rule := range doc.Rules {
		compiled, err := transducer.Compile(rule, u)
		if err != nil {
			return nil, nil, oops.Code(sncerr.KindInternalInvariant).
				With("rule_id", rule.ID).
				Wrapf(err, "pipeline %q: rule %q failed to compile", doc.ID, rule.ID)
		}
		output, steps, err := ApplyRule(compiled, alphabet, current, opts)
		if err != nil {
			return nil, nil, oops.With("pipeline_id", doc.ID).Wrapf(err, "pipeline %q: rule %q failed", doc.ID, rule.ID)
		}
		rr := RuleResult{RuleID: rule.ID, Output: output, Steps: steps}
		if opts.IncludeInput {
			rr.Input = current
		}
		results = append(results, rr)
		current = output
	}

	log.Debug().Str("pipeline_id", doc.ID).Int("rules", len(doc.Rules)).Msg("applied pipeline")
	return current, results, nil
}

// ComparePipeline runs doc the same way ApplyPipeline does, but after each
// rule's application also checks that rule's own transducer against the
// reference evaluator over that rule's input word (SPEC_FULL.md §C.5):
// comparison happens after every rule in the pipeline, not only once at the
// end, so a ConsistencyError always names the specific rule and the
// word that was fed into it rather than the pipeline's original input.
func ComparePipeline(doc ruleset.Document, u *feature.Universe, alphabet *feature.Alphabet, word []string, opts transducer.BuildOptions, evalOpts Options) ([]string, error) {
	current := word
	for _, rule := range doc.Rules {
		compiled, err := transducer.Compile(rule, u)
		if err != nil {
			return nil, oops.Code(sncerr.KindInternalInvariant).
				With("rule_id", rule.ID).
				Wrapf(err, "pipeline %q: rule %q failed to compile", doc.ID, rule.ID)
		}
		built, err := transducer.Build(compiled, opts)
		if err != nil {
			return nil, oops.With("pipeline_id", doc.ID).Wrapf(err, "pipeline %q: rule %q failed to build", doc.ID, rule.ID)
		}
		if err := CompareToTransducer(compiled, built, alphabet, current, evalOpts); err != nil {
			return nil, err
		}
		output, _, err := ApplyRule(compiled, alphabet, current, evalOpts)
		if err != nil {
			return nil, oops.With("pipeline_id", doc.ID).Wrapf(err, "pipeline %q: rule %q failed", doc.ID, rule.ID)
		}
		current = output
	}
	return current, nil
}
