package sncfst

import (
	"github.com/kappaphon/sncfst/feature"
	"github.com/kappaphon/sncfst/ruleset"
	"github.com/kappaphon/sncfst/sncerr"
	"github.com/kappaphon/sncfst/transducer"
)

// CompileResult bundles one rule's compiled transducer together with the
// dependency-analysis facts a caller typically wants to report alongside it
// (a "dump_vp" view: the feature sets the compiler actually used, and
// whether a Proj(_, ALL) widened V to the whole universe).
type CompileResult struct {
	RuleID string
	V      []string
	P      []string
	VFull  bool
	Rule   *transducer.CompiledRule
	T      *transducer.Transducer
}

// CompileRule runs dependency analysis, predicate compilation and transducer
// construction for a single rule against universe u, returning both the
// compiled rule (reusable by package refeval) and its built transducer.
func CompileRule(rule ruleset.Rule, u *feature.Universe, opts transducer.BuildOptions) (CompileResult, error) {
	compiled, err := transducer.Compile(rule, u)
	if err != nil {
		return CompileResult{}, err
	}
	built, err := transducer.Build(compiled, opts)
	if err != nil {
		return CompileResult{}, err
	}
	return CompileResult{
		RuleID: rule.ID,
		V:      compiled.VFrame.Order,
		P:      compiled.PFrame.Order,
		VFull:  compiled.VFull,
		Rule:   compiled,
		T:      built,
	}, nil
}

// CompileAll validates doc against u, then compiles every rule. Validation
// failures across many rules are collected into one sncerr.Batch (spec.md
// §7); once validation passes, per-rule build failures (e.g.
// ArcBudgetExceeded) are collected the same way rather than aborting at the
// first one, so a caller sees every rule that failed to compile in a single
// report instead of fixing them one at a time. The returned map is keyed by
// rule id; callers that need document order range over doc.Rules instead.
func CompileAll(doc ruleset.Document, u *feature.Universe, opts transducer.BuildOptions) (map[string]CompileResult, error) {
	if err := ruleset.Validate(doc, u); err != nil {
		return nil, err
	}
	out := make(map[string]CompileResult, len(doc.Rules))
	var batch sncerr.Batch
	for _, rule := range doc.Rules {
		res, err := CompileRule(rule, u, opts)
		if err != nil {
			batch.Add(sncerr.Schema("document %q: rule %q: %v", doc.ID, rule.ID, err))
			continue
		}
		out[rule.ID] = res
	}
	if !batch.Ok() {
		return out, batch.AsError()
	}
	return out, nil
}
