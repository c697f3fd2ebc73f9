package depanalysis

import (
	"testing"

	"github.com/kappaphon/sncfst/feature"
	"github.com/kappaphon/sncfst/outdsl"
	"github.com/kappaphon/sncfst/ruleset"
)

func universe(t *testing.T, names ...string) *feature.Universe {
	t.Helper()
	u, err := feature.NewUniverse(names)
	if err != nil {
		t.Fatalf("NewUniverse: %v", err)
	}
	return u
}

// S1 — identity rule: V = P = ∅ (specification §8, scenario S1).
func TestAnalyzeIdentityRuleHasEmptyVAndP(t *testing.T) {
	u := universe(t, "F1", "F2")
	rule := ruleset.Rule{ID: "identity", Out: outdsl.Inr{}}
	res, err := Analyze(rule, u)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(res.V) != 0 || len(res.P) != 0 {
		t.Errorf("Analyze(identity) = V=%v P=%v, want both empty", res.V, res.P)
	}
	if res.VFull {
		t.Errorf("Analyze(identity).VFull = true, want false")
	}
}

// S2 — V={F1,F2}, P={F1} (specification §8, scenario S2).
func TestAnalyzeTerminatorFeatureNarrowsP(t *testing.T) {
	u := universe(t, "F1", "F2")
	rule := ruleset.Rule{
		ID:  "s2",
		Inr: ruleset.NaturalClass{{Polarity: feature.Plus, Feature: "F1"}},
		Trm: ruleset.NaturalClass{{Polarity: feature.Minus, Feature: "F2"}},
		Out: outdsl.Unify{
			A: outdsl.Proj{Inner: outdsl.Trm{}, Features: []string{"F1"}},
			B: outdsl.Inr{},
		},
	}
	res, err := Analyze(rule, u)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(res.V) != 2 || res.V[0] != "F1" || res.V[1] != "F2" {
		t.Errorf("Analyze(s2).V = %v, want [F1 F2]", res.V)
	}
	if len(res.P) != 1 || res.P[0] != "F1" {
		t.Errorf("Analyze(s2).P = %v, want [F1]", res.P)
	}
}

// S4 — proj TRM * expands V to the whole universe (specification §8,
// scenario S4).
func TestAnalyzeProjAllExpandsVToUniverse(t *testing.T) {
	u := universe(t, "F1", "F2")
	rule := ruleset.Rule{
		ID: "s4",
		Out: outdsl.Proj{
			Inner:    outdsl.Trm{},
			Features: outdsl.All,
		},
	}
	res, err := Analyze(rule, u)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !res.VFull {
		t.Error("Analyze(s4).VFull = false, want true")
	}
	if len(res.V) != 2 {
		t.Errorf("Analyze(s4).V = %v, want all of F", res.V)
	}
	if len(res.P) != 2 {
		t.Errorf("Analyze(s4).P = %v, want all of F (proj TRM * taints every feature)", res.P)
	}
}

func TestAnalyzeNoTrmReferenceLeavesAsEmpty(t *testing.T) {
	u := universe(t, "F1")
	rule := ruleset.Rule{
		ID:  "no-trm",
		Inr: ruleset.NaturalClass{{Polarity: feature.Plus, Feature: "F1"}},
		Out: outdsl.Lit{Polarity: feature.Minus, Feature: "F1"},
	}
	res, err := Analyze(rule, u)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(res.P) != 0 {
		t.Errorf("Analyze(no-trm).P = %v, want empty (Out never reads TRM)", res.P)
	}
}

func TestAnalyzeVOrderFollowsUniverseOrder(t *testing.T) {
	u := universe(t, "F3", "F1", "F2")
	rule := ruleset.Rule{
		ID:  "order",
		Inr: ruleset.NaturalClass{{Polarity: feature.Plus, Feature: "F1"}, {Polarity: feature.Minus, Feature: "F3"}},
		Out: outdsl.Inr{},
	}
	res, err := Analyze(rule, u)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(res.V) != 2 || res.V[0] != "F3" || res.V[1] != "F1" {
		t.Errorf("Analyze(order).V = %v, want universe-ordered [F3 F1]", res.V)
	}
}
