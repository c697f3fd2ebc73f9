package outdsl

import (
	"testing"

	"github.com/kappaphon/sncfst/feature"
)

func TestParseCanonicalForms(t *testing.T) {
	cases := []struct {
		src  string
		want Node
	}{
		{"INR", Inr{}},
		{"TRM", Trm{}},
		{"(lit + voice)", Lit{Polarity: feature.Plus, Feature: "voice"}},
		{"(lit - voice)", Lit{Polarity: feature.Minus, Feature: "voice"}},
		{"(proj INR (voice nasal))", Proj{Inner: Inr{}, Features: []string{"voice", "nasal"}}},
		{"(proj INR ())", Proj{Inner: Inr{}, Features: nil}},
		{"(unify INR TRM)", Unify{A: Inr{}, B: Trm{}}},
		{"(subtract INR TRM)", Subtract{A: Inr{}, B: Trm{}}},
	}
	for _, c := range cases {
		got, err := Parse(c.src)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.src, err)
		}
		if got.String() != c.want.String() {
			t.Errorf("Parse(%q) = %s, want %s", c.src, got.String(), c.want.String())
		}
	}
}

func TestParseProjStarIsAll(t *testing.T) {
	got, err := Parse("(proj INR *)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	proj, ok := got.(Proj)
	if !ok {
		t.Fatalf("Parse(proj INR *) = %T, want Proj", got)
	}
	if !IsAll(proj.Features) {
		t.Errorf("Proj.Features = %v, want the ALL sentinel", proj.Features)
	}
}

func TestParseAllSugarDesugarsToProjStar(t *testing.T) {
	got, err := Parse("(all INR)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want, err := Parse("(proj INR *)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.String() != want.String() {
		t.Errorf("(all INR) = %s, want %s", got.String(), want.String())
	}
}

func TestParseBundleSugarDesugarsToNestedUnify(t *testing.T) {
	got, err := Parse("(bundle (+ voice) (- nasal))")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Unify{
		A: Lit{Polarity: feature.Plus, Feature: "voice"},
		B: Lit{Polarity: feature.Minus, Feature: "nasal"},
	}
	if got.String() != want.String() {
		t.Errorf("bundle desugars to %s, want %s", got.String(), want.String())
	}
}

func TestParseBundleRequiresAtLeastOneLiteral(t *testing.T) {
	if _, err := Parse("(bundle)"); err == nil {
		t.Error("expected error for an empty bundle")
	}
}

func TestParseRejectsMalformedExpression(t *testing.T) {
	if _, err := Parse("(unify INR)"); err == nil {
		t.Error("expected parse error for a unify missing its second operand")
	}
}

func TestValidateFeaturesRejectsUnknownFeature(t *testing.T) {
	u, _ := feature.NewUniverse([]string{"voice"})
	n := Lit{Polarity: feature.Plus, Feature: "nasal"}
	if err := ValidateFeatures(n, u); err == nil {
		t.Error("expected error for a feature absent from the universe")
	}
}

func TestValidateFeaturesAcceptsProjAll(t *testing.T) {
	u, _ := feature.NewUniverse([]string{"voice"})
	n := Proj{Inner: Inr{}, Features: All}
	if err := ValidateFeatures(n, u); err != nil {
		t.Errorf("ValidateFeatures(proj _ *) = %v, want nil", err)
	}
}

func TestEvalUnifyLeftBiased(t *testing.T) {
	u, _ := feature.NewUniverse([]string{"voice", "nasal"})
	env := Env{
		Inr:      feature.EmptyBundle(u).With("voice", feature.Plus),
		Trm:      feature.EmptyBundle(u).With("voice", feature.Minus).With("nasal", feature.Plus),
		Universe: u,
	}
	got, err := Eval(Unify{A: Inr{}, B: Trm{}}, env)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if got.Get("voice") != feature.Plus {
		t.Errorf("Unify(INR,TRM).voice = %v, want Plus (INR wins)", got.Get("voice"))
	}
	if got.Get("nasal") != feature.Plus {
		t.Errorf("Unify(INR,TRM).nasal = %v, want Plus (copied from TRM)", got.Get("nasal"))
	}
}

func TestEvalProjRestriction(t *testing.T) {
	u, _ := feature.NewUniverse([]string{"voice", "nasal"})
	env := Env{
		Inr:      feature.EmptyBundle(u).With("voice", feature.Plus).With("nasal", feature.Minus),
		Universe: u,
	}
	got, err := Eval(Proj{Inner: Inr{}, Features: []string{"voice"}}, env)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if got.Get("voice") != feature.Plus {
		t.Errorf("Proj kept wrong value for voice: %v", got.Get("voice"))
	}
	if got.Get("nasal") != feature.Unspec {
		t.Errorf("Proj leaked a feature outside its restriction set")
	}
}

func TestEvalLitRejectsUnknownFeature(t *testing.T) {
	u, _ := feature.NewUniverse([]string{"voice"})
	env := Env{Universe: u}
	if _, err := Eval(Lit{Polarity: feature.Plus, Feature: "nasal"}, env); err == nil {
		t.Error("expected error evaluating a lit for an unknown feature")
	}
}
