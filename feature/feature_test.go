package feature

import "testing"

func TestNewUniverseRejectsDuplicates(t *testing.T) {
	if _, err := NewUniverse([]string{"voice", "voice"}); err == nil {
		t.Error("expected error for duplicate feature name")
	}
}

func TestNewUniverseRejectsEmptyName(t *testing.T) {
	if _, err := NewUniverse([]string{"voice", ""}); err == nil {
		t.Error("expected error for empty feature name")
	}
}

func TestUniverseOrderRestriction(t *testing.T) {
	u, err := NewUniverse([]string{"voice", "nasal", "round"})
	if err != nil {
		t.Fatalf("NewUniverse: %v", err)
	}
	got := u.Order(map[string]bool{"round": true, "voice": true})
	want := []string{"voice", "round"}
	if len(got) != len(want) {
		t.Fatalf("Order() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Order() = %v, want %v", got, want)
		}
	}
}

func TestBundleWithAndGet(t *testing.T) {
	u, _ := NewUniverse([]string{"voice", "nasal"})
	b := EmptyBundle(u).With("voice", Plus)
	if got := b.Get("voice"); got != Plus {
		t.Errorf("Get(voice) = %v, want Plus", got)
	}
	if got := b.Get("nasal"); got != Unspec {
		t.Errorf("Get(nasal) = %v, want Unspec", got)
	}
}

func TestBundleWithUnspecClears(t *testing.T) {
	u, _ := NewUniverse([]string{"voice"})
	b := EmptyBundle(u).With("voice", Plus).With("voice", Unspec)
	if got := b.Get("voice"); got != Unspec {
		t.Errorf("Get(voice) after clearing = %v, want Unspec", got)
	}
}

func TestBundleUnifyLeftBiased(t *testing.T) {
	u, _ := NewUniverse([]string{"voice", "nasal"})
	a := EmptyBundle(u).With("voice", Plus)
	b := EmptyBundle(u).With("voice", Minus).With("nasal", Plus)
	got := a.Unify(b)
	if got.Get("voice") != Plus {
		t.Errorf("Unify kept b's value for a feature already in a's domain")
	}
	if got.Get("nasal") != Plus {
		t.Errorf("Unify dropped b's value for a feature absent from a")
	}
}

func TestBundleSubtractExactMatchOnly(t *testing.T) {
	u, _ := NewUniverse([]string{"voice", "nasal"})
	a := EmptyBundle(u).With("voice", Plus).With("nasal", Minus)
	b := EmptyBundle(u).With("voice", Plus)
	got := a.Subtract(b)
	if got.Get("voice") != Unspec {
		t.Errorf("Subtract left an exact-match feature in place")
	}
	if got.Get("nasal") != Minus {
		t.Errorf("Subtract removed a feature not present in the subtrahend")
	}
}

func TestBundleSubtractRequiresExactPolarity(t *testing.T) {
	u, _ := NewUniverse([]string{"voice"})
	a := EmptyBundle(u).With("voice", Plus)
	b := EmptyBundle(u).With("voice", Minus)
	got := a.Subtract(b)
	if got.Get("voice") != Plus {
		t.Errorf("Subtract removed a feature whose polarity did not match exactly")
	}
}

func TestBundleProjectRestriction(t *testing.T) {
	u, _ := NewUniverse([]string{"voice", "nasal", "round"})
	b := EmptyBundle(u).With("voice", Plus).With("nasal", Minus).With("round", Plus)
	got := b.Project([]string{"voice", "round"})
	if got.Get("voice") != Plus || got.Get("round") != Plus {
		t.Errorf("Project dropped a requested feature")
	}
	if got.Get("nasal") != Unspec {
		t.Errorf("Project retained a feature outside the restriction set")
	}
}

func TestAlphabetResolveStrictAmbiguity(t *testing.T) {
	u, _ := NewUniverse([]string{"voice"})
	bundles := map[string]Bundle{
		"p": EmptyBundle(u),
		"b": EmptyBundle(u),
	}
	a, err := NewAlphabet(u, []string{"p", "b"}, bundles)
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	if _, err := a.Resolve(EmptyBundle(u), []string{"voice"}, true); err == nil {
		t.Error("expected SymbolResolutionError for an ambiguous strict resolution")
	}
	sym, err := a.Resolve(EmptyBundle(u), []string{"voice"}, false)
	if err != nil {
		t.Fatalf("non-strict Resolve: %v", err)
	}
	if sym != "p" {
		t.Errorf("non-strict Resolve = %q, want first alphabet-order match %q", sym, "p")
	}
}

func TestNewAlphabetRejectsDuplicateSymbol(t *testing.T) {
	u, _ := NewUniverse([]string{"voice"})
	bundles := map[string]Bundle{"p": EmptyBundle(u)}
	if _, err := NewAlphabet(u, []string{"p", "p"}, bundles); err == nil {
		t.Error("expected error for duplicate symbol name")
	}
}

func TestParsePolarity(t *testing.T) {
	cases := []struct {
		in   string
		want Ternary
		ok   bool
	}{
		{"+", Plus, true},
		{"-", Minus, true},
		{"0", Unspec, false},
		{"x", Unspec, false},
	}
	for _, c := range cases {
		got, ok := ParsePolarity(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParsePolarity(%q) = (%v, %v), want (%v, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}
