package feature

import "github.com/kappaphon/sncfst/sncerr"

// Alphabet is an ordered mapping from symbol name to its full bundle over
// F. Symbol names are unique; the alphabet is immutable once built.
type Alphabet struct {
	Universe *Universe
	order    []string
	bundles  map[string]Bundle
}

// NewAlphabet builds an Alphabet from an ordered symbol list and a bundle
// per symbol. The order given is the alphabet's canonical order, used for
// non-strict resolution tie-breaks.
func NewAlphabet(u *Universe, order []string, bundles map[string]Bundle) (*Alphabet, error) {
	seen := make(map[string]bool, len(order))
	for _, s := range order {
		if s == "" {
			return nil, sncerr.Schema("alphabet: empty symbol name")
		}
		if seen[s] {
			return nil, sncerr.Schema("alphabet: duplicate symbol %q", s)
		}
		seen[s] = true
		if _, ok := bundles[s]; !ok {
			return nil, sncerr.Schema("alphabet: symbol %q has no bundle", s)
		}
	}
	cp := make([]string, len(order))
	copy(cp, order)
	return &Alphabet{Universe: u, order: cp, bundles: bundles}, nil
}

// Symbols returns the alphabet in canonical order.
func (a *Alphabet) Symbols() []string {
	return a.order
}

// Bundle returns the full bundle (over F) for symbol, and whether symbol is
// a member of the alphabet.
func (a *Alphabet) Bundle(symbol string) (Bundle, bool) {
	b, ok := a.bundles[symbol]
	return b, ok
}

// ProjectSymbol looks up symbol's bundle and restricts it to order (usually
// V_order or P_order), mapping absent features to UNSPEC. It fails if
// symbol is not in the alphabet.
func (a *Alphabet) ProjectSymbol(symbol string, order []string) (Bundle, error) {
	b, ok := a.bundles[symbol]
	if !ok {
		return Bundle{}, sncerr.Schema("alphabet: unknown symbol %q", symbol)
	}
	return b.Project(order), nil
}

// Resolve finds the alphabet symbol(s) whose projection onto order equals
// target. In strict mode, exactly one match is required or
// SymbolResolutionError is returned; in non-strict mode the first match in
// alphabet order is returned.
func (a *Alphabet) Resolve(target Bundle, order []string, strict bool) (string, error) {
	var matches []string
	for _, s := range a.order {
		proj, err := a.ProjectSymbol(s, order)
		if err != nil {
			return "", err
		}
		if proj.Equal(target) {
			matches = append(matches, s)
			if !strict {
				return s, nil
			}
		}
	}
	if len(matches) == 0 {
		return "", sncerr.SymbolResolution("", -1, nil)
	}
	if strict && len(matches) > 1 {
		return "", sncerr.SymbolResolution("", -1, matches)
	}
	return matches[0], nil
}
