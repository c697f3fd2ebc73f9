package examplefixtures

import (
	"encoding/json"

	"github.com/kappaphon/sncfst/feature"
	"github.com/kappaphon/sncfst/outdsl"
	"github.com/kappaphon/sncfst/ruleset"
	"github.com/kappaphon/sncfst/sncerr"
)

// alphabetWire is the JSON shape of an alphabet document: a feature table
// keyed by symbol, mirroring the "first row = symbols, first column =
// features, cells in {+,-,0}" table the external-interfaces section
// describes, just transposed into JSON object form for fixture use.
type alphabetWire struct {
	Features []string                    `json:"features"`
	Symbols  []string                    `json:"symbols"`
	Table    map[string]map[string]string `json:"table"`
}

// LoadAlphabet decodes and validates an alphabet document, returning both
// the feature universe it defines and the alphabet built over it.
func LoadAlphabet(data []byte) (*feature.Universe, *feature.Alphabet, error) {
	if _, err := validate("alphabet.schema.json", data); err != nil {
		return nil, nil, err
	}
	var wire alphabetWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, nil, sncerr.Schema("examplefixtures: decoding alphabet document: %v", err)
	}
	u, err := feature.NewUniverse(wire.Features)
	if err != nil {
		return nil, nil, err
	}
	bundles := make(map[string]feature.Bundle, len(wire.Symbols))
	for _, sym := range wire.Symbols {
		b := feature.EmptyBundle(u)
		for featName, cell := range wire.Table[sym] {
			pol, ok := feature.ParsePolarity(cell)
			if !ok {
				continue // "0" (UNSPEC) is the default; nothing to set
			}
			b = b.With(featName, pol)
		}
		bundles[sym] = b
	}
	alphabet, err := feature.NewAlphabet(u, wire.Symbols, bundles)
	if err != nil {
		return nil, nil, err
	}
	return u, alphabet, nil
}

// literalWire is a single [polarity, feature] pair, as it appears in a
// rule's inr/trm/cnd arrays.
type literalWire [2]string

// ruleWire is the JSON shape of one rule.
type ruleWire struct {
	ID  string        `json:"id"`
	Dir string        `json:"dir"`
	Inr []literalWire `json:"inr"`
	Trm []literalWire `json:"trm"`
	Cnd []literalWire `json:"cnd"`
	Out string        `json:"out"`
}

// rulesWire is the JSON shape of a rules document.
type rulesWire struct {
	ID    string     `json:"id"`
	Rules []ruleWire `json:"rules"`
}

// LoadRules decodes, schema-validates, and converts a rules document into a
// ruleset.Document. It does not call ruleset.Validate — the caller decides
// when to validate against a particular feature universe.
func LoadRules(data []byte) (ruleset.Document, error) {
	if _, err := validate("rules.schema.json", data); err != nil {
		return ruleset.Document{}, err
	}
	var wire rulesWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return ruleset.Document{}, sncerr.Schema("examplefixtures: decoding rules document: %v", err)
	}
	rules := make([]ruleset.Rule, 0, len(wire.Rules))
	for _, rw := range wire.Rules {
		dir, err := ruleset.ParseDirection(rw.Dir)
		if err != nil {
			return ruleset.Document{}, err
		}
		inr, err := toNaturalClass(rw.Inr)
		if err != nil {
			return ruleset.Document{}, err
		}
		trm, err := toNaturalClass(rw.Trm)
		if err != nil {
			return ruleset.Document{}, err
		}
		cnd, err := toNaturalClass(rw.Cnd)
		if err != nil {
			return ruleset.Document{}, err
		}
		out, err := outdsl.Parse(rw.Out)
		if err != nil {
			return ruleset.Document{}, err
		}
		rules = append(rules, ruleset.Rule{
			ID:  rw.ID,
			Dir: dir,
			Inr: inr,
			Trm: trm,
			Cnd: cnd,
			Out: out,
		})
	}
	return ruleset.Document{ID: wire.ID, Rules: rules}, nil
}

func toNaturalClass(wire []literalWire) (ruleset.NaturalClass, error) {
	out := make(ruleset.NaturalClass, 0, len(wire))
	for _, lw := range wire {
		pol, ok := feature.ParsePolarity(lw[0])
		if !ok {
			return nil, sncerr.Schema("examplefixtures: literal polarity %q must be \"+\" or \"-\"", lw[0])
		}
		out = append(out, ruleset.Literal{Polarity: pol, Feature: lw[1]})
	}
	return out, nil
}

// inputWire is the JSON shape of an input document.
type inputWire struct {
	Inputs [][]string `json:"inputs"`
}

// LoadInput decodes and validates an input document into its list of words.
func LoadInput(data []byte) ([][]string, error) {
	if _, err := validate("input.schema.json", data); err != nil {
		return nil, err
	}
	var wire inputWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, sncerr.Schema("examplefixtures: decoding input document: %v", err)
	}
	return wire.Inputs, nil
}
