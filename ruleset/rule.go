/*
Package ruleset implements the rule model: natural classes, the validated
Rule record, and the rules Document. This mirrors the teacher's grammar-builder
validation shape (lr.GrammarBuilder validates a grammar and collects errors
before any table construction begins) — Validate here collects every
offending rule into one sncerr.Batch rather than failing on the first.

Parsing a rules document from JSON/TOML/CSV is explicitly a collaborator
concern (see the external-interfaces section of the specification); this
package consumes an already-decoded structure matching that schema.
*/
package ruleset

import (
	"fmt"

	"github.com/kappaphon/sncfst/feature"
	"github.com/kappaphon/sncfst/outdsl"
	"github.com/kappaphon/sncfst/sncerr"
)

// Direction is a rule's scan direction.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Right {
		return "RIGHT"
	}
	return "LEFT"
}

// ParseDirection parses the two wire-format direction tokens.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "LEFT":
		return Left, nil
	case "RIGHT":
		return Right, nil
	default:
		return Left, sncerr.Schema("unknown direction %q, expected LEFT or RIGHT", s)
	}
}

// Literal is one (polarity, feature) conjunct of a natural class.
type Literal struct {
	Polarity feature.Ternary
	Feature  string
}

// NaturalClass is a finite conjunction of feature literals. An empty class
// matches everything.
type NaturalClass []Literal

// Features returns the (deduplicated) feature names mentioned in c.
func (c NaturalClass) Features() map[string]bool {
	out := make(map[string]bool, len(c))
	for _, lit := range c {
		out[lit.Feature] = true
	}
	return out
}

// Rule is a validated Search & Change rule record:
// (id, dir, inr, trm, cnd, out_ast).
type Rule struct {
	ID  string
	Dir Direction
	Inr NaturalClass
	Trm NaturalClass
	Cnd NaturalClass
	Out outdsl.Node
}

// Document is a rules document: an id plus its rules, in the order they
// should be applied as a pipeline.
type Document struct {
	ID    string
	Rules []Rule
}

// Validate checks a document against the universe F: rule ids are unique,
// every natural-class feature and every Out-DSL feature reference is a
// member of F. All offending rules are reported together in one batch
// rather than stopping at the first failure.
func Validate(doc Document, u *feature.Universe) error {
	var batch sncerr.Batch
	seen := make(map[string]bool, len(doc.Rules))
	for _, r := range doc.Rules {
		if r.ID == "" {
			batch.Add(sncerr.Schema("rule has empty id"))
			continue
		}
		if seen[r.ID] {
			batch.Add(sncerr.Schema("duplicate rule id %q", r.ID))
			continue
		}
		seen[r.ID] = true
		batch.Add(validateRule(r, u))
	}
	return batch.AsError()
}

func validateRule(r Rule, u *feature.Universe) error {
	for _, class := range []struct {
		name string
		c    NaturalClass
	}{{"inr", r.Inr}, {"trm", r.Trm}, {"cnd", r.Cnd}} {
		for _, lit := range class.c {
			if !u.Has(lit.Feature) {
				return sncerr.Schema("rule %q: %s references unknown feature %q", r.ID, class.name, lit.Feature)
			}
			if lit.Polarity != feature.Plus && lit.Polarity != feature.Minus {
				return sncerr.Schema("rule %q: %s literal for %q has invalid polarity %v", r.ID, class.name, lit.Feature, lit.Polarity)
			}
		}
	}
	if r.Out == nil {
		return sncerr.Schema("rule %q: missing out expression", r.ID)
	}
	if err := outdsl.ValidateFeatures(r.Out, u); err != nil {
		return fmt.Errorf("rule %q: %w", r.ID, err)
	}
	return nil
}
