/*
Package transducer builds the merged canonical transducer T_V directly from
a rule and a feature universe, without ever materialising a brute-force transducer
first — the dependency analysis in package depanalysis is what keeps state
and arc counts bounded by 3^|V| / 3^|P| instead of the full alphabet.
*/
package transducer

import (
	"github.com/kappaphon/sncfst/depanalysis"
	"github.com/kappaphon/sncfst/feature"
	"github.com/kappaphon/sncfst/outdsl"
	"github.com/kappaphon/sncfst/predicate"
	"github.com/kappaphon/sncfst/ruleset"
	"github.com/kappaphon/sncfst/witness"
)

// CompiledRule bundles everything both the builder (this package) and the
// reference evaluator (package refeval) need to run the shared arc
// semantics of specification §4.5 — the single point where "reference ≡
// compiled" stops being two implementations to keep in sync and becomes
// one function called from two call sites.
type CompiledRule struct {
	Rule     ruleset.Rule
	Universe *feature.Universe
	VFrame   *witness.Frame
	PFrame   *witness.Frame
	VFull    bool

	inr, trm, cnd predicate.Pred
}

// Compile runs the dependency analysis, compiles the inr/trm/cnd
// predicates, and builds the V/P witness frames for rule.
func Compile(rule ruleset.Rule, u *feature.Universe) (*CompiledRule, error) {
	dep, err := depanalysis.Analyze(rule, u)
	if err != nil {
		return nil, err
	}
	vFrame := witness.NewFrame(dep.V)
	pFrame := witness.NewFrame(dep.P)

	inr, err := predicate.Compile(rule.Inr, vFrame)
	if err != nil {
		return nil, err
	}
	trm, err := predicate.Compile(rule.Trm, vFrame)
	if err != nil {
		return nil, err
	}
	cnd, err := predicate.Compile(rule.Cnd, vFrame)
	if err != nil {
		return nil, err
	}
	return &CompiledRule{
		Rule:     rule,
		Universe: u,
		VFrame:   vFrame,
		PFrame:   pFrame,
		VFull:    dep.VFull,
		inr:      inr,
		trm:      trm,
		cnd:      cnd,
	}, nil
}

// ArcCount returns the projected arc count (1 + 3^|P|) · 3^|V| without
// building anything — used for the arc-budget check ahead of allocation.
func (c *CompiledRule) ArcCount() int {
	return (1 + c.PFrame.Size()) * c.VFrame.Size()
}

// NumStates returns 1 + 3^|P|, one qF plus one true-state per Σ_P tuple.
func (c *CompiledRule) NumStates() int {
	return 1 + c.PFrame.Size()
}

// State 0 is qF, the distinguished "no live memory" state. States 1..3^|P|
// are true-states identified by the base-3 encoding of their memory tuple
// over P_order (so state numbering is automatically "qF=0, true-states in
// base-3 enumeration order of memP" — specification §4.5's tie-break
// requirement falls out of reusing witness.Frame.Encode for state ids).
const QF = 0

// EvalArc computes the single outgoing arc from state on witness symbol
// xV, per specification §4.5's arc schema. It is the one routine shared
// between the transducer builder and the reference evaluator (package
// refeval) — specification §9's rationale for property 6 (reference ≡
// compiled) being tautological rather than merely tested.
func (c *CompiledRule) EvalArc(state int, xV witness.Tuple) (nextState int, output witness.Tuple, err error) {
	trmP := c.VFrame.Project(xV, c.PFrame)

	if state == QF {
		if c.trm(xV) && c.cnd(xV) {
			return c.PFrame.Encode(trmP), xV, nil
		}
		return QF, xV, nil
	}

	memP := c.PFrame.Decode(state)
	var outBundle feature.Bundle
	if c.inr(xV) {
		env := outdsl.Env{
			Inr:      c.VFrame.ToBundle(c.Universe, xV),
			Trm:      c.PFrame.ToBundle(c.Universe, memP),
			Universe: c.Universe,
		}
		outBundle, err = outdsl.Eval(c.Rule.Out, env)
		if err != nil {
			return 0, nil, err
		}
	} else {
		outBundle = c.VFrame.ToBundle(c.Universe, xV)
	}
	output = c.VFrame.FromBundle(outBundle)

	if c.trm(xV) {
		if c.cnd(xV) {
			nextState = c.PFrame.Encode(trmP)
		} else {
			nextState = QF
		}
	} else {
		nextState = state
	}
	return nextState, output, nil
}
