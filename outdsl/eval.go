package outdsl

import (
	"github.com/kappaphon/sncfst/feature"
	"github.com/kappaphon/sncfst/obs"
	"github.com/kappaphon/sncfst/sncerr"
)

// Env binds the two free values an Out expression may reference: INR and
// TRM, both already restricted to their evaluation-time domain (V for INR,
// P for TRM when TRM is read through the true-state memory — see package
// transducer). Nothing else is free at evaluation time (spec: "No other
// free variables").
type Env struct {
	Inr      feature.Bundle
	Trm      feature.Bundle
	Universe *feature.Universe
}

// Eval evaluates n in env, following the teacher's recursive,
// environment-driven Eval/evalAtom shape (terex/eval.go) but over a fixed
// six-node grammar instead of general Lisp s-expressions: evaluation is
// pure, total over well-formed ASTs, and deterministic.
func Eval(n Node, env Env) (feature.Bundle, error) {
	switch t := n.(type) {
	case Inr:
		return env.Inr, nil
	case Trm:
		return env.Trm, nil
	case Lit:
		if t.Polarity != feature.Plus && t.Polarity != feature.Minus {
			return feature.Bundle{}, sncerr.Dsl(t.String(), "lit: polarity must be + or -")
		}
		if !env.Universe.Has(t.Feature) {
			return feature.Bundle{}, sncerr.Dsl(t.String(), "lit: unknown feature %q", t.Feature)
		}
		return feature.EmptyBundle(env.Universe).With(t.Feature, t.Polarity), nil
	case Proj:
		inner, err := Eval(t.Inner, env)
		if err != nil {
			return feature.Bundle{}, err
		}
		if IsAll(t.Features) {
			return inner, nil
		}
		for _, f := range t.Features {
			if !env.Universe.Has(f) {
				return feature.Bundle{}, sncerr.Dsl(t.String(), "proj: unknown feature %q", f)
			}
		}
		return inner.Project(t.Features), nil
	case Unify:
		a, err := Eval(t.A, env)
		if err != nil {
			return feature.Bundle{}, err
		}
		b, err := Eval(t.B, env)
		if err != nil {
			return feature.Bundle{}, err
		}
		obs.For("outdsl").Debug().Str("a", a.String()).Str("b", b.String()).Msg("unify")
		return a.Unify(b), nil
	case Subtract:
		a, err := Eval(t.A, env)
		if err != nil {
			return feature.Bundle{}, err
		}
		b, err := Eval(t.B, env)
		if err != nil {
			return feature.Bundle{}, err
		}
		return a.Subtract(b), nil
	default:
		return feature.Bundle{}, sncerr.Dsl("", "unknown Out AST node %T", n)
	}
}
