/*
Package sncerr defines the error kinds of the rule compiler and reference
evaluator (see the PURPOSE & SCOPE / ERROR HANDLING sections of the
specification this module implements) as oops error codes, so that a caller
can recover "what kind of thing went wrong" from a plain error value without
a bespoke error type per package.

Validation errors (malformed rules, malformed Out expressions) are usually
collected across many rules before being reported; Batch holds that
collection. Runtime errors (unknown symbol, ambiguous resolution, transducer
mismatch) are returned individually and carry the offending rule id and
position; UnknownSymbol also carries the symbol, and Consistency the word.
*/
package sncerr

import (
	"strings"

	"github.com/samber/oops"
)

// Error kind codes, one per failure mode the compiler/evaluator can produce.
const (
	KindSchema             = "SCHEMA_ERROR"
	KindDsl                = "DSL_ERROR"
	KindUnknownSymbol      = "UNKNOWN_SYMBOL"
	KindSymbolResolution   = "SYMBOL_RESOLUTION_ERROR"
	KindArcBudgetExceeded  = "ARC_BUDGET_EXCEEDED"
	KindConsistency        = "CONSISTENCY_ERROR"
	KindInternalInvariant  = "INTERNAL_INVARIANT_VIOLATED"
)

// Schema reports a malformed rule, alphabet or input document.
func Schema(format string, args ...interface{}) error {
	return oops.Code(KindSchema).Errorf(format, args...)
}

// Dsl reports an Out-expression syntax or semantic failure, pointing at the
// offending sub-expression via its printed form.
func Dsl(expr string, format string, args ...interface{}) error {
	return oops.Code(KindDsl).With("expr", expr).Errorf(format, args...)
}

// UnknownSymbol reports a word containing a symbol absent from the alphabet.
func UnknownSymbol(ruleID, symbol string, position int) error {
	return oops.Code(KindUnknownSymbol).
		With("rule_id", ruleID).
		With("symbol", symbol).
		With("position", position).
		Errorf("symbol %q at position %d is not in the alphabet", symbol, position)
}

// SymbolResolution reports an output bundle that cannot resolve to a unique
// alphabet symbol under strict resolution.
func SymbolResolution(ruleID string, position int, candidates []string) error {
	return oops.Code(KindSymbolResolution).
		With("rule_id", ruleID).
		With("position", position).
		With("candidates", candidates).
		Errorf("output bundle at position %d resolves to %d symbols (%s), strict mode requires exactly one",
			position, len(candidates), strings.Join(candidates, ", "))
}

// ArcBudgetExceeded reports that the projected arc count for a rule exceeds
// the configured budget. No partial transducer is ever built when this is
// returned.
func ArcBudgetExceeded(ruleID string, projected, budget int) error {
	return oops.Code(KindArcBudgetExceeded).
		With("rule_id", ruleID).
		With("projected_arcs", projected).
		With("max_arcs", budget).
		Errorf("rule %q projects %d arcs, exceeding max_arcs=%d", ruleID, projected, budget)
}

// Consistency reports a divergence between the reference evaluator and the
// compiled transducer at a given input position.
func Consistency(ruleID, word string, position int, reason string) error {
	return oops.Code(KindConsistency).
		With("rule_id", ruleID).
		With("word", word).
		With("position", position).
		Errorf("reference evaluator and compiled transducer disagree for rule %q at position %d: %s",
			ruleID, position, reason)
}

// InternalInvariant reports a post-construction invariant failure — always a
// bug in the compiler itself, never a user input error.
func InternalInvariant(format string, args ...interface{}) error {
	return oops.Code(KindInternalInvariant).Errorf(format, args...)
}

// Batch collects several errors — used when validation failures across many
// rules are reported together rather than aborting on the first one.
type Batch struct {
	Errs []error
}

// Add appends err to the batch, if non-nil.
func (b *Batch) Add(err error) {
	if err != nil {
		b.Errs = append(b.Errs, err)
	}
}

// Ok reports whether the batch collected no errors.
func (b *Batch) Ok() bool {
	return len(b.Errs) == 0
}

// AsError returns nil if the batch is empty, otherwise an error summarizing
// every collected failure.
func (b *Batch) AsError() error {
	if b.Ok() {
		return nil
	}
	msgs := make([]string, len(b.Errs))
	for i, e := range b.Errs {
		msgs[i] = e.Error()
	}
	return oops.Code(KindSchema).
		With("count", len(b.Errs)).
		Errorf("%d validation error(s):\n%s", len(b.Errs), strings.Join(msgs, "\n"))
}

// KindOf extracts the error kind code from err, if it was produced by this
// package (directly or wrapped). The second return is false for errors that
// never passed through oops.
func KindOf(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	oerr, ok := oops.AsOops(err)
	if !ok {
		return "", false
	}
	return oerr.Code(), true
}
