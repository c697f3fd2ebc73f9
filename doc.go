/*
Package sncfst compiles Search & Change phonological rewrite rules into
total, deterministic finite-state transducers over a ternary-feature
alphabet, and provides a reference evaluator sharing the same arc semantics.

Package structure:

■ feature: the ternary-feature data model — the global feature universe F,
feature bundles, and the surface-symbol alphabet built over them.

■ ruleset: the validated rule record and rules document.

■ outdsl: the Out DSL grammar, AST and evaluator.

■ depanalysis: computes the grammar-visible feature set V and the
Out-visible terminator set P for one rule.

■ witness: the witness alphabet Σ_V/Σ_P, its base-3 label encoding, and the
π_P coordinate projection.

■ predicate: compiles a natural class into a predicate over Σ_V.

■ transducer: builds the merged canonical transducer T_V and emits AT&T
textual form plus its shared symbol table.

■ refeval: the reference evaluator, sharing CompiledRule.EvalArc with the
builder so that reference and compiled evaluation can never silently
diverge.

This root package is a thin facade: CompileRule and CompileAll wire the
above packages together for the common case of compiling one rule, or every
rule of a document, against one alphabet.

License

Governed by a 3-Clause BSD license.
*/
package sncfst
