/*
Parsing for the Out DSL grammar (see specification §4.1). The grammar is a
closed, six-production S-expression language, so it is parsed with
github.com/alecthomas/participle/v2 from a tagged struct grammar rather than
with the teacher's general-purpose lexmachine+LR pipeline
(terex/terexlang): that pipeline is built for an open, Lisp-like language
with user-defined operators, which is considerably more machinery than six
fixed productions need.

The lexer mirrors terexlang/scan.go's token shape (identifiers, a skipped
comment rule, skipped whitespace) trimmed to what this grammar needs: no
strings, no numbers, no variables.
*/
package outdsl

import (
	"sync"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/kappaphon/sncfst/feature"
	"github.com/kappaphon/sncfst/sncerr"
)

var outLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `;[^\n]*`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `[()+\-*]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// exprG is the participle grammar for one Out expression. Each alternative
// of the grammar is a field (a bool for the INR/TRM keywords, a pointer
// otherwise) tried in declaration order; toNode
// converts a successfully parsed exprG into the canonical six-node AST of
// ast.go.
type exprG struct {
	Inr      bool     `  @"INR"`
	Trm      bool     `| @"TRM"`
	Lit      *litG    `| @@`
	Proj     *projG   `| @@`
	Unify    *unifyG  `| @@`
	Subtract *subG    `| @@`
	Bundle   *bundleG `| @@`
	All      *allG    `| @@`
}

type litG struct {
	Open    string `"(" "lit"`
	Pol     string `@("+" | "-")`
	Feature string `@Ident`
	Close   string `")"`
}

type projG struct {
	Open     string   `"(" "proj"`
	Inner    *exprG   `@@`
	InnerOp  string   `"("`
	Star     bool     `( @"*"`
	Features []string `| @Ident* )`
	InnerCl  string   `")"`
	Close    string   `")"`
}

type unifyG struct {
	Open  string `"(" "unify"`
	A     *exprG `@@`
	B     *exprG `@@`
	Close string `")"`
}

type subG struct {
	Open  string `"(" "subtract"`
	A     *exprG `@@`
	B     *exprG `@@`
	Close string `")"`
}

type polFeatG struct {
	Open    string `"("`
	Pol     string `@("+" | "-")`
	Feature string `@Ident`
	Close   string `")"`
}

type bundleG struct {
	Open  string      `"(" "bundle"`
	Lits  []*polFeatG `@@*`
	Close string      `")"`
}

type allG struct {
	Open  string `"(" "all"`
	Inner *exprG `@@`
	Close string `")"`
}

var (
	parserOnce sync.Once
	theParser  *participle.Parser[exprG]
	parserErr  error
)

func getParser() (*participle.Parser[exprG], error) {
	parserOnce.Do(func() {
		theParser, parserErr = participle.Build[exprG](
			participle.Lexer(outLexer),
			participle.Elide("Whitespace", "Comment"),
			participle.UseLookahead(2),
		)
	})
	return theParser, parserErr
}

// Parse parses one Out expression in its canonical or sugared surface
// syntax (spec §4.1: `bundle` and `all` are recognised as equivalent sugar
// for nested `unify`/`lit` and `proj _ *` respectively) into the canonical
// AST.
func Parse(src string) (Node, error) {
	p, err := getParser()
	if err != nil {
		return nil, sncerr.Dsl(src, "out-dsl parser build failed: %v", err)
	}
	g, err := p.ParseString("", src)
	if err != nil {
		return nil, sncerr.Dsl(src, "parse error: %v", err)
	}
	return g.toNode()
}

func (g *exprG) toNode() (Node, error) {
	switch {
	case g.Inr:
		return Inr{}, nil
	case g.Trm:
		return Trm{}, nil
	case g.Lit != nil:
		return g.Lit.toNode()
	case g.Proj != nil:
		return g.Proj.toNode()
	case g.Unify != nil:
		return g.Unify.toNode()
	case g.Subtract != nil:
		return g.Subtract.toNode()
	case g.Bundle != nil:
		return g.Bundle.toNode()
	case g.All != nil:
		return g.All.toNode()
	default:
		return nil, sncerr.Dsl("", "empty out expression")
	}
}

func (g *litG) toNode() (Node, error) {
	pol, ok := feature.ParsePolarity(g.Pol)
	if !ok {
		return nil, sncerr.Dsl(g.Feature, "lit: invalid polarity %q", g.Pol)
	}
	return Lit{Polarity: pol, Feature: g.Feature}, nil
}

func (g *projG) toNode() (Node, error) {
	inner, err := g.Inner.toNode()
	if err != nil {
		return nil, err
	}
	if g.Star {
		return Proj{Inner: inner, Features: All}, nil
	}
	return Proj{Inner: inner, Features: g.Features}, nil
}

func (g *unifyG) toNode() (Node, error) {
	a, err := g.A.toNode()
	if err != nil {
		return nil, err
	}
	b, err := g.B.toNode()
	if err != nil {
		return nil, err
	}
	return Unify{A: a, B: b}, nil
}

func (g *subG) toNode() (Node, error) {
	a, err := g.A.toNode()
	if err != nil {
		return nil, err
	}
	b, err := g.B.toNode()
	if err != nil {
		return nil, err
	}
	return Subtract{A: a, B: b}, nil
}

func (g *bundleG) toNode() (Node, error) {
	if len(g.Lits) == 0 {
		return nil, sncerr.Dsl("(bundle)", "bundle: requires at least one (polarity feature) literal")
	}
	lits := make([]Node, len(g.Lits))
	for i, pf := range g.Lits {
		pol, ok := feature.ParsePolarity(pf.Pol)
		if !ok {
			return nil, sncerr.Dsl(pf.Feature, "bundle: invalid polarity %q", pf.Pol)
		}
		lits[i] = Lit{Polarity: pol, Feature: pf.Feature}
	}
	// Fold right-to-left so the leftmost literal wins ties, matching
	// Unify's left-biased, never-overwrite semantics for the whole chain.
	node := lits[len(lits)-1]
	for i := len(lits) - 2; i >= 0; i-- {
		node = Unify{A: lits[i], B: node}
	}
	return node, nil
}

func (g *allG) toNode() (Node, error) {
	inner, err := g.Inner.toNode()
	if err != nil {
		return nil, err
	}
	return Proj{Inner: inner, Features: All}, nil
}

// ParseOrNode is a convenience for callers that may already hold a parsed
// Node (e.g. fixtures built directly in Go) alongside callers that hold raw
// source text.
func ParseOrNode(srcOrNil string, n Node) (Node, error) {
	if n != nil {
		return n, nil
	}
	return Parse(srcOrNil)
}
