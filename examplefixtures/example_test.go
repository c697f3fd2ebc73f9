package examplefixtures_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kappaphon/sncfst/examplefixtures"
	"github.com/kappaphon/sncfst/refeval"
	"github.com/kappaphon/sncfst/ruleset"
	"github.com/kappaphon/sncfst/transducer"
)

func readFixture(name string) []byte {
	data, err := os.ReadFile(filepath.Join("testdata", "fixtures", name))
	if err != nil {
		panic(err)
	}
	return data
}

// Example demonstrates loading an alphabet and a rules document from JSON
// fixtures, compiling one rule, and running it through the reference
// evaluator.
func Example() {
	universe, alphabet, err := examplefixtures.LoadAlphabet(readFixture("alphabet.json"))
	if err != nil {
		panic(err)
	}
	doc, err := examplefixtures.LoadRules(readFixture("rules.json"))
	if err != nil {
		panic(err)
	}
	if err := ruleset.Validate(doc, universe); err != nil {
		panic(err)
	}
	words, err := examplefixtures.LoadInput(readFixture("input.json"))
	if err != nil {
		panic(err)
	}

	var rule ruleset.Rule
	for _, r := range doc.Rules {
		if r.ID == "assimilate-f1" {
			rule = r
		}
	}
	compiled, err := transducer.Compile(rule, universe)
	if err != nil {
		panic(err)
	}
	output, _, err := refeval.ApplyRule(compiled, alphabet, words[0], refeval.Options{})
	if err != nil {
		panic(err)
	}
	fmt.Println(output)
	// Output: [A C A]
}
