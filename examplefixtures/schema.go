/*
Package examplefixtures loads the alphabet/rules/input document shapes of
the external-interfaces section into the core's own types, for this
module's tests and Example functions. It is not a general-purpose
JSON/TOML/CSV parser — format parsing beyond these three fixture shapes is
a collaborator concern — but the core needs something to load test data
with, and JSON plus schema validation is the smallest thing that does that
end-to-end.
*/
package examplefixtures

import (
	"embed"
	"encoding/json"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/kappaphon/sncfst/sncerr"
)

//go:embed testdata/schema/*.json
var schemaFS embed.FS

var (
	compileOnce sync.Once
	compiled    map[string]*jsonschema.Schema
	compileErr  error
)

func schemas() (map[string]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		names := []string{"alphabet.schema.json", "rules.schema.json", "input.schema.json"}
		for _, name := range names {
			raw, err := schemaFS.ReadFile("testdata/schema/" + name)
			if err != nil {
				compileErr = sncerr.Schema("examplefixtures: reading embedded schema %q: %v", name, err)
				return
			}
			var doc any
			if err := json.Unmarshal(raw, &doc); err != nil {
				compileErr = sncerr.Schema("examplefixtures: parsing embedded schema %q: %v", name, err)
				return
			}
			if err := c.AddResource(name, doc); err != nil {
				compileErr = sncerr.Schema("examplefixtures: adding schema resource %q: %v", name, err)
				return
			}
		}
		compiled = make(map[string]*jsonschema.Schema, len(names))
		for _, name := range names {
			sch, err := c.Compile(name)
			if err != nil {
				compileErr = sncerr.Schema("examplefixtures: compiling schema %q: %v", name, err)
				return
			}
			compiled[name] = sch
		}
	})
	return compiled, compileErr
}

func validate(schemaName string, data []byte) (any, error) {
	schemaSet, err := schemas()
	if err != nil {
		return nil, err
	}
	sch, ok := schemaSet[schemaName]
	if !ok {
		return nil, sncerr.InternalInvariant("examplefixtures: no compiled schema named %q", schemaName)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, sncerr.Schema("examplefixtures: invalid JSON: %v", err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, sncerr.Schema("examplefixtures: document fails schema %q: %v", schemaName, err)
	}
	return doc, nil
}
