package envelope

import (
	"embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

var (
	schemaMu sync.Mutex
	schemas  = map[string]*jsonschema.Schema{}
)

// SchemaFor returns the compiled success-shape schema named name, compiling
// it on first use. Schema names are the Result values of the boundary op
// table, one file per name under schemas/.
func SchemaFor(name string) (*jsonschema.Schema, error) {
	schemaMu.Lock()
	defer schemaMu.Unlock()

	if s, ok := schemas[name]; ok {
		return s, nil
	}
	file := "schemas/" + name + ".schema.json"
	raw, err := schemaFS.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("unknown result schema %q", name)
	}
	s, err := jsonschema.CompileString(file, string(raw))
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", file, err)
	}
	schemas[name] = s
	return s, nil
}
