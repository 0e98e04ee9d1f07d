package skos

import (
	// register quad formats for the HTTP resolver and the CLI
	_ "github.com/cayleygraph/quad/jsonld"
	_ "github.com/cayleygraph/quad/nquads"
)
