// Package dcterms contains constants of the DCMI Metadata Terms vocabulary.
package dcterms

import "github.com/cayleygraph/quad/voc"

func init() {
	voc.Register(voc.Namespace{Full: NS, Prefix: Prefix})
}

const (
	NS     = `http://purl.org/dc/terms/`
	Prefix = `dcterms:`
)

const (
	// Date of creation of the resource.
	Created = Prefix + `created`
	// A point or period of time associated with an event in the lifecycle of the resource.
	Date = Prefix + `date`
	// An account of the resource.
	Description = Prefix + `description`
	// An unambiguous reference to the resource within a given context.
	Identifier = Prefix + `identifier`
	// A legal document giving official permission to do something with the resource.
	License = Prefix + `license`
	// Date on which the resource was changed.
	Modified = Prefix + `modified`
	// A name given to the resource.
	Title = Prefix + `title`
)
