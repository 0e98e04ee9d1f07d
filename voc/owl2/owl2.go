// Package owl2 contains constants of the legacy OWL 2 XML serialization namespace.
//
// Some SKOS exporters use this namespace for sameAs assertions instead of the
// final OWL namespace, so the loader has to recognize it.
package owl2

import "github.com/cayleygraph/quad/voc"

func init() {
	voc.Register(voc.Namespace{Full: NS, Prefix: Prefix})
}

const (
	NS     = `http://www.w3.org/2006/12/owl2-xml#`
	Prefix = `owl2:`
)

const (
	// The subject and object denote the same individual.
	SameAs = Prefix + `sameAs`
)
