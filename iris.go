package skos

import (
	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc/rdf"
	"github.com/cayleygraph/quad/voc/rdfs"

	"github.com/cayleygraph/skos/voc/dc"
	"github.com/cayleygraph/skos/voc/dcterms"
	"github.com/cayleygraph/skos/voc/owl2"
	skosvoc "github.com/cayleygraph/skos/voc/skos"
)

// Predicate and class IRIs used by the loader, resolver and builder. The
// graph normalizes IRIs to full form, so short voc constants can be used
// directly in patterns.
var (
	iriType  = quad.IRI(rdf.Type)
	iriLabel = quad.IRI(rdfs.Label)

	iriConcept       = quad.IRI(skosvoc.Concept)
	iriConceptScheme = quad.IRI(skosvoc.ConceptScheme)
	iriCollection    = quad.IRI(skosvoc.Collection)

	iriPrefLabel  = quad.IRI(skosvoc.PrefLabel)
	iriAltLabel   = quad.IRI(skosvoc.AltLabel)
	iriDefinition = quad.IRI(skosvoc.Definition)
	iriNotation   = quad.IRI(skosvoc.Notation)
	iriNote       = quad.IRI(skosvoc.Note)

	iriBroader       = quad.IRI(skosvoc.Broader)
	iriNarrower      = quad.IRI(skosvoc.Narrower)
	iriRelated       = quad.IRI(skosvoc.Related)
	iriExactMatch    = quad.IRI(skosvoc.ExactMatch)
	iriSameAs        = quad.IRI(owl2.SameAs)
	iriMember        = quad.IRI(skosvoc.Member)
	iriHasTopConcept = quad.IRI(skosvoc.HasTopConcept)
	iriInScheme      = quad.IRI(skosvoc.InScheme)

	iriDCTermsTitle       = quad.IRI(dcterms.Title)
	iriDCTermsDescription = quad.IRI(dcterms.Description)
	iriDCTermsDate        = quad.IRI(dcterms.Date)
	iriDCTitle            = quad.IRI(dc.Title)
	iriDCDescription      = quad.IRI(dc.Description)
	iriDCDate             = quad.IRI(dc.Date)
)
