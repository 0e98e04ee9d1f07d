// Package skos contains constants of the SKOS Simple Knowledge Organization System vocabulary.
package skos

import "github.com/cayleygraph/quad/voc"

func init() {
	voc.Register(voc.Namespace{Full: NS, Prefix: Prefix})
}

const (
	NS     = `http://www.w3.org/2004/02/skos/core#`
	Prefix = `skos:`
)

const (
	// Classes

	// A unit of thought: an idea, meaning, or category of objects and events.
	Concept = Prefix + `Concept`
	// An aggregation of one or more SKOS concepts.
	ConceptScheme = Prefix + `ConceptScheme`
	// A meaningful grouping of concepts, distinct from a scheme.
	Collection = Prefix + `Collection`
	// An ordered grouping of concepts.
	OrderedCollection = Prefix + `OrderedCollection`

	// Lexical labels

	// The preferred lexical label for a resource, in a given language.
	PrefLabel = Prefix + `prefLabel`
	// An alternative lexical label for a resource.
	AltLabel = Prefix + `altLabel`
	// A lexical label for a resource that should be hidden from text search.
	HiddenLabel = Prefix + `hiddenLabel`
	// A notation is a string used to uniquely identify a concept within a scheme.
	Notation = Prefix + `notation`

	// Documentation

	// A general note, for any purpose.
	Note = Prefix + `note`
	// A note about a modification to a concept.
	ChangeNote = Prefix + `changeNote`
	// A statement or formal explanation of the meaning of a concept.
	Definition = Prefix + `definition`
	// A note for an editor, translator or maintainer of the vocabulary.
	EditorialNote = Prefix + `editorialNote`
	// An example of the use of a concept.
	Example = Prefix + `example`
	// A note about the past state/use/meaning of a concept.
	HistoryNote = Prefix + `historyNote`
	// A note that helps to clarify the meaning and/or use of a concept.
	ScopeNote = Prefix + `scopeNote`

	// Scheme membership

	// Relates a resource to a concept scheme in which it is included.
	InScheme = Prefix + `inScheme`
	// Relates a concept scheme to a concept which is topmost in its hierarchy.
	HasTopConcept = Prefix + `hasTopConcept`
	// Relates a concept to the concept scheme that it is a top level concept of.
	TopConceptOf = Prefix + `topConceptOf`

	// Semantic relations

	// Relates a concept to a concept that is more general in meaning.
	Broader = Prefix + `broader`
	// Relates a concept to a concept that is more specific in meaning.
	Narrower = Prefix + `narrower`
	// Relates a concept to a concept with which there is an associative link.
	Related = Prefix + `related`
	// Transitive closure of skos:broader.
	BroaderTransitive = Prefix + `broaderTransitive`
	// Transitive closure of skos:narrower.
	NarrowerTransitive = Prefix + `narrowerTransitive`
	// Links a concept to a concept related by meaning (super-property).
	SemanticRelation = Prefix + `semanticRelation`

	// Collection membership

	// Relates a collection to one of its members.
	Member = Prefix + `member`
	// Relates an ordered collection to the RDF list containing its members.
	MemberList = Prefix + `memberList`

	// Mapping relations

	// Relates two concepts coming from different schemes with comparable meaning.
	MappingRelation = Prefix + `mappingRelation`
	// Two concepts are interchangeable across a wide range of applications.
	ExactMatch = Prefix + `exactMatch`
	// Two concepts are sufficiently similar to be used interchangeably in some applications.
	CloseMatch = Prefix + `closeMatch`
	// Mapping analogue of skos:broader.
	BroadMatch = Prefix + `broadMatch`
	// Mapping analogue of skos:narrower.
	NarrowMatch = Prefix + `narrowMatch`
	// Mapping analogue of skos:related.
	RelatedMatch = Prefix + `relatedMatch`
)
