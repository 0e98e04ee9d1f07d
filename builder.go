package skos

import (
	"fmt"
	"time"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/skos/graph"
)

// RDFBuilder converts entities from the object model back into triples. It
// is the inverse of RDFLoader: loading a built graph yields structurally
// equal entities.
//
// Each entity contributes its statements at most once per graph, keyed by
// its rdf:type triple, so cyclic relation structures terminate.
type RDFBuilder struct{}

// Build serializes the entities and everything reachable from them into g.
func (b *RDFBuilder) Build(g *graph.Graph, entities ...Entity) error {
	if g == nil {
		return ErrInvalidArgument{Arg: "graph", Reason: "must not be nil"}
	}
	for _, e := range entities {
		switch e := e.(type) {
		case nil:
			continue
		case *Concept:
			b.BuildConcept(g, e)
		case *ConceptScheme:
			b.BuildConceptScheme(g, e)
		case *Collection:
			b.BuildCollection(g, e)
		default:
			return ErrInvalidArgument{
				Arg:    "entities",
				Reason: fmt.Sprintf("unsupported entity type %T", e),
			}
		}
	}
	return nil
}

func triple(s quad.Value, p quad.IRI, o quad.Value) quad.Quad {
	return quad.Quad{Subject: s, Predicate: p, Object: o}
}

// BuildConcept emits the concept's statements and recurses into its
// relations. Scalar attributes are always emitted, empty ones as empty
// literals, so a round trip through the loader reproduces the placeholders.
func (b *RDFBuilder) BuildConcept(g *graph.Graph, c *Concept) {
	if c == nil {
		return
	}
	node := quad.IRI(c.uri)
	// The type triple doubles as the visited marker for cycle breaking.
	if g.Has(triple(node, iriType, iriConcept)) {
		return
	}
	g.Add(triple(node, iriType, iriConcept))
	g.Add(triple(node, iriNotation, quad.String(c.Notation)))
	g.Add(triple(node, iriPrefLabel, quad.String(c.PrefLabel)))
	g.Add(triple(node, iriDefinition, quad.String(c.Definition)))
	g.Add(triple(node, iriAltLabel, quad.String(c.AltLabel)))
	g.Add(triple(node, iriNote, quad.String(c.Note)))

	for _, syn := range c.Synonyms().Values() {
		g.Add(triple(node, iriExactMatch, quad.IRI(syn.uri)))
		b.BuildConcept(g, syn)
	}
	for _, rel := range c.Related().Values() {
		g.Add(triple(node, iriRelated, quad.IRI(rel.uri)))
		b.BuildConcept(g, rel)
	}
	for _, broader := range c.Broader.Values() {
		g.Add(triple(node, iriBroader, quad.IRI(broader.uri)))
		b.BuildConcept(g, broader)
	}
	for _, narrower := range c.Narrower.Values() {
		g.Add(triple(node, iriNarrower, quad.IRI(narrower.uri)))
		b.BuildConcept(g, narrower)
	}
	for _, col := range c.Collections.Values() {
		b.BuildCollection(g, col)
	}
	for _, s := range c.Schemes.Values() {
		b.BuildConceptScheme(g, s)
	}
}

// BuildCollection emits the collection's statements and recurses into its
// members.
func (b *RDFBuilder) BuildCollection(g *graph.Graph, col *Collection) {
	if col == nil {
		return
	}
	node := quad.IRI(col.uri)
	if g.Has(triple(node, iriType, iriCollection)) {
		return
	}
	g.Add(triple(node, iriType, iriCollection))
	g.Add(triple(node, iriDCTermsTitle, quad.String(col.Title)))
	g.Add(triple(node, iriDCTermsDescription, quad.String(col.Description)))
	if col.Date != nil {
		g.Add(triple(node, iriDCTermsDate, quad.String(col.Date.Format(time.RFC3339))))
	}
	for _, member := range col.Members.Values() {
		g.Add(triple(node, iriMember, quad.IRI(member.uri)))
		b.BuildConcept(g, member)
	}
}

// BuildConceptScheme emits the scheme's statements and recurses into its
// concepts.
func (b *RDFBuilder) BuildConceptScheme(g *graph.Graph, s *ConceptScheme) {
	if s == nil {
		return
	}
	node := quad.IRI(s.uri)
	if g.Has(triple(node, iriType, iriConceptScheme)) {
		return
	}
	g.Add(triple(node, iriType, iriConceptScheme))
	g.Add(triple(node, iriDCTermsTitle, quad.String(s.Title)))
	g.Add(triple(node, iriDCTermsDescription, quad.String(s.Description)))
	for _, c := range s.Concepts.Values() {
		g.Add(triple(node, iriHasTopConcept, quad.IRI(c.uri)))
		b.BuildConcept(g, c)
	}
}
