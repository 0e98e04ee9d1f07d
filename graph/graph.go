// Package graph implements an in-memory RDF triple graph queryable by pattern.
//
// The graph is the exchange format between the SKOS loader and builder and
// the quad codecs: it implements quad.Writer, so any registered format can be
// copied into it, and exposes a quad.Reader for serialization.
package graph

import (
	"github.com/cayleygraph/quad"
)

// triple is the dedup key for a statement. Labels are ignored; the SKOS
// model is strictly triple-based.
type triple struct {
	subject   quad.Value
	predicate quad.Value
	object    quad.Value
}

// Graph is an indexed set of triples. Iteration order is insertion order.
//
// All IRIs are normalized to their full form on write, so short forms from
// the voc packages and full forms from parsed files address the same nodes.
type Graph struct {
	quads []quad.Quad
	set   map[triple]struct{}

	spo map[quad.Value]map[quad.Value][]quad.Value // subject -> predicate -> objects
	pos map[quad.Value]map[quad.Value][]quad.Value // predicate -> object -> subjects
	pso map[quad.Value][][2]quad.Value             // predicate -> (subject, object) pairs
}

// New creates a graph, optionally populated with the given quads.
func New(quads ...quad.Quad) *Graph {
	g := &Graph{
		set: make(map[triple]struct{}),
		spo: make(map[quad.Value]map[quad.Value][]quad.Value),
		pos: make(map[quad.Value]map[quad.Value][]quad.Value),
		pso: make(map[quad.Value][][2]quad.Value),
	}
	for _, q := range quads {
		g.Add(q)
	}
	return g
}

func normalize(v quad.Value) quad.Value {
	if iri, ok := v.(quad.IRI); ok {
		return iri.Full()
	}
	return v
}

// Add inserts a triple, ignoring the quad label. It reports whether the
// triple was not present before.
func (g *Graph) Add(q quad.Quad) bool {
	if !q.IsValid() {
		return false
	}
	t := triple{
		subject:   normalize(q.Subject),
		predicate: normalize(q.Predicate),
		object:    normalize(q.Object),
	}
	if _, ok := g.set[t]; ok {
		return false
	}
	g.set[t] = struct{}{}
	g.quads = append(g.quads, quad.Quad{Subject: t.subject, Predicate: t.predicate, Object: t.object})

	m, ok := g.spo[t.subject]
	if !ok {
		m = make(map[quad.Value][]quad.Value)
		g.spo[t.subject] = m
	}
	m[t.predicate] = append(m[t.predicate], t.object)

	m, ok = g.pos[t.predicate]
	if !ok {
		m = make(map[quad.Value][]quad.Value)
		g.pos[t.predicate] = m
	}
	m[t.object] = append(m[t.object], t.subject)

	g.pso[t.predicate] = append(g.pso[t.predicate], [2]quad.Value{t.subject, t.object})
	return true
}

// AddAll merges all triples of the other graph and returns the number of
// triples that were new.
func (g *Graph) AddAll(o *Graph) int {
	if o == nil {
		return 0
	}
	n := 0
	for _, q := range o.quads {
		if g.Add(q) {
			n++
		}
	}
	return n
}

// Has reports whether the triple is present. The quad label is ignored.
func (g *Graph) Has(q quad.Quad) bool {
	_, ok := g.set[triple{
		subject:   normalize(q.Subject),
		predicate: normalize(q.Predicate),
		object:    normalize(q.Object),
	}]
	return ok
}

// Size returns the number of distinct triples.
func (g *Graph) Size() int { return len(g.quads) }

// Quads returns all triples in insertion order.
func (g *Graph) Quads() []quad.Quad {
	out := make([]quad.Quad, len(g.quads))
	copy(out, g.quads)
	return out
}

// Objects returns all objects of statements with the given subject and
// predicate, in insertion order.
func (g *Graph) Objects(subject quad.Value, predicate quad.IRI) []quad.Value {
	m, ok := g.spo[normalize(subject)]
	if !ok {
		return nil
	}
	return m[normalize(predicate)]
}

// Subjects returns all subjects of statements with the given predicate and
// object, in insertion order.
func (g *Graph) Subjects(predicate quad.IRI, object quad.Value) []quad.Value {
	m, ok := g.pos[normalize(predicate)]
	if !ok {
		return nil
	}
	return m[normalize(object)]
}

// SubjectObjects returns all (subject, object) pairs of statements with the
// given predicate, in insertion order.
func (g *Graph) SubjectObjects(predicate quad.IRI) [][2]quad.Value {
	return g.pso[normalize(predicate)]
}

// Value returns the object of the first statement with the given subject and
// predicate, or nil if there is none.
func (g *Graph) Value(subject quad.Value, predicate quad.IRI) quad.Value {
	objs := g.Objects(subject, predicate)
	if len(objs) == 0 {
		return nil
	}
	return objs[0]
}

// WriteQuad implements quad.Writer.
func (g *Graph) WriteQuad(q quad.Quad) error {
	g.Add(q)
	return nil
}

// WriteQuads implements quad.BatchWriter.
func (g *Graph) WriteQuads(buf []quad.Quad) (int, error) {
	for _, q := range buf {
		g.Add(q)
	}
	return len(buf), nil
}

// Reader returns a reader over a snapshot of the graph, suitable for
// quad.Copy into any format writer.
func (g *Graph) Reader() quad.Reader {
	return quad.NewReader(g.Quads())
}
