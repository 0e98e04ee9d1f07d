package skos

import (
	"testing"
	"time"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/skos/graph"
)

func TestBuildConceptScalars(t *testing.T) {
	const a = "http://example.com/a"
	c := NewConcept(a, "apple")
	c.Definition = "a fruit"
	c.Notation = "532"

	g := graph.New()
	var b RDFBuilder
	require.NoError(t, b.Build(g, c))

	require.True(t, g.Has(tr(a, iriType, iriConcept)))
	require.True(t, g.Has(tr(a, iriPrefLabel, quad.String("apple"))))
	require.True(t, g.Has(tr(a, iriDefinition, quad.String("a fruit"))))
	require.True(t, g.Has(tr(a, iriNotation, quad.String("532"))))
	// Unset scalars are emitted as empty literals.
	require.True(t, g.Has(tr(a, iriAltLabel, quad.String(""))))
	require.True(t, g.Has(tr(a, iriNote, quad.String(""))))
}

func TestBuildNilAndUnsupported(t *testing.T) {
	g := graph.New()
	var b RDFBuilder
	require.NoError(t, b.Build(g, nil, NewConcept("http://example.com/a", "A")))
	require.Equal(t, 1, len(g.Subjects(iriType, iriConcept)))
}

func TestBuildCyclicRelations(t *testing.T) {
	a := NewConcept("http://example.com/a", "A")
	b := NewConcept("http://example.com/b", "B")
	a.Related().Add(b)
	a.Synonyms().Add(b)
	b.Narrower.Add(a)

	g := graph.New()
	var builder RDFBuilder
	require.NoError(t, builder.Build(g, a))

	// Both concepts appear exactly once despite the cycles.
	require.Len(t, g.Subjects(iriType, iriConcept), 2)

	require.True(t, g.Has(tr("http://example.com/a", iriRelated, quad.IRI("http://example.com/b"))))
	require.True(t, g.Has(tr("http://example.com/a", iriExactMatch, quad.IRI("http://example.com/b"))))
	require.True(t, g.Has(tr("http://example.com/a", iriBroader, quad.IRI("http://example.com/b"))))
	require.True(t, g.Has(tr("http://example.com/b", iriNarrower, quad.IRI("http://example.com/a"))))
}

func TestBuildCollection(t *testing.T) {
	const col = "http://example.com/col"
	c := NewCollection(col, "Fruits")
	c.Description = "edible"
	d := time.Date(2009, 8, 2, 0, 0, 0, 0, time.UTC)
	c.Date = &d
	c.Members.Add(NewConcept("http://example.com/a", "A"))

	g := graph.New()
	var b RDFBuilder
	require.NoError(t, b.Build(g, c))

	require.True(t, g.Has(tr(col, iriType, iriCollection)))
	require.True(t, g.Has(tr(col, iriDCTermsTitle, quad.String("Fruits"))))
	require.True(t, g.Has(tr(col, iriDCTermsDescription, quad.String("edible"))))
	require.True(t, g.Has(tr(col, iriDCTermsDate, quad.String("2009-08-02T00:00:00Z"))))
	require.True(t, g.Has(tr(col, iriMember, quad.IRI("http://example.com/a"))))
	require.Len(t, g.Subjects(iriType, iriConcept), 1)
}

func TestBuildCollectionWithoutDate(t *testing.T) {
	c := NewCollection("http://example.com/col", "Fruits")
	g := graph.New()
	var b RDFBuilder
	require.NoError(t, b.Build(g, c))
	require.Empty(t, g.Objects(quad.IRI("http://example.com/col"), iriDCTermsDate))
}

func TestBuildConceptScheme(t *testing.T) {
	const s = "http://example.com/scheme"
	scheme := NewConceptScheme(s, "Taxonomy")
	scheme.Description = "of fruit"
	scheme.Concepts.Add(NewConcept("http://example.com/a", "A"))

	g := graph.New()
	var b RDFBuilder
	require.NoError(t, b.Build(g, scheme))

	require.True(t, g.Has(tr(s, iriType, iriConceptScheme)))
	require.True(t, g.Has(tr(s, iriDCTermsTitle, quad.String("Taxonomy"))))
	require.True(t, g.Has(tr(s, iriDCTermsDescription, quad.String("of fruit"))))
	require.True(t, g.Has(tr(s, iriHasTopConcept, quad.IRI("http://example.com/a"))))
	require.Len(t, g.Subjects(iriType, iriConcept), 1)
}

func TestBuildLoadRoundTrip(t *testing.T) {
	apple := NewConcept("http://example.com/apple", "apple")
	apple.Definition = "a fruit"
	fruit := NewConcept("http://example.com/fruit", "fruit")
	pome := NewConcept("http://example.com/pome", "pome")
	apple.Broader.Add(fruit)
	apple.Related().Add(pome)

	col := NewCollection("http://example.com/col", "Fruits")
	d := time.Date(2009, 8, 2, 0, 0, 0, 0, time.UTC)
	col.Date = &d
	col.Members.Add(apple)

	scheme := NewConceptScheme("http://example.com/scheme", "Taxonomy")
	scheme.Concepts.Add(fruit)

	g := graph.New()
	var b RDFBuilder
	require.NoError(t, b.Build(g, apple, col, scheme))

	l := mustLoad(t, g, Options{})
	require.Equal(t, 5, l.Len())

	apple2 := mustConcept(t, l, "http://example.com/apple")
	fruit2 := mustConcept(t, l, "http://example.com/fruit")
	pome2 := mustConcept(t, l, "http://example.com/pome")
	require.True(t, apple.Equal(apple2))
	require.True(t, fruit.Equal(fruit2))
	require.True(t, pome.Equal(pome2))

	require.True(t, apple2.Broader.Contains(fruit2))
	require.True(t, fruit2.Narrower.Contains(apple2))
	require.True(t, apple2.Related().Contains(pome2))
	require.True(t, pome2.Related().Contains(apple2))

	e, ok := l.Get("http://example.com/col")
	require.True(t, ok)
	col2 := e.(*Collection)
	require.Equal(t, "Fruits", col2.Title)
	require.NotNil(t, col2.Date)
	require.True(t, col2.Date.Equal(d))
	require.True(t, col2.Members.Contains(apple2))

	e, ok = l.Get("http://example.com/scheme")
	require.True(t, ok)
	scheme2 := e.(*ConceptScheme)
	require.True(t, scheme2.Concepts.Contains(fruit2))

	// Building the loaded objects again reproduces the same graph.
	g2 := graph.New()
	require.NoError(t, b.Build(g2, apple2, col2, scheme2))
	require.Equal(t, g.Size(), g2.Size())
	for _, q := range g.Quads() {
		require.True(t, g2.Has(q), "missing %v", q)
	}
}
