package skos

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConceptsSetSemantics(t *testing.T) {
	a := NewConcept("http://example.com/a", "A")
	b := NewConcept("http://example.com/b", "B")

	s := NewConcepts(a, b)
	require.Equal(t, 2, s.Len())
	require.True(t, s.Contains(a))
	require.True(t, s.ContainsURI("http://example.com/b"))
	require.False(t, s.ContainsURI("http://example.com/c"))

	// Adding under an existing URI replaces, not duplicates.
	a2 := NewConcept("http://example.com/a", "A prime")
	s.Add(a2)
	require.Equal(t, 2, s.Len())
	got, ok := s.Get("http://example.com/a")
	require.True(t, ok)
	require.Equal(t, "A prime", got.PrefLabel)

	s.Discard(b)
	require.Equal(t, 1, s.Len())
	s.Discard(b) // absent, no-op
	require.Equal(t, 1, s.Len())
}

func TestConceptsPop(t *testing.T) {
	a := NewConcept("http://example.com/a", "A")
	s := NewConcepts(a)

	got, err := s.Pop()
	require.NoError(t, err)
	require.Same(t, a, got)
	require.Equal(t, 0, s.Len())

	_, err = s.Pop()
	require.ErrorIs(t, err, ErrEmptyCollection)
}

func TestConceptsDelete(t *testing.T) {
	a := NewConcept("http://example.com/a", "A")
	s := NewConcepts(a)

	require.NoError(t, s.Delete("http://example.com/a"))
	err := s.Delete("http://example.com/a")
	require.Error(t, err)
	require.True(t, IsNotFound(err))
}

func TestConceptsOrdering(t *testing.T) {
	s := NewConcepts(
		NewConcept("http://example.com/c", "C"),
		NewConcept("http://example.com/a", "A"),
		NewConcept("http://example.com/b", "B"),
	)
	require.Equal(t, []string{
		"http://example.com/a",
		"http://example.com/b",
		"http://example.com/c",
	}, s.URIs())

	vals := s.Values()
	require.Len(t, vals, 3)
	require.Equal(t, "http://example.com/a", vals[0].URI())
}

func TestConceptsUpdateAndEqual(t *testing.T) {
	a := NewConcept("http://example.com/a", "A")
	b := NewConcept("http://example.com/b", "B")

	s := NewConcepts(a)
	s.Update(NewConcepts(a, b))
	require.Equal(t, 2, s.Len())

	require.True(t, s.Equal(NewConcepts(a, b)))
	require.False(t, s.Equal(NewConcepts(a)))

	// Equality is structural, not pointer identity.
	require.True(t, s.Equal(NewConcepts(
		NewConcept("http://example.com/a", "A"),
		NewConcept("http://example.com/b", "B"),
	)))
	require.False(t, s.Equal(NewConcepts(
		NewConcept("http://example.com/a", "other"),
		NewConcept("http://example.com/b", "B"),
	)))
}

func TestConceptsObserver(t *testing.T) {
	var added, removed []string
	s := NewConcepts()
	s.Observe(funcObserver{
		added:   func(c *Concept) { added = append(added, c.URI()) },
		removed: func(c *Concept) { removed = append(removed, c.URI()) },
	})

	a := NewConcept("http://example.com/a", "A")
	s.Add(a)
	s.Discard(a)
	s.Discard(a) // absent members do not notify

	require.Equal(t, []string{"http://example.com/a"}, added)
	require.Equal(t, []string{"http://example.com/a"}, removed)
}

func TestCollectionsSet(t *testing.T) {
	c1 := NewCollection("http://example.com/col/1", "One")
	c2 := NewCollection("http://example.com/col/2", "Two")

	s := NewCollections(c2, c1)
	require.Equal(t, 2, s.Len())
	require.True(t, s.Contains(c1))
	require.Equal(t, []string{"http://example.com/col/1", "http://example.com/col/2"}, s.URIs())

	got, ok := s.Get("http://example.com/col/2")
	require.True(t, ok)
	require.Same(t, c2, got)

	s.Discard(c1)
	require.False(t, s.Contains(c1))
}

func TestSchemesSet(t *testing.T) {
	s1 := NewConceptScheme("http://example.com/scheme/1", "One")
	s2 := NewConceptScheme("http://example.com/scheme/2", "Two")

	s := NewSchemes(s1, s2)
	require.Equal(t, 2, s.Len())
	require.True(t, s.Contains(s2))

	s.Discard(s2)
	_, ok := s.Get("http://example.com/scheme/2")
	require.False(t, ok)
	require.Equal(t, []string{"http://example.com/scheme/1"}, s.URIs())
}
