package graph

import (
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc/rdf"
	"github.com/stretchr/testify/require"
)

func tr(s, p string, o quad.Value) quad.Quad {
	return quad.Quad{Subject: quad.IRI(s), Predicate: quad.IRI(p), Object: o}
}

func TestAddDeduplicates(t *testing.T) {
	g := New()
	q := tr("http://example.com/a", "http://example.com/p", quad.String("v"))
	require.True(t, g.Add(q))
	require.False(t, g.Add(q))
	require.Equal(t, 1, g.Size())
	require.True(t, g.Has(q))
}

func TestAddIgnoresLabel(t *testing.T) {
	g := New()
	q := tr("http://example.com/a", "http://example.com/p", quad.String("v"))
	q.Label = quad.IRI("http://example.com/g1")
	require.True(t, g.Add(q))
	q.Label = quad.IRI("http://example.com/g2")
	require.False(t, g.Add(q))
	require.Equal(t, 1, g.Size())
}

func TestNormalizesIRIs(t *testing.T) {
	const full = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	g := New()
	require.True(t, g.Add(tr("http://example.com/a", rdf.Type, quad.IRI("http://example.com/T"))))
	// The short and full forms address the same statement.
	require.False(t, g.Add(tr("http://example.com/a", full, quad.IRI("http://example.com/T"))))
	require.True(t, g.Has(tr("http://example.com/a", full, quad.IRI("http://example.com/T"))))

	subjs := g.Subjects(quad.IRI(rdf.Type), quad.IRI("http://example.com/T"))
	require.Equal(t, []quad.Value{quad.IRI("http://example.com/a")}, subjs)
}

func TestPatternQueries(t *testing.T) {
	g := New(
		tr("http://example.com/a", "http://example.com/p", quad.IRI("http://example.com/b")),
		tr("http://example.com/a", "http://example.com/p", quad.IRI("http://example.com/c")),
		tr("http://example.com/b", "http://example.com/p", quad.IRI("http://example.com/c")),
		tr("http://example.com/a", "http://example.com/q", quad.String("x")),
	)

	objs := g.Objects(quad.IRI("http://example.com/a"), "http://example.com/p")
	require.Equal(t, []quad.Value{
		quad.IRI("http://example.com/b"),
		quad.IRI("http://example.com/c"),
	}, objs)

	subjs := g.Subjects("http://example.com/p", quad.IRI("http://example.com/c"))
	require.Equal(t, []quad.Value{
		quad.IRI("http://example.com/a"),
		quad.IRI("http://example.com/b"),
	}, subjs)

	pairs := g.SubjectObjects("http://example.com/p")
	require.Len(t, pairs, 3)
	require.Equal(t, [2]quad.Value{
		quad.IRI("http://example.com/a"), quad.IRI("http://example.com/b"),
	}, pairs[0])

	require.Equal(t, quad.String("x"), g.Value(quad.IRI("http://example.com/a"), "http://example.com/q"))
	require.Nil(t, g.Value(quad.IRI("http://example.com/z"), "http://example.com/q"))
}

func TestAddAll(t *testing.T) {
	g := New(tr("http://example.com/a", "http://example.com/p", quad.String("v")))
	o := New(
		tr("http://example.com/a", "http://example.com/p", quad.String("v")),
		tr("http://example.com/b", "http://example.com/p", quad.String("w")),
	)
	require.Equal(t, 1, g.AddAll(o))
	require.Equal(t, 2, g.Size())
	require.Equal(t, 0, g.AddAll(nil))
}

func TestReaderWriterRoundTrip(t *testing.T) {
	g := New(
		tr("http://example.com/a", "http://example.com/p", quad.IRI("http://example.com/b")),
		tr("http://example.com/b", "http://example.com/p", quad.String("v")),
	)
	cp := New()
	n, err := quad.Copy(cp, g.Reader())
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, g.Quads(), cp.Quads())
}

func TestAddInvalid(t *testing.T) {
	g := New()
	require.False(t, g.Add(quad.Quad{Subject: quad.IRI("http://example.com/a")}))
	require.Equal(t, 0, g.Size())
}
