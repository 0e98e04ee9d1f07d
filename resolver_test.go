package skos

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/skos/graph"
)

// chainResolver serves a linear broader-chain: each fetched concept
// references the next one.
func chainResolver(calls map[string]int, next map[string]string) ResolverFunc {
	return func(ctx context.Context, uri string) (*graph.Graph, error) {
		calls[uri]++
		g := graph.New(tr(uri, iriType, iriConcept))
		if n, ok := next[uri]; ok {
			g.Add(tr(uri, iriBroader, quad.IRI(n)))
		}
		return g, nil
	}
}

func TestGraphResolverDisabled(t *testing.T) {
	g := graph.New(
		tr("http://example.com/a", iriType, iriConcept),
		tr("http://example.com/a", iriBroader, quad.IRI("http://example.com/b")),
	)
	r := GraphResolver{MaxDepth: 0, Resolver: ResolverFunc(func(ctx context.Context, uri string) (*graph.Graph, error) {
		t.Fatalf("unexpected fetch of %s", uri)
		return nil, nil
	})}
	require.Equal(t, 0, r.Expand(context.Background(), g))

	r = GraphResolver{MaxDepth: 3}
	require.Equal(t, 0, r.Expand(context.Background(), g))
}

func TestGraphResolverDepthBound(t *testing.T) {
	const (
		a = "http://example.com/a"
		b = "http://example.com/b"
		c = "http://example.com/c"
		d = "http://example.com/d"
	)
	next := map[string]string{b: c, c: d}

	for _, tc := range []struct {
		depth   int
		fetched int
	}{
		{depth: 1, fetched: 1}, // b only
		{depth: 2, fetched: 2}, // b, c
		{depth: 3, fetched: 3}, // b, c, d
		{depth: 9, fetched: 3}, // chain exhausted
	} {
		calls := make(map[string]int)
		g := graph.New(
			tr(a, iriType, iriConcept),
			tr(a, iriBroader, quad.IRI(b)),
		)
		r := GraphResolver{MaxDepth: tc.depth, Resolver: chainResolver(calls, next)}
		require.Equal(t, tc.fetched, r.Expand(context.Background(), g), "depth %d", tc.depth)
	}
}

func TestGraphResolverFetchesOnce(t *testing.T) {
	const (
		a = "http://example.com/a"
		b = "http://example.com/b"
	)
	calls := make(map[string]int)
	// a and b reference each other; the cycle must not refetch.
	g := graph.New(
		tr(a, iriType, iriConcept),
		tr(a, iriBroader, quad.IRI(b)),
		tr(a, iriRelated, quad.IRI(b)),
	)
	r := GraphResolver{MaxDepth: 10, Resolver: chainResolver(calls, map[string]string{b: a})}
	require.Equal(t, 1, r.Expand(context.Background(), g))
	require.Equal(t, map[string]int{b: 1}, calls)
	require.True(t, g.Has(tr(b, iriType, iriConcept)))
}

func TestGraphResolverSkipsLiterals(t *testing.T) {
	g := graph.New(
		tr("http://example.com/a", iriType, iriConcept),
		tr("http://example.com/a", iriBroader, quad.String("not a node")),
	)
	r := GraphResolver{MaxDepth: 1, Resolver: ResolverFunc(func(ctx context.Context, uri string) (*graph.Graph, error) {
		t.Fatalf("unexpected fetch of %s", uri)
		return nil, nil
	})}
	require.Equal(t, 0, r.Expand(context.Background(), g))
}

func TestGraphResolverPartialFailure(t *testing.T) {
	const (
		a = "http://example.com/a"
		b = "http://example.com/b"
		c = "http://example.com/c"
	)
	calls := make(map[string]int)
	resolver := ResolverFunc(func(ctx context.Context, uri string) (*graph.Graph, error) {
		calls[uri]++
		if uri == b {
			return nil, errors.New("unreachable")
		}
		return graph.New(tr(uri, iriType, iriConcept)), nil
	})
	g := graph.New(
		tr(a, iriType, iriConcept),
		tr(a, iriBroader, quad.IRI(b)),
		tr(a, iriBroader, quad.IRI(c)),
	)
	r := GraphResolver{MaxDepth: 2, Resolver: resolver}
	require.Equal(t, 1, r.Expand(context.Background(), g))
	require.Equal(t, 1, calls[b])
	require.Equal(t, 1, calls[c])
	require.False(t, g.Has(tr(b, iriType, iriConcept)))
	require.True(t, g.Has(tr(c, iriType, iriConcept)))
}

func TestHTTPResolver(t *testing.T) {
	const doc = `<http://example.com/b> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2004/02/skos/core#Concept> .
`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NotEmpty(t, r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/n-quads")
		io.WriteString(w, doc)
	}))
	defer srv.Close()

	r := &HTTPResolver{Client: srv.Client()}
	g, err := r.Resolve(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, 1, g.Size())
	require.True(t, g.Has(tr("http://example.com/b", iriType, iriConcept)))
}

func TestHTTPResolverStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	r := &HTTPResolver{Client: srv.Client()}
	_, err := r.Resolve(context.Background(), srv.URL)
	require.Error(t, err)
}
