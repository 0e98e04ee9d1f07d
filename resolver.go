package skos

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/skos/clog"
	"github.com/cayleygraph/skos/graph"
)

// Resolver fetches the defining subgraph of an external resource. The call
// must honor the context for cancellation and deadlines.
type Resolver interface {
	Resolve(ctx context.Context, uri string) (*graph.Graph, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, uri string) (*graph.Graph, error)

func (f ResolverFunc) Resolve(ctx context.Context, uri string) (*graph.Graph, error) {
	return f(ctx, uri)
}

// HTTPResolver fetches resources over HTTP and decodes them with a codec
// picked by the response content type, or by the URI extension as a
// fallback.
type HTTPResolver struct {
	// Client used for requests; http.DefaultClient if nil.
	Client *http.Client
	// Accept overrides the Accept header sent with each request.
	Accept string
}

// DefaultAccept lists the preferred response formats.
const DefaultAccept = `application/ld+json, application/n-quads;q=0.9, application/n-triples;q=0.8`

func (r *HTTPResolver) Resolve(ctx context.Context, uri string) (*graph.Graph, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}
	accept := r.Accept
	if accept == "" {
		accept = DefaultAccept
	}
	req.Header.Set("Accept", accept)

	cli := r.Client
	if cli == nil {
		cli = http.DefaultClient
	}
	resp, err := cli.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("resolve <%s>: unexpected status %v", uri, resp.Status)
	}

	var format *quad.Format
	if ctype := resp.Header.Get("Content-Type"); ctype != "" {
		if mt, _, err := mime.ParseMediaType(ctype); err == nil {
			format = quad.FormatByMime(mt)
		}
	}
	if format == nil {
		format = quad.FormatByExt(filepath.Ext(req.URL.Path))
	}
	if format == nil {
		format = quad.FormatByName("nquads")
	}
	if format == nil || format.Reader == nil {
		return nil, fmt.Errorf("resolve <%s>: no decodable format", uri)
	}

	qr := format.Reader(resp.Body)
	defer qr.Close()
	g := graph.New()
	if _, err := quad.Copy(g, qr); err != nil {
		return nil, fmt.Errorf("resolve <%s>: %v", uri, err)
	}
	return g, nil
}

// GraphResolver expands a partial graph by fetching externally referenced
// concepts, schemes and collections until MaxDepth is reached.
//
// A fetch failure is local to its URI: it is logged and the URI stays
// unresolved, which later makes the loader drop the affected edges.
type GraphResolver struct {
	// MaxDepth bounds the recursion; zero disables resolution entirely.
	MaxDepth int
	// Resolver fetches the defining subgraph for one URI.
	Resolver Resolver
	// NormalizeURI canonicalizes identity keys. Identity if nil.
	NormalizeURI func(string) string
}

// Predicates whose objects refer to resources worth resolving.
var resolvablePredicates = []quad.IRI{
	iriBroader,
	iriNarrower,
	iriExactMatch,
	iriSameAs,
	iriRelated,
	iriMember,
	iriHasTopConcept,
}

// Classes whose instances count as already defined in a graph.
var resolvableClasses = []quad.IRI{
	iriConceptScheme,
	iriConcept,
	iriCollection,
}

// Expand fetches missing definitions into g and returns the number of URIs
// fetched successfully. Each URI is fetched at most once across the whole
// recursion, even if the reference graph is cyclic.
func (r *GraphResolver) Expand(ctx context.Context, g *graph.Graph) int {
	if r.Resolver == nil || r.MaxDepth <= 0 {
		return 0
	}
	return r.expand(ctx, g, g, 0, make(map[string]struct{}))
}

func (r *GraphResolver) expand(ctx context.Context, root, cur *graph.Graph, depth int, resolved map[string]struct{}) int {
	if depth >= r.MaxDepth {
		return 0
	}

	for _, class := range resolvableClasses {
		for _, subj := range cur.Subjects(iriType, class) {
			if uri, ok := r.uriOf(subj); ok {
				resolved[uri] = struct{}{}
			}
		}
	}

	unresolved := make(map[string]struct{})
	for _, pred := range resolvablePredicates {
		for _, so := range cur.SubjectObjects(pred) {
			uri, ok := r.uriOf(so[1])
			if !ok {
				continue
			}
			if _, ok := resolved[uri]; !ok {
				unresolved[uri] = struct{}{}
			}
		}
	}

	// Mark everything as resolved before fetching: a URI referenced from
	// several statements or depths must be fetched at most once.
	for uri := range unresolved {
		resolved[uri] = struct{}{}
	}

	n := 0
	for uri := range unresolved {
		clog.Infof("resolving <%s>", uri)
		sub, err := r.Resolver.Resolve(ctx, uri)
		if err != nil {
			clog.Warningf("cannot resolve <%s>: %v", uri, err)
			continue
		}
		root.AddAll(sub)
		n++
		n += r.expand(ctx, root, sub, depth+1, resolved)
	}
	return n
}

func (r *GraphResolver) uriOf(v quad.Value) (string, bool) {
	uri, ok := rawURI(v)
	if !ok {
		return "", false
	}
	if r.NormalizeURI != nil {
		uri = r.NormalizeURI(uri)
	}
	return uri, true
}

// rawURI extracts the identity key from a node value. Literals have no
// identity and are skipped.
func rawURI(v quad.Value) (string, bool) {
	switch v := v.(type) {
	case quad.IRI:
		return string(v), true
	case quad.BNode:
		return string(v), true
	}
	return "", false
}
