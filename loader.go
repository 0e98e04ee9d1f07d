package skos

import (
	"context"
	"sort"
	"time"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/skos/clog"
	"github.com/cayleygraph/skos/graph"
)

// Untagged is the language filter sentinel that selects only literals
// without a language tag. The name follows the JSON-LD "@none" convention.
const Untagged = "@none"

// Options control a single load.
type Options struct {
	// MaxDepth bounds resolution of external references; zero disables it.
	MaxDepth int

	// Flat selects the initial read mode: true exposes only entities found
	// in the initial type scan, false exposes everything discovered through
	// resolution as well. The mode is a read-time filter and can be
	// switched later with SetFlat.
	Flat bool

	// NormalizeURI canonicalizes identity keys. Identity if nil.
	NormalizeURI func(string) string

	// Lang filters literal selection: empty selects any literal, Untagged
	// selects only untagged literals, any other value selects literals
	// carrying exactly that tag.
	Lang string

	// Resolver fetches external references; resolution is skipped if nil.
	Resolver Resolver
}

// RDFLoader materializes the SKOS object model from a triple graph.
//
// A loader owns one URI-keyed entity cache, filled once during construction:
// each distinct URI maps to exactly one in-memory entity for the lifetime of
// the loader. Loaders are not safe for concurrent use.
//
// Use RDFBuilder to convert the objects back into a graph.
type RDFLoader struct {
	g    *graph.Graph
	flat bool
	lang string
	norm func(string) string

	cache map[string]Entity

	// URI to kind, for the two read modes. flatKinds is captured before
	// resolution expands the graph, deepKinds after.
	flatKinds map[string]Kind
	deepKinds map[string]Kind
}

// NewRDFLoader resolves external references in g up to opts.MaxDepth and
// loads the resulting graph into the object model. The context bounds the
// resolver's fetches.
func NewRDFLoader(ctx context.Context, g *graph.Graph, opts Options) (*RDFLoader, error) {
	if g == nil {
		return nil, ErrInvalidArgument{Arg: "graph", Reason: "must not be nil"}
	}
	if opts.MaxDepth < 0 {
		return nil, ErrInvalidArgument{Arg: "MaxDepth", Reason: "must be non-negative"}
	}
	norm := opts.NormalizeURI
	if norm == nil {
		norm = func(uri string) string { return uri }
	}
	l := &RDFLoader{
		g:         g,
		flat:      opts.Flat,
		lang:      opts.Lang,
		norm:      norm,
		cache:     make(map[string]Entity),
		flatKinds: make(map[string]Kind),
		deepKinds: make(map[string]Kind),
	}

	l.scanKinds(l.flatKinds)

	gr := GraphResolver{
		MaxDepth:     opts.MaxDepth,
		Resolver:     opts.Resolver,
		NormalizeURI: opts.NormalizeURI,
	}
	gr.Expand(ctx, g)

	l.loadConcepts()
	l.loadCollections()
	l.loadConceptSchemes()
	return l, nil
}

func (l *RDFLoader) scanKinds(dst map[string]Kind) {
	classes := []struct {
		class quad.IRI
		kind  Kind
	}{
		{iriConcept, KindConcept},
		{iriConceptScheme, KindConceptScheme},
		{iriCollection, KindCollection},
	}
	for _, c := range classes {
		for _, subj := range l.g.Subjects(iriType, c.class) {
			if uri, ok := rawURI(subj); ok {
				dst[l.norm(uri)] = c.kind
			}
		}
	}
}

// eligible reports whether the literal passes the language filter and
// returns its text.
func (l *RDFLoader) eligible(v quad.Value) (string, bool) {
	switch v := v.(type) {
	case quad.LangString:
		if l.lang == "" || l.lang == v.Lang {
			return string(v.Value), true
		}
	case quad.String:
		if l.lang == "" || l.lang == Untagged {
			return string(v), true
		}
	case quad.TypedString:
		if l.lang == "" || l.lang == Untagged {
			return string(v.Value), true
		}
	}
	return "", false
}

// preferredLabel selects a label for the subject, preferring skos:prefLabel
// over rdfs:label. The fallback property is consulted only when the primary
// yields no literal passing the language filter. A subject without any
// eligible label gets the empty string.
func (l *RDFLoader) preferredLabel(subj quad.Value) string {
	for _, pred := range []quad.IRI{iriPrefLabel, iriLabel} {
		for _, v := range l.g.Objects(subj, pred) {
			if s, ok := l.eligible(v); ok {
				return s
			}
		}
	}
	return ""
}

// valueForLang returns the first value of the predicate passing the
// language filter, or the empty string.
func (l *RDFLoader) valueForLang(subj quad.Value, pred quad.IRI) string {
	for _, v := range l.g.Objects(subj, pred) {
		if s, ok := l.eligible(v); ok {
			return s
		}
	}
	return ""
}

// valueFromPredicates tries the predicates in priority order and returns the
// first non-empty value.
func (l *RDFLoader) valueFromPredicates(subj quad.Value, preds ...quad.IRI) string {
	for _, pred := range preds {
		if s := stringValue(l.g.Value(subj, pred)); s != "" {
			return s
		}
	}
	return ""
}

// stringValue coerces any graph value to its text form. Missing values
// become the empty string; this is the loader's explicit placeholder for
// absent scalar attributes.
func stringValue(v quad.Value) string {
	switch v := v.(type) {
	case nil:
		return ""
	case quad.String:
		return string(v)
	case quad.LangString:
		return string(v.Value)
	case quad.TypedString:
		return string(v.Value)
	case quad.IRI:
		return string(v)
	case quad.BNode:
		return string(v)
	}
	return v.String()
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseDate converts a date literal to a time. Unparsable input yields nil,
// meaning "no date", never an error.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func (l *RDFLoader) concept(v quad.Value) *Concept {
	uri, ok := rawURI(v)
	if !ok {
		return nil
	}
	c, _ := l.cache[l.norm(uri)].(*Concept)
	return c
}

func (l *RDFLoader) loadConcepts() {
	for _, subj := range l.g.Subjects(iriType, iriConcept) {
		uri, ok := rawURI(subj)
		if !ok {
			continue
		}
		uri = l.norm(uri)
		if clog.V(2) {
			clog.Infof("creating Concept %s", uri)
		}
		c := NewConcept(uri, l.preferredLabel(subj))
		c.Definition = l.valueForLang(subj, iriDefinition)
		c.AltLabel = l.valueForLang(subj, iriAltLabel)
		c.Notation = stringValue(l.g.Value(subj, iriNotation))
		c.Note = stringValue(l.g.Value(subj, iriNote))
		l.cache[uri] = c
		l.deepKinds[uri] = KindConcept
	}

	rels := []struct {
		pred quad.IRI
		add  func(a, b *Concept)
	}{
		{iriNarrower, func(a, b *Concept) { a.Narrower.Add(b) }},
		{iriBroader, func(a, b *Concept) { a.Broader.Add(b) }},
		{iriRelated, func(a, b *Concept) { a.Related().Add(b) }},
		{iriExactMatch, func(a, b *Concept) { a.Synonyms().Add(b) }},
		{iriSameAs, func(a, b *Concept) { a.Synonyms().Add(b) }},
	}
	for _, rel := range rels {
		for _, so := range l.g.SubjectObjects(rel.pred) {
			a, b := l.concept(so[0]), l.concept(so[1])
			if a == nil || b == nil {
				// One endpoint is outside the resolved graph; the edge
				// is dropped, which is the expected outcome of a
				// bounded resolution depth.
				continue
			}
			rel.add(a, b)
		}
	}
}

func (l *RDFLoader) loadCollections() {
	for _, subj := range l.g.Subjects(iriType, iriCollection) {
		uri, ok := rawURI(subj)
		if !ok {
			continue
		}
		uri = l.norm(uri)
		if clog.V(2) {
			clog.Infof("creating Collection %s", uri)
		}
		col := NewCollection(uri, l.valueFromPredicates(subj, iriDCTermsTitle, iriDCTitle))
		col.Description = l.valueFromPredicates(subj, iriDCTermsDescription, iriDCDescription)
		col.Date = parseDate(l.valueFromPredicates(subj, iriDCTermsDate, iriDCDate))
		l.cache[uri] = col
		l.deepKinds[uri] = KindCollection
	}

	for _, so := range l.g.SubjectObjects(iriMember) {
		uri, ok := rawURI(so[0])
		if !ok {
			continue
		}
		col, _ := l.cache[l.norm(uri)].(*Collection)
		member := l.concept(so[1])
		if col == nil || member == nil {
			continue
		}
		col.Members.Add(member)
	}
}

func (l *RDFLoader) loadConceptSchemes() {
	for _, subj := range l.g.Subjects(iriType, iriConceptScheme) {
		uri, ok := rawURI(subj)
		if !ok {
			continue
		}
		uri = l.norm(uri)
		if clog.V(2) {
			clog.Infof("creating ConceptScheme %s", uri)
		}
		s := NewConceptScheme(uri, l.valueFromPredicates(subj, iriDCTermsTitle, iriDCTitle))
		s.Description = l.valueFromPredicates(subj, iriDCTermsDescription, iriDCDescription)
		l.cache[uri] = s
		l.deepKinds[uri] = KindConceptScheme
	}

	// Scheme membership is asserted from either end.
	for _, so := range l.g.SubjectObjects(iriHasTopConcept) {
		uri, ok := rawURI(so[0])
		if !ok {
			continue
		}
		s, _ := l.cache[l.norm(uri)].(*ConceptScheme)
		c := l.concept(so[1])
		if s == nil || c == nil {
			continue
		}
		s.Concepts.Add(c)
	}
	for _, so := range l.g.SubjectObjects(iriInScheme) {
		uri, ok := rawURI(so[1])
		if !ok {
			continue
		}
		s, _ := l.cache[l.norm(uri)].(*ConceptScheme)
		c := l.concept(so[0])
		if s == nil || c == nil {
			continue
		}
		s.Concepts.Add(c)
	}
}

// SetFlat switches the read mode; see Options.Flat.
func (l *RDFLoader) SetFlat(flat bool) { l.flat = flat }

// IsFlat reports the active read mode.
func (l *RDFLoader) IsFlat() bool { return l.flat }

func (l *RDFLoader) activeKinds() map[string]Kind {
	if l.flat {
		return l.flatKinds
	}
	return l.deepKinds
}

// Get returns the entity stored under the URI in the active read mode.
func (l *RDFLoader) Get(uri string) (Entity, bool) {
	if _, ok := l.activeKinds()[uri]; !ok {
		return nil, false
	}
	e, ok := l.cache[uri]
	return e, ok
}

// Len returns the number of entities visible in the active read mode.
func (l *RDFLoader) Len() int { return len(l.activeKinds()) }

// URIs returns the entity URIs visible in the active read mode, in lexical
// order.
func (l *RDFLoader) URIs() []string {
	kinds := l.activeKinds()
	out := make([]string, 0, len(kinds))
	for uri := range kinds {
		out = append(out, uri)
	}
	sort.Strings(out)
	return out
}

// Concepts returns the concepts visible in the active read mode.
func (l *RDFLoader) Concepts() *Concepts {
	out := NewConcepts()
	for uri, kind := range l.activeKinds() {
		if kind != KindConcept {
			continue
		}
		if c, ok := l.cache[uri].(*Concept); ok {
			out.Add(c)
		}
	}
	return out
}

// ConceptSchemes returns the schemes visible in the active read mode.
func (l *RDFLoader) ConceptSchemes() *Schemes {
	out := NewSchemes()
	for uri, kind := range l.activeKinds() {
		if kind != KindConceptScheme {
			continue
		}
		if s, ok := l.cache[uri].(*ConceptScheme); ok {
			out.Add(s)
		}
	}
	return out
}

// Collections returns the collections visible in the active read mode.
func (l *RDFLoader) Collections() *Collections {
	out := NewCollections()
	for uri, kind := range l.activeKinds() {
		if kind != KindCollection {
			continue
		}
		if col, ok := l.cache[uri].(*Collection); ok {
			out.Add(col)
		}
	}
	return out
}
