package skos

import "sort"

// Observer is notified after a Concepts collection mutates. Inverse relation
// maintenance is built on it, and persistence layers can hook the same
// interface to mirror membership changes into a store.
type Observer interface {
	Added(c *Concept)
	Removed(c *Concept)
}

type funcObserver struct {
	added   func(c *Concept)
	removed func(c *Concept)
}

func (o funcObserver) Added(c *Concept)   { o.added(c) }
func (o funcObserver) Removed(c *Concept) { o.removed(c) }

// Concepts is a set of concepts with map-style access keyed by URI.
//
// It is the endpoint type for every to-many relation in the model. It is not
// a skos:Collection; see Collection for that.
type Concepts struct {
	m   map[string]*Concept
	obs []Observer
}

// NewConcepts creates a set populated with the given concepts.
func NewConcepts(values ...*Concept) *Concepts {
	s := &Concepts{m: make(map[string]*Concept)}
	s.Add(values...)
	return s
}

// Observe registers an observer for future mutations.
func (s *Concepts) Observe(obs Observer) { s.obs = append(s.obs, obs) }

// observe is the internal registration used for inverse wiring; it exists so
// the exported method can stay the single extension point in the docs.
func (s *Concepts) observe(obs Observer) { s.Observe(obs) }

func (s *Concepts) notifyAdded(c *Concept) {
	for _, o := range s.obs {
		o.Added(c)
	}
}

func (s *Concepts) notifyRemoved(c *Concept) {
	for _, o := range s.obs {
		o.Removed(c)
	}
}

// Len returns the number of members.
func (s *Concepts) Len() int { return len(s.m) }

// Contains reports whether a concept with the same URI is a member.
func (s *Concepts) Contains(c *Concept) bool {
	if c == nil {
		return false
	}
	_, ok := s.m[c.uri]
	return ok
}

// ContainsURI reports whether a concept is stored under the given URI.
func (s *Concepts) ContainsURI(uri string) bool {
	_, ok := s.m[uri]
	return ok
}

// Add upserts concepts by URI: an existing member with the same URI is
// replaced, not duplicated.
func (s *Concepts) Add(list ...*Concept) {
	for _, c := range list {
		if c == nil {
			continue
		}
		s.m[c.uri] = c
		s.notifyAdded(c)
	}
}

// Discard removes concepts from the set. Absent members are ignored.
func (s *Concepts) Discard(list ...*Concept) {
	for _, c := range list {
		if c == nil {
			continue
		}
		if _, ok := s.m[c.uri]; !ok {
			continue
		}
		delete(s.m, c.uri)
		s.notifyRemoved(c)
	}
}

// Pop removes and returns an arbitrary member. It returns ErrEmptyCollection
// if the set is empty.
func (s *Concepts) Pop() (*Concept, error) {
	for _, c := range s.m {
		s.Discard(c)
		return c, nil
	}
	return nil, ErrEmptyCollection
}

// Get returns the concept stored under the given URI.
func (s *Concepts) Get(uri string) (*Concept, bool) {
	c, ok := s.m[uri]
	return c, ok
}

// Delete removes the concept stored under the given URI. It returns
// ErrNotFound if no concept is stored under it.
func (s *Concepts) Delete(uri string) error {
	c, ok := s.m[uri]
	if !ok {
		return ErrNotFound{URI: uri}
	}
	s.Discard(c)
	return nil
}

// Update bulk-inserts all members of the other set.
func (s *Concepts) Update(other *Concepts) {
	if other == nil {
		return
	}
	for _, c := range other.m {
		s.Add(c)
	}
}

// URIs returns the member URIs in lexical order.
func (s *Concepts) URIs() []string {
	out := make([]string, 0, len(s.m))
	for uri := range s.m {
		out = append(out, uri)
	}
	sort.Strings(out)
	return out
}

// Values returns the members ordered by URI.
func (s *Concepts) Values() []*Concept {
	out := make([]*Concept, 0, len(s.m))
	for _, uri := range s.URIs() {
		out = append(out, s.m[uri])
	}
	return out
}

// Equal reports whether both sets hold structurally equal concepts under the
// same URIs.
func (s *Concepts) Equal(other *Concepts) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.EqualMap(other.m)
}

// EqualMap compares the set against a plain URI-to-concept map.
func (s *Concepts) EqualMap(m map[string]*Concept) bool {
	if len(s.m) != len(m) {
		return false
	}
	for uri, c := range s.m {
		o, ok := m[uri]
		if !ok || !c.Equal(o) {
			return false
		}
	}
	return true
}

// CollectionObserver is notified after a Collections set mutates.
type CollectionObserver interface {
	Added(col *Collection)
	Removed(col *Collection)
}

type collectionFuncObserver struct {
	added   func(col *Collection)
	removed func(col *Collection)
}

func (o collectionFuncObserver) Added(col *Collection)   { o.added(col) }
func (o collectionFuncObserver) Removed(col *Collection) { o.removed(col) }

// Collections is a set of collections keyed by URI. It backs the
// concept-side endpoint of collection membership.
type Collections struct {
	m   map[string]*Collection
	obs []CollectionObserver
}

// NewCollections creates a set populated with the given collections.
func NewCollections(values ...*Collection) *Collections {
	s := &Collections{m: make(map[string]*Collection)}
	s.Add(values...)
	return s
}

// Observe registers an observer for future mutations.
func (s *Collections) Observe(obs CollectionObserver) { s.obs = append(s.obs, obs) }

func (s *Collections) observe(obs CollectionObserver) { s.Observe(obs) }

// Len returns the number of members.
func (s *Collections) Len() int { return len(s.m) }

// Contains reports whether a collection with the same URI is a member.
func (s *Collections) Contains(col *Collection) bool {
	if col == nil {
		return false
	}
	_, ok := s.m[col.uri]
	return ok
}

// Add upserts collections by URI.
func (s *Collections) Add(list ...*Collection) {
	for _, col := range list {
		if col == nil {
			continue
		}
		s.m[col.uri] = col
		for _, o := range s.obs {
			o.Added(col)
		}
	}
}

// Discard removes collections from the set. Absent members are ignored.
func (s *Collections) Discard(list ...*Collection) {
	for _, col := range list {
		if col == nil {
			continue
		}
		if _, ok := s.m[col.uri]; !ok {
			continue
		}
		delete(s.m, col.uri)
		for _, o := range s.obs {
			o.Removed(col)
		}
	}
}

// Get returns the collection stored under the given URI.
func (s *Collections) Get(uri string) (*Collection, bool) {
	col, ok := s.m[uri]
	return col, ok
}

// URIs returns the member URIs in lexical order.
func (s *Collections) URIs() []string {
	out := make([]string, 0, len(s.m))
	for uri := range s.m {
		out = append(out, uri)
	}
	sort.Strings(out)
	return out
}

// Values returns the members ordered by URI.
func (s *Collections) Values() []*Collection {
	out := make([]*Collection, 0, len(s.m))
	for _, uri := range s.URIs() {
		out = append(out, s.m[uri])
	}
	return out
}

// Equal reports whether both sets hold structurally equal collections under
// the same URIs.
func (s *Collections) Equal(other *Collections) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.m) != len(other.m) {
		return false
	}
	for uri, col := range s.m {
		o, ok := other.m[uri]
		if !ok || !col.Equal(o) {
			return false
		}
	}
	return true
}

// SchemeObserver is notified after a Schemes set mutates.
type SchemeObserver interface {
	Added(s *ConceptScheme)
	Removed(s *ConceptScheme)
}

type schemeFuncObserver struct {
	added   func(s *ConceptScheme)
	removed func(s *ConceptScheme)
}

func (o schemeFuncObserver) Added(s *ConceptScheme)   { o.added(s) }
func (o schemeFuncObserver) Removed(s *ConceptScheme) { o.removed(s) }

// Schemes is a set of concept schemes keyed by URI. It backs the
// concept-side endpoint of scheme membership.
type Schemes struct {
	m   map[string]*ConceptScheme
	obs []SchemeObserver
}

// NewSchemes creates a set populated with the given schemes.
func NewSchemes(values ...*ConceptScheme) *Schemes {
	s := &Schemes{m: make(map[string]*ConceptScheme)}
	s.Add(values...)
	return s
}

// Observe registers an observer for future mutations.
func (s *Schemes) Observe(obs SchemeObserver) { s.obs = append(s.obs, obs) }

func (s *Schemes) observe(obs SchemeObserver) { s.Observe(obs) }

// Len returns the number of members.
func (s *Schemes) Len() int { return len(s.m) }

// Contains reports whether a scheme with the same URI is a member.
func (s *Schemes) Contains(sc *ConceptScheme) bool {
	if sc == nil {
		return false
	}
	_, ok := s.m[sc.uri]
	return ok
}

// Add upserts schemes by URI.
func (s *Schemes) Add(list ...*ConceptScheme) {
	for _, sc := range list {
		if sc == nil {
			continue
		}
		s.m[sc.uri] = sc
		for _, o := range s.obs {
			o.Added(sc)
		}
	}
}

// Discard removes schemes from the set. Absent members are ignored.
func (s *Schemes) Discard(list ...*ConceptScheme) {
	for _, sc := range list {
		if sc == nil {
			continue
		}
		if _, ok := s.m[sc.uri]; !ok {
			continue
		}
		delete(s.m, sc.uri)
		for _, o := range s.obs {
			o.Removed(sc)
		}
	}
}

// Get returns the scheme stored under the given URI.
func (s *Schemes) Get(uri string) (*ConceptScheme, bool) {
	sc, ok := s.m[uri]
	return sc, ok
}

// URIs returns the member URIs in lexical order.
func (s *Schemes) URIs() []string {
	out := make([]string, 0, len(s.m))
	for uri := range s.m {
		out = append(out, uri)
	}
	sort.Strings(out)
	return out
}

// Values returns the members ordered by URI.
func (s *Schemes) Values() []*ConceptScheme {
	out := make([]*ConceptScheme, 0, len(s.m))
	for _, uri := range s.URIs() {
		out = append(out, s.m[uri])
	}
	return out
}

// Equal reports whether both sets hold structurally equal schemes under the
// same URIs.
func (s *Schemes) Equal(other *Schemes) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.m) != len(other.m) {
		return false
	}
	for uri, sc := range s.m {
		o, ok := other.m[uri]
		if !ok || !sc.Equal(o) {
			return false
		}
	}
	return true
}
