package skos

import (
	"fmt"
	"time"
)

// Kind discriminates the three SKOS entity types.
type Kind int

const (
	KindConcept Kind = iota + 1
	KindConceptScheme
	KindCollection
)

func (k Kind) String() string {
	switch k {
	case KindConcept:
		return "Concept"
	case KindConceptScheme:
		return "ConceptScheme"
	case KindCollection:
		return "Collection"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Entity is implemented by Concept, ConceptScheme and Collection.
//
// The URI is the stable identity key of an entity and never changes after
// creation. Kind is an explicit discriminant so that callers can dispatch
// without probing for attributes.
type Entity interface {
	URI() string
	Kind() Kind
}

// Concept is a single term of a controlled vocabulary.
//
// The scalar attributes may be mutated freely. The relation collections
// maintain their inverses: adding B to A.Broader also adds A to B.Narrower,
// adding B to A.Related() makes B.Related() contain A, and so on for
// Synonyms, Collections and Schemes.
type Concept struct {
	uri string

	PrefLabel  string
	Definition string
	Notation   string
	AltLabel   string
	Note       string

	// Broader holds concepts that are more general than this one,
	// Narrower the inverse.
	Broader  *Concepts
	Narrower *Concepts

	// Collections and Schemes are backrefs to the groupings this concept
	// is a member of.
	Collections *Collections
	Schemes     *Schemes

	// Symmetric relations are stored directionally: an edge added on this
	// concept lands in its left store and in the peer's right store. The
	// Related and Synonyms views merge the two.
	relatedLeft   *Concepts
	relatedRight  *Concepts
	synonymsLeft  *Concepts
	synonymsRight *Concepts
}

// NewConcept creates a concept with inverse-maintaining relation collections.
func NewConcept(uri, prefLabel string) *Concept {
	c := &Concept{uri: uri, PrefLabel: prefLabel}

	c.Broader = NewConcepts()
	c.Broader.observe(funcObserver{
		added: func(b *Concept) {
			if !b.Narrower.Contains(c) {
				b.Narrower.Add(c)
			}
		},
		removed: func(b *Concept) {
			if b.Narrower.Contains(c) {
				b.Narrower.Discard(c)
			}
		},
	})

	c.Narrower = NewConcepts()
	c.Narrower.observe(funcObserver{
		added: func(n *Concept) {
			if !n.Broader.Contains(c) {
				n.Broader.Add(c)
			}
		},
		removed: func(n *Concept) {
			if n.Broader.Contains(c) {
				n.Broader.Discard(c)
			}
		},
	})

	c.Collections = NewCollections()
	c.Collections.observe(collectionFuncObserver{
		added: func(col *Collection) {
			if !col.Members.Contains(c) {
				col.Members.Add(c)
			}
		},
		removed: func(col *Collection) {
			if col.Members.Contains(c) {
				col.Members.Discard(c)
			}
		},
	})

	c.Schemes = NewSchemes()
	c.Schemes.observe(schemeFuncObserver{
		added: func(s *ConceptScheme) {
			if !s.Concepts.Contains(c) {
				s.Concepts.Add(c)
			}
		},
		removed: func(s *ConceptScheme) {
			if s.Concepts.Contains(c) {
				s.Concepts.Discard(c)
			}
		},
	})

	c.relatedLeft = NewConcepts()
	c.relatedRight = NewConcepts()
	c.synonymsLeft = NewConcepts()
	c.synonymsRight = NewConcepts()
	return c
}

// URI implements Entity.
func (c *Concept) URI() string { return c.uri }

// Kind implements Entity.
func (c *Concept) Kind() Kind { return KindConcept }

// Related returns the merged view over the associative relation.
func (c *Concept) Related() *Merged {
	return &Merged{left: c.relatedLeft, right: c.relatedRight, owner: c, inverse: (*Concept).Related}
}

// Synonyms returns the merged view over the exact-match relation.
func (c *Concept) Synonyms() *Merged {
	return &Merged{left: c.synonymsLeft, right: c.synonymsRight, owner: c, inverse: (*Concept).Synonyms}
}

// Equal reports structural equality of the scalar attributes. Relations are
// not compared; two concepts with the same URI and labels are equal even if
// they sit in different hierarchies.
func (c *Concept) Equal(other *Concept) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.uri == other.uri &&
		c.PrefLabel == other.PrefLabel &&
		c.Definition == other.Definition &&
		c.Notation == other.Notation &&
		c.AltLabel == other.AltLabel &&
		c.Note == other.Note
}

func (c *Concept) String() string {
	return fmt.Sprintf("Concept<%s>", c.uri)
}

// ConceptScheme is a named vocabulary: a set of concepts.
type ConceptScheme struct {
	uri string

	Title       string
	Description string

	// Concepts holds the member concepts. A concept may belong to any
	// number of schemes.
	Concepts *Concepts
}

// NewConceptScheme creates a scheme whose member set maintains the
// concept-side backref.
func NewConceptScheme(uri, title string) *ConceptScheme {
	s := &ConceptScheme{uri: uri, Title: title}
	s.Concepts = NewConcepts()
	s.Concepts.observe(funcObserver{
		added: func(c *Concept) {
			if !c.Schemes.Contains(s) {
				c.Schemes.Add(s)
			}
		},
		removed: func(c *Concept) {
			if c.Schemes.Contains(s) {
				c.Schemes.Discard(s)
			}
		},
	})
	return s
}

// URI implements Entity.
func (s *ConceptScheme) URI() string { return s.uri }

// Kind implements Entity.
func (s *ConceptScheme) Kind() Kind { return KindConceptScheme }

// Equal reports structural equality including the member set.
func (s *ConceptScheme) Equal(other *ConceptScheme) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.uri == other.uri &&
		s.Title == other.Title &&
		s.Description == other.Description &&
		s.Concepts.Equal(other.Concepts)
}

func (s *ConceptScheme) String() string {
	return fmt.Sprintf("ConceptScheme<%s>", s.uri)
}

// Collection is a named grouping of concepts, distinct from a scheme.
type Collection struct {
	uri string

	Title       string
	Description string
	// Date is optional; a nil date is valid and means "no date".
	Date *time.Time

	// Members holds the member concepts.
	Members *Concepts
}

// NewCollection creates a collection whose member set maintains the
// concept-side backref.
func NewCollection(uri, title string) *Collection {
	col := &Collection{uri: uri, Title: title}
	col.Members = NewConcepts()
	col.Members.observe(funcObserver{
		added: func(c *Concept) {
			if !c.Collections.Contains(col) {
				c.Collections.Add(col)
			}
		},
		removed: func(c *Concept) {
			if c.Collections.Contains(col) {
				c.Collections.Discard(col)
			}
		},
	})
	return col
}

// URI implements Entity.
func (col *Collection) URI() string { return col.uri }

// Kind implements Entity.
func (col *Collection) Kind() Kind { return KindCollection }

// Equal reports structural equality including the member set and date.
func (col *Collection) Equal(other *Collection) bool {
	if col == nil || other == nil {
		return col == other
	}
	if col.uri != other.uri || col.Title != other.Title || col.Description != other.Description {
		return false
	}
	if (col.Date == nil) != (other.Date == nil) {
		return false
	}
	if col.Date != nil && !col.Date.Equal(*other.Date) {
		return false
	}
	return col.Members.Equal(other.Members)
}

func (col *Collection) String() string {
	return fmt.Sprintf("Collection<%s>", col.uri)
}
