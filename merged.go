package skos

// Merged presents two directionally stored Concepts sets as one undirected
// relation. Symmetric relations (related, exact match) are persisted as
// left/right adjacency pairs to keep self-referential joins unambiguous; the
// view hides the split.
//
// An edge added through the view lands in the owner's left store and in the
// peer's right store, so both concepts observe the relation immediately.
type Merged struct {
	left  *Concepts
	right *Concepts

	owner   *Concept
	inverse func(*Concept) *Merged
}

// Contains reports whether the concept is present on either side.
func (m *Merged) Contains(c *Concept) bool {
	return m.left.Contains(c) || m.right.Contains(c)
}

// ContainsURI reports whether either side stores a concept under the URI.
func (m *Merged) ContainsURI(uri string) bool {
	return m.left.ContainsURI(uri) || m.right.ContainsURI(uri)
}

// Len returns the number of distinct URIs across both sides.
func (m *Merged) Len() int {
	n := m.left.Len()
	for uri := range m.right.m {
		if !m.left.ContainsURI(uri) {
			n++
		}
	}
	return n
}

// Values returns the union of both sides ordered by URI.
//
// Reading normalizes the storage: right-only entries are folded into the
// left store first. The fold is idempotent and never drops entries that are
// present only on the right.
func (m *Merged) Values() []*Concept {
	m.left.Update(m.right)
	return m.left.Values()
}

// URIs returns the distinct URIs across both sides in lexical order.
func (m *Merged) URIs() []string {
	m.left.Update(m.right)
	return m.left.URIs()
}

// Add inserts the concept into the owner's left store and mirrors the owner
// into the peer's right store, keeping the relation symmetric.
func (m *Merged) Add(c *Concept) {
	if c == nil {
		return
	}
	m.left.Add(c)
	if m.owner == nil || c.uri == m.owner.uri {
		return
	}
	peer := m.inverse(c)
	if !peer.Contains(m.owner) {
		peer.right.Add(m.owner)
	}
}

// Discard removes the concept from both sides and removes the owner from
// both of the peer's sides. Removal is safe whichever side the entries
// actually live on.
func (m *Merged) Discard(c *Concept) {
	if c == nil {
		return
	}
	m.left.Discard(c)
	m.right.Discard(c)
	if m.owner == nil || c.uri == m.owner.uri {
		return
	}
	peer := m.inverse(c)
	peer.left.Discard(m.owner)
	peer.right.Discard(m.owner)
}

// Pop removes and returns an arbitrary member, keeping both sides and the
// peer consistent. It returns ErrEmptyCollection if the view is empty.
func (m *Merged) Pop() (*Concept, error) {
	for _, c := range m.left.m {
		m.Discard(c)
		return c, nil
	}
	for _, c := range m.right.m {
		m.Discard(c)
		return c, nil
	}
	return nil, ErrEmptyCollection
}

// Get returns the concept stored under the URI, checking the left store
// first, then the right.
func (m *Merged) Get(uri string) (*Concept, bool) {
	if c, ok := m.left.Get(uri); ok {
		return c, true
	}
	return m.right.Get(uri)
}

// Delete removes the URI from whichever sides contain it. It returns
// ErrNotFound only if the URI is absent from both.
func (m *Merged) Delete(uri string) error {
	c, ok := m.Get(uri)
	if !ok {
		return ErrNotFound{URI: uri}
	}
	m.Discard(c)
	return nil
}

// Equal compares the two views store by store: both left stores must be
// equal and both right stores must be equal. Two views with the same logical
// union but different storage splits are not equal.
func (m *Merged) Equal(other *Merged) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.left.Equal(other.left) && m.right.Equal(other.right)
}
