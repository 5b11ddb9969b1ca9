package model

// BookSet is a small set keyed by entity equality: saved books dedupe by id,
// unsaved books by instance. Linear scans are fine at the sizes an author's
// in-memory book collection reaches.
type BookSet struct {
	items []*Book
}

func NewBookSet(books ...*Book) BookSet {
	var s BookSet
	for _, b := range books {
		s.Add(b)
	}
	return s
}

func (s *BookSet) Contains(b *Book) bool {
	for _, item := range s.items {
		if item.Equals(b) {
			return true
		}
	}
	return false
}

// Add inserts b unless an equal book is already a member.
func (s *BookSet) Add(b *Book) {
	if b == nil || s.Contains(b) {
		return
	}
	s.items = append(s.items, b)
}

// Remove drops every member equal to b.
func (s *BookSet) Remove(b *Book) {
	filtered := s.items[:0]
	for _, item := range s.items {
		if !item.Equals(b) {
			filtered = append(filtered, item)
		}
	}
	s.items = filtered
}

func (s *BookSet) Len() int {
	return len(s.items)
}

// Slice returns the members in insertion order. The returned slice is a
// copy; mutating it does not affect the set.
func (s *BookSet) Slice() []*Book {
	out := make([]*Book, len(s.items))
	copy(out, s.items)
	return out
}
