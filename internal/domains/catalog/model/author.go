package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"todoapp-backend/internal/shared/types"
)

// Author is the owning side of nothing: books reference authors, and the
// Books set is the cached reverse of those references. The set is maintained
// in lockstep with Book.Author by the methods below and never serialized.
type Author struct {
	ID        *int64      `json:"id"`
	Name      *string     `json:"name"`
	BirthDate *types.Date `json:"birthDate"`
	Books     BookSet     `json:"-"`
}

// Equals implements identifier-based equality: two authors are the same
// entity iff both ids are assigned and equal. An unsaved author equals only
// itself.
func (a *Author) Equals(other *Author) bool {
	if a == other {
		return true
	}
	if a == nil || other == nil {
		return false
	}
	if a.ID == nil || other.ID == nil {
		return false
	}
	return *a.ID == *other.ID
}

// AddBook links book to this author, re-linking exclusively: a book that
// currently belongs to a different author is removed from that author's set
// first. Adding an already-linked book is a no-op beyond set membership.
func (a *Author) AddBook(b *Book) *Author {
	if b == nil {
		return a
	}
	if prev := b.Author; prev != nil && prev != a && !prev.Equals(a) {
		prev.Books.Remove(b)
	}
	b.Author = a
	a.Books.Add(b)
	return a
}

// RemoveBook unlinks book from this author. If the book belongs to someone
// else its author reference is left alone; only the set removal happens
// (a no-op when the book was never here).
func (a *Author) RemoveBook(b *Book) *Author {
	if b == nil {
		return a
	}
	if b.Author != nil && (b.Author == a || b.Author.Equals(a)) {
		b.Author = nil
	}
	a.Books.Remove(b)
	return a
}

// SetBooks replaces the whole book set. Books dropped from the set lose
// their author reference; every book in the new set is linked with AddBook
// semantics, stealing it from a prior owner if needed.
func (a *Author) SetBooks(books []*Book) *Author {
	for _, b := range a.Books.Slice() {
		keep := false
		for _, nb := range books {
			if b.Equals(nb) {
				keep = true
				break
			}
		}
		if !keep {
			b.Author = nil
		}
	}

	a.Books = BookSet{}
	for _, b := range books {
		a.AddBook(b)
	}
	return a
}

// Validate caps field sizes; every field is optional.
func (a Author) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Name, validation.Length(0, 255)),
	)
}
