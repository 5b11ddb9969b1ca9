package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"todoapp-backend/internal/shared/types"
)

// Book references at most one Author; the author's Books set mirrors that
// reference. Price is an exact decimal: 10.0 and 10.00 are the same price.
type Book struct {
	ID              *int64           `json:"id"`
	Title           *string          `json:"title"`
	Description     *string          `json:"description"`
	PublicationDate *types.Date      `json:"publicationDate"`
	Price           *decimal.Decimal `json:"price"`
	Author          *Author          `json:"author"`
}

// Equals implements identifier-based equality, same rule as Author.Equals.
func (b *Book) Equals(other *Book) bool {
	if b == other {
		return true
	}
	if b == nil || other == nil {
		return false
	}
	if b.ID == nil || other.ID == nil {
		return false
	}
	return *b.ID == *other.ID
}

// SetAuthor is the book-side relationship entry point. A non-nil author
// takes ownership via AddBook; nil unlinks the book from its current author.
func (b *Book) SetAuthor(a *Author) *Book {
	if a == nil {
		if prev := b.Author; prev != nil {
			prev.RemoveBook(b)
		}
		b.Author = nil
		return b
	}
	a.AddBook(b)
	return b
}

// PriceEquals compares prices by numeric value, treating nil as equal only
// to nil.
func (b *Book) PriceEquals(other *Book) bool {
	if b.Price == nil || other.Price == nil {
		return b.Price == other.Price
	}
	return b.Price.Equal(*other.Price)
}

// Validate caps field sizes; every field is optional.
func (b Book) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Title, validation.Length(0, 255)),
		validation.Field(&b.Description, validation.Length(0, 4000)),
	)
}
