package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"todoapp-backend/internal/shared/types"
)

// Merge-patch payloads. Each field is tri-state: a key missing from the
// document or carrying an explicit null leaves the stored value untouched;
// only a present non-null value overwrites. An empty string is a present
// value and does overwrite.

type AuthorPatch struct {
	ID        *int64                  `json:"id"`
	Name      types.Patch[string]     `json:"name"`
	BirthDate types.Patch[types.Date] `json:"birthDate"`
}

// ApplyTo merges the present fields onto the stored author.
func (p *AuthorPatch) ApplyTo(a *Author) {
	if p.Name.Present() {
		name := p.Name.Value
		a.Name = &name
	}
	if p.BirthDate.Present() {
		birthDate := p.BirthDate.Value
		a.BirthDate = &birthDate
	}
}

func (p AuthorPatch) Validate() error {
	if p.Name.Present() {
		if err := validation.Validate(p.Name.Value, validation.Length(0, 255)); err != nil {
			return err
		}
	}
	return nil
}

type BookPatch struct {
	ID              *int64                       `json:"id"`
	Title           types.Patch[string]          `json:"title"`
	Description     types.Patch[string]          `json:"description"`
	PublicationDate types.Patch[types.Date]      `json:"publicationDate"`
	Price           types.Patch[decimal.Decimal] `json:"price"`
	Author          types.Patch[Author]          `json:"author"`
}

// ApplyTo merges the present fields onto the stored book. A present author
// reference goes through SetAuthor so both relationship sides stay
// consistent.
func (p *BookPatch) ApplyTo(b *Book) {
	if p.Title.Present() {
		title := p.Title.Value
		b.Title = &title
	}
	if p.Description.Present() {
		description := p.Description.Value
		b.Description = &description
	}
	if p.PublicationDate.Present() {
		publicationDate := p.PublicationDate.Value
		b.PublicationDate = &publicationDate
	}
	if p.Price.Present() {
		price := p.Price.Value
		b.Price = &price
	}
	if p.Author.Present() {
		author := p.Author.Value
		b.SetAuthor(&author)
	}
}

func (p BookPatch) Validate() error {
	if p.Title.Present() {
		if err := validation.Validate(p.Title.Value, validation.Length(0, 255)); err != nil {
			return err
		}
	}
	if p.Description.Present() {
		if err := validation.Validate(p.Description.Value, validation.Length(0, 4000)); err != nil {
			return err
		}
	}
	return nil
}
