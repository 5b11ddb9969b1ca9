package service

import (
	"context"

	"todoapp-backend/internal/domains/catalog/model"
	"todoapp-backend/internal/shared/pagination"
)

// AuthorService reconciles incoming author payloads against stored state.
// All identifier preconditions are checked before anything is persisted.
type AuthorService interface {
	// Create persists a new author. The payload must not carry an id.
	// Errors: ErrIDAlreadySet.
	Create(ctx context.Context, payload *model.Author) (*model.Author, error)

	// GetByID fetches one author. Errors: ErrAuthorNotFound.
	GetByID(ctx context.Context, id int64) (*model.Author, error)

	// GetAll returns one page of authors plus the total count.
	GetAll(ctx context.Context, page pagination.Pageable) ([]model.Author, int64, error)

	// Update fully replaces the stored author: the payload is the new
	// state, and fields it leaves unset are cleared.
	// Errors: ErrIDMissing, ErrIDMismatch, ErrAuthorNotFound.
	Update(ctx context.Context, id int64, payload *model.Author) (*model.Author, error)

	// PartialUpdate merges the patch onto the stored author: only present,
	// non-null fields overwrite. Same precondition errors as Update.
	PartialUpdate(ctx context.Context, id int64, patch *model.AuthorPatch) (*model.Author, error)

	// Delete removes the author. Deleting an absent id is not an error.
	Delete(ctx context.Context, id int64) error
}

// BookService is the book-side reconciler. Identical contract; the author
// reference follows the same full-replace / merge-if-present rules as the
// scalar fields.
type BookService interface {
	Create(ctx context.Context, payload *model.Book) (*model.Book, error)
	GetByID(ctx context.Context, id int64) (*model.Book, error)
	GetAll(ctx context.Context, page pagination.Pageable) ([]model.Book, int64, error)
	Update(ctx context.Context, id int64, payload *model.Book) (*model.Book, error)
	PartialUpdate(ctx context.Context, id int64, patch *model.BookPatch) (*model.Book, error)
	Delete(ctx context.Context, id int64) error
}
