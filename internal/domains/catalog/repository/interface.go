package repository

import (
	"context"

	"todoapp-backend/internal/domains/catalog/model"
	"todoapp-backend/internal/shared/pagination"
)

// AuthorRepository is the persistence collaborator for authors. Save inserts
// when the id is unassigned and fully overwrites otherwise; the store owns
// id assignment.
type AuthorRepository interface {
	// Save persists the author and returns the stored row, with the id
	// assigned on first insert.
	Save(ctx context.Context, a *model.Author) (*model.Author, error)

	// FindByID returns ErrAuthorNotFound when no row exists.
	FindByID(ctx context.Context, id int64) (*model.Author, error)

	// ExistsByID checks existence without fetching the row.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// DeleteByID removes the row. Deleting an absent id is not an error.
	DeleteByID(ctx context.Context, id int64) error

	// FindAll returns one page of authors.
	FindAll(ctx context.Context, page pagination.Pageable) ([]model.Author, error)

	// Count returns the total number of authors.
	Count(ctx context.Context) (int64, error)
}

// BookRepository mirrors AuthorRepository for books. Reads materialize the
// referenced author so responses can embed it.
type BookRepository interface {
	Save(ctx context.Context, b *model.Book) (*model.Book, error)
	FindByID(ctx context.Context, id int64) (*model.Book, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
	FindAll(ctx context.Context, page pagination.Pageable) ([]model.Book, error)
	Count(ctx context.Context) (int64, error)
}
