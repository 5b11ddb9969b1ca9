package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"todoapp-backend/internal/domains/catalog/model"
	"todoapp-backend/internal/shared/pagination"
	"todoapp-backend/pkg/cache"
)

const (
	bookCacheKeyPrefix = "book:"
	bookPageKeyPrefix  = "books:page:"
)

// bookPostgres implements BookRepository. The author reference is stored as
// an author_id column; reads LEFT JOIN authors so the entity comes back with
// its author materialized.
type bookPostgres struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewBookRepository(pool *pgxpool.Pool, cache cache.Cache) BookRepository {
	return &bookPostgres{pool: pool, cache: cache}
}

const bookSelect = `
    SELECT b.id, b.title, b.description, b.publication_date, b.price, b.author_id,
           a.name, a.birth_date
    FROM books b
    LEFT JOIN authors a ON a.id = b.author_id
`

func (r *bookPostgres) Save(ctx context.Context, b *model.Book) (*model.Book, error) {
	if b.ID == nil {
		return r.insert(ctx, b)
	}
	return r.update(ctx, b)
}

func (r *bookPostgres) insert(ctx context.Context, b *model.Book) (*model.Book, error) {
	query := `
        INSERT INTO books (title, description, publication_date, price, author_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `

	var id int64
	err := r.pool.QueryRow(ctx, query,
		b.Title, b.Description, dateValue(b.PublicationDate), b.Price, authorID(b),
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	r.invalidate(ctx, id)
	return r.fetch(ctx, id)
}

func (r *bookPostgres) update(ctx context.Context, b *model.Book) (*model.Book, error) {
	query := `
        UPDATE books
        SET title = $1, description = $2, publication_date = $3, price = $4, author_id = $5
        WHERE id = $6
    `

	tag, err := r.pool.Exec(ctx, query,
		b.Title, b.Description, dateValue(b.PublicationDate), b.Price, authorID(b), *b.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, model.ErrBookNotFound
	}

	r.invalidate(ctx, *b.ID)
	return r.fetch(ctx, *b.ID)
}

func (r *bookPostgres) fetch(ctx context.Context, id int64) (*model.Book, error) {
	b, err := scanBook(r.pool.QueryRow(ctx, bookSelect+` WHERE b.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}
	return b, nil
}

func (r *bookPostgres) FindByID(ctx context.Context, id int64) (*model.Book, error) {
	cacheKey := fmt.Sprintf("%s%d", bookCacheKeyPrefix, id)

	var cached model.Book
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	b, err := r.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	_ = r.cache.Set(ctx, cacheKey, b, cacheTTL)
	return b, nil
}

func (r *bookPostgres) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM books WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check book existence: %w", err)
	}
	return exists, nil
}

// DeleteByID is idempotent: deleting an id that is already gone succeeds.
func (r *bookPostgres) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	r.invalidate(ctx, id)
	return nil
}

func (r *bookPostgres) FindAll(ctx context.Context, page pagination.Pageable) ([]model.Book, error) {
	page = page.Normalize()
	cacheKey := fmt.Sprintf("%s%d:%d:%s:%s",
		bookPageKeyPrefix, page.Limit, page.Offset, page.SortBy, page.Order)

	var cached []model.Book
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	query := fmt.Sprintf(`%s ORDER BY %s %s LIMIT $1 OFFSET $2`,
		bookSelect, bookSortColumn(page.SortBy), sortOrder(page.Order))

	rows, err := r.pool.Query(ctx, query, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := []model.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, books, cacheTTL)
	return books, nil
}

func (r *bookPostgres) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return total, nil
}

func (r *bookPostgres) invalidate(ctx context.Context, id int64) {
	_ = r.cache.Delete(ctx, fmt.Sprintf("%s%d", bookCacheKeyPrefix, id))
	_ = r.cache.DeletePattern(ctx, bookPageKeyPrefix+"*")
}

func scanBook(rw row) (*model.Book, error) {
	var b model.Book
	var publicationDate *time.Time
	var price *decimal.Decimal
	var authorID *int64
	var authorName *string
	var authorBirth *time.Time

	err := rw.Scan(&b.ID, &b.Title, &b.Description, &publicationDate, &price,
		&authorID, &authorName, &authorBirth)
	if err != nil {
		return nil, err
	}

	b.PublicationDate = dateFromTime(publicationDate)
	b.Price = price
	if authorID != nil {
		b.Author = &model.Author{
			ID:        authorID,
			Name:      authorName,
			BirthDate: dateFromTime(authorBirth),
		}
	}
	return &b, nil
}

func authorID(b *model.Book) *int64 {
	if b.Author == nil {
		return nil
	}
	return b.Author.ID
}

func bookSortColumn(sortBy string) string {
	switch sortBy {
	case "title":
		return "b.title"
	case "publication_date", "publicationDate":
		return "b.publication_date"
	case "price":
		return "b.price"
	default:
		return "b.id"
	}
}
