package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"todoapp-backend/internal/domains/catalog/model"
	"todoapp-backend/internal/shared/pagination"
	"todoapp-backend/internal/shared/types"
	"todoapp-backend/pkg/cache"
)

const (
	authorCacheKeyPrefix = "author:"
	authorPageKeyPrefix  = "authors:page:"
	cacheTTL             = 15 * time.Minute
)

// authorPostgres implements AuthorRepository over pgxpool with a Redis
// read-through cache. Cache failures never fail the request.
type authorPostgres struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewAuthorRepository(pool *pgxpool.Pool, cache cache.Cache) AuthorRepository {
	return &authorPostgres{pool: pool, cache: cache}
}

func (r *authorPostgres) Save(ctx context.Context, a *model.Author) (*model.Author, error) {
	if a.ID == nil {
		return r.insert(ctx, a)
	}
	return r.update(ctx, a)
}

func (r *authorPostgres) insert(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        INSERT INTO authors (name, birth_date)
        VALUES ($1, $2)
        RETURNING id, name, birth_date
    `

	saved, err := scanAuthor(r.pool.QueryRow(ctx, query, a.Name, dateValue(a.BirthDate)))
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	r.invalidate(ctx, *saved.ID)
	return saved, nil
}

func (r *authorPostgres) update(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        UPDATE authors
        SET name = $1, birth_date = $2
        WHERE id = $3
        RETURNING id, name, birth_date
    `

	saved, err := scanAuthor(r.pool.QueryRow(ctx, query, a.Name, dateValue(a.BirthDate), *a.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	r.invalidate(ctx, *saved.ID)
	return saved, nil
}

func (r *authorPostgres) FindByID(ctx context.Context, id int64) (*model.Author, error) {
	cacheKey := fmt.Sprintf("%s%d", authorCacheKeyPrefix, id)

	var cached model.Author
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := `SELECT id, name, birth_date FROM authors WHERE id = $1`

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, a, cacheTTL)
	return a, nil
}

func (r *authorPostgres) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}
	return exists, nil
}

// DeleteByID is idempotent: deleting an id that is already gone succeeds.
// Constraint violations (author still referenced by books) pass through.
func (r *authorPostgres) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	r.invalidate(ctx, id)
	return nil
}

func (r *authorPostgres) FindAll(ctx context.Context, page pagination.Pageable) ([]model.Author, error) {
	page = page.Normalize()
	cacheKey := fmt.Sprintf("%s%d:%d:%s:%s",
		authorPageKeyPrefix, page.Limit, page.Offset, page.SortBy, page.Order)

	var cached []model.Author
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	query := fmt.Sprintf(`
        SELECT id, name, birth_date
        FROM authors
        ORDER BY %s %s
        LIMIT $1 OFFSET $2
    `, authorSortColumn(page.SortBy), sortOrder(page.Order))

	rows, err := r.pool.Query(ctx, query, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	authors := []model.Author{}
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, authors, cacheTTL)
	return authors, nil
}

func (r *authorPostgres) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count authors: %w", err)
	}
	return total, nil
}

// invalidate drops the author's by-id entry plus every cached page. Book
// pages embed author fields, so they go too.
func (r *authorPostgres) invalidate(ctx context.Context, id int64) {
	_ = r.cache.Delete(ctx, fmt.Sprintf("%s%d", authorCacheKeyPrefix, id))
	_ = r.cache.DeletePattern(ctx, authorPageKeyPrefix+"*")
	_ = r.cache.DeletePattern(ctx, bookPageKeyPrefix+"*")
	_ = r.cache.DeletePattern(ctx, bookCacheKeyPrefix+"*")
}

// row is the subset of pgx.Row/pgx.Rows both scan helpers need.
type row interface {
	Scan(dest ...any) error
}

func scanAuthor(rw row) (*model.Author, error) {
	var a model.Author
	var birthDate *time.Time

	if err := rw.Scan(&a.ID, &a.Name, &birthDate); err != nil {
		return nil, err
	}

	a.BirthDate = dateFromTime(birthDate)
	return &a, nil
}

func dateValue(d *types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time()
	return &t
}

func dateFromTime(t *time.Time) *types.Date {
	if t == nil {
		return nil
	}
	d := types.DateOf(*t)
	return &d
}

func sortOrder(order string) string {
	if order == "desc" || order == "DESC" {
		return "DESC"
	}
	return "ASC"
}

// authorSortColumn whitelists sortable columns; anything else falls back to
// the primary key.
func authorSortColumn(sortBy string) string {
	switch sortBy {
	case "name":
		return "name"
	case "birth_date", "birthDate":
		return "birth_date"
	default:
		return "id"
	}
}
