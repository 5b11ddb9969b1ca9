package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapp-backend/internal/domains/catalog/model"
	"todoapp-backend/internal/domains/catalog/service"
	"todoapp-backend/internal/shared/pagination"
)

type memBookRepo struct {
	books  map[int64]model.Book
	nextID int64
}

func newMemBookRepo() *memBookRepo {
	return &memBookRepo{books: make(map[int64]model.Book), nextID: 1}
}

func (r *memBookRepo) Save(_ context.Context, b *model.Book) (*model.Book, error) {
	stored := *b
	if stored.ID == nil {
		id := r.nextID
		r.nextID++
		stored.ID = &id
	}
	r.books[*stored.ID] = stored
	out := stored
	return &out, nil
}

func (r *memBookRepo) FindByID(_ context.Context, id int64) (*model.Book, error) {
	stored, ok := r.books[id]
	if !ok {
		return nil, model.ErrBookNotFound
	}
	out := stored
	return &out, nil
}

func (r *memBookRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.books[id]
	return ok, nil
}

func (r *memBookRepo) DeleteByID(_ context.Context, id int64) error {
	delete(r.books, id)
	return nil
}

func (r *memBookRepo) FindAll(_ context.Context, page pagination.Pageable) ([]model.Book, error) {
	out := make([]model.Book, 0, len(r.books))
	for _, b := range r.books {
		out = append(out, b)
	}
	return out, nil
}

func (r *memBookRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.books)), nil
}

func newBookRouter() (*gin.Engine, *memBookRepo) {
	gin.SetMode(gin.TestMode)
	repo := newMemBookRepo()
	h := NewBookHandler(service.NewBookService(repo))

	r := gin.New()
	g := r.Group("/api/v1/books")
	g.POST("", h.Create)
	g.GET("", h.GetAll)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.PATCH("/:id", h.PartialUpdate)
	g.DELETE("/:id", h.Delete)
	return r, repo
}

func TestBookHandlerCreate(t *testing.T) {
	r, _ := newBookRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/books",
		`{"title": "Walden", "price": 19.90, "publicationDate": "1854-08-09", "author": {"id": 3}}`)
	require.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	var created model.Book
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotNil(t, created.ID)
	assert.Equal(t, "Walden", *created.Title)
	require.NotNil(t, created.Price)
	assert.True(t, created.Price.Equal(decimal.RequireFromString("19.90")))
	require.NotNil(t, created.Author)
	assert.Equal(t, int64(3), *created.Author.ID)
}

func TestBookHandlerCreateWithPresetID(t *testing.T) {
	r, _ := newBookRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/books", `{"id": 1, "title": "Walden"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ID_ALREADY_SET", env.Error.Code)
}

func TestBookHandlerUpdateClearsAuthor(t *testing.T) {
	r, repo := newBookRouter()

	doJSON(t, r, http.MethodPost, "/api/v1/books",
		`{"title": "Walden", "author": {"id": 3}}`)

	w := doJSON(t, r, http.MethodPut, "/api/v1/books/1", `{"id": 1, "title": "Walden"}`)
	require.Equal(t, http.StatusOK, w.Code)

	stored := repo.books[1]
	assert.Nil(t, stored.Author)
}

func TestBookHandlerPartialUpdatePreservesScalars(t *testing.T) {
	r, repo := newBookRouter()

	doJSON(t, r, http.MethodPost, "/api/v1/books",
		`{"title": "Walden", "price": 19.90, "publicationDate": "1854-08-09"}`)

	w := doJSON(t, r, http.MethodPatch, "/api/v1/books/1", `{"id": 1, "title": "Walden, 2nd ed."}`)
	require.Equal(t, http.StatusOK, w.Code)

	stored := repo.books[1]
	assert.Equal(t, "Walden, 2nd ed.", *stored.Title)
	require.NotNil(t, stored.Price)
	assert.True(t, stored.Price.Equal(decimal.RequireFromString("19.90")))
	require.NotNil(t, stored.PublicationDate)
	assert.Equal(t, "1854-08-09", stored.PublicationDate.String())
}

func TestBookHandlerPartialUpdateNullFieldsKept(t *testing.T) {
	r, repo := newBookRouter()

	doJSON(t, r, http.MethodPost, "/api/v1/books",
		`{"title": "Walden", "description": "Pond life"}`)

	w := doJSON(t, r, http.MethodPatch, "/api/v1/books/1",
		`{"id": 1, "description": null}`)
	require.Equal(t, http.StatusOK, w.Code)

	stored := repo.books[1]
	require.NotNil(t, stored.Description)
	assert.Equal(t, "Pond life", *stored.Description)
}

func TestBookHandlerPartialUpdateIDMismatch(t *testing.T) {
	r, _ := newBookRouter()

	doJSON(t, r, http.MethodPost, "/api/v1/books", `{"title": "Walden"}`)

	w := doJSON(t, r, http.MethodPatch, "/api/v1/books/1", `{"id": 2, "title": "x"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ID_MISMATCH", env.Error.Code)
}

func TestBookHandlerDeleteIdempotent(t *testing.T) {
	r, _ := newBookRouter()

	doJSON(t, r, http.MethodPost, "/api/v1/books", `{"title": "Walden"}`)

	w := doJSON(t, r, http.MethodDelete, "/api/v1/books/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/books/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
