package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapp-backend/internal/domains/catalog/model"
	"todoapp-backend/internal/domains/catalog/service"
	"todoapp-backend/internal/shared/pagination"
)

// memAuthorRepo backs the real service with an in-memory store so handler
// tests exercise the full request path.
type memAuthorRepo struct {
	authors map[int64]model.Author
	nextID  int64
}

func newMemAuthorRepo() *memAuthorRepo {
	return &memAuthorRepo{authors: make(map[int64]model.Author), nextID: 1}
}

func (r *memAuthorRepo) Save(_ context.Context, a *model.Author) (*model.Author, error) {
	stored := *a
	if stored.ID == nil {
		id := r.nextID
		r.nextID++
		stored.ID = &id
	}
	r.authors[*stored.ID] = stored
	out := stored
	return &out, nil
}

func (r *memAuthorRepo) FindByID(_ context.Context, id int64) (*model.Author, error) {
	stored, ok := r.authors[id]
	if !ok {
		return nil, model.ErrAuthorNotFound
	}
	out := stored
	return &out, nil
}

func (r *memAuthorRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.authors[id]
	return ok, nil
}

func (r *memAuthorRepo) DeleteByID(_ context.Context, id int64) error {
	delete(r.authors, id)
	return nil
}

func (r *memAuthorRepo) FindAll(_ context.Context, page pagination.Pageable) ([]model.Author, error) {
	out := make([]model.Author, 0, len(r.authors))
	for _, a := range r.authors {
		out = append(out, a)
	}
	return out, nil
}

func (r *memAuthorRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.authors)), nil
}

func newAuthorRouter() (*gin.Engine, *memAuthorRepo) {
	gin.SetMode(gin.TestMode)
	repo := newMemAuthorRepo()
	h := NewAuthorHandler(service.NewAuthorService(repo))

	r := gin.New()
	g := r.Group("/api/v1/authors")
	g.POST("", h.Create)
	g.GET("", h.GetAll)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.PATCH("/:id", h.PartialUpdate)
	g.DELETE("/:id", h.Delete)
	return r, repo
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta *struct {
		CurrentPage int   `json:"current_page"`
		PageSize    int   `json:"page_size"`
		TotalItems  int64 `json:"total_items"`
		TotalPages  int   `json:"total_pages"`
	} `json:"meta"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestAuthorHandlerCreate(t *testing.T) {
	r, _ := newAuthorRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/authors",
		`{"name": "Alice", "birthDate": "1960-05-05"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)

	var created model.Author
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotNil(t, created.ID)
	assert.Equal(t, "Alice", *created.Name)
	assert.Equal(t, "1960-05-05", created.BirthDate.String())
}

func TestAuthorHandlerCreateWithPresetID(t *testing.T) {
	r, _ := newAuthorRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/authors", `{"id": 1, "name": "Alice"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ID_ALREADY_SET", env.Error.Code)
}

func TestAuthorHandlerGetByID(t *testing.T) {
	r, _ := newAuthorRouter()

	doJSON(t, r, http.MethodPost, "/api/v1/authors", `{"name": "Alice"}`)
	w := doJSON(t, r, http.MethodGet, "/api/v1/authors/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var got model.Author
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Alice", *got.Name)
}

func TestAuthorHandlerGetByIDNotFound(t *testing.T) {
	r, _ := newAuthorRouter()

	w := doJSON(t, r, http.MethodGet, "/api/v1/authors/42", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestAuthorHandlerGetByIDMalformed(t *testing.T) {
	r, _ := newAuthorRouter()

	w := doJSON(t, r, http.MethodGet, "/api/v1/authors/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthorHandlerGetAllMeta(t *testing.T) {
	r, _ := newAuthorRouter()

	doJSON(t, r, http.MethodPost, "/api/v1/authors", `{"name": "Alice"}`)
	doJSON(t, r, http.MethodPost, "/api/v1/authors", `{"name": "Bob"}`)

	w := doJSON(t, r, http.MethodGet, "/api/v1/authors?limit=10&offset=0", "")
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Meta)
	assert.Equal(t, int64(2), env.Meta.TotalItems)
	assert.Equal(t, 10, env.Meta.PageSize)
}

func TestAuthorHandlerUpdate(t *testing.T) {
	r, repo := newAuthorRouter()

	doJSON(t, r, http.MethodPost, "/api/v1/authors",
		`{"name": "Alice", "birthDate": "1960-05-05"}`)

	w := doJSON(t, r, http.MethodPut, "/api/v1/authors/1", `{"id": 1, "name": "Alicia"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// Full replace drops the omitted birth date.
	stored := repo.authors[1]
	assert.Equal(t, "Alicia", *stored.Name)
	assert.Nil(t, stored.BirthDate)
}

func TestAuthorHandlerUpdateIDMismatch(t *testing.T) {
	r, _ := newAuthorRouter()

	doJSON(t, r, http.MethodPost, "/api/v1/authors", `{"name": "Alice"}`)

	w := doJSON(t, r, http.MethodPut, "/api/v1/authors/1", `{"id": 7, "name": "Alicia"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ID_MISMATCH", env.Error.Code)
}

func TestAuthorHandlerUpdateMissingID(t *testing.T) {
	r, _ := newAuthorRouter()

	doJSON(t, r, http.MethodPost, "/api/v1/authors", `{"name": "Alice"}`)

	w := doJSON(t, r, http.MethodPut, "/api/v1/authors/1", `{"name": "Alicia"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ID_MISSING", env.Error.Code)
}

func TestAuthorHandlerPartialUpdate(t *testing.T) {
	r, repo := newAuthorRouter()

	doJSON(t, r, http.MethodPost, "/api/v1/authors",
		`{"name": "Alice", "birthDate": "1960-05-05"}`)

	w := doJSON(t, r, http.MethodPatch, "/api/v1/authors/1", `{"id": 1, "name": "Alicia"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// Merge patch keeps the absent birth date.
	stored := repo.authors[1]
	assert.Equal(t, "Alicia", *stored.Name)
	require.NotNil(t, stored.BirthDate)
	assert.Equal(t, "1960-05-05", stored.BirthDate.String())
}

func TestAuthorHandlerPartialUpdateNotFound(t *testing.T) {
	r, _ := newAuthorRouter()

	w := doJSON(t, r, http.MethodPatch, "/api/v1/authors/42", `{"id": 42}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthorHandlerDelete(t *testing.T) {
	r, repo := newAuthorRouter()

	doJSON(t, r, http.MethodPost, "/api/v1/authors", `{"name": "Alice"}`)

	w := doJSON(t, r, http.MethodDelete, "/api/v1/authors/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, repo.authors)

	// Deleting what is already gone still succeeds.
	w = doJSON(t, r, http.MethodDelete, "/api/v1/authors/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
