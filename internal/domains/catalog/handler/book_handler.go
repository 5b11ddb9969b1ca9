package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapp-backend/internal/domains/catalog/model"
	"todoapp-backend/internal/domains/catalog/service"
	"todoapp-backend/internal/shared/pagination"
	"todoapp-backend/internal/shared/response"
)

type BookHandler struct {
	service service.BookService
}

func NewBookHandler(svc service.BookService) *BookHandler {
	return &BookHandler{service: svc}
}

// Create handles POST /v1/books.
func (h *BookHandler) Create(c *gin.Context) {
	var payload model.Book
	if err := c.BindJSON(&payload); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := payload.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &payload)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// GetByID handles GET /v1/books/:id.
func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

// GetAll handles GET /v1/books?limit=20&offset=0&sort_by=id&order=asc.
func (h *BookHandler) GetAll(c *gin.Context) {
	page := pagination.FromQuery(c, "id")

	books, total, err := h.service.GetAll(c.Request.Context(), page)
	if err != nil {
		handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, books, page.MetaFor(total))
}

// Update handles PUT /v1/books/:id (full replace).
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload model.Book
	if err := c.BindJSON(&payload); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := payload.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &payload)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// PartialUpdate handles PATCH /v1/books/:id (merge patch).
func (h *BookHandler) PartialUpdate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch model.BookPatch
	if err := c.BindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := patch.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.PartialUpdate(c.Request.Context(), id, &patch)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /v1/books/:id.
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil)
}
