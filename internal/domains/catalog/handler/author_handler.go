package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"todoapp-backend/internal/domains/catalog/model"
	"todoapp-backend/internal/domains/catalog/service"
	"todoapp-backend/internal/shared/pagination"
	"todoapp-backend/internal/shared/response"
)

type AuthorHandler struct {
	service service.AuthorService
}

func NewAuthorHandler(svc service.AuthorService) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// Create handles POST /v1/authors.
func (h *AuthorHandler) Create(c *gin.Context) {
	var payload model.Author
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

// GetByID handles GET /v1/authors/:id.
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, a)
}

// GetAll handles GET /v1/authors?limit=20&offset=0&sort_by=id&order=asc.
func (h *AuthorHandler) GetAll(c *gin.Context) {
	page := pagination.FromQuery(c, "id")

	authors, total, err := h.service.GetAll(c.Request.Context(), page)
	if err != nil {
		handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, authors, page.MetaFor(total))
}

// Update handles PUT /v1/authors/:id (full replace).
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload model.Author
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

// PartialUpdate handles PATCH /v1/authors/:id (merge patch).
func (h *AuthorHandler) PartialUpdate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch model.AuthorPatch
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

// Delete handles DELETE /v1/authors/:id.
func (h *AuthorHandler) Delete(c *gin.Context) {
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

// parseID reads the numeric :id path parameter, writing the 400 itself so
// handlers can bail with a bare return.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid id format")
		return 0, false
	}
	return id, true
}

func handleError(c *gin.Context, err error) {
	response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
}
