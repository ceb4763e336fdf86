package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"multimedia-api/internal/domains/author/model"
	"multimedia-api/internal/domains/author/service"
	"multimedia-api/internal/shared/response"
	"multimedia-api/internal/shared/utils"
)

const notFoundLabel = "author not found"

type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(svc service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// RegisterRoutes mounts the handler on a group that already runs the access gate.
func (h *AuthorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.HEAD("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.GetByID)
	rg.HEAD("/:id", h.GetByID)
	rg.PUT("/:id", h.Update)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func notFoundMessage(id string) string {
	return fmt.Sprintf("no author with id %s", id)
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "error listing authors", err.Error())
		return
	}

	response.List(c, authors, len(authors))
}

// ════════════════════════════════════════════════════════════════
// READ: GET /authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetByID(c *gin.Context) {
	idStr := c.Param("id")

	a, err := h.service.GetByID(c.Request.Context(), utils.ParseStringToUUID(idStr))
	if err != nil {
		response.FromError(c, err, "error fetching author", notFoundLabel, notFoundMessage(idStr))
		return
	}

	response.Success(c, http.StatusOK, a)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.CreateAuthorRequest
	if err := utils.BindJSONBody(c, &req); err != nil {
		response.BadRequest(c, "error creating author", err.Error())
		return
	}

	a, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err, "error creating author", notFoundLabel, "")
		return
	}

	response.Success(c, http.StatusCreated, a)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT|PATCH /authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Update(c *gin.Context) {
	idStr := c.Param("id")

	var req model.UpdateAuthorRequest
	if err := utils.BindJSONBody(c, &req); err != nil {
		response.BadRequest(c, "error updating author", err.Error())
		return
	}

	a, err := h.service.Update(c.Request.Context(), utils.ParseStringToUUID(idStr), &req)
	if err != nil {
		response.FromError(c, err, "error updating author", notFoundLabel, notFoundMessage(idStr))
		return
	}

	response.Success(c, http.StatusOK, a)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Delete(c *gin.Context) {
	idStr := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), utils.ParseStringToUUID(idStr)); err != nil {
		response.FromError(c, err, "error deleting author", notFoundLabel, notFoundMessage(idStr))
		return
	}

	response.Deleted(c, "author deleted")
}
