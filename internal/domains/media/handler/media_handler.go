package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"multimedia-api/internal/domains/media/model"
	"multimedia-api/internal/domains/media/service"
	"multimedia-api/internal/shared/response"
	"multimedia-api/internal/shared/utils"
)

// MediaHandler phục vụ một loại media; router tạo một handler cho mỗi Kind
type MediaHandler struct {
	service service.ServiceInterface
	kind    model.Kind
}

func NewMediaHandler(svc service.ServiceInterface) *MediaHandler {
	return &MediaHandler{service: svc, kind: svc.Kind()}
}

// RegisterRoutes mounts the handler on a group that already runs the access gate.
func (h *MediaHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.HEAD("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.GetByID)
	rg.HEAD("/:id", h.GetByID)
	rg.PUT("/:id", h.Update)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *MediaHandler) label(action string) string {
	return fmt.Sprintf("error %s %s", action, h.kind.Name)
}

func (h *MediaHandler) notFoundLabel() string {
	return h.kind.Name + " not found"
}

func (h *MediaHandler) notFoundMessage(id string) string {
	return fmt.Sprintf("no %s with id %s", h.kind.Name, id)
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /{kind}
// ════════════════════════════════════════════════════════════════

func (h *MediaHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, fmt.Sprintf("error listing %s", h.kind.Resource), err.Error())
		return
	}

	response.List(c, items, len(items))
}

// ════════════════════════════════════════════════════════════════
// READ: GET /{kind}/:id
// ════════════════════════════════════════════════════════════════

func (h *MediaHandler) GetByID(c *gin.Context) {
	idStr := c.Param("id")

	it, err := h.service.GetByID(c.Request.Context(), utils.ParseStringToUUID(idStr))
	if err != nil {
		response.FromError(c, err, h.label("fetching"), h.notFoundLabel(), h.notFoundMessage(idStr))
		return
	}

	response.Success(c, http.StatusOK, it)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /{kind}
// ════════════════════════════════════════════════════════════════

func (h *MediaHandler) Create(c *gin.Context) {
	var req model.CreateItemRequest
	if err := utils.BindJSONBody(c, &req); err != nil {
		response.BadRequest(c, h.label("creating"), err.Error())
		return
	}

	it, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err, h.label("creating"), h.notFoundLabel(), "")
		return
	}

	response.Success(c, http.StatusCreated, it)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT|PATCH /{kind}/:id
// ════════════════════════════════════════════════════════════════

func (h *MediaHandler) Update(c *gin.Context) {
	idStr := c.Param("id")

	var req model.UpdateItemRequest
	if err := utils.BindJSONBody(c, &req); err != nil {
		response.BadRequest(c, h.label("updating"), err.Error())
		return
	}

	it, err := h.service.Update(c.Request.Context(), utils.ParseStringToUUID(idStr), &req)
	if err != nil {
		response.FromError(c, err, h.label("updating"), h.notFoundLabel(), h.notFoundMessage(idStr))
		return
	}

	response.Success(c, http.StatusOK, it)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /{kind}/:id
// ════════════════════════════════════════════════════════════════

func (h *MediaHandler) Delete(c *gin.Context) {
	idStr := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), utils.ParseStringToUUID(idStr)); err != nil {
		response.FromError(c, err, h.label("deleting"), h.notFoundLabel(), h.notFoundMessage(idStr))
		return
	}

	response.Deleted(c, h.kind.Name+" deleted")
}

// Kind reports which media kind this handler serves.
func (h *MediaHandler) Kind() model.Kind {
	return h.kind
}
