package admin

import (
	"errors"
	"net/http"
	"strconv"

	"officespace/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the moderation endpoints. The group is expected to be
// wrapped in the moderator-role middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/offices/:id/approve", h.Approve)
	rg.POST("/offices/:id/reject", h.Reject)
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

// Approve handles POST /admin/offices/:id/approve
func (h *Handler) Approve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid office id")
		return
	}

	office, err := h.service.ApproveOffice(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"office": office})
}

// Reject handles POST /admin/offices/:id/reject
func (h *Handler) Reject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid office id")
		return
	}

	var req rejectRequest
	_ = c.ShouldBindJSON(&req)

	office, err := h.service.RejectOffice(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"office": office})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrOfficeNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Office not found")
	case errors.Is(err, ErrNotPending):
		response.Error(c, http.StatusUnprocessableEntity, "INVARIANT_VIOLATION", "Office is not pending approval")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
	}
}
