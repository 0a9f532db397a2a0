package reservation

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reservations", h.ListMine)
}

// ListMine handles GET /reservations (scope reservations.show)
func (h *Handler) ListMine(c *gin.Context) {
	if !hasScope(c, "reservations.show") {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Token is missing the reservations.show scope")
		return
	}

	req := ListRequest{
		Status:   c.Query("status"),
		FromDate: c.Query("from_date"),
		ToDate:   c.Query("to_date"),
		Limit:    20,
		Page:     1,
	}
	if v := c.Query("office_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			req.OfficeID = id
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			req.Limit = n
		}
	}
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			req.Page = n
		}
	}

	reservations, total, err := h.service.ListMine(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		var fields FieldErrors
		if errors.As(err, &fields) {
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", fields)
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	totalPages := (int(total) + req.Limit - 1) / req.Limit
	response.Success(c, http.StatusOK, gin.H{
		"reservations": reservations,
		"pagination": gin.H{
			"page":        req.Page,
			"limit":       req.Limit,
			"total":       total,
			"total_pages": totalPages,
		},
	})
}

func hasScope(c *gin.Context, scope string) bool {
	scopes, _ := c.Get("scopes")
	if list, ok := scopes.([]string); ok {
		for _, s := range list {
			if s == scope {
				return true
			}
		}
	}
	return false
}
