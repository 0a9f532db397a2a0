package office

import (
	"errors"
	"net/http"
	"strconv"

	"officespace/internal/pkg/response"
	"officespace/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the read-only endpoints. The group should run
// the optional-auth middleware so a logged-in caller is recognized when
// listing their own offices.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/offices", h.List)
	rg.GET("/offices/:id", h.Get)
	rg.GET("/tags", h.ListTags)
}

// RegisterProtectedRoutes mounts the mutating endpoints behind JWT auth.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/offices", h.Create)
	rg.PUT("/offices/:id", h.Update)
	rg.DELETE("/offices/:id", h.Delete)
	rg.POST("/offices/:id/images", h.UploadImage)
	rg.DELETE("/offices/:id/images/:imageID", h.DeleteImage)
	rg.PUT("/offices/:id/images/:imageID/featured", h.SetFeaturedImage)
}

/* ---------- QUERIES ---------- */

// List handles GET /offices with user_id/visitor_id/lat/lng filters.
func (h *Handler) List(c *gin.Context) {
	var req ListRequest

	if v := c.Query("user_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			req.UserID = id
		}
	}
	if v := c.Query("visitor_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			req.VisitorID = id
		}
	}

	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid coordinates")
			return
		}
		req.Lat, req.Lng = &lat, &lng
	}

	req.Limit = 20
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			req.Limit = n
		}
	}
	req.Page = 1
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			req.Page = n
		}
	}

	offices, total, err := h.service.List(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	totalPages := (int(total) + req.Limit - 1) / req.Limit
	response.Success(c, http.StatusOK, gin.H{
		"offices": offices,
		"pagination": gin.H{
			"page":        req.Page,
			"limit":       req.Limit,
			"total":       total,
			"total_pages": totalPages,
		},
	})
}

// Get handles GET /offices/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	o, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"office": o})
}

// ListTags handles GET /tags
func (h *Handler) ListTags(c *gin.Context) {
	tags, err := h.service.ListTags(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tags": tags})
}

/* ---------- MUTATIONS ---------- */

// Create handles POST /offices (scope office.create)
func (h *Handler) Create(c *gin.Context) {
	if !h.requireScope(c, "office.create") {
		return
	}

	var req CreateOfficeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	o, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"office": o})
}

// Update handles PUT /offices/:id (scope office.update, owner only)
func (h *Handler) Update(c *gin.Context) {
	if !h.requireScope(c, "office.update") {
		return
	}

	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateOfficeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	o, err := h.service.Update(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"office": o})
}

// Delete handles DELETE /offices/:id (scope office.delete, owner only)
func (h *Handler) Delete(c *gin.Context) {
	if !h.requireScope(c, "office.delete") {
		return
	}

	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

/* ---------- IMAGES ---------- */

// UploadImage handles POST /offices/:id/images (multipart, owner only)
func (h *Handler) UploadImage(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Missing image file")
		return
	}

	img, err := h.service.UploadImage(c.Request.Context(), c.GetInt64("user_id"), id, fileHeader)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"image": img})
}

// DeleteImage handles DELETE /offices/:id/images/:imageID (owner only)
func (h *Handler) DeleteImage(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	imageID, ok := h.paramID(c, "imageID")
	if !ok {
		return
	}

	if err := h.service.DeleteImage(c.Request.Context(), c.GetInt64("user_id"), id, imageID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// SetFeaturedImage handles PUT /offices/:id/images/:imageID/featured
func (h *Handler) SetFeaturedImage(c *gin.Context) {
	if !h.requireScope(c, "office.update") {
		return
	}

	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	imageID, ok := h.paramID(c, "imageID")
	if !ok {
		return
	}

	o, err := h.service.SetFeaturedImage(c.Request.Context(), c.GetInt64("user_id"), id, imageID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"office": o})
}

/* ---------- HELPERS ---------- */

func (h *Handler) paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid id")
		return 0, false
	}
	return id, true
}

func (h *Handler) requireScope(c *gin.Context, scope string) bool {
	scopes, _ := c.Get("scopes")
	if list, ok := scopes.([]string); ok {
		for _, s := range list {
			if s == scope {
				return true
			}
		}
	}
	response.Error(c, http.StatusForbidden, "FORBIDDEN", "Token is missing the "+scope+" scope")
	return false
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Office not found")
	case errors.Is(err, ErrImageNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Image not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this office")
	case errors.Is(err, ErrImageNotOwned):
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_REFERENCE", "Cannot delete this image")
	case errors.Is(err, ErrOnlyImage):
		response.Error(c, http.StatusUnprocessableEntity, "INVARIANT_VIOLATION", "Cannot delete the only image")
	case errors.Is(err, ErrFeaturedImage):
		response.Error(c, http.StatusUnprocessableEntity, "INVARIANT_VIOLATION", "Cannot delete featured image")
	case errors.Is(err, ErrActiveReservations):
		response.Error(c, http.StatusUnprocessableEntity, "INVARIANT_VIOLATION", "Cannot delete an office with active reservations")
	case errors.Is(err, ErrFeaturedImageNotOwned):
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed",
			gin.H{"featured_image_id": "must reference an image of this office"})
	case errors.Is(err, ErrUnknownTag), errors.Is(err, ErrDuplicateTag):
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed",
			gin.H{"tags": err.Error()})
	case errors.Is(err, ErrInvalidUpload), errors.Is(err, ErrEmptyUpload):
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed",
			gin.H{"image": err.Error()})
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
	}
}
