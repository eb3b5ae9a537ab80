package site

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotelsite/internal/pkg/response"
	"hotelsite/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/enquiries", h.SubmitEnquiry)
	rg.POST("/newsletter/subscribe", h.Subscribe)
	rg.GET("/gallery", h.ListGallery)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/enquiries", h.ListEnquiries)
	rg.PATCH("/enquiries/:id/handled", h.MarkEnquiryHandled)

	rg.GET("/newsletter/subscribers", h.ListSubscribers)
	rg.DELETE("/newsletter/subscribers/:id", h.Unsubscribe)

	rg.POST("/gallery", h.AddGalleryImage)
	rg.DELETE("/gallery/:id", h.RemoveGalleryImage)
}

func (h *Handler) SubmitEnquiry(c *gin.Context) {
	var req SubmitEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fieldErrs := validator.Validate(req); fieldErrs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid enquiry", fieldErrs)
		return
	}

	e, err := h.service.SubmitEnquiry(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit enquiry")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"enquiry": gin.H{"id": e.ID}})
}

func (h *Handler) ListEnquiries(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	enquiries, err := h.service.GetEnquiries(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list enquiries")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"enquiries": enquiries})
}

func (h *Handler) MarkEnquiryHandled(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	if err := h.service.MarkEnquiryHandled(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"handled": id})
}

func (h *Handler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "A valid email is required")
		return
	}

	sub, err := h.service.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to subscribe")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"subscriber": gin.H{"id": sub.ID, "email": sub.Email}})
}

func (h *Handler) ListSubscribers(c *gin.Context) {
	subs, err := h.service.GetSubscribers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list subscribers")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"subscribers": subs})
}

func (h *Handler) Unsubscribe(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	if err := h.service.Unsubscribe(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) ListGallery(c *gin.Context) {
	images, err := h.service.GetGallery(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list gallery")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"images": images})
}

func (h *Handler) AddGalleryImage(c *gin.Context) {
	var req AddGalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	img, err := h.service.AddGalleryImage(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add image")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"image": img})
}

func (h *Handler) RemoveGalleryImage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	if err := h.service.RemoveGalleryImage(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Not found")
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Request failed")
}
