package availability

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotelsite/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/availability", h.GetAvailability)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms/occupancy", h.GetDayOccupancy)
}

// GetAvailability answers GET /availability?check_in=2025-06-10&check_out=2025-06-12
func (h *Handler) GetAvailability(c *gin.Context) {
	checkIn, err := time.Parse("2006-01-02", c.Query("check_in"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_in must be a YYYY-MM-DD date")
		return
	}
	checkOut, err := time.Parse("2006-01-02", c.Query("check_out"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_out must be a YYYY-MM-DD date")
		return
	}

	result, err := h.service.ResolveRange(c.Request.Context(), checkIn, checkOut)
	if err != nil {
		if err == ErrInvalidRange {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_out must be after check_in")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to resolve availability")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"check_in":   c.Query("check_in"),
		"check_out":  c.Query("check_out"),
		"room_types": result,
	})
}

// GetDayOccupancy answers GET /admin/rooms/occupancy?date=2025-06-10
// (defaults to today).
func (h *Handler) GetDayOccupancy(c *gin.Context) {
	day := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date must be a YYYY-MM-DD date")
			return
		}
		day = parsed
	}

	result, err := h.service.ResolveDay(c.Request.Context(), day)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to resolve occupancy")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"date":  day.Format("2006-01-02"),
		"rooms": result,
	})
}
