package booking

import (
	"errors"
	"net/http"
	"time"

	"meetingroom/internal/domain"
	"meetingroom/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.GET("/bookings/room/:roomId", h.ListBookingsByRoom)
	rg.POST("/bookings", h.CreateBooking)
	rg.DELETE("/bookings/:id", h.DeleteBooking)
	rg.GET("/rooms/:id/slots", h.GetAvailableSlots)
}

// ListBookings handles GET /api/bookings with optional roomId, date and
// from/to filters. Filters combine: roomId plus a time filter returns only
// that room's bookings inside the window.
func (h *Handler) ListBookings(c *gin.Context) {
	ctx := c.Request.Context()

	var window *timeWindow
	if date := c.Query("date"); date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
			return
		}
		window = &timeWindow{from: day, to: day.Add(24*time.Hour - time.Nanosecond)}
	} else if c.Query("from") != "" || c.Query("to") != "" {
		from, err := time.Parse(time.RFC3339, c.Query("from"))
		if err != nil {
			response.Error(c, http.StatusBadRequest, "from must be an RFC 3339 timestamp")
			return
		}
		to, err := time.Parse(time.RFC3339, c.Query("to"))
		if err != nil {
			response.Error(c, http.StatusBadRequest, "to must be an RFC 3339 timestamp")
			return
		}
		window = &timeWindow{from: from, to: to}
	}

	var (
		bookings []domain.Booking
		err      error
	)
	switch roomID := c.Query("roomId"); {
	case roomID != "":
		bookings, err = h.service.ListBookingsByRoom(ctx, roomID)
		if err == nil && window != nil {
			bookings = window.filter(bookings)
		}
	case window != nil:
		bookings, err = h.service.ListBookingsByDateRange(ctx, window.from, window.to)
	default:
		bookings, err = h.service.ListBookings(ctx)
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, bookings)
}

// timeWindow bounds booking start times, both ends inclusive, matching the
// stores' date range listings.
type timeWindow struct {
	from, to time.Time
}

func (w *timeWindow) filter(bookings []domain.Booking) []domain.Booking {
	out := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if !b.StartTime.Before(w.from) && !b.StartTime.After(w.to) {
			out = append(out, b)
		}
	}
	return out
}

func (h *Handler) ListBookingsByRoom(c *gin.Context) {
	bookings, err := h.service.ListBookingsByRoom(c.Request.Context(), c.Param("roomId"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, bookings)
}

func (h *Handler) GetBooking(c *gin.Context) {
	b, err := h.service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to fetch booking")
		return
	}
	if b == nil {
		response.Error(c, http.StatusNotFound, "booking not found")
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		var validation *ValidationError
		var conflict *domain.ConflictError
		switch {
		case errors.As(err, &validation):
			response.ErrorWithDetails(c, http.StatusBadRequest, validation.Error(), validation.Errors)
		case errors.Is(err, ErrRoomNotFound):
			response.Error(c, http.StatusNotFound, "room not found")
		case errors.As(err, &conflict):
			response.ErrorWithDetails(c, http.StatusConflict, conflict.Error(), gin.H{
				"conflictingBooking": conflict.Conflicting,
			})
		default:
			response.Error(c, http.StatusInternalServerError, "failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	ok, err := h.service.DeleteBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to delete booking")
		return
	}
	if !ok {
		response.Error(c, http.StatusNotFound, "booking not found")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "booking deleted"})
}

// GetAvailableSlots handles GET /api/rooms/:id/slots?date=YYYY-MM-DD.
func (h *Handler) GetAvailableSlots(c *gin.Context) {
	day, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
		return
	}

	slots, err := h.service.AvailableSlots(c.Request.Context(), c.Param("id"), day)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			response.Error(c, http.StatusNotFound, "room not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to compute available slots")
		return
	}
	response.Success(c, http.StatusOK, slots)
}
