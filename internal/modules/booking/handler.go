package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"equiprent/internal/middleware"
	"equiprent/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts booking endpoints on an authenticated group.
// Manager-tier endpoints take the role middleware explicitly.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, requireManager gin.HandlerFunc) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings/user", h.MyBookings)
	rg.POST("/bookings/:id/penalty/pay", h.PayPenalty)

	rg.GET("/bookings", requireManager, h.ListBookings)
	rg.PATCH("/bookings/:id", requireManager, h.UpdateBooking)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidArgument, "Equipment and rental parameters are required")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) MyBookings(c *gin.Context) {
	bookings, err := h.service.ListUserBookings(c.Request.Context(), c.GetInt64("user_id"), c.Query("status"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, bookings)
}

func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, bookings)
}

func (h *Handler) UpdateBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidArgument, "Invalid booking ID")
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidArgument, "Invalid request body")
		return
	}

	b, err := h.service.UpdateBooking(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) PayPenalty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidArgument, "Invalid booking ID")
		return
	}

	b, err := h.service.SettlePenalty(c.Request.Context(), id, c.GetInt64("user_id"), middleware.CallerRole(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrRedundantStatus), errors.Is(err, ErrNoOutstanding):
		response.Error(c, http.StatusBadRequest, response.CodeInvalidArgument, err.Error())
	case errors.Is(err, ErrEquipmentNotFound), errors.Is(err, ErrBookingNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
	case errors.Is(err, ErrNotAvailable):
		response.Error(c, http.StatusConflict, response.CodeConflict, err.Error())
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, response.CodePermissionDenied, err.Error())
	case errors.Is(err, ErrRevertWindowClosed):
		response.Error(c, http.StatusPreconditionFailed, response.CodePreconditionFailed, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to process booking")
	}
}
