package bookings

import (
	"errors"
	"net/http"

	"cinetix/internal/shared/utils/response"
	"cinetix/internal/users"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) CreateBooking(ctx *gin.Context) {
	userID, _, ok := currentUser(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	booking, err := c.service.CreateBooking(ctx.Request.Context(), userID, &req)
	if err != nil {
		c.respondBookingError(ctx, err, "Failed to create booking")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Booking created successfully", booking, nil)
}

func (c *Controller) GetBooking(ctx *gin.Context) {
	userID, isAdmin, ok := currentUser(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return
	}

	booking, err := c.service.GetBooking(ctx.Request.Context(), bookingID, userID, isAdmin)
	if err != nil {
		c.respondBookingError(ctx, err, "Failed to get booking")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking retrieved successfully", booking, nil)
}

func (c *Controller) ListUserBookings(ctx *gin.Context) {
	userID, _, ok := currentUser(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var query BookingListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := c.service.ListUserBookings(ctx.Request.Context(), userID, query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list bookings", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", result, nil)
}

// ListAllBookings is the admin view, filterable by user and showtime.
func (c *Controller) ListAllBookings(ctx *gin.Context) {
	var query BookingListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := c.service.ListBookings(ctx.Request.Context(), query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list bookings", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", result, nil)
}

// UpdateStatus is called by the payment collaborator to settle a pending
// booking (paid / failed) or cancel one.
func (c *Controller) UpdateStatus(ctx *gin.Context) {
	userID, isAdmin, ok := currentUser(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return
	}

	var req UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	booking, err := c.service.UpdateStatus(ctx.Request.Context(), bookingID, userID, isAdmin, PaymentStatus(req.Status))
	if err != nil {
		c.respondBookingError(ctx, err, "Failed to update booking status")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking status updated successfully", booking, nil)
}

func (c *Controller) CancelBooking(ctx *gin.Context) {
	userID, isAdmin, ok := currentUser(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return
	}

	booking, err := c.service.CancelBooking(ctx.Request.Context(), bookingID, userID, isAdmin)
	if err != nil {
		c.respondBookingError(ctx, err, "Failed to cancel booking")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking cancelled successfully", booking, nil)
}

func (c *Controller) HoldSeats(ctx *gin.Context) {
	userID, _, ok := currentUser(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req HoldSeatsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	hold, err := c.service.HoldSeats(ctx.Request.Context(), userID, &req)
	if err != nil {
		c.respondBookingError(ctx, err, "Failed to hold seats")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Seats held successfully", hold, nil)
}

func (c *Controller) ReleaseHold(ctx *gin.Context) {
	userID, _, ok := currentUser(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	holdID := ctx.Param("holdId")
	if holdID == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid hold ID", nil, nil)
		return
	}

	if err := c.service.ReleaseHold(ctx.Request.Context(), holdID, userID); err != nil {
		c.respondBookingError(ctx, err, "Failed to release hold")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Hold released successfully", nil, nil)
}

func (c *Controller) respondBookingError(ctx *gin.Context, err error, fallback string) {
	var seatConflict *SeatConflictError
	var holdConflict *HoldConflictError

	switch {
	case errors.As(err, &seatConflict):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Some seats are already booked", nil,
			map[string]interface{}{"conflicting_seats": seatConflict.Seats})
	case errors.As(err, &holdConflict):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Some seats are already held", nil,
			map[string]interface{}{"conflicting_seats": holdConflict.Seats})
	case errors.Is(err, ErrValidation):
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
	case errors.Is(err, ErrInvalidTransition):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Invalid payment status transition", nil, err.Error())
	case errors.Is(err, ErrForbidden):
		response.RespondJSON(ctx, "error", http.StatusForbidden, "Booking belongs to another user", nil, nil)
	case errors.Is(err, ErrBookingNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
	case errors.Is(err, ErrShowtimeNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Showtime not found", nil, nil)
	case errors.Is(err, ErrHoldNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Seat hold not found", nil, nil)
	default:
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, fallback, nil, nil)
	}
}

func currentUser(ctx *gin.Context) (uuid.UUID, bool, bool) {
	rawID, exists := ctx.Get("user_id")
	if !exists {
		return uuid.Nil, false, false
	}
	idStr, ok := rawID.(string)
	if !ok {
		return uuid.Nil, false, false
	}
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false, false
	}

	role, _ := ctx.Get("user_role")
	roleStr, _ := role.(string)
	return userID, roleStr == string(users.RoleAdmin), true
}
