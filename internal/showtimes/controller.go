package showtimes

import (
	"net/http"

	"cinetix/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) CreateShowtime(ctx *gin.Context) {
	var req CreateShowtimeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	showtime, err := c.service.CreateShowtime(ctx.Request.Context(), &req)
	if err != nil {
		switch err {
		case ErrMovieNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Movie not found", nil, nil)
		case ErrScreenNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Screen not found", nil, nil)
		case ErrInvalidSchedule:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "End time must be after start time", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create showtime", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Showtime created successfully", showtime, nil)
}

func (c *Controller) GetShowtime(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid showtime ID", nil, nil)
		return
	}

	showtime, err := c.service.GetShowtime(ctx.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrShowtimeNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Showtime not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get showtime", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Showtime retrieved successfully", showtime, nil)
}

func (c *Controller) ListShowtimes(ctx *gin.Context) {
	var filters ShowtimeFilters
	if err := ctx.ShouldBindQuery(&filters); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := c.service.ListShowtimes(ctx.Request.Context(), filters)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list showtimes", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Showtimes retrieved successfully", result, nil)
}

// GetAvailability returns the derived seat inventory for a showtime.
func (c *Controller) GetAvailability(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid showtime ID", nil, nil)
		return
	}

	availability, err := c.service.GetAvailability(ctx.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrShowtimeNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Showtime not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get seat availability", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seat availability retrieved successfully", availability, nil)
}

func (c *Controller) CheckSeats(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid showtime ID", nil, nil)
		return
	}

	var req CheckSeatsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	result, err := c.service.CheckSeats(ctx.Request.Context(), id, req.Seats)
	if err != nil {
		switch err {
		case ErrShowtimeNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Showtime not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to check seats", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seats checked successfully", result, nil)
}

func (c *Controller) UpdateShowtime(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid showtime ID", nil, nil)
		return
	}

	var req UpdateShowtimeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	showtime, err := c.service.UpdateShowtime(ctx.Request.Context(), id, &req)
	if err != nil {
		switch err {
		case ErrShowtimeNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Showtime not found", nil, nil)
		case ErrInvalidSchedule:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "End time must be after start time", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update showtime", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Showtime updated successfully", showtime, nil)
}

func (c *Controller) DeleteShowtime(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid showtime ID", nil, nil)
		return
	}

	if err := c.service.DeleteShowtime(ctx.Request.Context(), id); err != nil {
		switch err {
		case ErrShowtimeNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Showtime not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete showtime", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Showtime deleted successfully", nil, nil)
}
