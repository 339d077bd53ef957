package screens

import (
	"errors"
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

func (c *Controller) CreateScreen(ctx *gin.Context) {
	var req CreateScreenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	screen, err := c.service.CreateScreen(ctx.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrTheatreNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Theatre not found", nil, nil)
		case errors.Is(err, ErrInvalidLayout):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid seat layout", nil, err.Error())
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create screen", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Screen created successfully", screen, nil)
}

func (c *Controller) GetScreen(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid screen ID", nil, nil)
		return
	}

	screen, err := c.service.GetScreen(ctx.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrScreenNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Screen not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get screen", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Screen retrieved successfully", screen, nil)
}

func (c *Controller) ListScreens(ctx *gin.Context) {
	var filters ScreenFilters
	if err := ctx.ShouldBindQuery(&filters); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := c.service.ListScreens(ctx.Request.Context(), filters)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list screens", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Screens retrieved successfully", result, nil)
}

// ListSeats returns the seat map grouped by row.
func (c *Controller) ListSeats(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid screen ID", nil, nil)
		return
	}

	seatMap, err := c.service.ListSeats(ctx.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrScreenNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Screen not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get seat map", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seat map retrieved successfully", seatMap, nil)
}

func (c *Controller) UpdateScreen(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid screen ID", nil, nil)
		return
	}

	var req UpdateScreenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	screen, err := c.service.UpdateScreen(ctx.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrScreenNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Screen not found", nil, nil)
		case errors.Is(err, ErrLayoutFrozen):
			response.RespondJSON(ctx, "error", http.StatusConflict, "Seat layout cannot change while showtimes exist", nil, nil)
		case errors.Is(err, ErrInvalidLayout):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid seat layout", nil, err.Error())
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update screen", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Screen updated successfully", screen, nil)
}

func (c *Controller) DeleteScreen(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid screen ID", nil, nil)
		return
	}

	if err := c.service.DeleteScreen(ctx.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrScreenNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Screen not found", nil, nil)
		case errors.Is(err, ErrScreenInUse):
			response.RespondJSON(ctx, "error", http.StatusConflict, "Screen has showtimes and cannot be deleted", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete screen", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Screen deleted successfully", nil, nil)
}
