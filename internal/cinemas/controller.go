package cinemas

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

func (c *Controller) CreateCinema(ctx *gin.Context) {
	var req CreateCinemaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	cinema, err := c.service.CreateCinema(ctx.Request.Context(), &req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create cinema", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Cinema created successfully", cinema, nil)
}

func (c *Controller) GetCinema(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid cinema ID", nil, nil)
		return
	}

	cinema, err := c.service.GetCinema(ctx.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrCinemaNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Cinema not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get cinema", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Cinema retrieved successfully", cinema, nil)
}

func (c *Controller) ListCinemas(ctx *gin.Context) {
	var filters CinemaFilters
	if err := ctx.ShouldBindQuery(&filters); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := c.service.ListCinemas(ctx.Request.Context(), filters)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list cinemas", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Cinemas retrieved successfully", result, nil)
}

func (c *Controller) UpdateCinema(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid cinema ID", nil, nil)
		return
	}

	var req UpdateCinemaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	cinema, err := c.service.UpdateCinema(ctx.Request.Context(), id, &req)
	if err != nil {
		switch err {
		case ErrCinemaNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Cinema not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update cinema", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Cinema updated successfully", cinema, nil)
}

func (c *Controller) DeleteCinema(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid cinema ID", nil, nil)
		return
	}

	if err := c.service.DeleteCinema(ctx.Request.Context(), id); err != nil {
		switch err {
		case ErrCinemaNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Cinema not found", nil, nil)
		case ErrCinemaInUse:
			response.RespondJSON(ctx, "error", http.StatusConflict, "Cinema has theatres and cannot be deleted", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete cinema", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Cinema deleted successfully", nil, nil)
}
