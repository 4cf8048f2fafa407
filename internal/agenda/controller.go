package agenda

import (
	"errors"
	"net/http"
	"time"

	"courtdesk/internal/reva"
	"courtdesk/internal/shared/middleware"
	"courtdesk/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetAgenda handles GET /api/v1/agenda?start=YYYY-MM-DD&end=YYYY-MM-DD
// Both dates default to today, matching the operator app's initial filter.
func (c *Controller) GetAgenda(ctx *gin.Context) {
	today := time.Now().Format(dateKeyLayout)
	startDate := ctx.DefaultQuery("start", today)
	endDate := ctx.DefaultQuery("end", today)

	view, err := c.service.GetAgenda(ctx.Request.Context(), middleware.GetSessionID(ctx), startDate, endDate)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDateRange):
			response.Error(ctx, http.StatusBadRequest, "Invalid date range", err.Error())
		case errors.Is(err, reva.ErrMalformedTimestamp):
			response.Error(ctx, http.StatusBadGateway, "Upstream returned malformed booking data", err.Error())
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to build agenda", err.Error())
		}
		return
	}

	response.Success(ctx, http.StatusOK, "Agenda retrieved successfully", view)
}

// ToggleSection handles POST /api/v1/agenda/sections/toggle
func (c *Controller) ToggleSection(ctx *gin.Context) {
	var req ToggleSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	state, err := c.service.ToggleSection(ctx.Request.Context(), middleware.GetSessionID(ctx), req.Title)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to toggle section", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Section toggled successfully", gin.H{
		"collapsed_sections": state,
	})
}
