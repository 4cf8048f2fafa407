package bookings

import (
	"errors"
	"net/http"

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

// GetDetail handles GET /api/v1/bookings/:id
func (c *Controller) GetDetail(ctx *gin.Context) {
	detail, err := c.service.GetDetail(ctx.Request.Context(), middleware.GetSessionID(ctx), ctx.Param("id"))
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "Booking retrieved successfully", detail)
}

// AdjustProduct handles POST /api/v1/bookings/:id/products
func (c *Controller) AdjustProduct(ctx *gin.Context) {
	var req AdjustProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	detail, err := c.service.AdjustProduct(ctx.Request.Context(),
		middleware.GetSessionID(ctx), ctx.Param("id"), req.ProductID, req.Delta)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "Product selection updated", detail)
}

// TogglePayment handles POST /api/v1/bookings/:id/payment/toggle
func (c *Controller) TogglePayment(ctx *gin.Context) {
	detail, err := c.service.TogglePayment(ctx.Request.Context(), middleware.GetSessionID(ctx), ctx.Param("id"))
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "Payment status updated", detail)
}

func (c *Controller) respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		response.Error(ctx, http.StatusNotFound, "Booking not found", err.Error())
	case errors.Is(err, reva.ErrMalformedTimestamp):
		response.Error(ctx, http.StatusBadGateway, "Booking carries malformed timestamps", err.Error())
	default:
		response.Error(ctx, http.StatusInternalServerError, "Failed to load booking", err.Error())
	}
}
