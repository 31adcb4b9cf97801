// Tile calculator HTTP handler.
//
// This file exposes:
//   - POST /calculator  (estimate tile quantities for a room)
//
// The calculator is pure math; it never touches storage or the assistant.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tilevista/go-store-backend/internal/services"
)

// CalculatorRequest is the JSON payload for a tile estimate. Dimensions are
// in meters; tileSize is one of the supported formats in millimeters.
type CalculatorRequest struct {
	Length   float64 `json:"length" binding:"required" example:"4"`
	Width    float64 `json:"width" binding:"required" example:"3"`
	TileSize string  `json:"tileSize" binding:"required" example:"600x600"`
}

// Calculate godoc
// @ID          calculate
// @Summary     Estimate tile quantities
// @Description Computes the exact tile count for a room plus a recommended purchase including a 10% cutting allowance.
// @Tags        Calculator
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CalculatorRequest  true  "Room dimensions and tile format"
//
// @Success     200  {object}  services.TileEstimate
// @Failure     400  {object}  handlers.ErrorResponse "Invalid dimensions or tile size"
// @Router      /calculator [post]
func (h *Handlers) Calculate(c *gin.Context) {
	var req CalculatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "length, width, and tileSize are required")
		return
	}

	est, err := h.calc.Estimate(c.Request.Context(), req.Length, req.Width, req.TileSize)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDimensions) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "dimensions must be positive and tileSize one of: 300x300, 300x600, 600x600, 900x900")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, est)
}
