package pricing

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"simulador-preco/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /pricing/simulate
// --------------------------------------------------
func (h *Handler) Simulate(c *gin.Context) {
	var req struct {
		ItemID       int      `json:"item_id"`
		ProfileID    *int     `json:"profile_id"`
		CurrentPrice *float64 `json:"current_price"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.ItemID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_id is required"})
		return
	}

	result, err := h.service.Simulate(
		c.Request.Context(),
		req.ItemID,
		req.ProfileID,
		req.CurrentPrice,
	)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, core.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			// Invariant violations point at a bug elsewhere; log the
			// detail, answer with a generic failure.
			log.Printf("pricing: internal error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
