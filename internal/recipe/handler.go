package recipe

import (
	"errors"
	"fmt"
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

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, core.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("recipe: internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// --------------------------------------------------
// POST /recipes
// --------------------------------------------------
func (h *Handler) SaveRecipe(c *gin.Context) {
	var req struct {
		ProductID   int         `json:"product_id"`
		WasteFactor *float64    `json:"waste_factor"`
		Lines       []LineInput `json:"lines"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// An omitted waste factor means no waste adjustment. An explicit bad
	// value still gets rejected downstream.
	wasteFactor := 1.0
	if req.WasteFactor != nil {
		wasteFactor = *req.WasteFactor
	}

	rec, err := h.service.SaveRecipe(
		c.Request.Context(),
		req.ProductID,
		wasteFactor,
		req.Lines,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// --------------------------------------------------
// GET /recipes/:productId
// --------------------------------------------------
func (h *Handler) GetRecipe(c *gin.Context) {
	var productID int
	if _, err := fmt.Sscanf(c.Param("productId"), "%d", &productID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	rec, err := h.service.GetRecipe(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}
