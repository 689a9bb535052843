package catalog

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
		log.Printf("catalog: internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// --------------------------------------------------
// POST /items
// --------------------------------------------------
func (h *Handler) CreateItem(c *gin.Context) {
	var req struct {
		Name        string   `json:"name"`
		Kind        string   `json:"kind"`
		Unit        string   `json:"unit"`
		CostPerUnit float64  `json:"cost_per_unit"`
		YieldQty    *float64 `json:"yield_qty"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.service.CreateItem(
		c.Request.Context(),
		req.Name,
		req.Kind,
		req.Unit,
		req.CostPerUnit,
		req.YieldQty,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// --------------------------------------------------
// GET /items
// --------------------------------------------------
func (h *Handler) ListItems(c *gin.Context) {
	kind := c.Query("kind")
	activeOnly := c.Query("active") == "true"

	items, err := h.service.ListItems(c.Request.Context(), kind, activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	if items == nil {
		items = []*Item{}
	}
	c.JSON(http.StatusOK, items)
}

// --------------------------------------------------
// GET /items/:id
// --------------------------------------------------
func (h *Handler) GetItem(c *gin.Context) {
	var id int
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	item, err := h.service.GetItem(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// --------------------------------------------------
// PUT /items/:id
// --------------------------------------------------
func (h *Handler) UpdateItem(c *gin.Context) {
	var id int
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	var req struct {
		Name        string   `json:"name"`
		Kind        string   `json:"kind"`
		Unit        string   `json:"unit"`
		CostPerUnit float64  `json:"cost_per_unit"`
		YieldQty    *float64 `json:"yield_qty"`
		IsActive    *bool    `json:"is_active"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	item, err := h.service.UpdateItem(
		c.Request.Context(),
		id,
		req.Name,
		req.Kind,
		req.Unit,
		req.CostPerUnit,
		req.YieldQty,
		isActive,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// --------------------------------------------------
// DELETE /items/:id (deactivates, never hard-deletes)
// --------------------------------------------------
func (h *Handler) DeleteItem(c *gin.Context) {
	var id int
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	if err := h.service.DeactivateItem(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}
