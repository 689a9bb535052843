package profile

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
		log.Printf("profile: internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

type profileRequest struct {
	Name               string  `json:"name"`
	AdminExpense       float64 `json:"admin_expense"`
	LogisticsExpense   float64 `json:"logistics_expense"`
	OperationalExpense float64 `json:"operational_expense"`
	CommercialExpense  float64 `json:"commercial_expense"`
	Fees               float64 `json:"fees"`
	Tax                float64 `json:"tax"`
	Profit             float64 `json:"profit"`
	IsDefault          bool    `json:"is_default"`
}

func (req *profileRequest) toProfile() *Profile {
	return &Profile{
		Name:               req.Name,
		AdminExpense:       req.AdminExpense,
		LogisticsExpense:   req.LogisticsExpense,
		OperationalExpense: req.OperationalExpense,
		CommercialExpense:  req.CommercialExpense,
		Fees:               req.Fees,
		Tax:                req.Tax,
		Profit:             req.Profit,
		IsDefault:          req.IsDefault,
	}
}

// --------------------------------------------------
// POST /profiles
// --------------------------------------------------
func (h *Handler) CreateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	p, err := h.service.CreateProfile(c.Request.Context(), req.toProfile())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

// --------------------------------------------------
// GET /profiles
// --------------------------------------------------
func (h *Handler) ListProfiles(c *gin.Context) {
	profiles, err := h.service.ListProfiles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if profiles == nil {
		profiles = []*Profile{}
	}
	c.JSON(http.StatusOK, profiles)
}

// --------------------------------------------------
// GET /profiles/:id
// --------------------------------------------------
func (h *Handler) GetProfile(c *gin.Context) {
	var id int
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return
	}

	p, err := h.service.GetProfile(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// --------------------------------------------------
// PUT /profiles/:id
// --------------------------------------------------
func (h *Handler) UpdateProfile(c *gin.Context) {
	var id int
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return
	}

	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	p, err := h.service.UpdateProfile(c.Request.Context(), id, req.toProfile())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// --------------------------------------------------
// DELETE /profiles/:id
// --------------------------------------------------
func (h *Handler) DeleteProfile(c *gin.Context) {
	var id int
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return
	}

	if err := h.service.DeleteProfile(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
