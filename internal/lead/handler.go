package lead

import (
	"errors"
	"net/http"

	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/api"
	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/logger"
	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

type CreateLeadRequest struct {
	Name     string  `json:"name" binding:"required"`
	Phone    string  `json:"phone" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Age      int     `json:"age" binding:"required,gte=10,lte=100"`
	HeightCm float64 `json:"heightCm" binding:"required,gt=0"`
	WeightKg float64 `json:"weightKg" binding:"required,gt=0"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Create godoc
// @Summary      Submit interest
// @Description  Public landing-page form. Every lead starts as New.
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        request  body      CreateLeadRequest  true  "Lead details"
// @Success      201      {object}  api.Response
// @Failure      400      {object}  api.Response
// @Failure      500      {object}  api.Response
// @Router       /api/leads [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, api.BindingError(err))
		return
	}

	l := &Lead{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Age:      req.Age,
		HeightCm: req.HeightCm,
		WeightKg: req.WeightKg,
	}

	if err := h.store.Insert(c.Request.Context(), l); err != nil {
		logger.Errorf("Failed to create lead: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to submit details")
		return
	}

	metrics.RecordLeadCreated()
	api.Message(c, http.StatusCreated, "Request sent successfully!")
}

// List godoc
// @Summary      List new leads
// @Tags         leads
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  api.Response
// @Failure      500  {object}  api.Response
// @Router       /api/leads [get]
func (h *Handler) List(c *gin.Context) {
	leads, err := h.store.FindNew(c.Request.Context())
	if err != nil {
		logger.Errorf("Failed to list leads: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to load leads")
		return
	}

	api.OK(c, http.StatusOK, leads)
}

// UpdateStatus godoc
// @Summary      Update lead status
// @Description  Sets the lead status to Contacted, Converted or Rejected.
// @Tags         leads
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Lead ID"
// @Param        request  body      UpdateStatusRequest  true  "New status"
// @Success      200      {object}  api.Response
// @Failure      400      {object}  api.Response
// @Failure      404      {object}  api.Response
// @Failure      500      {object}  api.Response
// @Router       /api/leads/{id} [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if !IsValidTransition(req.Status) {
		api.Fail(c, http.StatusBadRequest, "status must be Contacted, Converted or Rejected")
		return
	}

	id := c.Param("id")
	if err := h.store.UpdateStatus(c.Request.Context(), id, Status(req.Status)); err != nil {
		if errors.Is(err, ErrNotFound) {
			api.Fail(c, http.StatusNotFound, "Lead not found")
			return
		}
		logger.Errorf("Failed to update lead %s: %v", id, err)
		api.Fail(c, http.StatusInternalServerError, "Failed to update lead")
		return
	}

	api.Message(c, http.StatusOK, "Lead updated")
}
