package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/httpresp"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/usecase/barber"
)

type BarberService interface {
	Create(ctx context.Context, in barber.CreateInput) (*models.Barber, error)
	GetAll(ctx context.Context) ([]models.Barber, error)
	GetByID(ctx context.Context, id uint) (*models.Barber, error)
	Update(ctx context.Context, id uint, in barber.UpdateInput) (*models.Barber, error)
	Remove(ctx context.Context, id uint) error
}

type BarberHandler struct {
	svc BarberService
}

func NewBarberHandler(svc BarberService) *BarberHandler {
	return &BarberHandler{svc: svc}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Nome     string  `json:"nome" binding:"required,min=2,max=100"`
	Email    string  `json:"email" binding:"required,email"`
	Senha    string  `json:"senha" binding:"required,min=6,max=72"`
	Telefone *string `json:"telefone" binding:"omitempty,min=10,max=15"`
}

type UpdateBarberRequest struct {
	Nome     *string `json:"nome,omitempty" binding:"omitempty,min=2,max=100"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Senha    *string `json:"senha,omitempty" binding:"omitempty,min=6,max=72"`
	Telefone *string `json:"telefone,omitempty" binding:"omitempty,min=10,max=15"`
}

// --------- Handlers ---------

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	out, err := h.svc.Create(c.Request.Context(), barber.CreateInput{
		Name:     req.Nome,
		Email:    normalizeEmail(req.Email),
		Password: req.Senha,
		Phone:    req.Telefone,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, out)
}

func (h *BarberHandler) List(c *gin.Context) {
	out, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Array(c, out)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	out, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	out, err := h.svc.Update(c.Request.Context(), id, barber.UpdateInput{
		Name:     req.Nome,
		Email:    normalizeEmailPtr(req.Email),
		Password: req.Senha,
		Phone:    req.Telefone,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Remove(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
