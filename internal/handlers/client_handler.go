package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/httpresp"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/usecase/client"
)

type ClientService interface {
	Create(ctx context.Context, in client.CreateInput) (*models.Client, error)
	GetAll(ctx context.Context) ([]models.Client, error)
	GetByID(ctx context.Context, id uint) (*models.Client, error)
	Update(ctx context.Context, id uint, in client.UpdateInput) (*models.Client, error)
	Remove(ctx context.Context, id uint) error
}

type ClientHandler struct {
	svc ClientService
}

func NewClientHandler(svc ClientService) *ClientHandler {
	return &ClientHandler{svc: svc}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Nome     string  `json:"nome" binding:"required,min=2,max=100"`
	Email    string  `json:"email" binding:"required,email"`
	Senha    string  `json:"senha" binding:"required,min=6,max=72"`
	Telefone *string `json:"telefone" binding:"omitempty,min=10,max=15"`
}

type UpdateClientRequest struct {
	Nome     *string `json:"nome,omitempty" binding:"omitempty,min=2,max=100"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Senha    *string `json:"senha,omitempty" binding:"omitempty,min=6,max=72"`
	Telefone *string `json:"telefone,omitempty" binding:"omitempty,min=10,max=15"`
}

// --------- Handlers ---------

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	out, err := h.svc.Create(c.Request.Context(), client.CreateInput{
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

func (h *ClientHandler) List(c *gin.Context) {
	out, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Array(c, out)
}

func (h *ClientHandler) Get(c *gin.Context) {
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

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	out, err := h.svc.Update(c.Request.Context(), id, client.UpdateInput{
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

func (h *ClientHandler) Delete(c *gin.Context) {
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
