package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/httpresp"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/usecase/catalog"
)

type CatalogService interface {
	Create(ctx context.Context, in catalog.CreateInput) (*models.Service, error)
	GetAll(ctx context.Context) ([]models.Service, error)
	GetByID(ctx context.Context, id uint) (*models.Service, error)
	Update(ctx context.Context, id uint, in catalog.UpdateInput) (*models.Service, error)
	Remove(ctx context.Context, id uint) error
}

type ServiceHandler struct {
	svc CatalogService
}

func NewServiceHandler(svc CatalogService) *ServiceHandler {
	return &ServiceHandler{svc: svc}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Nome      string  `json:"nome" binding:"required,min=2,max=100"`
	Descricao string  `json:"descricao" binding:"max=500"`
	Preco     float64 `json:"preco" binding:"required,gt=0"`
	ImagemURL *string `json:"imagemUrl" binding:"omitempty,url,max=500"`
}

type UpdateServiceRequest struct {
	Nome      *string  `json:"nome,omitempty" binding:"omitempty,min=2,max=100"`
	Descricao *string  `json:"descricao,omitempty" binding:"omitempty,max=500"`
	Preco     *float64 `json:"preco,omitempty" binding:"omitempty,gt=0"`
	ImagemURL *string  `json:"imagemUrl,omitempty" binding:"omitempty,url,max=500"`
}

// --------- Handlers ---------

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	out, err := h.svc.Create(c.Request.Context(), catalog.CreateInput{
		Name:        req.Nome,
		Description: req.Descricao,
		Price:       req.Preco,
		ImageURL:    req.ImagemURL,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, out)
}

func (h *ServiceHandler) List(c *gin.Context) {
	out, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Array(c, out)
}

func (h *ServiceHandler) Get(c *gin.Context) {
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

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	out, err := h.svc.Update(c.Request.Context(), id, catalog.UpdateInput{
		Name:        req.Nome,
		Description: req.Descricao,
		Price:       req.Preco,
		ImageURL:    req.ImagemURL,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
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
