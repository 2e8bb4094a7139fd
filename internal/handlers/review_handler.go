package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/review"
	"github.com/BruksfildServices01/barbearia-api/internal/dto"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/httpresp"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/usecase/review"
)

type ReviewService interface {
	Create(ctx context.Context, in review.CreateInput) (*models.Review, error)
	GetAll(ctx context.Context, f domain.Filter) ([]dto.ReviewListDTO, error)
	GetByID(ctx context.Context, id uint) (*models.Review, error)
	Update(ctx context.Context, id uint, in review.UpdateInput) (*models.Review, error)
	Remove(ctx context.Context, id uint) error
}

type ReviewHandler struct {
	svc ReviewService
}

func NewReviewHandler(svc ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// --------- Requests ---------

type CreateReviewRequest struct {
	ClienteID  uint   `json:"clienteId" binding:"required,gt=0"`
	BarbeiroID uint   `json:"barbeiroId" binding:"required,gt=0"`
	ServicoID  uint   `json:"servicoId" binding:"required,gt=0"`
	Nota       int    `json:"nota" binding:"required,min=1,max=5"`
	Comentario string `json:"comentario" binding:"max=500"`
}

type UpdateReviewRequest struct {
	Nota       *int    `json:"nota,omitempty" binding:"omitempty,min=1,max=5"`
	Comentario *string `json:"comentario,omitempty" binding:"omitempty,max=500"`
}

// --------- Handlers ---------

func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	rv, err := h.svc.Create(c.Request.Context(), review.CreateInput{
		ClientID:  req.ClienteID,
		BarberID:  req.BarbeiroID,
		ServiceID: req.ServicoID,
		Score:     req.Nota,
		Comment:   req.Comentario,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, rv)
}

// List aceita ?clienteId=&barbeiroId=&servicoId= como filtros opcionais.
func (h *ReviewHandler) List(c *gin.Context) {
	var (
		f  domain.Filter
		ok bool
	)
	if f.ClientID, ok = optionalID(c, "clienteId"); !ok {
		return
	}
	if f.BarberID, ok = optionalID(c, "barbeiroId"); !ok {
		return
	}
	if f.ServiceID, ok = optionalID(c, "servicoId"); !ok {
		return
	}

	out, err := h.svc.GetAll(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Array(c, out)
}

func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	rv, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, rv)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	rv, err := h.svc.Update(c.Request.Context(), id, review.UpdateInput{
		Score:   req.Nota,
		Comment: req.Comentario,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, rv)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
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
