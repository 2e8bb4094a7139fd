package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-api/internal/dto"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/httpresp"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/usecase/appointment"
)

type AppointmentService interface {
	Create(ctx context.Context, in appointment.CreateInput) (*models.Appointment, error)
	GetAll(ctx context.Context) ([]dto.AppointmentListDTO, error)
	GetByClientID(ctx context.Context, clientID uint) ([]dto.AppointmentListDTO, error)
	GetByID(ctx context.Context, id uint) (*models.Appointment, error)
	Update(ctx context.Context, id uint, in appointment.UpdateInput) (*models.Appointment, error)
	Remove(ctx context.Context, id uint) error
}

type AppointmentHandler struct {
	svc AppointmentService
}

func NewAppointmentHandler(svc AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClienteID  uint   `json:"clienteId" binding:"required,gt=0"`
	BarbeiroID uint   `json:"barbeiroId" binding:"required,gt=0"`
	ServicoID  uint   `json:"servicoId" binding:"required,gt=0"`
	Data       string `json:"data" binding:"required,isodatetime"`
}

// UpdateAppointmentRequest ignora clienteId/barbeiroId/servicoId se vierem no corpo.
// data ilegível não é erro: o campo só é descartado.
type UpdateAppointmentRequest struct {
	Data   *string `json:"data,omitempty"`
	Status *string `json:"status,omitempty" binding:"omitempty,oneof=AGENDADO CONCLUIDO CANCELADO"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	ap, err := h.svc.Create(c.Request.Context(), appointment.CreateInput{
		ClientID:  req.ClienteID,
		BarberID:  req.BarbeiroID,
		ServiceID: req.ServicoID,
		Data:      req.Data,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	out, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Array(c, out)
}

func (h *AppointmentHandler) ListByClient(c *gin.Context) {
	clientID, ok := parseID(c, "clienteId")
	if !ok {
		return
	}

	out, err := h.svc.GetByClientID(c.Request.Context(), clientID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Array(c, out)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ap, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	ap, err := h.svc.Update(c.Request.Context(), id, appointment.UpdateInput{
		Data:   req.Data,
		Status: req.Status,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
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
