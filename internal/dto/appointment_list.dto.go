package dto

import (
	"time"

	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type NameRef struct {
	Nome string `json:"nome"`
}

type ServiceRef struct {
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
}

type AppointmentListDTO struct {
	ID         uint        `json:"id"`
	ClienteID  uint        `json:"clienteId"`
	BarbeiroID uint        `json:"barbeiroId"`
	ServicoID  uint        `json:"servicoId"`
	Data       time.Time   `json:"data"`
	Status     string      `json:"status"`
	Cliente    *NameRef    `json:"cliente"`
	Barbeiro   *NameRef    `json:"barbeiro"`
	Servico    *ServiceRef `json:"servico"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

func clientRef(c *models.Client) *NameRef {
	if c == nil {
		return nil
	}
	return &NameRef{Nome: c.Name}
}

func barberRef(b *models.Barber) *NameRef {
	if b == nil {
		return nil
	}
	return &NameRef{Nome: b.Name}
}

func serviceRef(s *models.Service) *ServiceRef {
	if s == nil {
		return nil
	}
	return &ServiceRef{Nome: s.Name, Descricao: s.Description}
}

func NewAppointmentList(apps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, AppointmentListDTO{
			ID:         ap.ID,
			ClienteID:  ap.ClientID,
			BarbeiroID: ap.BarberID,
			ServicoID:  ap.ServiceID,
			Data:       ap.Date,
			Status:     ap.Status,
			Cliente:    clientRef(ap.Client),
			Barbeiro:   barberRef(ap.Barber),
			Servico:    serviceRef(ap.Service),
			CreatedAt:  ap.CreatedAt,
			UpdatedAt:  ap.UpdatedAt,
		})
	}
	return out
}
