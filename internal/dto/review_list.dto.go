package dto

import (
	"time"

	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type ReviewListDTO struct {
	ID         uint        `json:"id"`
	ClienteID  uint        `json:"clienteId"`
	BarbeiroID uint        `json:"barbeiroId"`
	ServicoID  uint        `json:"servicoId"`
	Nota       int         `json:"nota"`
	Comentario string      `json:"comentario"`
	Cliente    *NameRef    `json:"cliente"`
	Barbeiro   *NameRef    `json:"barbeiro"`
	Servico    *ServiceRef `json:"servico"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

func NewReviewList(reviews []models.Review) []ReviewListDTO {
	out := make([]ReviewListDTO, 0, len(reviews))
	for _, rv := range reviews {
		out = append(out, ReviewListDTO{
			ID:         rv.ID,
			ClienteID:  rv.ClientID,
			BarbeiroID: rv.BarberID,
			ServicoID:  rv.ServiceID,
			Nota:       rv.Score,
			Comentario: rv.Comment,
			Cliente:    clientRef(rv.Client),
			Barbeiro:   barberRef(rv.Barber),
			Servico:    serviceRef(rv.Service),
			CreatedAt:  rv.CreatedAt,
			UpdatedAt:  rv.UpdatedAt,
		})
	}
	return out
}
