package barber

import (
	"context"

	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type Repository interface {
	Create(ctx context.Context, b *models.Barber) error

	// List traz cada barbeiro com avaliações e agendamentos.
	List(ctx context.Context) ([]models.Barber, error)

	GetByID(ctx context.Context, id uint) (*models.Barber, error)
	Update(ctx context.Context, b *models.Barber) error
	Delete(ctx context.Context, id uint) error
}
