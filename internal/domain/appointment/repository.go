package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbearia-api/internal/domain/reference"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type Repository interface {
	reference.Checker

	// -------- Appointment --------
	Create(ctx context.Context, ap *models.Appointment) error

	// List e ListByClient carregam só o nome de cliente/barbeiro e nome+descrição do serviço.
	List(ctx context.Context) ([]models.Appointment, error)
	ListByClient(ctx context.Context, clientID uint) ([]models.Appointment, error)

	GetByID(ctx context.Context, id uint) (*models.Appointment, error)
	FindByID(ctx context.Context, id uint) (*models.Appointment, error)
	Update(ctx context.Context, ap *models.Appointment) error
	Delete(ctx context.Context, id uint) error
}
