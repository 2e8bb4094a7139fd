package catalog

import (
	"context"

	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type Repository interface {
	Create(ctx context.Context, s *models.Service) error
	List(ctx context.Context) ([]models.Service, error)
	GetByID(ctx context.Context, id uint) (*models.Service, error)
	Update(ctx context.Context, s *models.Service) error
	Delete(ctx context.Context, id uint) error
}
