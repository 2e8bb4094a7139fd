package client

import (
	"context"

	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.Client) error
	List(ctx context.Context) ([]models.Client, error)
	GetByID(ctx context.Context, id uint) (*models.Client, error)
	Update(ctx context.Context, c *models.Client) error
	Delete(ctx context.Context, id uint) error
}
