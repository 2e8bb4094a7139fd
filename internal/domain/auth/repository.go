package auth

import (
	"context"

	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type Repository interface {
	FindBarberByEmail(ctx context.Context, email string) (*models.Barber, error)
	UpdateBarberPassword(ctx context.Context, barberID uint, hash string) error
	FindClientByEmail(ctx context.Context, email string) (*models.Client, error)
}
