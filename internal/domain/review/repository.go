package review

import (
	"context"

	"github.com/BruksfildServices01/barbearia-api/internal/domain/reference"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type Filter struct {
	ClientID  *uint
	BarberID  *uint
	ServiceID *uint
}

type Repository interface {
	reference.Checker

	// WithBarberLock roda fn numa transação com a linha do barbeiro travada (FOR UPDATE).
	// O Repository recebido por fn opera dentro dessa transação.
	WithBarberLock(ctx context.Context, barberID uint, fn func(tx Repository) error) error

	ScoresByBarber(ctx context.Context, barberID uint) ([]int, error)
	SetBarberAverage(ctx context.Context, barberID uint, avg float64) error

	// -------- Review --------
	Create(ctx context.Context, rv *models.Review) error
	List(ctx context.Context, f Filter) ([]models.Review, error)
	GetByID(ctx context.Context, id uint) (*models.Review, error)
	FindByID(ctx context.Context, id uint) (*models.Review, error)
	Update(ctx context.Context, rv *models.Review) error
	Delete(ctx context.Context, id uint) error
}
