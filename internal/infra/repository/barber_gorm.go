package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/barber"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type BarberGormRepository struct {
	db *gorm.DB
}

func NewBarberGormRepository(db *gorm.DB) *BarberGormRepository {
	return &BarberGormRepository{db: db}
}

func (r *BarberGormRepository) Create(ctx context.Context, b *models.Barber) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error
}

func (r *BarberGormRepository) List(ctx context.Context) ([]models.Barber, error) {
	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Preload("Reviews").
		Preload("Appointments").
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

func (r *BarberGormRepository) GetByID(ctx context.Context, id uint) (*models.Barber, error) {
	var b models.Barber
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// Update não mexe em media_notas; ela é mantida pela transação das avaliações.
func (r *BarberGormRepository) Update(ctx context.Context, b *models.Barber) error {
	return r.db.WithContext(ctx).
		Model(b).
		Omit(clause.Associations).
		Select("nome", "email", "senha", "telefone", "updated_at").
		Updates(b).Error
}

func (r *BarberGormRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.Barber{}, id)
}

var _ domain.Repository = (*BarberGormRepository)(nil)
