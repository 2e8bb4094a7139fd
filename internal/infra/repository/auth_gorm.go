package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/auth"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type AuthGormRepository struct {
	db *gorm.DB
}

func NewAuthGormRepository(db *gorm.DB) *AuthGormRepository {
	return &AuthGormRepository{db: db}
}

func (r *AuthGormRepository) FindBarberByEmail(ctx context.Context, email string) (*models.Barber, error) {
	var b models.Barber
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *AuthGormRepository) UpdateBarberPassword(ctx context.Context, barberID uint, hash string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Barber{}).
		Where("id = ?", barberID).
		Update("senha", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AuthGormRepository) FindClientByEmail(ctx context.Context, email string) (*models.Client, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

var _ domain.Repository = (*AuthGormRepository)(nil)
