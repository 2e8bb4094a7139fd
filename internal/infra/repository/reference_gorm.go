package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

// ReferenceGormRepository responde se as entidades referenciadas por agendamentos
// e avaliações existem.
type ReferenceGormRepository struct {
	db *gorm.DB
}

func NewReferenceGormRepository(db *gorm.DB) *ReferenceGormRepository {
	return &ReferenceGormRepository{db: db}
}

func (r *ReferenceGormRepository) exists(ctx context.Context, model any, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(model).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ReferenceGormRepository) ClientExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &models.Client{}, id)
}

func (r *ReferenceGormRepository) BarberExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &models.Barber{}, id)
}

func (r *ReferenceGormRepository) ServiceExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &models.Service{}, id)
}

// --------------------------------------------------
// Preloads só com nome
// --------------------------------------------------

func nameOnly(db *gorm.DB) *gorm.DB {
	return db.Select("id", "nome")
}

func serviceSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "nome", "descricao")
}

// deleteByID devolve gorm.ErrRecordNotFound quando nada foi apagado.
func deleteByID(ctx context.Context, db *gorm.DB, model any, id uint) error {
	res := db.WithContext(ctx).Delete(model, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
