package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/review"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type ReviewGormRepository struct {
	*ReferenceGormRepository
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{
		ReferenceGormRepository: NewReferenceGormRepository(db),
		db:                      db,
	}
}

// --------------------------------------------------
// Transação com o barbeiro travado
// --------------------------------------------------

func (r *ReviewGormRepository) WithBarberLock(
	ctx context.Context,
	barberID uint,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var barber models.Barber
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&barber, barberID).Error; err != nil {
			return err
		}

		return fn(NewReviewGormRepository(tx))
	})
}

func (r *ReviewGormRepository) ScoresByBarber(
	ctx context.Context,
	barberID uint,
) ([]int, error) {

	var scores []int
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("barbeiro_id = ?", barberID).
		Pluck("nota", &scores).Error; err != nil {
		return nil, err
	}
	return scores, nil
}

func (r *ReviewGormRepository) SetBarberAverage(
	ctx context.Context,
	barberID uint,
	avg float64,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Barber{}).
		Where("id = ?", barberID).
		Update("media_notas", avg).Error
}

// --------------------------------------------------
// Review
// --------------------------------------------------

func (r *ReviewGormRepository) Create(
	ctx context.Context,
	rv *models.Review,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(rv).Error
}

func (r *ReviewGormRepository) List(
	ctx context.Context,
	f domain.Filter,
) ([]models.Review, error) {

	q := r.db.WithContext(ctx).
		Preload("Client", nameOnly).
		Preload("Barber", nameOnly).
		Preload("Service", serviceSummary)

	if f.ClientID != nil {
		q = q.Where("cliente_id = ?", *f.ClientID)
	}
	if f.BarberID != nil {
		q = q.Where("barbeiro_id = ?", *f.BarberID)
	}
	if f.ServiceID != nil {
		q = q.Where("servico_id = ?", *f.ServiceID)
	}

	var reviews []models.Review
	if err := q.Order("id ASC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Review, error) {

	var rv models.Review
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		Preload("Service").
		First(&rv, id).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Review, error) {

	var rv models.Review
	if err := r.db.WithContext(ctx).First(&rv, id).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewGormRepository) Update(
	ctx context.Context,
	rv *models.Review,
) error {
	return r.db.WithContext(ctx).
		Model(rv).
		Select("nota", "comentario", "updated_at").
		Updates(rv).Error
}

func (r *ReviewGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	return deleteByID(ctx, r.db, &models.Review{}, id)
}

// Compile-time check
var _ domain.Repository = (*ReviewGormRepository)(nil)
