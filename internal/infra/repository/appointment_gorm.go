package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type AppointmentGormRepository struct {
	*ReferenceGormRepository
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{
		ReferenceGormRepository: NewReferenceGormRepository(db),
		db:                      db,
	}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(ap).Error
}

// --------------------------------------------------
// Listagens
// --------------------------------------------------

func (r *AppointmentGormRepository) summaries(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Client", nameOnly).
		Preload("Barber", nameOnly).
		Preload("Service", serviceSummary)
}

func (r *AppointmentGormRepository) List(
	ctx context.Context,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.summaries(ctx).
		Order("id ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListByClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.summaries(ctx).
		Where("cliente_id = ?", clientID).
		Order("data DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Get
// --------------------------------------------------

func (r *AppointmentGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		Preload("Service").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

// --------------------------------------------------
// Update / Delete
// --------------------------------------------------

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {
	// só data e status mudam; FKs ficam como estão
	return r.db.WithContext(ctx).
		Model(ap).
		Select("data", "status", "updated_at").
		Updates(ap).Error
}

func (r *AppointmentGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	return deleteByID(ctx, r.db, &models.Appointment{}, id)
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
