package appointment

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/barbearia-api/internal/dto"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

func (uc *UseCase) GetAll(ctx context.Context) ([]dto.AppointmentListDTO, error) {
	apps, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return dto.NewAppointmentList(apps), nil
}

// GetByClientID devolve os agendamentos do cliente, mais recentes primeiro.
func (uc *UseCase) GetByClientID(ctx context.Context, clientID uint) ([]dto.AppointmentListDTO, error) {
	apps, err := uc.repo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list appointments by client: %w", err)
	}
	return dto.NewAppointmentList(apps), nil
}

func (uc *UseCase) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return ap, nil
}
