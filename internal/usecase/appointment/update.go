package appointment

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

// UpdateInput não tem cliente, barbeiro nem serviço: essas referências não mudam.
type UpdateInput struct {
	Data   *string
	Status *string
}

func (uc *UseCase) Update(
	ctx context.Context,
	id uint,
	in UpdateInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	previous := ap.Status

	res, err := domain.Apply(ap, domain.Patch{
		Data:   in.Data,
		Status: in.Status,
	}, uc.opts.Location, uc.opts.StrictStatus)
	if err != nil {
		return nil, err
	}

	if !res.Changed {
		return ap, nil
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, notFound(fmt.Errorf("update appointment: %w", err))
	}

	action := "appointment_updated"
	if res.Reopened {
		action = "appointment_reopened"
		uc.log.Warn("appointment reopened",
			zap.Uint("appointment_id", ap.ID),
			zap.String("from", previous),
			zap.String("to", ap.Status),
		)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   action,
		Entity:   "agendamento",
		EntityID: audit.Ptr(ap.ID),
		Metadata: map[string]any{
			"from": previous,
			"to":   ap.Status,
		},
	})

	return ap, nil
}

func (uc *UseCase) Remove(ctx context.Context, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return notFound(err)
	}
	return nil
}
