package appointment

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/reference"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	ClientID  uint
	BarberID  uint
	ServiceID uint
	Data      string
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UseCase) Create(
	ctx context.Context,
	in CreateInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Referências (cliente, barbeiro, serviço)
	// --------------------------------------------------
	if err := reference.Check(ctx, uc.repo, in.ClientID, in.BarberID, in.ServiceID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Data
	// --------------------------------------------------
	when, ok := domain.NormalizeDateTime(in.Data, uc.opts.Location)
	if !ok {
		return nil, httperr.NewBusiness("invalid_date", "Data inválida.")
	}
	if !when.After(uc.now()) {
		return nil, httperr.NewBusiness("date_in_past", "A data do agendamento deve ser futura.")
	}

	// --------------------------------------------------
	// 3️⃣ Criação (status inicial centralizado)
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientID:  in.ClientID,
		BarberID:  in.BarberID,
		ServiceID: in.ServiceID,
		Date:      when,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	// --------------------------------------------------
	// 4️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.Ptr(in.ClientID),
		Action:   "appointment_created",
		Entity:   "agendamento",
		EntityID: audit.Ptr(ap.ID),
	})

	return ap, nil
}
