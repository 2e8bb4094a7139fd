package appointment

import (
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
)

// ======================================================
// USE CASE
// ======================================================

type Options struct {
	// Fuso usado para datas sem offset vindas do front.
	Location *time.Location

	// Bloqueia mudança de status de agendamentos finalizados.
	StrictStatus bool
}

type UseCase struct {
	repo  domain.Repository
	audit audit.Sink
	log   *zap.Logger
	opts  Options
	now   func() time.Time
}

func New(
	repo domain.Repository,
	sink audit.Sink,
	log *zap.Logger,
	opts Options,
) *UseCase {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &UseCase{
		repo:  repo,
		audit: sink,
		log:   log,
		opts:  opts,
		now:   time.Now,
	}
}

func notFound(err error) error {
	return httperr.MissingRow(err, "appointment_not_found", "Agendamento não encontrado")
}
