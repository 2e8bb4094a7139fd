package review

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/reference"
	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/review"
	"github.com/BruksfildServices01/barbearia-api/internal/dto"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type UseCase struct {
	repo  domain.Repository
	audit audit.Sink
	log   *zap.Logger
}

func New(repo domain.Repository, sink audit.Sink, log *zap.Logger) *UseCase {
	return &UseCase{repo: repo, audit: sink, log: log}
}

func notFound(err error) error {
	return httperr.MissingRow(err, "review_not_found", "Avaliação não encontrada")
}

// recompute grava a média do barbeiro a partir das notas atuais, dentro da transação.
func recompute(ctx context.Context, tx domain.Repository, barberID uint) (float64, error) {
	scores, err := tx.ScoresByBarber(ctx, barberID)
	if err != nil {
		return 0, fmt.Errorf("load scores: %w", err)
	}

	avg := domain.Mean(scores)
	if err := tx.SetBarberAverage(ctx, barberID, avg); err != nil {
		return 0, fmt.Errorf("set barber average: %w", err)
	}
	return avg, nil
}

// ======================================================
// CREATE
// ======================================================

type CreateInput struct {
	ClientID  uint
	BarberID  uint
	ServiceID uint
	Score     int
	Comment   string
}

func (uc *UseCase) Create(ctx context.Context, in CreateInput) (*models.Review, error) {
	if err := domain.ValidateScore(in.Score); err != nil {
		return nil, err
	}

	if err := reference.Check(ctx, uc.repo, in.ClientID, in.BarberID, in.ServiceID); err != nil {
		return nil, err
	}

	rv := &models.Review{
		ClientID:  in.ClientID,
		BarberID:  in.BarberID,
		ServiceID: in.ServiceID,
		Score:     in.Score,
		Comment:   in.Comment,
	}

	var avg float64
	err := uc.repo.WithBarberLock(ctx, in.BarberID, func(tx domain.Repository) error {
		if err := tx.Create(ctx, rv); err != nil {
			return fmt.Errorf("create review: %w", err)
		}
		var err error
		avg, err = recompute(ctx, tx, in.BarberID)
		return err
	})
	if err != nil {
		return nil, httperr.MissingReference(err, "barber_not_found", "Barbeiro não encontrado")
	}

	uc.log.Debug("barber average updated",
		zap.Uint("barber_id", in.BarberID),
		zap.Float64("media_notas", avg),
	)

	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.Ptr(in.ClientID),
		Action:   "review_created",
		Entity:   "avaliacao",
		EntityID: audit.Ptr(rv.ID),
		Metadata: map[string]any{
			"barbeiroId": in.BarberID,
			"nota":       in.Score,
			"mediaNotas": avg,
		},
	})

	return rv, nil
}

// ======================================================
// READ
// ======================================================

func (uc *UseCase) GetAll(ctx context.Context, f domain.Filter) ([]dto.ReviewListDTO, error) {
	reviews, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return dto.NewReviewList(reviews), nil
}

func (uc *UseCase) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	rv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return rv, nil
}

// ======================================================
// UPDATE / REMOVE
// ======================================================

// UpdateInput não carrega cliente, barbeiro nem serviço: essas referências não mudam.
type UpdateInput struct {
	Score   *int
	Comment *string
}

func (uc *UseCase) Update(ctx context.Context, id uint, in UpdateInput) (*models.Review, error) {
	if in.Score != nil {
		if err := domain.ValidateScore(*in.Score); err != nil {
			return nil, err
		}
	}

	rv, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	scoreChanged := in.Score != nil && *in.Score != rv.Score
	if in.Score != nil {
		rv.Score = *in.Score
	}
	if in.Comment != nil {
		rv.Comment = *in.Comment
	}

	err = uc.repo.WithBarberLock(ctx, rv.BarberID, func(tx domain.Repository) error {
		if err := tx.Update(ctx, rv); err != nil {
			return fmt.Errorf("update review: %w", err)
		}
		if !scoreChanged {
			return nil
		}
		_, err := recompute(ctx, tx, rv.BarberID)
		return err
	})
	if err != nil {
		return nil, notFound(err)
	}

	return rv, nil
}

func (uc *UseCase) Remove(ctx context.Context, id uint) error {
	rv, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return notFound(err)
	}

	err = uc.repo.WithBarberLock(ctx, rv.BarberID, func(tx domain.Repository) error {
		if err := tx.Delete(ctx, id); err != nil {
			return err
		}
		_, err := recompute(ctx, tx, rv.BarberID)
		return err
	})
	if err != nil {
		return notFound(err)
	}
	return nil
}
