package barber

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/barber"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/password"
)

type UseCase struct {
	repo domain.Repository
}

func New(repo domain.Repository) *UseCase {
	return &UseCase{repo: repo}
}

func notFound(err error) error {
	return httperr.MissingRow(err, "barber_not_found", "Barbeiro não encontrado")
}

type CreateInput struct {
	Name     string
	Email    string
	Password string
	Phone    *string
}

type UpdateInput struct {
	Name     *string
	Email    *string
	Password *string
	Phone    *string
}

// Create começa com média 0; a média só muda pelas avaliações.
func (uc *UseCase) Create(ctx context.Context, in CreateInput) (*models.Barber, error) {
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	b := &models.Barber{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Phone:    in.Phone,
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create barber: %w", err)
	}
	return b, nil
}

func (uc *UseCase) GetAll(ctx context.Context) ([]models.Barber, error) {
	barbers, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list barbers: %w", err)
	}
	return barbers, nil
}

func (uc *UseCase) GetByID(ctx context.Context, id uint) (*models.Barber, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return b, nil
}

func (uc *UseCase) Update(ctx context.Context, id uint, in UpdateInput) (*models.Barber, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	if in.Name != nil {
		b.Name = *in.Name
	}
	if in.Email != nil {
		b.Email = *in.Email
	}
	if in.Phone != nil {
		b.Phone = in.Phone
	}
	if in.Password != nil {
		hash, err := password.Hash(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		b.Password = hash
	}

	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("update barber: %w", err)
	}
	return b, nil
}

func (uc *UseCase) Remove(ctx context.Context, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return notFound(err)
	}
	return nil
}
