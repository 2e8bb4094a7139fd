package catalog

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/catalog"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type UseCase struct {
	repo domain.Repository
}

func New(repo domain.Repository) *UseCase {
	return &UseCase{repo: repo}
}

func notFound(err error) error {
	return httperr.MissingRow(err, "service_not_found", "Servico não encontrado")
}

type CreateInput struct {
	Name        string
	Description string
	Price       float64
	ImageURL    *string
}

type UpdateInput struct {
	Name        *string
	Description *string
	Price       *float64
	ImageURL    *string
}

func validatePrice(p float64) error {
	if p <= 0 {
		return httperr.NewBusiness("invalid_price", "O preço deve ser positivo.")
	}
	return nil
}

func (uc *UseCase) Create(ctx context.Context, in CreateInput) (*models.Service, error) {
	if err := validatePrice(in.Price); err != nil {
		return nil, err
	}

	s := &models.Service{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return s, nil
}

func (uc *UseCase) GetAll(ctx context.Context) ([]models.Service, error) {
	services, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (uc *UseCase) GetByID(ctx context.Context, id uint) (*models.Service, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

func (uc *UseCase) Update(ctx context.Context, id uint, in UpdateInput) (*models.Service, error) {
	if in.Price != nil {
		if err := validatePrice(*in.Price); err != nil {
			return nil, err
		}
	}

	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.Description != nil {
		s.Description = *in.Description
	}
	if in.Price != nil {
		s.Price = *in.Price
	}
	if in.ImageURL != nil {
		s.ImageURL = in.ImageURL
	}

	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	return s, nil
}

func (uc *UseCase) Remove(ctx context.Context, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return notFound(err)
	}
	return nil
}
