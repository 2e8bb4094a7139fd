package client

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/client"
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
	return httperr.MissingRow(err, "client_not_found", "Cliente não encontrado")
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

func (uc *UseCase) Create(ctx context.Context, in CreateInput) (*models.Client, error) {
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	c := &models.Client{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Phone:    in.Phone,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return c, nil
}

func (uc *UseCase) GetAll(ctx context.Context) ([]models.Client, error) {
	clients, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (uc *UseCase) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

func (uc *UseCase) Update(ctx context.Context, id uint, in UpdateInput) (*models.Client, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Phone != nil {
		c.Phone = in.Phone
	}
	if in.Password != nil {
		hash, err := password.Hash(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		c.Password = hash
	}

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	return c, nil
}

func (uc *UseCase) Remove(ctx context.Context, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return notFound(err)
	}
	return nil
}
