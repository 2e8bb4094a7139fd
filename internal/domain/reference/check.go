package reference

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
)

type Checker interface {
	ClientExists(ctx context.Context, id uint) (bool, error)
	BarberExists(ctx context.Context, id uint) (bool, error)
	ServiceExists(ctx context.Context, id uint) (bool, error)
}

// Check para na primeira referência ausente, na ordem cliente, barbeiro, serviço.
func Check(ctx context.Context, repo Checker, clientID, barberID, serviceID uint) error {
	checks := []struct {
		exists  func(context.Context, uint) (bool, error)
		id      uint
		code    string
		message string
	}{
		{repo.ClientExists, clientID, "client_not_found", "Cliente não encontrado"},
		{repo.BarberExists, barberID, "barber_not_found", "Barbeiro não encontrado"},
		{repo.ServiceExists, serviceID, "service_not_found", "Servico não encontrado"},
	}

	for _, c := range checks {
		ok, err := c.exists(ctx, c.id)
		if err != nil {
			return fmt.Errorf("check %s: %w", c.code, err)
		}
		if !ok {
			return httperr.NewBusiness(c.code, c.message)
		}
	}
	return nil
}
