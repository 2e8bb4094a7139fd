package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/auth"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/password"
	"github.com/BruksfildServices01/barbearia-api/internal/throttle"
	"github.com/BruksfildServices01/barbearia-api/internal/token"
)

var (
	errInvalidCredentials = httperr.NewUnauthorized("invalid_credentials", "Email ou senha inválidos")
	errTooManyAttempts    = httperr.NewTooManyRequests("too_many_attempts", "Muitas tentativas de login. Tente novamente mais tarde.")
)

type TokenIssuer interface {
	Generate(userID uint, role string) (string, error)
}

type BarberSession struct {
	Barber *models.Barber `json:"barbeiro"`
	Token  string         `json:"token"`
}

type ClientSession struct {
	Client *models.Client `json:"cliente"`
	Token  string         `json:"token"`
}

type UseCase struct {
	repo     domain.Repository
	tokens   TokenIssuer
	throttle throttle.LoginThrottle
	audit    audit.Sink
	log      *zap.Logger
}

func New(
	repo domain.Repository,
	tokens TokenIssuer,
	th throttle.LoginThrottle,
	sink audit.Sink,
	log *zap.Logger,
) *UseCase {
	if th == nil {
		th = throttle.Noop{}
	}
	return &UseCase{
		repo:     repo,
		tokens:   tokens,
		throttle: th,
		audit:    sink,
		log:      log,
	}
}

// ======================================================
// BARBEIRO
// ======================================================

func (uc *UseCase) Login(ctx context.Context, email, senha string) (*BarberSession, error) {
	if err := uc.checkLocked(ctx, email); err != nil {
		return nil, err
	}

	barber, err := uc.repo.FindBarberByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, uc.fail(ctx, email)
	}
	if err != nil {
		return nil, fmt.Errorf("find barber: %w", err)
	}

	ok, err := uc.verifyBarber(ctx, barber, senha)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, uc.fail(ctx, email)
	}

	uc.reset(ctx, email)

	tok, err := uc.tokens.Generate(barber.ID, token.RoleBarber)
	if err != nil {
		return nil, err
	}

	barber.Password = ""
	return &BarberSession{Barber: barber, Token: tok}, nil
}

// verifyBarber aceita a senha legada em texto puro uma única vez e já grava o hash.
func (uc *UseCase) verifyBarber(ctx context.Context, barber *models.Barber, senha string) (bool, error) {
	if password.IsHashed(barber.Password) {
		return password.Matches(barber.Password, senha), nil
	}

	if subtle.ConstantTimeCompare([]byte(barber.Password), []byte(senha)) != 1 {
		return false, nil
	}

	hash, err := password.Hash(senha)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	if err := uc.repo.UpdateBarberPassword(ctx, barber.ID, hash); err != nil {
		return false, fmt.Errorf("migrate barber password: %w", err)
	}
	barber.Password = hash

	uc.log.Info("legacy barber password migrated", zap.Uint("barber_id", barber.ID))
	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.Ptr(barber.ID),
		Action:   "barber_password_migrated",
		Entity:   "barbeiro",
		EntityID: audit.Ptr(barber.ID),
	})

	return true, nil
}

// ======================================================
// CLIENTE
// ======================================================

func (uc *UseCase) LoginClient(ctx context.Context, email, senha string) (*ClientSession, error) {
	if err := uc.checkLocked(ctx, email); err != nil {
		return nil, err
	}

	client, err := uc.repo.FindClientByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, uc.fail(ctx, email)
	}
	if err != nil {
		return nil, fmt.Errorf("find client: %w", err)
	}

	if !password.Matches(client.Password, senha) {
		return nil, uc.fail(ctx, email)
	}

	uc.reset(ctx, email)

	tok, err := uc.tokens.Generate(client.ID, token.RoleClient)
	if err != nil {
		return nil, err
	}

	client.Password = ""
	return &ClientSession{Client: client, Token: tok}, nil
}

// ======================================================
// THROTTLE
// ======================================================

// Falhas do Redis não bloqueiam login: só ficam no log.

func (uc *UseCase) checkLocked(ctx context.Context, email string) error {
	locked, err := uc.throttle.Locked(ctx, email)
	if err != nil {
		uc.log.Warn("login throttle unavailable", zap.Error(err))
		return nil
	}
	if locked {
		return errTooManyAttempts
	}
	return nil
}

func (uc *UseCase) fail(ctx context.Context, email string) error {
	if err := uc.throttle.Fail(ctx, email); err != nil {
		uc.log.Warn("login throttle unavailable", zap.Error(err))
	}
	return errInvalidCredentials
}

func (uc *UseCase) reset(ctx context.Context, email string) {
	if err := uc.throttle.Reset(ctx, email); err != nil {
		uc.log.Warn("login throttle unavailable", zap.Error(err))
	}
}
