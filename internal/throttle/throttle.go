package throttle

import (
	"context"
	"strings"
	"time"
)

// LoginThrottle bloqueia tentativas de login depois de N falhas seguidas na janela.
type LoginThrottle interface {
	Locked(ctx context.Context, email string) (bool, error)
	Fail(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// Counter é o mínimo que o throttle precisa do armazenamento.
type Counter interface {
	Get(ctx context.Context, key string) (int64, error)
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
	Delete(ctx context.Context, key string) error
}

type Throttle struct {
	store       Counter
	maxAttempts int64
	window      time.Duration
}

func New(store Counter, maxAttempts int, window time.Duration) *Throttle {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &Throttle{
		store:       store,
		maxAttempts: int64(maxAttempts),
		window:      window,
	}
}

func key(email string) string {
	return "login-fail:" + strings.ToLower(strings.TrimSpace(email))
}

func (t *Throttle) Locked(ctx context.Context, email string) (bool, error) {
	n, err := t.store.Get(ctx, key(email))
	if err != nil {
		return false, err
	}
	return n >= t.maxAttempts, nil
}

func (t *Throttle) Fail(ctx context.Context, email string) error {
	_, err := t.store.Incr(ctx, key(email), t.window)
	return err
}

func (t *Throttle) Reset(ctx context.Context, email string) error {
	return t.store.Delete(ctx, key(email))
}

// Noop é usado quando não há Redis configurado.
type Noop struct{}

func (Noop) Locked(context.Context, string) (bool, error) { return false, nil }
func (Noop) Fail(context.Context, string) error           { return nil }
func (Noop) Reset(context.Context, string) error          { return nil }
