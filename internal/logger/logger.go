package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New monta o logger da aplicação: JSON em produção, console colorido fora dela.
func New(env, level string) (*zap.Logger, error) {
	var cfg zap.Config

	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

// GooseAdapter expõe o zap no formato que o goose espera.
type GooseAdapter struct {
	Sugar *zap.SugaredLogger
}

func (g GooseAdapter) Fatalf(format string, v ...interface{}) {
	g.Sugar.Fatalf(format, v...)
}

func (g GooseAdapter) Printf(format string, v ...interface{}) {
	g.Sugar.Infof(format, v...)
}
