package logger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormAdapter manda os logs do gorm para o zap: erro de SQL em Error,
// query lenta em Warn e o resto em Debug.
type GormAdapter struct {
	Log           *zap.Logger
	Level         gormlogger.LogLevel
	SlowThreshold time.Duration
}

func NewGormAdapter(log *zap.Logger, level gormlogger.LogLevel) *GormAdapter {
	return &GormAdapter{
		Log:           log.WithOptions(zap.AddCallerSkip(3)),
		Level:         level,
		SlowThreshold: 200 * time.Millisecond,
	}
}

func (g *GormAdapter) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cp := *g
	cp.Level = level
	return &cp
}

func (g *GormAdapter) Info(_ context.Context, msg string, args ...interface{}) {
	if g.Level >= gormlogger.Info {
		g.Log.Sugar().Infof(msg, args...)
	}
}

func (g *GormAdapter) Warn(_ context.Context, msg string, args ...interface{}) {
	if g.Level >= gormlogger.Warn {
		g.Log.Sugar().Warnf(msg, args...)
	}
}

func (g *GormAdapter) Error(_ context.Context, msg string, args ...interface{}) {
	if g.Level >= gormlogger.Error {
		g.Log.Sugar().Errorf(msg, args...)
	}
}

func (g *GormAdapter) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.Level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	// registro não encontrado é fluxo normal (vira 404), não erro de banco
	case err != nil && g.Level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		g.Log.Error("gorm query failed",
			zap.Error(err),
			zap.String("sql", sql),
			zap.Int64("rows", rows),
			zap.Duration("elapsed", elapsed),
		)
	case g.SlowThreshold > 0 && elapsed > g.SlowThreshold && g.Level >= gormlogger.Warn:
		sql, rows := fc()
		g.Log.Warn("gorm slow query",
			zap.String("sql", sql),
			zap.Int64("rows", rows),
			zap.Duration("elapsed", elapsed),
			zap.Duration("threshold", g.SlowThreshold),
		)
	case g.Level >= gormlogger.Info:
		sql, rows := fc()
		g.Log.Debug("gorm query",
			zap.String("sql", sql),
			zap.Int64("rows", rows),
			zap.Duration("elapsed", elapsed),
		)
	}
}

var _ gormlogger.Interface = (*GormAdapter)(nil)
