package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type Store interface {
	Save(ctx context.Context, entry *models.AuditLog) error
}

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Save(ctx context.Context, entry *models.AuditLog) error {
	return l.db.WithContext(ctx).Create(entry).Error
}

// toEntry devolve o registro mesmo quando o metadata não serializa; nesse caso
// ele vai vazio e o erro volta para quem chamou logar.
func toEntry(ev Event) (*models.AuditLog, error) {
	entry := &models.AuditLog{
		ActorID:  ev.ActorID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
	}

	if ev.Metadata == nil {
		return entry, nil
	}

	b, err := json.Marshal(ev.Metadata)
	if err != nil {
		return entry, fmt.Errorf("marshal audit metadata: %w", err)
	}
	entry.Metadata = string(b)
	return entry, nil
}

// ======================================================
// CONSULTA
// ======================================================

type Query struct {
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

func (l *Logger) List(ctx context.Context, q Query) ([]models.AuditLog, int64, error) {
	base := l.db.WithContext(ctx).Model(&models.AuditLog{})

	if q.Action != "" {
		base = base.Where("action = ?", q.Action)
	}
	if q.Entity != "" {
		base = base.Where("entity = ?", q.Entity)
	}
	if q.From != nil {
		base = base.Where("created_at >= ?", *q.From)
	}
	if q.To != nil {
		base = base.Where("created_at < ?", *q.To)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := base.
		Order("created_at DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
