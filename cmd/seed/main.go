package main

import (
	"context"
	"log"

	"go.uber.org/zap"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barbearia-api/internal/config"
	dbpkg "github.com/BruksfildServices01/barbearia-api/internal/db"
	"github.com/BruksfildServices01/barbearia-api/internal/logger"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/password"
)

type seedBarber struct {
	nome     string
	email    string
	senha    string
	telefone string
}

var barbers = []seedBarber{
	{nome: "Carlos Silva", email: "carlos@barbearia.com", senha: "senha123", telefone: "(83) 99999-1111"},
	{nome: "João Santos", email: "joao@barbearia.com", senha: "senha123", telefone: "(83) 99999-2222"},
	{nome: "Douglas", email: "douglas@barbearia.com", senha: "admin123", telefone: "(83) 99999-3333"},
}

// Cria os barbeiros padrão. Quem já existe (mesmo email) fica como está.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := dbpkg.NewDB(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to connect database", zap.Error(err))
	}

	ctx := context.Background()

	for _, s := range barbers {
		hash, err := password.Hash(s.senha)
		if err != nil {
			zlog.Fatal("hash password", zap.String("email", s.email), zap.Error(err))
		}

		phone := s.telefone
		b := models.Barber{
			Name:     s.nome,
			Email:    s.email,
			Password: hash,
			Phone:    &phone,
		}

		res := db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "email"}},
				DoNothing: true,
			}).
			Create(&b)
		if res.Error != nil {
			zlog.Fatal("seed barber", zap.String("email", s.email), zap.Error(res.Error))
		}

		if res.RowsAffected == 0 {
			zlog.Info("✅ barbeiro já existe", zap.String("nome", s.nome))
			continue
		}
		zlog.Info("✅ barbeiro criado", zap.String("nome", s.nome), zap.Uint("id", b.ID))
	}
}
