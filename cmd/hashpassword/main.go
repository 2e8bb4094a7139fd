package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbearia-api/internal/config"
	dbpkg "github.com/BruksfildServices01/barbearia-api/internal/db"
	infraRepo "github.com/BruksfildServices01/barbearia-api/internal/infra/repository"
	"github.com/BruksfildServices01/barbearia-api/internal/logger"
	"github.com/BruksfildServices01/barbearia-api/internal/password"
)

// Uso: hashpassword <email> <senha_em_texto_plano>
func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "Uso: hashpassword <email> <senha_em_texto_plano>")
		os.Exit(1)
	}
	email := strings.ToLower(strings.TrimSpace(os.Args[1]))
	plain := os.Args[2]

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
	repo := infraRepo.NewAuthGormRepository(db)

	barber, err := repo.FindBarberByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		zlog.Fatal("barbeiro não encontrado", zap.String("email", email))
	}
	if err != nil {
		zlog.Fatal("find barber", zap.Error(err))
	}

	hash, err := password.Hash(plain)
	if err != nil {
		zlog.Fatal("hash password", zap.Error(err))
	}

	if err := repo.UpdateBarberPassword(ctx, barber.ID, hash); err != nil {
		zlog.Fatal("update password", zap.Error(err))
	}

	zlog.Info("✅ senha do barbeiro atualizada", zap.String("email", email))
}
