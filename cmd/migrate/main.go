package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbearia-api/internal/config"
	dbpkg "github.com/BruksfildServices01/barbearia-api/internal/db"
	"github.com/BruksfildServices01/barbearia-api/internal/logger"
)

// Uso: migrate [up|down|status|redo|version|...] [args]
func main() {
	flag.Parse()

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
		zlog.Fatal("goose: failed to connect to DB", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		zlog.Fatal("goose: failed to get sql.DB", zap.Error(err))
	}
	defer sqlDB.Close()

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}

	command := arguments[0]
	args := arguments[1:]

	if err := dbpkg.Migrate(context.Background(), sqlDB, zlog, command, args...); err != nil {
		zlog.Fatal("migration failed", zap.String("command", command), zap.Error(err))
	}

	fmt.Printf("goose %s success\n", command)
}
