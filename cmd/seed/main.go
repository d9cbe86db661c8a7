package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"hr-portal/internal/config"
	"hr-portal/internal/database/migration"
	dbpostgres "hr-portal/internal/database/postgres"
	"hr-portal/internal/database/seeder"
	"hr-portal/internal/domain/user"
	"hr-portal/internal/logger"
	"hr-portal/internal/pkg/jwt"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

func main() {
	skipData := flag.Bool("skip-data", false, "only apply migrations")
	tokenFor := flag.String("token", "", "print a signed token for this subject and exit")
	role := flag.String("role", user.RoleAdmin, "role claim for -token")
	ttl := flag.Duration("ttl", 24*time.Hour, "lifetime of the -token")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	if sub := strings.TrimSpace(*tokenFor); sub != "" {
		tok, err := jwt.NewHMACService(cfg.Auth.JWTSecret, cfg.Auth.Issuer).IssueToken(jwt.Claims{
			Name:             sub,
			Role:             *role,
			RegisteredClaims: jwtlib.RegisteredClaims{Subject: sub},
		}, *ttl)
		if err != nil {
			lg.Fatal("issue token failed", zap.Error(err))
		}
		fmt.Println(tok)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		lg.Fatal("connect database failed", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if err := (migration.Runner{Dir: cfg.App.MigrationsDir, Logger: lg}).Run(ctx, db.SQLDB()); err != nil {
		lg.Fatal("migration failed", zap.Error(err))
	}
	lg.Info("migrations applied")

	if *skipData {
		return
	}

	if err := (seeder.Runner{Seeders: seeder.Defaults(), Logger: lg}).Run(ctx, db); err != nil {
		lg.Fatal("seed failed", zap.Error(err))
	}
}
