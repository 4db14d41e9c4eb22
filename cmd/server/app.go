package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/userdir/userdir-api/internal/config"
	"github.com/userdir/userdir-api/internal/platform/postgres"
	"github.com/userdir/userdir-api/internal/service/auth"
	"github.com/userdir/userdir-api/internal/store"
)

// application holds the wired dependencies of the running server. All
// components receive their collaborators here, at startup; nothing resolves
// dependencies at request time.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
}

// newApplication wires the service layer on top of the given database
// connection.
func newApplication(cfg *config.Config, log *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	return &application{
		config:           cfg,
		logger:           log,
		db:               db,
		userStore:        postgres.NewUserStore(db),
		jwtService:       jwtService,
		passwordHasher:   auth.NewBcryptHasher(),
		passwordVerifier: auth.NewBcryptVerifier(),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
