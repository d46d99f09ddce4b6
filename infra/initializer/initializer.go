// Package initializer wires the teller's stores, providers and services
// from a loaded configuration.
package initializer

import (
	"fmt"
	"log/slog"

	"github.com/gvbank/teller/infra/facestore"
	"github.com/gvbank/teller/infra/ledger"
	"github.com/gvbank/teller/infra/mailer"
	"github.com/gvbank/teller/infra/provider/facematch"
	"github.com/gvbank/teller/infra/txlog"
	"github.com/gvbank/teller/pkg/config"
	"github.com/gvbank/teller/pkg/provider/face"
	"github.com/gvbank/teller/pkg/service"
)

// Deps holds the application's wired dependencies.
type Deps struct {
	Config   *config.App
	Logger   *slog.Logger
	Ledger   *ledger.CSVStore
	TxLog    *txlog.CSVLog
	Faces    *facestore.Dir
	Auth     *service.AuthService
	Accounts *service.AccountService
}

// New builds the dependency graph. The transaction log is created empty
// when absent; the accounts file is not: the ledger store reports
// domain.ErrStoreUnavailable on first use when provisioning is missing.
func New(cfg *config.App) (*Deps, error) {
	logger := setupLogger(cfg.Log)

	store := ledger.NewCSVStore(cfg.Ledger.AccountsPath)

	log := txlog.NewCSVLog(cfg.Ledger.TransactionsPath)
	if err := log.Touch(); err != nil {
		return nil, fmt.Errorf("prepare transaction log: %w", err)
	}

	faces, err := facestore.New(cfg.Ledger.FacesDir)
	if err != nil {
		return nil, err
	}

	verifier := face.NewStoreVerifier(faces, facematch.NewDigest())
	deliverer := mailer.New(cfg.SMTP, cfg.OTP)

	accounts := service.NewAccountService(store, log, logger)
	auth := service.NewAuthService(store, verifier, faces, deliverer, accounts, logger)

	return &Deps{
		Config:   cfg,
		Logger:   logger,
		Ledger:   store,
		TxLog:    log,
		Faces:    faces,
		Auth:     auth,
		Accounts: accounts,
	}, nil
}
