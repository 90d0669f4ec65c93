package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nmorales/cuentas/internal/config"
	"github.com/nmorales/cuentas/internal/ledger"
	"github.com/nmorales/cuentas/internal/money"
	"github.com/nmorales/cuentas/internal/store"
)

type App struct {
	Engine *ledger.Engine
	Query  *ledger.Query
	Store  store.Repository
}

// NewApp wires config, database and the ledger together and returns
// the App plus a cleanup function closing the store.
func NewApp(cfg *config.Config, migrationsFS fs.FS) (*App, func(), error) {
	dbPath := cfg.Database.Path
	if dbPath == "" {
		appDir, err := getAppDataDir()
		if err != nil {
			return nil, nil, err
		}
		dbPath = filepath.Join(appDir, "cuentas.db")
	}

	dbStore, err := store.NewStore(dbPath, migrationsFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	limit, err := money.Parse(cfg.Ledger.TransferLimit)
	if err != nil {
		_ = dbStore.Close()
		return nil, nil, fmt.Errorf("invalid ledger.transfer_limit: %w", err)
	}

	engine := ledger.NewEngine(dbStore, ledger.Config{
		TransferLimit: limit,
		MaxRetries:    cfg.Ledger.MaxRetries,
	})

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			fmt.Printf("Error closing DB: %v\n", err)
		}
	}

	return &App{
		Engine: engine,
		Query:  ledger.NewQuery(dbStore),
		Store:  dbStore,
	}, cleanup, nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".cuentas"), nil
	}

	return filepath.Join(configDir, "cuentas"), nil
}
