// Package backend selects and constructs the storage backend from
// configuration.
package backend

import (
	"fmt"

	"github.com/rasikaapte/myfinance/internal/config"
	"github.com/rasikaapte/myfinance/internal/log"
	"github.com/rasikaapte/myfinance/internal/storage"
	"github.com/rasikaapte/myfinance/internal/storage/file"
	"github.com/rasikaapte/myfinance/internal/storage/memory"
	"github.com/rasikaapte/myfinance/internal/storage/sqlite"
)

// CleanupFunc releases backend resources; nil when nothing needs
// closing.
type CleanupFunc func() error

// Open builds the storage backend named by the configuration.
func Open(cfg *config.Config, logger *log.Logger) (storage.Store, CleanupFunc, error) {
	logger = logger.WithComponent(log.ComponentBackend)

	switch cfg.DataBackend {
	case "memory":
		logger.Info("using memory backend")
		return memory.New(), nil, nil

	case "file":
		store, err := file.New(cfg.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize file backend: %w", err)
		}
		logger.Info("using file backend", log.FieldPath, cfg.DataDir)
		return store, nil, nil

	case "sqlite":
		store, err := sqlite.New(cfg.SQLiteDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		logger.Info("using sqlite backend", log.FieldPath, cfg.SQLiteDBPath)
		return store, store.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported backend type: %s", cfg.DataBackend)
	}
}
