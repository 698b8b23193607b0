package history

import (
	"fmt"
	"strings"
)

// StoreConfig selects the history backend.
type StoreConfig struct {
	Type             string // "sqlite", "postgres" or "json"
	ConnectionString string // file path for sqlite/json, DSN for postgres
}

// NewStore creates a Store instance based on the provided configuration.
func NewStore(config StoreConfig) (Store, error) {
	switch strings.ToLower(config.Type) {
	case "postgres", "postgresql":
		if config.ConnectionString == "" {
			return nil, fmt.Errorf("postgres connection string is required")
		}
		return NewPostgresStore(config.ConnectionString)
	case "json", "file":
		if config.ConnectionString == "" {
			config.ConnectionString = ".benchrun/history.json"
		}
		return NewFileStore(config.ConnectionString)
	case "sqlite", "sqlite3", "":
		if config.ConnectionString == "" {
			config.ConnectionString = ".benchrun.db"
		}
		return NewSQLiteStore(config.ConnectionString)
	default:
		return nil, fmt.Errorf("unsupported store type: %s", config.Type)
	}
}
