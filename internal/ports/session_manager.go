package ports

import (
	"context"

	"workflows/internal/domain"
)

// SessionConfigStore manages the per-project session config files
type SessionConfigStore interface {
	Delete(name string) error
	Exists(name string) (bool, error)
	Path(name string) string
	Write(cfg domain.SessionConfig) (string, error)
}

// SessionLauncher starts a named session and hands the terminal over to it
type SessionLauncher interface {
	Start(ctx context.Context, name string) error
}

// SessionManager is the composite interface
type SessionManager interface {
	SessionConfigStore
	SessionLauncher
}
