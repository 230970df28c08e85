// Package database probes which database backend a generated project will use.
//
// The generated app tries PostgreSQL first when DATABASE_URL looks like a
// postgres URL and falls back to a local SQLite file otherwise. Open mirrors
// that choice so the CLI can report it during database setup.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/tacogips/create-bun-stack/internal/debug"
)

// Provider names accepted by Open.
const (
	ProviderPostgres = "postgres"
	ProviderSQLite   = "sqlite"
	ProviderAuto     = "auto"
)

// DefaultSQLitePath is used when Options.SQLitePath is empty.
const DefaultSQLitePath = "./db/app.db"

// pingTimeout bounds each connection attempt.
const pingTimeout = 5 * time.Second

// Backend identifies the database actually opened.
type Backend int

const (
	// BackendPostgres is a PostgreSQL server.
	BackendPostgres Backend = iota
	// BackendSQLite is a local SQLite file.
	BackendSQLite
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendPostgres:
		return "postgres"
	case BackendSQLite:
		return "sqlite"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// Options selects and locates the database.
type Options struct {
	// Provider is postgres, sqlite or auto. Empty means auto.
	Provider string
	// URL is the PostgreSQL connection URL.
	URL string
	// SQLitePath is the SQLite database file.
	SQLitePath string
}

// Handle is an open, pinged database. The caller must Close it.
type Handle struct {
	DB      *sql.DB
	Backend Backend
	// Fallback is the postgres error that caused an auto fallback to SQLite.
	Fallback error
}

// Close closes the underlying database.
func (h *Handle) Close() error {
	if h == nil || h.DB == nil {
		return nil
	}
	return h.DB.Close()
}

// Open opens the database chosen by opts and verifies the connection.
func Open(ctx context.Context, opts Options) (*Handle, error) {
	logger := debug.Component("database")

	switch opts.Provider {
	case ProviderPostgres:
		db, err := openPostgres(ctx, opts.URL)
		if err != nil {
			return nil, err
		}
		return &Handle{DB: db, Backend: BackendPostgres}, nil

	case ProviderSQLite:
		db, err := openSQLite(ctx, opts.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Handle{DB: db, Backend: BackendSQLite}, nil

	case ProviderAuto, "":
		var fallback error
		if strings.HasPrefix(opts.URL, "postgres") {
			db, err := openPostgres(ctx, opts.URL)
			if err == nil {
				return &Handle{DB: db, Backend: BackendPostgres}, nil
			}
			fallback = err
			logger.Debug().Err(err).Msg("postgres unavailable, falling back to sqlite")
		}

		db, err := openSQLite(ctx, opts.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Handle{DB: db, Backend: BackendSQLite, Fallback: fallback}, nil

	default:
		return nil, fmt.Errorf("unknown database provider %q", opts.Provider)
	}
}

func openPostgres(ctx context.Context, url string) (*sql.DB, error) {
	if url == "" {
		return nil, fmt.Errorf("postgres provider requires a database URL")
	}

	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres database: %w", err)
	}

	if err := ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	logger := debug.Component("database")
	logger.Debug().Msg("connected to postgres")
	return db, nil
}

func openSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		path = DefaultSQLitePath
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	logger := debug.Component("database")
	logger.Debug().Str("path", path).Msg("opened sqlite")
	return db, nil
}

func ping(ctx context.Context, db *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return db.PingContext(ctx)
}
