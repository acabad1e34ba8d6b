// Package store wires the repositories of the configured storage backend.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/newsboard/internal/config"
	"github.com/dmitrijs2005/newsboard/internal/filex"
	"github.com/dmitrijs2005/newsboard/internal/logging"
	"github.com/dmitrijs2005/newsboard/internal/migrations"
	"github.com/dmitrijs2005/newsboard/internal/repositories/comments"
	"github.com/dmitrijs2005/newsboard/internal/repositories/news"
	"github.com/dmitrijs2005/newsboard/internal/repositories/session"
	"github.com/dmitrijs2005/newsboard/internal/repositories/users"

	_ "modernc.org/sqlite"
)

// Store bundles the four repositories of one backend.
type Store struct {
	Users    users.Repository
	News     news.Repository
	Comments comments.Repository
	Session  session.Repository

	files []string
	close func() error
}

// Files lists the on-disk files holding the data, for snapshots.
func (s *Store) Files() []string {
	return append([]string(nil), s.files...)
}

func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open builds the backend selected by cfg.Storage.
func Open(ctx context.Context, cfg *config.Config, logger logging.Logger) (*Store, error) {
	switch cfg.Storage {
	case config.StorageFile:
		return OpenFiles(cfg.DataDir, logger)
	case config.StorageSQLite:
		return OpenSQLite(ctx, cfg.SQLiteDSN, logger)
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}

// OpenFiles uses the flat-file tables inside dir, creating it if needed.
func OpenFiles(dir string, logger logging.Logger) (*Store, error) {
	dir, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}
	logger = logger.With("storage", config.StorageFile)

	c := comments.NewFileRepository(dir, logger)
	logger.Info(context.Background(), "file storage ready", "dir", dir)

	return &Store{
		Users:    users.NewFileRepository(dir, logger),
		News:     news.NewFileRepository(dir, c, logger),
		Comments: c,
		Session:  session.NewFileRepository(dir, logger),
		files: []string{
			filepath.Join(dir, users.FileName),
			filepath.Join(dir, news.FileName),
			filepath.Join(dir, comments.FileName),
		},
	}, nil
}

// OpenSQLite opens dsn with the modernc driver and applies the migrations.
func OpenSQLite(ctx context.Context, dsn string, logger logging.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if isMemory(dsn) {
		db.SetMaxOpenConns(1)
	}

	if err := migrations.Up(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.With("storage", config.StorageSQLite).Info(ctx, "sqlite storage ready", "dsn", dsn)

	s := &Store{
		Users:    users.NewSQLiteRepository(db),
		News:     news.NewSQLiteRepository(db),
		Comments: comments.NewSQLiteRepository(db),
		Session:  session.NewSQLiteRepository(db),
		close:    db.Close,
	}
	if path := dbFilePath(dsn); path != "" {
		s.files = []string{path}
	}
	return s, nil
}

func isMemory(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// dbFilePath extracts the database file from a DSN such as
// "file:news.db?_pragma=..." or "/var/lib/news.db".
func dbFilePath(dsn string) string {
	if isMemory(dsn) {
		return ""
	}
	path := strings.TrimPrefix(dsn, "file:")
	path, _, _ = strings.Cut(path, "?")
	return path
}
