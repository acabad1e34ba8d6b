package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/newsboard/internal/filex"
	"github.com/dmitrijs2005/newsboard/internal/logging"
)

const FileName = "current_user.txt"

// FileRepository keeps the pointer in current_user.txt.
type FileRepository struct {
	path   string
	logger logging.Logger
}

func NewFileRepository(dir string, logger logging.Logger) *FileRepository {
	return &FileRepository{path: filepath.Join(dir, FileName), logger: logger.With("table", FileName)}
}

func (r *FileRepository) Get(ctx context.Context) (string, error) {
	b, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		r.logger.Error(ctx, "read session", "error", err)
		return "", nil
	}
	return strings.TrimSpace(string(b)), nil
}

func (r *FileRepository) Set(ctx context.Context, userID string) error {
	if err := filex.WriteLines(r.path, []string{userID}); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (r *FileRepository) Clear(ctx context.Context) error {
	if err := os.Remove(r.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
