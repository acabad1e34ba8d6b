package users

import (
	"context"

	"github.com/dmitrijs2005/newsboard/internal/codec"
	"github.com/dmitrijs2005/newsboard/internal/common"
	"github.com/dmitrijs2005/newsboard/internal/logging"
	"github.com/dmitrijs2005/newsboard/internal/models"
	"github.com/dmitrijs2005/newsboard/internal/repositories/table"
)

const FileName = "users.txt"

// FileRepository keeps users in users.txt inside the data directory.
type FileRepository struct {
	t *table.Table[models.User]
}

func NewFileRepository(dir string, logger logging.Logger) *FileRepository {
	return &FileRepository{t: table.New(dir, FileName, codec.EncodeUser, codec.DecodeUser, logger)}
}

func (r *FileRepository) GetAll(ctx context.Context) ([]models.User, error) {
	return r.t.Load(ctx), nil
}

func (r *FileRepository) GetByID(ctx context.Context, id string) (models.User, error) {
	return r.find(ctx, func(u models.User) bool { return u.ID == id })
}

func (r *FileRepository) GetByUsername(ctx context.Context, username string) (models.User, error) {
	return r.find(ctx, func(u models.User) bool { return u.Username == username })
}

func (r *FileRepository) Save(ctx context.Context, u models.User) error {
	return r.t.Upsert(ctx, u, func(u models.User) string { return u.ID })
}

func (r *FileRepository) find(ctx context.Context, match func(models.User) bool) (models.User, error) {
	for _, u := range r.t.Load(ctx) {
		if match(u) {
			return u, nil
		}
	}
	return models.User{}, common.ErrorNotFound
}
