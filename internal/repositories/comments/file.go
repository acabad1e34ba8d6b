package comments

import (
	"context"

	"github.com/dmitrijs2005/newsboard/internal/codec"
	"github.com/dmitrijs2005/newsboard/internal/logging"
	"github.com/dmitrijs2005/newsboard/internal/models"
	"github.com/dmitrijs2005/newsboard/internal/repositories/table"
)

const FileName = "comments.txt"

type FileRepository struct {
	t *table.Table[models.Comment]
}

func NewFileRepository(dir string, logger logging.Logger) *FileRepository {
	return &FileRepository{t: table.New(dir, FileName, codec.EncodeComment, codec.DecodeComment, logger)}
}

func (r *FileRepository) GetAll(ctx context.Context) ([]models.Comment, error) {
	return r.t.Load(ctx), nil
}

func (r *FileRepository) GetByNewsID(ctx context.Context, newsID string) ([]models.Comment, error) {
	return r.filter(ctx, func(c models.Comment) bool { return c.NewsID == newsID }), nil
}

func (r *FileRepository) GetByAuthor(ctx context.Context, username string) ([]models.Comment, error) {
	return r.filter(ctx, func(c models.Comment) bool { return c.Author == username }), nil
}

// Add appends a single line without rewriting the table.
func (r *FileRepository) Add(ctx context.Context, c models.Comment) error {
	return r.t.Append(ctx, c)
}

func (r *FileRepository) DeleteByNewsID(ctx context.Context, newsID string) error {
	_, err := r.t.RemoveWhere(ctx, func(c models.Comment) bool { return c.NewsID == newsID })
	return err
}

func (r *FileRepository) filter(ctx context.Context, keep func(models.Comment) bool) []models.Comment {
	out := []models.Comment{}
	for _, c := range r.t.Load(ctx) {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
