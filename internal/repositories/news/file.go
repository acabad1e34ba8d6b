package news

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/newsboard/internal/codec"
	"github.com/dmitrijs2005/newsboard/internal/common"
	"github.com/dmitrijs2005/newsboard/internal/logging"
	"github.com/dmitrijs2005/newsboard/internal/models"
	"github.com/dmitrijs2005/newsboard/internal/repositories/table"
)

const FileName = "news.txt"

type FileRepository struct {
	t        *table.Table[models.News]
	comments CommentPurger
}

func NewFileRepository(dir string, comments CommentPurger, logger logging.Logger) *FileRepository {
	return &FileRepository{
		t:        table.New(dir, FileName, codec.EncodeNews, codec.DecodeNews, logger),
		comments: comments,
	}
}

func (r *FileRepository) GetAll(ctx context.Context) ([]models.News, error) {
	return r.t.Load(ctx), nil
}

func (r *FileRepository) GetByID(ctx context.Context, id string) (models.News, error) {
	for _, n := range r.t.Load(ctx) {
		if n.ID == id {
			return n, nil
		}
	}
	return models.News{}, common.ErrorNotFound
}

func (r *FileRepository) Save(ctx context.Context, n models.News) error {
	n.Comments = nil
	return r.t.Upsert(ctx, n, func(n models.News) string { return n.ID })
}

// Delete rewrites news.txt without the item, then purges its comments.
func (r *FileRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.t.RemoveWhere(ctx, func(n models.News) bool { return n.ID == id }); err != nil {
		return err
	}
	if err := r.comments.DeleteByNewsID(ctx, id); err != nil {
		return fmt.Errorf("cascade comments of %s: %w", id, err)
	}
	return nil
}
