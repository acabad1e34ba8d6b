// Package comments persists news comments.
package comments

import (
	"context"

	"github.com/dmitrijs2005/newsboard/internal/models"
)

// Repository stores comments in insertion order. Comments are append-only
// except for the cascade delete performed when their news item goes away.
type Repository interface {
	GetAll(ctx context.Context) ([]models.Comment, error)
	GetByNewsID(ctx context.Context, newsID string) ([]models.Comment, error)
	GetByAuthor(ctx context.Context, username string) ([]models.Comment, error)
	Add(ctx context.Context, c models.Comment) error
	DeleteByNewsID(ctx context.Context, newsID string) error
}
