// Package news persists news items. The comment cache on models.News is
// never written by these repositories.
package news

import (
	"context"

	"github.com/dmitrijs2005/newsboard/internal/models"
)

type Repository interface {
	// GetAll returns every stored item in storage order.
	GetAll(ctx context.Context) ([]models.News, error)

	// GetByID returns common.ErrorNotFound when the id is unknown.
	GetByID(ctx context.Context, id string) (models.News, error)

	// Save inserts the item or replaces the stored record with the same id.
	Save(ctx context.Context, n models.News) error

	// Delete removes the item together with all of its comments. Deleting an
	// unknown id is not an error.
	Delete(ctx context.Context, id string) error
}

// CommentPurger is the part of the comment store needed for cascade deletes.
type CommentPurger interface {
	DeleteByNewsID(ctx context.Context, newsID string) error
}
