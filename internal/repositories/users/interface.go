// Package users persists user accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/newsboard/internal/models"
)

// Repository describes lookup and upsert operations for users. Users are
// never deleted.
type Repository interface {
	// GetAll returns every stored user in storage order.
	GetAll(ctx context.Context) ([]models.User, error)

	// GetByID returns common.ErrorNotFound when no user has the id.
	GetByID(ctx context.Context, id string) (models.User, error)

	// GetByUsername matches case-sensitively and returns common.ErrorNotFound
	// on a miss.
	GetByUsername(ctx context.Context, username string) (models.User, error)

	// Save inserts the user or replaces the stored record with the same id.
	Save(ctx context.Context, u models.User) error
}
