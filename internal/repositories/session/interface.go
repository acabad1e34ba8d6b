// Package session persists the id of the signed-in CLI user.
package session

import "context"

type Repository interface {
	// Get returns the stored user id, or "" when nobody is signed in.
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, userID string) error
	Clear(ctx context.Context) error
}
