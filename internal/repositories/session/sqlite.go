package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/dmitrijs2005/newsboard/internal/dbx"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// SQLiteRepository keeps the pointer in the single-row session table.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context) (string, error) {
	query, args, err := psql.Select("user_id").From("session").Where(sq.Eq{"id": 1}).ToSql()
	if err != nil {
		return "", fmt.Errorf("build select session: %w", err)
	}

	var id string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to select session: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, userID string) error {
	query, args, err := psql.Insert("session").
		Columns("id", "user_id").
		Values(1, userID).
		Suffix("ON CONFLICT(id) DO UPDATE SET user_id = excluded.user_id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert session: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	query, args, err := psql.Delete("session").ToSql()
	if err != nil {
		return fmt.Errorf("build delete session: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
