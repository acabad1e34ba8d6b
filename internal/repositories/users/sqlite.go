package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/dmitrijs2005/newsboard/internal/common"
	"github.com/dmitrijs2005/newsboard/internal/dbx"
	"github.com/dmitrijs2005/newsboard/internal/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var userColumns = []string{
	"id", "username", "password", "email", "avatar",
	"total_likes", "total_comments", "registered_at", "role",
}

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.User, error) {
	query, args, err := psql.Select(userColumns...).From("users").OrderBy("rowid").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select users: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	result := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (models.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (models.User, error) {
	return r.getOne(ctx, sq.Eq{"username": username})
}

// Save upserts a user by id.
func (r *SQLiteRepository) Save(ctx context.Context, u models.User) error {
	query, args, err := psql.Insert("users").
		Columns(userColumns...).
		Values(u.ID, u.Username, u.Password, u.Email, u.Avatar,
			u.TotalLikes, u.TotalComments, u.RegisteredAt.UnixMilli(), string(u.Role)).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			username = excluded.username,
			password = excluded.password,
			email = excluded.email,
			avatar = excluded.avatar,
			total_likes = excluded.total_likes,
			total_comments = excluded.total_comments,
			registered_at = excluded.registered_at,
			role = excluded.role`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert user: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) getOne(ctx context.Context, where sq.Eq) (models.User, error) {
	query, args, err := psql.Select(userColumns...).From("users").Where(where).Limit(1).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("build select user: %w", err)
	}

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, common.ErrorNotFound
	}
	return u, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (models.User, error) {
	var (
		u    models.User
		ms   int64
		role string
	)
	if err := s.Scan(&u.ID, &u.Username, &u.Password, &u.Email, &u.Avatar,
		&u.TotalLikes, &u.TotalComments, &ms, &role); err != nil {
		return models.User{}, err
	}
	u.RegisteredAt = time.UnixMilli(ms)
	u.Role = models.Role(role)
	return u, nil
}
