package comments

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/dmitrijs2005/newsboard/internal/dbx"
	"github.com/dmitrijs2005/newsboard/internal/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Comment, error) {
	return r.list(ctx, nil)
}

func (r *SQLiteRepository) GetByNewsID(ctx context.Context, newsID string) ([]models.Comment, error) {
	return r.list(ctx, sq.Eq{"news_id": newsID})
}

func (r *SQLiteRepository) GetByAuthor(ctx context.Context, username string) ([]models.Comment, error) {
	return r.list(ctx, sq.Eq{"author": username})
}

func (r *SQLiteRepository) Add(ctx context.Context, c models.Comment) error {
	query, args, err := psql.Insert("comments").
		Columns("id", "news_id", "author", "content", "created_at").
		Values(c.ID, c.NewsID, c.Author, c.Content, c.CreatedAt.UnixMilli()).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert comment: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

// DeleteByNewsID removes all comments of a news item. Zero affected rows is fine.
func (r *SQLiteRepository) DeleteByNewsID(ctx context.Context, newsID string) error {
	query, args, err := psql.Delete("comments").Where(sq.Eq{"news_id": newsID}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete comments: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete comments: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) list(ctx context.Context, where sq.Sqlizer) ([]models.Comment, error) {
	b := psql.Select("id", "news_id", "author", "content", "created_at").From("comments").OrderBy("rowid")
	if where != nil {
		b = b.Where(where)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select comments: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select comments: %w", err)
	}
	defer rows.Close()

	result := []models.Comment{}
	for rows.Next() {
		var (
			c  models.Comment
			ms int64
		)
		if err := rows.Scan(&c.ID, &c.NewsID, &c.Author, &c.Content, &ms); err != nil {
			return nil, err
		}
		c.CreatedAt = time.UnixMilli(ms)
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
