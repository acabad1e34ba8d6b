package news

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/dmitrijs2005/newsboard/internal/codec"
	"github.com/dmitrijs2005/newsboard/internal/common"
	"github.com/dmitrijs2005/newsboard/internal/dbx"
	"github.com/dmitrijs2005/newsboard/internal/models"
	"github.com/dmitrijs2005/newsboard/internal/repositories/comments"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var newsColumns = []string{
	"id", "title", "content", "author", "tags", "images", "likes",
	"liked_by", "created_at", "is_draft", "status", "review",
}

// SQLiteRepository stores news in the news table. List columns and the review
// block use the same text encoding as the flat files.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.News, error) {
	query, args, err := psql.Select(newsColumns...).From("news").OrderBy("rowid").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select news: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select news: %w", err)
	}
	defer rows.Close()

	result := []models.News{}
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (models.News, error) {
	query, args, err := psql.Select(newsColumns...).From("news").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.News{}, fmt.Errorf("build select news: %w", err)
	}

	n, err := scanNews(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.News{}, common.ErrorNotFound
	}
	return n, err
}

func (r *SQLiteRepository) Save(ctx context.Context, n models.News) error {
	query, args, err := psql.Insert("news").
		Columns(newsColumns...).
		Values(n.ID, n.Title, n.Content, n.Author,
			codec.EncodeList(n.Tags), codec.EncodeList(n.Images), n.Likes,
			codec.EncodeList(n.LikedBy), n.CreatedAt.UnixMilli(), n.IsDraft,
			string(n.Status), codec.EncodeReview(n.Review)).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			author = excluded.author,
			tags = excluded.tags,
			images = excluded.images,
			likes = excluded.likes,
			liked_by = excluded.liked_by,
			created_at = excluded.created_at,
			is_draft = excluded.is_draft,
			status = excluded.status,
			review = excluded.review`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert news: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert news: %w", err)
	}
	return nil
}

// Delete removes the item and its comments in one transaction.
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	return dbx.InTx(ctx, r.db, func(tx dbx.DBTX) error {
		query, args, err := psql.Delete("news").Where(sq.Eq{"id": id}).ToSql()
		if err != nil {
			return fmt.Errorf("build delete news: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to delete news: %w", err)
		}
		return comments.NewSQLiteRepository(tx).DeleteByNewsID(ctx, id)
	})
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNews(s scanner) (models.News, error) {
	var (
		n                     models.News
		tags, images, likedBy string
		status, review        string
		createdAt             int64
	)
	if err := s.Scan(&n.ID, &n.Title, &n.Content, &n.Author, &tags, &images,
		&n.Likes, &likedBy, &createdAt, &n.IsDraft, &status, &review); err != nil {
		return models.News{}, err
	}

	n.Tags = codec.DecodeList(tags)
	n.Images = codec.DecodeList(images)
	n.LikedBy = codec.DecodeList(likedBy)
	n.CreatedAt = time.UnixMilli(createdAt)
	n.Status = models.Status(status)
	if review != "" {
		n.Review = codec.DecodeReview(review)
	}
	return n, nil
}
