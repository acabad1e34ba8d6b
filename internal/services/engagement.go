package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/newsboard/internal/common"
	"github.com/dmitrijs2005/newsboard/internal/logging"
	"github.com/dmitrijs2005/newsboard/internal/models"
	"github.com/dmitrijs2005/newsboard/internal/repositories/comments"
	"github.com/dmitrijs2005/newsboard/internal/repositories/news"
	"github.com/dmitrijs2005/newsboard/internal/repositories/users"
)

// EngagementService handles likes and comments on published items.
type EngagementService interface {
	Like(ctx context.Context, actor models.Session, newsID string) (models.News, error)
	Comment(ctx context.Context, actor models.Session, newsID, content string) (models.Comment, error)
	CommentsByUser(ctx context.Context, username string) ([]models.Comment, error)
}

type engagementService struct {
	news     news.Repository
	comments comments.Repository
	users    users.Repository
	logger   logging.Logger
}

func NewEngagementService(n news.Repository, c comments.Repository, u users.Repository, logger logging.Logger) EngagementService {
	return &engagementService{news: n, comments: c, users: u, logger: logger.With("component", "engagement")}
}

func (e *engagementService) publicItem(ctx context.Context, id string) (models.News, error) {
	n, err := e.news.GetByID(ctx, id)
	if err != nil {
		return models.News{}, err
	}
	if !n.IsPubliclyVisible() {
		return models.News{}, common.ErrForbidden
	}
	return n, nil
}

// Like adds one like from actor, up to models.MaxLikesPerUser per item, and
// credits the author.
func (e *engagementService) Like(ctx context.Context, actor models.Session, newsID string) (models.News, error) {
	n, err := e.publicItem(ctx, newsID)
	if err != nil {
		return models.News{}, err
	}

	liked, ok := n.WithLike(actor.UserID)
	if !ok {
		return models.News{}, common.ErrLikeLimit
	}
	if err := e.news.Save(ctx, liked); err != nil {
		return models.News{}, fmt.Errorf("save like: %w", err)
	}

	e.bump(ctx, func(repo users.Repository) (models.User, error) {
		return repo.GetByUsername(ctx, n.Author)
	}, func(u *models.User) { u.TotalLikes++ })

	return liked, nil
}

func (e *engagementService) Comment(ctx context.Context, actor models.Session, newsID, content string) (models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.Comment{}, common.Required("content")
	}
	if utf8.RuneCountInString(content) > common.MaxCommentLength {
		return models.Comment{}, common.TooLong("content", common.MaxCommentLength)
	}
	if _, err := e.publicItem(ctx, newsID); err != nil {
		return models.Comment{}, err
	}

	c := models.Comment{
		ID:        newID(),
		NewsID:    newsID,
		Author:    actor.Username,
		Content:   content,
		CreatedAt: now(),
	}
	if err := e.comments.Add(ctx, c); err != nil {
		return models.Comment{}, fmt.Errorf("add comment: %w", err)
	}

	e.bump(ctx, func(repo users.Repository) (models.User, error) {
		return repo.GetByID(ctx, actor.UserID)
	}, func(u *models.User) { u.TotalComments++ })

	return c, nil
}

func (e *engagementService) CommentsByUser(ctx context.Context, username string) ([]models.Comment, error) {
	return e.comments.GetByAuthor(ctx, username)
}

// bump updates a user counter. The like or comment is already stored, so a
// failure here is logged rather than returned.
func (e *engagementService) bump(ctx context.Context, find func(users.Repository) (models.User, error), apply func(*models.User)) {
	u, err := find(e.users)
	if errors.Is(err, common.ErrorNotFound) {
		e.logger.Warn(ctx, "counter owner not found")
		return
	}
	if err != nil {
		e.logger.Error(ctx, "load user for counter", "error", err)
		return
	}
	apply(&u)
	if err := e.users.Save(ctx, u); err != nil {
		e.logger.Error(ctx, "save user counter", "user_id", u.ID, "error", err)
	}
}
