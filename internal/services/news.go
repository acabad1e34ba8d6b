package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/newsboard/internal/common"
	"github.com/dmitrijs2005/newsboard/internal/logging"
	"github.com/dmitrijs2005/newsboard/internal/models"
	"github.com/dmitrijs2005/newsboard/internal/repositories/comments"
	"github.com/dmitrijs2005/newsboard/internal/repositories/news"
)

// NewsInput is the author-editable part of an item. Tags is the raw
// comma-separated text typed by the user.
type NewsInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Tags    string `json:"tags"`
}

// ReviewStats counts one author's items per moderation status.
type ReviewStats struct {
	Draft    int `json:"draft"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

type NewsService interface {
	CreateDraft(ctx context.Context, actor models.Session, in NewsInput) (models.News, error)
	Publish(ctx context.Context, actor models.Session, in NewsInput) (models.News, error)
	Update(ctx context.Context, actor models.Session, id string, in NewsInput, publish bool) (models.News, error)
	Delete(ctx context.Context, actor models.Session, id string) error
	Get(ctx context.Context, id string) (models.News, error)
	Public(ctx context.Context) ([]models.News, error)
	ByTag(ctx context.Context, tag string) ([]models.News, error)
	Tags(ctx context.Context) ([]string, error)
	Mine(ctx context.Context, actor models.Session) ([]models.News, error)
	Drafts(ctx context.Context, actor models.Session) ([]models.News, error)
	ReviewStats(ctx context.Context, username string) (ReviewStats, error)
}

type newsService struct {
	news       news.Repository
	comments   comments.Repository
	moderation ModerationService
	logger     logging.Logger
}

func NewNewsService(n news.Repository, c comments.Repository, m ModerationService, logger logging.Logger) NewsService {
	return &newsService{news: n, comments: c, moderation: m, logger: logger.With("component", "news")}
}

// ParseTags splits comma-separated text, trimming entries and dropping
// empty ones.
func ParseTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func (in NewsInput) validate() (title, content string, err error) {
	title, content = strings.TrimSpace(in.Title), strings.TrimSpace(in.Content)
	if title == "" {
		return "", "", common.Required("title")
	}
	if content == "" {
		return "", "", common.Required("content")
	}
	switch {
	case utf8.RuneCountInString(title) > common.MaxTitleLength:
		return "", "", common.TooLong("title", common.MaxTitleLength)
	case utf8.RuneCountInString(content) > common.MaxContentLength:
		return "", "", common.TooLong("content", common.MaxContentLength)
	case utf8.RuneCountInString(in.Tags) > common.MaxTagsLength:
		return "", "", common.TooLong("tags", common.MaxTagsLength)
	}
	return title, content, nil
}

func (s *newsService) CreateDraft(ctx context.Context, actor models.Session, in NewsInput) (models.News, error) {
	title, content, err := in.validate()
	if err != nil {
		return models.News{}, err
	}

	n := models.News{
		ID:        newID(),
		Title:     title,
		Content:   content,
		Author:    actor.Username,
		Tags:      ParseTags(in.Tags),
		CreatedAt: now(),
		IsDraft:   true,
		Status:    models.StatusDraft,
	}
	if err := s.news.Save(ctx, n); err != nil {
		return models.News{}, fmt.Errorf("save draft: %w", err)
	}
	s.logger.Info(ctx, "draft saved", "news_id", n.ID, "author", n.Author)
	return n, nil
}

// Publish saves the item as a draft and immediately submits it for review.
func (s *newsService) Publish(ctx context.Context, actor models.Session, in NewsInput) (models.News, error) {
	n, err := s.CreateDraft(ctx, actor, in)
	if err != nil {
		return models.News{}, err
	}
	return s.moderation.Submit(ctx, actor, n.ID)
}

// Update replaces the author-editable fields. Any edit sends the item back
// to DRAFT and drops its review history; with publish it is resubmitted.
func (s *newsService) Update(ctx context.Context, actor models.Session, id string, in NewsInput, publish bool) (models.News, error) {
	title, content, err := in.validate()
	if err != nil {
		return models.News{}, err
	}

	n, err := s.news.GetByID(ctx, id)
	if err != nil {
		return models.News{}, err
	}
	if n.Author != actor.Username {
		return models.News{}, common.ErrForbidden
	}

	n = n.Clone()
	n.Title = title
	n.Content = content
	n.Tags = ParseTags(in.Tags)
	n.IsDraft = true
	n.Status = models.StatusDraft
	n.Review = nil
	if err := s.news.Save(ctx, n); err != nil {
		return models.News{}, fmt.Errorf("save news: %w", err)
	}

	if publish {
		return s.moderation.Submit(ctx, actor, n.ID)
	}
	return n, nil
}

func (s *newsService) Delete(ctx context.Context, actor models.Session, id string) error {
	n, err := s.news.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n.Author != actor.Username && !actor.IsAdmin() {
		return common.ErrForbidden
	}
	if err := s.news.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	s.logger.Info(ctx, "news deleted", "news_id", id, "by", actor.Username)
	return nil
}

// Get returns the item with its comment cache filled.
func (s *newsService) Get(ctx context.Context, id string) (models.News, error) {
	n, err := s.news.GetByID(ctx, id)
	if err != nil {
		return models.News{}, err
	}
	cs, err := s.comments.GetByNewsID(ctx, id)
	if err != nil {
		s.logger.Error(ctx, "load comments", "news_id", id, "error", err)
		cs = nil
	}
	n.Comments = cs
	return n, nil
}

func (s *newsService) filter(ctx context.Context, keep func(models.News) bool) ([]models.News, error) {
	all, err := s.news.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.News{}
	for _, n := range all {
		if keep(n) {
			out = append(out, n)
		}
	}
	newestFirst(out)
	return out, nil
}

func newestFirst(items []models.News) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}

func (s *newsService) Public(ctx context.Context) ([]models.News, error) {
	return s.filter(ctx, models.News.IsPubliclyVisible)
}

func (s *newsService) ByTag(ctx context.Context, tag string) ([]models.News, error) {
	tag = strings.TrimSpace(tag)
	return s.filter(ctx, func(n models.News) bool {
		return n.IsPubliclyVisible() && n.HasTag(tag)
	})
}

// Tags is the sorted, case-sensitive set of tags on publicly visible items.
func (s *newsService) Tags(ctx context.Context) ([]string, error) {
	public, err := s.Public(ctx)
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	tags := []string{}
	for _, n := range public {
		for _, t := range n.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	sort.Strings(tags)
	return tags, nil
}

func (s *newsService) Mine(ctx context.Context, actor models.Session) ([]models.News, error) {
	return s.filter(ctx, func(n models.News) bool {
		return n.Author == actor.Username && !n.IsDraft
	})
}

func (s *newsService) Drafts(ctx context.Context, actor models.Session) ([]models.News, error) {
	return s.filter(ctx, func(n models.News) bool {
		return n.Author == actor.Username && n.IsDraft
	})
}

func (s *newsService) ReviewStats(ctx context.Context, username string) (ReviewStats, error) {
	all, err := s.news.GetAll(ctx)
	if err != nil {
		return ReviewStats{}, err
	}
	var st ReviewStats
	for _, n := range all {
		if n.Author != username {
			continue
		}
		switch n.Status {
		case models.StatusDraft:
			st.Draft++
		case models.StatusPending:
			st.Pending++
		case models.StatusApproved:
			st.Approved++
		case models.StatusRejected:
			st.Rejected++
		}
	}
	return st, nil
}
