package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/newsboard/internal/advisor"
	"github.com/dmitrijs2005/newsboard/internal/common"
	"github.com/dmitrijs2005/newsboard/internal/logging"
	"github.com/dmitrijs2005/newsboard/internal/models"
	"github.com/dmitrijs2005/newsboard/internal/repositories/news"
)

// ReviewAdvisor produces moderation suggestions. *advisor.Reviewer
// satisfies it.
type ReviewAdvisor interface {
	Review(ctx context.Context, title, content string) (advisor.Suggestion, error)
}

// AdviceResult is delivered once per RequestAdvice call.
type AdviceResult struct {
	News       models.News
	Suggestion advisor.Suggestion
	Err        error
}

// ModerationService drives the DRAFT -> PENDING -> APPROVED|REJECTED
// workflow. Only the author submits; only administrators decide.
type ModerationService interface {
	Submit(ctx context.Context, actor models.Session, newsID string) (models.News, error)
	Approve(ctx context.Context, actor models.Session, newsID, comment string) (models.News, error)
	Reject(ctx context.Context, actor models.Session, newsID, comment string) (models.News, error)
	RecordAdvisorVerdict(ctx context.Context, actor models.Session, newsID string, verdict models.Verdict, rationale string) (models.News, error)
	Pending(ctx context.Context, actor models.Session) ([]models.News, error)
	RequestAdvice(ctx context.Context, actor models.Session, newsID string) <-chan AdviceResult
}

type moderationService struct {
	news    news.Repository
	advisor ReviewAdvisor
	logger  logging.Logger
}

// NewModerationService builds the workflow. adv may be nil, in which case
// RequestAdvice always reports advisor.ErrUnavailable.
func NewModerationService(repo news.Repository, adv ReviewAdvisor, logger logging.Logger) ModerationService {
	return &moderationService{news: repo, advisor: adv, logger: logger.With("component", "moderation")}
}

func (m *moderationService) load(ctx context.Context, id string) (models.News, error) {
	n, err := m.news.GetByID(ctx, id)
	if err != nil {
		return models.News{}, err
	}
	return n, nil
}

func (m *moderationService) Submit(ctx context.Context, actor models.Session, newsID string) (models.News, error) {
	n, err := m.load(ctx, newsID)
	if err != nil {
		return models.News{}, err
	}
	if n.Author != actor.Username {
		return models.News{}, common.ErrForbidden
	}
	if n.Status != models.StatusDraft {
		return models.News{}, fmt.Errorf("%w: submit from %s", common.ErrInvalidTransition, n.Status)
	}

	n = n.Clone()
	n.Status = models.StatusPending
	n.IsDraft = false
	n.Review = &models.ReviewInfo{SubmittedAt: now()}
	if err := m.news.Save(ctx, n); err != nil {
		return models.News{}, err
	}

	m.logger.Info(ctx, "news submitted", "news_id", n.ID, "author", n.Author)
	return n, nil
}

func (m *moderationService) Approve(ctx context.Context, actor models.Session, newsID, comment string) (models.News, error) {
	return m.decide(ctx, actor, newsID, comment, models.StatusApproved)
}

func (m *moderationService) Reject(ctx context.Context, actor models.Session, newsID, comment string) (models.News, error) {
	return m.decide(ctx, actor, newsID, comment, models.StatusRejected)
}

func (m *moderationService) pendingForAdmin(ctx context.Context, actor models.Session, newsID string) (models.News, error) {
	if !actor.IsAdmin() {
		return models.News{}, common.ErrForbidden
	}
	n, err := m.load(ctx, newsID)
	if err != nil {
		return models.News{}, err
	}
	if n.Status != models.StatusPending {
		return models.News{}, fmt.Errorf("%w: item is %s", common.ErrInvalidTransition, n.Status)
	}
	return n.Clone(), nil
}

func (m *moderationService) decide(ctx context.Context, actor models.Session, newsID, comment string, to models.Status) (models.News, error) {
	n, err := m.pendingForAdmin(ctx, actor, newsID)
	if err != nil {
		return models.News{}, err
	}

	at := now()
	if n.Review == nil {
		n.Review = &models.ReviewInfo{SubmittedAt: at}
	}
	n.Review.ReviewedAt = &at
	n.Review.ReviewerID = actor.UserID
	n.Review.Comment = comment
	n.Status = to
	if err := m.news.Save(ctx, n); err != nil {
		return models.News{}, err
	}

	m.logger.Info(ctx, "news reviewed", "news_id", n.ID, "status", string(to), "reviewer", actor.UserID)
	return n, nil
}

func (m *moderationService) RecordAdvisorVerdict(ctx context.Context, actor models.Session, newsID string, verdict models.Verdict, rationale string) (models.News, error) {
	n, err := m.pendingForAdmin(ctx, actor, newsID)
	if err != nil {
		return models.News{}, err
	}

	if n.Review == nil {
		n.Review = &models.ReviewInfo{SubmittedAt: now()}
	}
	n.Review.AIVerdict = verdict
	n.Review.AIRationale = rationale
	if err := m.news.Save(ctx, n); err != nil {
		return models.News{}, err
	}
	return n, nil
}

// Pending lists items awaiting review, oldest submission first.
func (m *moderationService) Pending(ctx context.Context, actor models.Session) ([]models.News, error) {
	if !actor.IsAdmin() {
		return nil, common.ErrForbidden
	}
	all, err := m.news.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := []models.News{}
	for _, n := range all {
		if n.Status == models.StatusPending {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return submittedAt(out[i]) < submittedAt(out[j])
	})
	return out, nil
}

func submittedAt(n models.News) int64 {
	if n.Review == nil {
		return 0
	}
	return n.Review.SubmittedAt.UnixMilli()
}

// RequestAdvice validates the request synchronously, then asks the advisor
// in the background. The suggestion is recorded on the item when it arrives
// and the item is still pending. The channel receives one result and closes.
func (m *moderationService) RequestAdvice(ctx context.Context, actor models.Session, newsID string) <-chan AdviceResult {
	out := make(chan AdviceResult, 1)

	n, err := m.pendingForAdmin(ctx, actor, newsID)
	if err == nil && m.advisor == nil {
		err = advisor.ErrUnavailable
	}
	if err != nil {
		out <- AdviceResult{Err: err}
		close(out)
		return out
	}

	bg := context.WithoutCancel(ctx)
	go func() {
		defer close(out)

		s, err := m.advisor.Review(bg, n.Title, n.Content)
		if err != nil {
			if !errors.Is(err, advisor.ErrEmptyInput) && !errors.Is(err, advisor.ErrUnavailable) {
				err = fmt.Errorf("%w: %v", advisor.ErrUnavailable, err)
			}
			m.logger.Warn(bg, "advisor failed", "news_id", n.ID, "error", err)
			out <- AdviceResult{News: n, Err: err}
			return
		}

		updated, err := m.RecordAdvisorVerdict(bg, actor, n.ID, s.Verdict, s.Rationale)
		if err != nil {
			out <- AdviceResult{News: n, Suggestion: s, Err: err}
			return
		}
		m.logger.Info(bg, "advisor verdict recorded", "news_id", n.ID, "verdict", string(s.Verdict))
		out <- AdviceResult{News: updated, Suggestion: s}
	}()
	return out
}
