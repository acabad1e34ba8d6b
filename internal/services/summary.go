package services

import (
	"context"

	"github.com/dmitrijs2005/newsboard/internal/advisor"
	"github.com/dmitrijs2005/newsboard/internal/common"
	"github.com/dmitrijs2005/newsboard/internal/models"
	"github.com/dmitrijs2005/newsboard/internal/repositories/news"
)

// SummaryAdvisor is satisfied by *advisor.Summarizer.
type SummaryAdvisor interface {
	Summarize(ctx context.Context, id, text string) (string, error)
}

type SummaryService interface {
	// Summarize returns a short summary of an item the viewer may read.
	Summarize(ctx context.Context, viewer *models.Session, newsID string) (string, error)
}

type summaryService struct {
	news    news.Repository
	advisor SummaryAdvisor
}

func NewSummaryService(n news.Repository, adv SummaryAdvisor) SummaryService {
	return &summaryService{news: n, advisor: adv}
}

func (s *summaryService) Summarize(ctx context.Context, viewer *models.Session, newsID string) (string, error) {
	n, err := s.news.GetByID(ctx, newsID)
	if err != nil {
		return "", err
	}
	if !n.VisibleTo(viewer) {
		return "", common.ErrorNotFound
	}
	if s.advisor == nil {
		return "", advisor.ErrUnavailable
	}
	return s.advisor.Summarize(ctx, n.ID, n.Title+"\n\n"+n.Content)
}
