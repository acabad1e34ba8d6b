package services

import (
	"github.com/dmitrijs2005/newsboard/internal/logging"
	"github.com/dmitrijs2005/newsboard/internal/store"
)

// Services bundles the application services over one store.
type Services struct {
	Auth       AuthService
	News       NewsService
	Moderation ModerationService
	Engagement EngagementService
	Summary    SummaryService
}

// New wires every service. reviewer and summarizer may be nil when no
// advisor is configured.
func New(st *store.Store, reviewer ReviewAdvisor, summarizer SummaryAdvisor, logger logging.Logger) *Services {
	mod := NewModerationService(st.News, reviewer, logger)
	return &Services{
		Auth:       NewAuthService(st.Users, st.Session, logger),
		News:       NewNewsService(st.News, st.Comments, mod, logger),
		Moderation: mod,
		Engagement: NewEngagementService(st.News, st.Comments, st.Users, logger),
		Summary:    NewSummaryService(st.News, summarizer),
	}
}
