package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/newsboard/internal/auth"
	"github.com/dmitrijs2005/newsboard/internal/common"
	"github.com/dmitrijs2005/newsboard/internal/models"
	"github.com/dmitrijs2005/newsboard/internal/services"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	User      models.Session `json:"user"`
}

type newsRequest struct {
	services.NewsInput
	Draft   bool `json:"draft"`
	Publish bool `json:"publish"`
}

type reviewRequest struct {
	Comment string `json:"comment"`
}

type commentRequest struct {
	Content string `json:"content"`
}

type adviceResponse struct {
	News       *models.News   `json:"news,omitempty"`
	Verdict    models.Verdict `json:"verdict,omitempty"`
	Rationale  string         `json:"rationale,omitempty"`
	InProgress bool           `json:"in_progress,omitempty"`
}

func actor(r *http.Request) models.Session {
	s, _ := sessionFrom(r.Context())
	return s
}

func (s *Server) issue(w http.ResponseWriter, r *http.Request, code int, sess models.Session) {
	token, err := auth.GenerateToken(sess.UserID, s.secret, s.validity)
	if err != nil {
		s.logger.Error(r.Context(), "issue token", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, code, tokenResponse{Token: token, ExpiresAt: time.Now().Add(s.validity), User: sess})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, err)
		return
	}
	sess, err := s.svc.Auth.SignUp(r.Context(), in.Username, in.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	s.issue(w, r, http.StatusCreated, sess)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, err)
		return
	}
	sess, err := s.svc.Auth.Authenticate(r.Context(), in.Username, in.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	s.issue(w, r, http.StatusOK, sess)
}

func (s *Server) handleListNews(w http.ResponseWriter, r *http.Request) {
	var (
		list []models.News
		err  error
	)
	if tag := r.URL.Query().Get("tag"); tag != "" {
		list, err = s.svc.News.ByTag(r.Context(), tag)
	} else {
		list, err = s.svc.News.Public(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetNews(w http.ResponseWriter, r *http.Request) {
	n, err := s.svc.News.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	if !n.VisibleTo(viewerFrom(r.Context())) {
		writeError(w, common.ErrorNotFound)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (s *Server) handleTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.svc.News.Tags(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tags)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	text, err := s.svc.Summary.Summarize(r.Context(), viewerFrom(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"summary": text})
}

func (s *Server) handleCreateNews(w http.ResponseWriter, r *http.Request) {
	var in newsRequest
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, err)
		return
	}

	create := s.svc.News.Publish
	if in.Draft {
		create = s.svc.News.CreateDraft
	}
	n, err := create(r.Context(), actor(r), in.NewsInput)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

func (s *Server) handleUpdateNews(w http.ResponseWriter, r *http.Request) {
	var in newsRequest
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, err)
		return
	}
	n, err := s.svc.News.Update(r.Context(), actor(r), mux.Vars(r)["id"], in.NewsInput, in.Publish)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (s *Server) handleDeleteNews(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.News.Delete(r.Context(), actor(r), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	n, err := s.svc.Moderation.Submit(r.Context(), actor(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (s *Server) handleLike(w http.ResponseWriter, r *http.Request) {
	n, err := s.svc.Engagement.Like(r.Context(), actor(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (s *Server) handleComment(w http.ResponseWriter, r *http.Request) {
	var in commentRequest
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, err)
		return
	}
	c, err := s.svc.Engagement.Comment(r.Context(), actor(r), mux.Vars(r)["id"], in.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleMine(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.News.Mine(r.Context(), actor(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleDrafts(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.News.Drafts(r.Context(), actor(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.svc.News.ReviewStats(r.Context(), actor(r).Username)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handlePending(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.Moderation.Pending(r.Context(), actor(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleApprove(w http.ResponseWriter, r *http.Request) {
	s.decide(w, r, s.svc.Moderation.Approve)
}

func (s *Server) handleReject(w http.ResponseWriter, r *http.Request) {
	s.decide(w, r, s.svc.Moderation.Reject)
}

type decision func(ctx context.Context, actor models.Session, newsID, comment string) (models.News, error)

func (s *Server) decide(w http.ResponseWriter, r *http.Request, fn decision) {
	var in reviewRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &in); err != nil {
			writeError(w, err)
			return
		}
	}
	n, err := fn(r.Context(), actor(r), mux.Vars(r)["id"], in.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

// handleAdvice waits a bounded time for the advisor. When it takes longer
// the request answers 202 and the verdict is still recorded once it arrives.
func (s *Server) handleAdvice(w http.ResponseWriter, r *http.Request) {
	ch := s.svc.Moderation.RequestAdvice(r.Context(), actor(r), mux.Vars(r)["id"])

	timer := time.NewTimer(s.adviceWait)
	defer timer.Stop()

	select {
	case res := <-ch:
		if res.Err != nil {
			writeError(w, res.Err)
			return
		}
		writeJSON(w, http.StatusOK, adviceResponse{
			News:      &res.News,
			Verdict:   res.Suggestion.Verdict,
			Rationale: res.Suggestion.Rationale,
		})
	case <-timer.C:
		writeJSON(w, http.StatusAccepted, adviceResponse{InProgress: true})
	case <-r.Context().Done():
		s.logger.Info(r.Context(), "advice request abandoned", "news_id", mux.Vars(r)["id"])
	}
}
