package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/newsboard/internal/advisor"
	"github.com/dmitrijs2005/newsboard/internal/common"
	"github.com/dmitrijs2005/newsboard/internal/logging"
	"github.com/dmitrijs2005/newsboard/internal/models"
)

func TestModeration_SubmitApprove(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	d, err := f.svc.News.CreateDraft(ctx, f.alice, NewsInput{Title: "T", Content: "C"})
	require.NoError(t, err)

	s, err := f.svc.Moderation.Submit(ctx, f.alice, d.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, s.Status)
	assert.False(t, s.IsDraft)
	require.NotNil(t, s.Review)
	assert.False(t, s.Review.SubmittedAt.IsZero())
	assert.Nil(t, s.Review.ReviewedAt)

	a, err := f.svc.Moderation.Approve(ctx, f.admin, d.ID, "well written")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, a.Status)
	assert.True(t, a.IsPubliclyVisible())
	require.NotNil(t, a.Review.ReviewedAt)
	assert.Equal(t, f.admin.UserID, a.Review.ReviewerID)
	assert.Equal(t, "well written", a.Review.Comment)
	assert.Equal(t, s.Review.SubmittedAt, a.Review.SubmittedAt)

	stored, err := f.st.News.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, a, stored)
}

func TestModeration_Reject(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	n, err := f.svc.News.Publish(ctx, f.alice, NewsInput{Title: "T", Content: "C"})
	require.NoError(t, err)

	r, err := f.svc.Moderation.Reject(ctx, f.admin, n.ID, "no sources")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, r.Status)
	assert.False(t, r.IsPubliclyVisible())
	assert.Equal(t, "no sources", r.Review.Comment)
}

func TestModeration_Failures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	d, err := f.svc.News.CreateDraft(ctx, f.alice, NewsInput{Title: "T", Content: "C"})
	require.NoError(t, err)

	_, err = f.svc.Moderation.Submit(ctx, f.bob, d.ID)
	assert.ErrorIs(t, err, common.ErrForbidden, "only the author submits")

	_, err = f.svc.Moderation.Submit(ctx, f.alice, "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = f.svc.Moderation.Approve(ctx, f.admin, d.ID, "")
	assert.ErrorIs(t, err, common.ErrInvalidTransition, "drafts cannot be approved")

	_, err = f.svc.Moderation.Submit(ctx, f.alice, d.ID)
	require.NoError(t, err)

	_, err = f.svc.Moderation.Submit(ctx, f.alice, d.ID)
	assert.ErrorIs(t, err, common.ErrInvalidTransition, "already pending")

	_, err = f.svc.Moderation.Approve(ctx, f.alice, d.ID, "self approval")
	assert.ErrorIs(t, err, common.ErrForbidden)

	_, err = f.svc.Moderation.Reject(ctx, f.bob, d.ID, "")
	assert.ErrorIs(t, err, common.ErrForbidden)

	before, err := f.st.News.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, before.Status, "failures do not mutate")

	_, err = f.svc.Moderation.Approve(ctx, f.admin, d.ID, "")
	require.NoError(t, err)
	_, err = f.svc.Moderation.Reject(ctx, f.admin, d.ID, "")
	assert.ErrorIs(t, err, common.ErrInvalidTransition, "decisions are final")
}

func TestModeration_AdminByRoleNotName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	n, err := f.svc.News.Publish(ctx, f.alice, NewsInput{Title: "T", Content: "C"})
	require.NoError(t, err)

	impostor := models.Session{UserID: "x", Username: "admin", Role: models.RoleUser}
	_, err = f.svc.Moderation.Approve(ctx, impostor, n.ID, "")
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestModeration_Pending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.News.Publish(ctx, f.alice, NewsInput{Title: "first", Content: "C"})
	require.NoError(t, err)
	_, err = f.svc.News.CreateDraft(ctx, f.alice, NewsInput{Title: "draft", Content: "C"})
	require.NoError(t, err)
	second, err := f.svc.News.Publish(ctx, f.bob, NewsInput{Title: "second", Content: "C"})
	require.NoError(t, err)

	list, err := f.svc.Moderation.Pending(ctx, f.admin)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)

	_, err = f.svc.Moderation.Pending(ctx, f.alice)
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestModeration_RecordAdvisorVerdict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	n, err := f.svc.News.Publish(ctx, f.alice, NewsInput{Title: "T", Content: "C"})
	require.NoError(t, err)

	r, err := f.svc.Moderation.RecordAdvisorVerdict(ctx, f.admin, n.ID, models.VerdictNeedsReview, "no sources")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, r.Status, "verdict does not change status")
	assert.Equal(t, models.VerdictNeedsReview, r.Review.AIVerdict)
	assert.Equal(t, "no sources", r.Review.AIRationale)

	_, err = f.svc.Moderation.RecordAdvisorVerdict(ctx, f.alice, n.ID, models.VerdictPass, "")
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestModeration_RequestAdvice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.rev.s = advisor.Suggestion{Verdict: models.VerdictReject, Rationale: "misleading"}

	n, err := f.svc.News.Publish(ctx, f.alice, NewsInput{Title: "T", Content: "C"})
	require.NoError(t, err)

	res := <-f.svc.Moderation.RequestAdvice(ctx, f.admin, n.ID)
	require.NoError(t, res.Err)
	assert.Equal(t, models.VerdictReject, res.Suggestion.Verdict)
	assert.Equal(t, models.StatusPending, res.News.Status, "advice never rejects by itself")

	stored, err := f.st.News.GetByID(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VerdictReject, stored.Review.AIVerdict)
	assert.Equal(t, "misleading", stored.Review.AIRationale)
}

func TestModeration_RequestAdvice_Failures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	n, err := f.svc.News.Publish(ctx, f.alice, NewsInput{Title: "T", Content: "C"})
	require.NoError(t, err)

	res := <-f.svc.Moderation.RequestAdvice(ctx, f.alice, n.ID)
	assert.ErrorIs(t, res.Err, common.ErrForbidden)

	res = <-f.svc.Moderation.RequestAdvice(ctx, f.admin, "missing")
	assert.ErrorIs(t, res.Err, common.ErrorNotFound)

	f.rev.err = errors.New("connection reset")
	res = <-f.svc.Moderation.RequestAdvice(ctx, f.admin, n.ID)
	assert.ErrorIs(t, res.Err, advisor.ErrUnavailable)

	stored, err := f.st.News.GetByID(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
	assert.Empty(t, stored.Review.AIVerdict)
	assert.Equal(t, 1, f.rev.calls, "validation failures never reach the advisor")
}

func TestModeration_RequestAdvice_StatusChangedMeanwhile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	n, err := f.svc.News.Publish(ctx, f.alice, NewsInput{Title: "T", Content: "C"})
	require.NoError(t, err)

	f.rev.s = advisor.Suggestion{Verdict: models.VerdictPass, Rationale: "fine"}
	f.rev.before = func() {
		_, err := f.svc.Moderation.Approve(ctx, f.admin, n.ID, "approved first")
		assert.NoError(t, err)
	}

	res := <-f.svc.Moderation.RequestAdvice(ctx, f.admin, n.ID)
	assert.ErrorIs(t, res.Err, common.ErrInvalidTransition)
	assert.Equal(t, models.VerdictPass, res.Suggestion.Verdict)
}

func TestModeration_RequestAdvice_NoAdvisor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	n, err := f.svc.News.Publish(ctx, f.alice, NewsInput{Title: "T", Content: "C"})
	require.NoError(t, err)

	mod := NewModerationService(f.st.News, nil, logging.Discard())
	ch := mod.RequestAdvice(ctx, f.admin, n.ID)
	res, ok := <-ch
	require.True(t, ok)
	assert.ErrorIs(t, res.Err, advisor.ErrUnavailable)

	_, ok = <-ch
	assert.False(t, ok, "channel closes after one result")
}
