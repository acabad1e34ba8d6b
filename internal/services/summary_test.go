package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/newsboard/internal/advisor"
	"github.com/dmitrijs2005/newsboard/internal/common"
)

func TestSummary_Summarize(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.sum.text = "short version"
	n := f.published(t, f.alice, "Title", "")

	got, err := f.svc.Summary.Summarize(ctx, nil, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "short version", got)
	assert.Equal(t, "Title\n\ncontent of Title", f.sum.got)
}

func TestSummary_Visibility(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.sum.text = "s"

	d, err := f.svc.News.CreateDraft(ctx, f.alice, NewsInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	_, err = f.svc.Summary.Summarize(ctx, nil, d.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = f.svc.Summary.Summarize(ctx, &f.bob, d.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = f.svc.Summary.Summarize(ctx, &f.alice, d.ID)
	assert.NoError(t, err)
	_, err = f.svc.Summary.Summarize(ctx, &f.admin, d.ID)
	assert.NoError(t, err)

	_, err = f.svc.Summary.Summarize(ctx, &f.alice, "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSummary_AdvisorFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	n := f.published(t, f.alice, "t", "")

	f.sum.err = errors.Join(advisor.ErrUnavailable, errors.New("timeout"))
	_, err := f.svc.Summary.Summarize(ctx, nil, n.ID)
	assert.ErrorIs(t, err, advisor.ErrUnavailable)

	_, err = NewSummaryService(f.st.News, nil).Summarize(ctx, nil, n.ID)
	assert.ErrorIs(t, err, advisor.ErrUnavailable)
}
