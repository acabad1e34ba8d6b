package codec

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/newsboard/internal/models"
)

func sampleNews() models.News {
	reviewed := time.UnixMilli(1700000500000)
	return models.News{
		ID:        "n-1",
		Title:     "Pipes | and\nnewlines",
		Content:   `Body with \n literal and a, comma`,
		Author:    "alice",
		Tags:      []string{"tech", "a,b"},
		Images:    []string{"img/1.png"},
		Likes:     3,
		LikedBy:   []string{"u1", "u1", "u2"},
		CreatedAt: time.UnixMilli(1700000000000),
		IsDraft:   false,
		Status:    models.StatusApproved,
		Review: &models.ReviewInfo{
			SubmittedAt: time.UnixMilli(1700000100000),
			ReviewedAt:  &reviewed,
			ReviewerID:  "admin",
			Comment:     "looks fine, ship it | now",
			AIVerdict:   models.VerdictPass,
			AIRationale: "objective\nreporting",
		},
	}
}

func TestNews_RoundTrip(t *testing.T) {
	n := sampleNews()
	line := EncodeNews(n)
	assert.NotContains(t, line, "\n")

	got, ok := DecodeNews(line)
	require.True(t, ok)
	assert.Equal(t, n, got)
}

func TestNews_RoundTrip_NoReview(t *testing.T) {
	n := models.News{
		ID:        "n-2",
		Title:     "t",
		Content:   "c",
		Author:    "bob",
		CreatedAt: time.UnixMilli(5),
		IsDraft:   true,
		Status:    models.StatusDraft,
	}
	got, ok := DecodeNews(EncodeNews(n))
	require.True(t, ok)
	assert.Equal(t, n, got)
}

func TestNews_CommentsNotPersisted(t *testing.T) {
	n := sampleNews()
	n.Comments = []models.Comment{{ID: "c1"}}
	got, ok := DecodeNews(EncodeNews(n))
	require.True(t, ok)
	assert.Nil(t, got.Comments)
}

func TestDecodeNews_Legacy(t *testing.T) {
	// ten fields, written before moderation existed
	got, ok := DecodeNews("n-3|Old|Text|carol|x,y||2|u1,u2|1600000000000|false")
	require.True(t, ok)
	assert.Equal(t, models.StatusApproved, got.Status)
	assert.Nil(t, got.Review)
	assert.Equal(t, []string{"x", "y"}, got.Tags)
	assert.Nil(t, got.Images)
	assert.True(t, got.IsPubliclyVisible())
}

func TestDecodeNews_BadStatusDefaultsToApproved(t *testing.T) {
	got, ok := DecodeNews("n-4|T|C|a|||0||1|false|WHATEVER|")
	require.True(t, ok)
	assert.Equal(t, models.StatusApproved, got.Status)
}

func TestDecodeNews_DraftFlagForcesDraftStatus(t *testing.T) {
	got, ok := DecodeNews("n-5|T|C|a|||0||1|true")
	require.True(t, ok)
	assert.Equal(t, models.StatusDraft, got.Status)
	assert.False(t, got.IsPubliclyVisible())
}

func TestDecodeNews_LenientNumbers(t *testing.T) {
	now = func() time.Time { return time.UnixMilli(42) }
	t.Cleanup(func() { now = time.Now })

	got, ok := DecodeNews("n-6|T|C|a|||many||never|false|PENDING|")
	require.True(t, ok)
	assert.Equal(t, 0, got.Likes)
	assert.Equal(t, time.UnixMilli(42), got.CreatedAt)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestDecodeNews_ShortReviewBlockIgnored(t *testing.T) {
	got, ok := DecodeNews("n-7|T|C|a|||0||1|false|PENDING|" + Escape("1,2"))
	require.True(t, ok)
	assert.Nil(t, got.Review)
}

func TestDecodeNews_TooFewFields(t *testing.T) {
	_, ok := DecodeNews("a|b|c")
	assert.False(t, ok)
	_, ok = DecodeNews("")
	assert.False(t, ok)
}

func TestDecodeLines_DropsMalformed(t *testing.T) {
	good := EncodeNews(sampleNews())
	lines := []string{good, "garbage", strings.Repeat("|", 3), good}

	got := DecodeLines(lines, DecodeNews)
	assert.Len(t, got, 2)
}

func TestEncodeLines(t *testing.T) {
	lines := EncodeLines([]models.News{sampleNews()}, EncodeNews)
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "n-1|"))
}
