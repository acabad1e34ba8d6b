package codec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/newsboard/internal/models"
)

func TestComment_RoundTrip(t *testing.T) {
	c := models.Comment{
		ID:        "c-1",
		NewsID:    "n-1",
		Author:    "bob",
		Content:   "multi\nline | with pipe",
		CreatedAt: time.UnixMilli(1700000000123),
	}
	got, ok := DecodeComment(EncodeComment(c))
	require.True(t, ok)
	assert.Equal(t, c, got)
}

func TestDecodeComment_TooFewFields(t *testing.T) {
	_, ok := DecodeComment("c|n|a|text")
	assert.False(t, ok)
}
