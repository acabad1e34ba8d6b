package advisor

import (
	"context"
	"fmt"
)

const (
	summaryInputLimit = 5000
	summaryCacheSize  = 50
)

const summarySystemPrompt = "You summarise news articles. Give an accurate and concise summary of the text the user provides, in no more than 100 words."

// Summarizer produces article summaries and remembers the most recent ones.
type Summarizer struct {
	client Completer
	cache  *fifoCache
}

func NewSummarizer(client Completer) *Summarizer {
	return &Summarizer{client: client, cache: newFIFOCache(summaryCacheSize)}
}

// Summarize returns the cached summary for id, or asks the advisor and
// caches a successful answer.
func (s *Summarizer) Summarize(ctx context.Context, id, text string) (string, error) {
	if v, ok := s.cache.Get(id); ok {
		return v, nil
	}

	in := preprocess(text, summaryInputLimit)
	if in == "" {
		return "", ErrEmptyInput
	}

	reply, err := s.client.Complete(ctx, Prompt{
		System:      summarySystemPrompt,
		User:        in,
		MaxTokens:   800,
		Temperature: 0.5,
	})
	if err != nil {
		return "", err
	}
	if reply == "" {
		return "", fmt.Errorf("%w: empty summary", ErrUnavailable)
	}

	s.cache.Put(id, reply)
	return reply, nil
}

func (s *Summarizer) Cached(id string) (string, bool) {
	return s.cache.Get(id)
}

func (s *Summarizer) ClearCache() {
	s.cache.Clear()
}
