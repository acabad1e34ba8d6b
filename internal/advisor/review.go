package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/newsboard/internal/models"
)

const (
	reviewInputLimit = 3000
	rationaleLimit   = 60
)

const reviewSystemPrompt = `You are a news moderation expert. Judge the article and answer with exactly one line in one of these forms:
PASS: <reason, at most 60 characters>
REJECT: <reason, at most 60 characters>
NEEDS-REVIEW: <reason, at most 60 characters>

PASS means the content is truthful, objective and lawful.
REJECT means it contains false, inciting, illegal or misleading information.
NEEDS-REVIEW means it is controversial, unsourced or ambiguous and a human should decide.`

// Suggestion is a parsed advisor reply.
type Suggestion struct {
	Verdict   models.Verdict
	Rationale string
	Raw       string
}

// Result is delivered by ReviewAsync.
type Result struct {
	Suggestion Suggestion
	Err        error
}

type Reviewer struct {
	client Completer
}

func NewReviewer(client Completer) *Reviewer {
	return &Reviewer{client: client}
}

// Review asks the advisor for a suggestion on one article.
func (r *Reviewer) Review(ctx context.Context, title, content string) (Suggestion, error) {
	t := preprocess(title, reviewInputLimit)
	c := preprocess(content, reviewInputLimit)
	if t == "" || c == "" {
		return Suggestion{}, ErrEmptyInput
	}

	reply, err := r.client.Complete(ctx, Prompt{
		System:      reviewSystemPrompt,
		User:        "Title: " + t + "\n\nContent: " + c,
		MaxTokens:   200,
		Temperature: 0.3,
	})
	if err != nil {
		return Suggestion{}, err
	}
	return ParseSuggestion(reply)
}

// ReviewAsync runs Review in a goroutine. The channel yields exactly one
// result and is then closed.
func (r *Reviewer) ReviewAsync(ctx context.Context, title, content string) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		s, err := r.Review(ctx, title, content)
		out <- Result{Suggestion: s, Err: err}
	}()
	return out
}

var verdictPrefixes = []struct {
	prefix  string
	verdict models.Verdict
}{
	{"NEEDS-REVIEW:", models.VerdictNeedsReview},
	{"REJECT:", models.VerdictReject},
	{"PASS:", models.VerdictPass},
}

// ParseSuggestion finds the first line carrying a verdict prefix. Markdown
// bullets and emphasis around the prefix are ignored.
func ParseSuggestion(reply string) (Suggestion, error) {
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimLeft(strings.TrimSpace(line), "-*•> ")
		line = strings.ReplaceAll(line, "**", "")
		for _, vp := range verdictPrefixes {
			rest, ok := cutPrefixFold(line, vp.prefix)
			if !ok {
				continue
			}
			reason := strings.TrimSpace(rest)
			if r, ok := cutPrefixFold(reason, "reason:"); ok {
				reason = strings.TrimSpace(r)
			}
			if reason == "" {
				reason = "no reason given"
			}
			return Suggestion{
				Verdict:   vp.verdict,
				Rationale: truncateRunes(reason, rationaleLimit, ""),
				Raw:       reply,
			}, nil
		}
	}
	return Suggestion{}, fmt.Errorf("%w: unrecognised reply", ErrUnavailable)
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}
