package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/newsboard/internal/common"
)

func (a *App) Pending(ctx context.Context) error {
	items, err := a.svc.Moderation.Pending(ctx, a.actor())
	if err != nil {
		return a.fail(err)
	}
	if len(items) == 0 {
		a.println("Nothing to review.")
		return nil
	}
	for _, n := range items {
		line := listLine(n)
		if n.Review != nil {
			line += ", submitted " + age(n.Review.SubmittedAt)
			if n.Review.AIVerdict != "" {
				line += ", advisor: " + string(n.Review.AIVerdict)
			}
		}
		a.println(line)
	}
	return nil
}

// Review walks an administrator through one pending item: optional advisor
// suggestion, then approve, reject or skip.
func (a *App) Review(ctx context.Context, id string) error {
	if !a.isAdmin() {
		return a.fail(common.ErrForbidden)
	}
	id, err := a.text(id, "News ID")
	if err != nil {
		return a.fail(err)
	}
	n, err := a.svc.News.Get(ctx, id)
	if err != nil {
		return a.fail(err)
	}
	a.printNews(n)
	a.println()

	ask, err := Confirm(a.reader, "Ask the review advisor?", a.out)
	if err != nil {
		return a.fail(err)
	}
	if ask {
		a.println("Waiting for the advisor...")
		res := <-a.svc.Moderation.RequestAdvice(ctx, a.actor(), id)
		if res.Err != nil {
			a.println("Advisor unavailable:", describe(res.Err))
		} else {
			a.println(fmt.Sprintf("Advisor suggests %s: %s", res.Suggestion.Verdict, res.Suggestion.Rationale))
		}
	}

	choice, err := GetSimpleText(a.reader, "(a)pprove, (r)eject or (s)kip", a.out)
	if err != nil {
		return a.fail(err)
	}

	decide := a.svc.Moderation.Approve
	switch strings.ToLower(choice) {
	case "a", "approve":
	case "r", "reject":
		decide = a.svc.Moderation.Reject
	default:
		a.println("Skipped")
		return nil
	}

	comment, err := GetSimpleText(a.reader, "Comment for the author (optional)", a.out)
	if err != nil {
		return a.fail(err)
	}
	r, err := decide(ctx, a.actor(), id, comment)
	if err != nil {
		return a.fail(err)
	}
	a.println("Marked as", r.Status.Label())
	return nil
}

func (a *App) Backup(ctx context.Context) error {
	if !a.isAdmin() {
		return a.fail(common.ErrForbidden)
	}
	if a.backup == nil {
		a.println("Backup is not configured.")
		return nil
	}
	keys, err := a.backup.Snapshot(ctx)
	if err != nil {
		return a.fail(err)
	}
	a.println(fmt.Sprintf("Uploaded %d files:", len(keys)))
	for _, k := range keys {
		a.println("  " + k)
	}
	return nil
}
