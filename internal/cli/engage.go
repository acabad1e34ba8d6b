package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/newsboard/internal/models"
)

func (a *App) Like(ctx context.Context, id string) error {
	id, err := a.text(id, "News ID")
	if err != nil {
		return a.fail(err)
	}
	n, err := a.svc.Engagement.Like(ctx, a.actor(), id)
	if err != nil {
		return a.fail(err)
	}
	left := models.MaxLikesPerUser - n.LikesBy(a.actor().UserID)
	a.println(fmt.Sprintf("Liked! %d likes in total, %d left for you.", n.Likes, left))
	return nil
}

func (a *App) Comment(ctx context.Context, id string) error {
	id, err := a.text(id, "News ID")
	if err != nil {
		return a.fail(err)
	}
	content, err := GetMultiline(a.reader, "Your comment", a.out)
	if err != nil {
		return a.fail(err)
	}
	if _, err := a.svc.Engagement.Comment(ctx, a.actor(), id, content); err != nil {
		return a.fail(err)
	}
	a.println("Comment added")
	return nil
}

func (a *App) Summary(ctx context.Context, id string) error {
	id, err := a.text(id, "News ID")
	if err != nil {
		return a.fail(err)
	}
	a.println("Summarizing...")
	text, err := a.svc.Summary.Summarize(ctx, a.session, id)
	if err != nil {
		return a.fail(err)
	}
	a.println(text)
	return nil
}
