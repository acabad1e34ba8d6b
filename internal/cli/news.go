package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/newsboard/internal/common"
	"github.com/dmitrijs2005/newsboard/internal/services"
)

func (a *App) List(ctx context.Context) error {
	items, err := a.svc.News.Public(ctx)
	if err != nil {
		return a.fail(err)
	}
	a.printList(items)
	return nil
}

func (a *App) Tags(ctx context.Context) error {
	tags, err := a.svc.News.Tags(ctx)
	if err != nil {
		return a.fail(err)
	}
	if len(tags) == 0 {
		a.println("No tags yet.")
		return nil
	}
	a.println(strings.Join(tags, ", "))
	return nil
}

func (a *App) Filter(ctx context.Context, tag string) error {
	tag, err := a.text(tag, "Tag")
	if err != nil {
		return a.fail(err)
	}
	items, err := a.svc.News.ByTag(ctx, tag)
	if err != nil {
		return a.fail(err)
	}
	a.printList(items)
	return nil
}

func (a *App) Show(ctx context.Context, id string) error {
	id, err := a.text(id, "News ID")
	if err != nil {
		return a.fail(err)
	}
	n, err := a.svc.News.Get(ctx, id)
	if err != nil {
		return a.fail(err)
	}
	if !n.VisibleTo(a.session) {
		return a.fail(common.ErrorNotFound)
	}
	a.printNews(n)
	return nil
}

// input prompts for the editable fields. With current, empty answers keep
// the existing values.
func (a *App) input(current *services.NewsInput) (services.NewsInput, error) {
	hint := ""
	if current != nil {
		hint = " (empty keeps current)"
	}

	var (
		in  services.NewsInput
		err error
	)
	if in.Title, err = GetSimpleText(a.reader, "Title"+hint, a.out); err != nil {
		return in, err
	}
	if in.Content, err = GetMultiline(a.reader, "Content"+hint, a.out); err != nil {
		return in, err
	}
	if in.Tags, err = GetSimpleText(a.reader, "Tags, comma separated"+hint, a.out); err != nil {
		return in, err
	}

	if current != nil {
		if in.Title == "" {
			in.Title = current.Title
		}
		if in.Content == "" {
			in.Content = current.Content
		}
		if in.Tags == "" {
			in.Tags = current.Tags
		}
	}
	return in, nil
}

// Post creates an item and, unless draft, sends it for review.
func (a *App) Post(ctx context.Context, draft bool) error {
	in, err := a.input(nil)
	if err != nil {
		return a.fail(err)
	}

	create := a.svc.News.Publish
	if draft {
		create = a.svc.News.CreateDraft
	}
	n, err := create(ctx, a.actor(), in)
	if err != nil {
		return a.fail(err)
	}

	if draft {
		a.println("Draft saved:", n.ID)
	} else {
		a.println("Submitted for review:", n.ID)
	}
	return nil
}

func (a *App) Edit(ctx context.Context, id string) error {
	id, err := a.text(id, "News ID")
	if err != nil {
		return a.fail(err)
	}
	n, err := a.svc.News.Get(ctx, id)
	if err != nil {
		return a.fail(err)
	}
	if n.Author != a.actor().Username {
		return a.fail(common.ErrForbidden)
	}

	current := services.NewsInput{Title: n.Title, Content: n.Content, Tags: strings.Join(n.Tags, ", ")}
	in, err := a.input(&current)
	if err != nil {
		return a.fail(err)
	}
	publish, err := Confirm(a.reader, "Submit for review now?", a.out)
	if err != nil {
		return a.fail(err)
	}

	u, err := a.svc.News.Update(ctx, a.actor(), id, in, publish)
	if err != nil {
		return a.fail(err)
	}
	a.println("Saved as", u.Status.Label())
	return nil
}

func (a *App) Submit(ctx context.Context, id string) error {
	id, err := a.text(id, "News ID")
	if err != nil {
		return a.fail(err)
	}
	if _, err := a.svc.Moderation.Submit(ctx, a.actor(), id); err != nil {
		return a.fail(err)
	}
	a.println("Submitted for review")
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	id, err := a.text(id, "News ID")
	if err != nil {
		return a.fail(err)
	}
	ok, err := Confirm(a.reader, "Delete this item and its comments?", a.out)
	if err != nil {
		return a.fail(err)
	}
	if !ok {
		a.println("Cancelled")
		return nil
	}
	if err := a.svc.News.Delete(ctx, a.actor(), id); err != nil {
		return a.fail(err)
	}
	a.println("Deleted")
	return nil
}

func (a *App) Drafts(ctx context.Context) error {
	items, err := a.svc.News.Drafts(ctx, a.actor())
	if err != nil {
		return a.fail(err)
	}
	a.printList(items)
	return nil
}

func (a *App) Mine(ctx context.Context) error {
	items, err := a.svc.News.Mine(ctx, a.actor())
	if err != nil {
		return a.fail(err)
	}
	a.printList(items)
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	st, err := a.svc.News.ReviewStats(ctx, a.actor().Username)
	if err != nil {
		return a.fail(err)
	}
	a.printStats(a.actor().Username, st)
	return nil
}
