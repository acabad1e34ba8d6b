package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/newsboard/internal/models"
	"github.com/dmitrijs2005/newsboard/internal/services"
)

const timeLayout = "2006-01-02 15:04"

func (a *App) printList(items []models.News) {
	if len(items) == 0 {
		a.println("Nothing here yet.")
		return
	}
	for _, n := range items {
		a.println(listLine(n))
	}
}

func listLine(n models.News) string {
	line := fmt.Sprintf("[%s] %s by %s, %d likes", n.ID, n.Title, n.Author, n.Likes)
	if n.Status != models.StatusApproved {
		line += " (" + n.Status.Label() + ")"
	}
	if len(n.Tags) > 0 {
		line += " #" + strings.Join(n.Tags, " #")
	}
	return line
}

func (a *App) printNews(n models.News) {
	a.println(n.Title)
	a.println(fmt.Sprintf("by %s on %s, %d likes, %s", n.Author, n.CreatedAt.Format(timeLayout), n.Likes, n.Status.Label()))
	if len(n.Tags) > 0 {
		a.println("Tags:", strings.Join(n.Tags, ", "))
	}
	a.println()
	a.println(n.Content)

	if r := n.Review; r != nil {
		a.println()
		a.println("Submitted:", r.SubmittedAt.Format(timeLayout))
		if r.ReviewedAt != nil {
			a.println("Reviewed:", r.ReviewedAt.Format(timeLayout))
		}
		if r.Comment != "" {
			a.println("Reviewer comment:", r.Comment)
		}
		if r.AIVerdict != "" {
			a.println(fmt.Sprintf("Advisor: %s (%s)", r.AIVerdict, r.AIRationale))
		}
	}

	if len(n.Comments) > 0 {
		a.println()
		a.println(fmt.Sprintf("Comments (%d):", len(n.Comments)))
		for _, c := range n.Comments {
			a.println(fmt.Sprintf("  %s, %s: %s", c.Author, c.CreatedAt.Format(timeLayout), c.Content))
		}
	}
}

func (a *App) printStats(username string, st services.ReviewStats) {
	a.println("Posts by", username)
	a.println(fmt.Sprintf("  %-13s %d", models.StatusDraft.Label(), st.Draft))
	a.println(fmt.Sprintf("  %-13s %d", models.StatusPending.Label(), st.Pending))
	a.println(fmt.Sprintf("  %-13s %d", models.StatusApproved.Label(), st.Approved))
	a.println(fmt.Sprintf("  %-13s %d", models.StatusRejected.Label(), st.Rejected))
}

func age(t time.Time) string {
	d := time.Since(t).Truncate(time.Minute)
	if d < time.Minute {
		return "just now"
	}
	return d.String() + " ago"
}
