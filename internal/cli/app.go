package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/newsboard/internal/common"
	"github.com/dmitrijs2005/newsboard/internal/logging"
	"github.com/dmitrijs2005/newsboard/internal/models"
	"github.com/dmitrijs2005/newsboard/internal/services"
)

// Snapshotter uploads a backup of the store. *backup.Service satisfies it.
type Snapshotter interface {
	Snapshot(ctx context.Context) ([]string, error)
}

type App struct {
	svc     *services.Services
	backup  Snapshotter
	reader  *bufio.Reader
	out     io.Writer
	logger  logging.Logger
	session *models.Session
}

// NewApp builds the client over svc. backup may be nil when no snapshot
// target is configured.
func NewApp(svc *services.Services, backup Snapshotter, in io.Reader, out io.Writer, logger logging.Logger) *App {
	return &App{
		svc:    svc,
		backup: backup,
		reader: bufio.NewReader(in),
		out:    out,
		logger: logger.With("module", "cli"),
	}
}

// Run restores the persisted session and serves commands until exit.
func (a *App) Run(ctx context.Context) {
	a.restore(ctx)
	fmt.Fprintln(a.out, "Welcome to NewsBoard (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) restore(ctx context.Context) {
	s, err := a.svc.Auth.Current(ctx)
	if err != nil {
		if !errors.Is(err, common.ErrNotLoggedIn) {
			a.logger.Warn(ctx, "restore session", "error", err)
		}
		return
	}
	a.session = &s
}

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	if a.session.IsAdmin() {
		return fmt.Sprintf(" (%s, admin)", a.session.Username)
	}
	return fmt.Sprintf(" (%s)", a.session.Username)
}

func (a *App) isLoggedIn() bool { return a.session != nil }

func (a *App) isAdmin() bool { return a.session != nil && a.session.IsAdmin() }

func (a *App) actor() models.Session {
	if a.session == nil {
		return models.Session{}
	}
	return *a.session
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// fail reports err to the user and returns it.
func (a *App) fail(err error) error {
	a.println("Error:", describe(err))
	return err
}

func describe(err error) string {
	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Error()
	case errors.Is(err, common.ErrorNotFound):
		return "no such item"
	case errors.Is(err, common.ErrForbidden):
		return "you are not allowed to do that"
	case errors.Is(err, common.ErrLikeLimit):
		return fmt.Sprintf("you can like an item at most %d times", models.MaxLikesPerUser)
	case errors.Is(err, common.ErrInvalidTransition):
		return "the item is not in a state that allows this"
	}
	return err.Error()
}

// text returns arg when given, otherwise prompts for it.
func (a *App) text(arg, prompt string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	v, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		return "", common.Required(prompt)
	}
	return v, nil
}
