package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. *App satisfies
// it; tests provide a stub. Command handlers report their own errors.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	List(ctx context.Context) error
	Tags(ctx context.Context) error
	Filter(ctx context.Context, tag string) error
	Show(ctx context.Context, id string) error
	Summary(ctx context.Context, id string) error

	Post(ctx context.Context, draft bool) error
	Edit(ctx context.Context, id string) error
	Submit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Like(ctx context.Context, id string) error
	Comment(ctx context.Context, id string) error
	Drafts(ctx context.Context) error
	Mine(ctx context.Context) error
	Stats(ctx context.Context) error

	Pending(ctx context.Context) error
	Review(ctx context.Context, id string) error
	Backup(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: (l)ist, tags, filter <tag>, show <id>, summary <id>, register, login, exit"
	helpUser      = "Available commands: (l)ist, tags, filter <tag>, show <id>, summary <id>, post, draft, edit <id>, submit <id>, delete <id>, like <id>, comment <id>, drafts, mine, stats, logout, exit"
	helpAdmin     = helpUser + ", pending, review <id>, backup"
)

// runREPL reads one command per line from reader and dispatches it to a.
// The first token is the command and the second, when present, its
// argument. The loop exits on EOF or on "exit" / "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("nb%s> ", statusFn()))
		line, err := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}

		cmd := strings.ToLower(parts[0])
		arg := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), parts[0]))

		if needsLogin(cmd) && !a.isLoggedIn() {
			printlnFn("Please login first.")
			continue
		}

		switch cmd {
		case "help", "?":
			switch {
			case a.isAdmin():
				printlnFn(helpAdmin)
			case a.isLoggedIn():
				printlnFn(helpUser)
			default:
				printlnFn(helpAnonymous)
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)
		case "tags":
			_ = a.Tags(ctx)
		case "filter":
			_ = a.Filter(ctx, arg)
		case "show":
			_ = a.Show(ctx, arg)
		case "summary":
			_ = a.Summary(ctx, arg)

		case "post":
			_ = a.Post(ctx, false)
		case "draft":
			_ = a.Post(ctx, true)
		case "edit":
			_ = a.Edit(ctx, arg)
		case "submit":
			_ = a.Submit(ctx, arg)
		case "delete":
			_ = a.Delete(ctx, arg)
		case "like":
			_ = a.Like(ctx, arg)
		case "comment":
			_ = a.Comment(ctx, arg)
		case "drafts":
			_ = a.Drafts(ctx)
		case "mine":
			_ = a.Mine(ctx)
		case "stats":
			_ = a.Stats(ctx)

		case "pending":
			_ = a.Pending(ctx)
		case "review":
			_ = a.Review(ctx, arg)
		case "backup":
			_ = a.Backup(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

func needsLogin(cmd string) bool {
	switch cmd {
	case "logout", "post", "draft", "edit", "submit", "delete", "like", "comment",
		"drafts", "mine", "stats", "pending", "review", "backup":
		return true
	}
	return false
}
