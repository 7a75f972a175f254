package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Open(ctx context.Context, arg string) error
	Up(ctx context.Context) error
	Root(ctx context.Context) error
	Crumb(ctx context.Context, arg string) error
	SwitchView(ctx context.Context, arg string) error
	Search(ctx context.Context, query string) error
	SetMode(arg string) error
	MakeDir(ctx context.Context, name string) error
	Upload(ctx context.Context, names []string) error
	Uploads() error
	Rename(ctx context.Context, arg string, newName string) error
	Remove(ctx context.Context, arg string) error
	Star(ctx context.Context, arg string) error
	Share(ctx context.Context, arg string) error
	Download(ctx context.Context, arg string) error
	Preview(ctx context.Context, arg string) error
	Select(arg string) error
	Deselect(arg string) error
	SelectAll() error
	ClearSelection() error
	Storage() error
}

const loggedOutHelp = "Available commands: login, exit"
const loggedInHelp = `Available commands:
  (l)s                    list the current view
  cd <n> | up | root      navigate folders
  crumb <i>               jump to a breadcrumb
  view <name>             my-drive, starred, shared, recent, trash
  search <text>           filter by name (empty to clear)
  mode <grid|list>        switch rendering
  mkdir <name>            create a folder here
  upload <names...>       simulate uploads here
  uploads                 show the upload panel
  rename <n> <name>       rename an entry
  rm <n>                  delete an entry
  star <n>                toggle star
  share <n>               print a share link
  download <n>            simulate a download
  preview <n>             show entry details
  select <n> | deselect <n> | selectall | clearsel
  storage                 show quota usage
  logout, exit`

// runREPL starts a simple read–eval–print loop for the my-space CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit". Commands that operate on the drive are rejected until
// the user has logged in.
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("myspace %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(loggedInHelp)
			} else {
				printlnFn(loggedOutHelp)
			}
			continue

		case "login":
			_ = a.Login(ctx)
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !a.isLoggedIn() {
			printlnFn("Please login first")
			continue
		}

		switch cmd {
		case "l", "ls":
			_ = a.List(ctx)

		case "cd", "open":
			if len(args) == 0 {
				printlnFn("Usage:", cmd, "<n>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "up":
			_ = a.Up(ctx)

		case "root":
			_ = a.Root(ctx)

		case "crumb":
			if len(args) == 0 {
				printlnFn("Usage: crumb <i>")
				continue
			}
			_ = a.Crumb(ctx, args[0])

		case "view":
			if len(args) == 0 {
				printlnFn("Usage: view <my-drive|starred|shared|recent|trash>")
				continue
			}
			_ = a.SwitchView(ctx, args[0])

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "mode":
			if len(args) == 0 {
				printlnFn("Usage: mode <grid|list>")
				continue
			}
			_ = a.SetMode(args[0])

		case "mkdir":
			if len(args) == 0 {
				printlnFn("Usage: mkdir <name>")
				continue
			}
			_ = a.MakeDir(ctx, strings.Join(args, " "))

		case "upload":
			if len(args) == 0 {
				printlnFn("Usage: upload <names...>")
				continue
			}
			_ = a.Upload(ctx, args)

		case "uploads":
			_ = a.Uploads()

		case "rename":
			if len(args) < 2 {
				printlnFn("Usage: rename <n> <new name>")
				continue
			}
			_ = a.Rename(ctx, args[0], strings.Join(args[1:], " "))

		case "rm":
			if len(args) == 0 {
				printlnFn("Usage: rm <n>")
				continue
			}
			_ = a.Remove(ctx, args[0])

		case "star":
			if len(args) == 0 {
				printlnFn("Usage: star <n>")
				continue
			}
			_ = a.Star(ctx, args[0])

		case "share":
			if len(args) == 0 {
				printlnFn("Usage: share <n>")
				continue
			}
			_ = a.Share(ctx, args[0])

		case "download":
			if len(args) == 0 {
				printlnFn("Usage: download <n>")
				continue
			}
			_ = a.Download(ctx, args[0])

		case "preview":
			if len(args) == 0 {
				printlnFn("Usage: preview <n>")
				continue
			}
			_ = a.Preview(ctx, args[0])

		case "select":
			if len(args) == 0 {
				printlnFn("Usage: select <n>")
				continue
			}
			_ = a.Select(args[0])

		case "deselect":
			if len(args) == 0 {
				printlnFn("Usage: deselect <n>")
				continue
			}
			_ = a.Deselect(args[0])

		case "selectall":
			_ = a.SelectAll()

		case "clearsel":
			_ = a.ClearSelection()

		case "storage":
			_ = a.Storage()

		case "logout":
			_ = a.Logout(ctx)

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
