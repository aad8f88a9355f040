package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

func (a *App) prompt() string {
	if a.currentUser != nil {
		return fmt.Sprintf("hackmatch (%s)> ", a.currentUser.Name)
	}
	return "hackmatch> "
}

// Run starts the REPL and blocks until exit or EOF.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to hackmatch CLI (type 'help' for commands)")

	for {
		fmt.Fprint(a.out, a.prompt())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			if len(line) == 0 {
				break
			}
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()
		case "login":
			a.login(ctx)
		case "logout":
			a.logout(ctx)
		case "whoami":
			a.whoami()
		case "users":
			a.listUsers(ctx, args)
		case "user":
			a.showUser(ctx, args)
		case "profile":
			a.showProfile(ctx, args)
		case "tags":
			a.listTags(ctx)
		case "contests":
			a.listContests(ctx)
		case "hackathons":
			a.listHackathons(ctx)
		case "bookmarks":
			a.listBookmarks(ctx)
		case "bookmark":
			a.toggleBookmark(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: users, user <id>, profile <user-id>, tags, contests, hackathons, bookmarks, bookmark <user-id>, whoami, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: login, users, user <id>, profile <user-id>, tags, contests, hackathons, exit")
	}
}

// parseID converts the first argument to an id, printing usage on failure.
func (a *App) parseID(args []string, usage string) (int64, bool) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage:", usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Not a numeric id:", args[0])
		return 0, false
	}
	return id, true
}
