package cli

import (
	"context"
	"fmt"

	"github.com/TRu-S3/hackmatch-go/internal/client/resources"
)

func (a *App) listUsers(ctx context.Context, args []string) {
	params := resources.UserListParams{Limit: resources.Int(20)}
	if len(args) > 0 {
		params.Name = resources.Str(args[0])
	}

	users, page, err := a.users.List(ctx, params)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	for _, u := range users {
		fmt.Fprintf(a.out, "#%d\t%s\t%s\n", u.ID, u.Name, u.Gmail)
	}
	if page.HasMore() {
		fmt.Fprintf(a.out, "(%d of %d shown)\n", len(users), page.Total)
	}
}

func (a *App) showUser(ctx context.Context, args []string) {
	id, ok := a.parseID(args, "user <id>")
	if !ok {
		return
	}
	u, err := a.users.Get(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintf(a.out, "#%d %s <%s>\n", u.ID, u.Name, u.Gmail)
}

func (a *App) showProfile(ctx context.Context, args []string) {
	id, ok := a.parseID(args, "profile <user-id>")
	if !ok {
		return
	}
	p, err := a.profiles.GetByUserID(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if p == nil {
		fmt.Fprintln(a.out, "No profile yet")
		return
	}
	fmt.Fprintf(a.out, "bio: %s\nage: %d\nlocation: %s\n", p.Bio, p.Age, p.Location)
}

func (a *App) listTags(ctx context.Context) {
	tags, _, err := a.tags.List(ctx, resources.TagListParams{})
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	for _, t := range tags {
		fmt.Fprintf(a.out, "#%d\t%s\n", t.ID, t.Name)
	}
}

func (a *App) listContests(ctx context.Context) {
	contests, _, err := a.contests.List(ctx, resources.ContestListParams{Active: resources.Bool(true)})
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	for _, c := range contests {
		fmt.Fprintf(a.out, "#%d\t%s (author %d)\n", c.ID, c.Title, c.AuthorID)
	}
}

func (a *App) listHackathons(ctx context.Context) {
	hackathons, _, err := a.hackathons.List(ctx, resources.HackathonListParams{})
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	for _, h := range hackathons {
		fmt.Fprintf(a.out, "#%d\t%s\t%s - %s\n", h.ID, h.Name,
			h.StartDate.Format("2006-01-02"), h.EndDate.Format("2006-01-02"))
	}
}

func (a *App) listBookmarks(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Sign in first")
		return
	}
	users, err := a.bookmarks.BookmarkedUsers(ctx, a.currentUser.ID)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No bookmarks")
		return
	}
	for _, u := range users {
		fmt.Fprintf(a.out, "#%d\t%s\t%s\n", u.ID, u.Name, u.Gmail)
	}
}

func (a *App) toggleBookmark(ctx context.Context, args []string) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Sign in first")
		return
	}
	id, ok := a.parseID(args, "bookmark <user-id>")
	if !ok {
		return
	}
	bookmarked, err := a.bookmarks.Toggle(ctx, a.currentUser.ID, id)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if bookmarked {
		fmt.Fprintf(a.out, "Bookmarked user %d\n", id)
	} else {
		fmt.Fprintf(a.out, "Removed bookmark for user %d\n", id)
	}
}
