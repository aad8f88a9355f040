package cli

import (
	"context"
	"fmt"

	"github.com/TRu-S3/hackmatch-go/internal/client/resources"
)

// login signs in with a pasted refresh token, then resolves (or creates)
// the matching backend user record.
func (a *App) login(ctx context.Context) {
	refreshToken, err := getSecret(a.reader, "Paste refresh token", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Input error:", err)
		return
	}
	if refreshToken == "" {
		fmt.Fprintln(a.out, "No token given")
		return
	}

	principal, err := a.identity.SignIn(ctx, refreshToken)
	if err != nil {
		fmt.Fprintln(a.out, "Sign-in failed:", err)
		return
	}

	name := principal.Name
	if name == "" {
		name = principal.Email
	}
	user, err := a.users.FindOrCreate(ctx, resources.UserInput{Name: name, Gmail: principal.Email})
	if err != nil {
		fmt.Fprintln(a.out, "Could not resolve account:", err)
		return
	}
	a.currentUser = user
	fmt.Fprintf(a.out, "Signed in as %s <%s>\n", user.Name, user.Gmail)
}

func (a *App) logout(ctx context.Context) {
	a.identity.SignOut()
	a.tokens.SignOut(ctx)
	a.currentUser = nil
	fmt.Fprintln(a.out, "Signed out")
}

func (a *App) whoami() {
	if a.currentUser == nil {
		fmt.Fprintln(a.out, "Not signed in")
		return
	}
	fmt.Fprintf(a.out, "#%d %s <%s>\n", a.currentUser.ID, a.currentUser.Name, a.currentUser.Gmail)
}
