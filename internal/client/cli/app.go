// Package cli implements the interactive REPL for browsing the
// team-matching backend: sign-in, user and contest listings, profiles,
// and bookmark toggling.
package cli

import (
	"bufio"
	"io"
	"log/slog"
	"os"

	"github.com/TRu-S3/hackmatch-go/internal/client/api"
	"github.com/TRu-S3/hackmatch-go/internal/client/auth"
	"github.com/TRu-S3/hackmatch-go/internal/client/config"
	"github.com/TRu-S3/hackmatch-go/internal/client/identity"
	"github.com/TRu-S3/hackmatch-go/internal/client/resources"
	"github.com/TRu-S3/hackmatch-go/internal/logging"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	identity *identity.Client
	tokens   *auth.Provider

	users      *resources.UsersClient
	profiles   *resources.ProfilesClient
	tags       *resources.TagsClient
	contests   *resources.ContestsClient
	bookmarks  *resources.BookmarksClient
	hackathons *resources.HackathonsClient

	// currentUser is the backend record for the signed-in principal,
	// resolved via FindOrCreate at login.
	currentUser *resources.User

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	var store auth.Store
	if c.CredentialFile != "" {
		store = auth.NewFileStore(c.CredentialFile)
	} else {
		store = auth.NewNoopStore()
	}

	id := identity.NewClient(c.IdentityTokenURL, c.IdentityAPIKey, log)
	tokens := auth.NewProvider(store, id, log, auth.WithWaitTimeout(c.AuthWaitTimeout))

	apiClient := api.New(c.BackendBaseURL, tokens, log,
		api.WithTimeout(c.RequestTimeout),
		api.WithRateLimit(c.RateLimitRPS, 1),
	)

	return &App{
		config:     c,
		log:        log,
		identity:   id,
		tokens:     tokens,
		users:      resources.NewUsersClient(apiClient),
		profiles:   resources.NewProfilesClient(apiClient),
		tags:       resources.NewTagsClient(apiClient),
		contests:   resources.NewContestsClient(apiClient),
		bookmarks:  resources.NewBookmarksClient(apiClient),
		hackathons: resources.NewHackathonsClient(apiClient),
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.currentUser != nil
}
