package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/studykeeper/internal/client/client"
	"github.com/dmitrijs2005/studykeeper/internal/client/config"
	"github.com/dmitrijs2005/studykeeper/internal/client/services"
	"github.com/dmitrijs2005/studykeeper/internal/logging"
	"github.com/dmitrijs2005/studykeeper/internal/netx"
)

type App struct {
	config          *config.Config
	authService     services.AuthService
	progressService services.ProgressService
	log             logging.Logger
	reader          *bufio.Reader
	out             io.Writer
	userName        string
	userID          string
}

func NewApp(c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	log := logging.New(os.Stderr, level)

	apiClient, err := client.NewHTTPClient(c.EndpointURL, netx.NewTextPoster(nil), log)
	if err != nil {
		return nil, err
	}

	return &App{
		config:          c,
		authService:     services.NewAuthService(apiClient, nil),
		progressService: services.NewProgressService(apiClient),
		log:             log,
		reader:          bufio.NewReader(os.Stdin),
		out:             os.Stdout,
	}, nil
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	a.log.Info(ctx, "using endpoint", "url", a.config.EndpointURL)
	fmt.Fprintln(a.out, "Welcome to StudyKeeper CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.userID != ""
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}
