package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/cobragpt/internal/client/client"
	"github.com/dmitrijs2005/cobragpt/internal/client/config"
	"github.com/dmitrijs2005/cobragpt/internal/client/credentials"
	"github.com/dmitrijs2005/cobragpt/internal/client/models"
	"github.com/dmitrijs2005/cobragpt/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/cobragpt/internal/client/services"
	"github.com/dmitrijs2005/cobragpt/internal/client/session"
	"github.com/dmitrijs2005/cobragpt/internal/filex"
	"github.com/dmitrijs2005/cobragpt/internal/logging"
)

// sessionManager is the part of session.Manager the CLI uses.
type sessionManager interface {
	Initialize(ctx context.Context)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, email, password, name string) (*models.User, error)
	Logout(ctx context.Context)
	State() models.SessionState
	Subscribe(l session.Listener) (unsubscribe func())
}

type App struct {
	config   *config.Config
	logger   logging.Logger
	session  sessionManager
	settings services.SettingsService
	chat     services.ChatService
	reader   *bufio.Reader
	out      io.Writer
	closers  []io.Closer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger, err := logging.NewTextLogger(os.Stderr, c.LogLevel)
	if err != nil {
		return nil, err
	}

	dsn, err := filex.DataFile(c.DataDir, c.DatabaseName)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, dsn)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", dsn, "error", err)
		return nil, err
	}

	return newApp(c, db, logger, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, db *sql.DB, logger logging.Logger, in io.Reader, out io.Writer) *App {
	apiClient := client.NewMockClient(c.AuthDelay, c.LogoutDelay)
	store := credentials.NewMetadataStore(metadata.NewSQLiteRepository(db), logger)

	return &App{
		config:   c,
		logger:   logger,
		session:  session.New(apiClient, store, logger),
		settings: services.NewSettingsService(db, logger),
		chat:     services.NewChatService(c.ReplyDelay),
		reader:   bufio.NewReader(in),
		out:      out,
		closers:  []io.Closer{apiClient, db},
	}
}

// Run restores the previous session and serves commands until the user
// exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	unsubscribe := a.session.Subscribe(a.onSessionChange(ctx))
	defer unsubscribe()

	a.session.Initialize(ctx)

	printlnFn("Welcome to CobraGPT CLI (type 'help' for commands)")
	if u := a.session.State().User; u != nil {
		printlnFn(fmt.Sprintf("Signed in as %s", u.Email))
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close releases the backend client and the database.
func (a *App) Close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}

func (a *App) onSessionChange(ctx context.Context) session.Listener {
	return func(s models.SessionState) {
		if s.IsLoading {
			printlnFn("Please wait...")
		}
		a.logger.Debug(ctx, "session changed", "phase", s.Phase, "error", s.Error)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.State().IsAuthenticated()
}

func (a *App) getStatus() string {
	st := a.session.State()
	s := string(st.Phase)
	if st.User != nil {
		s = st.User.Email + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}
