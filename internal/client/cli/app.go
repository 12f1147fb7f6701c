package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/contactkeeper/internal/client/api"
	"github.com/dmitrijs2005/contactkeeper/internal/client/config"
	"github.com/dmitrijs2005/contactkeeper/internal/client/models"
	"github.com/dmitrijs2005/contactkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/contactkeeper/internal/client/session"
)

// API is the subset of the server API the client uses.
type API interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context, token string) (*models.User, error)
	ListContacts(ctx context.Context, token string) ([]models.Contact, error)
	CreateContact(ctx context.Context, token string, in models.ContactFields) (*models.Contact, error)
	UpdateContact(ctx context.Context, token, id string, in models.ContactFields) (*models.Contact, error)
	DeleteContact(ctx context.Context, token, id string) (string, error)
}

type App struct {
	config  *config.Config
	client  API
	store   metadata.Repository
	session *session.State
	reader  *bufio.Reader
	out     io.Writer
	db      *sql.DB
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	db, err := metadata.OpenDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	return &App{
		config:  c,
		client:  api.NewClient(c.ServerURL, c.RequestTimeout),
		store:   metadata.NewSQLiteRepository(db),
		session: &session.State{},
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		db:      db,
	}, nil
}

// Run restores the saved session and serves commands until exit.
func (a *App) Run(ctx context.Context) {
	defer a.close()

	printlnFn(titleStyle.Render("ContactKeeper") + " (type 'help' for commands)")
	a.loadUser(ctx)
	runREPL(ctx, a.commands(), a.status, a.reader)
}

func (a *App) close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) status() string {
	if u := a.session.User(); u != nil {
		return u.Name
	}
	if a.session.Loading() {
		return "loading"
	}
	return ""
}

func (a *App) commands() map[string]command {
	guard := func(cmd command) command {
		return requireAuth(a.session, a.Login, cmd)
	}
	return map[string]command{
		"register": a.Register,
		"login":    a.Login,
		"logout":   a.Logout,
		"me":       guard(a.Me),
		"list":     guard(a.List),
		"add":      guard(a.Add),
		"edit":     guard(a.Edit),
		"delete":   guard(a.Delete),
	}
}
