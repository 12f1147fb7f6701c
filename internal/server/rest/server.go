// Package rest exposes the account and contact services over HTTP/JSON.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/contactkeeper/internal/logging"
	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

type UserService interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context, userID string) (*models.User, error)
}

type ContactService interface {
	List(ctx context.Context, userID string) ([]*models.Contact, error)
	Create(ctx context.Context, userID string, in models.ContactInput) (*models.Contact, error)
	Update(ctx context.Context, userID, contactID string, patch models.ContactPatch) (*models.Contact, error)
	Delete(ctx context.Context, userID, contactID string) (string, error)
}

type TokenVerifier interface {
	Verify(token string) (string, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type ErrorReporter interface {
	Capture(err error, tags map[string]string)
}

// Dependencies are the collaborators the HTTP layer calls into. Reporter
// may be nil.
type Dependencies struct {
	Users    UserService
	Contacts ContactService
	Tokens   TokenVerifier
	Store    Pinger
	Reporter ErrorReporter
}

type Server struct {
	address string
	deps    Dependencies
	logger  logging.Logger
	engine  *gin.Engine
}

func NewServer(address string, l logging.Logger, deps Dependencies) *Server {
	s := &Server{
		address: address,
		deps:    deps,
		logger:  l.With("module", "rest_server"),
	}
	s.engine = s.routes()
	return s
}

// Handler returns the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-stopped
}
