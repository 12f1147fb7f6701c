package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/logging"
	"github.com/dmitrijs2005/contactkeeper/internal/server/auth"
	"github.com/dmitrijs2005/contactkeeper/internal/server/hash"
	"github.com/dmitrijs2005/contactkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/contactkeeper/internal/server/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type okPinger struct{ err error }

func (p okPinger) Ping(context.Context) error { return p.err }

type captured struct {
	err  error
	tags map[string]string
}

type fakeReporter struct {
	events []captured
}

func (r *fakeReporter) Capture(err error, tags map[string]string) {
	r.events = append(r.events, captured{err: err, tags: tags})
}

// newMemoryServer wires real services over the in-memory store.
func newMemoryServer(t *testing.T) (*Server, *auth.Issuer) {
	t.Helper()
	m := repomanager.NewMemoryRepositoryManager()
	issuer := auth.NewIssuer([]byte("test-secret"), time.Hour)
	hasher := hash.NewHasher(bcrypt.MinCost)

	srv := NewServer("127.0.0.1:0", nopLogger{}, Dependencies{
		Users:    services.NewUserService(m, hasher, issuer),
		Contacts: services.NewContactService(m),
		Tokens:   issuer,
		Store:    m,
	})
	return srv, issuer
}

func do(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(common.AuthTokenHeaderName, token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

type msgBody struct {
	Msg string `json:"msg"`
}

type tokenBody struct {
	Token string `json:"token"`
}

type contactBody struct {
	ID    string    `json:"_id"`
	User  string    `json:"user"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
	Type  string    `json:"type"`
	Date  time.Time `json:"date"`
}

func register(t *testing.T, h http.Handler, name, email string) string {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/users", "", map[string]string{
		"name": name, "email": email, "password": "secret1",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	tok := decode[tokenBody](t, rec).Token
	require.NotEmpty(t, tok)
	return tok
}
