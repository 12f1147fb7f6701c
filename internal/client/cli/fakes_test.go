package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/contactkeeper/internal/client/api"
	"github.com/dmitrijs2005/contactkeeper/internal/client/models"
	"github.com/dmitrijs2005/contactkeeper/internal/client/session"
)

type fakeAPI struct {
	token    string
	user     *models.User
	contacts []models.Contact

	meErr     error
	loginErr  error
	listErr   error
	updateErr error

	loginEmail, loginPassword string
	registered                []string
	meCalls                   int
	lastToken                 string
	lastID                    string
	lastFields                models.ContactFields
}

func (f *fakeAPI) Register(_ context.Context, name, email, password string) (string, error) {
	f.registered = []string{name, email, password}
	return f.token, nil
}

func (f *fakeAPI) Login(_ context.Context, email, password string) (string, error) {
	f.loginEmail, f.loginPassword = email, password
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.token, nil
}

func (f *fakeAPI) Me(_ context.Context, token string) (*models.User, error) {
	f.meCalls++
	f.lastToken = token
	if f.meErr != nil {
		return nil, f.meErr
	}
	return f.user, nil
}

func (f *fakeAPI) ListContacts(_ context.Context, token string) ([]models.Contact, error) {
	f.lastToken = token
	return f.contacts, f.listErr
}

func (f *fakeAPI) CreateContact(_ context.Context, token string, in models.ContactFields) (*models.Contact, error) {
	f.lastToken, f.lastFields = token, in
	return &models.Contact{ID: "c1", Name: in.Name, Type: "personal"}, nil
}

func (f *fakeAPI) UpdateContact(_ context.Context, token, id string, in models.ContactFields) (*models.Contact, error) {
	f.lastToken, f.lastID, f.lastFields = token, id, in
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &models.Contact{ID: id, Name: "Bob", Phone: in.Phone, Type: "personal"}, nil
}

func (f *fakeAPI) DeleteContact(_ context.Context, token, id string) (string, error) {
	f.lastToken, f.lastID = token, id
	return "Contact removed", nil
}

type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) { return m.data[key], nil }
func (m *memStore) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}
func (m *memStore) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}
func (m *memStore) Clear(context.Context) error {
	m.data = map[string][]byte{}
	return nil
}

// capturePrint collects printlnFn output for the duration of the test.
func capturePrint(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		return fmt.Fprintln(&buf, a...)
	}
	t.Cleanup(func() { printlnFn = orig })
	return &buf
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func newTestApp(f *fakeAPI, store *memStore, input string) *App {
	return &App{
		client:  f,
		store:   store,
		session: &session.State{},
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     io.Discard,
	}
}

var errUnauthorized = api.NewError(401, "Token is not valid")
