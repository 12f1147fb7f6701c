package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/dbx"
	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
	"github.com/dmitrijs2005/contactkeeper/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/contactkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/contactkeeper/internal/server/repositories/users"
)

var errBoom = errors.New("boom")

type fakeHasher struct {
	hashErr  error
	compares int
}

func (h *fakeHasher) Hash(p string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + p, nil
}

func (h *fakeHasher) Compare(p, hashed string) bool {
	h.compares++
	return strings.TrimPrefix(hashed, "hashed:") == p && strings.HasPrefix(hashed, "hashed:")
}

type fakeTokens struct {
	err error
}

func (f fakeTokens) Issue(userID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-for-" + userID, nil
}

type fakeUsersRepo struct {
	byEmail   map[string]*models.User
	byID      map[string]*models.User
	getErr    error
	createErr error
	creates   int
}

func newFakeUsers(us ...*models.User) *fakeUsersRepo {
	r := &fakeUsersRepo{byEmail: map[string]*models.User{}, byID: map[string]*models.User{}}
	for _, u := range us {
		r.byEmail[u.Email] = u
		r.byID[u.ID] = u
	}
	return r
}

func (r *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.creates++
	if r.createErr != nil {
		return nil, r.createErr
	}
	if u.ID == "" {
		u.ID = "new-user"
	}
	r.byEmail[u.Email] = u
	r.byID[u.ID] = u
	return u, nil
}

func (r *fakeUsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	u, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUsersRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

// fakeContactsRepo wraps the in-memory repository and counts writes.
type fakeContactsRepo struct {
	*contacts.MemoryRepository
	updates   int
	deletes   int
	getErr    error
	listErr   error
	createErr error
	updateErr error
	deleteErr error
}

func (r *fakeContactsRepo) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.MemoryRepository.GetByID(ctx, id)
}

func (r *fakeContactsRepo) ListByUser(ctx context.Context, userID string) ([]*models.Contact, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.MemoryRepository.ListByUser(ctx, userID)
}

func (r *fakeContactsRepo) Create(ctx context.Context, c *models.Contact) (*models.Contact, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	return r.MemoryRepository.Create(ctx, c)
}

func (r *fakeContactsRepo) Update(ctx context.Context, c *models.Contact) (*models.Contact, error) {
	r.updates++
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	return r.MemoryRepository.Update(ctx, c)
}

func (r *fakeContactsRepo) Delete(ctx context.Context, id string) error {
	r.deletes++
	if r.deleteErr != nil {
		return r.deleteErr
	}
	return r.MemoryRepository.Delete(ctx, id)
}

type fakeRepoManager struct {
	u     *fakeUsersRepo
	c     *fakeContactsRepo
	txErr error
	txs   int
}

var _ repomanager.RepositoryManager = (*fakeRepoManager)(nil)

func newFakeManager() *fakeRepoManager {
	return &fakeRepoManager{
		u: newFakeUsers(),
		c: &fakeContactsRepo{MemoryRepository: contacts.NewMemoryRepository()},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context) error    { return nil }
func (m *fakeRepoManager) Ping(context.Context) error             { return nil }
func (m *fakeRepoManager) Close() error                           { return nil }
func (m *fakeRepoManager) Conn() dbx.DBTX                         { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository       { return m.u }
func (m *fakeRepoManager) Contacts(dbx.DBTX) contacts.Repository { return m.c }

func (m *fakeRepoManager) WithTx(ctx context.Context, fn func(context.Context, dbx.DBTX) error) error {
	m.txs++
	if m.txErr != nil {
		return m.txErr
	}
	return fn(ctx, nil)
}
