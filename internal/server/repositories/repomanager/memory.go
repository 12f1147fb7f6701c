package repomanager

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/contactkeeper/internal/dbx"
	"github.com/dmitrijs2005/contactkeeper/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/contactkeeper/internal/server/repositories/users"
)

// MemoryRepositoryManager ignores the handle argument: every call sees the
// same in-process store. WithTx serialises callers but cannot roll back.
type MemoryRepositoryManager struct {
	txMu     sync.Mutex
	users    *users.MemoryRepository
	contacts *contacts.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:    users.NewMemoryRepository(),
		contacts: contacts.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Users(dbx.DBTX) users.Repository       { return m.users }
func (m *MemoryRepositoryManager) Contacts(dbx.DBTX) contacts.Repository { return m.contacts }
func (m *MemoryRepositoryManager) Conn() dbx.DBTX                        { return nil }
func (m *MemoryRepositoryManager) RunMigrations(context.Context) error   { return nil }
func (m *MemoryRepositoryManager) Ping(context.Context) error            { return nil }
func (m *MemoryRepositoryManager) Close() error                          { return nil }

func (m *MemoryRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(ctx, nil)
}
