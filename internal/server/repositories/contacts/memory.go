package contacts

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps contacts in process memory. Creation times are
// strictly increasing so list order matches insertion order reversed.
type MemoryRepository struct {
	mu       sync.RWMutex
	items    map[string]models.Contact
	lastTime time.Time
	now      func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items: make(map[string]models.Contact),
		now:   time.Now,
	}
}

func (r *MemoryRepository) Create(_ context.Context, c *models.Contact) (*models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	ts := r.now().UTC()
	if !ts.After(r.lastTime) {
		ts = r.lastTime.Add(time.Microsecond)
	}
	r.lastTime = ts
	c.CreatedAt = ts

	r.items[c.ID] = *c
	return c, nil
}

func (r *MemoryRepository) ListByUser(_ context.Context, userID string) ([]*models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Contact, 0)
	for _, c := range r.items {
		if c.UserID == userID {
			c := c
			result = append(result, &c)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &c, nil
}

func (r *MemoryRepository) Update(_ context.Context, c *models.Contact) (*models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.items[c.ID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cur.Name, cur.Email, cur.Phone, cur.Type = c.Name, c.Email, c.Phone, c.Type
	r.items[c.ID] = cur
	return &cur, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.items, id)
	return nil
}
