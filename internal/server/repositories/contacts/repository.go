package contacts

import (
	"context"

	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
)

// Repository stores contacts. ListByUser returns newest first, ties broken
// by id descending. Missing records yield common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, c *models.Contact) (*models.Contact, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Contact, error)
	GetByID(ctx context.Context, id string) (*models.Contact, error)
	Update(ctx context.Context, c *models.Contact) (*models.Contact, error)
	Delete(ctx context.Context, id string) error
}
