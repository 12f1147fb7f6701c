package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/contactkeeper/internal/apperr"
	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/dbx"
	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
	"github.com/dmitrijs2005/contactkeeper/internal/server/repositories/repomanager"
)

const (
	msgContactNotFound = "Contact not found"
	msgNotAuthorized   = "Not authorized"
	MsgContactRemoved  = "Contact removed"
)

type ContactService struct {
	repomanager repomanager.RepositoryManager
}

func NewContactService(m repomanager.RepositoryManager) *ContactService {
	return &ContactService{repomanager: m}
}

// List returns the user's contacts, newest first.
func (s *ContactService) List(ctx context.Context, userID string) ([]*models.Contact, error) {
	list, err := s.repomanager.Contacts(s.repomanager.Conn()).ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("list contacts: %w", err))
	}
	return list, nil
}

func (s *ContactService) Create(ctx context.Context, userID string, in models.ContactInput) (*models.Contact, error) {
	v := &validator{}
	v.check(notBlank(in.Name), "name", "Name is required", in.Name)
	if err := v.err(); err != nil {
		return nil, err
	}

	typ := strings.TrimSpace(in.Type)
	if typ == "" {
		typ = common.DefaultContactType
	}

	c, err := s.repomanager.Contacts(s.repomanager.Conn()).Create(ctx, &models.Contact{
		UserID: userID,
		Name:   in.Name,
		Email:  in.Email,
		Phone:  in.Phone,
		Type:   typ,
	})
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("create contact: %w", err))
	}
	return c, nil
}

// Update merges the non-empty fields of patch into the contact. The record
// is returned unchanged when nothing differs.
func (s *ContactService) Update(ctx context.Context, userID, contactID string, patch models.ContactPatch) (*models.Contact, error) {
	if patch.IsEmpty() {
		repo := s.repomanager.Contacts(s.repomanager.Conn())
		c, err := loadOwned(ctx, userID, contactID, repo.GetByID, msgContactNotFound)
		if err != nil {
			return nil, apperr.From(err)
		}
		return c, nil
	}

	var result *models.Contact

	err := s.repomanager.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Contacts(tx)

		c, err := loadOwned(ctx, userID, contactID, repo.GetByID, msgContactNotFound)
		if err != nil {
			return err
		}

		if !patch.Apply(c) {
			result = c
			return nil
		}

		result, err = repo.Update(ctx, c)
		if err != nil {
			return writeError("update contact", err)
		}
		return nil
	})
	if err != nil {
		return nil, apperr.From(err)
	}
	return result, nil
}

// Delete removes the contact and returns the confirmation message.
func (s *ContactService) Delete(ctx context.Context, userID, contactID string) (string, error) {
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Contacts(tx)

		if _, err := loadOwned(ctx, userID, contactID, repo.GetByID, msgContactNotFound); err != nil {
			return err
		}
		if err := repo.Delete(ctx, contactID); err != nil {
			return writeError("delete contact", err)
		}
		return nil
	})
	if err != nil {
		return "", apperr.From(err)
	}
	return MsgContactRemoved, nil
}

// writeError maps a write failure. The row can vanish between the ownership
// check and the write when a concurrent delete commits first.
func writeError(op string, err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return apperr.NotFound(msgContactNotFound)
	}
	return apperr.Internal(fmt.Errorf("%s: %w", op, err))
}
