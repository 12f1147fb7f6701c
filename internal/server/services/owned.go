package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/contactkeeper/internal/apperr"
	"github.com/dmitrijs2005/contactkeeper/internal/common"
)

// Owned is a record that belongs to exactly one user.
type Owned interface {
	OwnerID() string
}

// loadOwned fetches a record with get and checks that userID owns it.
// A missing record maps to NotFound, a foreign one to Auth.
func loadOwned[T Owned](ctx context.Context, userID, id string, get func(context.Context, string) (T, error), notFoundMsg string) (T, error) {
	var zero T

	rec, err := get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return zero, apperr.NotFound(notFoundMsg)
		}
		return zero, apperr.Internal(fmt.Errorf("load %s: %w", id, err))
	}

	if rec.OwnerID() != userID {
		return zero, apperr.Auth(msgNotAuthorized)
	}
	return rec, nil
}
