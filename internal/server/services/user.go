// Package services holds the server's account and contact logic. Every
// error returned to callers is an *apperr.Error.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/contactkeeper/internal/apperr"
	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
	"github.com/dmitrijs2005/contactkeeper/internal/server/repositories/repomanager"
)

const (
	msgUserExists         = "User already exists"
	msgInvalidCredentials = "Invalid credentials"
	msgUserNotFound       = "User not found"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(password, hashed string) bool
}

type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// UserService registers accounts, checks credentials and resolves the
// current user.
type UserService struct {
	repomanager repomanager.RepositoryManager
	hasher      PasswordHasher
	tokens      TokenIssuer

	dummyOnce sync.Once
	dummyHash string
}

func NewUserService(m repomanager.RepositoryManager, hasher PasswordHasher, tokens TokenIssuer) *UserService {
	return &UserService{repomanager: m, hasher: hasher, tokens: tokens}
}

// Register creates an account and returns a session token for it.
func (s *UserService) Register(ctx context.Context, name, email, password string) (string, error) {
	v := &validator{}
	v.check(notBlank(name), "name", "Please add name", name)
	v.check(isEmail(email), "email", "Please include a valid email", email)
	v.check(len(password) >= minPasswordLength, "password", "Please enter a password with 6 or more characters", nil)
	if err := v.err(); err != nil {
		return "", err
	}

	repo := s.repomanager.Users(s.repomanager.Conn())

	_, err := repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return "", apperr.Conflict(msgUserExists)
	case !errors.Is(err, common.ErrorNotFound):
		return "", apperr.Internal(fmt.Errorf("lookup user: %w", err))
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return "", apperr.Internal(err)
	}

	user, err := repo.Create(ctx, &models.User{Name: name, Email: email, Password: hashed})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", apperr.Conflict(msgUserExists)
		}
		return "", apperr.Internal(fmt.Errorf("create user: %w", err))
	}

	return s.issue(user.ID)
}

// Login checks credentials. An unknown email and a wrong password produce
// the same error.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	v := &validator{}
	v.check(isEmail(email), "email", "Please enter valid email address", email)
	if err := v.err(); err != nil {
		return "", err
	}

	user, err := s.repomanager.Users(s.repomanager.Conn()).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// burn a comparison so both failure paths cost the same
			s.hasher.Compare(password, s.dummy())
			return "", apperr.Auth(msgInvalidCredentials)
		}
		return "", apperr.Internal(fmt.Errorf("lookup user: %w", err))
	}

	if !s.hasher.Compare(password, user.Password) {
		return "", apperr.Auth(msgInvalidCredentials)
	}

	return s.issue(user.ID)
}

// Me returns the account for userID with the password hash cleared.
func (s *UserService) Me(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repomanager.Users(s.repomanager.Conn()).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, apperr.NotFound(msgUserNotFound)
		}
		return nil, apperr.Internal(fmt.Errorf("get user: %w", err))
	}
	user.Password = ""
	return user, nil
}

func (s *UserService) issue(userID string) (string, error) {
	token, err := s.tokens.Issue(userID)
	if err != nil {
		return "", apperr.Internal(fmt.Errorf("issue token: %w", err))
	}
	return token, nil
}

func (s *UserService) dummy() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash("contactkeeper-placeholder")
	})
	return s.dummyHash
}
