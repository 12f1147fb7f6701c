package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/contactkeeper/internal/client/api"
	"github.com/dmitrijs2005/contactkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/contactkeeper/internal/common"
)

// getSimpleText and getPassword are swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) Register(ctx context.Context, _ []string) error {
	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := a.client.Register(ctx, name, email, string(password))
	if err != nil {
		return err
	}
	return a.signIn(ctx, token)
}

func (a *App) Login(ctx context.Context, _ []string) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return err
	}
	return a.signIn(ctx, token)
}

// signIn saves a new token and loads its user.
func (a *App) signIn(ctx context.Context, token string) error {
	if err := a.store.Set(ctx, metadata.KeyToken, []byte(token)); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	a.session.SetToken(token)

	u, err := a.client.Me(ctx, token)
	if err != nil {
		return err
	}
	a.session.SetUser(u)

	printlnFn(successStyle.Render("Signed in as " + u.Name))
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	a.session.Clear()
	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	printlnFn(mutedStyle.Render("Logged out"))
	return nil
}

func (a *App) Me(ctx context.Context, _ []string) error {
	u, err := a.client.Me(ctx, a.session.Token())
	if err != nil {
		return a.handleAuthError(ctx, err)
	}
	a.session.SetUser(u)
	printlnFn(fmt.Sprintf("%s <%s>", u.Name, u.Email))
	printlnFn(mutedStyle.Render("id " + u.ID + ", registered " + u.CreatedAt.Format("2006-01-02")))
	return nil
}

// loadUser restores a token saved by an earlier run. A token the server
// rejects is removed from local storage.
func (a *App) loadUser(ctx context.Context) {
	token, err := a.store.Get(ctx, metadata.KeyToken)
	if err != nil {
		printlnFn(errorStyle.Render(err.Error()))
		return
	}
	if len(token) == 0 {
		return
	}

	a.session.StartLoading(string(token))

	u, err := a.client.Me(ctx, string(token))
	if err != nil {
		a.session.Clear()
		if errors.Is(err, api.ErrUnauthorized) || errors.Is(err, api.ErrNotFound) {
			_ = a.store.Delete(ctx, metadata.KeyToken)
			return
		}
		printlnFn(errorStyle.Render("Could not restore session: " + err.Error()))
		return
	}

	a.session.SetUser(u)
	printlnFn(mutedStyle.Render("Welcome back, " + u.Name))
}

// handleAuthError signs the session out when the server no longer accepts
// its token, and returns err for the REPL to print.
func (a *App) handleAuthError(ctx context.Context, err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		a.session.Clear()
		_ = a.store.Delete(ctx, metadata.KeyToken)
		return fmt.Errorf("%w, please log in again", err)
	}
	return err
}
