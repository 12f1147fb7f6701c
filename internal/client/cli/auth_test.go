package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/contactkeeper/internal/client/api"
	"github.com/dmitrijs2005/contactkeeper/internal/client/models"
	"github.com/dmitrijs2005/contactkeeper/internal/client/repositories/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	capturePrint(t)
	stubPassword(t, "secret")
	f := &fakeAPI{token: "tok", user: &models.User{ID: "u1", Name: "Ann"}}
	store := newMemStore()
	a := newTestApp(f, store, "Ann\nann@example.org\n")

	require.NoError(t, a.Register(context.Background(), nil))

	assert.Equal(t, []string{"Ann", "ann@example.org", "secret"}, f.registered)
	assert.Equal(t, []byte("tok"), store.data[metadata.KeyToken])
	assert.True(t, a.session.IsAuthenticated())
	assert.Equal(t, "Ann", a.session.User().Name)
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		out := capturePrint(t)
		stubPassword(t, "secret")
		f := &fakeAPI{token: "tok", user: &models.User{ID: "u1", Name: "Ann"}}
		store := newMemStore()
		a := newTestApp(f, store, "ann@example.org\n")

		require.NoError(t, a.Login(context.Background(), nil))

		assert.Equal(t, "ann@example.org", f.loginEmail)
		assert.Equal(t, "secret", f.loginPassword)
		assert.Equal(t, "tok", a.session.Token())
		assert.Equal(t, "tok", f.lastToken)
		assert.Equal(t, []byte("tok"), store.data[metadata.KeyToken])
		assert.Contains(t, out.String(), "Signed in as Ann")
	})

	t.Run("invalid credentials", func(t *testing.T) {
		capturePrint(t)
		stubPassword(t, "wrong")
		f := &fakeAPI{loginErr: api.NewError(400, "Invalid credentials")}
		store := newMemStore()
		a := newTestApp(f, store, "ann@example.org\n")

		err := a.Login(context.Background(), nil)

		assert.ErrorIs(t, err, api.ErrBadRequest)
		assert.EqualError(t, err, "Invalid credentials")
		assert.False(t, a.session.IsAuthenticated())
		assert.Empty(t, store.data)
	})
}

func TestLogout(t *testing.T) {
	capturePrint(t)
	store := newMemStore()
	store.data[metadata.KeyToken] = []byte("tok")
	store.data["last_seen"] = []byte("2026-01-01")
	a := newTestApp(&fakeAPI{}, store, "")
	a.session.SetUser(&models.User{Name: "Ann"})

	require.NoError(t, a.Logout(context.Background(), nil))

	assert.False(t, a.session.IsAuthenticated())
	assert.Empty(t, store.data, "logout wipes every stored session key")
}

func TestLoadUser(t *testing.T) {
	ctx := context.Background()

	t.Run("no saved token", func(t *testing.T) {
		f := &fakeAPI{}
		a := newTestApp(f, newMemStore(), "")

		a.loadUser(ctx)

		assert.Zero(t, f.meCalls)
		assert.False(t, a.session.IsAuthenticated())
	})

	t.Run("valid token", func(t *testing.T) {
		capturePrint(t)
		f := &fakeAPI{user: &models.User{ID: "u1", Name: "Ann"}}
		store := newMemStore()
		store.data[metadata.KeyToken] = []byte("saved")
		a := newTestApp(f, store, "")

		a.loadUser(ctx)

		assert.Equal(t, "saved", f.lastToken)
		assert.True(t, a.session.IsAuthenticated())
		assert.False(t, a.session.Loading())
		assert.Equal(t, "Ann", a.status())
	})

	t.Run("rejected token is removed", func(t *testing.T) {
		f := &fakeAPI{meErr: errUnauthorized}
		store := newMemStore()
		store.data[metadata.KeyToken] = []byte("stale")
		a := newTestApp(f, store, "")

		a.loadUser(ctx)

		assert.False(t, a.session.IsAuthenticated())
		assert.False(t, a.session.Loading())
		assert.NotContains(t, store.data, metadata.KeyToken)
	})

	t.Run("server down keeps token", func(t *testing.T) {
		capturePrint(t)
		f := &fakeAPI{meErr: errors.Join(api.ErrUnavailable, errors.New("dial"))}
		store := newMemStore()
		store.data[metadata.KeyToken] = []byte("saved")
		a := newTestApp(f, store, "")

		a.loadUser(ctx)

		assert.False(t, a.session.IsAuthenticated())
		assert.Contains(t, store.data, metadata.KeyToken)
	})
}

func TestMe(t *testing.T) {
	out := capturePrint(t)
	f := &fakeAPI{user: &models.User{ID: "u1", Name: "Ann", Email: "ann@example.org"}}
	a := newTestApp(f, newMemStore(), "")
	a.session.SetToken("tok")

	require.NoError(t, a.Me(context.Background(), nil))

	assert.Contains(t, out.String(), "Ann <ann@example.org>")
}
