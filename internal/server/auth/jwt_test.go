package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	iss := NewIssuer([]byte("secret"), time.Hour)

	tok, err := iss.Issue("user-1")
	require.NoError(t, err)

	id, err := iss.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
}

func TestIssue_PayloadShape(t *testing.T) {
	iss := NewIssuer([]byte("secret"), 100*time.Hour)

	tok, err := iss.Issue("abc")
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var payload struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
		Iat int64 `json:"iat"`
		Exp int64 `json:"exp"`
	}
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, "abc", payload.User.ID)
	assert.Equal(t, int64(360000), payload.Exp-payload.Iat)
}

func TestVerify_Expired(t *testing.T) {
	iss := NewIssuer([]byte("secret"), time.Hour)
	start := time.Now()
	iss.now = func() time.Time { return start }

	tok, err := iss.Issue("u1")
	require.NoError(t, err)

	iss.now = func() time.Time { return start.Add(2 * time.Hour) }
	_, err = iss.Verify(tok)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestVerify_Invalid(t *testing.T) {
	iss := NewIssuer([]byte("right"), time.Hour)
	other := NewIssuer([]byte("wrong"), time.Hour)

	foreign, err := other.Issue("u1")
	require.NoError(t, err)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("right"))
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{User: ClaimsUser{ID: "u1"}}).SignedString([]byte("right"))
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		User:             ClaimsUser{ID: "u1"},
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("right"))
	require.NoError(t, err)

	tests := map[string]string{
		"wrong secret":   foreign,
		"garbage":        "not-a-token",
		"empty":          "",
		"no user id":     noUser,
		"no expiry":      noExp,
		"other hmac alg": hs512,
	}
	for name, tok := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := iss.Verify(tok)
			assert.ErrorIs(t, err, common.ErrInvalidToken)
		})
	}
}
