package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-backend/internal/domain"
)

func newTestJWTer() *JWTer {
	return &JWTer{Secret: []byte("super-secret"), Issuer: "todo-backend", TTL: time.Hour}
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	t.Parallel()
	j := newTestJWTer()

	tok, err := j.Issue("user-123")
	require.NoError(t, err)

	uid, err := j.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", uid)
}

func TestIssue_DefaultTTLIsSevenDays(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	j := &JWTer{Secret: []byte("k"), now: func() time.Time { return now }}

	tok, err := j.Issue("u1")
	require.NoError(t, err)

	c, err := j.Parse(tok)
	require.NoError(t, err)
	assert.True(t, now.Add(7*24*time.Hour).Equal(c.ExpiresAt.Time))
	assert.Equal(t, "u1", c.Subject)
}

func TestIssue_EmptyUserID(t *testing.T) {
	t.Parallel()
	_, err := newTestJWTer().Issue("")
	assert.Error(t, err)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()
	now := time.Now()
	j := newTestJWTer()
	j.now = func() time.Time { return now }

	tok, err := j.IssueWithTTL("u1", time.Minute)
	require.NoError(t, err)

	j.now = func() time.Time { return now.Add(3 * time.Minute) }
	_, err = j.Verify(tok)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()
	tok, err := newTestJWTer().Issue("u2")
	require.NoError(t, err)

	other := newTestJWTer()
	other.Secret = []byte("wrong-secret")
	_, err = other.Verify(tok)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestVerify_WrongIssuer(t *testing.T) {
	t.Parallel()
	tok, err := newTestJWTer().Issue("u2")
	require.NoError(t, err)

	other := newTestJWTer()
	other.Issuer = "someone-else"
	_, err = other.Verify(tok)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()
	_, err := newTestJWTer().Verify("not.a.jwt")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()
	j := newTestJWTer()
	claims := Claims{
		UID: "u3",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(j.Secret)
	require.NoError(t, err)

	_, err = j.Verify(tok)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestVerify_RequiresExpiry(t *testing.T) {
	t.Parallel()
	j := newTestJWTer()
	claims := Claims{UID: "u4", RegisteredClaims: jwt.RegisteredClaims{Issuer: j.Issuer}}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.Secret)
	require.NoError(t, err)

	_, err = j.Verify(tok)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
