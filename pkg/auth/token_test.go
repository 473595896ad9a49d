package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coffeeshop/pkg/account"
	"coffeeshop/pkg/session"
)

func TestIssueVerify(t *testing.T) {
	m := NewManager("s3cret", time.Hour)
	s := session.New(account.Account{ID: 12, IsAdmin: true})

	token, expires, err := m.Issue(s)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, time.Minute)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, s.ID, claims.SessionID())
	assert.True(t, claims.Admin)
	id, err := claims.AccountID()
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
}

func TestVerifyRejects(t *testing.T) {
	m := NewManager("s3cret", time.Hour)
	s := session.New(account.Account{ID: 1})
	token, _, err := m.Issue(s)
	require.NoError(t, err)

	_, err = NewManager("other", time.Hour).Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.Verify("")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.Verify("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)

	expired := NewManager("s3cret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _, err := expired.Issue(s)
	require.NoError(t, err)
	_, err = m.Verify(old)
	require.ErrorIs(t, err, ErrInvalidToken)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{RegisteredClaims: jwt.RegisteredClaims{ID: "x", Subject: "1", Issuer: issuer}})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = m.Verify(unsigned)
	require.ErrorIs(t, err, ErrInvalidToken)
}
