package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coffeeshop/pkg/account"
)

func TestNew(t *testing.T) {
	s := New(account.Account{ID: 5, FirstName: "Ada", Email: "ada@coffee.com", IsAdmin: true})
	require.NotEmpty(t, s.ID)
	assert.Equal(t, int64(5), s.AccountID)
	assert.True(t, s.IsAdmin)
	assert.Zero(t, s.Cart.Len())

	other := New(account.Account{ID: 5})
	assert.NotEqual(t, s.ID, other.ID)
}

func TestContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	s := New(account.Account{ID: 1})
	got, ok := FromContext(WithSession(context.Background(), s))
	require.True(t, ok)
	assert.Same(t, s, got)
}
