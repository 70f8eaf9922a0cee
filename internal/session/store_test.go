package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	assert.NoError(t, store.Save(ctx, "sid-1", 7, time.Hour))

	userID, err := store.Lookup(ctx, "sid-1")
	assert.NoError(t, err)
	assert.Equal(t, uint(7), userID)

	_, err = store.Lookup(ctx, "missing")
	assert.Equal(t, ErrNotFound, err)

	assert.NoError(t, store.Delete(ctx, "sid-1"))
	_, err = store.Lookup(ctx, "sid-1")
	assert.Equal(t, ErrNotFound, err)

	// Deleting an unknown session is not an error
	assert.NoError(t, store.Delete(ctx, "sid-1"))
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	assert.NoError(t, store.Save(ctx, "sid-short", 3, -time.Second))

	_, err := store.Lookup(ctx, "sid-short")
	assert.Equal(t, ErrNotFound, err)
}

func TestTokenService_IssueAndParse(t *testing.T) {
	ts := NewTokenService("test-secret")

	sessionID, token, err := ts.Issue(42, time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, sessionID)
	assert.NotEmpty(t, token)

	claims, err := ts.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, sessionID, claims.ID)
}

func TestTokenService_Parse_WrongSecret(t *testing.T) {
	_, token, err := NewTokenService("secret-a").Issue(42, time.Hour)
	assert.NoError(t, err)

	_, err = NewTokenService("secret-b").Parse(token)
	assert.Error(t, err)
}

func TestTokenService_Parse_Expired(t *testing.T) {
	ts := NewTokenService("test-secret")

	_, token, err := ts.Issue(42, -time.Minute)
	assert.NoError(t, err)

	_, err = ts.Parse(token)
	assert.Error(t, err)
}

func TestTokenService_Parse_Garbage(t *testing.T) {
	_, err := NewTokenService("test-secret").Parse("not-a-token")
	assert.Error(t, err)
}
