package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-sync/models"
)

func newTestMemory() *MemoryStorage {
	m := NewMemoryStorage()
	m.now = func() time.Time { return fixedNow }
	return m
}

func TestMemoryStorage_CreateAndFind(t *testing.T) {
	m := newTestMemory()
	ctx := context.Background()

	created, err := m.CreateUser(ctx, models.User{UserID: "u-1", Username: "alice", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Equal(t, fixedNow.UTC(), created.CreatedAt)
	assert.Nil(t, created.EncryptedVault)

	found, err := m.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestMemoryStorage_DuplicateUsername(t *testing.T) {
	m := newTestMemory()
	ctx := context.Background()

	_, err := m.CreateUser(ctx, models.User{UserID: "u-1", Username: "alice"})
	require.NoError(t, err)

	_, err = m.CreateUser(ctx, models.User{UserID: "u-2", Username: "alice"})
	require.ErrorIs(t, err, ErrUsernameAlreadyExists)

	_, err = m.FindUserByUsername(ctx, "Alice")
	require.ErrorIs(t, err, ErrNoUserWasFound, "usernames are case-sensitive")
}

// TestMemoryStorage_VaultLifecycle verifies null before the first save and
// last-write-wins afterwards.
func TestMemoryStorage_VaultLifecycle(t *testing.T) {
	m := newTestMemory()
	ctx := context.Background()
	_, err := m.CreateUser(ctx, models.User{UserID: "u-1", Username: "alice"})
	require.NoError(t, err)

	got, err := m.GetEncryptedVault(ctx, "u-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, m.SetEncryptedVault(ctx, "u-1", "first"))
	require.NoError(t, m.SetEncryptedVault(ctx, "u-1", "second"))

	got, err = m.GetEncryptedVault(ctx, "u-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "second", *got)
}

func TestMemoryStorage_UnknownUser(t *testing.T) {
	m := newTestMemory()
	ctx := context.Background()

	_, err := m.GetEncryptedVault(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNoUserWasFound)

	err = m.SetEncryptedVault(ctx, "nobody", "x")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

// TestMemoryStorage_ReturnsCopies verifies callers cannot mutate stored state
// through returned pointers.
func TestMemoryStorage_ReturnsCopies(t *testing.T) {
	m := newTestMemory()
	ctx := context.Background()
	_, err := m.CreateUser(ctx, models.User{UserID: "u-1", Username: "alice"})
	require.NoError(t, err)
	require.NoError(t, m.SetEncryptedVault(ctx, "u-1", "stored"))

	got, err := m.GetEncryptedVault(ctx, "u-1")
	require.NoError(t, err)
	*got = "mutated"

	user, err := m.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "stored", *user.EncryptedVault)
}

func TestMemoryStorage_ConcurrentWriters(t *testing.T) {
	m := newTestMemory()
	ctx := context.Background()
	_, err := m.CreateUser(ctx, models.User{UserID: "u-1", Username: "alice"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = m.SetEncryptedVault(ctx, "u-1", fmt.Sprintf("v%d", i))
			_, _ = m.GetEncryptedVault(ctx, "u-1")
		}(i)
	}
	wg.Wait()

	got, err := m.GetEncryptedVault(ctx, "u-1")
	require.NoError(t, err)
	assert.Regexp(t, `^v\d+$`, *got)
	assert.NoError(t, m.Ping(ctx))
}
