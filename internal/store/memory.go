package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-sync/models"
)

// MemoryStorage keeps accounts in a map. It implements [UserRepository],
// [VaultStore] and [Pinger] and is meant for development and tests: data is
// lost when the process exits.
type MemoryStorage struct {
	mu         sync.RWMutex
	byID       map[string]*models.User
	byUsername map[string]string
	now        func() time.Time
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		byID:       make(map[string]*models.User),
		byUsername: make(map[string]string),
		now:        time.Now,
	}
}

func (m *MemoryStorage) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.byUsername[user.Username]; taken {
		return models.User{}, ErrUsernameAlreadyExists
	}
	if _, taken := m.byID[user.UserID]; taken {
		return models.User{}, ErrUsernameAlreadyExists
	}

	user.CreatedAt = m.now().UTC()
	user.EncryptedVault = nil

	stored := user
	m.byID[user.UserID] = &stored
	m.byUsername[user.Username] = user.UserID

	return user, nil
}

func (m *MemoryStorage) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byUsername[username]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	user := *m.byID[id]
	user.EncryptedVault = copyString(user.EncryptedVault)
	return user, nil
}

func (m *MemoryStorage) GetEncryptedVault(_ context.Context, userID string) (*string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.byID[userID]
	if !ok {
		return nil, ErrNoUserWasFound
	}
	return copyString(user.EncryptedVault), nil
}

func (m *MemoryStorage) SetEncryptedVault(_ context.Context, userID string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.byID[userID]
	if !ok {
		return ErrNoUserWasFound
	}
	user.EncryptedVault = &value
	return nil
}

// Ping implements [Pinger]. The map is always reachable.
func (m *MemoryStorage) Ping(context.Context) error {
	return nil
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
