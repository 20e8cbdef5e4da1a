// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hypehub/api/internal/platform/apperr"
	"github.com/hypehub/api/internal/platform/sec"
	"github.com/hypehub/api/pkg/uuid"
)

// # In-memory Identity Store

type memoryStore struct {
	mu        sync.Mutex
	accounts  map[string]Account
	passwords map[string]string
	roles     map[string][]string
	updates   int
	failWith  error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		accounts:  make(map[string]Account),
		passwords: make(map[string]string),
		roles:     make(map[string][]string),
	}
}

// seed inserts an account with a bcrypt hash of password.
func (store *memoryStore) seed(t *testing.T, username, email, password string, roles ...string) Account {
	t.Helper()
	hash, err := sec.HashPassword(password)
	require.NoError(t, err)

	account := Account{ID: uuid.New(), Username: username, Email: email, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	require.NoError(t, store.Create(context.Background(), &account, hash, roles))
	return account
}

// get returns a copy of the stored account.
func (store *memoryStore) get(id string) Account {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.accounts[id]
}

func (store *memoryStore) find(match func(Account) bool) (*Account, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.failWith != nil {
		return nil, store.failWith
	}
	for _, account := range store.accounts {
		if match(account) {
			found := account
			return &found, nil
		}
	}
	return nil, apperr.NotFound(accountNotFound)
}

func (store *memoryStore) FindByID(_ context.Context, id string) (*Account, error) {
	return store.find(func(account Account) bool { return account.ID == id })
}

func (store *memoryStore) FindByEmail(_ context.Context, email string) (*Account, error) {
	return store.find(func(account Account) bool { return strings.EqualFold(account.Email, email) })
}

func (store *memoryStore) FindByUsername(_ context.Context, username string) (*Account, error) {
	return store.find(func(account Account) bool { return strings.EqualFold(account.Username, username) })
}

func (store *memoryStore) FindByRefreshToken(_ context.Context, fingerprint string, now time.Time) (*Account, error) {
	return store.find(func(account Account) bool {
		return account.RefreshTokenHash != nil && *account.RefreshTokenHash == fingerprint &&
			account.RefreshTokenExpiresAt != nil && account.RefreshTokenExpiresAt.After(now)
	})
}

func (store *memoryStore) CheckPassword(_ context.Context, accountID, password string) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	hash, ok := store.passwords[accountID]
	if !ok {
		return false, apperr.NotFound(accountNotFound)
	}
	return sec.CheckPasswordHash(password, hash), nil
}

func (store *memoryStore) GetRoles(_ context.Context, accountID string) ([]string, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	roles := append([]string{}, store.roles[accountID]...)
	sort.Strings(roles)
	return roles, nil
}

func (store *memoryStore) Update(_ context.Context, account *Account) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.accounts[account.ID]; !ok {
		return apperr.NotFound(accountNotFound)
	}
	store.accounts[account.ID] = *account
	store.updates++
	return nil
}

func (store *memoryStore) Create(_ context.Context, account *Account, passwordHash string, roles []string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, existing := range store.accounts {
		if strings.EqualFold(existing.Username, account.Username) || strings.EqualFold(existing.Email, account.Email) {
			return apperr.Conflict("A record with the same value already exists.")
		}
	}
	store.accounts[account.ID] = *account
	store.passwords[account.ID] = passwordHash
	store.roles[account.ID] = append([]string{}, roles...)
	return nil
}

func (store *memoryStore) delete(id string) {
	store.mu.Lock()
	defer store.mu.Unlock()
	delete(store.accounts, id)
}

// # Fixtures

var (
	testKeyOnce sync.Once
	testKey     *rsa.PrivateKey
)

func newTestTokens(t *testing.T) *sec.TokenService {
	t.Helper()
	testKeyOnce.Do(func() {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			panic(err)
		}
		testKey = key
	})
	return sec.NewTokenServiceFromKeys(testKey, &testKey.PublicKey, "hypehub.test")
}

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

type fixture struct {
	store   *memoryStore
	tokens  *sec.TokenService
	clock   *clock
	service *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := newMemoryStore()
	tokens := newTestTokens(t)
	fakeClock := &clock{now: time.Now().UTC().Truncate(time.Second)}

	service := NewService(store, tokens, Config{
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	})
	service.now = fakeClock.Now

	return &fixture{store: store, tokens: tokens, clock: fakeClock, service: service}
}

var errStoreDown = errors.New("connection refused")
