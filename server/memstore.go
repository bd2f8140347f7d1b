package server

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"

	core "git.greysoh.dev/imterah/worldsockd/commons"
	"git.greysoh.dev/imterah/worldsockd/status"
)

// MemoryAccounts is an AccountStore backed by a map keyed by realm join ticket.
type MemoryAccounts struct {
	lock     sync.RWMutex
	accounts map[string]*GameAccount
}

func NewMemoryAccounts(accounts ...*GameAccount) *MemoryAccounts {
	store := &MemoryAccounts{
		accounts: make(map[string]*GameAccount),
	}

	for _, account := range accounts {
		store.Add(account)
	}

	return store
}

// Add registers account under its name, replacing any account with the same name.
func (store *MemoryAccounts) Add(account *GameAccount) {
	store.lock.Lock()
	defer store.lock.Unlock()

	stored := *account
	stored.KeyData = bytes.Clone(account.KeyData)

	store.accounts[account.Name] = &stored
}

func (store *MemoryAccounts) LookupGameAccount(ctx context.Context, realmJoinTicket string) (*GameAccount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	store.lock.RLock()
	defer store.lock.RUnlock()

	account, ok := store.accounts[realmJoinTicket]

	if !ok {
		return nil, fmt.Errorf("no game account for ticket '%s': %w", realmJoinTicket, status.Denied)
	}

	found := *account
	found.KeyData = bytes.Clone(account.KeyData)

	return &found, nil
}

type storedSession struct {
	account    GameAccount
	sessionKey []byte
}

// MemorySessions is a SessionStore kept in process memory. Continuation keys survive
// until Forget is called or the process exits.
type MemorySessions struct {
	lock     sync.Mutex
	sessions map[uint64]*storedSession
}

func NewMemorySessions() *MemorySessions {
	return &MemorySessions{
		sessions: make(map[uint64]*storedSession),
	}
}

func (store *MemorySessions) Issue(ctx context.Context, account *GameAccount, sessionKey []byte) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	random := make([]byte, 4)

	if _, err := rand.Read(random); err != nil {
		return 0, err
	}

	key := core.PackConnectToKey(account.ID, core.ConnectionTypeRealm, binary.LittleEndian.Uint32(random)&0x7FFFFFFF)

	stored := &storedSession{
		account:    *account,
		sessionKey: bytes.Clone(sessionKey),
	}

	stored.account.KeyData = nil

	store.lock.Lock()
	defer store.lock.Unlock()

	if previous, ok := store.sessions[key]; ok {
		clear(previous.sessionKey)
	}

	store.sessions[key] = stored
	return key, nil
}

func (store *MemorySessions) Resume(ctx context.Context, key uint64) (*GameAccount, []byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	store.lock.Lock()
	defer store.lock.Unlock()

	stored, ok := store.sessions[key]

	if !ok {
		return nil, nil, fmt.Errorf("no session for continuation key 0x%016X: %w", key, status.SessionNotFound)
	}

	account := stored.account
	return &account, bytes.Clone(stored.sessionKey), nil
}

// Forget drops the session for key and wipes its session key.
func (store *MemorySessions) Forget(key uint64) {
	store.lock.Lock()
	defer store.lock.Unlock()

	if stored, ok := store.sessions[key]; ok {
		clear(stored.sessionKey)
		delete(store.sessions, key)
	}
}
