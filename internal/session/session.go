// Package session holds the current-user pointer for this machine. The
// pointer stores identity only ({email, name}); the full record always comes
// from the account store, so a stale pointer can never leak stale progress.
package session

import (
	"context"
	"database/sql"

	"wellbeing/internal/account"
	"wellbeing/internal/storage"
)

// Manager resolves the session pointer against the account store.
type Manager struct {
	db       *sql.DB
	accounts *account.Store
}

func NewManager(db *sql.DB, accounts *account.Store) *Manager {
	return &Manager{db: db, accounts: accounts}
}

// Start persists acct's identity as the active pointer.
func (m *Manager) Start(ctx context.Context, acct *account.Account) error {
	s := account.Session{Email: acct.Email, Name: acct.Name}
	return storage.NewKV(m.db).SetJSON(ctx, storage.KeySession, s)
}

// Pointer returns the raw session pointer, or nil when logged out.
func (m *Manager) Pointer(ctx context.Context) (*account.Session, error) {
	var s account.Session
	if err := storage.NewKV(m.db).GetJSON(ctx, storage.KeySession, &s); err != nil {
		return nil, err
	}
	if s.Email == "" {
		return nil, nil
	}
	return &s, nil
}

// Current resolves the pointer to a full, normalized account record. A
// missing pointer and a pointer referencing a deleted account both come back
// as nil: "session present but account not found" is logged out.
func (m *Manager) Current(ctx context.Context) (*account.Account, error) {
	s, err := m.Pointer(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	acct, err := m.accounts.FindByEmail(ctx, s.Email)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, nil
	}
	return account.Normalize(acct), nil
}

// End removes the pointer.
func (m *Manager) End(ctx context.Context) error {
	return storage.NewKV(m.db).Delete(ctx, storage.KeySession)
}
