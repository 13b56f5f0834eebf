package engine

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"wellbeing/internal/account"
	"wellbeing/internal/session"
	"wellbeing/internal/storage"
)

// ErrNotLoggedIn is returned by operations that need an active account when
// the session pointer is missing or dangling.
var ErrNotLoggedIn = errors.New("not logged in")

// Service wires the account store, the session pointer and the progress
// operations together. All progress mutations funnel through
// ApplyToCurrentAccount.
type Service struct {
	db       *sql.DB
	accounts *account.Store
	sessions *session.Manager

	now func() time.Time

	subscribers []func()
}

func NewService(db *sql.DB) *Service {
	accounts := account.NewStore(db)
	return &Service{
		db:       db,
		accounts: accounts,
		sessions: session.NewManager(db, accounts),
		now:      time.Now,
	}
}

func (s *Service) Accounts() *account.Store   { return s.accounts }
func (s *Service) Sessions() *session.Manager { return s.sessions }

// Subscribe registers fn to run after every successful progress write.
// Dependent views re-render on notification instead of polling.
func (s *Service) Subscribe(fn func()) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *Service) notify() {
	for _, fn := range s.subscribers {
		fn()
	}
}

// Register creates an account and starts a session for it.
func (s *Service) Register(ctx context.Context, name, email, password string) (*account.Account, error) {
	acct, err := s.accounts.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Start(ctx, acct); err != nil {
		return nil, err
	}
	return acct, nil
}

// Login authenticates and starts a session.
func (s *Service) Login(ctx context.Context, email, password string) (*account.Account, error) {
	acct, err := s.accounts.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Start(ctx, acct); err != nil {
		return nil, err
	}
	return acct, nil
}

// Logout ends the session. Logging out while logged out is fine.
func (s *Service) Logout(ctx context.Context) error {
	return s.sessions.End(ctx)
}

// Current returns the active, normalized account, or nil when logged out.
func (s *Service) Current(ctx context.Context) (*account.Account, error) {
	return s.sessions.Current(ctx)
}

// ApplyToCurrentAccount resolves the session, normalizes the account and
// applies mutator to it, then persists the whole record and notifies
// subscribers. No-op (and no error) when logged out or when the pointer
// references a missing account.
func (s *Service) ApplyToCurrentAccount(ctx context.Context, mutator func(*account.Account)) error {
	ptr, err := s.sessions.Pointer(ctx)
	if err != nil {
		return err
	}
	if ptr == nil {
		return nil
	}
	applied := false
	err = s.accounts.Apply(ctx, ptr.Email, func(a *account.Account) {
		mutator(a)
		applied = true
	})
	if err != nil {
		return err
	}
	if applied {
		s.notify()
	}
	return nil
}

// requireCurrent is ApplyToCurrentAccount for operations that should tell the
// user to log in rather than silently do nothing.
func (s *Service) requireCurrent(ctx context.Context) (*account.Account, error) {
	acct, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, ErrNotLoggedIn
	}
	return acct, nil
}

// Reset clears every storage key unconditionally: accounts, session,
// reviews, pledges. Confirmation is the caller's job.
func (s *Service) Reset(ctx context.Context) error {
	if err := storage.NewKV(s.db).Clear(ctx); err != nil {
		return err
	}
	s.notify()
	return nil
}
