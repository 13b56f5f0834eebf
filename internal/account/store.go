package account

import (
	"context"
	"database/sql"
	"regexp"
	"strings"
	"time"

	"wellbeing/internal/storage"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail lowercases and trims an email. All lookups and the
// uniqueness check run over the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether email looks like an address at all.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Store holds the registered-accounts collection: a single JSON array under
// one storage key, read and written whole. Register, Authenticate and Apply
// are the only paths that touch it.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// List returns every registered account. Malformed stored data reads as an
// empty collection.
func (s *Store) List(ctx context.Context) ([]Account, error) {
	var accounts []Account
	if err := storage.NewKV(s.db).GetJSON(ctx, storage.KeyUsers, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// FindByEmail returns the account with the given email, or nil if no such
// account exists.
func (s *Store) FindByEmail(ctx context.Context, email string) (*Account, error) {
	accounts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	email = NormalizeEmail(email)
	for i := range accounts {
		if NormalizeEmail(accounts[i].Email) == email {
			return &accounts[i], nil
		}
	}
	return nil, nil
}

// Register creates an account with empty progress. It fails with
// ErrDuplicateEmail when the normalized email is already taken.
func (s *Store) Register(ctx context.Context, name, email, password string) (*Account, error) {
	email = NormalizeEmail(email)

	var created *Account
	err := storage.WithTx(ctx, s.db, func(tx storage.DBTX) error {
		kv := storage.NewKV(tx)
		var accounts []Account
		if err := kv.GetJSON(ctx, storage.KeyUsers, &accounts); err != nil {
			return err
		}
		for i := range accounts {
			if NormalizeEmail(accounts[i].Email) == email {
				return ErrDuplicateEmail
			}
		}
		acct := Account{
			Name:         strings.TrimSpace(name),
			Email:        email,
			PasswordHash: Checksum(password),
			CreatedAt:    time.Now().UnixMilli(),
		}
		Normalize(&acct)
		accounts = append(accounts, acct)
		if err := kv.SetJSON(ctx, storage.KeyUsers, accounts); err != nil {
			return err
		}
		created = &acct
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Authenticate matches the normalized email and the password checksum
// together. Unknown email and wrong password both come back as
// ErrInvalidCredentials.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*Account, error) {
	accounts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	email = NormalizeEmail(email)
	sum := Checksum(password)
	for i := range accounts {
		if NormalizeEmail(accounts[i].Email) == email && accounts[i].PasswordHash == sum {
			return &accounts[i], nil
		}
	}
	return nil, ErrInvalidCredentials
}

// Apply runs the read-modify-write cycle for one account inside a
// transaction: read the collection, normalize the matching record, hand it to
// mutator, write the whole collection back. A missing account is a no-op.
// This is the only sanctioned write path for progress.
func (s *Store) Apply(ctx context.Context, email string, mutator func(*Account)) error {
	email = NormalizeEmail(email)
	return storage.WithTx(ctx, s.db, func(tx storage.DBTX) error {
		kv := storage.NewKV(tx)
		var accounts []Account
		if err := kv.GetJSON(ctx, storage.KeyUsers, &accounts); err != nil {
			return err
		}
		for i := range accounts {
			if NormalizeEmail(accounts[i].Email) != email {
				continue
			}
			Normalize(&accounts[i])
			mutator(&accounts[i])
			return kv.SetJSON(ctx, storage.KeyUsers, accounts)
		}
		return nil
	})
}
