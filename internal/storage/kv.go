package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// Storage keys. Each holds one independently serialized collection;
// there is no cross-key transactionality except the full wipe.
const (
	KeyUsers        = "dw_users"
	KeySession      = "dw_session_user"
	KeyReviews      = "dw_reviews"
	KeyPledgePhotos = "dw_pledges"
	KeyUserPledges  = "dw_user_pledges"
)

// KV reads and writes JSON documents in the kv table. It is bound to a DBTX
// so the same code serves both plain reads and transactional cycles.
type KV struct {
	db DBTX
}

func NewKV(db DBTX) *KV {
	return &KV{db: db}
}

// GetJSON unmarshals the document stored under key into dest. A missing key
// or malformed document leaves dest untouched and returns nil: stored state
// that cannot be read is treated as empty, never surfaced.
func (k *KV) GetJSON(ctx context.Context, key string, dest any) error {
	row := k.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("kv get %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return nil
	}
	return nil
}

// SetJSON serializes v and upserts it under key.
func (k *KV) SetJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("kv marshal %s: %w", key, err)
	}
	_, err = k.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, string(raw))
	if err != nil {
		return fmt.Errorf("kv set %s: %w", key, err)
	}
	return nil
}

// Delete removes a single key. Deleting an absent key is not an error.
func (k *KV) Delete(ctx context.Context, key string) error {
	if _, err := k.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("kv delete %s: %w", key, err)
	}
	return nil
}

// Clear wipes every key in one statement: accounts, session, reviews and
// pledges all go together.
func (k *KV) Clear(ctx context.Context) error {
	if _, err := k.db.ExecContext(ctx, `DELETE FROM kv`); err != nil {
		return fmt.Errorf("kv clear: %w", err)
	}
	return nil
}
