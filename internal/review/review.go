// Package review holds the site-wide reviews collection. Reviews are not
// account progress: they live under their own storage key and survive
// logout, but posting one requires an active session.
package review

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"wellbeing/internal/account"
	"wellbeing/internal/storage"
)

// ListLimit caps how many reviews List returns, newest first.
const ListLimit = 12

// Review is one posted review.
type Review struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
	At     int64  `json:"t"`
}

// Store reads and writes the reviews collection.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Add appends a review. Rating must be 1-5 and the comment non-empty.
func (s *Store) Add(ctx context.Context, name string, rating int, text string) (*Review, error) {
	text = strings.TrimSpace(text)
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be 1-5", account.ErrValidation)
	}
	if text == "" {
		return nil, fmt.Errorf("%w: a short comment is required", account.ErrValidation)
	}
	if name == "" {
		name = "Anonymous"
	}
	r := Review{
		ID:     uuid.NewString(),
		Name:   name,
		Rating: rating,
		Text:   text,
		At:     time.Now().UnixMilli(),
	}
	err := storage.WithTx(ctx, s.db, func(tx storage.DBTX) error {
		kv := storage.NewKV(tx)
		var reviews []Review
		if err := kv.GetJSON(ctx, storage.KeyReviews, &reviews); err != nil {
			return err
		}
		reviews = append(reviews, r)
		return kv.SetJSON(ctx, storage.KeyReviews, reviews)
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// List returns the last ListLimit reviews, most recent first.
func (s *Store) List(ctx context.Context) ([]Review, error) {
	var reviews []Review
	if err := storage.NewKV(s.db).GetJSON(ctx, storage.KeyReviews, &reviews); err != nil {
		return nil, err
	}
	if len(reviews) > ListLimit {
		reviews = reviews[len(reviews)-ListLimit:]
	}
	// newest first
	out := make([]Review, 0, len(reviews))
	for i := len(reviews) - 1; i >= 0; i-- {
		out = append(out, reviews[i])
	}
	return out, nil
}
