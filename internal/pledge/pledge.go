// Package pledge implements the pledge-commitment collection and the pledge
// photo gallery. Commitments are keyed by user email and catalog pledge ID;
// archiving frees a pledge to be committed again.
package pledge

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"wellbeing/internal/account"
	"wellbeing/internal/storage"
)

// Commitment statuses.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusArchived  = "archived"
)

// Commitment is one user's commitment to a catalog pledge.
type Commitment struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"` // account email
	UserName    string `json:"userName"`
	PledgeID    string `json:"pledgeId"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	CommittedAt int64  `json:"committedAt"`
	CompletedAt *int64 `json:"completedAt"`
}

// ActiveDays is how many days the commitment has been running, 1-based.
func (c Commitment) ActiveDays(now time.Time) int {
	return int(now.Sub(time.UnixMilli(c.CommittedAt)).Hours()/24) + 1
}

// Store reads and writes the commitment collection.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

func (s *Store) load(ctx context.Context, kv *storage.KV) ([]Commitment, error) {
	var cs []Commitment
	if err := kv.GetJSON(ctx, storage.KeyUserPledges, &cs); err != nil {
		return nil, err
	}
	return cs, nil
}

// Commit records commitments to the given catalog pledge IDs for acct.
// Pledges the user already holds (non-archived) are skipped, unknown IDs are
// rejected. Returns how many commitments were actually created.
func (s *Store) Commit(ctx context.Context, acct *account.Account, pledgeIDs []string) (int, error) {
	if len(pledgeIDs) == 0 {
		return 0, fmt.Errorf("%w: select at least one pledge", account.ErrValidation)
	}
	for _, id := range pledgeIDs {
		if Find(id) == nil {
			return 0, fmt.Errorf("%w: unknown pledge %q", account.ErrValidation, id)
		}
	}

	created := 0
	err := storage.WithTx(ctx, s.db, func(tx storage.DBTX) error {
		kv := storage.NewKV(tx)
		cs, err := s.load(ctx, kv)
		if err != nil {
			return err
		}
		ts := s.now().UnixMilli()
		for _, id := range pledgeIDs {
			if hasCommitment(cs, acct.Email, id) {
				continue
			}
			p := Find(id)
			cs = append(cs, Commitment{
				ID:          fmt.Sprintf("%s-%s-%d", acct.Email, id, ts),
				UserID:      acct.Email,
				UserName:    acct.Name,
				PledgeID:    id,
				Title:       p.Title,
				Icon:        p.Icon,
				Description: p.Description,
				Category:    p.Category,
				Status:      StatusActive,
				CommittedAt: ts,
			})
			created++
		}
		if created == 0 {
			return nil
		}
		return kv.SetJSON(ctx, storage.KeyUserPledges, cs)
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

func hasCommitment(cs []Commitment, email, pledgeID string) bool {
	for _, c := range cs {
		if c.UserID == email && c.PledgeID == pledgeID && c.Status != StatusArchived {
			return true
		}
	}
	return false
}

// Mine returns the user's non-archived commitments: active first, then
// completed, newest first within each group.
func (s *Store) Mine(ctx context.Context, email string) ([]Commitment, error) {
	cs, err := s.load(ctx, storage.NewKV(s.db))
	if err != nil {
		return nil, err
	}
	var mine []Commitment
	for _, c := range cs {
		if c.UserID == email && c.Status != StatusArchived {
			mine = append(mine, c)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool {
		if (mine[i].Status == StatusCompleted) != (mine[j].Status == StatusCompleted) {
			return mine[i].Status != StatusCompleted
		}
		return mine[i].CommittedAt > mine[j].CommittedAt
	})
	return mine, nil
}

// Complete marks a commitment completed.
func (s *Store) Complete(ctx context.Context, email, commitmentID string) error {
	return s.setStatus(ctx, email, commitmentID, StatusCompleted)
}

// Archive hides a commitment; the catalog pledge becomes selectable again.
func (s *Store) Archive(ctx context.Context, email, commitmentID string) error {
	return s.setStatus(ctx, email, commitmentID, StatusArchived)
}

func (s *Store) setStatus(ctx context.Context, email, commitmentID, status string) error {
	return storage.WithTx(ctx, s.db, func(tx storage.DBTX) error {
		kv := storage.NewKV(tx)
		cs, err := s.load(ctx, kv)
		if err != nil {
			return err
		}
		for i := range cs {
			if cs[i].ID != commitmentID || cs[i].UserID != email {
				continue
			}
			cs[i].Status = status
			if status == StatusCompleted {
				done := s.now().UnixMilli()
				cs[i].CompletedAt = &done
			}
			return kv.SetJSON(ctx, storage.KeyUserPledges, cs)
		}
		return fmt.Errorf("%w: no such pledge commitment", account.ErrValidation)
	})
}
