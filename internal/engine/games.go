package engine

import (
	"context"

	"wellbeing/internal/account"
)

// GameResult is the external plugin contract: any game can report a play
// into the active account's progress through RecordGameResult.
type GameResult struct {
	GameID     string `json:"gameId"`
	Name       string `json:"name,omitempty"`
	Count      int    `json:"count,omitempty"`
	BestTimeMs *int64 `json:"bestTimeMs,omitempty"`
	BestScore  *int   `json:"bestScore,omitempty"`
}

// RecordGameResult merges a result into gamesById and bumps the account
// gamesPlayed total by the same count. A result without a gameId is ignored.
// The stored name is only overwritten when the report supplies one; best
// time keeps the minimum seen and best score the maximum.
func (s *Service) RecordGameResult(ctx context.Context, res GameResult) error {
	if res.GameID == "" {
		return nil
	}
	count := res.Count
	if count <= 0 {
		count = 1
	}
	return s.ApplyToCurrentAccount(ctx, func(a *account.Account) {
		p := &a.Progress
		g, ok := p.GamesByID[res.GameID]
		if !ok {
			g = &account.GameStat{Name: res.GameID}
			p.GamesByID[res.GameID] = g
		}
		if res.Name != "" {
			g.Name = res.Name
		}
		g.Count += count
		if res.BestTimeMs != nil && (g.BestTimeMs == nil || *res.BestTimeMs < *g.BestTimeMs) {
			t := *res.BestTimeMs
			g.BestTimeMs = &t
		}
		if res.BestScore != nil && (g.BestScore == nil || *res.BestScore > *g.BestScore) {
			sc := *res.BestScore
			g.BestScore = &sc
		}
		p.GamesPlayed += count
	})
}

// ReactionResult reports a recorded reaction run.
type ReactionResult struct {
	Ms     int64
	BestMs int64
	Record bool // true when this run set a new personal best
}

// RecordReaction records one reaction-test run: bumps gamesPlayed, keeps the
// minimum as personal best and appends to the capped history.
func (s *Service) RecordReaction(ctx context.Context, ms int64) (*ReactionResult, error) {
	if _, err := s.requireCurrent(ctx); err != nil {
		return nil, err
	}
	res := &ReactionResult{Ms: ms}
	err := s.ApplyToCurrentAccount(ctx, func(a *account.Account) {
		p := &a.Progress
		p.GamesPlayed++
		if p.BestReactionMs == nil || ms < *p.BestReactionMs {
			best := ms
			p.BestReactionMs = &best
			res.Record = true
		}
		res.BestMs = *p.BestReactionMs
		p.ReactionHistoryMs = appendCapped(p.ReactionHistoryMs, ms)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// RecordGamePlayed bumps the gamesPlayed counter without per-game detail,
// the way the built-in typing and memory games report.
func (s *Service) RecordGamePlayed(ctx context.Context) error {
	return s.ApplyToCurrentAccount(ctx, func(a *account.Account) {
		a.Progress.GamesPlayed++
	})
}
