package account

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNormalizeFillsEmptyRecord(t *testing.T) {
	var a Account
	Normalize(&a)

	p := a.Progress
	if p.ReactionHistoryMs == nil || p.QuizScores == nil || p.QuizScoresPct == nil || p.QuizHistory == nil || p.FocusLogs == nil {
		t.Fatalf("expected empty slices, got nils: %+v", p)
	}
	if p.GamesByID == nil {
		t.Fatalf("gamesById nil")
	}
	if p.Checkins == nil || p.Checkins.WeeklyGoal != DefaultWeeklyGoal || p.Checkins.Badges == nil {
		t.Fatalf("checkins=%+v, want defaults", p.Checkins)
	}
	if p.Checkins.Last != nil {
		t.Fatalf("last check-in=%v, want unset", p.Checkins.Last)
	}
	if len(p.Habits) != 3 {
		t.Fatalf("habits=%d, want 3 defaults", len(p.Habits))
	}
	for _, h := range p.Habits {
		if len(h.Week) != 7 {
			t.Fatalf("habit %q week len=%d, want 7", h.Name, len(h.Week))
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	// Records shaped like every schema generation, including a legacy one
	// with junk values.
	neg := int64(-5)
	records := []Account{
		{},
		{Name: "Old", Email: "old@example.com", Progress: Progress{
			GamesPlayed:    -2,
			BestReactionMs: &neg,
			GamesByID:      map[string]*GameStat{"memory": nil, "typing": {Count: -1}},
			Habits:         []Habit{{Name: "Short week", Week: []int{1, 0}}, {Name: "Junk marks", Week: []int{0, 2, 0, 0, 9, 0, 1}}},
		}},
		{Name: "Current", Email: "cur@example.com", Progress: Progress{
			GamesPlayed: 7, QuizzesTaken: 2, QuizScores: []int{9, 12},
		}},
	}

	for i, rec := range records {
		Normalize(&rec)
		once, err := json.Marshal(rec)
		if err != nil {
			t.Fatalf("marshal #%d: %v", i, err)
		}
		Normalize(&rec)
		twice, err := json.Marshal(rec)
		if err != nil {
			t.Fatalf("marshal #%d again: %v", i, err)
		}
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("record #%d not idempotent:\nonce:  %s\ntwice: %s", i, once, twice)
		}
	}
}

func TestNormalizeRepairsLegacyValues(t *testing.T) {
	neg := int64(-100)
	a := Account{Progress: Progress{
		GamesPlayed:    -3,
		QuizzesTaken:   -1,
		BestReactionMs: &neg,
		GamesByID:      map[string]*GameStat{"memory": nil},
		Habits: []Habit{
			{Name: "Short", Week: []int{1, 1}},
			{Name: "Junk", Week: []int{0, 3, 0, 0, 0, 0, -1}},
		},
	}}
	Normalize(&a)

	p := a.Progress
	if p.GamesPlayed != 0 || p.QuizzesTaken != 0 {
		t.Fatalf("negative counters survived: %+v", p)
	}
	if p.BestReactionMs != nil {
		t.Fatalf("negative best survived: %v", *p.BestReactionMs)
	}
	g := p.GamesByID["memory"]
	if g == nil || g.Name != "memory" {
		t.Fatalf("nil stat not repaired: %+v", g)
	}
	if got := p.Habits[0].Week; len(got) != 7 || got[0] != 1 || got[1] != 1 || got[2] != 0 {
		t.Fatalf("short week not padded: %v", got)
	}
	if got := p.Habits[1].Week; got[1] != 1 || got[6] != 1 {
		t.Fatalf("junk marks not coerced to 1: %v", got)
	}
}

func TestNormalizeKeepsExistingHabits(t *testing.T) {
	a := Account{Progress: Progress{
		Habits: []Habit{{Name: "My own habit", Week: []int{0, 1, 0, 1, 0, 1, 0}}},
	}}
	Normalize(&a)
	if len(a.Progress.Habits) != 1 || a.Progress.Habits[0].Name != "My own habit" {
		t.Fatalf("existing habits replaced: %+v", a.Progress.Habits)
	}
}
