package engine

import (
	"context"
	"time"

	"wellbeing/internal/account"
)

// Badge thresholds trigger on the streak hitting the value exactly, not "at
// least". A streak that jumps past a threshold does not earn the badge.
var streakBadges = map[int]string{
	3:  "3-day",
	7:  "7-day",
	14: "14-day",
}

// CheckInResult reports what a check-in changed.
type CheckInResult struct {
	Already   bool // already checked in today; nothing changed
	Streak    int
	NewBadges []string
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// CheckIn records today's check-in. Same calendar day as the last check-in
// is a no-op; a check-in the day after the last one extends the streak,
// anything else resets it to 1. Badges are added at exact streak thresholds
// and never removed.
func (s *Service) CheckIn(ctx context.Context) (*CheckInResult, error) {
	if _, err := s.requireCurrent(ctx); err != nil {
		return nil, err
	}
	now := s.now()
	res := &CheckInResult{}
	err := s.ApplyToCurrentAccount(ctx, func(a *account.Account) {
		c := a.Progress.Checkins
		if c.Last != nil && sameDay(time.UnixMilli(*c.Last), now) {
			res.Already = true
			res.Streak = c.Streak
			return
		}
		yesterday := now.AddDate(0, 0, -1)
		if c.Last != nil && sameDay(time.UnixMilli(*c.Last), yesterday) {
			c.Streak++
		} else {
			c.Streak = 1
		}
		last := now.UnixMilli()
		c.Last = &last
		res.Streak = c.Streak

		if name, ok := streakBadges[c.Streak]; ok && !containsString(c.Badges, name) {
			c.Badges = append(c.Badges, name)
			res.NewBadges = append(res.NewBadges, name)
		}
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func containsString(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

// SetWeeklyGoal updates the check-in weekly goal.
func (s *Service) SetWeeklyGoal(ctx context.Context, goal int) error {
	if goal <= 0 {
		goal = account.DefaultWeeklyGoal
	}
	return s.ApplyToCurrentAccount(ctx, func(a *account.Account) {
		a.Progress.Checkins.WeeklyGoal = goal
	})
}
