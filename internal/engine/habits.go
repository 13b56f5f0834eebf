package engine

import (
	"context"
	"fmt"

	"wellbeing/internal/account"
)

// ToggleHabit flips one day's mark on one habit. habit and day index into
// the habits list and the Sunday-first week respectively.
func (s *Service) ToggleHabit(ctx context.Context, habit, day int) error {
	acct, err := s.requireCurrent(ctx)
	if err != nil {
		return err
	}
	if habit < 0 || habit >= len(acct.Progress.Habits) {
		return fmt.Errorf("%w: no habit #%d", account.ErrValidation, habit)
	}
	if day < 0 || day > 6 {
		return fmt.Errorf("%w: day must be 0 (Sunday) through 6 (Saturday)", account.ErrValidation)
	}
	return s.ApplyToCurrentAccount(ctx, func(a *account.Account) {
		if habit >= len(a.Progress.Habits) {
			return
		}
		week := a.Progress.Habits[habit].Week
		if week[day] == 0 {
			week[day] = 1
		} else {
			week[day] = 0
		}
	})
}

// ResetHabitWeek zeroes every habit's week grid.
func (s *Service) ResetHabitWeek(ctx context.Context) error {
	if _, err := s.requireCurrent(ctx); err != nil {
		return err
	}
	return s.ApplyToCurrentAccount(ctx, func(a *account.Account) {
		for i := range a.Progress.Habits {
			a.Progress.Habits[i].Week = make([]int, 7)
		}
	})
}
