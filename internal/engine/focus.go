package engine

import (
	"context"

	"wellbeing/internal/account"
)

const (
	FocusMinMinutes     = 1
	FocusMaxMinutes     = 120
	FocusDefaultMinutes = 25
)

// ClampFocusMinutes folds any requested duration into the allowed window.
// Zero or negative input falls back to the default session length.
func ClampFocusMinutes(minutes int) int {
	if minutes <= 0 {
		minutes = FocusDefaultMinutes
	}
	if minutes < FocusMinMinutes {
		return FocusMinMinutes
	}
	if minutes > FocusMaxMinutes {
		return FocusMaxMinutes
	}
	return minutes
}

// LogFocus appends a completed focus session to the capped log.
func (s *Service) LogFocus(ctx context.Context, minutes int) error {
	if _, err := s.requireCurrent(ctx); err != nil {
		return err
	}
	minutes = ClampFocusMinutes(minutes)
	return s.ApplyToCurrentAccount(ctx, func(a *account.Account) {
		a.Progress.FocusLogs = appendCapped(a.Progress.FocusLogs, account.FocusLog{
			Minutes: minutes,
			At:      s.now().UnixMilli(),
		})
	})
}
