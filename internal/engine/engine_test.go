package engine

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"wellbeing/internal/account"
	"wellbeing/internal/storage"
)

func newTestService(t *testing.T) (*Service, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	svc := NewService(db)
	cleanup := func() {
		_ = db.Close()
	}
	return svc, cleanup
}

func registerTestUser(t *testing.T, svc *Service) *account.Account {
	t.Helper()
	acct, err := svc.Register(context.Background(), "Mia", "mia@example.com", "secret1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return acct
}

func TestRequireLogin(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.RecordReaction(ctx, 300); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("RecordReaction logged out: err=%v, want ErrNotLoggedIn", err)
	}
	if _, err := svc.CheckIn(ctx); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("CheckIn logged out: err=%v, want ErrNotLoggedIn", err)
	}
	if err := svc.LogFocus(ctx, 25); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("LogFocus logged out: err=%v, want ErrNotLoggedIn", err)
	}
	// Anonymous per-game reporting is a silent no-op, not an error.
	if err := svc.RecordGameResult(ctx, GameResult{GameID: "memory"}); err != nil {
		t.Fatalf("RecordGameResult logged out: %v", err)
	}
}

func TestReactionHistoryCap(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	registerTestUser(t, svc)

	for i := 0; i < HistoryCap+5; i++ {
		if _, err := svc.RecordReaction(ctx, int64(1000-i)); err != nil {
			t.Fatalf("record reaction #%d: %v", i, err)
		}
	}

	acct, err := svc.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	hist := acct.Progress.ReactionHistoryMs
	if len(hist) != HistoryCap {
		t.Fatalf("history len=%d, want %d", len(hist), HistoryCap)
	}
	// Oldest entries dropped: the window starts after the first 5 runs.
	if hist[0] != 995 || hist[len(hist)-1] != 986 {
		t.Fatalf("history window=[%d..%d], want [995..986]", hist[0], hist[len(hist)-1])
	}
	if acct.Progress.BestReactionMs == nil || *acct.Progress.BestReactionMs != 986 {
		t.Fatalf("best=%v, want 986", acct.Progress.BestReactionMs)
	}
	if acct.Progress.GamesPlayed != HistoryCap+5 {
		t.Fatalf("gamesPlayed=%d, want %d", acct.Progress.GamesPlayed, HistoryCap+5)
	}
}

func TestReactionPersonalBest(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	registerTestUser(t, svc)

	first, err := svc.RecordReaction(ctx, 400)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !first.Record || first.BestMs != 400 {
		t.Fatalf("first run: record=%v best=%d, want record best=400", first.Record, first.BestMs)
	}

	slower, err := svc.RecordReaction(ctx, 500)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if slower.Record || slower.BestMs != 400 {
		t.Fatalf("slower run: record=%v best=%d, want no record best=400", slower.Record, slower.BestMs)
	}

	faster, err := svc.RecordReaction(ctx, 250)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !faster.Record || faster.BestMs != 250 {
		t.Fatalf("faster run: record=%v best=%d, want record best=250", faster.Record, faster.BestMs)
	}
}

func TestCheckInStreak(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	registerTestUser(t, svc)

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	checkOn := func(dayOffset int) *CheckInResult {
		t.Helper()
		svc.now = func() time.Time { return base.AddDate(0, 0, dayOffset) }
		res, err := svc.CheckIn(ctx)
		if err != nil {
			t.Fatalf("check in day %d: %v", dayOffset, err)
		}
		return res
	}

	// Days 1, 2, 3 consecutive, then a gap before day 5.
	wantStreaks := map[int]int{0: 1, 1: 2, 2: 3, 4: 1}
	for _, day := range []int{0, 1, 2, 4} {
		res := checkOn(day)
		if res.Already {
			t.Fatalf("day %d unexpectedly marked already", day)
		}
		if res.Streak != wantStreaks[day] {
			t.Fatalf("day %d streak=%d, want %d", day, res.Streak, wantStreaks[day])
		}
	}

	acct, err := svc.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	badges := acct.Progress.Checkins.Badges
	if len(badges) != 1 || badges[0] != "3-day" {
		t.Fatalf("badges=%v, want [3-day]", badges)
	}
}

func TestCheckInSameDayNoOp(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	registerTestUser(t, svc)

	morning := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return morning }
	if _, err := svc.CheckIn(ctx); err != nil {
		t.Fatalf("first check in: %v", err)
	}

	// Later the same calendar day.
	svc.now = func() time.Time { return morning.Add(10 * time.Hour) }
	res, err := svc.CheckIn(ctx)
	if err != nil {
		t.Fatalf("second check in: %v", err)
	}
	if !res.Already {
		t.Fatalf("expected same-day check-in to report Already")
	}
	if res.Streak != 1 {
		t.Fatalf("streak=%d, want 1", res.Streak)
	}
}

func TestCheckInBadgeExactThreshold(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	registerTestUser(t, svc)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for day := 0; day < 7; day++ {
		svc.now = func() time.Time { return base.AddDate(0, 0, day) }
		res, err := svc.CheckIn(ctx)
		if err != nil {
			t.Fatalf("check in day %d: %v", day, err)
		}
		switch res.Streak {
		case 3:
			if len(res.NewBadges) != 1 || res.NewBadges[0] != "3-day" {
				t.Fatalf("streak 3 badges=%v, want [3-day]", res.NewBadges)
			}
		case 7:
			if len(res.NewBadges) != 1 || res.NewBadges[0] != "7-day" {
				t.Fatalf("streak 7 badges=%v, want [7-day]", res.NewBadges)
			}
		default:
			if len(res.NewBadges) != 0 {
				t.Fatalf("streak %d badges=%v, want none", res.Streak, res.NewBadges)
			}
		}
	}
}

func TestQuizPercentAndBands(t *testing.T) {
	cases := []struct {
		sum, n  int
		wantPct int
		want    Band
	}{
		{5, 5, 0, BandExcellent},
		{9, 5, 27, BandGood},
		{16, 5, 73, BandNeedsWork},
		{20, 5, 100, BandNeedsWork},
		{7, 4, 25, BandExcellent}, // inclusive upper bound
		{14, 5, 60, BandGood},     // inclusive upper bound
	}
	for _, c := range cases {
		pct := QuizPercent(c.sum, c.n)
		if pct != c.wantPct {
			t.Fatalf("QuizPercent(%d,%d)=%d, want %d", c.sum, c.n, pct, c.wantPct)
		}
		if got := BandFor(pct); got != c.want {
			t.Fatalf("BandFor(%d)=%q, want %q", pct, got, c.want)
		}
	}
}

func TestSubmitQuiz(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	registerTestUser(t, svc)

	if _, err := svc.SubmitQuiz(ctx, "grandparent", []int{1, 1, 1, 1, 1}); !errors.Is(err, account.ErrValidation) {
		t.Fatalf("unknown group: err=%v, want ErrValidation", err)
	}
	if _, err := svc.SubmitQuiz(ctx, "adult", []int{1, 5, 1, 1, 1}); !errors.Is(err, account.ErrValidation) {
		t.Fatalf("out-of-range answer: err=%v, want ErrValidation", err)
	}

	res, err := svc.SubmitQuiz(ctx, "adult", []int{2, 1, 3, 2, 1})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Sum != 9 || res.Max != 20 || res.Pct != 27 || res.Band != BandGood {
		t.Fatalf("result=%+v, want sum=9 max=20 pct=27 band=Good", res)
	}

	acct, err := svc.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	p := acct.Progress
	if p.QuizzesTaken != 1 || p.LastQuizScore != 9 {
		t.Fatalf("quizzesTaken=%d lastQuizScore=%d, want 1/9", p.QuizzesTaken, p.LastQuizScore)
	}
	if len(p.QuizHistory) != 1 || p.QuizHistory[0].Pct != 27 || p.QuizHistory[0].Group != "adult" {
		t.Fatalf("quizHistory=%+v, want one adult entry at 27%%", p.QuizHistory)
	}
}

func TestRecordGameResultMerge(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	registerTestUser(t, svc)

	ms := int64(5200)
	score := 80
	err := svc.RecordGameResult(ctx, GameResult{
		GameID: "memory", Name: "Memory Match", Count: 2, BestTimeMs: &ms, BestScore: &score,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	// A later report without a name keeps the stored one; best time only
	// improves downward, best score only upward.
	worseMs := int64(9000)
	betterScore := 95
	err = svc.RecordGameResult(ctx, GameResult{
		GameID: "memory", BestTimeMs: &worseMs, BestScore: &betterScore,
	})
	if err != nil {
		t.Fatalf("record again: %v", err)
	}

	acct, err := svc.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	g := acct.Progress.GamesByID["memory"]
	if g == nil {
		t.Fatalf("no stat for memory")
	}
	if g.Name != "Memory Match" {
		t.Fatalf("name=%q, want Memory Match", g.Name)
	}
	if g.Count != 3 {
		t.Fatalf("count=%d, want 3", g.Count)
	}
	if g.BestTimeMs == nil || *g.BestTimeMs != 5200 {
		t.Fatalf("bestTimeMs=%v, want 5200", g.BestTimeMs)
	}
	if g.BestScore == nil || *g.BestScore != 95 {
		t.Fatalf("bestScore=%v, want 95", g.BestScore)
	}
	if acct.Progress.GamesPlayed != 3 {
		t.Fatalf("gamesPlayed=%d, want 3", acct.Progress.GamesPlayed)
	}
}

func TestToggleHabit(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	registerTestUser(t, svc)

	if err := svc.ToggleHabit(ctx, 0, 2); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := svc.ToggleHabit(ctx, 9, 0); !errors.Is(err, account.ErrValidation) {
		t.Fatalf("bad habit index: err=%v, want ErrValidation", err)
	}
	if err := svc.ToggleHabit(ctx, 0, 7); !errors.Is(err, account.ErrValidation) {
		t.Fatalf("bad day index: err=%v, want ErrValidation", err)
	}

	acct, err := svc.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if acct.Progress.Habits[0].Week[2] != 1 {
		t.Fatalf("week[2]=%d, want 1", acct.Progress.Habits[0].Week[2])
	}

	if err := svc.ToggleHabit(ctx, 0, 2); err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	acct, _ = svc.Current(ctx)
	if acct.Progress.Habits[0].Week[2] != 0 {
		t.Fatalf("week[2]=%d after second toggle, want 0", acct.Progress.Habits[0].Week[2])
	}

	if err := svc.ToggleHabit(ctx, 1, 5); err != nil {
		t.Fatalf("toggle other habit: %v", err)
	}
	if err := svc.ResetHabitWeek(ctx); err != nil {
		t.Fatalf("reset week: %v", err)
	}
	acct, _ = svc.Current(ctx)
	for i, h := range acct.Progress.Habits {
		for d, v := range h.Week {
			if v != 0 {
				t.Fatalf("habit %d day %d=%d after reset, want 0", i, d, v)
			}
		}
	}
}

func TestExportOmitsPasswordHash(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	registerTestUser(t, svc)

	var buf bytes.Buffer
	if err := svc.Export(ctx, &buf); err != nil {
		t.Fatalf("export: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "passwordHash") {
		t.Fatalf("export leaks the credential checksum:\n%s", out)
	}
	if !strings.Contains(out, `"mia@example.com"`) {
		t.Fatalf("export missing account identity:\n%s", out)
	}
	if !strings.Contains(out, `"habits"`) {
		t.Fatalf("export missing progress:\n%s", out)
	}
}

func TestSubscribeNotifiesOnWrites(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	registerTestUser(t, svc)

	fired := 0
	svc.Subscribe(func() { fired++ })

	if err := svc.RecordGamePlayed(ctx); err != nil {
		t.Fatalf("record: %v", err)
	}
	if fired != 1 {
		t.Fatalf("fired=%d after one write, want 1", fired)
	}

	// Logged-out writes are no-ops and must not notify.
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if err := svc.RecordGamePlayed(ctx); err != nil {
		t.Fatalf("record logged out: %v", err)
	}
	if fired != 1 {
		t.Fatalf("fired=%d after logged-out write, want 1", fired)
	}
}

func TestResetWipesEverything(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	registerTestUser(t, svc)

	if _, err := svc.RecordReaction(ctx, 300); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := svc.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	acct, err := svc.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if acct != nil {
		t.Fatalf("expected no session after reset, got %q", acct.Email)
	}
	accounts, err := svc.Accounts().List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(accounts) != 0 {
		t.Fatalf("accounts=%d after reset, want 0", len(accounts))
	}
}

func TestClampFocusMinutes(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, FocusDefaultMinutes},
		{-3, FocusDefaultMinutes},
		{1, 1},
		{45, 45},
		{120, 120},
		{500, FocusMaxMinutes},
	}
	for _, c := range cases {
		if got := ClampFocusMinutes(c.in); got != c.want {
			t.Fatalf("ClampFocusMinutes(%d)=%d, want %d", c.in, got, c.want)
		}
	}
}

func TestLogFocus(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	registerTestUser(t, svc)

	at := time.Date(2025, 4, 2, 20, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return at }
	if err := svc.LogFocus(ctx, 25); err != nil {
		t.Fatalf("log focus: %v", err)
	}

	acct, err := svc.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	logs := acct.Progress.FocusLogs
	if len(logs) != 1 || logs[0].Minutes != 25 || logs[0].At != at.UnixMilli() {
		t.Fatalf("focusLogs=%+v, want one 25-minute entry", logs)
	}
}

func TestTipOfTheDayStableWithinDay(t *testing.T) {
	morning := time.Date(2025, 5, 10, 7, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 5, 10, 23, 0, 0, 0, time.UTC)
	if TipOfTheDay(morning) != TipOfTheDay(evening) {
		t.Fatalf("tip changed within the same day")
	}
	nextDay := morning.AddDate(0, 0, 3)
	if TipOfTheDay(morning) == TipOfTheDay(nextDay) && len(Tips) > 1 {
		// Rotation is modular; only equal when the offsets collide.
		if (nextDay.UnixMilli()/(1000*60*60*24))%int64(len(Tips)) != (morning.UnixMilli()/(1000*60*60*24))%int64(len(Tips)) {
			t.Fatalf("tip did not rotate across days")
		}
	}
}
