package engine

import (
	"context"
	"fmt"
	"math"
	"strings"

	"wellbeing/internal/account"
)

// Likert answer scale. Values run 1-4 in label order.
var LikertLabels = []string{"Never", "Rarely", "Sometimes", "Often"}

// QuizBanks holds the per-age-group question sets.
var QuizBanks = map[string][]string{
	"kid": {
		"I talk to family during meals instead of using devices.",
		"I stop using screens at least 1 hour before bedtime.",
		"I can put the tablet/phone away when asked.",
		"I like to play outside or read without screens.",
		"I watch videos that are right for my age.",
	},
	"teen": {
		"My screen time doesn't hurt my sleep or grades.",
		"I can resist doomscrolling and set app limits.",
		"I put my phone away during study or with friends.",
		"Social media doesn't make me feel worse about myself.",
		"I take breaks from screens each day.",
	},
	"adult": {
		"I maintain focus without constant notification checks.",
		"My phone use doesn't disrupt sleep or relationships.",
		"I set boundaries (work hours, tech-free spaces).",
		"I use my phone intentionally rather than habitually.",
		"I replace scrolling with restorative activities.",
	},
}

// QuizBank returns the question set for an age group.
func QuizBank(group string) ([]string, error) {
	qs, ok := QuizBanks[strings.ToLower(strings.TrimSpace(group))]
	if !ok {
		return nil, fmt.Errorf("%w: unknown age group %q", account.ErrValidation, group)
	}
	return qs, nil
}

// Band is the risk classification a quiz percentage falls into.
type Band string

const (
	BandExcellent Band = "Excellent"
	BandGood      Band = "Good"
	BandNeedsWork Band = "Needs Improvement"
)

// QuizPercent maps a raw Likert sum over n questions onto [0,100]:
// round(100 * (sum - n) / (3n)).
func QuizPercent(sum, n int) int {
	min, max := n, 4*n
	return int(math.Round(float64(sum-min) / float64(max-min) * 100))
}

// BandFor buckets a percentage. The chain is order-sensitive with inclusive
// upper bounds: 25 is still Excellent, 60 is still Good.
func BandFor(pct int) Band {
	if pct <= 25 {
		return BandExcellent
	}
	if pct <= 60 {
		return BandGood
	}
	return BandNeedsWork
}

// RiskLevel returns the risk label paired with a band.
func (b Band) RiskLevel() string {
	switch b {
	case BandExcellent:
		return "Low"
	case BandGood:
		return "Moderate"
	default:
		return "High"
	}
}

// Message returns the one-line verdict shown with the score.
func (b Band) Message() string {
	switch b {
	case BandExcellent:
		return "Excellent! Low Risk"
	case BandGood:
		return "Good! Moderate Risk"
	default:
		return "Needs Attention"
	}
}

// Recommendations returns the advice list for a band.
func (b Band) Recommendations() []string {
	switch b {
	case BandExcellent:
		return []string{
			"Continue maintaining healthy screen time boundaries",
			"Keep using tech-free zones during meals and bedtime",
			"Stay mindful of your digital habits",
			"Share your healthy habits with others",
		}
	case BandGood:
		return []string{
			"Set specific screen-free times (meals, 1 hour before bed)",
			"Use app timers to track and limit usage",
			"Create tech-free zones in your home",
			"Take regular breaks from screens every hour",
			"Try the Pomodoro Technique for focused work",
		}
	default:
		return []string{
			"Establish a strict bedtime routine without devices",
			"Set daily screen time limits using built-in phone features",
			"Create physical boundaries: no phones in bedroom",
			"Practice the 20-20-20 rule: every 20 minutes, look 20 feet away for 20 seconds",
			"Schedule regular tech-free activities (reading, exercise, hobbies)",
			"Consider using focus apps that block distractions",
			"Join a digital wellness challenge or support group",
		}
	}
}

// QuizResult is one scored quiz run.
type QuizResult struct {
	Group   string
	Sum     int
	Max     int
	Pct     int
	Average float64
	Band    Band
}

// SubmitQuiz scores a finished quiz and folds the result into the active
// account: quizzesTaken, lastQuizScore and the three capped histories.
func (s *Service) SubmitQuiz(ctx context.Context, group string, answers []int) (*QuizResult, error) {
	if _, err := s.requireCurrent(ctx); err != nil {
		return nil, err
	}
	if _, err := QuizBank(group); err != nil {
		return nil, err
	}
	if len(answers) == 0 {
		return nil, fmt.Errorf("%w: no answers given", account.ErrValidation)
	}
	sum := 0
	for _, v := range answers {
		if v < 1 || v > 4 {
			return nil, fmt.Errorf("%w: answer %d out of range 1-4", account.ErrValidation, v)
		}
		sum += v
	}
	n := len(answers)
	res := &QuizResult{
		Group:   strings.ToLower(strings.TrimSpace(group)),
		Sum:     sum,
		Max:     4 * n,
		Pct:     QuizPercent(sum, n),
		Average: float64(sum) / float64(n),
	}
	res.Band = BandFor(res.Pct)

	err := s.ApplyToCurrentAccount(ctx, func(a *account.Account) {
		p := &a.Progress
		p.QuizzesTaken++
		p.LastQuizScore = sum
		p.QuizScores = appendCapped(p.QuizScores, sum)
		p.QuizScoresPct = appendCapped(p.QuizScoresPct, res.Pct)
		p.QuizHistory = appendCapped(p.QuizHistory, account.QuizRecord{
			Group: res.Group,
			Sum:   sum,
			Max:   res.Max,
			Pct:   res.Pct,
			At:    s.now().UnixMilli(),
		})
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
