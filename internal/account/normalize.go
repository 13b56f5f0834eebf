package account

// DefaultWeeklyGoal is the check-in goal installed for accounts that predate
// the checkins schema.
const DefaultWeeklyGoal = 3

// DefaultHabits returns the fixed habit list new (and pre-habits) accounts
// start with. Weeks are all-zero.
func DefaultHabits() []Habit {
	return []Habit{
		{Name: "No phone at meals", Week: make([]int, 7)},
		{Name: "1-hr pre-sleep no screens", Week: make([]int, 7)},
		{Name: "Daily 10-min walk", Week: make([]int, 7)},
	}
}

// shapeSteps is the versioned normalizer pipeline. Steps run in the order the
// schema grew; each fills the defaults for fields its version introduced.
// Every step must be idempotent so the pipeline is too.
var shapeSteps = []func(p *Progress){
	shapeCounters,
	shapeHistories,
	shapeGames,
	shapeCheckins,
	shapeFocus,
	shapeHabits,
}

// Normalize fills in every Progress field an older account record may lack.
// It must run before any read or mutation of progress. Applying it twice
// yields the same result as once.
func Normalize(a *Account) *Account {
	for _, step := range shapeSteps {
		step(&a.Progress)
	}
	return a
}

func shapeCounters(p *Progress) {
	if p.GamesPlayed < 0 {
		p.GamesPlayed = 0
	}
	if p.QuizzesTaken < 0 {
		p.QuizzesTaken = 0
	}
	if p.LastQuizScore < 0 {
		p.LastQuizScore = 0
	}
	// BestReactionMs stays nil (unset) until a reaction is recorded.
	if p.BestReactionMs != nil && *p.BestReactionMs < 0 {
		p.BestReactionMs = nil
	}
}

func shapeHistories(p *Progress) {
	if p.ReactionHistoryMs == nil {
		p.ReactionHistoryMs = []int64{}
	}
	if p.QuizScores == nil {
		p.QuizScores = []int{}
	}
	if p.QuizScoresPct == nil {
		p.QuizScoresPct = []int{}
	}
	if p.QuizHistory == nil {
		p.QuizHistory = []QuizRecord{}
	}
}

func shapeGames(p *Progress) {
	if p.GamesByID == nil {
		p.GamesByID = map[string]*GameStat{}
	}
	for id, g := range p.GamesByID {
		if g == nil {
			p.GamesByID[id] = &GameStat{Name: id}
			continue
		}
		if g.Name == "" {
			g.Name = id
		}
		if g.Count < 0 {
			g.Count = 0
		}
	}
}

func shapeCheckins(p *Progress) {
	if p.Checkins == nil {
		p.Checkins = &Checkins{WeeklyGoal: DefaultWeeklyGoal}
	}
	c := p.Checkins
	if c.Streak < 0 {
		c.Streak = 0
	}
	if c.WeeklyGoal <= 0 {
		c.WeeklyGoal = DefaultWeeklyGoal
	}
	if c.Badges == nil {
		c.Badges = []string{}
	}
}

func shapeFocus(p *Progress) {
	if p.FocusLogs == nil {
		p.FocusLogs = []FocusLog{}
	}
}

func shapeHabits(p *Progress) {
	if len(p.Habits) == 0 {
		p.Habits = DefaultHabits()
		return
	}
	for i := range p.Habits {
		if len(p.Habits[i].Week) != 7 {
			week := make([]int, 7)
			copy(week, p.Habits[i].Week)
			p.Habits[i].Week = week
		}
		for d, v := range p.Habits[i].Week {
			if v != 0 && v != 1 {
				p.Habits[i].Week[d] = 1
			}
		}
	}
}
