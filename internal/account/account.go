package account

// Account is one registered user: identity, credential checksum and
// accumulated self-reported progress. Accounts live as a single JSON array
// under the users storage key; these shapes are the wire format.
type Account struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"passwordHash"`
	CreatedAt    int64    `json:"createdAt"` // milliseconds since epoch
	Progress     Progress `json:"progress"`
}

// Progress accumulates everything the feature widgets report. Pointer and
// slice fields distinguish "absent under an older schema" from a real zero;
// Normalize fills the documented defaults before any read or mutation.
type Progress struct {
	GamesPlayed       int                  `json:"gamesPlayed"`
	BestReactionMs    *int64               `json:"bestReactionMs"` // nil until a reaction is recorded
	ReactionHistoryMs []int64              `json:"reactionHistoryMs"`
	QuizzesTaken      int                  `json:"quizzesTaken"`
	LastQuizScore     int                  `json:"lastQuizScore"`
	QuizScores        []int                `json:"quizScores"`
	QuizScoresPct     []int                `json:"quizScoresPct"`
	QuizHistory       []QuizRecord         `json:"quizHistory"`
	GamesByID         map[string]*GameStat `json:"gamesById"`
	Checkins          *Checkins            `json:"checkins"`
	FocusLogs         []FocusLog           `json:"focusLogs"`
	Habits            []Habit              `json:"habits"`
}

// QuizRecord is one finished quiz run.
type QuizRecord struct {
	Group string `json:"group"`
	Sum   int    `json:"sum"`
	Max   int    `json:"max"`
	Pct   int    `json:"pct"`
	At    int64  `json:"t"`
}

// GameStat aggregates plays of one external game. Best metrics stay nil
// until a game reports them.
type GameStat struct {
	Name       string `json:"name"`
	Count      int    `json:"count"`
	BestScore  *int   `json:"bestScore,omitempty"`
	BestTimeMs *int64 `json:"bestTimeMs,omitempty"`
}

// Checkins is the daily check-in state. Last is nil before the first
// check-in; badges are never removed once earned.
type Checkins struct {
	Last       *int64   `json:"last"`
	Streak     int      `json:"streak"`
	WeeklyGoal int      `json:"weeklyGoal"`
	Badges     []string `json:"badges"`
}

// FocusLog is one completed focus session.
type FocusLog struct {
	Minutes int   `json:"m"`
	At      int64 `json:"t"`
}

// Habit tracks one weekly habit. Week holds seven 0/1 marks, Sunday first.
type Habit struct {
	Name string `json:"name"`
	Week []int  `json:"week"`
}

// Session is the current-user pointer: a denormalized cache of the account
// identity, stored independently of the accounts collection. It can dangle;
// resolution treats a dangling pointer as logged out.
type Session struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
