// Package session tracks a single player's mutable game state: lives,
// score, level, streaks, reaction timing, and an append-only event log.
// All mutating operations are defensive no-ops on invalid input so the
// surrounding UI can never corrupt session state.
package session

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// AnonymousName is substituted when a player name sanitizes to nothing.
const AnonymousName = "Anonymous"

const maxNameLength = 20

// Session holds one player's state for the lifetime of a game run.
// Not safe for concurrent use; the controller is the sole caller.
type Session struct {
	name         string
	maxLives     int
	currentLives int

	score         int
	level         int
	currentStreak int
	bestStreak    int

	totalCorrectSequences int
	totalWrongAttempts    int

	currentInput  []string
	reactionTimes []float64 // milliseconds between consecutive inputs
	avgReaction   float64   // finalized by EndGame

	gameStart time.Time
	gameEnd   time.Time
	lastInput time.Time

	events []Event

	// now is stubbed in tests; time.Time carries a monotonic reading,
	// so durations are immune to wall-clock adjustments.
	now func() time.Time
}

// New creates a session with a sanitized name and a lives budget floored
// at 1.
func New(name string, lives int) *Session {
	if lives < 1 {
		lives = 1
	}
	s := &Session{
		maxLives:     lives,
		currentLives: lives,
		level:        1,
		now:          time.Now,
	}
	s.name = SanitizeName(name)
	s.lastInput = s.now()
	return s
}

// SanitizeName strips everything but letters, digits, spaces, hyphens and
// underscores, trims surrounding whitespace, and truncates to 20 runes.
// Names that sanitize to nothing become "Anonymous".
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}

	clean := strings.TrimSpace(b.String())
	if clean == "" {
		return AnonymousName
	}

	runes := []rune(clean)
	if len(runes) > maxNameLength {
		clean = string(runes[:maxNameLength])
	}
	return clean
}

// Name returns the sanitized player name.
func (s *Session) Name() string { return s.name }

// SetName replaces the player name, reporting false if the replacement
// sanitized to the anonymous fallback without being asked for.
func (s *Session) SetName(name string) bool {
	clean := SanitizeName(name)
	if clean == AnonymousName && name != AnonymousName {
		return false
	}
	s.name = clean
	return true
}

// Score returns the current session score.
func (s *Session) Score() int { return s.score }

// Level returns the current level, starting at 1.
func (s *Session) Level() int { return s.level }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.currentLives }

// MaxLives returns the lives budget the session started with.
func (s *Session) MaxLives() int { return s.maxLives }

// CurrentStreak returns consecutive correct sequences since the last
// life loss.
func (s *Session) CurrentStreak() int { return s.currentStreak }

// BestStreak returns the high-water mark of the current streak.
func (s *Session) BestStreak() int { return s.bestStreak }

// IsAlive reports whether any lives remain.
func (s *Session) IsAlive() bool { return s.currentLives > 0 }

// AddScore credits points to the session. Negative points are ignored;
// the score never decreases within a run.
func (s *Session) AddScore(points int, reason string) {
	if points < 0 {
		return
	}
	s.score += points
	s.events = append(s.events, ScoreAdded{
		Points:     points,
		Reason:     reason,
		TotalScore: s.score,
	})
}

// AdvanceLevel increments the level, routes any positive bonus through
// AddScore, and rolls the streak high-water mark forward.
func (s *Session) AdvanceLevel(bonusPoints int) {
	s.level++

	if bonusPoints > 0 {
		s.AddScore(bonusPoints, fmt.Sprintf("Level %d completion bonus", s.level-1))
	}

	if s.currentStreak > s.bestStreak {
		s.bestStreak = s.currentStreak
	}

	s.events = append(s.events, LevelAdvanced{
		Level:       s.level,
		BonusPoints: bonusPoints,
	})
}

// LoseLife deducts one life, counts the wrong attempt, and resets the
// streak. Already-dead sessions are untouched. Returns whether any lives
// remain.
func (s *Session) LoseLife(reason string) bool {
	if s.currentLives > 0 {
		s.currentLives--
		s.totalWrongAttempts++
		s.currentStreak = 0

		s.events = append(s.events, LifeLost{
			Reason:         reason,
			LivesRemaining: s.currentLives,
		})
	}
	return s.IsAlive()
}

// RecordSuccessfulSequence credits a fully correct reproduction:
// length*10 base points, +5 per three-streak, +2 per level past the first.
func (s *Session) RecordSuccessfulSequence(length int) {
	s.totalCorrectSequences++
	s.currentStreak++

	base := length * 10
	streakBonus := (s.currentStreak / 3) * 5
	levelBonus := (s.level - 1) * 2
	points := base + streakBonus + levelBonus

	s.AddScore(points, fmt.Sprintf("Sequence completed (length %d)", length))

	s.events = append(s.events, SequenceCompleted{
		SequenceLength: length,
		Streak:         s.currentStreak,
		PointsEarned:   points,
	})
}

// StartInputSequence begins a fresh input round and arms the reaction
// timer.
func (s *Session) StartInputSequence() {
	s.currentInput = s.currentInput[:0]
	s.lastInput = s.now()
}

// AddInput appends one symbol to the round's input buffer. Empty symbols
// are rejected without mutation. Every non-first input records a
// reaction-time sample.
func (s *Session) AddInput(symbol string) bool {
	if symbol == "" {
		return false
	}

	t := s.now()
	if len(s.currentInput) > 0 {
		s.reactionTimes = append(s.reactionTimes, float64(t.Sub(s.lastInput).Milliseconds()))
	}

	s.currentInput = append(s.currentInput, symbol)
	s.lastInput = t

	s.events = append(s.events, InputAdded{
		Symbol:   symbol,
		Position: len(s.currentInput) - 1,
	})
	return true
}

// CurrentInput returns a copy of the round's input buffer.
func (s *Session) CurrentInput() []string {
	return append([]string(nil), s.currentInput...)
}

// ClearCurrentInput discards the round's input buffer and re-arms the
// reaction timer.
func (s *Session) ClearCurrentInput() {
	s.currentInput = s.currentInput[:0]
	s.lastInput = s.now()
}

// StartGame resets all per-run counters, restores lives, stamps the
// start time, and clears any previous end time.
func (s *Session) StartGame() {
	s.score = 0
	s.level = 1
	s.currentStreak = 0
	s.totalCorrectSequences = 0
	s.totalWrongAttempts = 0
	s.reactionTimes = s.reactionTimes[:0]
	s.avgReaction = 0
	s.currentLives = s.maxLives
	s.events = s.events[:0]

	s.gameStart = s.now()
	s.gameEnd = time.Time{}

	s.events = append(s.events, GameStarted{PlayerName: s.name})
}

// EndGame stamps the end time and finalizes the average reaction time.
func (s *Session) EndGame() {
	s.gameEnd = s.now()

	if len(s.reactionTimes) > 0 {
		var sum float64
		for _, rt := range s.reactionTimes {
			sum += rt
		}
		s.avgReaction = sum / float64(len(s.reactionTimes))
	}

	s.events = append(s.events, GameEnded{
		FinalScore: s.score,
		FinalLevel: s.level,
		DurationMs: s.GameDuration(),
	})
}

// GameDuration returns elapsed milliseconds from start to end, or to now
// for a running game. 0 if the game never started.
func (s *Session) GameDuration() int64 {
	if s.gameStart.IsZero() {
		return 0
	}
	end := s.gameEnd
	if end.IsZero() {
		end = s.now()
	}
	return end.Sub(s.gameStart).Milliseconds()
}

// FormattedDuration renders the game duration as mm:ss.
func (s *Session) FormattedDuration() string {
	secs := s.GameDuration() / 1000
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// IsGameActive reports whether a run has started but not yet ended.
func (s *Session) IsGameActive() bool {
	return !s.gameStart.IsZero() && s.gameEnd.IsZero()
}

// TotalAttempts is correct sequences plus wrong attempts.
func (s *Session) TotalAttempts() int {
	return s.totalCorrectSequences + s.totalWrongAttempts
}

// Accuracy returns correct/(correct+wrong) as a percentage, 0 before any
// attempts.
func (s *Session) Accuracy() float64 {
	attempts := s.TotalAttempts()
	if attempts == 0 {
		return 0
	}
	return float64(s.totalCorrectSequences) / float64(attempts) * 100
}

// AverageReactionTime returns the finalized mean reaction time in
// milliseconds. 0 until EndGame runs or if no samples were collected.
func (s *Session) AverageReactionTime() float64 {
	return s.avgReaction
}

// Events returns a copy of the append-only event log.
func (s *Session) Events() []Event {
	return append([]Event(nil), s.events...)
}

// Reset returns the session to its pristine post-construction state.
func (s *Session) Reset() {
	s.score = 0
	s.level = 1
	s.currentLives = s.maxLives
	s.currentInput = s.currentInput[:0]
	s.totalCorrectSequences = 0
	s.totalWrongAttempts = 0
	s.bestStreak = 0
	s.currentStreak = 0
	s.avgReaction = 0
	s.reactionTimes = s.reactionTimes[:0]
	s.gameStart = time.Time{}
	s.gameEnd = time.Time{}
	s.lastInput = s.now()
	s.events = s.events[:0]
}

// Stats is a flat snapshot of the session for display and persistence.
type Stats struct {
	Name                  string
	Score                 int
	Level                 int
	Lives                 int
	MaxLives              int
	TotalCorrectSequences int
	TotalWrongAttempts    int
	CurrentStreak         int
	BestStreak            int
	AverageReactionMs     float64
	DurationMs            int64
	FormattedDuration     string
	Accuracy              float64
	GameActive            bool
	Alive                 bool
}

// Stats captures the current session state as a flat snapshot.
func (s *Session) Stats() Stats {
	return Stats{
		Name:                  s.name,
		Score:                 s.score,
		Level:                 s.level,
		Lives:                 s.currentLives,
		MaxLives:              s.maxLives,
		TotalCorrectSequences: s.totalCorrectSequences,
		TotalWrongAttempts:    s.totalWrongAttempts,
		CurrentStreak:         s.currentStreak,
		BestStreak:            s.bestStreak,
		AverageReactionMs:     s.avgReaction,
		DurationMs:            s.GameDuration(),
		FormattedDuration:     s.FormattedDuration(),
		Accuracy:              s.Accuracy(),
		GameActive:            s.IsGameActive(),
		Alive:                 s.IsAlive(),
	}
}

// Compare ranks two sessions by score, level, best streak, then
// accuracy, all descending. It returns a negative value if s ranks
// ahead of other, positive if other ranks ahead, and 0 when tied.
func (s *Session) Compare(other *Session) int {
	if s.score != other.score {
		return other.score - s.score
	}
	if s.level != other.level {
		return other.level - s.level
	}
	if s.bestStreak != other.bestStreak {
		return other.bestStreak - s.bestStreak
	}

	a, b := s.Accuracy(), other.Accuracy()
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}
