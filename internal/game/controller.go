// Package game orchestrates a Simon play-through: it owns the sequence
// engine, the player session, and the leaderboard, and drives the
// show-sequence / wait-for-input / score-outcome loop the UI renders.
package game

import (
	"fmt"

	"github.com/vovakirdan/tui-simon/internal/engine"
	"github.com/vovakirdan/tui-simon/internal/leaderboard"
	"github.com/vovakirdan/tui-simon/internal/session"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

// version is reported via Version on the controller and the CLI.
const version = "1.0.0"

// State identifies where the controller is in the play loop.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateShowingSequence
	StateWaitingInput
	StateGameOver
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateShowingSequence:
		return "showing_sequence"
	case StateWaitingInput:
		return "waiting_input"
	case StateGameOver:
		return "game_over"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Session outcomes recorded into history.
const (
	OutcomeGameOver    = "game_over"
	OutcomeCapacityWin = "capacity_win"
	OutcomeForfeit     = "forfeit"
)

// InputOutcome classifies the result of one submitted symbol.
type InputOutcome int

const (
	InputRejected InputOutcome = iota
	InputCorrect
	InputWrong
	InputSequenceComplete
	InputCapacityWin
)

// InputResult reports what one ProcessInput call did.
type InputResult struct {
	Outcome        InputOutcome
	Position       int // index the symbol was checked against
	LivesRemaining int
	GameOver       bool
	PointsEarned   int // non-zero only on sequence completion
	NewLength      int // sequence length after a completed round grows it
}

// RevealResult reports a re-show request and its life penalty.
type RevealResult struct {
	Allowed        bool
	Sequence       string
	LifeLost       bool
	LivesRemaining int
	GameOver       bool
}

// CommitResult reports how a finished session was persisted.
type CommitResult struct {
	Rank         int
	IsNewRecord  bool
	Qualified    bool
	ScoreSaved   bool
	HistorySaved bool
}

// SequenceInfo is the display snapshot of the current sequence.
type SequenceInfo struct {
	Length          int
	Rendered        string
	AtCapacity      bool
	DistinctSymbols int
}

// Config carries the tunables a controller starts with. Zero values
// fall back to defaults; speeds and timeouts are clamped on apply.
type Config struct {
	Lives            int
	SequenceSpeed    int // ms per shown symbol
	MinSequenceSpeed int
	SpeedDecrement   int // speed-up per level
	MaxInputTime     int // ms allowed per round of input
	SoundEnabled     bool
}

// Controller composes the engine, session, and leaderboard and is the
// sole caller of all three. One controller serves one player at a time.
type Controller struct {
	engine  *engine.Engine
	session *session.Session
	board   *leaderboard.Board
	store   *storage.Store

	state      State
	pausedFrom State
	settings   settings
	maxLives   int

	inputPos  int
	outcome   string
	committed bool
	commit    CommitResult

	// lifetime counters, mirrored into storage when attached
	gamesPlayed        int
	sequencesCompleted int
	bestLevel          int
	longestStreak      int
}

// New builds a controller around an initialized engine and an open
// leaderboard. The session is created lazily on StartNewGame.
func New(eng *engine.Engine, board *leaderboard.Board, cfg Config) *Controller {
	c := &Controller{
		engine:   eng,
		board:    board,
		state:    StateMenu,
		maxLives: cfg.Lives,
	}
	if c.maxLives < 1 {
		c.maxLives = defaultLives
	}
	c.settings = newSettings(cfg)
	return c
}

// AttachStore wires an optional session-history store. History saving
// is best-effort; a nil store disables it.
func (c *Controller) AttachStore(st *storage.Store) {
	c.store = st
}

// Version reports the game version string.
func (c *Controller) Version() string { return version }

// State reports the current play-loop state.
func (c *Controller) State() State { return c.state }

// StartNewGame resets the engine and session and enters the sequence
// display phase.
func (c *Controller) StartNewGame(name string) error {
	if c.engine == nil {
		return fmt.Errorf("game: controller has no engine")
	}

	if c.session == nil {
		c.session = session.New(name, c.maxLives)
	} else if !c.session.SetName(name) && name != "" {
		c.session.SetName(session.AnonymousName)
	}

	c.engine.Reset()
	c.session.StartGame()
	c.settings.resetSpeed()

	c.inputPos = 0
	c.outcome = ""
	c.committed = false
	c.commit = CommitResult{}
	c.gamesPlayed++
	c.state = StateShowingSequence
	return nil
}

// Restart begins a fresh game for the current player.
func (c *Controller) Restart() error {
	if c.session == nil {
		return fmt.Errorf("game: no game to restart")
	}
	return c.StartNewGame(c.session.Name())
}

// TogglePause suspends or resumes play. Reports whether the controller
// is paused after the call. Only active play states can pause.
func (c *Controller) TogglePause() bool {
	switch c.state {
	case StatePaused:
		c.state = c.pausedFrom
		return false
	case StatePlaying, StateShowingSequence, StateWaitingInput:
		c.pausedFrom = c.state
		c.state = StatePaused
		return true
	default:
		return false
	}
}

// BeginInput moves from sequence display to input collection. The UI
// calls this once the timed display finishes.
func (c *Controller) BeginInput() bool {
	if c.state != StateShowingSequence {
		return false
	}
	c.session.StartInputSequence()
	c.inputPos = 0
	c.state = StateWaitingInput
	return true
}

// ProcessInput checks one submitted symbol against the sequence and
// advances the round. Wrong input costs a life and re-shows the
// sequence; completing the full sequence scores it, levels up, and
// grows the sequence by one. Growing past the cap wins the game.
func (c *Controller) ProcessInput(symbol string) InputResult {
	if c.state != StateWaitingInput || !c.session.AddInput(symbol) {
		return InputResult{Outcome: InputRejected, Position: c.inputPos, LivesRemaining: c.lives()}
	}

	matched, idx := c.engine.Validate(c.session.CurrentInput(), -1)
	if !matched {
		return c.handleWrongInput(idx)
	}

	c.inputPos = idx + 1
	if c.inputPos < c.engine.Len() {
		return InputResult{Outcome: InputCorrect, Position: idx, LivesRemaining: c.lives()}
	}
	return c.handleCompletedSequence()
}

func (c *Controller) handleWrongInput(idx int) InputResult {
	alive := c.session.LoseLife("wrong input")
	c.session.ClearCurrentInput()

	res := InputResult{
		Outcome:        InputWrong,
		Position:       idx,
		LivesRemaining: c.lives(),
	}
	if !alive {
		c.endGame(OutcomeGameOver)
		res.GameOver = true
		return res
	}

	// The sequence is re-shown after a mistake.
	c.inputPos = 0
	c.state = StateShowingSequence
	return res
}

func (c *Controller) handleCompletedSequence() InputResult {
	length := c.engine.Len()
	before := c.session.Score()
	c.session.RecordSuccessfulSequence(length)
	c.session.AdvanceLevel(0)
	c.sequencesCompleted++
	c.trackHighWater()
	c.settings.advanceSpeed(c.session.Level())

	res := InputResult{
		Outcome:        InputSequenceComplete,
		Position:       length - 1,
		LivesRemaining: c.lives(),
		PointsEarned:   c.session.Score() - before,
	}

	if c.engine.AppendRandom() == "" {
		// The sequence is full: there is nothing left to memorize.
		res.Outcome = InputCapacityWin
		res.NewLength = length
		c.endGame(OutcomeCapacityWin)
		res.GameOver = true
		return res
	}

	res.NewLength = c.engine.Len()
	c.session.ClearCurrentInput()
	c.inputPos = 0
	c.state = StateShowingSequence
	return res
}

// RevealSequence re-shows the current sequence at the cost of one
// life. Only allowed while waiting for input.
func (c *Controller) RevealSequence() RevealResult {
	if c.state != StateWaitingInput {
		return RevealResult{}
	}

	alive := c.session.LoseLife("sequence revealed")
	c.session.ClearCurrentInput()

	res := RevealResult{
		Allowed:        true,
		Sequence:       c.engine.String(" "),
		LifeLost:       true,
		LivesRemaining: c.lives(),
	}
	if !alive {
		c.endGame(OutcomeGameOver)
		res.GameOver = true
		return res
	}

	c.inputPos = 0
	c.state = StateShowingSequence
	return res
}

// Forfeit abandons the current game, commits the partial result, and
// returns to the menu.
func (c *Controller) Forfeit() {
	switch c.state {
	case StatePlaying, StateShowingSequence, StateWaitingInput, StatePaused:
		c.endGame(OutcomeForfeit)
	}
	c.state = StateMenu
}

// endGame freezes the session and commits the result once.
func (c *Controller) endGame(outcome string) {
	c.outcome = outcome
	c.session.EndGame()
	c.trackHighWater()
	c.commit = c.commitResult()
	c.committed = true
	if outcome != OutcomeForfeit {
		c.state = StateGameOver
	}
}

func (c *Controller) trackHighWater() {
	if c.session.Level() > c.bestLevel {
		c.bestLevel = c.session.Level()
	}
	if c.session.BestStreak() > c.longestStreak {
		c.longestStreak = c.session.BestStreak()
	}
}

// FinishGame reports how the last finished session was persisted. It
// is idempotent: the commit happens when the game ends.
func (c *Controller) FinishGame() CommitResult {
	return c.commit
}

// Outcome reports how the last game ended, empty while one is running.
func (c *Controller) Outcome() string { return c.outcome }

func (c *Controller) commitResult() CommitResult {
	stats := c.session.Stats()
	var res CommitResult

	if c.board != nil {
		res.Qualified = c.board.IsQualifying(stats.Score)
		added := c.board.AddScore(stats.Name, stats.Score, leaderboard.Extras{
			Level:    stats.Level,
			Accuracy: stats.Accuracy,
			Duration: stats.DurationMs,
			Streak:   stats.BestStreak,
		})
		if added.Err == nil {
			res.Rank = added.Rank
			res.IsNewRecord = added.IsNewRecord
			res.ScoreSaved = added.Saved
		}
	}

	if c.store != nil {
		_, err := c.store.SaveSession(storage.SessionRecord{
			Player:        stats.Name,
			Score:         stats.Score,
			Level:         stats.Level,
			BestStreak:    stats.BestStreak,
			Accuracy:      stats.Accuracy,
			DurationMs:    stats.DurationMs,
			AvgReactionMs: stats.AverageReactionMs,
			Correct:       stats.TotalCorrectSequences,
			Wrong:         stats.TotalWrongAttempts,
			Outcome:       c.outcome,
		})
		res.HistorySaved = err == nil
	}

	return res
}

// PlayerStats snapshots the current session for display. Zero value
// before any game has started.
func (c *Controller) PlayerStats() session.Stats {
	if c.session == nil {
		return session.Stats{}
	}
	return c.session.Stats()
}

// PlayerName reports the current player, empty before the first game.
func (c *Controller) PlayerName() string {
	if c.session == nil {
		return ""
	}
	return c.session.Name()
}

// SequenceInfo snapshots the current sequence for display.
func (c *Controller) SequenceInfo() SequenceInfo {
	st := c.engine.Stats()
	return SequenceInfo{
		Length:          st.Length,
		Rendered:        c.engine.String(" "),
		AtCapacity:      c.engine.IsAtCapacity(),
		DistinctSymbols: st.DistinctUsed,
	}
}

// Sequence returns a copy of the current sequence for timed display.
func (c *Controller) Sequence() []string { return c.engine.Sequence() }

// Alphabet returns a copy of the playable symbols.
func (c *Controller) Alphabet() []string { return c.engine.Alphabet() }

// InputPosition reports the next sequence index awaiting input.
func (c *Controller) InputPosition() int { return c.inputPos }

// Totals aggregates lifetime analytics. When a history store is
// attached its aggregate wins; otherwise in-process counters are used.
func (c *Controller) Totals() storage.Totals {
	if c.store != nil {
		if totals, err := c.store.AllTotals(); err == nil {
			return *totals
		}
	}
	return storage.Totals{
		GamesPlayed:        c.gamesPlayed,
		SequencesCompleted: c.sequencesCompleted,
		BestLevel:          c.bestLevel,
		LongestStreak:      c.longestStreak,
	}
}

func (c *Controller) lives() int {
	if c.session == nil {
		return 0
	}
	return c.session.Lives()
}
