package game

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-simon/internal/engine"
	"github.com/vovakirdan/tui-simon/internal/leaderboard"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

var testAlphabet = []string{"A", "B", "C", "D"}

func newTestController(t *testing.T, cfg Config) *Controller {
	t.Helper()
	eng, err := engine.NewSeeded(testAlphabet, 1, 42)
	if err != nil {
		t.Fatalf("engine setup failed: %v", err)
	}
	board := leaderboard.Open("", 10)
	return New(eng, board, cfg)
}

// wrongSymbol picks an alphabet symbol that diverges from the expected
// one at the given position.
func wrongSymbol(c *Controller, pos int) string {
	expected := c.Sequence()[pos]
	for _, s := range c.Alphabet() {
		if s != expected {
			return s
		}
	}
	return ""
}

// completeRound plays the current sequence correctly and returns the
// final input result.
func completeRound(t *testing.T, c *Controller) InputResult {
	t.Helper()
	if !c.BeginInput() {
		t.Fatalf("BeginInput failed in state %v", c.State())
	}

	var res InputResult
	for _, symbol := range c.Sequence() {
		res = c.ProcessInput(symbol)
		if res.Outcome == InputWrong || res.Outcome == InputRejected {
			t.Fatalf("correct input classified as %v at position %d", res.Outcome, res.Position)
		}
	}
	return res
}

func TestStartNewGame(t *testing.T) {
	c := newTestController(t, Config{Lives: 3})

	if c.State() != StateMenu {
		t.Fatalf("fresh controller should be in menu, got %v", c.State())
	}

	if err := c.StartNewGame("  Alice!!  "); err != nil {
		t.Fatalf("StartNewGame failed: %v", err)
	}

	if c.State() != StateShowingSequence {
		t.Errorf("state = %v, want showing_sequence", c.State())
	}

	stats := c.PlayerStats()
	if stats.Name != "Alice" {
		t.Errorf("name not sanitized, got %q", stats.Name)
	}
	if stats.Lives != 3 || stats.Level != 1 || stats.Score != 0 {
		t.Errorf("unexpected fresh session stats: %+v", stats)
	}

	info := c.SequenceInfo()
	if info.Length != 1 || info.AtCapacity {
		t.Errorf("initial sequence info wrong: %+v", info)
	}
}

func TestCompleteRoundGrowsSequence(t *testing.T) {
	c := newTestController(t, Config{Lives: 3})
	c.StartNewGame("Alice")

	res := completeRound(t, c)
	if res.Outcome != InputSequenceComplete {
		t.Fatalf("outcome = %v, want sequence complete", res.Outcome)
	}
	if res.PointsEarned != 10 {
		t.Errorf("first round should earn 10 points, got %d", res.PointsEarned)
	}
	if res.NewLength != 2 {
		t.Errorf("sequence should grow to 2, got %d", res.NewLength)
	}
	if c.State() != StateShowingSequence {
		t.Errorf("state = %v, want showing_sequence", c.State())
	}

	stats := c.PlayerStats()
	if stats.Level != 2 || stats.CurrentStreak != 1 {
		t.Errorf("expected level 2 streak 1, got %+v", stats)
	}
}

func TestIntermediateCorrectInput(t *testing.T) {
	c := newTestController(t, Config{Lives: 3})
	c.StartNewGame("Alice")
	completeRound(t, c)

	// Sequence length 2 now: the first correct symbol is not yet a
	// completed round.
	c.BeginInput()
	res := c.ProcessInput(c.Sequence()[0])
	if res.Outcome != InputCorrect || res.Position != 0 {
		t.Errorf("expected correct at position 0, got %+v", res)
	}
	if c.InputPosition() != 1 {
		t.Errorf("input position = %d, want 1", c.InputPosition())
	}
}

func TestWrongInputLosesLifeAndReshows(t *testing.T) {
	c := newTestController(t, Config{Lives: 3})
	c.StartNewGame("Alice")
	c.BeginInput()

	res := c.ProcessInput(wrongSymbol(c, 0))
	if res.Outcome != InputWrong || res.Position != 0 {
		t.Fatalf("expected wrong at position 0, got %+v", res)
	}
	if res.LivesRemaining != 2 || res.GameOver {
		t.Errorf("one mistake should leave 2 lives, got %+v", res)
	}
	if c.State() != StateShowingSequence {
		t.Errorf("sequence should be re-shown after a mistake, state %v", c.State())
	}

	stats := c.PlayerStats()
	if stats.CurrentStreak != 0 {
		t.Errorf("streak should reset on a mistake, got %d", stats.CurrentStreak)
	}
}

func TestGameOverAfterExhaustingLives(t *testing.T) {
	c := newTestController(t, Config{Lives: 3})
	c.StartNewGame("Alice")

	for i := 0; i < 2; i++ {
		c.BeginInput()
		res := c.ProcessInput(wrongSymbol(c, 0))
		if res.GameOver {
			t.Fatalf("mistake %d should not end the game", i+1)
		}
	}

	c.BeginInput()
	res := c.ProcessInput(wrongSymbol(c, 0))
	if !res.GameOver || res.LivesRemaining != 0 {
		t.Fatalf("third mistake should end the game: %+v", res)
	}
	if c.State() != StateGameOver {
		t.Errorf("state = %v, want game_over", c.State())
	}
	if c.Outcome() != OutcomeGameOver {
		t.Errorf("outcome = %q, want %q", c.Outcome(), OutcomeGameOver)
	}

	commit := c.FinishGame()
	if !commit.Qualified || commit.Rank != 1 {
		t.Errorf("score should land on the empty leaderboard: %+v", commit)
	}
	if commit.ScoreSaved {
		t.Error("memory-only board should report unsaved")
	}
}

func TestRevealSequencePenalty(t *testing.T) {
	c := newTestController(t, Config{Lives: 3})
	c.StartNewGame("Alice")

	// Reveal is only allowed while waiting for input.
	if res := c.RevealSequence(); res.Allowed {
		t.Error("reveal should be rejected during sequence display")
	}

	c.BeginInput()
	res := c.RevealSequence()
	if !res.Allowed || !res.LifeLost || res.LivesRemaining != 2 {
		t.Fatalf("reveal should cost one life: %+v", res)
	}
	if res.Sequence == "" {
		t.Error("reveal should render the sequence")
	}
	if c.State() != StateShowingSequence {
		t.Errorf("state = %v, want showing_sequence", c.State())
	}
}

func TestRevealOnLastLifeEndsGame(t *testing.T) {
	c := newTestController(t, Config{Lives: 1})
	c.StartNewGame("Alice")
	c.BeginInput()

	res := c.RevealSequence()
	if !res.GameOver || res.LivesRemaining != 0 {
		t.Fatalf("reveal on the last life should end the game: %+v", res)
	}
	if c.State() != StateGameOver {
		t.Errorf("state = %v, want game_over", c.State())
	}
}

func TestForfeitReturnsToMenu(t *testing.T) {
	c := newTestController(t, Config{Lives: 3})
	c.StartNewGame("Alice")
	completeRound(t, c)

	c.Forfeit()
	if c.State() != StateMenu {
		t.Errorf("state = %v, want menu", c.State())
	}
	if c.Outcome() != OutcomeForfeit {
		t.Errorf("outcome = %q, want %q", c.Outcome(), OutcomeForfeit)
	}
	if commit := c.FinishGame(); !commit.Qualified {
		t.Errorf("forfeited score should still commit: %+v", commit)
	}
}

func TestTogglePause(t *testing.T) {
	c := newTestController(t, Config{Lives: 3})

	if c.TogglePause() {
		t.Error("menu state should not pause")
	}

	c.StartNewGame("Alice")
	if !c.TogglePause() {
		t.Error("active game should pause")
	}
	if c.State() != StatePaused {
		t.Errorf("state = %v, want paused", c.State())
	}
	if c.TogglePause() {
		t.Error("second toggle should resume")
	}
	if c.State() != StateShowingSequence {
		t.Errorf("resume should restore the prior state, got %v", c.State())
	}
}

func TestProcessInputRejections(t *testing.T) {
	c := newTestController(t, Config{Lives: 3})
	c.StartNewGame("Alice")

	// Not yet waiting for input.
	if res := c.ProcessInput("A"); res.Outcome != InputRejected {
		t.Errorf("input during display should be rejected, got %+v", res)
	}

	c.BeginInput()
	res := c.ProcessInput("")
	if res.Outcome != InputRejected {
		t.Errorf("empty symbol should be rejected, got %+v", res)
	}
	if c.PlayerStats().Lives != 3 {
		t.Error("rejected input must not cost a life")
	}
}

func TestCapacityWin(t *testing.T) {
	eng, err := engine.NewSeeded(testAlphabet, 1, 7)
	if err != nil {
		t.Fatal(err)
	}
	c := New(eng, leaderboard.Open("", 10), Config{Lives: 3})
	c.StartNewGame("Alice")

	full := make([]string, engine.MaxSequenceLength)
	for i := range full {
		full[i] = "A"
	}
	if !eng.SetSequence(full) {
		t.Fatal("could not force a full sequence")
	}

	c.BeginInput()
	var res InputResult
	for range full {
		res = c.ProcessInput("A")
	}

	if res.Outcome != InputCapacityWin || !res.GameOver {
		t.Fatalf("reproducing a full sequence should win: %+v", res)
	}
	if c.Outcome() != OutcomeCapacityWin {
		t.Errorf("outcome = %q, want %q", c.Outcome(), OutcomeCapacityWin)
	}
	if c.State() != StateGameOver {
		t.Errorf("state = %v, want game_over", c.State())
	}
}

func TestRestartKeepsPlayer(t *testing.T) {
	c := newTestController(t, Config{Lives: 3})
	c.StartNewGame("Alice")
	completeRound(t, c)

	if err := c.Restart(); err != nil {
		t.Fatalf("Restart failed: %v", err)
	}

	stats := c.PlayerStats()
	if stats.Name != "Alice" {
		t.Errorf("restart should keep the player name, got %q", stats.Name)
	}
	if stats.Score != 0 || stats.Level != 1 || stats.Lives != 3 {
		t.Errorf("restart should reset session state: %+v", stats)
	}
	if c.SequenceInfo().Length != 1 {
		t.Errorf("restart should regenerate the sequence at initial length")
	}
}

func TestSettingsClamps(t *testing.T) {
	c := newTestController(t, Config{Lives: 3})

	c.SetSequenceSpeed(100)
	if c.SequenceSpeed() != MinSequenceSpeedMs {
		t.Errorf("speed below floor should clamp to %d, got %d", MinSequenceSpeedMs, c.SequenceSpeed())
	}
	c.SetSequenceSpeed(5000)
	if c.SequenceSpeed() != MaxSequenceSpeedMs {
		t.Errorf("speed above ceiling should clamp to %d, got %d", MaxSequenceSpeedMs, c.SequenceSpeed())
	}

	c.SetMaxInputTime(10)
	if c.MaxInputTime() != MinInputTimeMs {
		t.Errorf("input time below floor should clamp to %d, got %d", MinInputTimeMs, c.MaxInputTime())
	}
	c.SetMaxInputTime(99999)
	if c.MaxInputTime() != MaxInputTimeMs {
		t.Errorf("input time above ceiling should clamp to %d, got %d", MaxInputTimeMs, c.MaxInputTime())
	}
}

func TestSpeedAdvancesWithLevel(t *testing.T) {
	c := newTestController(t, Config{Lives: 3, SequenceSpeed: 1000, SpeedDecrement: 200})
	c.StartNewGame("Alice")

	if c.SequenceSpeed() != 1000 {
		t.Fatalf("base speed = %d, want 1000", c.SequenceSpeed())
	}

	completeRound(t, c) // level 2
	if c.SequenceSpeed() != 800 {
		t.Errorf("speed after level 2 = %d, want 800", c.SequenceSpeed())
	}

	// The floor holds no matter how high the level climbs.
	for i := 0; i < 6; i++ {
		completeRound(t, c)
	}
	if c.SequenceSpeed() != MinSequenceSpeedMs {
		t.Errorf("speed should floor at %d, got %d", MinSequenceSpeedMs, c.SequenceSpeed())
	}
}

func TestConfigBlobRoundTrip(t *testing.T) {
	c := newTestController(t, Config{Lives: 3})
	c.SetSoundEnabled(true)
	c.SetSequenceSpeed(700)
	c.SetMaxInputTime(5000)

	blob := c.ExportConfig()

	other := newTestController(t, Config{Lives: 3})
	if err := other.ImportConfig(blob); err != nil {
		t.Fatalf("ImportConfig failed: %v", err)
	}

	if !other.SoundEnabled() || other.SequenceSpeed() != 700 || other.MaxInputTime() != 5000 {
		t.Errorf("config did not round-trip: sound=%v speed=%d input=%d",
			other.SoundEnabled(), other.SequenceSpeed(), other.MaxInputTime())
	}
}

func TestImportConfigMalformedValue(t *testing.T) {
	c := newTestController(t, Config{Lives: 3})
	c.SetSequenceSpeed(700)

	blob := "sequenceSpeed=900\nmaxInputTime=notanumber\n"
	if err := c.ImportConfig(blob); err == nil {
		t.Fatal("malformed numeric value should fail the import")
	}
	if c.SequenceSpeed() != 700 {
		t.Errorf("failed import must not partially apply, speed %d", c.SequenceSpeed())
	}
}

func TestImportConfigIgnoresUnknownKeys(t *testing.T) {
	c := newTestController(t, Config{Lives: 3})

	blob := "futureSetting=whatever\nsoundEnabled=true\n\n# comment\n"
	if err := c.ImportConfig(blob); err != nil {
		t.Fatalf("unknown keys should be ignored: %v", err)
	}
	if !c.SoundEnabled() {
		t.Error("known key alongside unknown key should apply")
	}
}

func TestExportConfigFormat(t *testing.T) {
	c := newTestController(t, Config{Lives: 3})
	blob := c.ExportConfig()

	for _, key := range []string{"soundEnabled", "sequenceSpeed", "maxInputTime", "minSequenceSpeed", "speedDecrement"} {
		if !strings.Contains(blob, key+"=") {
			t.Errorf("export missing %s", key)
		}
	}
}

func TestTotalsWithoutStore(t *testing.T) {
	c := newTestController(t, Config{Lives: 3})
	c.StartNewGame("Alice")
	completeRound(t, c)
	c.Forfeit()

	totals := c.Totals()
	if totals.GamesPlayed != 1 || totals.SequencesCompleted != 1 {
		t.Errorf("unexpected totals: %+v", totals)
	}
	if totals.BestLevel != 2 {
		t.Errorf("best level = %d, want 2", totals.BestLevel)
	}
}

func TestCommitWritesHistory(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("storage setup failed: %v", err)
	}
	defer store.Close()

	c := newTestController(t, Config{Lives: 1})
	c.AttachStore(store)
	c.StartNewGame("Alice")
	c.BeginInput()

	res := c.ProcessInput(wrongSymbol(c, 0))
	if !res.GameOver {
		t.Fatal("single life should end the game on one mistake")
	}

	if commit := c.FinishGame(); !commit.HistorySaved {
		t.Errorf("history row should be saved: %+v", commit)
	}

	records, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 history row, got %d", len(records))
	}
	if records[0].Player != "Alice" || records[0].Outcome != OutcomeGameOver {
		t.Errorf("unexpected history row: %+v", records[0])
	}
}

func TestVersion(t *testing.T) {
	c := newTestController(t, Config{Lives: 3})
	if c.Version() != "1.0.0" {
		t.Errorf("version = %q", c.Version())
	}
}
