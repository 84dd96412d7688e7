package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveSession(SessionRecord{
		Player:        "Alice",
		Score:         150,
		Level:         3,
		BestStreak:    4,
		Accuracy:      80,
		DurationMs:    45000,
		AvgReactionMs: 850,
		Correct:       8,
		Wrong:         2,
		Outcome:       "game_over",
	})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	_, err = store.SaveSession(SessionRecord{Player: "Bob", Score: 60, Level: 2, Outcome: "forfeit"})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	records, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(records))
	}

	// Newest first
	if records[0].Player != "Bob" {
		t.Errorf("Expected newest session first, got %s", records[0].Player)
	}

	alice := records[1]
	if alice.Score != 150 || alice.Level != 3 || alice.BestStreak != 4 {
		t.Errorf("Session fields not round-tripped: %+v", alice)
	}
	if alice.Accuracy != 80 || alice.DurationMs != 45000 || alice.AvgReactionMs != 850 {
		t.Errorf("Session metrics not round-tripped: %+v", alice)
	}
	if alice.Outcome != "game_over" {
		t.Errorf("Expected outcome game_over, got %s", alice.Outcome)
	}
}

func TestStorePlayerSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(SessionRecord{Player: "Alice", Score: 100, Level: 2, Outcome: "game_over"})
	store.SaveSession(SessionRecord{Player: "Bob", Score: 200, Level: 3, Outcome: "game_over"})
	store.SaveSession(SessionRecord{Player: "ALICE", Score: 300, Level: 4, Outcome: "capacity_win"})

	records, err := store.PlayerSessions("alice", 10)
	if err != nil {
		t.Fatalf("PlayerSessions() failed: %v", err)
	}

	if len(records) != 2 {
		t.Errorf("Expected 2 case-insensitive matches, got %d", len(records))
	}

	none, err := store.PlayerSessions("nobody", 10)
	if err != nil {
		t.Fatalf("PlayerSessions() failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected no sessions for unknown player, got %d", len(none))
	}
}

func TestStoreRecentSessionsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveSession(SessionRecord{Player: "P", Score: (i + 1) * 10, Level: 1, Outcome: "game_over"})
	}

	records, err := store.RecentSessions(3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}

	if len(records) != 3 {
		t.Errorf("Expected 3 sessions with limit, got %d", len(records))
	}
}

func TestStoreBestSession(t *testing.T) {
	store := openTestStore(t)

	// No sessions yet
	best, err := store.BestSession("Alice")
	if err != nil {
		t.Fatalf("BestSession() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected nil best session for empty history, got %+v", best)
	}

	store.SaveSession(SessionRecord{Player: "Alice", Score: 100, Level: 2, Outcome: "game_over"})
	store.SaveSession(SessionRecord{Player: "alice", Score: 300, Level: 5, Outcome: "game_over"})
	store.SaveSession(SessionRecord{Player: "Alice", Score: 200, Level: 3, Outcome: "game_over"})

	best, err = store.BestSession("ALICE")
	if err != nil {
		t.Fatalf("BestSession() failed: %v", err)
	}
	if best == nil || best.Score != 300 {
		t.Errorf("Expected best score 300, got %+v", best)
	}
}

func TestStoreAllTotals(t *testing.T) {
	store := openTestStore(t)

	// Empty history
	totals, err := store.AllTotals()
	if err != nil {
		t.Fatalf("AllTotals() failed: %v", err)
	}
	if totals.GamesPlayed != 0 || totals.HighScore != 0 {
		t.Errorf("Expected zero totals for empty history, got %+v", totals)
	}

	store.SaveSession(SessionRecord{Player: "A", Score: 100, Level: 3, BestStreak: 2, Correct: 5, Outcome: "game_over"})
	store.SaveSession(SessionRecord{Player: "B", Score: 300, Level: 7, BestStreak: 6, Correct: 12, Outcome: "game_over"})

	totals, err = store.AllTotals()
	if err != nil {
		t.Fatalf("AllTotals() failed: %v", err)
	}

	if totals.GamesPlayed != 2 {
		t.Errorf("Expected 2 games played, got %d", totals.GamesPlayed)
	}
	if totals.SequencesCompleted != 17 {
		t.Errorf("Expected 17 sequences completed, got %d", totals.SequencesCompleted)
	}
	if totals.BestLevel != 7 || totals.LongestStreak != 6 {
		t.Errorf("Expected best level 7 and longest streak 6, got %+v", totals)
	}
	if totals.HighScore != 300 || totals.AvgScore != 200 {
		t.Errorf("Expected high 300 avg 200, got %+v", totals)
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(SessionRecord{Player: "A", Score: 100, Level: 1, Outcome: "game_over"})
	store.SaveSession(SessionRecord{Player: "B", Score: 200, Level: 2, Outcome: "game_over"})

	if err := store.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	records, _ := store.RecentSessions(10)
	if len(records) != 0 {
		t.Errorf("Expected 0 sessions after clear, got %d", len(records))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
