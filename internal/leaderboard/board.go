// Package leaderboard maintains a ranked, size-bounded, file-backed
// collection of historical score records. Persistence is best-effort:
// when the backing file is unavailable the board degrades to memory-only
// operation and reports that through status flags instead of errors.
package leaderboard

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const maxNameLength = 20

// Entry is one immutable leaderboard record.
type Entry struct {
	Name     string
	Score    int
	Level    int
	Date     string  // human-readable wall-clock label
	Accuracy float64 // 0..100
	Duration int64   // milliseconds
	Streak   int
}

// rankedBefore orders entries by score, level, streak, then accuracy,
// all descending. This is the single ranking rule for the whole board.
func rankedBefore(a, b Entry) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.Level != b.Level {
		return a.Level > b.Level
	}
	if a.Streak != b.Streak {
		return a.Streak > b.Streak
	}
	return a.Accuracy > b.Accuracy
}

// Extras carries the optional fields of a new score. The zero value
// maps to the documented defaults: level 1, accuracy 0, duration 0,
// streak 0.
type Extras struct {
	Level    int
	Accuracy float64
	Duration int64
	Streak   int
}

// AddResult reports the outcome of an AddScore call.
type AddResult struct {
	Err         error
	Rank        int // 1-based position after insertion, 0 on failure
	IsNewRecord bool
	Saved       bool
	Total       int
}

// ImportResult reports the outcome of an Import call.
type ImportResult struct {
	Err      error
	Imported int
	Total    int
	Saved    bool
}

// Board is the ranked, bounded score store. Not safe for concurrent
// use; it is owned by a single controller.
type Board struct {
	entries    []Entry
	maxEntries int
	path       string
	persistent bool

	// clock supplies the wall-clock date label stamped on new records;
	// elapsed times never flow through it.
	clock func() time.Time
}

// Open creates a board backed by the file at path, loading whatever
// valid records it holds. An unusable path yields a working memory-only
// board rather than an error.
func Open(path string, maxEntries int) *Board {
	if maxEntries < 1 {
		maxEntries = 1
	}

	b := &Board{
		maxEntries: maxEntries,
		path:       path,
		clock:      time.Now,
	}
	b.persistent = b.checkStorage()
	b.Reload()
	return b
}

// checkStorage probes whether the backing file can be written.
func (b *Board) checkStorage() bool {
	if b.path == "" {
		return false
	}
	if dir := filepath.Dir(b.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false
		}
	}
	f, err := os.OpenFile(b.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// Persistent reports whether the board has a usable backing file.
func (b *Board) Persistent() bool { return b.persistent }

// Path returns the backing file path, empty for memory-only boards.
func (b *Board) Path() string { return b.path }

// Reload re-reads the backing file, replacing the in-memory set.
// Malformed lines are skipped; zero valid records yields an empty
// board, not an error.
func (b *Board) Reload() bool {
	b.entries = b.entries[:0]
	if !b.persistent {
		return false
	}

	data, err := os.ReadFile(b.path)
	if err != nil {
		return false
	}

	b.entries = parseRecords(string(data))
	b.normalize()
	return true
}

// normalize re-validates loaded entries, re-sorts, and truncates to the
// bound.
func (b *Board) normalize() {
	valid := b.entries[:0]
	for _, e := range b.entries {
		if e.Name == "" || e.Score < 0 {
			continue
		}
		if runes := []rune(e.Name); len(runes) > maxNameLength {
			e.Name = string(runes[:maxNameLength])
		}
		if e.Level < 1 {
			e.Level = 1
		}
		if e.Accuracy < 0 {
			e.Accuracy = 0
		} else if e.Accuracy > 100 {
			e.Accuracy = 100
		}
		valid = append(valid, e)
	}
	b.entries = valid

	b.sortEntries()
	if len(b.entries) > b.maxEntries {
		b.entries = b.entries[:b.maxEntries]
	}
}

func (b *Board) sortEntries() {
	sort.SliceStable(b.entries, func(i, j int) bool {
		return rankedBefore(b.entries[i], b.entries[j])
	})
}

// Save rewrites the backing file in full, with two leading comment
// lines documenting the format. Reports false for memory-only boards
// or write failures; in-memory state stays authoritative either way.
func (b *Board) Save() bool {
	if !b.persistent {
		return false
	}

	var sb strings.Builder
	sb.WriteString("# Simon High Scores\n")
	sb.WriteString("# Format: name|score|level|date|accuracy|durationMillis|streak\n")
	for _, e := range b.entries {
		sb.WriteString(formatLine(e))
		sb.WriteByte('\n')
	}

	return os.WriteFile(b.path, []byte(sb.String()), 0o644) == nil
}

// AddScore inserts a new record and persists the board. The name is
// truncated to 20 runes; extras fall back to their documented defaults.
func (b *Board) AddScore(name string, score int, extras Extras) AddResult {
	if name == "" || score < 0 {
		return AddResult{
			Err: fmt.Errorf("leaderboard: player name must be non-empty and score non-negative"),
		}
	}

	if runes := []rune(name); len(runes) > maxNameLength {
		name = string(runes[:maxNameLength])
	}

	entry := Entry{
		Name:     name,
		Score:    score,
		Date:     formatTimestamp(b.clock()),
		Level:    extras.Level,
		Accuracy: extras.Accuracy,
		Duration: extras.Duration,
		Streak:   extras.Streak,
	}
	if entry.Level < 1 {
		entry.Level = 1
	}

	isNewRecord := len(b.entries) == 0 || score > b.entries[0].Score

	b.entries = append(b.entries, entry)
	b.sortEntries()
	if len(b.entries) > b.maxEntries {
		b.entries = b.entries[:b.maxEntries]
	}

	rank := 0
	for i, e := range b.entries {
		if e.Name == entry.Name && e.Score == entry.Score && e.Date == entry.Date {
			rank = i + 1
			break
		}
	}

	return AddResult{
		Rank:        rank,
		IsNewRecord: isNewRecord,
		Saved:       b.Save(),
		Total:       len(b.entries),
	}
}

// Scores returns the top limit entries in ranked order; a negative
// limit or one at least the size of the board returns everything.
func (b *Board) Scores(limit int) []Entry {
	if limit < 0 || limit >= len(b.entries) {
		return append([]Entry(nil), b.entries...)
	}
	return append([]Entry(nil), b.entries[:limit]...)
}

// TopScore returns the single highest-ranked entry.
func (b *Board) TopScore() (Entry, bool) {
	if len(b.entries) == 0 {
		return Entry{}, false
	}
	return b.entries[0], true
}

// PlayerScores returns every entry whose name matches case-insensitively,
// in ranked order.
func (b *Board) PlayerScores(name string) []Entry {
	var out []Entry
	for _, e := range b.entries {
		if strings.EqualFold(e.Name, name) {
			out = append(out, e)
		}
	}
	return out
}

// PlayerBestScore returns the player's top-ranked entry.
func (b *Board) PlayerBestScore(name string) (Entry, bool) {
	scores := b.PlayerScores(name)
	if len(scores) == 0 {
		return Entry{}, false
	}
	return scores[0], true
}

// IsQualifying reports whether a score would appear in the retained set
// if inserted now.
func (b *Board) IsQualifying(score int) bool {
	if score < 0 {
		return false
	}
	if len(b.entries) < b.maxEntries {
		return true
	}
	return score > b.entries[len(b.entries)-1].Score
}

// RemoveAt removes the entry at the given 0-based rank position and
// persists. Reports false on an out-of-range index with no mutation.
func (b *Board) RemoveAt(index int) bool {
	if index < 0 || index >= len(b.entries) {
		return false
	}
	b.entries = append(b.entries[:index], b.entries[index+1:]...)
	b.Save()
	return true
}

// RemovePlayer removes every entry matching the name case-insensitively
// and returns the removed count, persisting if anything changed.
func (b *Board) RemovePlayer(name string) int {
	kept := b.entries[:0]
	for _, e := range b.entries {
		if !strings.EqualFold(e.Name, name) {
			kept = append(kept, e)
		}
	}

	removed := len(b.entries) - len(kept)
	b.entries = kept
	if removed > 0 {
		b.Save()
	}
	return removed
}

// Clear empties the board and persists the empty set.
func (b *Board) Clear() bool {
	b.entries = b.entries[:0]
	return b.Save()
}

// Export renders the full board as pipe-delimited text with a comment
// header, suitable for Import.
func (b *Board) Export() string {
	var sb strings.Builder
	sb.WriteString("# Simon High Scores Export\n")
	sb.WriteString(fmt.Sprintf("# Exported: %s\n", formatTimestamp(b.clock())))
	sb.WriteString(fmt.Sprintf("# Records: %d\n", len(b.entries)))
	sb.WriteString("# Format: name|score|level|date|accuracy|durationMillis|streak\n\n")

	for _, e := range b.entries {
		sb.WriteString(formatLine(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Import consumes pipe-delimited text, skipping malformed lines. With
// merge false the existing set is replaced, otherwise imported records
// are merged in. The result reports failure when no valid record was
// found.
func (b *Board) Import(data string, merge bool) ImportResult {
	if !merge {
		b.entries = b.entries[:0]
	}

	imported := parseRecords(data)
	if len(imported) == 0 {
		return ImportResult{
			Err: fmt.Errorf("leaderboard: no valid records found in import data"),
		}
	}

	b.entries = append(b.entries, imported...)
	b.normalize()

	return ImportResult{
		Imported: len(imported),
		Total:    len(b.entries),
		Saved:    b.Save(),
	}
}

// Len returns the number of retained entries.
func (b *Board) Len() int { return len(b.entries) }

// MaxEntries returns the configured bound.
func (b *Board) MaxEntries() int { return b.maxEntries }

// SetMaxEntries changes the bound, truncating and persisting if the
// board shrank. Reports false for bounds below 1.
func (b *Board) SetMaxEntries(n int) bool {
	if n < 1 {
		return false
	}
	b.maxEntries = n
	if len(b.entries) > n {
		b.entries = b.entries[:n]
		b.Save()
	}
	return true
}

// formatTimestamp renders the wall-clock date label for records.
func formatTimestamp(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}
