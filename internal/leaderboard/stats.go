package leaderboard

import "strings"

// Stats aggregates the retained entries for the settings screen.
type Stats struct {
	Total             int
	AverageScore      int
	HighestScore      int
	LowestScore       int
	AverageLevel      int
	AverageAccuracy   float64
	DistinctPlayers   int
	AverageDurationMs int64
}

// Statistics computes aggregates over the current entries. The zero
// Stats value is returned for an empty board.
func (b *Board) Statistics() Stats {
	if len(b.entries) == 0 {
		return Stats{}
	}

	var (
		totalScore    int
		totalLevel    int
		totalAccuracy float64
		totalDuration int64
	)
	players := make(map[string]struct{})

	for _, e := range b.entries {
		totalScore += e.Score
		totalLevel += e.Level
		totalAccuracy += e.Accuracy
		totalDuration += e.Duration
		players[strings.ToLower(e.Name)] = struct{}{}
	}

	n := len(b.entries)
	return Stats{
		Total:             n,
		AverageScore:      totalScore / n,
		HighestScore:      b.entries[0].Score,
		LowestScore:       b.entries[n-1].Score,
		AverageLevel:      (totalLevel + n/2) / n,
		AverageAccuracy:   totalAccuracy / float64(n),
		DistinctPlayers:   len(players),
		AverageDurationMs: totalDuration / int64(n),
	}
}
