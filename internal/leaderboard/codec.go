package leaderboard

import (
	"fmt"
	"strconv"
	"strings"
)

// The persisted form is line-oriented UTF-8 text, one record per line:
//
//	name|score|level|date|accuracy|durationMillis|streak
//
// Lines beginning with '#' and blank lines are ignored. A record needs
// at least the first four fields; accuracy, duration and streak default
// to zero when absent. Malformed lines are skipped, never fatal.

const pipeFieldCount = 7

// formatLine renders one entry in the pipe-delimited wire form.
func formatLine(e Entry) string {
	return fmt.Sprintf("%s|%d|%d|%s|%.1f|%d|%d",
		e.Name, e.Score, e.Level, e.Date, e.Accuracy, e.Duration, e.Streak)
}

// parseLine decodes one pipe-delimited record. It reports false for
// comments, blanks, records with fewer than four fields, unparseable
// numerics, empty names, or negative scores.
func parseLine(line string) (Entry, bool) {
	line = strings.TrimRight(line, "\r")
	if line == "" || strings.HasPrefix(line, "#") {
		return Entry{}, false
	}

	fields := strings.Split(line, "|")
	if len(fields) < 4 {
		return Entry{}, false
	}

	e := Entry{
		Name:  fields[0],
		Date:  fields[3],
		Level: 1,
	}
	if e.Name == "" {
		return Entry{}, false
	}

	score, err := strconv.Atoi(fields[1])
	if err != nil || score < 0 {
		return Entry{}, false
	}
	e.Score = score

	if fields[2] != "" {
		level, err := strconv.Atoi(fields[2])
		if err != nil {
			return Entry{}, false
		}
		e.Level = level
	}

	if len(fields) > 4 && fields[4] != "" {
		acc, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return Entry{}, false
		}
		e.Accuracy = acc
	}

	if len(fields) > 5 && fields[5] != "" {
		dur, err := strconv.ParseInt(fields[5], 10, 64)
		if err != nil {
			return Entry{}, false
		}
		e.Duration = dur
	}

	if len(fields) > 6 && fields[6] != "" {
		streak, err := strconv.Atoi(fields[6])
		if err != nil {
			return Entry{}, false
		}
		e.Streak = streak
	}

	return e, true
}

// parseRecords decodes every valid record in a blob of lines.
func parseRecords(data string) []Entry {
	var entries []Entry
	for _, line := range strings.Split(data, "\n") {
		if e, ok := parseLine(line); ok {
			entries = append(entries, e)
		}
	}
	return entries
}
