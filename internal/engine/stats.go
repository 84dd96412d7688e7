package engine

// Stats summarizes symbol usage over the current sequence.
type Stats struct {
	Length    int
	MaxLength int

	// Counts holds per-symbol occurrence counts for every alphabet
	// symbol, including those with zero occurrences.
	Counts map[string]int

	// DistinctUsed is the number of alphabet symbols that appear at
	// least once in the sequence.
	DistinctUsed int

	// MaxCount and MinCount are the highest and lowest occurrence
	// counts among symbols that actually appear. Both are 0 for an
	// empty sequence.
	MaxCount int
	MinCount int
}

// Stats computes occurrence statistics for the current sequence.
func (e *Engine) Stats() Stats {
	s := Stats{
		Length:    len(e.sequence),
		MaxLength: MaxSequenceLength,
		Counts:    make(map[string]int, len(e.alphabet)),
	}

	for _, sym := range e.alphabet {
		s.Counts[sym] = 0
	}
	for _, sym := range e.sequence {
		s.Counts[sym]++
	}

	for _, count := range s.Counts {
		if count == 0 {
			continue
		}
		s.DistinctUsed++
		if count > s.MaxCount {
			s.MaxCount = count
		}
		if s.MinCount == 0 || count < s.MinCount {
			s.MinCount = count
		}
	}

	return s
}
