// Package engine implements the authoritative Simon symbol sequence:
// random growth over a fixed alphabet and prefix validation of player
// input against it. The engine contains pure logic with no I/O.
package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// MaxSequenceLength is the hard cap on the sequence. Reaching it is the
// win condition, not an error.
const MaxSequenceLength = 50

// ErrInvalidConfig is returned when an engine is constructed or
// reconfigured with an unusable alphabet or length.
var ErrInvalidConfig = errors.New("engine: invalid configuration")

// Engine owns the growing symbol sequence and the alphabet it is drawn from.
// Not safe for concurrent use; the controller is the sole caller.
type Engine struct {
	alphabet      []string
	sequence      []string
	initialLength int
	rng           *rand.Rand
}

// New creates an engine with a time-based seed and populates the sequence
// with initialLength independent uniform draws.
func New(alphabet []string, initialLength int) (*Engine, error) {
	return NewSeeded(alphabet, initialLength, time.Now().UnixNano())
}

// NewSeeded creates an engine with an explicit RNG seed for reproducible
// sequences in tests and seeded runs.
func NewSeeded(alphabet []string, initialLength int, seed int64) (*Engine, error) {
	if err := checkAlphabet(alphabet); err != nil {
		return nil, err
	}
	if initialLength < 1 {
		return nil, fmt.Errorf("%w: initial length must be at least 1, got %d", ErrInvalidConfig, initialLength)
	}

	e := &Engine{
		alphabet:      append([]string(nil), alphabet...),
		initialLength: initialLength,
		rng:           rand.New(rand.NewSource(seed)),
	}
	e.regenerate()
	return e, nil
}

// checkAlphabet rejects empty alphabets and case-sensitive exact duplicates.
func checkAlphabet(alphabet []string) error {
	if len(alphabet) == 0 {
		return fmt.Errorf("%w: alphabet is empty", ErrInvalidConfig)
	}
	seen := make(map[string]struct{}, len(alphabet))
	for _, sym := range alphabet {
		if _, dup := seen[sym]; dup {
			return fmt.Errorf("%w: duplicate symbol %q", ErrInvalidConfig, sym)
		}
		seen[sym] = struct{}{}
	}
	return nil
}

// regenerate discards the sequence and redraws it at the initial length.
func (e *Engine) regenerate() {
	e.sequence = e.sequence[:0]
	for i := 0; i < e.initialLength; i++ {
		e.AppendRandom()
	}
}

// draw picks one symbol uniformly from the alphabet.
func (e *Engine) draw() string {
	return e.alphabet[e.rng.Intn(len(e.alphabet))]
}

// AppendRandom draws one symbol uniformly and appends it, returning the
// drawn symbol. At capacity it mutates nothing and returns "" so the
// caller can trigger the win condition.
func (e *Engine) AppendRandom() string {
	if len(e.sequence) >= MaxSequenceLength {
		return ""
	}
	sym := e.draw()
	e.sequence = append(e.sequence, sym)
	return sym
}

// PreviewNext draws a symbol without appending it to the sequence.
func (e *Engine) PreviewNext() string {
	return e.draw()
}

// Reset regenerates the sequence at the initial length.
func (e *Engine) Reset() {
	e.regenerate()
}

// SetSequence force-replaces the sequence, used for deterministic testing.
// It reports false and mutates nothing if any element is outside the
// alphabet or the candidate exceeds the cap.
func (e *Engine) SetSequence(candidate []string) bool {
	if len(candidate) > MaxSequenceLength {
		return false
	}
	for _, sym := range candidate {
		if !e.inAlphabet(sym) {
			return false
		}
	}
	e.sequence = append(e.sequence[:0:0], candidate...)
	return true
}

// UpdateAlphabet replaces the alphabet and resets the sequence at the
// initial length. Reports false and mutates nothing if the new alphabet
// is empty or contains duplicates.
func (e *Engine) UpdateAlphabet(newAlphabet []string) bool {
	if checkAlphabet(newAlphabet) != nil {
		return false
	}
	e.alphabet = append([]string(nil), newAlphabet...)
	e.regenerate()
	return true
}

func (e *Engine) inAlphabet(sym string) bool {
	for _, a := range e.alphabet {
		if a == sym {
			return true
		}
	}
	return false
}

// Validate compares candidate against the sequence positionwise, stopping
// at the first divergence. upTo limits the check to candidate[0..upTo];
// upTo = -1 checks the entire candidate. Returns whether all checked
// positions matched, together with the last checked index on success or
// the first mismatch index on failure. Positions past the sequence end
// count as mismatches.
func (e *Engine) Validate(candidate []string, upTo int) (bool, int) {
	checkLen := len(candidate)
	if upTo >= 0 && upTo+1 < checkLen {
		checkLen = upTo + 1
	}

	for i := 0; i < checkLen; i++ {
		if i >= len(e.sequence) {
			return false, i
		}
		if candidate[i] != e.sequence[i] {
			return false, i
		}
	}
	return true, checkLen - 1
}

// IsAtCapacity reports whether the sequence has reached the hard cap.
func (e *Engine) IsAtCapacity() bool {
	return len(e.sequence) >= MaxSequenceLength
}

// Len returns the current sequence length.
func (e *Engine) Len() int {
	return len(e.sequence)
}

// Sequence returns a copy of the current sequence.
func (e *Engine) Sequence() []string {
	return append([]string(nil), e.sequence...)
}

// Alphabet returns a copy of the current alphabet.
func (e *Engine) Alphabet() []string {
	return append([]string(nil), e.alphabet...)
}

// ElementAt returns the symbol at index i, or "" if out of range.
func (e *Engine) ElementAt(i int) string {
	if i < 0 || i >= len(e.sequence) {
		return ""
	}
	return e.sequence[i]
}

// String renders the sequence joined by the given separator.
func (e *Engine) String(separator string) string {
	return strings.Join(e.sequence, separator)
}
