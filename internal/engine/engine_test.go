package engine

import (
	"errors"
	"testing"
)

var testAlphabet = []string{"A", "B", "C", "D"}

func TestNewValidation(t *testing.T) {
	if _, err := New(nil, 1); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("empty alphabet should fail with ErrInvalidConfig, got %v", err)
	}

	if _, err := New([]string{"A", "B", "A"}, 1); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("duplicate symbols should fail with ErrInvalidConfig, got %v", err)
	}

	if _, err := New(testAlphabet, 0); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero initial length should fail with ErrInvalidConfig, got %v", err)
	}

	// Case-sensitive comparison: "a" and "A" are distinct symbols
	if _, err := New([]string{"a", "A"}, 1); err != nil {
		t.Errorf("case-differing symbols should be accepted, got %v", err)
	}
}

func TestInitialSequence(t *testing.T) {
	for _, length := range []int{1, 5, 50} {
		e, err := NewSeeded(testAlphabet, length, 42)
		if err != nil {
			t.Fatalf("NewSeeded(len=%d) failed: %v", length, err)
		}

		if e.Len() != length {
			t.Errorf("expected length %d, got %d", length, e.Len())
		}

		for i, sym := range e.Sequence() {
			if !e.inAlphabet(sym) {
				t.Errorf("element %d (%q) not in alphabet", i, sym)
			}
		}
	}
}

func TestAppendRandomGrowth(t *testing.T) {
	e, err := NewSeeded(testAlphabet, 1, 7)
	if err != nil {
		t.Fatalf("NewSeeded failed: %v", err)
	}

	// Initial length 1 plus seven appends -> 8
	for i := 0; i < 7; i++ {
		sym := e.AppendRandom()
		if sym == "" {
			t.Fatalf("append %d unexpectedly reported capacity", i)
		}
	}

	if e.Len() != 8 {
		t.Errorf("expected length 8, got %d", e.Len())
	}
	if e.IsAtCapacity() {
		t.Error("sequence of 8 should not be at capacity")
	}
	for i, sym := range e.Sequence() {
		if !e.inAlphabet(sym) {
			t.Errorf("element %d (%q) not in alphabet", i, sym)
		}
	}
}

func TestAppendRandomCapacity(t *testing.T) {
	e, err := NewSeeded(testAlphabet, 1, 1)
	if err != nil {
		t.Fatalf("NewSeeded failed: %v", err)
	}

	for e.Len() < MaxSequenceLength {
		if sym := e.AppendRandom(); sym == "" {
			t.Fatalf("premature capacity signal at length %d", e.Len())
		}
	}

	if !e.IsAtCapacity() {
		t.Error("engine should report capacity at max length")
	}

	before := e.Sequence()
	if sym := e.AppendRandom(); sym != "" {
		t.Errorf("append at capacity should return empty sentinel, got %q", sym)
	}
	if e.Len() != MaxSequenceLength {
		t.Errorf("append at capacity must not grow sequence, length %d", e.Len())
	}
	for i, sym := range e.Sequence() {
		if sym != before[i] {
			t.Errorf("append at capacity mutated element %d", i)
		}
	}
}

func TestValidateExactMatch(t *testing.T) {
	e, err := NewSeeded(testAlphabet, 5, 99)
	if err != nil {
		t.Fatalf("NewSeeded failed: %v", err)
	}

	seq := e.Sequence()
	ok, idx := e.Validate(seq, -1)
	if !ok {
		t.Error("exact copy should validate")
	}
	if idx != len(seq)-1 {
		t.Errorf("expected last checked index %d, got %d", len(seq)-1, idx)
	}
}

func TestValidateFirstMismatch(t *testing.T) {
	e, err := NewSeeded(testAlphabet, 1, 3)
	if err != nil {
		t.Fatalf("NewSeeded failed: %v", err)
	}
	if !e.SetSequence([]string{"A", "B", "C", "D", "A"}) {
		t.Fatal("SetSequence failed")
	}

	for k := 0; k < 5; k++ {
		candidate := []string{"A", "B", "C", "D", "A"}
		// Divergence at exactly position k
		if candidate[k] == "A" {
			candidate[k] = "B"
		} else {
			candidate[k] = "A"
		}

		ok, idx := e.Validate(candidate, -1)
		if ok {
			t.Errorf("divergence at %d should fail validation", k)
		}
		if idx != k {
			t.Errorf("expected mismatch index %d, got %d", k, idx)
		}
	}
}

func TestValidatePrefixOnly(t *testing.T) {
	e, err := NewSeeded(testAlphabet, 1, 3)
	if err != nil {
		t.Fatalf("NewSeeded failed: %v", err)
	}
	if !e.SetSequence([]string{"A", "B", "C", "D"}) {
		t.Fatal("SetSequence failed")
	}

	// Candidate diverges at index 2, but we only check up to index 1.
	candidate := []string{"A", "B", "D", "D"}
	ok, idx := e.Validate(candidate, 1)
	if !ok || idx != 1 {
		t.Errorf("prefix check up to 1 should pass at index 1, got (%v, %d)", ok, idx)
	}

	// Full check reports the divergence position.
	ok, idx = e.Validate(candidate, -1)
	if ok || idx != 2 {
		t.Errorf("full check should fail at index 2, got (%v, %d)", ok, idx)
	}
}

func TestValidateCandidateLongerThanSequence(t *testing.T) {
	e, err := NewSeeded(testAlphabet, 1, 3)
	if err != nil {
		t.Fatalf("NewSeeded failed: %v", err)
	}
	if !e.SetSequence([]string{"A", "B"}) {
		t.Fatal("SetSequence failed")
	}

	ok, idx := e.Validate([]string{"A", "B", "C"}, -1)
	if ok || idx != 2 {
		t.Errorf("overlong candidate should fail at index 2, got (%v, %d)", ok, idx)
	}
}

func TestSetSequenceRejectsForeignSymbols(t *testing.T) {
	e, err := NewSeeded(testAlphabet, 3, 11)
	if err != nil {
		t.Fatalf("NewSeeded failed: %v", err)
	}

	before := e.Sequence()
	if e.SetSequence([]string{"A", "X", "B"}) {
		t.Error("SetSequence should reject symbols outside the alphabet")
	}

	after := e.Sequence()
	if len(after) != len(before) {
		t.Fatalf("rejected SetSequence changed length: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("rejected SetSequence mutated element %d", i)
		}
	}
}

func TestSetSequenceRejectsOverCap(t *testing.T) {
	e, err := NewSeeded([]string{"A"}, 1, 11)
	if err != nil {
		t.Fatalf("NewSeeded failed: %v", err)
	}

	long := make([]string, MaxSequenceLength+1)
	for i := range long {
		long[i] = "A"
	}
	if e.SetSequence(long) {
		t.Error("SetSequence should reject candidates longer than the cap")
	}
	if e.Len() != 1 {
		t.Errorf("rejected SetSequence changed length to %d", e.Len())
	}
}

func TestUpdateAlphabet(t *testing.T) {
	e, err := NewSeeded(testAlphabet, 3, 5)
	if err != nil {
		t.Fatalf("NewSeeded failed: %v", err)
	}

	if e.UpdateAlphabet(nil) {
		t.Error("empty replacement alphabet should be rejected")
	}
	if e.UpdateAlphabet([]string{"X", "X"}) {
		t.Error("duplicate replacement alphabet should be rejected")
	}

	if !e.UpdateAlphabet([]string{"X", "Y"}) {
		t.Fatal("valid replacement alphabet was rejected")
	}
	if e.Len() != 3 {
		t.Errorf("update should reset sequence to initial length 3, got %d", e.Len())
	}
	for i, sym := range e.Sequence() {
		if sym != "X" && sym != "Y" {
			t.Errorf("element %d (%q) not drawn from new alphabet", i, sym)
		}
	}
}

func TestReset(t *testing.T) {
	e, err := NewSeeded(testAlphabet, 2, 8)
	if err != nil {
		t.Fatalf("NewSeeded failed: %v", err)
	}

	for i := 0; i < 10; i++ {
		e.AppendRandom()
	}
	e.Reset()

	if e.Len() != 2 {
		t.Errorf("reset should restore initial length 2, got %d", e.Len())
	}
}

func TestElementAt(t *testing.T) {
	e, err := NewSeeded(testAlphabet, 1, 8)
	if err != nil {
		t.Fatalf("NewSeeded failed: %v", err)
	}
	if !e.SetSequence([]string{"C", "D"}) {
		t.Fatal("SetSequence failed")
	}

	if got := e.ElementAt(1); got != "D" {
		t.Errorf("ElementAt(1) = %q, want D", got)
	}
	if got := e.ElementAt(-1); got != "" {
		t.Errorf("ElementAt(-1) = %q, want empty", got)
	}
	if got := e.ElementAt(2); got != "" {
		t.Errorf("ElementAt(2) = %q, want empty", got)
	}
}

func TestStringRendering(t *testing.T) {
	e, err := NewSeeded(testAlphabet, 1, 8)
	if err != nil {
		t.Fatalf("NewSeeded failed: %v", err)
	}
	if !e.SetSequence([]string{"A", "C", "B"}) {
		t.Fatal("SetSequence failed")
	}

	if got := e.String(" -> "); got != "A -> C -> B" {
		t.Errorf("String() = %q", got)
	}
}

func TestStats(t *testing.T) {
	e, err := NewSeeded(testAlphabet, 1, 8)
	if err != nil {
		t.Fatalf("NewSeeded failed: %v", err)
	}
	if !e.SetSequence([]string{"A", "A", "B", "A", "C"}) {
		t.Fatal("SetSequence failed")
	}

	s := e.Stats()
	if s.Length != 5 || s.MaxLength != MaxSequenceLength {
		t.Errorf("unexpected length stats: %+v", s)
	}
	if s.Counts["A"] != 3 || s.Counts["B"] != 1 || s.Counts["C"] != 1 || s.Counts["D"] != 0 {
		t.Errorf("unexpected counts: %v", s.Counts)
	}
	if s.DistinctUsed != 3 {
		t.Errorf("expected 3 distinct symbols used, got %d", s.DistinctUsed)
	}
	if s.MaxCount != 3 || s.MinCount != 1 {
		t.Errorf("expected max/min 3/1, got %d/%d", s.MaxCount, s.MinCount)
	}
}

func TestPreviewNextDoesNotGrow(t *testing.T) {
	e, err := NewSeeded(testAlphabet, 2, 8)
	if err != nil {
		t.Fatalf("NewSeeded failed: %v", err)
	}

	sym := e.PreviewNext()
	if !e.inAlphabet(sym) {
		t.Errorf("preview returned foreign symbol %q", sym)
	}
	if e.Len() != 2 {
		t.Errorf("preview must not grow the sequence, length %d", e.Len())
	}
}

func TestDeterminism(t *testing.T) {
	e1, err := NewSeeded(testAlphabet, 3, 12345)
	if err != nil {
		t.Fatalf("NewSeeded failed: %v", err)
	}
	e2, err := NewSeeded(testAlphabet, 3, 12345)
	if err != nil {
		t.Fatalf("NewSeeded failed: %v", err)
	}

	for i := 0; i < 20; i++ {
		if a, b := e1.AppendRandom(), e2.AppendRandom(); a != b {
			t.Fatalf("same seed diverged at append %d: %q vs %q", i, a, b)
		}
	}
}
