package tui

import "fmt"

// notes cycles musical note names across alphabet positions. The
// "sound" is display only: each symbol gets a note glyph next to it.
var notes = []string{"C", "D", "E", "F", "G", "A", "B"}

// noteFor renders the ASCII note for the symbol at the given alphabet
// position. Alternating glyphs give the display a little rhythm.
func noteFor(position int) string {
	glyph := "♪"
	if position%2 == 1 {
		glyph = "♫"
	}
	return fmt.Sprintf("%s %s", glyph, notes[position%len(notes)])
}

// symbolNote finds the symbol's alphabet position and renders its
// note, or an empty string for unknown symbols.
func symbolNote(symbol string, alphabet []string) string {
	for i, s := range alphabet {
		if s == symbol {
			return noteFor(i)
		}
	}
	return ""
}
