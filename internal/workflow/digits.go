package workflow

import "strings"

// CodeLength is the number of cells in the code input.
const CodeLength = 6

// DigitBuffer models the 6-cell verification-code input: one numeral per
// cell, a focused cell, auto-advance on typing, backspace-on-empty moving
// back, and all-or-nothing numeric paste.
type DigitBuffer struct {
	cells [CodeLength]string
	focus int
}

// Focus returns the index of the focused cell.
func (b DigitBuffer) Focus() int { return b.focus }

// Cells returns a copy of the cell contents.
func (b DigitBuffer) Cells() [CodeLength]string { return b.cells }

// Type enters one character into the focused cell. Non-numerals are ignored.
// A digit fills the cell and advances focus to the next cell.
func (b *DigitBuffer) Type(ch rune) {
	if ch < '0' || ch > '9' {
		return
	}
	b.cells[b.focus] = string(ch)
	if b.focus < CodeLength-1 {
		b.focus++
	}
}

// Backspace clears the focused cell, or moves focus to the previous cell
// when the focused cell is already empty.
func (b *DigitBuffer) Backspace() {
	if b.cells[b.focus] != "" {
		b.cells[b.focus] = ""
		return
	}
	if b.focus > 0 {
		b.focus--
	}
}

// Paste fills cells from cell 0 with up to CodeLength pasted numerals and
// focuses the cell just past the filled range, clamped to the last cell.
// It only takes effect if every pasted character is a numeral.
func (b *DigitBuffer) Paste(s string) {
	chars := []rune(s)
	if len(chars) > CodeLength {
		chars = chars[:CodeLength]
	}
	for _, ch := range chars {
		if ch < '0' || ch > '9' {
			return
		}
	}
	for i, ch := range chars {
		b.cells[i] = string(ch)
	}
	b.focus = len(chars)
	if b.focus > CodeLength-1 {
		b.focus = CodeLength - 1
	}
}

// Clear empties every cell and refocuses the first one.
func (b *DigitBuffer) Clear() {
	b.cells = [CodeLength]string{}
	b.focus = 0
}

// Code returns the concatenated cell contents.
func (b DigitBuffer) Code() string {
	return strings.Join(b.cells[:], "")
}

// Complete reports whether all cells hold a digit.
func (b DigitBuffer) Complete() bool {
	for _, c := range b.cells {
		if c == "" {
			return false
		}
	}
	return true
}
