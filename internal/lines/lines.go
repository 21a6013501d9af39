// Package lines turns rendered page text into the ordered line sequence every
// parser scans, and provides a cursor for walking it.
package lines

import (
	"errors"
	"strings"
)

// ErrNilLines is returned by parsers that receive no line sequence at all.
// An empty, non-nil sequence is valid input.
var ErrNilLines = errors.New("lines: nil line sequence")

// Normalize splits text on line breaks and returns the trimmed, non-empty lines
// in top-to-bottom page order. Duplicates are kept. Every non-breaking space,
// including one inside a line, is read as a plain space, so "Rohit\u00a0Sharma"
// compares equal to "Rohit Sharma".
func Normalize(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	out := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.ReplaceAll(line, "\u00a0", " "))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Cursor walks a line sequence
type Cursor struct {
	lines []string
	pos   int
}

// NewCursor creates a cursor positioned at pos
func NewCursor(lines []string, pos int) *Cursor {
	if pos < 0 {
		pos = 0
	}
	return &Cursor{lines: lines, pos: pos}
}

// Pos returns the current position
func (c *Cursor) Pos() int {
	return c.pos
}

// Done reports whether the cursor is past the last line
func (c *Cursor) Done() bool {
	return c.pos >= len(c.lines)
}

// Peek returns the line at the cursor without moving
func (c *Cursor) Peek() (string, bool) {
	if c.Done() {
		return "", false
	}
	return c.lines[c.pos], true
}

// Advance moves the cursor one line forward
func (c *Cursor) Advance() {
	if c.pos < len(c.lines) {
		c.pos++
	}
}

// Seek moves the cursor to pos, clamped to the sequence bounds
func (c *Cursor) Seek(pos int) {
	switch {
	case pos < 0:
		c.pos = 0
	case pos > len(c.lines):
		c.pos = len(c.lines)
	default:
		c.pos = pos
	}
}

// SkipWhile advances past every consecutive line for which match returns true
func (c *Cursor) SkipWhile(match func(string) bool) {
	for {
		line, ok := c.Peek()
		if !ok || !match(line) {
			return
		}
		c.pos++
	}
}

// IndexAll returns the positions of every line exactly equal to want
func IndexAll(lines []string, want string) []int {
	idx := make([]int, 0)
	for i, line := range lines {
		if line == want {
			idx = append(idx, i)
		}
	}
	return idx
}
