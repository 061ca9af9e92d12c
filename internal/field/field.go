// internal/field/field.go
package field

import (
	"fmt"
	"strings"
)

// Width is the fixed number of characters of an on-device string slot.
type Width int

const (
	// Narrow slots are the 6-character top/middle display lines.
	Narrow Width = 6
	// Wide slots are the 8-character bottom display line.
	Wide Width = 8
)

// Valid reports whether w is one of the slot widths the display supports.
func (w Width) Valid() bool {
	return w == Narrow || w == Wide
}

// Field is a label clamped to its slot width.
// Immutable once produced.
type Field struct {
	Source string // label as supplied
	Text   string // exactly Width characters
	Width  Width
}

func (f Field) String() string { return f.Text }

// Format uppercases label and truncates or space-pads it to exactly w
// characters. Characters outside printable ASCII, and the double quote
// (string delimiter in program text), become '?'.
// Panics on an unsupported width: widths are compile-time constants.
func Format(label string, w Width) Field {
	if !w.Valid() {
		panic(fmt.Sprintf("field: unsupported width %d", w))
	}

	out := make([]byte, 0, int(w))
	for _, r := range strings.ToUpper(label) {
		if len(out) == int(w) {
			break
		}
		out = append(out, sanitize(r))
	}
	for len(out) < int(w) {
		out = append(out, ' ')
	}

	return Field{
		Source: label,
		Text:   string(out),
		Width:  w,
	}
}

func sanitize(r rune) byte {
	if r < 0x20 || r > 0x7E || r == '"' {
		return '?'
	}
	return byte(r)
}
