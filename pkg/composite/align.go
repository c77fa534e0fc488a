package composite

import (
	"strings"
	"unicode/utf8"
)

// Direction selects the side a value is aligned to.
type Direction int

const (
	// Right pads on the left.
	Right Direction = iota
	// Left pads on the right.
	Left
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Align pads value with spaces to width runes. It never truncates.
func Align(value string, width int, dir Direction) string {
	n := utf8.RuneCountInString(value)
	if width <= n {
		return value
	}

	pad := strings.Repeat(" ", width-n)
	if dir == Left {
		return value + pad
	}
	return pad + value
}

// AlignTo aligns value using a signed alignment: the magnitude is the
// width, a negative sign aligns left.
func AlignTo(value string, alignment int) string {
	if alignment < 0 {
		return Align(value, -alignment, Left)
	}
	return Align(value, alignment, Right)
}
