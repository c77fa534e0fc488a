package composite

import (
	"errors"
	"fmt"

	"github.com/KromDaniel/composite/placeholder"
)

// ErrIndexOutOfRange is returned when a placeholder references an argument
// that was not supplied.
var ErrIndexOutOfRange = errors.New("index is out of bounds")

// IndexError describes the first placeholder whose index has no argument.
type IndexError struct {
	Index       int    // referenced argument index
	Count       int    // number of arguments supplied
	Placeholder string // raw placeholder text
	Offset      int    // byte offset of the placeholder in the template
}

func (e *IndexError) Error() string {
	if e.Index == placeholder.Overflow {
		return fmt.Sprintf("composite: %s at offset %d: index overflows int: %v", e.Placeholder, e.Offset, ErrIndexOutOfRange)
	}
	return fmt.Sprintf("composite: %s at offset %d: %v (index %d, %d argument(s))",
		e.Placeholder, e.Offset, ErrIndexOutOfRange, e.Index, e.Count)
}

// Unwrap makes errors.Is(err, ErrIndexOutOfRange) hold.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
