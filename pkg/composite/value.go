package composite

import (
	"fmt"
	"strconv"

	"github.com/KromDaniel/composite/mask"
)

// Text returns the default textual representation of v.
//
// Values implementing fmt.Stringer or error are asked for their own text,
// with fmt's precedence (Error before String). Floats
// are written as the shortest decimal that round-trips, never in
// exponent form, so masks always see plain digits.
func Text(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer, error:
		// fmt recovers from nil receivers and prints <nil>
		return fmt.Sprint(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case []byte:
		return string(x)
	default:
		return fmt.Sprint(v)
	}
}

// FormatValue renders a single argument. Without a mask the default
// textual representation is returned; with one, that text is passed
// through the mask renderer.
func FormatValue(v any, m string) string {
	s := Text(v)
	if m == "" {
		return s
	}
	return mask.Render(s, m)
}

// Render formats v with mask m and aligns the result. It is the unit of
// work performed for every placeholder.
func Render(v any, alignment int, m string) string {
	return AlignTo(FormatValue(v, m), alignment)
}
