// Package mask renders numeric text against custom digit-placeholder masks.
//
// Mask syntax:
//   - 0: zero placeholder, replaced by the corresponding digit or '0'
//   - #: digit placeholder, replaced by the corresponding digit or nothing
//   - .: separates the integer submask from the fractional submask
//   - Everything else: literal text, copied as-is without consuming a digit
//
// Rendering is purely textual and never fails.
package mask

import "strings"

const (
	// ZeroPlaceholder always produces a digit.
	ZeroPlaceholder = '0'
	// DigitPlaceholder produces a digit only if one is present.
	DigitPlaceholder = '#'
	// Separator splits integer and fractional submasks.
	Separator = '.'
)

// Split splits a mask on its first separator into the integer and
// fractional submasks. hasFraction reports whether a separator was present.
func Split(m string) (integer, fraction string, hasFraction bool) {
	return strings.Cut(m, string(Separator))
}

// Render applies m to the textual number text.
//
// When text holds exactly one '.', the integer and fractional parts are
// rendered independently and rejoined with '.'. Otherwise the whole text
// is rendered with the integer submask.
func Render(text, m string) string {
	intMask, fracMask, _ := Split(m)

	if strings.Count(text, string(Separator)) == 1 {
		intPart, fracPart, _ := strings.Cut(text, string(Separator))
		return RenderInteger(intPart, intMask) + string(Separator) + RenderFractional(fracPart, fracMask)
	}

	return RenderInteger(text, intMask)
}

// RenderInteger renders the integer digits against m, aligning both at
// their least significant end. A mask that is not longer than digits
// leaves digits unchanged.
func RenderInteger(digits, m string) string {
	src := []rune(digits)
	msk := []rune(m)

	if len(msk) <= len(src) {
		return digits
	}

	out := make([]rune, 0, len(msk))
	pending := 0

	// j may go negative once the digits run out
	j := len(src) - 1
	for i := len(msk) - 1; i >= 0; i-- {
		switch msk[i] {
		case ZeroPlaceholder:
			out = appendZeros(out, pending)
			pending = 0
			if j >= 0 {
				out = append(out, src[j])
			} else {
				out = append(out, '0')
			}
			j--
		case DigitPlaceholder:
			if j >= 0 {
				out = append(out, src[j])
			} else {
				pending++
			}
			j--
		default:
			out = append(out, msk[i])
		}
	}

	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}
	return string(out)
}

// RenderFractional renders the fractional digits against m, aligning both
// at their most significant end. The whole mask is always walked, so
// extra digits are cut off and missing ones are zero-filled at '0'
// positions. A '.' inside a fractional submask consumes no digit and
// emits nothing.
func RenderFractional(digits, m string) string {
	src := []rune(digits)

	var out strings.Builder
	out.Grow(len(m))
	pending := 0

	j := 0
	for _, c := range m {
		switch c {
		case ZeroPlaceholder:
			for ; pending > 0; pending-- {
				out.WriteByte('0')
			}
			if j < len(src) {
				out.WriteRune(src[j])
			} else {
				out.WriteByte('0')
			}
			j++
		case DigitPlaceholder:
			if j < len(src) {
				out.WriteRune(src[j])
			} else {
				pending++
			}
			j++
		case Separator:
		default:
			out.WriteRune(c)
		}
	}

	return out.String()
}

func appendZeros(out []rune, n int) []rune {
	for ; n > 0; n-- {
		out = append(out, '0')
	}
	return out
}
