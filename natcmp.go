package natcmp

import (
	"cmp"
	"fmt"
	"strings"
)

// NonDigitFunc compares the leading non-digit segments of a and b, returning
// an integer comparing the two segments. When the segments are equal, endA and
// endB report the offset in each string at which the segment ends, which is
// always the first digit or the end of the string, and the caller resumes
// comparing from there. When the result is non-zero the offsets are ignored.
type NonDigitFunc func(a, b string) (order, endA, endB int)

// Compare performs a natural comparison between two strings, a and b, suitable
// for use with [slices.SortFunc] by returning an integer comparing their
// natural order:
//
//	-1 if a < b
//	 0 if a == b
//	 1 if a > b
//
// Natural sorting orders runs of decimal digits by numeric value and the text
// between them with an ASCII case-insensitive comparison, so that "file2.txt"
// sorts before "file10.txt". Digit runs are compared in place rather than
// parsed into an integer, so runs of any length are fine.
//
// Reference: https://web.archive.org/web/20210803201519/http://davekoelle.com/alphanum.html
func Compare(a, b string) int {
	return CompareFunc(a, b, NonDigitFold)
}

// CompareFunc is like [Compare] but delegates the non-digit segments to
// nonDigit, so callers can swap the text collation without touching the
// numeric rule. A nil nonDigit falls back to [NonDigitFold]. A nonDigit which
// reports equal segments without stopping each cursor on a digit or the end
// of its string violates the [NonDigitFunc] contract and panics.
func CompareFunc(a, b string, nonDigit NonDigitFunc) int {
	if nonDigit == nil {
		nonDigit = NonDigitFold
	}

	var i, j int
	for i < len(a) && j < len(b) {
		digitA, digitB := isAsciiDigit(a[i]), isAsciiDigit(b[j])
		if !digitA && !digitB {
			order, endA, endB := nonDigit(a[i:], b[j:])
			if order != 0 {
				return cmp.Compare(order, 0)
			}
			i, j = resume(a, i, endA), resume(b, j, endB)
			if i == len(a) || j == len(b) {
				break
			}
			digitA, digitB = isAsciiDigit(a[i]), isAsciiDigit(b[j])
		}

		if digitA != digitB {
			// a number sorts before any other character
			if digitA {
				return -1
			}
			return 1
		}

		// both cursors sit on a digit run. skip the leading zeros, keeping a
		// lone trailing zero, to find the significant digits
		headA, headB := i, j
		for i+1 < len(a) && a[i] == '0' && isAsciiDigit(a[i+1]) {
			i++
		}
		for j+1 < len(b) && b[j] == '0' && isAsciiDigit(b[j+1]) {
			j++
		}
		startA, startB := i, j
		for i < len(a) && isAsciiDigit(a[i]) {
			i++
		}
		for j < len(b) && isAsciiDigit(b[j]) {
			j++
		}

		if c := cmp.Or(
			// fewer significant digits means a smaller number
			cmp.Compare(i-startA, j-startB),
			// same magnitude, compare the digits themselves
			strings.Compare(a[startA:i], b[startB:j]),
			// numerically equal, the run with more leading zeros sorts later
			cmp.Compare(i-headA, j-headB),
		); c != 0 {
			return c
		}
	}

	switch {
	case j < len(b):
		return -1
	case i < len(a):
		return 1
	}
	return 0
}

// NonDigitFold is the default [NonDigitFunc], comparing non-digit segments
// byte-wise with ASCII case folding. When one segment is a prefix of the
// other, the shorter segment sorts first.
func NonDigitFold(a, b string) (order, endA, endB int) {
	var lenA, lenB int
	for lenA < len(a) && !isAsciiDigit(a[lenA]) {
		lenA++
	}
	for lenB < len(b) && !isAsciiDigit(b[lenB]) {
		lenB++
	}
	for k := range min(lenA, lenB) {
		if c := cmp.Compare(lowerAscii(a[k]), lowerAscii(b[k])); c != 0 {
			return c, 0, 0
		}
	}
	if c := cmp.Compare(lenA, lenB); c != 0 {
		return c, 0, 0
	}
	return 0, lenA, lenB
}

// resume validates a [NonDigitFunc]'s reported end offset and converts it back
// to an absolute cursor position.
func resume(s string, cursor, end int) int {
	pos := cursor + end
	if end < 0 || pos > len(s) || (pos < len(s) && !isAsciiDigit(s[pos])) {
		panic(fmt.Errorf("natcmp: non-digit comparison stopped at %d of %q, not a digit or end of string", end, s[cursor:]))
	}
	return pos
}

func isAsciiDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func lowerAscii(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	return b
}
