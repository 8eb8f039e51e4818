// Package ascii converts between the "-"/"o" textual rendering used by
// callers and the binary matrices the core search engine operates on.
// Nothing in this package is part of the scanning core; it exists purely
// so a CLI can read maps and invaders from text and print results back
// out.
package ascii

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/nullsector/invaderscan/bitmatrix"
)

// ErrInvalidChar is returned when a character other than '-', 'o', or
// trimmed whitespace is encountered.
type ErrInvalidChar struct {
	Char rune
}

func (e ErrInvalidChar) Error() string {
	return fmt.Sprintf("ascii: invalid character %q, only '-' and 'o' are allowed", e.Char)
}

// ParseMatrix converts an ASCII rendering into a binary matrix: '-' maps
// to 0, 'o' maps to 1. Leading/trailing whitespace, tildes, and newlines
// are trimmed first. An empty trimmed string yields an empty matrix (zero
// rows) rather than an error; callers that require a non-empty matrix
// (invader.New, gridmap.NewPlanar/NewSpherical) reject that empty matrix
// themselves.
func ParseMatrix(raw string) (bitmatrix.Matrix, error) {
	cleaned := strings.TrimFunc(raw, func(r rune) bool {
		return r == '~' || unicode.IsSpace(r)
	})
	if cleaned == "" {
		return bitmatrix.Matrix{}, nil
	}

	lines := strings.Split(cleaned, "\n")
	rows := make([][]int, len(lines))
	for i, line := range lines {
		row := make([]int, len(line))
		for j, ch := range line {
			switch ch {
			case '-':
				row[j] = 0
			case 'o':
				row[j] = 1
			default:
				return bitmatrix.Matrix{}, ErrInvalidChar{Char: ch}
			}
		}
		rows[i] = row
	}
	return bitmatrix.New(rows)
}

// Render converts a binary matrix back to its ASCII form: 0 -> '-', 1 ->
// 'o', one row per line, with a trailing newline after the last row.
func Render(m bitmatrix.Matrix) string {
	var sb strings.Builder
	for y := 0; y < m.Height(); y++ {
		for _, bit := range m.Row(y) {
			if bit == 1 {
				sb.WriteByte('o')
			} else {
				sb.WriteByte('-')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
