package spatial

import (
	"strconv"

	"github.com/goliatone/go-udos/pkg/interfaces"
)

// ParseCell decodes a token like "AA10" into a column/row pair. Letters are
// base-26 with A=1; the column is zero-based from the all-A origin of the
// same width, so AA maps to column 0 and BA to column 26. The row is the
// plain integer value of the digits.
func ParseCell(token string) (interfaces.Cell, error) {
	split := 0
	for split < len(token) && token[split] >= 'A' && token[split] <= 'Z' {
		split++
	}
	if split == 0 || split == len(token) {
		return interfaces.Cell{}, wrapValidation(errCellSyntax)
	}
	for i := split; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return interfaces.Cell{}, wrapValidation(errCellSyntax)
		}
	}

	value, origin := 0, 0
	for i := 0; i < split; i++ {
		value = value*26 + int(token[i]-'A') + 1
		origin = origin*26 + 1
	}

	row, err := strconv.Atoi(token[split:])
	if err != nil {
		return interfaces.Cell{}, wrapValidation(errCellSyntax)
	}

	return interfaces.Cell{Col: value - origin, Row: row}, nil
}

// isLocCell reports whether the token has the exact two-letter two-digit
// shape LocId refinements require.
func isLocCell(token string) bool {
	if len(token) != 4 {
		return false
	}
	return token[0] >= 'A' && token[0] <= 'Z' &&
		token[1] >= 'A' && token[1] <= 'Z' &&
		token[2] >= '0' && token[2] <= '9' &&
		token[3] >= '0' && token[3] <= '9'
}
