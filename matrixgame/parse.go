package matrixgame

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseMatrix reads a payoff matrix written as one row per line with
// whitespace-separated entries. Blank lines are skipped and every row
// must have the same number of entries.
func ParseMatrix(r io.Reader) ([][]float64, error) {
	var rows [][]float64
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		row := make([]float64, len(fields))
		for j, field := range fields {
			x, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d, column %d", lineNo, j+1)
			}
			row[j] = x
		}

		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, errors.Wrapf(ErrBadShape,
				"line %d has %d entries, expected %d", lineNo, len(row), len(rows[0]))
		}

		rows = append(rows, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading matrix")
	}

	if len(rows) == 0 {
		return nil, errors.Wrap(ErrBadShape, "no rows parsed")
	}

	return rows, nil
}
