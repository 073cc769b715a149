package internal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

var cellRefPattern = regexp.MustCompile(`^([A-Z]+)([0-9]+)$`)

// CellRef is a spreadsheet coordinate such as "AB12".
type CellRef struct {
	Column string
	Row    int
}

func (c CellRef) String() string {
	return c.Column + strconv.Itoa(c.Row)
}

// ParseCellRef parses labels made of uppercase column letters followed by a
// 1-based row number. Surrounding whitespace is ignored.
func ParseCellRef(label string) (CellRef, error) {
	m := cellRefPattern.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return CellRef{}, fmt.Errorf("%w: %q", ErrInvalidCellRef, label)
	}
	row, err := strconv.Atoi(m[2])
	if err != nil || row < 1 {
		return CellRef{}, fmt.Errorf("%w: %q: row out of range", ErrInvalidCellRef, label)
	}
	if _, err := excelize.ColumnNameToNumber(m[1]); err != nil {
		return CellRef{}, fmt.Errorf("%w: %q: %v", ErrInvalidCellRef, label, err)
	}
	return CellRef{Column: m[1], Row: row}, nil
}

// ColumnName returns the letters for a 1-based column position:
// 1 is "A", 26 is "Z", 27 is "AA". Positions past the last spreadsheet
// column (XFD) fail with ErrTooManyColumns.
func ColumnName(n int) (string, error) {
	name, err := excelize.ColumnNumberToName(n)
	if err != nil {
		return "", fmt.Errorf("%w: column %d", ErrTooManyColumns, n)
	}
	return name, nil
}

// CompareColumns orders column labels the way a spreadsheet does:
// shorter labels first, then alphabetically.
func CompareColumns(a, b string) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	return strings.Compare(a, b)
}

// ColumnNumber is the inverse of ColumnName.
func ColumnNumber(name string) (int, error) {
	n, err := excelize.ColumnNameToNumber(name)
	if err != nil {
		return 0, fmt.Errorf("%w: column %q", ErrInvalidCellRef, name)
	}
	return n, nil
}
