package gsheet

import (
	"maps"
	"slices"

	"github.com/cybergodev/gsheet/internal"
)

// Table is a sparse spreadsheet: row number (from 1) to column label
// ("A", "B", ..., "AA") to cell text. Only cells present in the source
// exist; an empty string is a present, empty cell.
type Table map[int]map[string]string

// CellRef is a parsed spreadsheet coordinate such as "AB12".
type CellRef = internal.CellRef

// ParseCellRef parses a label of uppercase column letters followed by a row number.
var ParseCellRef = internal.ParseCellRef

// NewTable returns an empty Table.
func NewTable() Table {
	return make(Table)
}

// Set stores value at row/column, replacing any earlier value.
func (t Table) Set(row int, column, value string) {
	cols, ok := t[row]
	if !ok {
		cols = make(map[string]string)
		t[row] = cols
	}
	cols[column] = value
}

// Get returns the value at row/column and whether the cell exists.
func (t Table) Get(row int, column string) (string, bool) {
	v, ok := t[row][column]
	return v, ok
}

// Rows returns the row numbers in ascending order.
func (t Table) Rows() []int {
	return slices.Sorted(maps.Keys(t))
}

// Columns returns the column labels of row in spreadsheet order.
func (t Table) Columns(row int) []string {
	return slices.SortedFunc(maps.Keys(t[row]), internal.CompareColumns)
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t)
}

// CellCount returns the number of cells across all rows.
func (t Table) CellCount() int {
	n := 0
	for _, cols := range t {
		n += len(cols)
	}
	return n
}

// Records returns the table as a dense grid spanning row 1 / column A to
// the largest row and column present. Missing cells are empty strings.
func (t Table) Records() [][]string {
	maxRow, maxCol := 0, 0
	for row, cols := range t {
		maxRow = max(maxRow, row)
		for col := range cols {
			if n, err := internal.ColumnNumber(col); err == nil {
				maxCol = max(maxCol, n)
			}
		}
	}

	records := make([][]string, maxRow)
	for i := range records {
		records[i] = make([]string, maxCol)
	}
	for row, cols := range t {
		if row < 1 {
			continue
		}
		for col, v := range cols {
			if n, err := internal.ColumnNumber(col); err == nil {
				records[row-1][n-1] = v
			}
		}
	}
	return records
}
