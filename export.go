package gsheet

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const defaultSheetName = "Sheet1"

// WriteJSON writes the table as {"row": {"column": "value"}}. Rows come
// out in numeric order and columns in spreadsheet order, so row 2 precedes
// row 10 and column B precedes AA.
func (t Table) WriteJSON(w io.Writer) error {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, row := range t.Rows() {
		if i > 0 {
			compact.WriteByte(',')
		}
		fmt.Fprintf(&compact, `"%d":{`, row)
		for j, col := range t.Columns(row) {
			if j > 0 {
				compact.WriteByte(',')
			}
			key, _ := json.Marshal(col)
			value, err := json.Marshal(t[row][col])
			if err != nil {
				return fmt.Errorf("encode %s%d: %w", col, row, err)
			}
			compact.Write(key)
			compact.WriteByte(':')
			compact.Write(value)
		}
		compact.WriteByte('}')
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return fmt.Errorf("indent json: %w", err)
	}
	out.WriteByte('\n')
	_, err := out.WriteTo(w)
	return err
}

// WriteCSV writes the dense Records grid.
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(t.Records()); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// WriteXLSX writes the table as a workbook with a single worksheet named
// sheet ("Sheet1" when empty). Every cell is stored as text at its own
// coordinate.
func (t Table) WriteXLSX(w io.Writer, sheet string) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = defaultSheetName
	}
	if sheet != defaultSheetName {
		if err := f.SetSheetName(defaultSheetName, sheet); err != nil {
			return fmt.Errorf("name sheet %q: %w", sheet, err)
		}
	}

	for _, row := range t.Rows() {
		for _, col := range t.Columns(row) {
			cell, err := excelize.JoinCellName(col, row)
			if err != nil {
				return fmt.Errorf("%w: %s%d: %v", ErrInvalidCellRef, col, row, err)
			}
			if err := f.SetCellStr(sheet, cell, t[row][col]); err != nil {
				return fmt.Errorf("set %s: %w", cell, err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
