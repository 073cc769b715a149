package internal

import (
	"errors"
	"strconv"
	"testing"
)

func TestParseCellRef(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label   string
		want    CellRef
		wantErr bool
	}{
		{label: "A1", want: CellRef{Column: "A", Row: 1}},
		{label: "B7", want: CellRef{Column: "B", Row: 7}},
		{label: "AB12", want: CellRef{Column: "AB", Row: 12}},
		{label: " C3 ", want: CellRef{Column: "C", Row: 3}},
		{label: "XFD1048576", want: CellRef{Column: "XFD", Row: 1048576}},
		{label: "", wantErr: true},
		{label: "A", wantErr: true},
		{label: "12", wantErr: true},
		{label: "a1", wantErr: true},
		{label: "A0", wantErr: true},
		{label: "1A", wantErr: true},
		{label: "$A$1", wantErr: true},
		{label: "XFE1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCellRef(tt.label)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCellRef) {
					t.Errorf("ParseCellRef(%q) error = %v, want ErrInvalidCellRef", tt.label, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCellRef(%q) error = %v", tt.label, err)
			}
			if got != tt.want {
				t.Errorf("ParseCellRef(%q) = %+v, want %+v", tt.label, got, tt.want)
			}
			if got.String() != tt.want.Column+strconv.Itoa(tt.want.Row) {
				t.Errorf("String() = %q", got.String())
			}
		})
	}
}

func TestColumnName(t *testing.T) {
	t.Parallel()

	tests := map[int]string{1: "A", 2: "B", 26: "Z", 27: "AA", 52: "AZ", 53: "BA", 702: "ZZ", 703: "AAA", 16384: "XFD"}
	for n, want := range tests {
		got, err := ColumnName(n)
		if err != nil {
			t.Errorf("ColumnName(%d) error = %v", n, err)
			continue
		}
		if got != want {
			t.Errorf("ColumnName(%d) = %q, want %q", n, got, want)
		}
		back, err := ColumnNumber(got)
		if err != nil || back != n {
			t.Errorf("ColumnNumber(%q) = %d, %v, want %d", got, back, err, n)
		}
	}

	for _, n := range []int{0, -1, 16385} {
		if _, err := ColumnName(n); !errors.Is(err, ErrTooManyColumns) {
			t.Errorf("ColumnName(%d) error = %v, want ErrTooManyColumns", n, err)
		}
	}
}

func TestCompareColumns(t *testing.T) {
	t.Parallel()

	ordered := []string{"A", "B", "Z", "AA", "AB", "BA", "ZZ", "AAA"}
	for i := 1; i < len(ordered); i++ {
		if CompareColumns(ordered[i-1], ordered[i]) >= 0 {
			t.Errorf("CompareColumns(%q, %q) >= 0", ordered[i-1], ordered[i])
		}
		if CompareColumns(ordered[i], ordered[i-1]) <= 0 {
			t.Errorf("CompareColumns(%q, %q) <= 0", ordered[i], ordered[i-1])
		}
	}
	if CompareColumns("C", "C") != 0 {
		t.Error("CompareColumns(C, C) != 0")
	}
}
