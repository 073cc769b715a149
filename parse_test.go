package gsheet_test

import (
	"strings"
	"testing"

	"github.com/cybergodev/gsheet"
	"github.com/stretchr/testify/require"
)

func TestParseCellFeed(t *testing.T) {
	t.Parallel()

	feed := feedHeader + entry("A1", "x") + entry("C2", "y") + `</feed>`
	table, err := gsheet.ParseCellFeed(strings.NewReader(feed))
	require.NoError(t, err)
	require.Equal(t, gsheet.Table{1: {"A": "x"}, 2: {"C": "y"}}, table)

	_, err = gsheet.ParseCellFeed(strings.NewReader(""))
	require.ErrorIs(t, err, gsheet.ErrParse)
	require.ErrorIs(t, err, gsheet.ErrInvalidXML)

	_, err = gsheet.ParseCellFeed(strings.NewReader(feedHeader + entry("?", "x") + `</feed>`))
	require.ErrorIs(t, err, gsheet.ErrShape)
	require.ErrorIs(t, err, gsheet.ErrInvalidCellRef)
}

func TestParsePublishedTable(t *testing.T) {
	t.Parallel()

	page := `<table>
		<tr><td>1</td><td>2</td></tr>
		<tr><td>3</td><td>4</td></tr>
		<tr><td>5</td><td>6</td></tr>
	</table>`
	table, err := gsheet.ParsePublishedTable(strings.NewReader(page), "")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, table.Rows())
	for _, row := range table.Rows() {
		require.Equal(t, []string{"A", "B"}, table.Columns(row))
	}

	_, err = gsheet.ParsePublishedTable(strings.NewReader("<p>none</p>"), "text/html")
	require.ErrorIs(t, err, gsheet.ErrShape)
	require.ErrorIs(t, err, gsheet.ErrNoTable)
}
