package internal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// TableOptions controls how a published HTML table is walked.
type TableOptions struct {
	MaxDepth      int
	ExpandColspan bool
}

// ParseHTMLTable parses an HTML document, selects its first table and
// reports every td cell of the table's body rows to set. Rows are numbered
// from 1 and columns lettered from "A" by position, in document order.
func ParseHTMLTable(r io.Reader, opts TableOptions, set SetFunc) error {
	doc, err := html.Parse(r)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidHTML, err)
	}
	if err := ValidateDepth(doc, opts.MaxDepth); err != nil {
		return err
	}

	table := FindElementByTag(doc, "table")
	if table == nil {
		return ErrNoTable
	}

	for i, tr := range bodyRows(table) {
		row := i + 1
		col := 1
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if !isElement(c, "td") {
				continue
			}
			name, err := ColumnName(col)
			if err != nil {
				return fmt.Errorf("row %d: %w", row, err)
			}
			set(row, name, GetTextContent(c))
			if opts.ExpandColspan {
				col += getColSpan(c)
			} else {
				col++
			}
		}
	}
	return nil
}

// bodyRows returns the tr elements of the table's tbody sections, plus
// any tr that sits directly under the table. Header and footer sections
// and rows of nested tables are not included.
func bodyRows(table *html.Node) []*html.Node {
	var rows []*html.Node
	for c := table.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case isElement(c, "tr"):
			rows = append(rows, c)
		case isElement(c, "tbody"):
			for tr := c.FirstChild; tr != nil; tr = tr.NextSibling {
				if isElement(tr, "tr") {
					rows = append(rows, tr)
				}
			}
		}
	}
	return rows
}

// getColSpan extracts the colspan attribute value from a table cell.
// Returns 1 if no colspan attribute is present or if the value is invalid.
func getColSpan(n *html.Node) int {
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == "colspan" {
			if val, err := strconv.Atoi(strings.TrimSpace(attr.Val)); err == nil && val > 0 {
				return val
			}
		}
	}
	return 1
}
