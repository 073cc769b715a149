// Package internal holds the parsing and transport helpers behind package gsheet.
package internal

const (
	maxURLLength       = 2000 // Maximum URL length accepted for a fetch
	builderInitialSize = 64   // Initial capacity for a cell text builder
	charsetSniffSize   = 1024 // Bytes scanned for a <meta> charset declaration
)

// SetFunc receives one cell. Parsers call it in document order.
type SetFunc func(row int, column, value string)
