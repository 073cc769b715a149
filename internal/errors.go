package internal

import "errors"

// Detail errors shared with the public package, which re-exports them.
var (
	ErrInvalidURL       = errors.New("gsheet: invalid URL")
	ErrInvalidKey       = errors.New("gsheet: invalid spreadsheet key")
	ErrInvalidXML       = errors.New("gsheet: invalid XML")
	ErrInvalidHTML      = errors.New("gsheet: invalid HTML")
	ErrMaxDepthExceeded = errors.New("gsheet: max depth exceeded")
	ErrNoTable          = errors.New("gsheet: no table found")
	ErrInvalidCellRef   = errors.New("gsheet: invalid cell reference")
	ErrTooManyColumns   = errors.New("gsheet: too many columns")
)
