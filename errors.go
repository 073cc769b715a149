package gsheet

import (
	"errors"
	"fmt"

	"github.com/cybergodev/gsheet/internal"
)

// Stage error kinds. Every conversion failure wraps exactly one of these;
// ErrInvalidConfig and ErrClientClosed are returned on their own.
var (
	// ErrFetch is returned when the feed could not be retrieved.
	ErrFetch = errors.New("gsheet: fetch failed")

	// ErrParse is returned when the feed body is not well-formed markup.
	ErrParse = errors.New("gsheet: parse failed")

	// ErrShape is returned when the markup parsed but does not have the expected structure.
	ErrShape = errors.New("gsheet: unexpected feed shape")
)

// Error details, wrapped together with a stage kind.
var (
	// ErrInvalidURL is returned for relative, non-HTTP or oversized URLs.
	ErrInvalidURL = internal.ErrInvalidURL

	// ErrInvalidKey is returned when the spreadsheet key is empty.
	ErrInvalidKey = internal.ErrInvalidKey

	// ErrHTTPStatus is returned when the server answers with a non-2xx status.
	ErrHTTPStatus = errors.New("gsheet: unexpected HTTP status")

	// ErrInputTooLarge is returned when a body exceeds MaxInputSize.
	ErrInputTooLarge = errors.New("gsheet: input size exceeds maximum")

	// ErrInvalidXML is returned when a cell feed is not well-formed XML or has no feed root.
	ErrInvalidXML = internal.ErrInvalidXML

	// ErrInvalidHTML is returned when a published page cannot be read as HTML.
	ErrInvalidHTML = internal.ErrInvalidHTML

	// ErrMaxDepthExceeded is returned when HTML nesting exceeds MaxDepth.
	ErrMaxDepthExceeded = internal.ErrMaxDepthExceeded

	// ErrNoTable is returned when a published page contains no table element.
	ErrNoTable = internal.ErrNoTable

	// ErrInvalidCellRef is returned when a cell feed entry title is not a cell reference like "B7".
	ErrInvalidCellRef = internal.ErrInvalidCellRef

	// ErrTooManyColumns is returned when a table row has more cells than a spreadsheet can address.
	ErrTooManyColumns = internal.ErrTooManyColumns

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("gsheet: invalid config")

	// ErrClientClosed is returned when operations are attempted on a closed client.
	ErrClientClosed = errors.New("gsheet: client closed")
)

// Stage names the pipeline step an Error originated from.
type Stage string

const (
	StageFetch Stage = "fetch"
	StageParse Stage = "parse"
	StageShape Stage = "shape"
)

func (s Stage) kind() error {
	switch s {
	case StageFetch:
		return ErrFetch
	case StageParse:
		return ErrParse
	default:
		return ErrShape
	}
}

// Error reports a failure in one stage of a conversion.
// errors.Is matches both the stage kind (ErrFetch, ErrParse, ErrShape)
// and the wrapped detail.
type Error struct {
	Stage Stage
	URL   string
	Err   error
}

func (e *Error) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("gsheet: %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("gsheet: %s %q: %v", e.Stage, e.URL, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{e.Stage.kind(), e.Err}
}

func newError(stage Stage, url string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Stage: stage, URL: url, Err: err}
}

// stageOf classifies a parser error: structural problems are shape
// errors, everything else is a parse error.
func stageOf(err error) Stage {
	switch {
	case errors.Is(err, ErrNoTable),
		errors.Is(err, ErrInvalidCellRef),
		errors.Is(err, ErrTooManyColumns):
		return StageShape
	default:
		return StageParse
	}
}
