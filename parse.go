package gsheet

import (
	"context"
	"io"
	"sync"

	"github.com/cybergodev/gsheet/internal"
)

// ParseCellFeed reads an XML cell feed. Each entry's title ("B7") gives
// the cell coordinate and its content the value; later entries overwrite
// earlier ones at the same coordinate.
func ParseCellFeed(r io.Reader) (Table, error) {
	table := NewTable()
	if err := internal.ParseCellFeed(r, table.Set); err != nil {
		return nil, newError(stageOf(err), "", err)
	}
	return table, nil
}

// ParsePublishedTable reads a published HTML page with default options.
// contentType may carry a charset parameter and may be empty.
func ParsePublishedTable(r io.Reader, contentType string) (Table, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, newError(StageFetch, "", err)
	}
	return defaultClient().ParsePublishedTable(body, contentType)
}

var (
	defaultOnce sync.Once
	defaultC    *Client
)

func defaultClient() *Client {
	defaultOnce.Do(func() {
		defaultC = NewWithDefaults()
	})
	return defaultC
}

// CellFeed fetches a published spreadsheet's cell feed using a shared
// default client.
func CellFeed(ctx context.Context, key string) (Table, error) {
	return defaultClient().CellFeed(ctx, key)
}

// PublishedTable fetches a published HTML page using a shared default
// client. An empty URL returns an empty Table.
func PublishedTable(ctx context.Context, url string) (Table, error) {
	return defaultClient().PublishedTable(ctx, url)
}
