// Package gsheet converts published Google Spreadsheets into row/column tables.
// It reads either the legacy XML cell feed or the HTML page produced by
// "Publish to the web".
package gsheet

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cybergodev/gsheet/internal"
	"github.com/sirupsen/logrus"
)

// Default configuration values.
const (
	DefaultFeedURLTemplate = "https://spreadsheets.google.com/feeds/cells/%s/1/public/values"
	DefaultMaxInputSize    = 50 * 1024 * 1024 // 50MB
	DefaultMaxDepth        = 256              // 256 levels
)

// Client fetches published spreadsheets. It is safe for concurrent use.
type Client struct {
	config *Config
	http   *http.Client
	log    logrus.FieldLogger
	closed atomic.Bool
	stats  struct {
		totalFetched   atomic.Int64
		errorCount     atomic.Int64
		totalFetchTime atomic.Int64
	}
}

// Config holds client configuration.
type Config struct {
	// FeedURLTemplate builds the cell feed URL; it must hold one %s for the key.
	FeedURLTemplate string
	// UserAgent overrides the User-Agent header when non-empty.
	UserAgent string
	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration
	// MaxInputSize caps the size of a response body in bytes.
	MaxInputSize int
	// MaxDepth caps HTML nesting depth.
	MaxDepth int
	// ExpandColspan advances the column letter by a cell's colspan
	// instead of by one.
	ExpandColspan bool
	// HTTPClient is used for requests; http.DefaultClient when nil.
	HTTPClient *http.Client
	// Logger receives request diagnostics; logrus.StandardLogger() when nil.
	Logger logrus.FieldLogger
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		FeedURLTemplate: DefaultFeedURLTemplate,
		MaxInputSize:    DefaultMaxInputSize,
		MaxDepth:        DefaultMaxDepth,
	}
}

func validateConfig(c Config) error {
	switch {
	case strings.Count(c.FeedURLTemplate, "%s") != 1:
		return fmt.Errorf("%w: FeedURLTemplate must contain exactly one %%s", ErrInvalidConfig)
	case c.Timeout < 0:
		return fmt.Errorf("%w: Timeout cannot be negative", ErrInvalidConfig)
	case c.MaxInputSize <= 0:
		return fmt.Errorf("%w: MaxInputSize must be positive", ErrInvalidConfig)
	case c.MaxDepth <= 0:
		return fmt.Errorf("%w: MaxDepth must be positive", ErrInvalidConfig)
	}
	return nil
}

// Statistics contains fetch metrics.
type Statistics struct {
	TotalFetched     int64
	ErrorCount       int64
	AverageFetchTime time.Duration
}

// New creates a Client with the given configuration.
func New(config Config) (*Client, error) {
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	c := &Client{
		config: &config,
		http:   config.HTTPClient,
		log:    config.Logger,
	}
	if c.http == nil {
		c.http = http.DefaultClient
	}
	if c.log == nil {
		c.log = logrus.StandardLogger()
	}
	return c, nil
}

// NewWithDefaults creates a Client with default configuration.
func NewWithDefaults() *Client {
	c, _ := New(DefaultConfig())
	return c
}

// CellFeed fetches the first worksheet of the spreadsheet published under
// key through the XML cell feed and returns its cells.
func (c *Client) CellFeed(ctx context.Context, key string) (Table, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}
	feedURL, err := internal.FeedURL(c.config.FeedURLTemplate, key)
	if err != nil {
		c.stats.errorCount.Add(1)
		return nil, newError(StageFetch, "", err)
	}

	resp, err := c.fetch(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	table, err := ParseCellFeed(bytes.NewReader(resp.body))
	if err != nil {
		c.stats.errorCount.Add(1)
		return nil, withURL(err, feedURL)
	}
	c.log.WithFields(logrus.Fields{"url": feedURL, "rows": table.Len(), "cells": table.CellCount()}).Debug("parsed cell feed")
	return table, nil
}

// PublishedTable fetches a "Publish to the web" HTML page and returns the
// cells of its first table. An empty URL yields an empty Table without a
// request being made.
func (c *Client) PublishedTable(ctx context.Context, pageURL string) (Table, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}
	if pageURL == "" {
		return NewTable(), nil
	}

	resp, err := c.fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	table, err := c.parsePublishedTable(resp.body, resp.contentType)
	if err != nil {
		c.stats.errorCount.Add(1)
		return nil, withURL(err, pageURL)
	}
	c.log.WithFields(logrus.Fields{"url": pageURL, "rows": table.Len(), "cells": table.CellCount()}).Debug("parsed published table")
	return table, nil
}

// ParsePublishedTable reads a published HTML page from body using the
// client's parsing options.
func (c *Client) ParsePublishedTable(body []byte, contentType string) (Table, error) {
	return c.parsePublishedTable(body, contentType)
}

func (c *Client) parsePublishedTable(body []byte, contentType string) (Table, error) {
	charset := internal.DetectCharset(body, contentType)
	utf8Body, err := internal.ToUTF8(body, charset)
	if err != nil {
		return nil, newError(StageParse, "", fmt.Errorf("%w: %v", ErrInvalidHTML, err))
	}

	table := NewTable()
	opts := internal.TableOptions{
		MaxDepth:      c.config.MaxDepth,
		ExpandColspan: c.config.ExpandColspan,
	}
	if err := internal.ParseHTMLTable(bytes.NewReader(utf8Body), opts, table.Set); err != nil {
		return nil, newError(stageOf(err), "", err)
	}
	return table, nil
}

// Statistics returns fetch statistics.
func (c *Client) Statistics() Statistics {
	total := c.stats.totalFetched.Load()
	totalTime := time.Duration(c.stats.totalFetchTime.Load())
	var avg time.Duration
	if total > 0 {
		avg = totalTime / time.Duration(total)
	}
	return Statistics{
		TotalFetched:     total,
		ErrorCount:       c.stats.errorCount.Load(),
		AverageFetchTime: avg,
	}
}

// Close releases idle connections. Later calls fail with ErrClientClosed.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	c.http.CloseIdleConnections()
	return nil
}

func withURL(err error, url string) error {
	if e, ok := err.(*Error); ok && e.URL == "" {
		return &Error{Stage: e.Stage, URL: url, Err: e.Err}
	}
	return err
}
