package gsheet

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cybergodev/gsheet/internal"
	"github.com/sirupsen/logrus"
)

type response struct {
	statusCode  int
	contentType string
	body        []byte
}

// fetch issues a plain GET and reads the whole body. The connection is
// released before the body is handed to a parser.
func (c *Client) fetch(ctx context.Context, url string) (*response, error) {
	start := time.Now()
	c.stats.totalFetched.Add(1)
	defer func() {
		c.stats.totalFetchTime.Add(int64(time.Since(start)))
	}()

	resp, err := c.doFetch(ctx, url)
	log := c.log.WithFields(logrus.Fields{"url": url, "elapsed": time.Since(start)})
	if err != nil {
		c.stats.errorCount.Add(1)
		log.WithError(err).Warn("fetch failed")
		return nil, newError(StageFetch, url, err)
	}
	log.WithFields(logrus.Fields{"status": resp.statusCode, "bytes": len(resp.body)}).Debug("fetched")
	return resp, nil
}

func (c *Client) doFetch(ctx context.Context, url string) (*response, error) {
	if err := internal.ValidateURL(url); err != nil {
		return nil, err
	}
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused.
		_, _ = io.CopyN(io.Discard, resp.Body, 4096)
		return nil, fmt.Errorf("%w: %s", ErrHTTPStatus, resp.Status)
	}

	limit := int64(c.config.MaxInputSize)
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: max=%d", ErrInputTooLarge, limit)
	}

	return &response{
		statusCode:  resp.StatusCode,
		contentType: resp.Header.Get("Content-Type"),
		body:        body,
	}, nil
}
