package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// Upper bound for any response body read from the API.
const maxBodyBytes = 4 << 20

func (c *Client) newRequest(
	ctx context.Context,
	endpoint string,
	query map[string]string,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if len(query) > 0 {
		q := req.URL.Query()
		for k, v := range query {
			q.Set(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}

	return req, nil
}

func (c *Client) do(op string, req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &HTTPStatusError{
			Code:   resp.StatusCode,
			Status: resp.Status,
			Body:   strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// doWithRetry retries gateway failures (502, 503, 504) and network errors
// using exponential backoff while respecting context cancellation. With
// maxAttempts == 1 every failure is returned immediately.
func (c *Client) doWithRetry(
	ctx context.Context,
	op string,
	makeReq func() (*http.Request, error),
) (*http.Response, error) {
	backoff := c.backoff

	var lastErr error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, &NetworkError{Op: op, Err: err}
		}

		req, err := makeReq()
		if err != nil {
			return nil, fmt.Errorf("make request: %w", err)
		}

		resp, err := c.do(op, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		retry := false
		var he *HTTPStatusError
		if errors.As(err, &he) {
			switch he.Code {
			case 502, 503, 504:
				retry = true
			}
		}

		var netErr net.Error
		if !retry && errors.As(err, &netErr) {
			retry = true
		}

		if !retry || attempt == c.maxAttempts {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, &NetworkError{Op: op, Err: ctx.Err()}
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, lastErr
}

// getJSON issues a GET and decodes the body with json.Number preserved.
// Anything after the first JSON value is a ParseError.
func (c *Client) getJSON(
	ctx context.Context,
	op string,
	endpoint string,
	query map[string]string,
) (any, error) {
	resp, err := c.doWithRetry(ctx, op, func() (*http.Request, error) {
		return c.newRequest(ctx, endpoint, query)
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	dec := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &ParseError{Op: op, Err: err}
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, &ParseError{Op: op, Err: errors.New("body must contain a single JSON value")}
	}

	return v, nil
}
