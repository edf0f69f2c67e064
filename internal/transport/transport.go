// Package transport is the single path through which every API request leaves the client.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"
)

// Doer executes HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Request describes one API call.
type Request struct {
	Method string
	Path   string
	// Body is JSON-encoded when non-nil.
	Body any
}

// Transport sends requests against a base URL and records every request and
// transport-level failure to its logger.
type Transport struct {
	baseURL string
	client  Doer
	log     *zap.SugaredLogger
}

// New creates a transport using client. A nil client gets a default
// *http.Client with a cookie jar so the session cookie is sent on every call.
func New(baseURL string, client Doer, log *zap.SugaredLogger) (*Transport, error) {
	if client == nil {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", err)
		}
		client = &http.Client{Jar: jar}
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Transport{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		log:     log,
	}, nil
}

// Send performs the request and returns the response unmodified; the caller
// inspects the status and must close the body.
// A request that never completed is logged and returned as *Error.
func (t *Transport) Send(ctx context.Context, r Request) (*http.Response, error) {
	url := t.baseURL + r.Path

	var body io.Reader
	if r.Body != nil {
		payload, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s %s body: %w", r.Method, r.Path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", r.Method, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	t.log.Debugw("request", "method", r.Method, "url", url)

	resp, err := t.client.Do(req)
	if err != nil {
		t.log.Errorw("fetch error", "method", r.Method, "url", url, "error", err)
		return nil, &Error{Method: r.Method, URL: url, Err: err}
	}
	return resp, nil
}
