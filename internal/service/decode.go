package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"

	"github.com/mishasvintus/codejam_client/internal/transport"
)

// call sends r and decodes a JSON body into out when the status is one of ok.
// A nil out discards the body.
func call(ctx context.Context, s Sender, r transport.Request, out any, ok ...int) error {
	resp, err := s.Send(ctx, r)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !slices.Contains(ok, resp.StatusCode) {
		body, _ := io.ReadAll(resp.Body)
		return &StatusError{Method: r.Method, Path: r.Path, StatusCode: resp.StatusCode, Body: body}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", r.Method, r.Path, err)
	}
	return nil
}

func get(path string) transport.Request {
	return transport.Request{Method: http.MethodGet, Path: path}
}
