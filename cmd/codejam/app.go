package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/mishasvintus/codejam_client/internal/service"
	"github.com/mishasvintus/codejam_client/internal/transport"
)

// app holds what every command needs: the API client and where to print.
type app struct {
	tr     *transport.Transport
	client *service.Client
	out    io.Writer
}

func newApp(baseURL string, log *zap.SugaredLogger, out io.Writer) (*app, error) {
	tr, err := transport.New(baseURL, nil, log)
	if err != nil {
		return nil, err
	}
	return &app{
		tr:     tr,
		client: service.NewClient(tr, nil, log),
		out:    out,
	}, nil
}

// loginAs opens a session through the mock API's development login.
// An empty userID keeps whatever session the cookie jar holds.
func (a *app) loginAs(ctx context.Context, userID string) error {
	if userID == "" {
		return nil
	}
	resp, err := a.tr.Send(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   "/dev/login/" + url.PathEscape(userID),
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login as %s: unexpected status %d", userID, resp.StatusCode)
	}
	return nil
}
