package service

import (
	"context"
	"net/http"

	"github.com/mishasvintus/codejam_client/internal/transport"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_sender.go -package=mocks

// Sender performs one API request. *transport.Transport satisfies it.
type Sender interface {
	Send(ctx context.Context, r transport.Request) (*http.Response, error)
}

var _ Sender = (*transport.Transport)(nil)
