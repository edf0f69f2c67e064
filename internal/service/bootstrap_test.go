package service_test

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mishasvintus/codejam_client/internal/domain"
	"github.com/mishasvintus/codejam_client/internal/transport"
)

func TestBootstrap_SeedsAllStores(t *testing.T) {
	client, sender := newClient(t)

	sender.EXPECT().Send(gomock.Any(), getPath("/user/")).Return(response(http.StatusOK, aliceJSON), nil)
	sender.EXPECT().Send(gomock.Any(), getPath("/event/active")).Return(response(http.StatusNoContent, ""), nil)
	sender.EXPECT().Send(gomock.Any(), getPath("/event/statuses")).Return(response(http.StatusOK, `["SIGNUP"]`), nil)

	report := client.Bootstrap.Run(context.Background())
	assert.True(t, report.OK())

	assert.True(t, client.Stores.Session.Get().LoggedIn)
	assert.True(t, client.Stores.ActiveEvent.Loaded())
	assert.Nil(t, client.Stores.ActiveEvent.Get())
	assert.Len(t, client.Stores.EventStatuses.Get(), 1)

	select {
	case <-client.Bootstrap.Done():
	default:
		t.Fatal("Done not closed after Run")
	}
}

func TestBootstrap_ContainsTransportFailure(t *testing.T) {
	client, sender := newClient(t)
	offline := errors.New("connection refused")

	sender.EXPECT().Send(gomock.Any(), getPath("/user/")).Return(nil, offline)
	sender.EXPECT().Send(gomock.Any(), getPath("/event/active")).Return(response(http.StatusOK, `{"Id":"e1"}`), nil)
	sender.EXPECT().Send(gomock.Any(), getPath("/event/statuses")).Return(response(http.StatusOK, `[]`), nil)

	report := client.Bootstrap.Run(context.Background())

	require.False(t, report.OK())
	require.Len(t, report.Failures, 1)
	assert.ErrorIs(t, report.Failures["user"], offline)

	assert.Equal(t, domain.LoggedOut(), client.Stores.Session.Get())
	require.NotNil(t, client.Stores.ActiveEvent.Get())
	assert.Equal(t, "e1", client.Stores.ActiveEvent.Get().ID)
	assert.True(t, client.Stores.EventStatuses.Loaded())
}

func TestBootstrap_RunsOnce(t *testing.T) {
	client, sender := newClient(t)

	var calls atomic.Int32
	count := func(_ context.Context, _ transport.Request) (*http.Response, error) {
		calls.Add(1)
		return response(http.StatusUnauthorized, ""), nil
	}
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(count).Times(3)

	first := client.Bootstrap.Run(context.Background())
	second := client.Bootstrap.Run(context.Background())

	assert.Equal(t, first, second)
	assert.Equal(t, int32(3), calls.Load())
}
