package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/mishasvintus/codejam_client/internal/domain"
	"github.com/mishasvintus/codejam_client/internal/store"
	"github.com/mishasvintus/codejam_client/internal/transport"
)

// EventService synchronizes events and the event status catalog.
// It is the only writer of the ActiveEvent and EventStatuses stores.
type EventService struct {
	sender Sender
	stores *store.Stores
	log    *zap.SugaredLogger
}

// NewEventService creates a new event service.
func NewEventService(sender Sender, stores *store.Stores, log *zap.SugaredLogger) *EventService {
	return &EventService{sender: sender, stores: stores, log: log}
}

// FetchActiveEvent loads the active event. 200 publishes it, 204 publishes
// nil ("no active event"). Anything else, including 401 and a malformed
// body, is logged and leaves the store unchanged. Only transport failures are returned.
func (s *EventService) FetchActiveEvent(ctx context.Context) error {
	resp, err := s.sender.Send(ctx, get("/event/active"))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		s.stores.ActiveEvent.Set(nil)
		return nil
	case http.StatusOK:
	default:
		s.log.Warnw("unexpected status fetching active event", "status", resp.StatusCode)
		return nil
	}

	var event domain.Event
	if err := json.NewDecoder(resp.Body).Decode(&event); err != nil {
		s.log.Errorw("error deserializing event", "status", resp.StatusCode, "error", err)
		return nil
	}
	s.stores.ActiveEvent.Set(&event)
	return nil
}

// FetchEventStatuses loads the event status catalog. Same containment rules
// as FetchActiveEvent.
func (s *EventService) FetchEventStatuses(ctx context.Context) error {
	resp, err := s.sender.Send(ctx, get("/event/statuses"))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.log.Warnw("unexpected status fetching event statuses", "status", resp.StatusCode)
		return nil
	}

	var statuses []domain.EventStatus
	if err := json.NewDecoder(resp.Body).Decode(&statuses); err != nil {
		s.log.Errorw("error deserializing event statuses", "error", err)
		return nil
	}
	s.stores.EventStatuses.Set(statuses)
	return nil
}

// ListEvents returns every event.
func (s *EventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	var events []*domain.Event
	if err := call(ctx, s.sender, get("/event/"), &events, http.StatusOK); err != nil {
		return nil, err
	}
	return events, nil
}

// GetEvent returns one event by id.
func (s *EventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	var event domain.Event
	if err := call(ctx, s.sender, get("/event/"+url.PathEscape(id)), &event, http.StatusOK); err != nil {
		return nil, err
	}
	return &event, nil
}

// UpdateEvent sends the full event record and returns the saved copy.
func (s *EventService) UpdateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if event == nil || event.ID == "" {
		return nil, ErrEmptyID
	}
	var saved domain.Event
	err := call(ctx, s.sender, transport.Request{
		Method: http.MethodPut,
		Path:   "/event/" + url.PathEscape(event.ID),
		Body:   event,
	}, &saved, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
