package service

import (
	"go.uber.org/zap"

	"github.com/mishasvintus/codejam_client/internal/store"
)

// Client wires every sync operation to one sender and one store set.
type Client struct {
	Stores    *store.Stores
	Users     *UserService
	Events    *EventService
	Teams     *TeamService
	Admin     *AdminService
	Bootstrap *Bootstrap
}

// NewClient builds the services around sender. Nil stores get a fresh set.
func NewClient(sender Sender, stores *store.Stores, log *zap.SugaredLogger) *Client {
	if stores == nil {
		stores = store.NewStores()
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	users := NewUserService(sender, stores, log)
	events := NewEventService(sender, stores, log)

	return &Client{
		Stores:    stores,
		Users:     users,
		Events:    events,
		Teams:     NewTeamService(sender),
		Admin:     NewAdminService(sender),
		Bootstrap: NewBootstrap(users, events, log),
	}
}
