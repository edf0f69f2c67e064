package service

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Report lists the startup fetches that failed. A failed fetch leaves its
// store in the startup state; the other fetches are unaffected.
type Report struct {
	Failures map[string]error
}

// OK reports whether every fetch completed.
func (r Report) OK() bool {
	return len(r.Failures) == 0
}

// Bootstrap seeds the stores once at startup.
type Bootstrap struct {
	users  *UserService
	events *EventService
	log    *zap.SugaredLogger

	once   sync.Once
	done   chan struct{}
	report Report
}

// NewBootstrap creates a bootstrap over the given services.
func NewBootstrap(users *UserService, events *EventService, log *zap.SugaredLogger) *Bootstrap {
	return &Bootstrap{
		users:  users,
		events: events,
		log:    log,
		done:   make(chan struct{}),
	}
}

// Run fetches the user, the active event and the event status catalog
// concurrently and waits for all three to settle. It runs at most once;
// later calls wait for the first run and return its report.
func (b *Bootstrap) Run(ctx context.Context) Report {
	b.once.Do(func() {
		defer close(b.done)
		b.report = b.load(ctx)
	})
	<-b.done
	return b.report
}

// Done is closed once startup has completed.
func (b *Bootstrap) Done() <-chan struct{} {
	return b.done
}

func (b *Bootstrap) load(ctx context.Context) Report {
	fetches := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"user", b.users.FetchUser},
		{"active_event", b.events.FetchActiveEvent},
		{"event_statuses", b.events.FetchEventStatuses},
	}

	var (
		g        errgroup.Group
		mu       sync.Mutex
		failures = make(map[string]error)
	)
	for _, f := range fetches {
		g.Go(func() error {
			if err := f.fn(ctx); err != nil {
				b.log.Warnw("startup fetch failed", "fetch", f.name, "error", err)
				mu.Lock()
				failures[f.name] = err
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	b.log.Debugw("startup complete", "failed", len(failures))
	return Report{Failures: failures}
}
