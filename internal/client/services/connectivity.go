package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/dmitrijs2005/capcheck/internal/logging"
)

type Mode string

const (
	ModeUnknown Mode = "unknown"
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const pingTimeout = 3 * time.Second

// Pinger checks that the service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ConnectivityWatcher pings the service periodically and records whether it
// answered. It is informational only and never triggers feed loads.
type ConnectivityWatcher struct {
	pinger   Pinger
	interval time.Duration
	log      logging.Logger
	onChange func(Mode)

	mu        sync.Mutex
	mode      Mode
	scheduler gocron.Scheduler
}

// NewConnectivityWatcher returns a watcher in ModeUnknown. onChange, if not
// nil, is called after every mode switch.
func NewConnectivityWatcher(p Pinger, interval time.Duration, log logging.Logger, onChange func(Mode)) *ConnectivityWatcher {
	return &ConnectivityWatcher{
		pinger:   p,
		interval: interval,
		log:      log.With("component", "connectivity"),
		onChange: onChange,
		mode:     ModeUnknown,
	}
}

func (w *ConnectivityWatcher) Mode() Mode {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.mode
}

// Check pings once and returns the resulting mode.
func (w *ConnectivityWatcher) Check(ctx context.Context) Mode {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := w.pinger.Ping(pingCtx)
	cancel()

	mode := ModeOnline
	if err != nil {
		mode = ModeOffline
	}
	w.setMode(ctx, mode, err)
	return mode
}

func (w *ConnectivityWatcher) setMode(ctx context.Context, mode Mode, err error) {
	w.mu.Lock()
	changed := w.mode != mode
	w.mode = mode
	w.mu.Unlock()

	if !changed {
		return
	}
	if err != nil {
		w.log.Info(ctx, "switched mode", "mode", mode, "error", err)
	} else {
		w.log.Info(ctx, "switched mode", "mode", mode)
	}
	if w.onChange != nil {
		w.onChange(mode)
	}
}

// Start schedules the periodic check; the first one runs immediately. A
// non-positive interval disables the watcher.
func (w *ConnectivityWatcher) Start(ctx context.Context) error {
	if w.interval <= 0 {
		w.log.Debug(ctx, "connectivity watcher disabled")
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(w.interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				return
			}
			w.Check(ctx)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return fmt.Errorf("failed to schedule connectivity check: %w", err)
	}

	w.mu.Lock()
	w.scheduler = scheduler
	w.mu.Unlock()

	scheduler.Start()
	return nil
}

// Stop shuts the scheduler down. It is safe to call without Start.
func (w *ConnectivityWatcher) Stop() error {
	w.mu.Lock()
	s := w.scheduler
	w.scheduler = nil
	w.mu.Unlock()

	if s == nil {
		return nil
	}
	if err := s.Shutdown(); err != nil {
		return fmt.Errorf("failed to shut down scheduler: %w", err)
	}
	return nil
}
