package reminders

import (
	"context"
	"time"

	"go.uber.org/zap"
	"max.ks1230/spend-easy/internal/logger"
)

type Event int

const (
	EventTick Event = iota
	EventForeground
	EventExpenseSaved
)

func (e Event) String() string {
	switch e {
	case EventForeground:
		return "foreground"
	case EventExpenseSaved:
		return "expense_saved"
	default:
		return "tick"
	}
}

const eventBuffer = 16

type passEngine interface {
	RunSmartPass(ctx context.Context) ([]Intent, error)
	OnForeground(ctx context.Context) ([]Intent, error)
	OnExpenseSaved(ctx context.Context) ([]Intent, error)
}

type runnerConfig interface {
	PassInterval() time.Duration
}

// Runner serializes every pass through a single goroutine: periodic smart
// passes plus the passes requested by app events.
type Runner struct {
	engine   passEngine
	interval time.Duration
	events   chan Event
}

func NewRunner(engine passEngine, config runnerConfig) *Runner {
	return &Runner{
		engine:   engine,
		interval: config.PassInterval(),
		events:   make(chan Event, eventBuffer),
	}
}

// Submit queues an event without blocking. It reports false when the queue
// is full and the event was dropped.
func (r *Runner) Submit(ev Event) bool {
	select {
	case r.events <- ev:
		return true
	default:
		logger.Warn("reminder event dropped", zap.Stringer("event", ev))
		return false
	}
}

func (r *Runner) Foreground() bool {
	return r.Submit(EventForeground)
}

func (r *Runner) ExpenseSaved() bool {
	return r.Submit(EventExpenseSaved)
}

func (r *Runner) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	firstTick := make(chan struct{}, 1)
	firstTick <- struct{}{}

	logger.Info("Start reminder passes", zap.Duration("interval", r.interval))
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop reminder passes")
			return
		// fake first tick to run a pass immediately
		case <-firstTick:
			r.handle(ctx, EventTick)
		case <-ticker.C:
			r.handle(ctx, EventTick)
		case ev := <-r.events:
			r.handle(ctx, ev)
		}
	}
}

func (r *Runner) handle(ctx context.Context, ev Event) {
	var (
		intents []Intent
		err     error
	)
	switch ev {
	case EventForeground:
		intents, err = r.engine.OnForeground(ctx)
	case EventExpenseSaved:
		intents, err = r.engine.OnExpenseSaved(ctx)
	default:
		intents, err = r.engine.RunSmartPass(ctx)
	}

	if err != nil {
		logger.Error("reminder pass failed", zap.Stringer("event", ev), zap.Int("scheduled", len(intents)), zap.Error(err))
		return
	}
	logger.Info("reminder pass done", zap.Stringer("event", ev), zap.Int("scheduled", len(intents)))
}
