package reminders

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	appconfig "max.ks1230/spend-easy/internal/config"
)

type countingEngine struct {
	mu     sync.Mutex
	events []Event
}

func (c *countingEngine) record(ev Event) ([]Intent, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
	return nil, nil
}

func (c *countingEngine) RunSmartPass(context.Context) ([]Intent, error) {
	return c.record(EventTick)
}

func (c *countingEngine) OnForeground(context.Context) ([]Intent, error) {
	return c.record(EventForeground)
}

func (c *countingEngine) OnExpenseSaved(context.Context) ([]Intent, error) {
	return c.record(EventExpenseSaved)
}

func (c *countingEngine) seen() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Event(nil), c.events...)
}

func Test_OnRun_ShouldPassImmediatelyAndServeEvents(t *testing.T) {
	engine := &countingEngine{}
	runner := NewRunner(engine, &appconfig.RemindersConfig{PassIntervalMinutes: 60})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		runner.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return len(engine.seen()) == 1 }, time.Second, 5*time.Millisecond)
	assert.True(t, runner.Foreground())
	assert.True(t, runner.ExpenseSaved())
	assert.Eventually(t, func() bool { return len(engine.seen()) == 3 }, time.Second, 5*time.Millisecond)

	cancel()
	<-done
	assert.Equal(t, []Event{EventTick, EventForeground, EventExpenseSaved}, engine.seen())
}

func Test_OnSubmit_ShouldDropWhenQueueIsFull(t *testing.T) {
	runner := NewRunner(&countingEngine{}, &appconfig.RemindersConfig{PassIntervalMinutes: 60})

	for i := 0; i < eventBuffer; i++ {
		assert.True(t, runner.Submit(EventExpenseSaved))
	}
	assert.False(t, runner.Submit(EventForeground))
}
