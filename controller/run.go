package controller

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// EventHandler consumes one input event; returning false ends Run
type EventHandler func(tcell.Event) bool

// pollInterval returns how often Run offers the frame gate a chance to fire
func (c *Controller) pollInterval() time.Duration {
	return max(c.frameDuration/4, time.Millisecond)
}

// Run serves input events and drives Tick until ctx is cancelled, events closes, or handle asks to quit
// All frame work happens on the calling goroutine
func (c *Controller) Run(ctx context.Context, events <-chan tcell.Event, handle EventHandler) error {
	ticker := time.NewTicker(c.pollInterval())
	defer ticker.Stop()

	c.log.Debug("run loop entered", zap.Duration("poll", c.pollInterval()))
	defer c.log.Debug("run loop exited")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if handle != nil && !handle(ev) {
				return nil
			}

		case <-ticker.C:
			c.Tick(c.clock.Now())
		}
	}
}
