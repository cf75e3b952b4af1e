package emu

import (
	"context"
	"errors"
	"time"

	"sixfive/emu/log"
)

// ErrStop can be returned by a tick function to stop the clock without
// error.
var ErrStop = errors.New("clock stopped")

// Clock calls a tick function periodically.
type Clock struct {
	Period time.Duration // 0 ticks as fast as possible
}

// ClockFromHz returns a clock ticking hz times per second. hz <= 0 gives an
// unthrottled clock.
func ClockFromHz(hz int) Clock {
	if hz <= 0 {
		return Clock{}
	}
	return Clock{Period: time.Second / time.Duration(hz)}
}

// Run calls tick at each clock period until ctx is cancelled or tick returns
// an error. A tick always completes before the next one starts, and before Run
// returns. Cancellation and ErrStop are not errors.
func (c Clock) Run(ctx context.Context, tick func() error) error {
	log.ModClock.InfoZ("Clock started").
		Duration("period", c.Period).
		End()

	var err error
	if c.Period <= 0 {
		err = c.runUnthrottled(ctx, tick)
	} else {
		err = c.runTicker(ctx, tick)
	}

	if errors.Is(err, ErrStop) {
		err = nil
	}
	log.ModClock.InfoZ("Clock stopped").
		Error("err", err).
		End()
	return err
}

func (c Clock) runUnthrottled(ctx context.Context, tick func() error) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		if err := tick(); err != nil {
			return err
		}
	}
}

func (c Clock) runTicker(ctx context.Context, tick func() error) error {
	t := time.NewTicker(c.Period)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if err := tick(); err != nil {
				return err
			}
		}
	}
}
