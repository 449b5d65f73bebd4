package config

import (
	"math/rand"
	"time"
)

// Delayer injects artificial latency into a worker's processing step.
// Workers call Delay once per line, immediately after taking it from the
// distribution channel and before parsing it.
type Delayer interface {
	Delay()
}

// NewDelayer returns the delay strategy for this chaos configuration.
//
// When chaos is disabled the returned Delayer is a shared no-op, so the
// production path pays a single interface call and nothing else. When
// enabled, each Delay sleeps for a duration drawn uniformly from
// [MinDelay, MaxDelay]. A zero-width range of zero is degenerate: the
// sleeper never actually sleeps, making min=max=0 behaviorally identical
// to disabled.
func (c ChaosConfig) NewDelayer() Delayer {
	if !c.Enabled {
		return noopDelayer{}
	}
	return &randomDelayer{min: c.MinDelay, max: c.MaxDelay}
}

type noopDelayer struct{}

func (noopDelayer) Delay() {}

// randomDelayer sleeps a uniform random duration per call.
// Safe for concurrent use: math/rand's top-level functions are locked.
type randomDelayer struct {
	min time.Duration
	max time.Duration
}

func (d *randomDelayer) Delay() {
	sleep := d.min
	if span := d.max - d.min; span > 0 {
		sleep += time.Duration(rand.Int63n(int64(span) + 1))
	}
	if sleep > 0 {
		time.Sleep(sleep)
	}
}
