// Package weather simulates the local environmental feed: a bounded random
// walk ticking in the background. The core only ever reads the latest value.
package weather

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"agrismart/entities"
)

type Feed struct {
	mu      sync.RWMutex
	reading entities.WeatherReading
	tick    time.Duration
	rng     *rand.Rand
	log     *zap.Logger
}

func NewFeed(tick time.Duration, log *zap.Logger) *Feed {
	return &Feed{
		reading: entities.WeatherReading{
			Temperature: 24,
			Humidity:    65,
			WindSpeed:   12,
			Rainfall:    0,
			Condition:   "Sunny",
		},
		tick: tick,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
		log:  log,
	}
}

// Current returns a snapshot of the latest reading.
func (f *Feed) Current() entities.WeatherReading {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.reading
}

// Start runs the random walk until ctx is cancelled.
func (f *Feed) Start(ctx context.Context) {
	t := time.NewTicker(f.tick)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				f.log.Debug("weather feed stopped")
				return
			case <-t.C:
				f.Step()
			}
		}
	}()
}

// Step applies one perturbation: temperature ±0.2°C, humidity ±1 clamped to
// [0,100], wind ±0.5 clamped to ≥0, rainfall ±0.2 clamped to ≥0.
func (f *Feed) Step() {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := &f.reading
	r.Temperature = round1(r.Temperature + f.rng.Float64()*0.4 - 0.2)
	r.Humidity = clamp(r.Humidity+f.rng.Float64()*2-1, 0, 100)
	r.WindSpeed = round1(max(0, r.WindSpeed+f.rng.Float64()*1-0.5))
	r.Rainfall = round1(max(0, r.Rainfall+f.rng.Float64()*0.4-0.2))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
