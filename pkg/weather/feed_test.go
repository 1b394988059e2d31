package weather

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFeedSeedReading(t *testing.T) {
	f := NewFeed(time.Second, zap.NewNop())
	r := f.Current()
	assert.Equal(t, 24.0, r.Temperature)
	assert.Equal(t, 65.0, r.Humidity)
	assert.Equal(t, 12.0, r.WindSpeed)
	assert.Equal(t, 0.0, r.Rainfall)
	assert.Equal(t, "Sunny", r.Condition)
}

func TestFeedStepStaysWithinPerturbationBounds(t *testing.T) {
	f := NewFeed(time.Second, zap.NewNop())
	for i := 0; i < 500; i++ {
		before := f.Current()
		f.Step()
		after := f.Current()

		assert.LessOrEqual(t, math.Abs(after.Temperature-before.Temperature), 0.21)
		assert.LessOrEqual(t, math.Abs(after.Humidity-before.Humidity), 1.0+1e-9)
		assert.GreaterOrEqual(t, after.Humidity, 0.0)
		assert.LessOrEqual(t, after.Humidity, 100.0)
		assert.GreaterOrEqual(t, after.WindSpeed, 0.0)
		assert.GreaterOrEqual(t, after.Rainfall, 0.0)
	}
}

func TestFeedCurrentIsASnapshot(t *testing.T) {
	f := NewFeed(time.Second, zap.NewNop())
	r := f.Current()
	f.Step()
	// mutating the feed must not reach an already-taken snapshot
	assert.Equal(t, 65.0, r.Humidity)
}
