package simdriver_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/varioscale/gauge"
	"github.com/katalvlaran/varioscale/scale"
	"github.com/katalvlaran/varioscale/simdriver"
)

// TestNew_Errors verifies option validation and its sentinels.
func TestNew_Errors(t *testing.T) {
	sink := func(float64) {}
	cases := []struct {
		name string
		sink func(float64)
		opts []simdriver.Option
		err  error
	}{
		{"NilSink", nil, nil, simdriver.ErrNilSink},
		{"RateTooLow", sink, []simdriver.Option{simdriver.WithRate(0)}, simdriver.ErrBadRate},
		{"RateTooHigh", sink, []simdriver.Option{simdriver.WithRate(11)}, simdriver.ErrBadRate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := simdriver.New(tc.sink, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("New() error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestDriver_StartStop: the timer fires while running and is silent after
// Stop returns.
func TestDriver_StartStop(t *testing.T) {
	var events atomic.Int64
	d, err := simdriver.New(func(float64) { events.Add(1) },
		simdriver.WithRate(10), simdriver.WithSeed(1))
	require.NoError(t, err)

	require.NoError(t, d.Start(context.Background()))
	time.Sleep(350 * time.Millisecond)
	d.Stop()

	after := events.Load()
	assert.GreaterOrEqual(t, after, int64(1), "a 10 Hz driver must fire within 350ms")

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, after, events.Load(), "no event may fire after Stop returned")
}

// TestDriver_AlreadyRunning: a second Start reports ErrRunning; the driver
// is reusable after Stop.
func TestDriver_AlreadyRunning(t *testing.T) {
	d, err := simdriver.New(func(float64) {}, simdriver.WithRate(10))
	require.NoError(t, err)

	require.NoError(t, d.Start(context.Background()))
	assert.ErrorIs(t, d.Start(context.Background()), simdriver.ErrRunning)
	d.Stop()

	require.NoError(t, d.Start(context.Background()), "driver restarts after Stop")
	d.Stop()
}

// TestDriver_ContextCancel: cancelling the context halts the driver exactly
// like Stop.
func TestDriver_ContextCancel(t *testing.T) {
	var events atomic.Int64
	d, err := simdriver.New(func(float64) { events.Add(1) }, simdriver.WithRate(10))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, d.Start(ctx))
	time.Sleep(250 * time.Millisecond)
	cancel()
	time.Sleep(150 * time.Millisecond)

	after := events.Load()
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, after, events.Load(), "no event after context cancellation")
	d.Stop()
}

// TestDriver_SequentialDelivery: events never overlap even when the sink is
// slower than the tick period — the single-writer invariant.
func TestDriver_SequentialDelivery(t *testing.T) {
	var inSink atomic.Bool
	var overlaps atomic.Int64

	d, err := simdriver.New(func(float64) {
		if !inSink.CompareAndSwap(false, true) {
			overlaps.Add(1)
		}
		time.Sleep(30 * time.Millisecond)
		inSink.Store(false)
	}, simdriver.WithRate(10))
	require.NoError(t, err)

	require.NoError(t, d.Start(context.Background()))
	time.Sleep(500 * time.Millisecond)
	d.Stop()

	assert.Zero(t, overlaps.Load(), "sink invocations must be strictly sequential")
}

// TestDriver_WalkBounded: with a fixed seed the walk stays inside ±Limit.
func TestDriver_WalkBounded(t *testing.T) {
	var bad atomic.Int64
	d, err := simdriver.New(func(v float64) {
		if v > 3 || v < -3 {
			bad.Add(1)
		}
	}, simdriver.WithRate(10), simdriver.WithLimit(3), simdriver.WithStep(2), simdriver.WithSeed(7))
	require.NoError(t, err)

	require.NoError(t, d.Start(context.Background()))
	time.Sleep(600 * time.Millisecond)
	d.Stop()

	assert.Zero(t, bad.Load(), "walk must reflect off the configured bound")
	assert.Greater(t, d.Fired(), 0)
}

// TestDriver_FeedsGaugeWithoutRebuilds wires the driver to a live gauge:
// an event stream, whatever its length, must never trigger a scale rebuild.
func TestDriver_FeedsGaugeWithoutRebuilds(t *testing.T) {
	g := gauge.New(scale.Config{
		Breakpoints: []float64{-10, -5, -1, 0, 1, 5, 10},
		Weights:     []float64{0.1, 0.1, 0.3, 0.3, 0.1, 0.1},
		Padding:     50,
		Orientation: scale.Horizontal,
	})
	g.SetViewport(900, 200)
	require.Equal(t, 1, g.Rebuilds())

	d, err := simdriver.New(g.SetValue, simdriver.WithRate(10), simdriver.WithSeed(3))
	require.NoError(t, err)
	require.NoError(t, d.Start(context.Background()))
	time.Sleep(500 * time.Millisecond)
	d.Stop()

	require.Greater(t, d.Fired(), 0, "driver must have produced events")
	assert.Equal(t, 1, g.Rebuilds(), "value events ride the cheap path only")
	assert.InDelta(t, g.Scale().Forward(g.Indicator().Value), g.Frame().Indicator.Along, 1e-9)
}
