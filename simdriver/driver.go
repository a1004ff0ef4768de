package simdriver

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"
)

// Sentinel errors returned by the driver.
var (
	// ErrBadRate indicates a tick rate outside the supported [1, 10] Hz band.
	ErrBadRate = errors.New("simdriver: rate must be between 1 and 10 Hz")

	// ErrNilSink indicates no sink callback was supplied.
	ErrNilSink = errors.New("simdriver: sink must not be nil")

	// ErrRunning indicates Start was called while the driver is running.
	ErrRunning = errors.New("simdriver: already running")
)

// Rate limits, matching the instrument's manual 1–10 Hz control.
const (
	MinRate = 1
	MaxRate = 10
)

// Walk bounds and step size of the simulated value.
const (
	defaultLimit = 10.0 // values wander inside [−limit, limit]
	defaultStep  = 1.5  // maximum per-tick excursion
)

// Options configures the simulation driver.
//
// RateHz — timer frequency, [1, 10]. Each firing produces exactly one
// value-update event.
// Limit  — the walk reflects off ±Limit; defaults to 10 (the canonical
// outermost breakpoint).
// Step   — maximum absolute per-tick change; defaults to 1.5.
// Seed   — RNG seed for reproducible walks; 0 seeds from the clock.
type Options struct {
	RateHz int
	Limit  float64
	Step   float64
	Seed   int64
}

// Option is a functional option for configuring the driver.
type Option func(*Options)

// WithRate sets the timer frequency in Hz. Values outside [1, 10] surface
// as ErrBadRate from New.
func WithRate(hz int) Option {
	return func(o *Options) { o.RateHz = hz }
}

// WithLimit sets the reflection bound of the random walk.
func WithLimit(limit float64) Option {
	return func(o *Options) { o.Limit = limit }
}

// WithStep sets the maximum per-tick excursion.
func WithStep(step float64) Option {
	return func(o *Options) { o.Step = step }
}

// WithSeed fixes the RNG seed, making the walk reproducible in tests and
// recordings.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// DefaultOptions returns the driver defaults: 2 Hz, ±10 bound, 1.5 step,
// clock-seeded RNG.
func DefaultOptions() Options {
	return Options{RateHz: 2, Limit: defaultLimit, Step: defaultStep}
}

// Driver produces value-update events on a timer. One goroutine, one sink,
// strictly sequential delivery.
type Driver struct {
	opts Options
	sink func(value float64)
	rng  *rand.Rand

	mu    sync.Mutex
	stop  chan struct{}
	done  chan struct{}
	value float64
	fired int
}

// New builds a driver delivering simulated values to sink. The sink runs on
// the driver's goroutine; it must not block longer than a tick period.
func New(sink func(value float64), opts ...Option) (*Driver, error) {
	if sink == nil {
		return nil, ErrNilSink
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.RateHz < MinRate || o.RateHz > MaxRate {
		return nil, ErrBadRate
	}

	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Driver{
		opts: o,
		sink: sink,
		rng:  rand.New(rand.NewSource(seed)),
	}, nil
}

// Start launches the timer goroutine. It returns ErrRunning if the driver
// is already active. Cancelling ctx stops the driver exactly like Stop.
func (d *Driver) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		return ErrRunning
	}
	d.stop = make(chan struct{})
	d.done = make(chan struct{})
	go d.loop(ctx, d.stop, d.done)
	return nil
}

// Stop halts the timer and waits for the goroutine to exit, so no event can
// fire after Stop returns. Stopping an idle driver is a no-op.
func (d *Driver) Stop() {
	d.mu.Lock()
	stop, done := d.stop, d.done
	d.stop, d.done = nil, nil
	d.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// Fired reports how many events have been delivered since construction.
func (d *Driver) Fired() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fired
}

// loop is the single event producer. The sink call is synchronous, so the
// next tick cannot overtake a slow consumer; ticker backpressure simply
// drops intervening firings.
func (d *Driver) loop(ctx context.Context, stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(time.Second / time.Duration(d.opts.RateHz))
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.sink(d.next())
		}
	}
}

// next advances the random walk one step, reflecting off ±Limit.
func (d *Driver) next() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.value += (2*d.rng.Float64() - 1) * d.opts.Step
	if d.value > d.opts.Limit {
		d.value = 2*d.opts.Limit - d.value
	}
	if d.value < -d.opts.Limit {
		d.value = -2*d.opts.Limit - d.value
	}
	d.fired++
	return d.value
}
