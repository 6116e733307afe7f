package motion

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

var (
	// ErrNilSensor is returned by NewManager when no sensor is given.
	ErrNilSensor = errors.New("motion: nil sensor")

	// ErrUnavailable is returned by Start when the sensor reports that
	// device motion is not available.
	ErrUnavailable = errors.New("motion: device motion unavailable")

	// ErrInvalidInterval is returned by SetInterval for non-positive durations.
	ErrInvalidInterval = errors.New("motion: interval must be positive")
)

// Sensor is the platform device-motion source.
type Sensor interface {
	// Available reports whether device motion can be delivered at all.
	Available() bool
	// SetInterval changes the update interval. It may be called while
	// updates are running.
	SetInterval(d time.Duration)
	// Start begins delivering readings to handler until Stop is called.
	// handler may be invoked from any goroutine, including the caller's.
	Start(handler func(Reading, error)) error
	// Stop ends delivery. After Stop returns, handler is not called again.
	Stop()
}

// Manager owns one Sensor and keeps its most recent reading.
//
// Start and Stop are idempotent: the sensor is started exactly once per
// stopped-to-running transition and stopped exactly once per
// running-to-stopped transition. Manager is safe for concurrent use.
type Manager struct {
	sensor   Sensor
	logger   *slog.Logger
	onUpdate func(Reading)

	mu       sync.Mutex // serializes transitions
	running  bool
	interval time.Duration

	// gen identifies the current subscription. Readings carrying an older
	// generation are dropped.
	gen    atomic.Uint64
	latest atomic.Pointer[Reading]
}

// NewManager creates a stopped Manager for sensor and pushes the initial
// interval to it.
func NewManager(sensor Sensor, opts ...Option) (*Manager, error) {
	if sensor == nil {
		return nil, ErrNilSensor
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	m := &Manager{
		sensor:   sensor,
		logger:   o.resolveLogger(),
		onUpdate: o.onUpdate,
		interval: o.interval,
	}
	sensor.SetInterval(o.interval)
	return m, nil
}

// Start begins motion updates. Calling Start while running does nothing.
// If the sensor is unavailable Start returns ErrUnavailable and the
// manager stays stopped.
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return nil
	}
	if !m.sensor.Available() {
		m.logger.Debug("motion: sensor unavailable")
		return ErrUnavailable
	}

	g := m.gen.Add(1)
	if err := m.sensor.Start(func(r Reading, err error) { m.deliver(g, r, err) }); err != nil {
		m.gen.Add(1)
		return fmt.Errorf("motion: start sensor: %w", err)
	}
	m.running = true
	m.logger.Debug("motion: updates started", "interval", m.interval)
	return nil
}

// Stop ends motion updates. Calling Stop while stopped does nothing.
// The last reading stays available through Latest.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}
	m.gen.Add(1)
	m.sensor.Stop()
	m.running = false
	m.logger.Debug("motion: updates stopped")
}

// Running reports whether updates are active.
func (m *Manager) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// SetInterval changes the update interval, including while running.
func (m *Manager) SetInterval(d time.Duration) error {
	if d <= 0 {
		return ErrInvalidInterval
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interval = d
	m.sensor.SetInterval(d)
	return nil
}

// Interval returns the configured update interval.
func (m *Manager) Interval() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.interval
}

// Latest returns the most recent reading. ok is false until the first
// reading arrives.
func (m *Manager) Latest() (Reading, bool) {
	r := m.latest.Load()
	if r == nil {
		return Reading{}, false
	}
	return *r, true
}

func (m *Manager) deliver(g uint64, r Reading, err error) {
	if m.gen.Load() != g {
		return
	}
	if err != nil {
		m.logger.Warn("motion: sensor error", "err", err)
		return
	}
	m.latest.Store(&r)
	if m.onUpdate != nil {
		m.onUpdate(r)
	}
}
