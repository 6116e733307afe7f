package motion

import (
	"errors"
	"math"
	"sync"
	"time"
)

// ErrAlreadyStarted is returned by Simulated.Start when it is already running.
var ErrAlreadyStarted = errors.New("motion: simulated sensor already started")

// Source produces a reading for the time elapsed since Start.
type Source func(elapsed time.Duration) Reading

// Simulated is a Sensor that synthesizes readings on a ticker.
type Simulated struct {
	source Source

	mu       sync.Mutex
	interval time.Duration
	reset    chan time.Duration
	stop     chan struct{}
	done     chan struct{}
}

// NewSimulated returns a stopped sensor. A nil source uses Wobble.
func NewSimulated(source Source) *Simulated {
	if source == nil {
		source = Wobble
	}
	return &Simulated{source: source, interval: DefaultInterval}
}

// Available implements Sensor. A simulated sensor is always available.
func (s *Simulated) Available() bool { return true }

// SetInterval implements Sensor.
func (s *Simulated) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interval = d
	if s.reset != nil {
		// Only the newest interval matters; replace any pending one.
		select {
		case <-s.reset:
		default:
		}
		s.reset <- d
	}
}

// Start implements Sensor.
func (s *Simulated) Start(handler func(Reading, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		return ErrAlreadyStarted
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.reset = make(chan time.Duration, 1)
	go s.run(handler, s.interval, s.reset, s.stop, s.done)
	return nil
}

// Stop implements Sensor. It waits for the ticker goroutine to exit.
func (s *Simulated) Stop() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop, s.done, s.reset = nil, nil, nil
	s.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

func (s *Simulated) run(handler func(Reading, error), d time.Duration, reset <-chan time.Duration, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(d)
	defer ticker.Stop()
	start := time.Now()

	for {
		select {
		case <-stop:
			return
		case d := <-reset:
			ticker.Reset(d)
		case now := <-ticker.C:
			r := s.source(now.Sub(start))
			if r.Timestamp.IsZero() {
				r.Timestamp = now
			}
			handler(r, nil)
		}
	}
}

// Wobble is a Source describing a device gently rocking on its back
// with a two-second period.
func Wobble(elapsed time.Duration) Reading {
	phase := 2 * math.Pi * elapsed.Seconds() / 2
	roll := 0.2 * math.Sin(phase)
	pitch := 0.1 * math.Cos(phase)
	return Reading{
		Attitude:     Attitude{Roll: roll, Pitch: pitch},
		RotationRate: Vec3{X: -0.1 * math.Pi * math.Sin(phase), Y: 0.2 * math.Pi * math.Cos(phase)},
		Gravity: Vec3{
			X: math.Sin(roll),
			Y: -math.Sin(pitch),
			Z: -math.Cos(roll) * math.Cos(pitch),
		},
	}
}
