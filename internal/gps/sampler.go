package gps

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

// Config holds the sampler thresholds.
type Config struct {
	// MaxAccuracyMeters rejects readings whose reported accuracy is worse.
	MaxAccuracyMeters float64
	// MinInterval is the minimum time between two automatic sends.
	MinInterval time.Duration
	// MinDisplacementMeters is the minimum movement since the last accepted point.
	MinDisplacementMeters float64
}

// DefaultConfig returns the standard thresholds: 80 m, 15 s, 12 m.
func DefaultConfig() Config {
	return Config{
		MaxAccuracyMeters:     80,
		MinInterval:           15 * time.Second,
		MinDisplacementMeters: 12,
	}
}

// Reading is one position emitted by the device location provider.
type Reading struct {
	Latitude       float64
	Longitude      float64
	AccuracyMeters *float64
	// Timestamp is when the provider took the reading. Zero means unknown.
	Timestamp time.Time
}

// Coordinate returns the position of the reading.
func (r Reading) Coordinate() Coordinate {
	return Coordinate{Latitude: r.Latitude, Longitude: r.Longitude}
}

// Sender delivers accepted readings, typically as a recordLocation call.
type Sender interface {
	Send(ctx context.Context, r Reading, source domain.LocationSource) error
}

// Status is the outcome of offering a reading to the sampler.
type Status string

const (
	StatusSent        Status = "sent"
	StatusLowAccuracy Status = "low_accuracy"
	StatusTooSoon     Status = "too_soon"
	StatusStationary  Status = "stationary"
	StatusBusy        Status = "busy"
	StatusSendFailed  Status = "send_failed"
)

// Result describes what the sampler did with a reading.
// Rejections are expected steady-state outcomes, not errors.
type Result struct {
	Status  Status
	Source  domain.LocationSource
	Message string
	// Err is set only for StatusSendFailed.
	Err error
}

// Sent reports whether the reading reached the sender successfully.
func (r Result) Sent() bool { return r.Status == StatusSent }

// Sampler filters positions by accuracy, interval and displacement.
// At most one send is in flight at a time; overlapping offers are dropped.
type Sampler struct {
	cfg    Config
	sender Sender
	now    func() time.Time

	inFlight atomic.Bool

	mu         sync.Mutex
	lastSentAt time.Time
	last       *Coordinate
}

// NewSampler creates a sampler that delivers accepted readings to sender.
func NewSampler(sender Sender, cfg Config) *Sampler {
	return &Sampler{cfg: cfg, sender: sender, now: time.Now}
}

// Last returns the last accepted coordinate, if any.
func (s *Sampler) Last() (Coordinate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return Coordinate{}, false
	}
	return *s.last, true
}

// Observe offers an automatic reading. It is sent with source gps only if it
// is accurate enough, far enough in time from the last send and far enough
// from the last accepted coordinate.
func (s *Sampler) Observe(ctx context.Context, r Reading) Result {
	if r.AccuracyMeters != nil && *r.AccuracyMeters > s.cfg.MaxAccuracyMeters {
		return Result{
			Status:  StatusLowAccuracy,
			Source:  domain.LocationSourceGPS,
			Message: fmt.Sprintf("signal too imprecise (%.0f m > %.0f m)", *r.AccuracyMeters, s.cfg.MaxAccuracyMeters),
		}
	}

	at := s.readingTime(r)

	s.mu.Lock()
	if !s.lastSentAt.IsZero() && at.Sub(s.lastSentAt) < s.cfg.MinInterval {
		s.mu.Unlock()
		return Result{Status: StatusTooSoon, Source: domain.LocationSourceGPS, Message: "waiting for next sample window"}
	}
	if s.last != nil {
		if d := Distance(*s.last, r.Coordinate()); d < s.cfg.MinDisplacementMeters {
			s.mu.Unlock()
			return Result{
				Status:  StatusStationary,
				Source:  domain.LocationSourceGPS,
				Message: fmt.Sprintf("stationary, skipped (moved %.1f m)", d),
			}
		}
	}
	s.mu.Unlock()

	return s.send(ctx, r, at, domain.LocationSourceGPS)
}

// CaptureNow sends r immediately with source manual, skipping the interval
// and displacement checks. It still moves the sampler state forward.
func (s *Sampler) CaptureNow(ctx context.Context, r Reading) Result {
	return s.send(ctx, r, s.readingTime(r), domain.LocationSourceManual)
}

// Simulated sends the count-th point of the synthetic test sequence.
func (s *Sampler) Simulated(ctx context.Context, count int) Result {
	r := SimulatedReading(count, s.now())
	return s.send(ctx, r, r.Timestamp, domain.LocationSourceSimulated)
}

// SimulatedReading returns the deterministic synthetic point number count.
func SimulatedReading(count int, at time.Time) Reading {
	lngOffset := 0.0001
	if count%2 != 0 {
		lngOffset = 0.0002
	}
	accuracy := float64(10 + count)
	return Reading{
		Latitude:       -23.55052 + float64(count)*0.00014,
		Longitude:      -46.633308 + lngOffset,
		AccuracyMeters: &accuracy,
		Timestamp:      at,
	}
}

func (s *Sampler) send(ctx context.Context, r Reading, at time.Time, source domain.LocationSource) Result {
	if !s.inFlight.CompareAndSwap(false, true) {
		return Result{Status: StatusBusy, Source: source, Message: "previous location still sending, dropped"}
	}
	defer s.inFlight.Store(false)

	s.mu.Lock()
	c := r.Coordinate()
	s.lastSentAt = at
	s.last = &c
	s.mu.Unlock()

	if err := s.sender.Send(ctx, r, source); err != nil {
		return Result{Status: StatusSendFailed, Source: source, Message: "failed to record location", Err: err}
	}
	return Result{Status: StatusSent, Source: source, Message: fmt.Sprintf("location recorded (%s)", source)}
}

func (s *Sampler) readingTime(r Reading) time.Time {
	if r.Timestamp.IsZero() {
		return s.now()
	}
	return r.Timestamp
}
