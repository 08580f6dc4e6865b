// Package events delivers ledger domain events to downstream consumers.
// The ledger emits synchronously; sinks decide whether delivery is
// in-process, logged, or pushed out over Redis.
package events

import (
	"sync"

	"go.uber.org/zap"

	"github.com/noah-isme/acadledger-api/internal/models"
)

// Sink receives one event per successful ledger mutation.
type Sink interface {
	Emit(event models.Event)
}

// Discard drops every event.
type Discard struct{}

// Emit implements Sink.
func (Discard) Emit(models.Event) {}

// Multi fans an event out to several sinks in order.
type Multi []Sink

// Emit implements Sink.
func (m Multi) Emit(event models.Event) {
	for _, sink := range m {
		sink.Emit(event)
	}
}

// LogSink writes events to the structured log.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink builds a logging sink.
func NewLogSink(logger *zap.Logger) *LogSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSink{logger: logger}
}

// Emit implements Sink.
func (s *LogSink) Emit(event models.Event) {
	fields := []zap.Field{
		zap.String("event_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.Time("occurred_at", event.OccurredAt),
	}
	if !event.Identity.IsZero() {
		fields = append(fields, zap.String("identity", string(event.Identity)))
	}
	if event.StudentID != 0 {
		fields = append(fields, zap.Int64("student_id", event.StudentID))
	}
	if event.CourseID != 0 {
		fields = append(fields, zap.Int64("course_id", event.CourseID))
	}
	if event.Score != nil {
		fields = append(fields, zap.Int("score", *event.Score))
	}
	s.logger.Info("ledger_event", fields...)
}

// Collector buffers events in memory. Intended for tests.
type Collector struct {
	mu     sync.Mutex
	events []models.Event
}

// Emit implements Sink.
func (c *Collector) Emit(event models.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

// Events returns a snapshot of the collected events.
func (c *Collector) Events() []models.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Event(nil), c.events...)
}
