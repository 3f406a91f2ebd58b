package eventbus

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/osse101/AquaponicsSim_Go/internal/logger"
)

// ResilientConfig configures retries and the dead-letter file
type ResilientConfig struct {
	MaxRetries     int
	RetryDelay     time.Duration
	DeadLetterPath string
}

// DeadLetterEntry is one line of the dead-letter file
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// ResilientPublisher retries failed publishes in the background and writes
// events that never get through to a dead-letter file.
type ResilientPublisher struct {
	inner  Bus
	config ResilientConfig
	mu     sync.Mutex
	wg     sync.WaitGroup
}

// NewResilientPublisher wraps a bus
func NewResilientPublisher(inner Bus, cfg ResilientConfig) *ResilientPublisher {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	return &ResilientPublisher{inner: inner, config: cfg}
}

// Publish returns nil once the event is accepted, even if the first attempt
// failed and a retry is pending.
func (p *ResilientPublisher) Publish(ctx context.Context, evt Event) error {
	err := p.inner.Publish(ctx, evt)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgPublishFailed,
		"event_type", evt.Type,
		"error", err,
		"retries", p.config.MaxRetries)

	p.wg.Add(1)
	go p.retryLoop(evt)
	return nil
}

// Subscribe delegates to the wrapped bus
func (p *ResilientPublisher) Subscribe(t Type, h Handler) {
	p.inner.Subscribe(t, h)
}

// Wait blocks until pending retries finish
func (p *ResilientPublisher) Wait() {
	p.wg.Wait()
}

func (p *ResilientPublisher) retryLoop(evt Event) {
	defer p.wg.Done()
	ctx := context.Background()
	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 1; attempt <= p.config.MaxRetries; attempt++ {
		time.Sleep(retryDelay(p.config.RetryDelay, attempt))

		lastErr = p.inner.Publish(ctx, evt)
		if lastErr == nil {
			log.Info(LogMsgRetrySucceeded, "event_type", evt.Type, "attempt", attempt)
			return
		}
		log.Warn(LogMsgRetryFailed, "event_type", evt.Type, "attempt", attempt, "error", lastErr)
	}

	p.writeDeadLetter(evt, lastErr)
}

func (p *ResilientPublisher) writeDeadLetter(evt Event, lastErr error) {
	if p.config.DeadLetterPath == "" {
		return
	}
	log := logger.FromContext(context.Background())

	p.mu.Lock()
	defer p.mu.Unlock()

	f, err := os.OpenFile(p.config.DeadLetterPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		log.Error(LogMsgDeadLetterFailed, "error", err, "path", p.config.DeadLetterPath)
		return
	}
	defer f.Close()

	entry := DeadLetterEntry{
		SchemaVersion: SchemaVersion,
		Timestamp:     time.Now(),
		Event:         evt,
		Attempts:      p.config.MaxRetries,
	}
	if lastErr != nil {
		entry.LastError = lastErr.Error()
	}

	if err := json.NewEncoder(f).Encode(entry); err != nil {
		log.Error(LogMsgDeadLetterFailed, "error", err)
		return
	}
	log.Warn(LogMsgDeadLettered, "event_type", evt.Type, "attempts", entry.Attempts)
}

// retryDelay backs off linearly: base, 2×base, 3×base...
func retryDelay(base time.Duration, attempt int) time.Duration {
	return base * time.Duration(attempt)
}
