package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/AquaponicsSim_Go/internal/config"
	"github.com/osse101/AquaponicsSim_Go/internal/eventbus"
	"github.com/osse101/AquaponicsSim_Go/internal/metrics"
	"github.com/osse101/AquaponicsSim_Go/internal/sse"
)

// InitializeEventSystem creates the in-process bus and the retrying
// publisher services publish through. Subscribers attach to the bus.
func InitializeEventSystem(cfg *config.Config) (*eventbus.MemoryBus, *eventbus.ResilientPublisher, error) {
	bus := eventbus.NewMemoryBus()

	if cfg.DeadLetterPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.DeadLetterPath), DirPermission); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
		}
	}

	publisher := eventbus.NewResilientPublisher(bus, eventbus.ResilientConfig{
		MaxRetries:     EventDefaultMaxRetries,
		RetryDelay:     EventDefaultRetryDelay,
		DeadLetterPath: cfg.DeadLetterPath,
	})

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", EventDefaultMaxRetries,
		"retry_delay", EventDefaultRetryDelay,
		"deadletter_path", cfg.DeadLetterPath)

	return bus, publisher, nil
}

// RegisterEventHandlers attaches the metrics collector and, when a hub is
// given, the SSE bridge.
func RegisterEventHandlers(bus eventbus.Bus, hub *sse.Hub) {
	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if hub != nil {
		sse.NewSubscriber(hub, bus).Subscribe()
		slog.Info(LogMsgSSESubscriberRegistered)
	}
}
