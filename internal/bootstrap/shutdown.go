package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/AquaponicsSim_Go/internal/eventbus"
	"github.com/osse101/AquaponicsSim_Go/internal/server"
	"github.com/osse101/AquaponicsSim_Go/internal/sse"
)

// ShutdownComponents holds everything that needs an orderly stop
type ShutdownComponents struct {
	Server    *server.Server
	Hub       *sse.Hub
	Publisher *eventbus.ResilientPublisher
	Store     *Store
}

// GracefulShutdown stops the HTTP server first, then the event stream,
// then waits for publish retries and finally closes storage. Errors are
// logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Hub != nil {
		c.Hub.Stop()
	}

	if c.Publisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		drained := make(chan struct{})
		go func() {
			c.Publisher.Wait()
			close(drained)
		}()
		select {
		case <-drained:
		case <-ctx.Done():
			slog.Warn(LogMsgPublisherDrainTimeout, "error", ctx.Err())
		}
	}

	if c.Store != nil {
		c.Store.Close()
	}

	slog.Info(LogMsgServerStopped)
}
