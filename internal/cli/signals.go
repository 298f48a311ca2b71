package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// notifyContext returns a context that is cancelled on SIGINT or SIGTERM,
// the usual signals from a shell or a service manager.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
