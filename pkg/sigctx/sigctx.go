package sigctx

import (
	"context"
	"os/signal"
	"syscall"
)

// NotifyContext returns a context canceled on the shutdown
// signals the service reacts to.
func NotifyContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
}
