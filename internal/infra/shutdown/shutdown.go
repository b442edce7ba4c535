package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"go.uber.org/multierr"
)

// Signals are the process signals that interrupt a session.
var Signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// Hook is a cleanup function run at shutdown.
type Hook func(context.Context) error

// Handler handles graceful shutdown.
type Handler struct {
	timeout   time.Duration
	hooks     []Hook
	mu        sync.Mutex
	done      chan struct{}
	once      sync.Once
	signalled atomic.Bool
}

// NewHandler creates a new shutdown handler.
func NewHandler(timeout time.Duration) *Handler {
	return &Handler{
		timeout: timeout,
		hooks:   make([]Hook, 0),
		done:    make(chan struct{}),
	}
}

// OnShutdown registers a shutdown hook.
// Hooks are called in reverse order of registration.
func (h *Handler) OnShutdown(hook Hook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks = append(h.hooks, hook)
}

// Notify returns a child of parent that is cancelled when one of Signals
// arrives. The returned cancel func releases the signal subscription.
func (h *Handler) Notify(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, Signals...)

	go func() {
		defer signal.Stop(sigCh)
		select {
		case <-sigCh:
			h.signalled.Store(true)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

// Signalled reports whether a signal cancelled a context returned by Notify.
func (h *Handler) Signalled() bool {
	return h.signalled.Load()
}

// Shutdown executes hooks in reverse order under the handler timeout and
// returns every hook error combined. Only the first call runs the hooks.
func (h *Handler) Shutdown() error {
	var err error
	h.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
		defer cancel()

		h.mu.Lock()
		hooks := make([]Hook, len(h.hooks))
		copy(hooks, h.hooks)
		h.mu.Unlock()

		for i := len(hooks) - 1; i >= 0; i-- {
			err = multierr.Append(err, hooks[i](ctx))
		}

		close(h.done)
	})
	return err
}

// Done returns a channel that closes when shutdown is complete.
func (h *Handler) Done() <-chan struct{} {
	return h.done
}
