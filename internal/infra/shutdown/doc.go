// Package shutdown ties process signals to a session context and runs
// registered cleanup hooks once the session ends.
//
// Usage:
//
//	h := shutdown.NewHandler(5 * time.Second)
//	ctx, stop := h.Notify(context.Background())
//	defer stop()
//
//	h.OnShutdown(func(ctx context.Context) error {
//	    return log.Sync()
//	})
//
//	runSession(ctx)
//	err := h.Shutdown()
//
// Hooks run in reverse registration order.
package shutdown
