package services

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

const dispatchTimeout = 30 * time.Second

// Dispatch runs fn on its own goroutine with a bounded context. Errors and
// panics are logged and never reach the request that triggered the work.
func Dispatch(log *slog.Logger, operation string, fn func(ctx context.Context) error) {
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				stack := make([]byte, 8*1024)
				stack = stack[:runtime.Stack(stack, false)]
				log.Error("panic in background task",
					"operation", operation, "panic", rec, "stack", string(stack))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			log.Error("background task failed", "operation", operation, "error", err)
		}
	}()
}
