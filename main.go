package main

import (
	"context"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"vec2d/internal/observability"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		observability.GetLogger().Error("command failed", zap.Error(err))
		observability.Sync()
		stop()
		os.Exit(1)
	}
}
