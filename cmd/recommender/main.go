package main

import (
	"context"
	"time"

	"github.com/niksmo/recommender/config"
	"github.com/niksmo/recommender/internal/app"
	"github.com/niksmo/recommender/pkg/sigctx"
)

const closeTimeout = 5 * time.Second

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	recService := app.New(sigCtx, cfg)

	recService.Run(closeApp)

	<-sigCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	recService.Close(ctx)
}
