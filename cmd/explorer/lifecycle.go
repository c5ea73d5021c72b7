package main

import (
	"context"
	"errors"
	"log"
	"os"

	"go.uber.org/fx"

	"city-explorer/internal/adapters/mapwidget"
	"city-explorer/internal/adapters/terminal"
	"city-explorer/internal/api"
	"city-explorer/internal/config"
	"city-explorer/internal/platform/loop"
	"city-explorer/internal/services"
)

// StartLoop runs the event loop for the lifetime of the app and queues the
// startup query for the default city.
func StartLoop(lc fx.Lifecycle, l *loop.EventLoop, o *services.QueryOrchestrator, cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				if err := l.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					log.Printf("event loop stopped: %v", err)
				}
			}()

			if cfg.DefaultCity != "" {
				l.Post(func() {
					if err := o.Search(cfg.DefaultCity); err != nil {
						log.Printf("startup query rejected: %v", err)
					}
				})
			}
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}

// StartInspector serves the read-only inspector when EXPLORER_INSPECT_ADDR is set.
func StartInspector(
	lc fx.Lifecycle,
	cfg config.Config,
	view *terminal.View,
	widget *mapwidget.MemoryWidget,
	o *services.QueryOrchestrator,
	l loop.Scheduler,
) {
	if cfg.InspectAddr == "" {
		return
	}

	srv := api.NewServer(cfg.InspectAddr, api.NewRouter(view, widget, o, l))
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error { return srv.Start() },
		OnStop:  srv.Shutdown,
	})
}

// StartBindings reads commands from stdin and shuts the app down on EOF or quit.
func StartBindings(lc fx.Lifecycle, b *terminal.Bindings, sd fx.Shutdowner) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := b.Run(ctx, os.Stdin); err != nil && !errors.Is(err, context.Canceled) {
					log.Printf("input stopped: %v", err)
				}
				if err := sd.Shutdown(); err != nil {
					log.Printf("shutdown: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
