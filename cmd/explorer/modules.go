package main

import (
	"os"
	"time"

	"go.uber.org/fx"

	apiclient "city-explorer/internal/adapters/api"
	"city-explorer/internal/adapters/mapwidget"
	"city-explorer/internal/adapters/terminal"
	"city-explorer/internal/config"
	"city-explorer/internal/platform/loop"
	"city-explorer/internal/services"
)

var configModule = fx.Provide(config.Load)

var loopModule = fx.Provide(
	loop.New,
	func(l *loop.EventLoop) loop.Scheduler { return l },
)

var adaptersModule = fx.Provide(
	provideClient,
	mapwidget.NewMemoryWidget,
	provideView,
	provideCheckboxes,
)

var servicesModule = fx.Provide(
	provideMapSync,
	provideFilterReader,
	provideOrchestrator,
	provideBindings,
)

func provideClient(cfg config.Config) (*apiclient.Client, error) {
	return apiclient.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, cfg.APIMaxAttempts)
}

func provideView() *terminal.View {
	return terminal.NewView(os.Stdout)
}

func provideCheckboxes(cfg config.Config) *terminal.Checkboxes {
	return terminal.NewCheckboxes(cfg.Categories)
}

func provideMapSync(w *mapwidget.MemoryWidget, l loop.Scheduler) *services.MapSync {
	return services.NewMapSync(w, l)
}

func provideFilterReader(boxes *terminal.Checkboxes) *services.CategoryFilterReader {
	return services.NewCategoryFilterReader(boxes)
}

// The per-cycle deadline covers every retry attempt of one fetch.
func provideOrchestrator(
	cfg config.Config,
	client *apiclient.Client,
	view *terminal.View,
	m *services.MapSync,
	filters *services.CategoryFilterReader,
	l loop.Scheduler,
) (*services.QueryOrchestrator, error) {
	return services.NewQueryOrchestrator(services.QueryOrchestratorConfig{
		Weather:      client,
		Recs:         client,
		View:         view,
		Map:          m,
		Filters:      filters,
		Loop:         l,
		Timeout:      cfg.HTTPTimeout * time.Duration(cfg.APIMaxAttempts),
		DiscardStale: cfg.DiscardStale,
	})
}

func provideBindings(o *services.QueryOrchestrator, boxes *terminal.Checkboxes, l loop.Scheduler) *terminal.Bindings {
	return terminal.NewBindings(o, boxes, l, os.Stdout)
}
