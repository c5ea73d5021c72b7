package main

import (
	"go.uber.org/fx"
)

// main is the application composition root. It wires the HTTP client, the
// headless map and the terminal view behind their ports, then hands stdin to
// the input bindings.
func main() {
	app := fx.New(
		configModule,
		loopModule,
		adaptersModule,
		servicesModule,

		fx.Invoke(StartLoop),
		fx.Invoke(StartInspector),
		fx.Invoke(StartBindings),
	)

	app.Run()
}
