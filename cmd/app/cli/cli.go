package cli

import (
	"context"

	"go.uber.org/fx"

	"mergington.dev/backend/internal/app"
	"mergington.dev/backend/internal/app/appcontext"
)

// Start builds the application for a one-shot command and starts it, so that
// module can use every dependency of the graph. Stop must be called when done.
func Start(module fx.Option) (stop func() error, err error) {
	fxApp := app.New(appcontext.Declare(appcontext.EnvCLI), module)
	if err := fxApp.Start(context.Background()); err != nil {
		return nil, err
	}
	return func() error {
		return fxApp.Stop(context.Background())
	}, nil
}
