package infra

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("infra",
		fx.Provide(Database),
		// tracing and sentry only install global side effects, so they must be invoked
		// rather than provided; nothing depends on them by type.
		fx.Invoke(TracingInit),
		fx.Invoke(SentryInit),
	)
}
