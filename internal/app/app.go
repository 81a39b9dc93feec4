package app

import (
	"time"

	"go.uber.org/fx"

	"mergington.dev/backend/internal/app/appconfig"
	"mergington.dev/backend/internal/app/appcontext"
	"mergington.dev/backend/internal/controller"
	"mergington.dev/backend/internal/infra"
	"mergington.dev/backend/internal/pkg/logger"
	"mergington.dev/backend/internal/repo"
	"mergington.dev/backend/internal/server"
	"mergington.dev/backend/internal/service"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	opts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),
	}
	opts = append(opts, OptionsWithConfig(conf)...)

	return append(opts, additionalOpts...)
}

// OptionsWithConfig assembles the application graph around an already parsed conf.
func OptionsWithConfig(conf *appconfig.Config) []fx.Option {
	return []fx.Option{
		// Misc
		fx.Supply(conf),

		// Infrastructures
		infra.Module(),

		// Servers
		server.Module(),

		// Repositories
		repo.Module(),

		// Services
		service.Module(),

		// Schema: root-level invokes run in order, so this hook starts before the
		// HTTP listener that the start command appends afterwards.
		fx.Invoke(service.RegisterSchemaHook),

		// Controllers
		controller.Module(),

		// fx Extra Options
		fx.StartTimeout(15 * time.Second),
		// StopTimeout is not typically needed, since we're using fiber's ShutdownWithTimeout().
		// It acts as a countermeasure in case the fiber app is not properly shutting down.
		fx.StopTimeout(5 * time.Minute),
	}
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
