package controller

import (
	"go.uber.org/fx"

	controllerapi "mergington.dev/backend/internal/controller/api"
	controllermeta "mergington.dev/backend/internal/controller/meta"
)

func Module() fx.Option {
	return fx.Module("controller",
		// Controllers (activities api)
		controllerapi.Module(),

		// Controllers (meta)
		controllermeta.Module(),
	)
}
