package svr

import (
	"github.com/gofiber/fiber/v2"
)

// Activities is the router the activity signup API is mounted on.
type Activities struct {
	fiber.Router
}

// Meta is the router of operational endpoints (health, build info).
type Meta struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App) (*Activities, *Meta) {
	activities := app.Group("/activities")
	meta := app.Group("/api/_")

	return &Activities{Router: activities}, &Meta{Router: meta}
}
