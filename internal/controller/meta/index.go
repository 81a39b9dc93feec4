package meta

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"

	"mergington.dev/backend/web"
)

func RegisterIndex(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/static/index.html", fiber.StatusFound)
	})

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   web.Static(),
		Browse: false,
		MaxAge: 300,
	}))
}
