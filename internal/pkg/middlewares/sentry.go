package middlewares

import (
	"github.com/getsentry/sentry-go"
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"

	"mergington.dev/backend/internal/constant"
)

// EnrichSentry tags the request's Sentry scope with the request id.
func EnrichSentry() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get(constant.SlimHeaderKey) != "" {
			return c.Next()
		}

		if hub := fibersentry.GetHubFromContext(c); hub != nil {
			if id, ok := c.Locals(constant.ContextKeyRequestID).(string); ok {
				hub.ConfigureScope(func(scope *sentry.Scope) {
					scope.SetTag("request_id", id)
				})
			}
		}
		return c.Next()
	}
}
