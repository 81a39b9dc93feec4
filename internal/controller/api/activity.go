package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"mergington.dev/backend/internal/pkg/cachectrl"
	"mergington.dev/backend/internal/server/svr"
	"mergington.dev/backend/internal/service"
	"mergington.dev/backend/internal/util/rekuest"
)

type Activity struct {
	fx.In

	ActivityService *service.Activity
	SignupService   *service.Signup
}

func RegisterActivity(activities *svr.Activities, c Activity) {
	activities.Get("/", c.GetActivities)
	activities.Post("/:activityName/signup", c.SignUp)
	activities.Delete("/:activityName/unregister", c.Unregister)
}

type SignupRequest struct {
	Email string `query:"email" validate:"required"`
}

// GetActivities lists every activity with the emails of its participants.
func (c *Activity) GetActivities(ctx *fiber.Ctx) error {
	activities, err := c.ActivityService.ListActivities(ctx.UserContext())
	if err != nil {
		return err
	}

	cachectrl.OptOut(ctx)
	return ctx.JSON(activities)
}

func (c *Activity) SignUp(ctx *fiber.Ctx) error {
	var request SignupRequest
	if err := rekuest.ValidQuery(ctx, &request); err != nil {
		return err
	}

	result, err := c.SignupService.SignUp(ctx.UserContext(), ctx.Params("activityName"), request.Email)
	if err != nil {
		return err
	}

	return ctx.JSON(result)
}

func (c *Activity) Unregister(ctx *fiber.Ctx) error {
	var request SignupRequest
	if err := rekuest.ValidQuery(ctx, &request); err != nil {
		return err
	}

	result, err := c.SignupService.Unregister(ctx.UserContext(), ctx.Params("activityName"), request.Email)
	if err != nil {
		return err
	}

	return ctx.JSON(result)
}
