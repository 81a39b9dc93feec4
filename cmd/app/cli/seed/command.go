package seed

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "mergington.dev/backend/cmd/app/cli"
	"mergington.dev/backend/internal/service"
)

type CommandDeps struct {
	fx.In

	SeedService *service.Seed
}

func Command() *cli.Command {
	return &cli.Command{
		Name:        "seed",
		Usage:       "populate the store with the example activities",
		Description: "create the schema and insert the example activities unless any activity already exists",
		Action: func(c *cli.Context) error {
			var deps CommandDeps
			stop, err := cliapp.Start(fx.Populate(&deps))
			if err != nil {
				return err
			}
			defer func() {
				_ = stop()
			}()

			return run(c, deps)
		},
	}
}

func run(c *cli.Context, deps CommandDeps) error {
	seeded, err := deps.SeedService.Seed(c.Context)
	if err != nil {
		return err
	}

	if seeded {
		fmt.Fprintln(c.App.Writer, "Database seeded with example activities")
	} else {
		fmt.Fprintln(c.App.Writer, "Database already seeded")
	}
	return nil
}
