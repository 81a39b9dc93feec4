package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"mergington.dev/backend/cmd/app/cli/seed"
	"mergington.dev/backend/cmd/app/server"
	"mergington.dev/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "mergington",
		Description: "Mergington High School extracurricular activities backend. Built with Go, fiber, bun and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			seed.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
