// Package testentry builds the application, or parts of it, on top of a private
// in-memory SQLite database for tests.
package testentry

import (
	"context"
	"testing"

	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"mergington.dev/backend/internal/app"
	"mergington.dev/backend/internal/app/appconfig"
	"mergington.dev/backend/internal/app/appcontext"
	"mergington.dev/backend/internal/infra"
	"mergington.dev/backend/internal/migrations"
)

// Config returns the default configuration pointed at a fresh in-memory database.
func Config(t testing.TB) *appconfig.Config {
	conf, err := appconfig.Parse(appcontext.Declare(appcontext.EnvTest))
	require.NoError(t, err)

	conf.DatabaseURL = "file:" + xid.New().String() + "?mode=memory&cache=shared"
	conf.DatabaseConnectAttempts = 1
	conf.LogFile = ""
	conf.TracingEnabled = false
	conf.SentryDSN = ""
	conf.SeedOnStart = false
	return conf
}

// Populate starts the whole application graph and fills targets from it.
// The application is stopped when the test ends.
func Populate(t testing.TB, targets ...any) {
	PopulateWithConfig(t, Config(t), targets...)
}

func PopulateWithConfig(t testing.TB, conf *appconfig.Config, targets ...any) {
	// for testing, the fx logger is too annoying. therefore, we use a NopLogger here
	opts := []fx.Option{fx.NopLogger}
	opts = append(opts, app.OptionsWithConfig(conf)...)
	opts = append(opts, fx.Populate(targets...))
	useTestLogger(t)

	fxApp := fxtest.New(t, opts...)
	fxApp.RequireStart()
	t.Cleanup(func() {
		fxApp.RequireStop()
	})
}

// DB opens a migrated in-memory database without the rest of the application.
func DB(t testing.TB) *bun.DB {
	useTestLogger(t)

	db, err := infra.OpenDatabase(Config(t))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, migrations.Migrate(context.Background(), db))
	return db
}

func useTestLogger(t testing.TB) {
	log.Logger = zerolog.New(zerolog.NewTestWriter(t)).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log.Logger
}
