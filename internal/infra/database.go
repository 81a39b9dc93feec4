package infra

import (
	"context"
	"database/sql"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"
	"github.com/uptrace/bun/extra/bunotel"
	"go.uber.org/fx"

	"mergington.dev/backend/internal/app/appconfig"
)

const dbName = "activities"

func Database(conf *appconfig.Config, lc fx.Lifecycle) (*bun.DB, error) {
	db, err := OpenDatabase(conf)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info().Str("evt.name", "infra.db.close").Msg("closing database")
			return db.Close()
		},
	})

	return db, nil
}

// OpenDatabase opens the store selected by conf.DatabaseURL and waits until it answers a ping.
func OpenDatabase(conf *appconfig.Config) (*bun.DB, error) {
	var db *bun.DB
	if conf.IsPostgres() {
		sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(conf.DatabaseURL)))
		sqldb.SetMaxOpenConns(conf.DatabaseMaxOpenConns)
		sqldb.SetMaxIdleConns(conf.DatabaseMaxIdleConns)
		sqldb.SetConnMaxLifetime(conf.DatabaseConnMaxLifeTime)
		sqldb.SetConnMaxIdleTime(conf.DatabaseConnMaxIdleTime)

		db = bun.NewDB(sqldb, pgdialect.New())
	} else {
		sqldb, err := sql.Open(sqliteshim.ShimName, conf.DatabaseURL)
		if err != nil {
			return nil, errors.Wrap(err, "infra: db: failed to open sqlite database")
		}
		// SQLite has a single writer. One connection that is never recycled serializes
		// transactions and keeps in-memory databases and per-connection pragmas alive.
		sqldb.SetMaxOpenConns(1)
		sqldb.SetMaxIdleConns(1)
		sqldb.SetConnMaxLifetime(0)
		sqldb.SetConnMaxIdleTime(0)

		db = bun.NewDB(sqldb, sqlitedialect.New())
	}

	db.AddQueryHook(bundebug.NewQueryHook(
		bundebug.WithVerbose(conf.BunDebugVerbose),
	))
	if conf.TracingEnabled {
		db.AddQueryHook(bunotel.NewQueryHook(bunotel.WithDBName(dbName)))
	}

	err := retry.Do(
		func() error {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
			defer cancel()
			return db.PingContext(ctx)
		},
		retry.Attempts(conf.DatabaseConnectAttempts),
		retry.Delay(time.Second),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().
				Str("evt.name", "infra.db.ping.retry").
				Err(err).
				Uint("attempt", n+1).
				Msg("database not reachable yet. retrying...")
		}),
	)
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "infra: db: database not reachable")
	}

	if !conf.IsPostgres() {
		for _, pragma := range []string{
			"PRAGMA foreign_keys = ON",
			"PRAGMA busy_timeout = 5000",
		} {
			if _, err := db.Exec(pragma); err != nil {
				_ = db.Close()
				return nil, errors.Wrapf(err, "infra: db: failed to apply %q", pragma)
			}
		}
	}

	log.Info().
		Str("evt.name", "infra.db.open").
		Str("dialect", db.Dialect().Name().String()).
		Msg("database connected")

	return db, nil
}
