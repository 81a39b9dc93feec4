// Package migrations holds the schema of the activities store.
package migrations

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

// Migrations collects every schema migration in this package. Files are named
// <timestamp>_<name>.go, which bun uses as the migration name.
var Migrations = migrate.NewMigrations()

const unlockTimeout = 10 * time.Second

// Migrate brings the schema up to date. It is safe to call on every startup.
func Migrate(ctx context.Context, db *bun.DB) error {
	migrator := migrate.NewMigrator(db, Migrations)

	if err := migrator.Init(ctx); err != nil {
		return errors.Wrap(err, "failed to init migration tables")
	}

	if err := migrator.Lock(ctx); err != nil {
		return errors.Wrap(err, "failed to acquire migration lock")
	}
	defer unlock(ctx, migrator)

	group, err := migrator.Migrate(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	if group.IsZero() {
		log.Debug().
			Str("evt.name", "db.migrate.noop").
			Msg("schema is up to date")
		return nil
	}

	log.Info().
		Str("evt.name", "db.migrate.applied").
		Str("group", group.String()).
		Msg("schema migrated")
	return nil
}

// unlock releases the migration lock even when ctx is already done. A lock row
// left behind would fail every later startup.
func unlock(ctx context.Context, migrator *migrate.Migrator) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), unlockTimeout)
	defer cancel()

	if err := migrator.Unlock(ctx); err != nil {
		log.Error().Err(err).Msg("failed to release migration lock")
	}
}
