package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
	"go.uber.org/fx"
	"gopkg.in/guregu/null.v3"

	"mergington.dev/backend/internal/app/appconfig"
	"mergington.dev/backend/internal/migrations"
	"mergington.dev/backend/internal/model"
	"mergington.dev/backend/internal/pkg/observability"
	"mergington.dev/backend/internal/repo"
)

// SeedActivities returns the example activities the store is bootstrapped with.
func SeedActivities() []*model.Activity {
	return []*model.Activity{
		{
			Name:            "Chess Club",
			Description:     null.StringFrom("Learn strategies and compete in chess tournaments"),
			Schedule:        null.StringFrom("Fridays, 3:30 PM - 5:00 PM"),
			MaxParticipants: null.IntFrom(12),
		},
		{
			Name:            "Programming Class",
			Description:     null.StringFrom("Learn programming fundamentals and build software projects"),
			Schedule:        null.StringFrom("Tuesdays and Thursdays, 3:30 PM - 4:30 PM"),
			MaxParticipants: null.IntFrom(20),
		},
		{
			Name:            "Gym Class",
			Description:     null.StringFrom("Physical education and sports activities"),
			Schedule:        null.StringFrom("Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM"),
			MaxParticipants: null.IntFrom(30),
		},
	}
}

type Seed struct {
	DB           *bun.DB
	ActivityRepo *repo.Activity
}

func NewSeed(db *bun.DB, activityRepo *repo.Activity) *Seed {
	return &Seed{
		DB:           db,
		ActivityRepo: activityRepo,
	}
}

// EnsureSchema applies pending schema migrations.
func (s *Seed) EnsureSchema(ctx context.Context) error {
	if err := migrations.Migrate(ctx, s.DB); err != nil {
		return errors.Wrap(err, "failed to ensure schema")
	}
	return nil
}

// Seed inserts the example activities unless the store already holds any activity.
// seeded reports whether this call inserted them.
func (s *Seed) Seed(ctx context.Context) (seeded bool, err error) {
	if err := s.EnsureSchema(ctx); err != nil {
		return false, err
	}

	var inserted int
	err = s.DB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		exists, err := s.ActivityRepo.HasAnyActivity(ctx, tx)
		if err != nil {
			return errors.Wrap(err, "failed to check for existing activities")
		}
		if exists {
			return nil
		}

		activities := SeedActivities()
		if err := s.ActivityRepo.CreateActivities(ctx, tx, activities); err != nil {
			return errors.Wrap(err, "failed to insert seed activities")
		}
		inserted = len(activities)
		return nil
	})
	if err != nil {
		return false, err
	}

	if inserted > 0 {
		observability.SeededActivities.Add(float64(inserted))
		log.Info().
			Str("evt.name", "seed.inserted").
			Msg("seeded example activities")
	} else {
		log.Info().
			Str("evt.name", "seed.skipped").
			Msg("already seeded")
	}
	return inserted > 0, nil
}

// RegisterSchemaHook ensures the schema, and optionally the seed data, when the
// application starts. It runs before the HTTP listener is opened.
func RegisterSchemaHook(lc fx.Lifecycle, conf *appconfig.Config, seed *Seed) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if conf.SeedOnStart {
				_, err := seed.Seed(ctx)
				return err
			}
			return seed.EnsureSchema(ctx)
		},
	})
}
