package migrations

import (
	"context"

	"github.com/uptrace/bun"

	"mergington.dev/backend/internal/model"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.NewCreateTable().
				Model((*model.Activity)(nil)).
				IfNotExists().
				Exec(ctx); err != nil {
				return err
			}

			if _, err := tx.NewCreateTable().
				Model((*model.Participant)(nil)).
				IfNotExists().
				Exec(ctx); err != nil {
				return err
			}

			if _, err := tx.NewCreateTable().
				Model((*model.ActivityParticipant)(nil)).
				IfNotExists().
				ForeignKey(`("activity_id") REFERENCES "activity" ("id") ON DELETE CASCADE`).
				ForeignKey(`("participant_id") REFERENCES "participant" ("id") ON DELETE CASCADE`).
				Exec(ctx); err != nil {
				return err
			}

			if _, err := tx.NewCreateIndex().
				Model((*model.Activity)(nil)).
				Unique().
				IfNotExists().
				Index("activity_name_uidx").
				Column("name").
				Exec(ctx); err != nil {
				return err
			}

			if _, err := tx.NewCreateIndex().
				Model((*model.Participant)(nil)).
				Unique().
				IfNotExists().
				Index("participant_email_uidx").
				Column("email").
				Exec(ctx); err != nil {
				return err
			}

			_, err := tx.NewCreateIndex().
				Model((*model.ActivityParticipant)(nil)).
				IfNotExists().
				Index("activity_participant_participant_id_idx").
				Column("participant_id").
				Exec(ctx)
			return err
		})
	}, func(ctx context.Context, db *bun.DB) error {
		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			for _, m := range []any{
				(*model.ActivityParticipant)(nil),
				(*model.Participant)(nil),
				(*model.Activity)(nil),
			} {
				if _, err := tx.NewDropTable().Model(m).IfExists().Exec(ctx); err != nil {
					return err
				}
			}
			return nil
		})
	})
}
