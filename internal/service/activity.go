package service

import (
	"context"
	"database/sql"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
	"go.opentelemetry.io/otel/attribute"

	"mergington.dev/backend/internal/model"
	"mergington.dev/backend/internal/repo"
)

type Activity struct {
	DB                      *bun.DB
	ActivityRepo            *repo.Activity
	ActivityParticipantRepo *repo.ActivityParticipant
}

func NewActivity(db *bun.DB, activityRepo *repo.Activity, activityParticipantRepo *repo.ActivityParticipant) *Activity {
	return &Activity{
		DB:                      db,
		ActivityRepo:            activityRepo,
		ActivityParticipantRepo: activityParticipantRepo,
	}
}

// ListActivities returns every activity ordered by id, each with the emails of its participants.
func (s *Activity) ListActivities(ctx context.Context) ([]*model.ActivityView, error) {
	ctx, span := tracer.Start(ctx, "service.Activity.ListActivities")
	defer span.End()

	var (
		activities []*model.Activity
		links      []*model.ActivityParticipantEmail
	)
	err := s.DB.RunInTx(ctx, snapshotTxOptions(s.DB.Dialect().Name()), func(ctx context.Context, tx bun.Tx) error {
		var err error
		activities, err = s.ActivityRepo.GetActivities(ctx, tx)
		if err != nil {
			return errors.Wrap(err, "failed to get activities")
		}

		links, err = s.ActivityParticipantRepo.GetLinksWithEmail(ctx, tx)
		if err != nil {
			return errors.Wrap(err, "failed to get activity participants")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("activities", len(activities)),
		attribute.Int("links", len(links)),
	)

	return projectActivities(activities, links)
}

// snapshotTxOptions makes both reads of a listing see one snapshot. PostgreSQL
// needs repeatable read for that. A SQLite transaction already reads a single
// snapshot on its one connection, and the driver may reject read-only options.
func snapshotTxOptions(name dialect.Name) *sql.TxOptions {
	if name != dialect.PG {
		return nil
	}
	return &sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	}
}

func projectActivities(activities []*model.Activity, links []*model.ActivityParticipantEmail) ([]*model.ActivityView, error) {
	linksByActivity := lo.GroupBy(links, func(link *model.ActivityParticipantEmail) int {
		return link.ActivityID
	})

	views := make([]*model.ActivityView, 0, len(activities))
	for _, activity := range activities {
		var view model.ActivityView
		if err := copier.Copy(&view, activity); err != nil {
			return nil, errors.Wrap(err, "failed to project activity")
		}
		view.Participants = lo.Map(linksByActivity[activity.ID], func(link *model.ActivityParticipantEmail, _ int) string {
			return link.Email
		})
		views = append(views, &view)
	}

	return views, nil
}
