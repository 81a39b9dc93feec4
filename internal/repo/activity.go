package repo

import (
	"context"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"

	"mergington.dev/backend/internal/model"
	"mergington.dev/backend/internal/repo/selector"
)

type Activity struct{}

func NewActivity() *Activity {
	return &Activity{}
}

func (r *Activity) GetActivities(ctx context.Context, db bun.IDB) ([]*model.Activity, error) {
	return selector.New[model.Activity](db).SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("id ASC")
	})
}

func (r *Activity) GetActivityByName(ctx context.Context, db bun.IDB, name string) (*model.Activity, error) {
	return selector.New[model.Activity](db).SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("name = ?", name).Limit(1)
	})
}

// GetActivityByNameForUpdate is GetActivityByName holding a row lock on the
// activity until tx ends, so signups to the same activity are serialized.
// SQLite has no row locks; there the single writer connection serializes instead.
func (r *Activity) GetActivityByNameForUpdate(ctx context.Context, tx bun.Tx, name string) (*model.Activity, error) {
	return selector.New[model.Activity](tx).SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		q = q.Where("name = ?", name).Limit(1)
		if tx.Dialect().Name() == dialect.PG {
			q = q.For("UPDATE")
		}
		return q
	})
}

func (r *Activity) HasAnyActivity(ctx context.Context, db bun.IDB) (bool, error) {
	return db.NewSelect().
		Model((*model.Activity)(nil)).
		Exists(ctx)
}

func (r *Activity) CountActivities(ctx context.Context, db bun.IDB) (int, error) {
	return db.NewSelect().
		Model((*model.Activity)(nil)).
		Count(ctx)
}

func (r *Activity) CreateActivities(ctx context.Context, db bun.IDB, activities []*model.Activity) error {
	if len(activities) == 0 {
		return nil
	}
	_, err := db.NewInsert().
		Model(&activities).
		Exec(ctx)
	return err
}
