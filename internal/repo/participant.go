package repo

import (
	"context"

	"github.com/uptrace/bun"

	"mergington.dev/backend/internal/model"
	"mergington.dev/backend/internal/repo/selector"
)

type Participant struct{}

func NewParticipant() *Participant {
	return &Participant{}
}

func (r *Participant) GetParticipantByEmail(ctx context.Context, db bun.IDB, email string) (*model.Participant, error) {
	return selector.New[model.Participant](db).SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("email = ?", email).Limit(1)
	})
}

// GetOrCreateParticipantByEmail returns the participant for email, inserting it
// first when it does not exist yet. created reports whether this call inserted it.
// The unique index on email turns a concurrent insert of the same email into a no-op.
func (r *Participant) GetOrCreateParticipantByEmail(ctx context.Context, db bun.IDB, email string) (participant *model.Participant, created bool, err error) {
	res, err := db.NewInsert().
		Model(&model.Participant{Email: email}).
		On("CONFLICT (email) DO NOTHING").
		Returning("NULL").
		Exec(ctx)
	if err != nil {
		return nil, false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, false, err
	}

	participant, err = r.GetParticipantByEmail(ctx, db, email)
	if err != nil {
		return nil, false, err
	}

	return participant, affected > 0, nil
}

func (r *Participant) CountParticipants(ctx context.Context, db bun.IDB) (int, error) {
	return db.NewSelect().
		Model((*model.Participant)(nil)).
		Count(ctx)
}
