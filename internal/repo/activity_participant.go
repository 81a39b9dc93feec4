package repo

import (
	"context"

	"github.com/uptrace/bun"

	"mergington.dev/backend/internal/model"
)

type ActivityParticipant struct{}

func NewActivityParticipant() *ActivityParticipant {
	return &ActivityParticipant{}
}

func (r *ActivityParticipant) selectWithEmail(db bun.IDB) *bun.SelectQuery {
	return db.NewSelect().
		Model((*model.ActivityParticipant)(nil)).
		ColumnExpr("ap.activity_id, ap.participant_id, p.email").
		Join("JOIN participant AS p ON p.id = ap.participant_id").
		OrderExpr("ap.activity_id ASC, ap.participant_id ASC")
}

// GetLinksWithEmail returns every link of every activity together with the participant email.
func (r *ActivityParticipant) GetLinksWithEmail(ctx context.Context, db bun.IDB) ([]*model.ActivityParticipantEmail, error) {
	links := make([]*model.ActivityParticipantEmail, 0)
	err := r.selectWithEmail(db).Scan(ctx, &links)
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *ActivityParticipant) GetLinksByActivity(ctx context.Context, db bun.IDB, activityID int) ([]*model.ActivityParticipantEmail, error) {
	links := make([]*model.ActivityParticipantEmail, 0)
	err := r.selectWithEmail(db).
		Where("ap.activity_id = ?", activityID).
		Scan(ctx, &links)
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *ActivityParticipant) GetLinksByParticipant(ctx context.Context, db bun.IDB, participantID int) ([]*model.ActivityParticipantEmail, error) {
	links := make([]*model.ActivityParticipantEmail, 0)
	err := r.selectWithEmail(db).
		Where("ap.participant_id = ?", participantID).
		Scan(ctx, &links)
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *ActivityParticipant) CountLinksByActivity(ctx context.Context, db bun.IDB, activityID int) (int, error) {
	return db.NewSelect().
		Model((*model.ActivityParticipant)(nil)).
		Where("activity_id = ?", activityID).
		Count(ctx)
}

func (r *ActivityParticipant) CreateLink(ctx context.Context, db bun.IDB, activityID, participantID int) error {
	_, err := db.NewInsert().
		Model(&model.ActivityParticipant{
			ActivityID:    activityID,
			ParticipantID: participantID,
		}).
		Exec(ctx)
	return err
}

// CreateLinkWithinCapacity inserts the link only while the activity holds fewer
// than limit links. The count and the insert are one statement, so the check
// cannot go stale between them. inserted is false when the activity is full.
func (r *ActivityParticipant) CreateLinkWithinCapacity(ctx context.Context, db bun.IDB, activityID, participantID int, limit int64) (inserted bool, err error) {
	res, err := db.ExecContext(ctx,
		`INSERT INTO activity_participant (activity_id, participant_id)
		SELECT ?, ?
		WHERE (SELECT COUNT(*) FROM activity_participant WHERE activity_id = ?) < ?`,
		activityID, participantID, activityID, limit,
	)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteLink removes the link between the activity and the participant.
// deleted is false when there was no such link.
func (r *ActivityParticipant) DeleteLink(ctx context.Context, db bun.IDB, activityID, participantID int) (deleted bool, err error) {
	res, err := db.NewDelete().
		Model((*model.ActivityParticipant)(nil)).
		Where("activity_id = ?", activityID).
		Where("participant_id = ?", participantID).
		Exec(ctx)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
