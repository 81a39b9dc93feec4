package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"

	"mergington.dev/backend/internal/model"
	"mergington.dev/backend/internal/pkg/apperr"
	"mergington.dev/backend/internal/pkg/testentry"
	"mergington.dev/backend/internal/repo"
)

func createActivity(t *testing.T, db bun.IDB, name string, capacity null.Int) *model.Activity {
	t.Helper()
	ctx := context.Background()
	activityRepo := repo.NewActivity()

	require.NoError(t, activityRepo.CreateActivities(ctx, db, []*model.Activity{
		{Name: name, MaxParticipants: capacity},
	}))
	activity, err := activityRepo.GetActivityByName(ctx, db, name)
	require.NoError(t, err)
	return activity
}

func createParticipant(t *testing.T, db bun.IDB, email string) *model.Participant {
	t.Helper()
	participant, _, err := repo.NewParticipant().GetOrCreateParticipantByEmail(context.Background(), db, email)
	require.NoError(t, err)
	return participant
}

func TestActivityRepo(t *testing.T) {
	db := testentry.DB(t)
	ctx := context.Background()
	r := repo.NewActivity()

	exists, err := r.HasAnyActivity(ctx, db)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = r.GetActivityByName(ctx, db, "Chess Club")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	require.NoError(t, r.CreateActivities(ctx, db, []*model.Activity{
		{Name: "Chess Club", Schedule: null.StringFrom("Fridays"), MaxParticipants: null.IntFrom(12)},
		{Name: "Open Mic"},
	}))

	exists, err = r.HasAnyActivity(ctx, db)
	require.NoError(t, err)
	assert.True(t, exists)

	activities, err := r.GetActivities(ctx, db)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, "Chess Club", activities[0].Name)
	assert.Equal(t, null.IntFrom(12), activities[0].MaxParticipants)
	assert.Equal(t, "Open Mic", activities[1].Name)
	assert.False(t, activities[1].MaxParticipants.Valid)
	assert.False(t, activities[1].Description.Valid)

	activity, err := r.GetActivityByName(ctx, db, "Open Mic")
	require.NoError(t, err)
	assert.Equal(t, activities[1].ID, activity.ID)

	// names are unique
	err = r.CreateActivities(ctx, db, []*model.Activity{{Name: "Open Mic"}})
	assert.Error(t, err)
}

func TestActivityRepoForUpdateInTx(t *testing.T) {
	db := testentry.DB(t)
	ctx := context.Background()
	created := createActivity(t, db, "Chess Club", null.IntFrom(12))

	err := db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		activity, err := repo.NewActivity().GetActivityByNameForUpdate(ctx, tx, "Chess Club")
		if err != nil {
			return err
		}
		assert.Equal(t, created.ID, activity.ID)
		return nil
	})
	require.NoError(t, err)
}

func TestParticipantGetOrCreate(t *testing.T) {
	db := testentry.DB(t)
	ctx := context.Background()
	r := repo.NewParticipant()

	_, err := r.GetParticipantByEmail(ctx, db, "a@x.com")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	first, created, err := r.GetOrCreateParticipantByEmail(ctx, db, "a@x.com")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "a@x.com", first.Email)

	second, created, err := r.GetOrCreateParticipantByEmail(ctx, db, "a@x.com")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	count, err := r.CountParticipants(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestActivityParticipantLinks(t *testing.T) {
	db := testentry.DB(t)
	ctx := context.Background()
	r := repo.NewActivityParticipant()

	chess := createActivity(t, db, "Chess Club", null.IntFrom(12))
	gym := createActivity(t, db, "Gym Class", null.Int{})
	alice := createParticipant(t, db, "alice@mergington.edu")
	bob := createParticipant(t, db, "bob@mergington.edu")

	require.NoError(t, r.CreateLink(ctx, db, chess.ID, alice.ID))
	require.NoError(t, r.CreateLink(ctx, db, chess.ID, bob.ID))
	require.NoError(t, r.CreateLink(ctx, db, gym.ID, alice.ID))

	// one link per pair
	assert.Error(t, r.CreateLink(ctx, db, chess.ID, alice.ID))

	byActivity, err := r.GetLinksByActivity(ctx, db, chess.ID)
	require.NoError(t, err)
	require.Len(t, byActivity, 2)
	assert.Equal(t, "alice@mergington.edu", byActivity[0].Email)
	assert.Equal(t, "bob@mergington.edu", byActivity[1].Email)

	byParticipant, err := r.GetLinksByParticipant(ctx, db, alice.ID)
	require.NoError(t, err)
	require.Len(t, byParticipant, 2)
	assert.Equal(t, chess.ID, byParticipant[0].ActivityID)
	assert.Equal(t, gym.ID, byParticipant[1].ActivityID)

	all, err := r.GetLinksWithEmail(ctx, db)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	deleted, err := r.DeleteLink(ctx, db, chess.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = r.DeleteLink(ctx, db, chess.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	count, err := r.CountLinksByActivity(ctx, db, chess.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// the participant row survives unregistering
	_, err = repo.NewParticipant().GetParticipantByEmail(ctx, db, "bob@mergington.edu")
	assert.NoError(t, err)
}

func TestActivityParticipantReferences(t *testing.T) {
	db := testentry.DB(t)
	ctx := context.Background()

	alice := createParticipant(t, db, "alice@mergington.edu")
	err := repo.NewActivityParticipant().CreateLink(ctx, db, 4242, alice.ID)
	assert.Error(t, err)
}

func TestCreateLinkWithinCapacity(t *testing.T) {
	db := testentry.DB(t)
	ctx := context.Background()
	r := repo.NewActivityParticipant()

	chess := createActivity(t, db, "Chess Club", null.IntFrom(1))
	alice := createParticipant(t, db, "alice@mergington.edu")
	bob := createParticipant(t, db, "bob@mergington.edu")

	inserted, err := r.CreateLinkWithinCapacity(ctx, db, chess.ID, alice.ID, 1)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = r.CreateLinkWithinCapacity(ctx, db, chess.ID, bob.ID, 1)
	require.NoError(t, err)
	assert.False(t, inserted)

	count, err := r.CountLinksByActivity(ctx, db, chess.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCreateLinkWithinCapacityInTx(t *testing.T) {
	db := testentry.DB(t)
	ctx := context.Background()
	r := repo.NewActivityParticipant()

	chess := createActivity(t, db, "Chess Club", null.IntFrom(1))
	alice := createParticipant(t, db, "alice@mergington.edu")
	require.NoError(t, r.CreateLink(ctx, db, chess.ID, alice.ID))

	err := db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		bob := createParticipant(t, tx, "bob@mergington.edu")
		inserted, err := r.CreateLinkWithinCapacity(ctx, tx, chess.ID, bob.ID, 1)
		if err != nil {
			return err
		}
		assert.False(t, inserted)

		count, err := r.CountLinksByActivity(ctx, tx, chess.ID)
		if err != nil {
			return err
		}
		assert.Equal(t, 1, count)
		return nil
	})
	require.NoError(t, err)

	count, err := r.CountLinksByActivity(ctx, db, chess.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
