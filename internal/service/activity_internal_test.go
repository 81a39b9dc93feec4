package service

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun/dialect"
	"gopkg.in/guregu/null.v3"

	"mergington.dev/backend/internal/model"
)

func TestSnapshotTxOptions(t *testing.T) {
	opts := snapshotTxOptions(dialect.PG)
	require.NotNil(t, opts)
	assert.Equal(t, sql.LevelRepeatableRead, opts.Isolation)
	assert.True(t, opts.ReadOnly)

	assert.Nil(t, snapshotTxOptions(dialect.SQLite))
}

func TestProjectActivities(t *testing.T) {
	activities := []*model.Activity{
		{ID: 1, Name: "Chess Club", MaxParticipants: null.IntFrom(12)},
		{ID: 2, Name: "Gym Class"},
	}
	links := []*model.ActivityParticipantEmail{
		{ActivityID: 1, ParticipantID: 1, Email: "a@x.com"},
		{ActivityID: 1, ParticipantID: 2, Email: "b@x.com"},
	}

	views, err := projectActivities(activities, links)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Chess Club", views[0].Name)
	assert.Equal(t, null.IntFrom(12), views[0].MaxParticipants)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, views[0].Participants)
	assert.NotNil(t, views[1].Participants)
	assert.Empty(t, views[1].Participants)
}
