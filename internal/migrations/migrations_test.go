package migrations_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergington.dev/backend/internal/migrations"
	"mergington.dev/backend/internal/model"
	"mergington.dev/backend/internal/pkg/testentry"
)

func TestMigrateIsRepeatable(t *testing.T) {
	db := testentry.DB(t)
	ctx := context.Background()

	require.NoError(t, migrations.Migrate(ctx, db))

	for _, m := range []any{
		(*model.Activity)(nil),
		(*model.Participant)(nil),
		(*model.ActivityParticipant)(nil),
	} {
		count, err := db.NewSelect().Model(m).Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	}
}
