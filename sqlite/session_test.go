package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/awalczyk/lectio"
	"github.com/awalczyk/lectio/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_CreateImportSession(t *testing.T) {
	t.Parallel()

	t.Run("assigns an ID and persists every field", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)
		ctx := context.Background()

		started := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)
		session := &lectio.ImportSession{
			Translation: "kjv",
			Source:      "/tmp/kjv.xml",
			VerseCount:  31102,
			BookCount:   66,
			SourceHash:  "9e107d9d372bb682",
			StartedAt:   started,
			FinishedAt:  started.Add(3 * time.Second),
		}

		require.NoError(t, svc.CreateImportSession(ctx, session))
		assert.NotEmpty(t, session.ID, "ID should be generated")

		found, err := svc.FindImportSessions(ctx, "kjv")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, session.ID, found[0].ID)
		assert.Equal(t, "/tmp/kjv.xml", found[0].Source)
		assert.Equal(t, 31102, found[0].VerseCount)
		assert.Equal(t, 66, found[0].BookCount)
		assert.Equal(t, "9e107d9d372bb682", found[0].SourceHash)
		assert.True(t, found[0].StartedAt.Equal(started))
		assert.True(t, found[0].FinishedAt.Equal(started.Add(3*time.Second)))
	})

	t.Run("returns EINVALID without a translation", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)

		err := svc.CreateImportSession(context.Background(), &lectio.ImportSession{})
		assert.Equal(t, lectio.EINVALID, lectio.ErrorCode(err))
	})
}

func TestSessionService_FindImportSessions(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewSessionService(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	for i, translation := range []string{"kjv", "web", "kjv"} {
		session := &lectio.ImportSession{
			Translation: translation,
			StartedAt:   base.Add(time.Duration(i) * time.Hour),
			FinishedAt:  base.Add(time.Duration(i)*time.Hour + time.Minute),
		}
		require.NoError(t, svc.CreateImportSession(ctx, session))
	}

	t.Run("filters by translation, most recent first", func(t *testing.T) {
		t.Parallel()

		found, err := svc.FindImportSessions(ctx, "kjv")
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.True(t, found[0].StartedAt.After(found[1].StartedAt))
	})

	t.Run("empty translation returns all sessions", func(t *testing.T) {
		t.Parallel()

		found, err := svc.FindImportSessions(ctx, "")
		require.NoError(t, err)
		assert.Len(t, found, 3)
	})

	t.Run("unknown translation returns none", func(t *testing.T) {
		t.Parallel()

		found, err := svc.FindImportSessions(ctx, "vulgate")
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}
