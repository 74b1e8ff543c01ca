package tui

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/akyairhashvil/chronoguard/internal/database"
	"github.com/akyairhashvil/chronoguard/internal/models"
	"github.com/akyairhashvil/chronoguard/internal/timesheet"
)

func setupTUIDB(t *testing.T) (*database.Database, context.Context) {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()
	db, err := database.Open(ctx, filepath.Join(dir, "tui.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	if err := db.Seed(ctx); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	return db, ctx
}

func userByName(t *testing.T, db *database.Database, ctx context.Context, username string) models.User {
	t.Helper()
	user, ok, err := db.GetUserByUsername(ctx, username)
	if err != nil || !ok {
		t.Fatalf("GetUserByUsername(%q) = (%v, %v)", username, ok, err)
	}
	return user
}

func seedEntry(t *testing.T, db *database.Database, ctx context.Context, username, date, start, end, taskName, category string) int64 {
	t.Helper()
	user := userByName(t, db, ctx, username)
	id, err := db.AddEntry(ctx, models.Entry{
		UserID:        user.ID,
		UserName:      user.Name,
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		DurationHours: timesheet.DurationHours(start, end),
		TaskName:      taskName,
		TaskCategory:  category,
		Description:   "test entry",
	})
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	return id
}
