package database

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/akyairhashvil/chronoguard/internal/models"
	"github.com/akyairhashvil/chronoguard/internal/util"
)

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

// TestDataBuilder assembles a populated store for tests.
type TestDataBuilder struct {
	t       *testing.T
	ctx     context.Context
	db      *Database
	userIDs []int64
	taskIDs []string
}

func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	return &TestDataBuilder{t: t, ctx: ctx, db: db}
}

func (b *TestDataBuilder) WithUser(username string, role models.Role) *TestDataBuilder {
	b.t.Helper()
	id, err := b.db.AddUser(b.ctx, models.User{Username: username, Name: username, Role: role})
	if err != nil {
		b.t.Fatalf("AddUser failed: %v", err)
	}
	b.userIDs = append(b.userIDs, id)
	return b
}

func (b *TestDataBuilder) WithTask(id string, estimatedHours *float64) *TestDataBuilder {
	b.t.Helper()
	task := models.Task{
		ID:             id,
		Name:           fmt.Sprintf("%s: task", id),
		EstimatedHours: estimatedHours,
		Status:         models.TaskStatusToDo,
	}
	if err := b.db.AddTask(b.ctx, task); err != nil {
		b.t.Fatalf("AddTask failed: %v", err)
	}
	b.taskIDs = append(b.taskIDs, id)
	return b
}

func (b *TestDataBuilder) WithEntry(userIdx int, date, start, end string) *TestDataBuilder {
	b.t.Helper()
	if len(b.userIDs) == 0 {
		b.WithUser("worker", models.RoleEmployee)
	}
	if len(b.taskIDs) == 0 {
		b.WithTask("GEN-1", util.Ptr(40.0))
	}
	userID := b.userIDs[util.Clamp(userIdx, 0, len(b.userIDs)-1)]
	user, err := b.db.GetUser(b.ctx, userID)
	if err != nil {
		b.t.Fatalf("GetUser failed: %v", err)
	}
	task, err := b.db.GetTask(b.ctx, b.taskIDs[0])
	if err != nil {
		b.t.Fatalf("GetTask failed: %v", err)
	}
	entry := models.Entry{
		UserID:        userID,
		UserName:      user.Name,
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		DurationHours: float64(clockMinutes(end)-clockMinutes(start)) / 60,
		TaskName:      task.Name,
		TaskCategory:  "Development",
		Description:   "builder entry",
	}
	if _, err := b.db.AddEntry(b.ctx, entry); err != nil {
		b.t.Fatalf("AddEntry failed: %v", err)
	}
	return b
}

func (b *TestDataBuilder) Build() *Database {
	return b.db
}

func (b *TestDataBuilder) UserID(idx int) int64 {
	if idx < 0 || idx >= len(b.userIDs) {
		return 0
	}
	return b.userIDs[idx]
}

func clockMinutes(clock string) int {
	var h, m int
	fmt.Sscanf(clock, "%d:%d", &h, &m)
	return h*60 + m
}
