package database

import (
	"context"

	"github.com/akyairhashvil/chronoguard/internal/models"
)

// UserRepository defines user-related store operations.
type UserRepository interface {
	AddUser(ctx context.Context, user models.User) (int64, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, bool, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) error
	DeleteUser(ctx context.Context, id, actorID int64) error
}

// TaskRepository defines task-related store operations.
type TaskRepository interface {
	AddTask(ctx context.Context, task models.Task) error
	GetTask(ctx context.Context, id string) (models.Task, error)
	ListTasks(ctx context.Context) ([]models.Task, error)
	UpdateTask(ctx context.Context, task models.Task) error
	DeleteTask(ctx context.Context, id string) error
}

// EntryRepository defines timesheet-entry store operations.
type EntryRepository interface {
	AddEntry(ctx context.Context, entry models.Entry) (int64, error)
	GetEntry(ctx context.Context, id int64) (models.Entry, error)
	ListEntries(ctx context.Context) ([]models.Entry, error)
	QueryEntries(ctx context.Context, q *EntryQuery) ([]models.Entry, error)
	UpdateEntry(ctx context.Context, entry models.Entry) error
	DeleteEntry(ctx context.Context, id int64) error
	SetManagerComment(ctx context.Context, id int64, comment string) error
}

// SettingsRepository defines key-value settings operations.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// BackupRepository defines the SQL-text backup surface.
type BackupRepository interface {
	ExportSQL(ctx context.Context, opts ExportOptions) ([]byte, error)
}

// Repository combines all repository interfaces.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/akyairhashvil/chronoguard/internal/database Repository
type Repository interface {
	UserRepository
	TaskRepository
	EntryRepository
	SettingsRepository
	BackupRepository
}

var _ Repository = (*Database)(nil)
