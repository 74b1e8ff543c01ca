// Package service applies permission checks and the save-time validation
// rules on top of the raw store. The TUI talks to this layer, never to
// the database package directly.
package service

import (
	"context"
	"errors"

	"github.com/akyairhashvil/chronoguard/internal/database"
	"github.com/akyairhashvil/chronoguard/internal/timesheet"
)

var (
	// ErrPermission is returned when the acting user's role does not
	// allow the operation.
	ErrPermission = errors.New("permission denied")

	// ErrBadCredentials is returned on a failed login. The message is
	// identical for unknown usernames and wrong passwords.
	ErrBadCredentials = errors.New("invalid username or password")
)

// ConfirmationRequired is returned when a save would push a task past its
// estimated hours. The caller shows the warning and retries with
// confirmed set once the user agrees.
type ConfirmationRequired struct {
	Warning timesheet.BudgetWarning
}

func (e *ConfirmationRequired) Error() string {
	return e.Warning.String()
}

// Service wires the validation engine to the store.
type Service struct {
	repo database.Repository
}

func New(repo database.Repository) *Service {
	return &Service{repo: repo}
}

// Setting reads a raw settings value, such as the stored theme name.
func (s *Service) Setting(ctx context.Context, key string) (string, bool) {
	return s.repo.GetSetting(ctx, key)
}

// ExportSQL renders the store as an SQL-text backup.
func (s *Service) ExportSQL(ctx context.Context, opts database.ExportOptions) ([]byte, error) {
	return s.repo.ExportSQL(ctx, opts)
}
