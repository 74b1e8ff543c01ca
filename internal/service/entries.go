package service

import (
	"context"
	"errors"

	"github.com/akyairhashvil/chronoguard/internal/database"
	"github.com/akyairhashvil/chronoguard/internal/models"
	"github.com/akyairhashvil/chronoguard/internal/timesheet"
)

// SaveEntry validates and writes a timesheet entry for ownerID. A zero
// entryID inserts; otherwise the existing entry is replaced in place.
// Employees may only write their own entries. When the save would exceed
// a task budget and confirmed is false, the write is withheld and a
// ConfirmationRequired error carries the warning back to the caller.
func (s *Service) SaveEntry(ctx context.Context, actor models.User, ownerID, entryID int64, in timesheet.EntryInput, confirmed bool) (int64, error) {
	if actor.ID != ownerID && !actor.IsManager() {
		return 0, ErrPermission
	}
	var existing models.Entry
	if entryID != 0 {
		var err error
		existing, err = s.repo.GetEntry(ctx, entryID)
		if err != nil {
			return 0, err
		}
		// The stored row, not the caller, says whose entry is being
		// edited. Only a manager may touch or reassign someone else's.
		if existing.UserID != ownerID && !actor.IsManager() {
			return 0, ErrPermission
		}
	}
	if err := in.Validate(); err != nil {
		return 0, err
	}

	entries, err := s.repo.ListEntries(ctx)
	if err != nil {
		return 0, err
	}
	tasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return 0, err
	}

	result := timesheet.Check(in.Candidate(entryID, ownerID), entries, tasks)
	if !result.OK() {
		return 0, errors.New(result.Rejection)
	}
	if result.Warning != nil && !confirmed {
		return 0, &ConfirmationRequired{Warning: *result.Warning}
	}

	owner, err := s.repo.GetUser(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	entry := models.Entry{
		ID:            entryID,
		UserID:        ownerID,
		UserName:      owner.Name,
		Date:          in.Date,
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
		DurationHours: timesheet.DurationHours(in.StartTime, in.EndTime),
		TaskName:      in.TaskName,
		TaskCategory:  in.TaskCategory,
		Description:   in.Description,
	}

	if entryID == 0 {
		return s.repo.AddEntry(ctx, entry)
	}
	// A rewrite keeps the manager's comment on the entry.
	entry.ManagerComment = existing.ManagerComment
	return entryID, s.repo.UpdateEntry(ctx, entry)
}

// DeleteEntry removes an entry. Owners may delete their own; managers
// may delete anyone's.
func (s *Service) DeleteEntry(ctx context.Context, actor models.User, entryID int64) error {
	entry, err := s.repo.GetEntry(ctx, entryID)
	if err != nil {
		return err
	}
	if entry.UserID != actor.ID && !actor.IsManager() {
		return ErrPermission
	}
	return s.repo.DeleteEntry(ctx, entryID)
}

// CommentEntry sets the manager comment on an entry. Managers only.
func (s *Service) CommentEntry(ctx context.Context, actor models.User, entryID int64, comment string) error {
	if !actor.IsManager() {
		return ErrPermission
	}
	return s.repo.SetManagerComment(ctx, entryID, comment)
}

// Tasks lists every task. Reading tasks is not role-gated.
func (s *Service) Tasks(ctx context.Context) ([]models.Task, error) {
	return s.repo.ListTasks(ctx)
}

// Users lists accounts. Managers only; employees see just themselves.
func (s *Service) Users(ctx context.Context, actor models.User) ([]models.User, error) {
	if !actor.IsManager() {
		return []models.User{actor}, nil
	}
	return s.repo.ListUsers(ctx)
}

// VisibleEntries returns every entry the viewer may see, already
// restricted by role.
func (s *Service) VisibleEntries(ctx context.Context, viewer models.User) ([]models.Entry, error) {
	if viewer.IsManager() {
		return s.repo.ListEntries(ctx)
	}
	return s.repo.QueryEntries(ctx, database.NewEntryQuery().WhereUser(viewer.ID))
}

// AllEntries returns the complete entry set regardless of viewer. Budget
// flags and notifications derive from full history, so views that show a
// restricted slice still need everything underneath.
func (s *Service) AllEntries(ctx context.Context) ([]models.Entry, error) {
	return s.repo.ListEntries(ctx)
}

// WeekHours sums the hours a user logged in the week containing date.
func (s *Service) WeekHours(ctx context.Context, userID int64, date string) (float64, error) {
	start, end, err := timesheet.WeekWindow(date)
	if err != nil {
		return 0, err
	}
	entries, err := s.repo.QueryEntries(ctx,
		database.NewEntryQuery().WhereUser(userID).WhereDateRange(start, end))
	if err != nil {
		return 0, err
	}
	return timesheet.WeeklyTotal(entries, date), nil
}
