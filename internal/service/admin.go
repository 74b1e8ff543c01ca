package service

import (
	"context"
	"fmt"

	"github.com/akyairhashvil/chronoguard/internal/database"
	"github.com/akyairhashvil/chronoguard/internal/models"
	"github.com/akyairhashvil/chronoguard/internal/util"
)

// CreateTask adds a task. Managers only. A missing status defaults to
// todo.
func (s *Service) CreateTask(ctx context.Context, actor models.User, task models.Task) error {
	if !actor.IsManager() {
		return ErrPermission
	}
	if task.ID == "" || task.Name == "" {
		return fmt.Errorf("task id and name are required")
	}
	if task.Status == "" {
		task.Status = models.TaskStatusToDo
	}
	return s.repo.AddTask(ctx, task)
}

// UpdateTask rewrites a task's mutable fields. Managers only. The id
// itself never changes.
func (s *Service) UpdateTask(ctx context.Context, actor models.User, task models.Task) error {
	if !actor.IsManager() {
		return ErrPermission
	}
	return s.repo.UpdateTask(ctx, task)
}

// DeleteTask removes a task. Managers only. Entries that reference the
// task by name are kept.
func (s *Service) DeleteTask(ctx context.Context, actor models.User, id string) error {
	if !actor.IsManager() {
		return ErrPermission
	}
	return s.repo.DeleteTask(ctx, id)
}

// CreateUser adds an account with an initial password. Managers only.
func (s *Service) CreateUser(ctx context.Context, actor models.User, user models.User, password string) (int64, error) {
	if !actor.IsManager() {
		return 0, ErrPermission
	}
	if err := util.ValidatePassword(password); err != nil {
		return 0, err
	}
	hash, err := util.HashPassword(password)
	if err != nil {
		return 0, err
	}
	id, err := s.repo.AddUser(ctx, user)
	if err != nil {
		return 0, err
	}
	return id, s.repo.SetSetting(ctx, database.PasswordKey(user.Username), hash)
}

// DeleteUser removes an account. Managers only; the store refuses a
// manager deleting their own account.
func (s *Service) DeleteUser(ctx context.Context, actor models.User, id int64) error {
	if !actor.IsManager() {
		return ErrPermission
	}
	return s.repo.DeleteUser(ctx, id, actor.ID)
}

// ChangePassword sets a new password for username. Users may change
// their own; managers may change anyone's.
func (s *Service) ChangePassword(ctx context.Context, actor models.User, username, password string) error {
	if actor.Username != username && !actor.IsManager() {
		return ErrPermission
	}
	if err := util.ValidatePassword(password); err != nil {
		return err
	}
	hash, err := util.HashPassword(password)
	if err != nil {
		return err
	}
	return s.repo.SetSetting(ctx, database.PasswordKey(username), hash)
}

// Authenticate resolves a username and checks the password against the
// stored hash.
func (s *Service) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	user, ok, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, ErrBadCredentials
	}
	hash, ok := s.repo.GetSetting(ctx, database.PasswordKey(username))
	if !ok || !util.CheckPassword(hash, password) {
		return models.User{}, ErrBadCredentials
	}
	return user, nil
}
