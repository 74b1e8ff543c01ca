package database

import (
	"context"
	"fmt"

	"github.com/akyairhashvil/chronoguard/internal/models"
	"github.com/akyairhashvil/chronoguard/internal/util"
)

// DefaultPassword is the shared demo password set for seeded accounts.
const DefaultPassword = "Chrono123"

// Seed populates a fresh store with a manager, two employees, and a few
// tasks so the dashboard is usable out of the box. A store that already
// has users is left alone.
func (d *Database) Seed(ctx context.Context) error {
	users, err := d.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	seedUsers := []models.User{
		{Username: "grace", Name: "Grace Vale", Role: models.RoleManager},
		{Username: "arun", Name: "Arun Mehta", Role: models.RoleEmployee},
		{Username: "ines", Name: "Ines Falk", Role: models.RoleEmployee},
	}
	hash, err := util.HashPassword(DefaultPassword)
	if err != nil {
		return fmt.Errorf("seed password hash: %w", err)
	}
	for _, u := range seedUsers {
		if _, err := d.AddUser(ctx, u); err != nil {
			return err
		}
		if err := d.SetSetting(ctx, PasswordKey(u.Username), hash); err != nil {
			return err
		}
	}

	seedTasks := []models.Task{
		{ID: "PROJ-101", Name: "PROJ-101: Login page rework", EstimatedHours: util.Ptr(24.0), DueDate: util.Ptr("2026-09-30"), Status: models.TaskStatusInProgress},
		{ID: "PROJ-102", Name: "PROJ-102: Quarterly design review", Status: models.TaskStatusToDo},
		{ID: "OPS-7", Name: "OPS-7: Backup verification", EstimatedHours: util.Ptr(8.0), Status: models.TaskStatusToDo},
	}
	for _, t := range seedTasks {
		if err := d.AddTask(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

// PasswordKey is the settings key holding a user's bcrypt password hash.
func PasswordKey(username string) string {
	return "password:" + username
}
