package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/akyairhashvil/chronoguard/internal/models"
)

const taskColumns = "id, name, estimatedHours, dueDate, status"

func scanTask(row interface{ Scan(...interface{}) error }) (models.Task, error) {
	var t models.Task
	var status string
	if err := row.Scan(&t.ID, &t.Name, &t.EstimatedHours, &t.DueDate, &status); err != nil {
		return models.Task{}, err
	}
	t.Status = models.TaskStatus(status)
	return t, nil
}

// AddTask inserts a task. The human code in ID is the primary key and is
// immutable from then on.
func (d *Database) AddTask(ctx context.Context, task models.Task) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx,
			"INSERT INTO tasks (id, name, estimatedHours, dueDate, status) VALUES (?, ?, ?, ?, ?)",
			task.ID, task.Name, toNullableArg(task.EstimatedHours), toNullableArg(task.DueDate), string(task.Status))
		if err != nil && strings.Contains(err.Error(), "UNIQUE constraint") {
			return wrapErr(EntityTask, "add", task.ID, ErrDuplicateID)
		}
		return wrapErr(EntityTask, "add", task.ID, err)
	})
}

func (d *Database) GetTask(ctx context.Context, id string) (models.Task, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (models.Task, error) {
		row := d.DB.QueryRowContext(ctx, "SELECT "+taskColumns+" FROM tasks WHERE id = ?", id)
		t, err := scanTask(row)
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, wrapErr(EntityTask, "get", id, ErrNotFound)
		}
		if err != nil {
			return models.Task{}, wrapErr(EntityTask, "get", id, err)
		}
		return t, nil
	})
}

func (d *Database) ListTasks(ctx context.Context) ([]models.Task, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.Task, error) {
		rows, err := d.DB.QueryContext(ctx, "SELECT "+taskColumns+" FROM tasks ORDER BY id ASC")
		if err != nil {
			return nil, wrapErr(EntityTask, "list", "", err)
		}
		defer rows.Close()

		var tasks []models.Task
		for rows.Next() {
			t, err := scanTask(rows)
			if err != nil {
				return nil, wrapErr(EntityTask, "list", "", err)
			}
			tasks = append(tasks, t)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapErr(EntityTask, "list", "", err)
		}
		return tasks, nil
	})
}

// UpdateTask rewrites everything except the immutable ID. Renaming does
// not touch the denormalized taskName on existing entries.
func (d *Database) UpdateTask(ctx context.Context, task models.Task) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx,
			"UPDATE tasks SET name = ?, estimatedHours = ?, dueDate = ?, status = ? WHERE id = ?",
			task.Name, toNullableArg(task.EstimatedHours), toNullableArg(task.DueDate), string(task.Status), task.ID)
		if err != nil {
			return wrapErr(EntityTask, "update", task.ID, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return wrapErr(EntityTask, "update", task.ID, ErrNotFound)
		}
		return nil
	})
}

func (d *Database) DeleteTask(ctx context.Context, id string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
		if err != nil {
			return wrapErr(EntityTask, "delete", id, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return wrapErr(EntityTask, "delete", id, ErrNotFound)
		}
		return nil
	})
}
