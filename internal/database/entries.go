package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/akyairhashvil/chronoguard/internal/models"
)

const entryColumns = "id, userId, userName, date, startTime, endTime, durationHours, taskName, taskCategory, description, managerComment"

func scanEntry(row interface{ Scan(...interface{}) error }) (models.Entry, error) {
	var e models.Entry
	if err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.UserName,
		&e.Date,
		&e.StartTime,
		&e.EndTime,
		&e.DurationHours,
		&e.TaskName,
		&e.TaskCategory,
		&e.Description,
		&e.ManagerComment,
	); err != nil {
		return models.Entry{}, err
	}
	return e, nil
}

// AddEntry persists a validated entry and returns its id. DurationHours
// is stored as given; deriving it from the interval is the service
// layer's job so the derivation rule lives in one place.
func (d *Database) AddEntry(ctx context.Context, entry models.Entry) (int64, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (int64, error) {
		res, err := d.DB.ExecContext(ctx, `
			INSERT INTO timesheets
			(userId, userName, date, startTime, endTime, durationHours, taskName, taskCategory, description, managerComment)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			entry.UserID, entry.UserName, entry.Date, entry.StartTime, entry.EndTime,
			entry.DurationHours, entry.TaskName, entry.TaskCategory, entry.Description, entry.ManagerComment)
		if err != nil {
			return 0, wrapErr(EntityEntry, "add", "", err)
		}
		return res.LastInsertId()
	})
}

func (d *Database) GetEntry(ctx context.Context, id int64) (models.Entry, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (models.Entry, error) {
		row := d.DB.QueryRowContext(ctx, "SELECT "+entryColumns+" FROM timesheets WHERE id = ?", id)
		e, err := scanEntry(row)
		if errors.Is(err, sql.ErrNoRows) {
			return models.Entry{}, wrapIDErr(EntityEntry, "get", id, ErrNotFound)
		}
		if err != nil {
			return models.Entry{}, wrapIDErr(EntityEntry, "get", id, err)
		}
		return e, nil
	})
}

// ListEntries returns the complete entry set ordered chronologically.
// Overtime derivation depends on seeing all entries, so callers filter in
// memory rather than at the query level when a view needs flags.
func (d *Database) ListEntries(ctx context.Context) ([]models.Entry, error) {
	return d.QueryEntries(ctx, NewEntryQuery())
}

// QueryEntries runs a built entry query.
func (d *Database) QueryEntries(ctx context.Context, q *EntryQuery) ([]models.Entry, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.Entry, error) {
		query, args := q.Build()
		rows, err := d.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, wrapErr(EntityEntry, "query", "", err)
		}
		defer rows.Close()

		var entries []models.Entry
		for rows.Next() {
			e, err := scanEntry(rows)
			if err != nil {
				return nil, wrapErr(EntityEntry, "query", "", err)
			}
			entries = append(entries, e)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapErr(EntityEntry, "query", "", err)
		}
		return entries, nil
	})
}

func (d *Database) UpdateEntry(ctx context.Context, entry models.Entry) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx, `
			UPDATE timesheets
			SET userId = ?, userName = ?, date = ?, startTime = ?, endTime = ?,
			    durationHours = ?, taskName = ?, taskCategory = ?, description = ?, managerComment = ?
			WHERE id = ?`,
			entry.UserID, entry.UserName, entry.Date, entry.StartTime, entry.EndTime,
			entry.DurationHours, entry.TaskName, entry.TaskCategory, entry.Description, entry.ManagerComment,
			entry.ID)
		if err != nil {
			return wrapIDErr(EntityEntry, "update", entry.ID, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return wrapIDErr(EntityEntry, "update", entry.ID, ErrNotFound)
		}
		return nil
	})
}

func (d *Database) DeleteEntry(ctx context.Context, id int64) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx, "DELETE FROM timesheets WHERE id = ?", id)
		if err != nil {
			return wrapIDErr(EntityEntry, "delete", id, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return wrapIDErr(EntityEntry, "delete", id, ErrNotFound)
		}
		return nil
	})
}

// SetManagerComment annotates an entry. Stored as empty string, never
// NULL, to stay compatible with the export format.
func (d *Database) SetManagerComment(ctx context.Context, id int64, comment string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx, "UPDATE timesheets SET managerComment = ? WHERE id = ?", comment, id)
		if err != nil {
			return wrapIDErr(EntityEntry, "comment", id, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return wrapIDErr(EntityEntry, "comment", id, ErrNotFound)
		}
		return nil
	})
}
