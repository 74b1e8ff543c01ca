package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/akyairhashvil/chronoguard/internal/models"
)

const userColumns = "id, username, name, role, avatar"

func scanUser(row interface{ Scan(...interface{}) error }) (models.User, error) {
	var u models.User
	var role string
	if err := row.Scan(&u.ID, &u.Username, &u.Name, &role, &u.Avatar); err != nil {
		return models.User{}, err
	}
	u.Role = models.Role(role)
	return u, nil
}

func (d *Database) AddUser(ctx context.Context, user models.User) (int64, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (int64, error) {
		res, err := d.DB.ExecContext(ctx,
			"INSERT INTO users (username, name, role, avatar) VALUES (?, ?, ?, ?)",
			user.Username, user.Name, string(user.Role), user.Avatar)
		if err != nil {
			return 0, wrapErr(EntityUser, "add", user.Username, err)
		}
		return res.LastInsertId()
	})
}

func (d *Database) GetUser(ctx context.Context, id int64) (models.User, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (models.User, error) {
		row := d.DB.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
		u, err := scanUser(row)
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, wrapIDErr(EntityUser, "get", id, ErrNotFound)
		}
		if err != nil {
			return models.User{}, wrapIDErr(EntityUser, "get", id, err)
		}
		return u, nil
	})
}

func (d *Database) GetUserByUsername(ctx context.Context, username string) (models.User, bool, error) {
	type result struct {
		user models.User
		ok   bool
	}
	res, err := withDBContextResult(d, ctx, func(ctx context.Context) (result, error) {
		row := d.DB.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE username = ?", username)
		u, err := scanUser(row)
		if errors.Is(err, sql.ErrNoRows) {
			return result{}, nil
		}
		if err != nil {
			return result{}, wrapErr(EntityUser, "get by username", username, err)
		}
		return result{user: u, ok: true}, nil
	})
	if err != nil {
		return models.User{}, false, err
	}
	return res.user, res.ok, nil
}

func (d *Database) ListUsers(ctx context.Context) ([]models.User, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.User, error) {
		rows, err := d.DB.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY id ASC")
		if err != nil {
			return nil, wrapErr(EntityUser, "list", "", err)
		}
		defer rows.Close()

		var users []models.User
		for rows.Next() {
			u, err := scanUser(rows)
			if err != nil {
				return nil, wrapErr(EntityUser, "list", "", err)
			}
			users = append(users, u)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapErr(EntityUser, "list", "", err)
		}
		return users, nil
	})
}

// UpdateUser rewrites the mutable fields. Renaming does not touch the
// denormalized userName on existing entries; that staleness is accepted.
func (d *Database) UpdateUser(ctx context.Context, user models.User) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx,
			"UPDATE users SET username = ?, name = ?, role = ?, avatar = ? WHERE id = ?",
			user.Username, user.Name, string(user.Role), user.Avatar, user.ID)
		if err != nil {
			return wrapIDErr(EntityUser, "update", user.ID, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return wrapIDErr(EntityUser, "update", user.ID, ErrNotFound)
		}
		return nil
	})
}

// DeleteUser removes a user. actorID is the account performing the
// deletion; a user may never delete their own account, regardless of role.
func (d *Database) DeleteUser(ctx context.Context, id, actorID int64) error {
	if id == actorID {
		return wrapIDErr(EntityUser, "delete", id, ErrSelfDelete)
	}
	return d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
		if err != nil {
			return wrapIDErr(EntityUser, "delete", id, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return wrapIDErr(EntityUser, "delete", id, ErrNotFound)
		}
		return nil
	})
}
