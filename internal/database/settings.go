package database

import (
	"context"
	"database/sql"
	"errors"
)

func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	type setting struct {
		value string
		ok    bool
	}
	res, err := withDBContextResult(d, ctx, func(ctx context.Context) (setting, error) {
		var value *string
		err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
		if errors.Is(err, sql.ErrNoRows) {
			return setting{}, nil
		}
		if err != nil || value == nil {
			return setting{}, err
		}
		return setting{value: *value, ok: true}, nil
	})
	if err != nil {
		return "", false
	}
	return res.value, res.ok
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx,
			"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
			key, value)
		return wrapErr(EntitySetting, "set", key, err)
	})
}
