package database

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// ExportOptions controls backup rendering.
type ExportOptions struct {
	EncryptOutput bool
	Passphrase    string
}

// ExportSQL renders the whole store as a literal SQL script: CREATE TABLE
// statements followed by one INSERT per row, in stable id order and exact
// column order. This script is the system's only interchange format;
// prior exports must stay replayable, so the column order and the
// empty-string (not NULL) convention for managerComment are load-bearing.
func (d *Database) ExportSQL(ctx context.Context, opts ExportOptions) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("-- ChronoGuard database export\n\n")
	for _, schema := range []string{schemaUsers, schemaTasks, schemaTimesheets} {
		buf.WriteString(schema)
		buf.WriteString(";\n\n")
	}

	users, err := d.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		fmt.Fprintf(&buf, "INSERT INTO users (id, username, name, role, avatar) VALUES (%d, %s, %s, %s, %s);\n",
			u.ID, sqlQuote(u.Username), sqlQuote(u.Name), sqlQuote(string(u.Role)), sqlQuote(u.Avatar))
	}
	buf.WriteString("\n")

	tasks, err := d.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		fmt.Fprintf(&buf, "INSERT INTO tasks (id, name, estimatedHours, dueDate, status) VALUES (%s, %s, %s, %s, %s);\n",
			sqlQuote(t.ID), sqlQuote(t.Name), sqlFloat(t.EstimatedHours), sqlQuotePtr(t.DueDate), sqlQuote(string(t.Status)))
	}
	buf.WriteString("\n")

	entries, err := d.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		fmt.Fprintf(&buf, "INSERT INTO timesheets (id, userId, userName, date, startTime, endTime, durationHours, taskName, taskCategory, description, managerComment) VALUES (%d, %d, %s, %s, %s, %s, %s, %s, %s, %s, %s);\n",
			e.ID, e.UserID, sqlQuote(e.UserName), sqlQuote(e.Date), sqlQuote(e.StartTime), sqlQuote(e.EndTime),
			strconv.FormatFloat(e.DurationHours, 'g', -1, 64),
			sqlQuote(e.TaskName), sqlQuote(e.TaskCategory), sqlQuote(e.Description), sqlQuote(e.ManagerComment))
	}

	script := buf.Bytes()
	if opts.EncryptOutput && opts.Passphrase != "" {
		return encryptData(script, opts.Passphrase)
	}
	return script, nil
}

// ImportSQL replaces the three domain tables with the contents of an
// exported script. The drop and the replay run inside one transaction:
// a malformed script rolls back completely and prior state is retained.
func (d *Database) ImportSQL(ctx context.Context, payload []byte, passphrase string) error {
	if isEncryptedPayload(payload) {
		plain, err := decryptData(payload, passphrase)
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}
		payload = plain
	}

	statements := splitStatements(string(payload))
	if len(statements) == 0 {
		return fmt.Errorf("import: script contains no statements")
	}

	return d.WithTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{"timesheets", "tasks", "users"} {
			if _, err := tx.Exec("DROP TABLE IF EXISTS " + table); err != nil {
				return fmt.Errorf("import drop %s: %w", table, err)
			}
		}
		for i, stmt := range statements {
			if _, err := tx.Exec(stmt); err != nil {
				return fmt.Errorf("import statement %d: %w", i+1, err)
			}
		}
		return nil
	})
}

// splitStatements breaks a script into executable statements, honoring
// semicolons inside single-quoted strings (descriptions and comments may
// contain them). Line comments outside strings are dropped.
func splitStatements(script string) []string {
	var statements []string
	var current strings.Builder
	inString := false

	for _, line := range strings.Split(script, "\n") {
		if !inString && strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		for i := 0; i < len(line); i++ {
			c := line[i]
			switch {
			case c == '\'':
				inString = !inString
				current.WriteByte(c)
			case c == ';' && !inString:
				if stmt := strings.TrimSpace(current.String()); stmt != "" {
					statements = append(statements, stmt)
				}
				current.Reset()
			default:
				current.WriteByte(c)
			}
		}
		current.WriteByte('\n')
	}
	if stmt := strings.TrimSpace(current.String()); stmt != "" {
		statements = append(statements, stmt)
	}
	return statements
}

func sqlQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func sqlQuotePtr(s *string) string {
	if s == nil {
		return "NULL"
	}
	return sqlQuote(*s)
}

func sqlFloat(f *float64) string {
	if f == nil {
		return "NULL"
	}
	return strconv.FormatFloat(*f, 'g', -1, 64)
}
