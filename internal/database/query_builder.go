package database

import (
	"fmt"
	"strings"
)

// EntryQuery composes the WHERE clause for timesheet listings. Results
// always come back in chronological order; view-level reordering happens
// in memory where the budget flags are derived.
type EntryQuery struct {
	filters []string
	args    []interface{}
}

func NewEntryQuery() *EntryQuery {
	return &EntryQuery{}
}

func (q *EntryQuery) Where(filter string, args ...interface{}) *EntryQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

func (q *EntryQuery) WhereUser(userID int64) *EntryQuery {
	return q.Where("userId = ?", userID)
}

func (q *EntryQuery) WhereDateRange(start, end string) *EntryQuery {
	return q.Where("date >= ? AND date <= ?", start, end)
}

func (q *EntryQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM timesheets", entryColumns)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	query += " ORDER BY date ASC, startTime ASC, id ASC"
	return query, q.args
}
