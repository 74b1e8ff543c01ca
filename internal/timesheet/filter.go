package timesheet

import (
	"strings"

	"github.com/akyairhashvil/chronoguard/internal/models"
	"github.com/akyairhashvil/chronoguard/internal/util"
)

// RangeMode selects how the date window is derived.
type RangeMode int

const (
	RangeAll RangeMode = iota
	RangeWeek
	RangeMonth
	RangeCustom
)

// SortOrder of the filtered result.
type SortOrder int

const (
	SortDateAscending  SortOrder = iota // list views
	SortDateDescending                  // recent-activity views
)

// Filter is one stateless view selection. Cursor drives the WEEK and
// MONTH windows; Start/End drive CUSTOM. A custom range with start after
// end selects nothing rather than guessing the intent.
type Filter struct {
	Mode     RangeMode
	Cursor   string
	Start    string
	End      string
	UserID   int64 // 0 means any user
	Category string
	TaskName string
	Search   string
	Order    SortOrder
}

// Accessible pre-restricts the entry set by role: employees see only
// their own entries, managers see everything. Applied before any other
// predicate.
func Accessible(entries []models.Entry, viewer models.User) []models.Entry {
	if viewer.IsManager() {
		return entries
	}
	var out []models.Entry
	for _, e := range entries {
		if e.UserID == viewer.ID {
			out = append(out, e)
		}
	}
	return out
}

// Apply runs the full pipeline: role restriction, date window, attribute
// predicates, free-text search, then ordering. Same input, same output —
// no state is kept between invocations.
func (f Filter) Apply(entries []models.Entry, viewer models.User) []models.Entry {
	subset := Accessible(entries, viewer)

	start, end, empty := f.window()
	if empty {
		return nil
	}

	query := util.ParseSearchQuery(f.Search)

	var out []models.Entry
	for _, e := range subset {
		if start != "" && !dateInRange(e.Date, start, end) {
			continue
		}
		if f.UserID != 0 && e.UserID != f.UserID {
			continue
		}
		if f.Category != "" && e.TaskCategory != f.Category {
			continue
		}
		if f.TaskName != "" && e.TaskName != f.TaskName {
			continue
		}
		if !matchesSearch(e, query) {
			continue
		}
		out = append(out, e)
	}

	sortChronological(out)
	if f.Order == SortDateDescending {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// window resolves the filter's date bounds. Empty bounds mean no date
// restriction; empty=true means the selection is provably empty.
func (f Filter) window() (start, end string, empty bool) {
	switch f.Mode {
	case RangeWeek:
		s, e, err := WeekWindow(f.Cursor)
		if err != nil {
			return "", "", true
		}
		return s, e, false
	case RangeMonth:
		s, e, err := MonthWindow(f.Cursor)
		if err != nil {
			return "", "", true
		}
		return s, e, false
	case RangeCustom:
		if f.Start > f.End {
			return "", "", true
		}
		return f.Start, f.End, false
	default:
		return "", "", false
	}
}

// matchesSearch applies the parsed search query. Free-text terms match
// case-insensitively against task name, description, and user name, OR
// across fields and AND across terms; user:/category:/task: tokens narrow
// further.
func matchesSearch(e models.Entry, q util.SearchQuery) bool {
	if q.IsEmpty() {
		return true
	}
	for _, u := range q.Users {
		if !strings.Contains(strings.ToLower(e.UserName), strings.ToLower(u)) {
			return false
		}
	}
	for _, c := range q.Categories {
		if !strings.EqualFold(e.TaskCategory, c) {
			return false
		}
	}
	for _, t := range q.Tasks {
		if !strings.Contains(strings.ToLower(e.TaskName), strings.ToLower(t)) {
			return false
		}
	}
	for _, term := range q.Text {
		needle := strings.ToLower(term)
		if !strings.Contains(strings.ToLower(e.TaskName), needle) &&
			!strings.Contains(strings.ToLower(e.Description), needle) &&
			!strings.Contains(strings.ToLower(e.UserName), needle) {
			return false
		}
	}
	return true
}
