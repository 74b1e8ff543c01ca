package models

// Role gates every permission check in the application.
type Role string

const (
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// TaskStatus enumerates the lifecycle states of a task.
type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// Categories entries can be logged under. Free text in the store, but the
// entry form offers this fixed set.
var Categories = []string{
	"Development",
	"Design",
	"Meeting",
	"Research",
	"Testing",
	"Documentation",
}

// User is an account known to the dashboard.
type User struct {
	ID       int64
	Username string
	Name     string
	Role     Role
	Avatar   string
}

// IsManager reports whether the user may manage tasks, users, and see
// every timesheet entry.
func (u User) IsManager() bool {
	return u.Role == RoleManager
}

// Task is a unit of work entries are logged against. ID is a human code
// ("PROJ-101") and is immutable once created. A nil EstimatedHours means
// no budget ceiling; a nil DueDate means the task is never overdue.
type Task struct {
	ID             string
	Name           string
	EstimatedHours *float64
	DueDate        *string // YYYY-MM-DD
	Status         TaskStatus
}

// Entry is one logged work interval.
//
// UserName and TaskName are denormalized copies taken at save time so that
// list views need no joins. They go stale if the user or task is later
// renamed; that staleness is accepted.
type Entry struct {
	ID             int64
	UserID         int64
	UserName       string
	Date           string // YYYY-MM-DD
	StartTime      string // HH:mm, 24h
	EndTime        string // HH:mm, 24h
	DurationHours  float64
	TaskName       string
	TaskCategory   string
	Description    string
	ManagerComment string // empty string when absent, never NULL
}

// NotificationType distinguishes derived manager alerts.
type NotificationType string

const (
	NotificationOverdue  NotificationType = "OVERDUE"
	NotificationOvertime NotificationType = "OVERTIME"
)

// Severity of a derived notification.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
)

// Notification is a derived manager alert. Never persisted; recomputed
// from current state on every refresh.
type Notification struct {
	ID       string
	Type     NotificationType
	Title    string
	Message  string
	Severity Severity
}
