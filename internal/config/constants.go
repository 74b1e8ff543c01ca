package config

// Time accounting rules.
const (
	WeeklyHourLimit = 40.0
	MinutesPerHour  = 60
)

// Wire formats shared by the store, the rules core, and the UI. Both are
// zero-padded so lexicographic comparison matches chronological order.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Login.
const (
	MaxLoginAttempts = 5
)

// Database/application settings.
const (
	AppName    = "chronoguard"
	DBFileName = "chronoguard.db"
)
