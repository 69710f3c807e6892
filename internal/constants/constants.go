package constants

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// DateFormat is the day-precision format used in filenames and documents.
const DateFormat = "2006-01-02"

// DefaultRetentionDays is how long a report stays in its officer namespace
// before the archival sweep relocates it.
const DefaultRetentionDays = 30

// UpcomingWindowDays bounds the "due soon" task window.
const UpcomingWindowDays = 7

// Performance thresholds for officer ratings.
const (
	PerformanceThreshold = 0.8
	WarningThreshold     = 0.6
)
