package constants

const (
	AppName           = "streaker"
	Version           = "v0.1.0"
	DefaultConfigDir  = "~/.config/streaker"
	DefaultFeedPath   = DefaultConfigDir + "/feed.json"
	DefaultTimezone   = "Local" // Use system local timezone by default
	FeedFormatVersion = 1

	// Log rotation
	LogFileName   = "streaker.log"
	LogMaxSizeMB  = 10
	LogMaxBackups = 3
	LogMaxAgeDays = 28

	// CalendarLabelLen is the width of the month label in calendar rows
	CalendarLabelLen = 3
)
