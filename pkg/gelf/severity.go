package gelf

// Syslog severities as used by the GELF level field.
const (
	SeverityEmergency     = 0
	SeverityAlert         = 1
	SeverityCritical      = 2
	SeverityError         = 3
	SeverityWarning       = 4
	SeverityNotice        = 5
	SeverityInformational = 6
	SeverityDebug         = 7
)

var severities = map[string]int{
	"error":   SeverityError,
	"warn":    SeverityWarning,
	"info":    SeverityNotice,
	"verbose": SeverityInformational,
	"debug":   SeverityDebug,
	"silly":   SeverityDebug,
}

// SeverityOf maps a level name to its syslog severity. Unrecognized names map
// to SeverityEmergency, matching how collectors treat unclassified input.
func SeverityOf(level string) int {
	return severities[level]
}
