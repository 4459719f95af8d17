package model

import "strings"

// LogFormat identifies one of the recognized log dialects. A format is
// chosen once per analysis run, either declared by the caller or detected
// from a sample of the input.
type LogFormat string

const (
	FormatApache   LogFormat = "apache"
	FormatNginx    LogFormat = "nginx"
	FormatSyslog   LogFormat = "syslog"
	FormatMikrotik LogFormat = "mikrotik"
	FormatCisco    LogFormat = "cisco"
	FormatJuniper  LogFormat = "juniper"
	FormatGeneric  LogFormat = "generic"
)

// ParseLogFormat maps a caller-supplied format tag to a LogFormat.
// An empty string is valid and means "auto-detect".
func ParseLogFormat(s string) (LogFormat, bool) {
	switch LogFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return "", true
	case FormatApache:
		return FormatApache, true
	case FormatNginx:
		return FormatNginx, true
	case FormatSyslog:
		return FormatSyslog, true
	case FormatMikrotik:
		return FormatMikrotik, true
	case FormatCisco:
		return FormatCisco, true
	case FormatJuniper:
		return FormatJuniper, true
	case FormatGeneric:
		return FormatGeneric, true
	}
	return "", false
}

// IsWeb reports whether the format carries HTTP fields (status code, URL).
func (f LogFormat) IsWeb() bool {
	return f == FormatApache || f == FormatNginx
}
