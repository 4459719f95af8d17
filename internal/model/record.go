package model

import "time"

// Severity is the normalized classification of a parsed line.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeverityUnknown Severity = "unknown"
)

// ParsedRecord is one logical log line rendered into fields. Every field
// except Raw is optional: a line that matched no rule still produces a
// valid record carrying only Raw and SeverityUnknown, and still counts
// toward totals.
type ParsedRecord struct {
	Timestamp  time.Time `json:"timestamp,omitempty"`  // zero when absent or unparseable
	TimeText   string    `json:"time_text,omitempty"`  // raw timestamp text as it appeared
	SourceIP   string    `json:"source_ip,omitempty"`  // web formats
	Hostname   string    `json:"hostname,omitempty"`   // syslog/cisco/juniper
	StatusCode int       `json:"status_code,omitempty"` // web formats, 0 = absent
	Method     string    `json:"method,omitempty"`
	URL        string    `json:"url,omitempty"`
	Process    string    `json:"process,omitempty"`    // syslog/juniper
	ProcessID  string    `json:"process_id,omitempty"` // cisco, or syslog pid suffix
	Interface  string    `json:"interface,omitempty"`  // mikrotik
	Facility   string    `json:"facility,omitempty"`   // mikrotik
	Message    string    `json:"message,omitempty"`
	Severity   Severity  `json:"severity"`
	Matched    bool      `json:"matched"`
	Raw        string    `json:"raw_line"`
}
