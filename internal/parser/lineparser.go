package parser

import (
	"regexp"
	"strconv"
	"strings"

	"log-analytics-backend/internal/model"
	"log-analytics-backend/internal/pattern"
	"log-analytics-backend/internal/util"
)

// LineParser turns one log line into a structured record using the rule
// set of the chosen format. Parsing never fails: a line that matches no
// rule comes back as a raw-only record with SeverityUnknown and still
// counts toward totals.
type LineParser struct {
	lib *pattern.Library
}

func NewLineParser(lib *pattern.Library) *LineParser {
	return &LineParser{lib: lib}
}

// procWithPID splits syslog-style "sshd[12345]" process tags.
var procWithPID = regexp.MustCompile(`^(.*?)\[(\d+)\]$`)

// Keyword markers used to classify non-web lines. Substring matching on
// the lowercased message, same contract the vendor dialects use in the
// wild ("drop" intentionally also hits "dropped").
var (
	errorKeywords = []string{
		"error", "critical", "failed", "failure", "denied", "drop",
		"blocked", "violation", "attack", "threat", "intrusion",
	}
	warningKeywords = []string{
		"warning", "warn", "alert", "changed state to down",
	}
)

// Parse extracts a record from one line. Empty lines are the caller's
// concern; Parse assumes a non-empty, trimmed line.
func (p *LineParser) Parse(line string, format model.LogFormat) model.ParsedRecord {
	rec := model.ParsedRecord{
		Raw:      line,
		Severity: model.SeverityUnknown,
	}

	var fields map[string]string
	for _, rule := range p.lib.RulesFor(format) {
		if f, ok := rule.Match(line); ok {
			fields = f
			break
		}
	}
	if fields == nil {
		return rec
	}
	rec.Matched = true

	if raw, ok := fields["time"]; ok {
		rec.TimeText = raw
		if ts, ok := util.ParseLogTimestamp(raw); ok {
			rec.Timestamp = ts
		}
	}

	switch format {
	case model.FormatApache, model.FormatNginx:
		rec.SourceIP = fields["ip"]
		rec.Method, rec.URL = splitRequest(fields["request"])
		// A malformed status degrades to absent, not to an error.
		if code, err := strconv.Atoi(fields["status"]); err == nil {
			rec.StatusCode = code
		}
		rec.Severity = severityFromStatus(rec.StatusCode)

	case model.FormatSyslog, model.FormatJuniper:
		rec.Hostname = fields["host"]
		rec.Process, rec.ProcessID = splitProcess(fields["proc"])
		rec.Message = fields["msg"]
		rec.Severity = severityFromMessage(rec.Message)

	case model.FormatCisco:
		rec.Hostname = fields["host"]
		rec.ProcessID = fields["pid"]
		rec.Message = fields["msg"]
		rec.Severity = severityFromMessage(rec.Message)

	case model.FormatMikrotik:
		rec.Interface = fields["iface"]
		rec.Facility = fields["facility"]
		rec.Message = fields["msg"]
		rec.Severity = severityFromMessage(rec.Message)

	default:
		rec.Message = fields["msg"]
		rec.Severity = severityFromMessage(rec.Message)
	}

	return rec
}

// splitRequest splits an HTTP request line ("GET /path HTTP/1.1") into
// method and URL, tolerating truncated requests.
func splitRequest(request string) (method, url string) {
	parts := strings.Fields(request)
	if len(parts) > 0 {
		method = parts[0]
	}
	if len(parts) > 1 {
		url = parts[1]
	}
	return method, url
}

func splitProcess(proc string) (name, pid string) {
	proc = strings.TrimSpace(proc)
	if m := procWithPID.FindStringSubmatch(proc); m != nil {
		return m[1], m[2]
	}
	return proc, ""
}

func severityFromStatus(status int) model.Severity {
	switch {
	case status >= 500:
		return model.SeverityError
	case status >= 400:
		return model.SeverityWarning
	case status > 0:
		return model.SeverityInfo
	default:
		return model.SeverityUnknown
	}
}

func severityFromMessage(msg string) model.Severity {
	lower := strings.ToLower(msg)
	for _, kw := range errorKeywords {
		if strings.Contains(lower, kw) {
			return model.SeverityError
		}
	}
	for _, kw := range warningKeywords {
		if strings.Contains(lower, kw) {
			return model.SeverityWarning
		}
	}
	return model.SeverityInfo
}
