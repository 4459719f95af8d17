package pattern

import (
	"regexp"

	"log-analytics-backend/internal/model"
)

// Rule is one line-matching rule for a format. Field names are carried by
// the regexp's named capture groups (ip, time, request, status, size,
// host, proc, pid, iface, facility, msg).
type Rule struct {
	re *regexp.Regexp
}

// Match applies the rule to a line and returns the named captures.
func (r Rule) Match(line string) (map[string]string, bool) {
	m := r.re.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	fields := make(map[string]string)
	for i, name := range r.re.SubexpNames() {
		if name != "" && m[i] != "" {
			fields[name] = m[i]
		}
	}
	return fields, true
}

// Library holds the ordered matching rules per log format. Purely
// declarative; adding a format means appending a rule set here.
type Library struct {
	rules    map[model.LogFormat][]Rule
	priority []model.LogFormat
}

func NewLibrary() *Library {
	// Apache/Nginx combined format:
	// IP ident user [timestamp] "method URL proto" status size "referrer" "agent"
	combined := Rule{re: regexp.MustCompile(
		`^(?P<ip>\S+) (?P<ident>\S+) (?P<user>\S+) \[(?P<time>[^\]]+)\] "(?P<request>[^"]*)" (?P<status>\d+) (?P<size>\S+)(?: "(?P<referrer>[^"]*)" "(?P<agent>[^"]*)")?$`)}

	// RFC-3164-style: Month Day Time Hostname Process: Message
	syslog := Rule{re: regexp.MustCompile(
		`^(?P<time>\w+\s+\d+\s+\d+:\d+:\d+)\s+(?P<host>\S+)\s+(?P<proc>[^:]+):\s+(?P<msg>.+)$`)}

	// MikroTik RouterOS: timestamp interface,facility message
	mikrotik := Rule{re: regexp.MustCompile(
		`^(?P<time>\w+\s+\d+\s+\d+:\d+:\d+)\s+(?P<iface>\S+?),\s*(?P<facility>\w+)\s+(?P<msg>.+)$`)}

	// Cisco IOS: timestamp hostname process_id: message
	cisco := Rule{re: regexp.MustCompile(
		`^(?P<time>\w+\s+\d+\s+\d+:\d+:\d+)\s+(?P<host>\S+)\s+(?P<pid>\d+):\s*(?P<msg>.+)$`)}

	// Catch-all for unrecognized dialects; counted but yields no key fields.
	generic := Rule{re: regexp.MustCompile(`^(?P<msg>\S.*)$`)}

	return &Library{
		rules: map[model.LogFormat][]Rule{
			model.FormatApache:   {combined},
			model.FormatNginx:    {combined},
			model.FormatSyslog:   {syslog},
			model.FormatMikrotik: {mikrotik},
			model.FormatCisco:    {cisco},
			model.FormatJuniper:  {syslog},
			model.FormatGeneric:  {generic},
		},
		// Detection order: web formats first (structurally strict), then
		// vendor rules that are stricter than plain syslog, syslog last of
		// the datagram shapes. Juniper shares the syslog rule so it is
		// only reachable when declared explicitly.
		priority: []model.LogFormat{
			model.FormatApache,
			model.FormatNginx,
			model.FormatMikrotik,
			model.FormatCisco,
			model.FormatSyslog,
			model.FormatJuniper,
		},
	}
}

// RulesFor returns the ordered rule set for a format, falling back to the
// generic rules for unknown tags.
func (l *Library) RulesFor(format model.LogFormat) []Rule {
	if rules, ok := l.rules[format]; ok {
		return rules
	}
	return l.rules[model.FormatGeneric]
}

// Priority returns the fixed order in which formats are scored during
// detection. The generic format is the fallback and is never scored.
func (l *Library) Priority() []model.LogFormat {
	return l.priority
}
