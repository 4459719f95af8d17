package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"log-analytics-backend/internal/model"
	"log-analytics-backend/internal/parser"
	"log-analytics-backend/internal/pattern"
)

func TestLineParser_Parse(t *testing.T) {
	lineParser := parser.NewLineParser(pattern.NewLibrary())

	tests := []struct {
		name     string
		line     string
		format   model.LogFormat
		expected model.ParsedRecord
	}{
		{
			name:   "Apache Success Request",
			line:   `192.168.1.100 - - [10/Oct/2023:13:55:36] "GET /api/users HTTP/1.1" 200 1234`,
			format: model.FormatApache,
			expected: model.ParsedRecord{
				SourceIP:   "192.168.1.100",
				Method:     "GET",
				URL:        "/api/users",
				StatusCode: 200,
				Severity:   model.SeverityInfo,
				Matched:    true,
			},
		},
		{
			name:   "Apache Client Error Is Warning Tier",
			line:   `192.168.1.101 - - [10/Oct/2023:13:55:37] "POST /api/login HTTP/1.1" 401 567`,
			format: model.FormatApache,
			expected: model.ParsedRecord{
				SourceIP:   "192.168.1.101",
				Method:     "POST",
				URL:        "/api/login",
				StatusCode: 401,
				Severity:   model.SeverityWarning,
				Matched:    true,
			},
		},
		{
			name:   "Nginx Server Error",
			line:   `10.0.0.5 - admin [10/Oct/2023:14:00:00 +0000] "GET /health HTTP/1.1" 503 0 "-" "curl/8.0"`,
			format: model.FormatNginx,
			expected: model.ParsedRecord{
				SourceIP:   "10.0.0.5",
				Method:     "GET",
				URL:        "/health",
				StatusCode: 503,
				Severity:   model.SeverityError,
				Matched:    true,
			},
		},
		{
			name:   "Syslog Failed Password",
			line:   `Oct 10 13:55:36 server1 sshd[12345]: Failed password for invalid user admin from 192.168.1.100 port 22 ssh2`,
			format: model.FormatSyslog,
			expected: model.ParsedRecord{
				Hostname:  "server1",
				Process:   "sshd",
				ProcessID: "12345",
				Message:   "Failed password for invalid user admin from 192.168.1.100 port 22 ssh2",
				Severity:  model.SeverityError,
				Matched:   true,
			},
		},
		{
			name:   "Syslog Plain Process Without PID",
			line:   `Oct 11 08:12:01 host2 cron: session opened for user root`,
			format: model.FormatSyslog,
			expected: model.ParsedRecord{
				Hostname: "host2",
				Process:  "cron",
				Message:  "session opened for user root",
				Severity: model.SeverityInfo,
				Matched:  true,
			},
		},
		{
			name:   "MikroTik Dropped Packet",
			line:   `Oct 10 13:55:36 ether1,firewall input: in:ether1 out:(none) drop tcp 1.2.3.4`,
			format: model.FormatMikrotik,
			expected: model.ParsedRecord{
				Interface: "ether1",
				Facility:  "firewall",
				Message:   "input: in:ether1 out:(none) drop tcp 1.2.3.4",
				Severity:  model.SeverityError,
				Matched:   true,
			},
		},
		{
			name:   "Cisco Interface State Change",
			line:   `Oct 10 13:55:36 router1 105: %LINEPROTO-5-UPDOWN: Line protocol on Interface Gi0/1, changed state to down`,
			format: model.FormatCisco,
			expected: model.ParsedRecord{
				Hostname:  "router1",
				ProcessID: "105",
				Message:   "%LINEPROTO-5-UPDOWN: Line protocol on Interface Gi0/1, changed state to down",
				Severity:  model.SeverityWarning,
				Matched:   true,
			},
		},
		{
			name:   "Juniper Session Event",
			line:   `Oct 10 13:55:36 fw1 rtlogd: session created 10.1.1.1/500 -> 10.2.2.2/500`,
			format: model.FormatJuniper,
			expected: model.ParsedRecord{
				Hostname: "fw1",
				Process:  "rtlogd",
				Message:  "session created 10.1.1.1/500 -> 10.2.2.2/500",
				Severity: model.SeverityInfo,
				Matched:  true,
			},
		},
		{
			name:   "Unmatched Line Falls Back To Raw Only",
			line:   `!!! totally not a log line`,
			format: model.FormatApache,
			expected: model.ParsedRecord{
				Severity: model.SeverityUnknown,
				Matched:  false,
			},
		},
		{
			name:   "Generic Line With Error Keyword",
			line:   `something happened: critical disk failure imminent`,
			format: model.FormatGeneric,
			expected: model.ParsedRecord{
				Message:  "something happened: critical disk failure imminent",
				Severity: model.SeverityError,
				Matched:  true,
			},
		},
		{
			name:   "Generic Line Without Keywords",
			line:   `plain uneventful line`,
			format: model.FormatGeneric,
			expected: model.ParsedRecord{
				Message:  "plain uneventful line",
				Severity: model.SeverityInfo,
				Matched:  true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := lineParser.Parse(tt.line, tt.format)

			assert.Equal(t, tt.line, result.Raw, "raw line must always be retained")
			assert.Equal(t, tt.expected.Matched, result.Matched)
			assert.Equal(t, tt.expected.Severity, result.Severity)
			assert.Equal(t, tt.expected.SourceIP, result.SourceIP)
			assert.Equal(t, tt.expected.Hostname, result.Hostname)
			assert.Equal(t, tt.expected.Method, result.Method)
			assert.Equal(t, tt.expected.URL, result.URL)
			assert.Equal(t, tt.expected.StatusCode, result.StatusCode)
			assert.Equal(t, tt.expected.Process, result.Process)
			assert.Equal(t, tt.expected.ProcessID, result.ProcessID)
			assert.Equal(t, tt.expected.Interface, result.Interface)
			assert.Equal(t, tt.expected.Facility, result.Facility)
			assert.Equal(t, tt.expected.Message, result.Message)
		})
	}
}

func TestLineParser_Timestamps(t *testing.T) {
	lineParser := parser.NewLineParser(pattern.NewLibrary())

	t.Run("Apache CLF Timestamp", func(t *testing.T) {
		rec := lineParser.Parse(`1.2.3.4 - - [10/Oct/2023:13:55:36] "GET / HTTP/1.1" 200 5`, model.FormatApache)
		require.False(t, rec.Timestamp.IsZero())
		assert.Equal(t, "10/Oct/2023:13:55:36", rec.TimeText)
		assert.Equal(t, 2023, rec.Timestamp.Year())
		assert.Equal(t, 13, rec.Timestamp.Hour())
	})

	t.Run("Syslog Timestamp Gets Current Year", func(t *testing.T) {
		rec := lineParser.Parse(`Oct 10 13:55:36 server1 sshd[1]: ok`, model.FormatSyslog)
		require.False(t, rec.Timestamp.IsZero())
		assert.Equal(t, "Oct 10 13:55:36", rec.TimeText)
	})

	t.Run("Malformed Timestamp Degrades To Absent", func(t *testing.T) {
		rec := lineParser.Parse(`1.2.3.4 - - [not-a-date] "GET / HTTP/1.1" 200 5`, model.FormatApache)
		assert.True(t, rec.Timestamp.IsZero())
		assert.Equal(t, "not-a-date", rec.TimeText)
		assert.True(t, rec.Matched, "record survives a bad timestamp")
	})
}
