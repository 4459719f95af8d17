package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"log-analytics-backend/internal/model"
	"log-analytics-backend/internal/pattern"
)

func TestLibrary_RulesFor(t *testing.T) {
	lib := pattern.NewLibrary()

	for _, format := range []model.LogFormat{
		model.FormatApache, model.FormatNginx, model.FormatSyslog,
		model.FormatMikrotik, model.FormatCisco, model.FormatJuniper,
		model.FormatGeneric,
	} {
		assert.NotEmpty(t, lib.RulesFor(format), "format %s has no rules", format)
	}

	// Unknown tags fall back to the generic rule set.
	assert.Equal(t, lib.RulesFor(model.FormatGeneric), lib.RulesFor(model.LogFormat("bogus")))
}

func TestLibrary_Priority(t *testing.T) {
	lib := pattern.NewLibrary()
	priority := lib.Priority()

	require.NotEmpty(t, priority)
	assert.Equal(t, model.FormatApache, priority[0], "web formats are scored first")
	for _, format := range priority {
		assert.NotEqual(t, model.FormatGeneric, format, "generic is the fallback, never scored")
	}
}

func TestRule_NamedCaptures(t *testing.T) {
	lib := pattern.NewLibrary()

	rule := lib.RulesFor(model.FormatApache)[0]
	fields, ok := rule.Match(`192.168.1.100 - - [10/Oct/2023:13:55:36] "GET /api/users HTTP/1.1" 200 1234`)
	require.True(t, ok)
	assert.Equal(t, "192.168.1.100", fields["ip"])
	assert.Equal(t, "10/Oct/2023:13:55:36", fields["time"])
	assert.Equal(t, "GET /api/users HTTP/1.1", fields["request"])
	assert.Equal(t, "200", fields["status"])

	_, ok = rule.Match("not an access log line")
	assert.False(t, ok)

	syslogRule := lib.RulesFor(model.FormatSyslog)[0]
	fields, ok = syslogRule.Match(`Oct 10 13:55:36 server1 sshd[12345]: Failed password`)
	require.True(t, ok)
	assert.Equal(t, "server1", fields["host"])
	assert.Equal(t, "sshd[12345]", fields["proc"])
	assert.Equal(t, "Failed password", fields["msg"])
}
