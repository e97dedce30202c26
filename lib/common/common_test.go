package common

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lni/dragonboat/v4/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    logger.LogLevel
		wantErr bool
	}{
		{"debug", logger.DEBUG, false},
		{"INFO", logger.INFO, false},
		{"warn", logger.WARNING, false},
		{"warning", logger.WARNING, false},
		{"error", logger.ERROR, false},
		{"verbose", logger.INFO, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoggerFactoryFormatAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerFactory(&buf)("lockmgr")

	l.Debugf("hidden %d", 1)
	assert.Empty(t, buf.String(), "debug must be filtered at the default level")

	l.Infof("acquired %s", "u1 -> o1")
	assert.Contains(t, buf.String(), "INFO  | lockmgr    | acquired u1 -> o1")

	buf.Reset()
	l.SetLevel(logger.DEBUG)
	l.Debugf("visible")
	assert.Contains(t, buf.String(), "DEBUG | lockmgr    | visible")

	buf.Reset()
	l.SetLevel(logger.ERROR)
	l.Warningf("dropped")
	l.Errorf("kept")
	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "ERROR | lockmgr    | kept")
}

func TestConfigValidate(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, c.Validate())

	bad := c
	bad.Threads = 0
	assert.Error(t, bad.Validate())

	bad = c
	bad.Requesters = 0
	assert.Error(t, bad.Validate())

	bad = c
	bad.Iterations = -1
	assert.Error(t, bad.Validate())

	bad = c
	bad.LogLevel = "loud"
	assert.Error(t, bad.Validate())
}

func TestConfigString(t *testing.T) {
	c := DefaultConfig()
	s := c.String()
	assert.True(t, strings.Contains(s, "LOGGING"))
	assert.Contains(t, s, "<stdin>")
	assert.Contains(t, s, "Threads")

	c.Script = "locks.txt"
	assert.Contains(t, c.String(), "locks.txt")
}
