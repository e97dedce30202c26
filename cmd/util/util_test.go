package util

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapString(t *testing.T) {
	text := strings.Repeat("word ", 30)
	for _, line := range strings.Split(WrapString(text), "\n") {
		assert.LessOrEqual(t, len(line), Wrap)
	}
	assert.Equal(t, "short text", WrapString("  short   text "))
}

func TestGetConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	viper.Reset()
	conf, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "info", conf.LogLevel)
	assert.Equal(t, 10, conf.Threads)

	viper.Set("threads", 4)
	viper.Set("script", "locks.txt")
	conf, err = GetConfig()
	require.NoError(t, err)
	assert.Equal(t, 4, conf.Threads)
	assert.Equal(t, "locks.txt", conf.Script)

	viper.Set("log-level", "chatty")
	_, err = GetConfig()
	assert.Error(t, err)
}
