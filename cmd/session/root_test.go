package session

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/ValentinKolb/lockey/lib/common"
	"github.com/VictoriaMetrics/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScript(t *testing.T) {
	script := `
# release with a different resource
acquire u1 o1
release u1 o2
# same resource, different requesters
acquire u1 o1
acquire u2 o1
acquire u2 o3
`
	set := metrics.NewSet()
	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), common.DefaultConfig(), set, strings.NewReader(script), &out))

	assert.Equal(t, "ok\nok\nok\nok\nerror: already_locked (u2 holds o1)\n", out.String())

	var prom bytes.Buffer
	set.WritePrometheus(&prom)
	assert.Contains(t, prom.String(), `lockey_acquire_total{result="ok"} 3`)
	assert.Contains(t, prom.String(), `lockey_acquire_total{result="already_locked"} 1`)
	assert.Contains(t, prom.String(), `lockey_locks_held 2`)
}

func TestRunWithPrompt(t *testing.T) {
	conf := common.DefaultConfig()
	conf.Prompt = true

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), conf, metrics.NewSet(), strings.NewReader("release u1 o1\n"), &out))
	assert.Equal(t, "lockey> error: not_locked (u1 holds nothing)\nlockey> ", out.String())
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, common.DefaultConfig(), metrics.NewSet(), strings.NewReader("acquire u1 o1\n"), &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
