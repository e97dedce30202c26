package bench

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/ValentinKolb/lockey/lib/common"
	"github.com/ValentinKolb/lockey/lib/lockmgr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func benchConf(threads, requesters, iterations int) common.Config {
	conf := common.DefaultConfig()
	conf.Threads = threads
	conf.Requesters = requesters
	conf.Iterations = iterations
	return conf
}

func TestRunHighContention(t *testing.T) {
	// a single requester shared by all goroutines
	r, err := Run(lockmgr.NewLockManager(), benchConf(8, 1, 4000))
	require.NoError(t, err)

	assert.EqualValues(t, 4000, r.Acquire.Count)
	assert.EqualValues(t, 4000, r.Release.Count)
	assert.EqualValues(t, 8000, r.Operations)
	assert.LessOrEqual(t, r.Stats.Held, 1)
	assert.True(t, r.Consistent(), "stats: %+v", r.Stats)
}

func TestRunNoContention(t *testing.T) {
	// every goroutine gets its own requester
	r, err := Run(lockmgr.NewLockManager(), benchConf(4, 4, 1000))
	require.NoError(t, err)

	assert.EqualValues(t, 0, r.Acquire.Rejected)
	assert.EqualValues(t, 0, r.Release.Rejected)
	assert.Equal(t, 0, r.Stats.Held)
	assert.True(t, r.Consistent())
}

func TestRunUnevenSplit(t *testing.T) {
	r, err := Run(lockmgr.NewLockManager(), benchConf(3, 10, 10))
	require.NoError(t, err)
	assert.EqualValues(t, 10, r.Acquire.Count)
}

func TestRunInvalidConfig(t *testing.T) {
	_, err := Run(lockmgr.NewLockManager(), benchConf(0, 1, 1))
	assert.Error(t, err)
}

func TestConsistentDetectsMismatch(t *testing.T) {
	r := &Result{
		Acquire: OpResult{Count: 2},
		Release: OpResult{Count: 2},
		Stats:   lockmgr.Stats{Acquired: 2, Released: 1, Held: 0},
	}
	assert.False(t, r.Consistent())
}

func TestPrintAndCSV(t *testing.T) {
	r, err := Run(lockmgr.NewLockManager(), benchConf(2, 2, 100))
	require.NoError(t, err)

	var out bytes.Buffer
	printResult(&out, r)
	assert.Contains(t, out.String(), "acquire")
	assert.Contains(t, out.String(), "consistent: true")

	path := filepath.Join(t.TempDir(), "bench.csv")
	require.NoError(t, writeResultToCSV(path, r))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "acquire", rows[1][0])
	assert.Equal(t, "release", rows[2][0])
	assert.Equal(t, "true", rows[1][10])
}
