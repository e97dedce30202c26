package session

import (
	"context"
	"fmt"
	"github.com/ValentinKolb/lockey/cmd/util"
	"github.com/ValentinKolb/lockey/lib/common"
	"github.com/ValentinKolb/lockey/lib/lockclient"
	"github.com/ValentinKolb/lockey/lib/lockmgr"
	"github.com/VictoriaMetrics/metrics"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/spf13/cobra"
	"io"
	"os"
)

var Logger = logger.GetLogger("cmd")

var (
	sessionConfig *common.Config

	// SessionCmd represents the session command
	SessionCmd = &cobra.Command{
		Use:   "session",
		Short: "Run lock commands against a fresh lock manager",
		Long: `Run lock commands against a fresh lock manager. Commands are read line by line from stdin or from a script file:

  acquire <requester> <resource>
  release <requester> <resource>
  holding <requester>
  stats

The lock table lives as long as the session.`,
		Args:    cobra.NoArgs,
		PreRunE: setupSession,
		RunE:    runSession,
	}
)

func init() {
	key := "script"
	SessionCmd.Flags().String(key, "", util.WrapString("Path of a script file with one command per line (default: read from stdin)"))

	key = "metrics"
	SessionCmd.Flags().Bool(key, false, util.WrapString("Print the metrics of the session in the Prometheus text format when the session ends"))

	key = "prompt"
	SessionCmd.Flags().Bool(key, false, util.WrapString("Print a prompt before each command (useful for interactive use)"))
}

// setupSession reads the configuration and initializes the loggers
func setupSession(cmd *cobra.Command, _ []string) (err error) {
	sessionConfig, err = util.Setup(cmd)
	return err
}

// runSession runs the session until the input is exhausted
func runSession(cmd *cobra.Command, _ []string) error {
	Logger.Debugf(sessionConfig.String())

	// Open the input
	var in io.Reader = cmd.InOrStdin()
	if sessionConfig.Script != "" {
		f, err := os.Open(sessionConfig.Script)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	set := metrics.NewSet()
	err := Run(cmd.Context(), *sessionConfig, set, in, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if sessionConfig.Metrics {
		set.WritePrometheus(cmd.OutOrStdout())
	}
	return nil
}

// Run executes a session with the given configuration on a new, instrumented
// lock manager whose metrics are recorded into set.
func Run(ctx context.Context, conf common.Config, set *metrics.Set, in io.Reader, out io.Writer) error {
	locks := lockmgr.NewInstrumentedLockManager(lockmgr.NewLockManager(), set)

	prompt := ""
	if conf.Prompt {
		prompt = "lockey> "
	}

	s := lockclient.NewSession(lockclient.NewClient(locks), prompt)
	if err := s.Run(ctx, in, out); err != nil {
		return fmt.Errorf("session aborted: %w", err)
	}

	Logger.Infof("session finished, %d locks still held", locks.Len())
	return nil
}
