package cmd

import (
	"fmt"
	"github.com/ValentinKolb/lockey/cmd/bench"
	"github.com/ValentinKolb/lockey/cmd/session"
	"github.com/ValentinKolb/lockey/cmd/util"
	"github.com/ValentinKolb/lockey/lib/common"
	"github.com/spf13/cobra"
	"os"
)

const (
	Version = "0.1.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "lockey",
		Short: "in-process advisory lock manager",
		Long: fmt.Sprintf(`lockey (v%s)

An advisory lock manager written in Go. Requesters acquire and release
exclusive locks on named resources, all operations are serialized by a
single lock table.`, Version),
		SilenceUsage: true,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of lockey",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("lockey v%s\n", Version)
		},
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add Commands
	RootCmd.AddCommand(session.SessionCmd)
	RootCmd.AddCommand(bench.BenchCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "log-level"
	RootCmd.PersistentFlags().String(key, common.DefaultConfig().LogLevel, util.WrapString("LogLevel is the level at which logs will be output (debug, info, warn, error)"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
