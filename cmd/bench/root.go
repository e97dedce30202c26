package bench

import (
	"encoding/csv"
	"fmt"
	"github.com/ValentinKolb/lockey/cmd/util"
	"github.com/ValentinKolb/lockey/lib/common"
	"github.com/ValentinKolb/lockey/lib/lockmgr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"io"
	"os"
	"strconv"
)

var (
	benchConfig *common.Config

	// BenchCmd represents the bench command
	BenchCmd = &cobra.Command{
		Use:     "bench",
		Short:   "Performance testing tool for the lock manager",
		Long:    "Runs concurrent acquire/release rounds against a single lock manager and reports latencies, throughput and whether the final lock table is consistent with a serial execution.",
		Args:    cobra.NoArgs,
		PreRunE: setupBench,
		RunE:    runBench,
	}
)

func init() {
	defaults := common.DefaultConfig()

	key := "threads"
	BenchCmd.Flags().Int(key, defaults.Threads, util.WrapString("Number of goroutines to use for the benchmark"))

	key = "requesters"
	BenchCmd.Flags().Int(key, defaults.Requesters, util.WrapString("How many different requester ids to use. Fewer requesters mean more contention"))

	key = "iterations"
	BenchCmd.Flags().Int(key, defaults.Iterations, util.WrapString("Total number of acquire/release rounds"))

	key = "csv"
	BenchCmd.Flags().String(key, "", util.WrapString("Optional path to save benchmark results as CSV"))
}

func setupBench(cmd *cobra.Command, _ []string) (err error) {
	benchConfig, err = util.Setup(cmd)
	return err
}

func runBench(cmd *cobra.Command, _ []string) error {
	fmt.Println("Performance testing tool for lockey")

	// Print configuration
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println(benchConfig.String())

	fmt.Println("starting benchmark...")

	result, err := Run(lockmgr.NewLockManager(), *benchConfig)
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), result)

	if csvPath := viper.GetString("csv"); csvPath != "" {
		if err := writeResultToCSV(csvPath, result); err != nil {
			return err
		}
		fmt.Printf("results written to %s\n", csvPath)
	}

	if !result.Consistent() {
		return fmt.Errorf("lock manager counters are not consistent with a serial execution: %+v", result.Stats)
	}
	return nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// printResult prints the result of a benchmark run in a formatted way
func printResult(w io.Writer, r *Result) {
	printOp := func(name string, op OpResult) {
		_, _ = fmt.Fprintf(w, "%-10s%10d ops  %8d rejected  mean %-10s p50 %-10s p99 %-10s max %s\n",
			name, op.Count, op.Rejected, op.Mean, op.P50, op.P99, op.Max)
	}

	_, _ = fmt.Fprintln(w)
	printOp("acquire", r.Acquire)
	printOp("release", r.Release)
	_, _ = fmt.Fprintf(w, "\n%d ops in %s (%.0f ops/sec)\n", r.Operations, r.Duration, r.OpsPerSec())
	_, _ = fmt.Fprintf(w, "held after run: %d, consistent: %t\n", r.Stats.Held, r.Consistent())
}

// writeResultToCSV writes the benchmark result to a CSV file
func writeResultToCSV(csvPath string, r *Result) error {
	file, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	// Write header
	header := []string{
		"Op", "Count", "Rejected", "MeanNs", "P50Ns", "P99Ns", "MaxNs",
		"Threads", "Requesters", "OpsPerSec", "Consistent",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %v", err)
	}

	for _, op := range []struct {
		name string
		res  OpResult
	}{{"acquire", r.Acquire}, {"release", r.Release}} {
		row := []string{
			op.name,
			strconv.FormatInt(op.res.Count, 10),
			strconv.FormatInt(op.res.Rejected, 10),
			strconv.FormatInt(op.res.Mean.Nanoseconds(), 10),
			strconv.FormatInt(op.res.P50.Nanoseconds(), 10),
			strconv.FormatInt(op.res.P99.Nanoseconds(), 10),
			strconv.FormatInt(op.res.Max.Nanoseconds(), 10),
			strconv.Itoa(r.Threads),
			strconv.Itoa(r.Requesters),
			fmt.Sprintf("%.0f", r.OpsPerSec()),
			strconv.FormatBool(r.Consistent()),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row for op %s: %v", op.name, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
