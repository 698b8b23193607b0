package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"benchrun/internal/config"
	berrors "benchrun/internal/errors"
	"benchrun/internal/telemetry"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func bindFlags(flags *pflag.FlagSet, keys ...string) {
	for _, key := range keys {
		viper.BindPFlag(key, flags.Lookup(key))
	}
}

var exit = os.Exit
var cfgFile string

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "benchrun",
		Short: "Measure call-depth and dispatch overhead of a 128-operand summation",
		Long: `benchrun times three implementations of the same 128-operand summation:
a fully flattened expression, a nested binary reduction tree of direct calls,
and the same tree routed through an interface on every halving step.

Identical operands feed all three, so differences in the table come down to
call frames and indirect dispatch, nothing else. Results can be saved and
compared across runs to track regressions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runBenchmarks,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.benchrun.yaml)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	cmd.PersistentFlags().String("store", "", "History backend: sqlite, postgres or json")
	cmd.PersistentFlags().String("db", "", "History location (file path or DSN)")

	bindFlags(cmd.PersistentFlags(), "verbose", "store", "db")

	cmd.Flags().String("strategy", "all", "Strategy to run: flat, nested, dispatch or all")
	cmd.Flags().Int("iterations", 10, "Timed iterations per strategy")
	cmd.Flags().Int("warmup", 3, "Discarded warm-up iterations per strategy")
	cmd.Flags().String("input", "sequential", "Operand generator: sequential, random, zeros or ones")
	cmd.Flags().Int64("seed", 1, "Seed for the random operand generator")
	cmd.Flags().Bool("save", false, "Save the aggregated results to history")

	bindFlags(cmd.Flags(), "strategy", "iterations", "warmup", "input", "seed")

	return cmd
}

// Execute runs the root command and maps typed failures to exit codes:
// 0 success, 1 invalid configuration or input, 2 cross-check mismatch.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var mismatch *berrors.MismatchError
	if errors.As(err, &mismatch) {
		return 2
	}
	return 1
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	_ = godotenv.Load() // .env is optional

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".benchrun")
	}

	viper.SetEnvPrefix("BENCHRUN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("strategy", "all")
	viper.SetDefault("iterations", 10)
	viper.SetDefault("warmup", 3)
	viper.SetDefault("input", "sequential")
	viper.SetDefault("seed", 1)
	viper.SetDefault("store", "sqlite")
	viper.SetDefault("db", "")
	viper.SetDefault("serve_metrics", false)
	viper.SetDefault("metrics_port", 2112)
	viper.SetDefault("verbose", false)
	viper.SetDefault("log_file", "")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	if err := config.ValidateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}

	telemetry.InitLogger(viper.GetBool("verbose"), viper.GetString("log_file"))

	if viper.GetBool("serve_metrics") {
		go func() {
			if err := telemetry.StartMetricsServer(viper.GetInt("metrics_port")); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: metrics server failed: %v\n", err)
			}
		}()
	}
}
