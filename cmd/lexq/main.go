// Copyright 2026 The Lexq Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command lexq runs logical-expression data quality checks against a
// configured datasource, and ships a self-diagnostic that exercises the
// bundled example cases on an in-memory dataset.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/LexqTech/lexqcore"
	"github.com/LexqTech/lexqcore/lexq"
)

const (
	ExitSuccess        = 0
	ExitChecksFailed   = 1
	ExitConfigError    = 2
	ExitExecutionError = 3
)

type runFlags struct {
	checksFile      string
	dataSourcesFile string
	dataSourceName  string
	maxConcurrent   int
	debug           bool
}

func main() {
	os.Exit(run())
}

func run() int {
	flags := &runFlags{}

	rootCmd := &cobra.Command{
		Use:           "lexq",
		Short:         "Logical expression data quality checks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newRunCmd(flags))
	rootCmd.AddCommand(newDiagnoseCmd(flags))
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lexq: %v\n", err)
		return exitCodeFor(err)
	}

	return ExitSuccess
}

func newRunCmd(flags *runFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a checks suite against a datasource",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChecks(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVarP(&flags.checksFile, "checks", "c", "checks.yaml", "checks suite file")
	cmd.Flags().StringVarP(&flags.dataSourcesFile, "datasources", "f", "datasources.yaml", "datasources file")
	cmd.Flags().StringVarP(&flags.dataSourceName, "datasource", "d", "", "datasource name (required)")
	cmd.Flags().IntVar(&flags.maxConcurrent, "max-concurrent", 4, "max checks running concurrently")
	_ = cmd.MarkFlagRequired("datasource")

	return cmd
}

func newDiagnoseCmd(flags *runFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "diagnose",
		Short: "Run the bundled example cases and print a checklist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return lexq.RunDiagnostics(cmd.Context(), cmd.OutOrStdout(), newLogger(flags.debug))
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the library version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), lexq.GetLexqCoreLibVersion())
		},
	}
}

func runChecks(ctx context.Context, flags *runFlags) error {
	logger := newLogger(flags.debug)

	checksCfg, err := lexqcore.LoadChecksFileConfig(flags.checksFile)
	if err != nil {
		return err
	}

	dataSourcesCfg, err := lexqcore.LoadDataSourcesFileConfig(flags.dataSourcesFile)
	if err != nil {
		return err
	}

	dataSource, err := dataSourcesCfg.FindDataSource(flags.dataSourceName)
	if err != nil {
		return err
	}

	adapter, err := lexq.NewDataSourceAdapter(dataSource, logger)
	if err != nil {
		return err
	}

	runner := lexqcore.NewLexqCheckRunner(logger)
	results := runner.RunSuite(ctx, adapter, checksCfg, flags.maxConcurrent)

	for _, result := range results {
		switch {
		case result.Error != "":
			fmt.Printf("[ERROR] %s: %s\n", result.CheckID, result.Error)
		case result.Pass:
			fmt.Printf("[PASS]  %s: %s\n", result.CheckID, result.Outcome.Result.ObservedValue)
		default:
			fmt.Printf("[FAIL]  %s (%s): %s\n", result.CheckID, result.OnFail, result.Outcome.Result.ObservedValue)
		}
	}

	if lexqcore.SuiteFailed(results) {
		return errChecksFailed
	}

	return nil
}

var errChecksFailed = fmt.Errorf("one or more checks failed")

func exitCodeFor(err error) int {
	var cfgErr *lexqcore.InvalidCheckConfigError
	switch {
	case errors.Is(err, errChecksFailed):
		return ExitChecksFailed
	case errors.As(err, &cfgErr):
		return ExitConfigError
	default:
		return ExitExecutionError
	}
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
