package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/joshuapare/flexkit/pkg/flexkit"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	noMmap  bool
)

var rootCmd = &cobra.Command{
	Use:   "flexbctl",
	Short: "Inspect FlexBuffers files",
	Long: `flexbctl is a tool for inspecting FlexBuffers binary files. It reads
files without copying them, looks up values by path, dumps whole trees as text
or JSON, and verifies every structural invariant of a buffer.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogger()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noMmap, "no-mmap", false, "Read files onto the heap instead of mapping them")
}

func execute() {
	defer func() { _ = Logger().Sync() }()
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// openFile opens path with the options selected by the global flags.
func openFile(path string, verify bool) (*flexkit.Buffer, error) {
	printVerbose("Opening file: %s\n", path)
	Logger().Debug("open", zap.String("path", path), zap.Bool("mmap", !noMmap), zap.Bool("verify", verify))
	b, err := flexkit.Open(path, flexkit.OpenOptions{Copy: noMmap, Verify: verify})
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return b, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
