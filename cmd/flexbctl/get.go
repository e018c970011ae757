package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/flexkit/flexb/printer"
)

var (
	getShowType bool
	getDepth    int
)

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getShowType, "type", false, "Show type information")
	cmd.Flags().IntVar(&getDepth, "depth", 1, "Levels of a container to expand (0 = all)")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Get a specific value",
		Long: `The get command looks up a value by path and prints it. Path segments
are separated by "/": map keys inside maps, indexes inside vectors.

Example:
  flexbctl get data.flexb vec/1
  flexbctl get data.flexb mymap --type
  flexbctl get data.flexb mymap/foo --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	path, valuePath := args[0], args[1]

	b, err := openFile(path, false)
	if err != nil {
		return err
	}
	defer b.Close()

	ref, err := b.Find(valuePath)
	if err != nil {
		return fmt.Errorf("failed to get value: %w", err)
	}
	printVerbose("Found %s\n", ref)

	opts := printer.DefaultOptions()
	opts.ShowTypes = getShowType
	opts.MaxDepth = getDepth

	if jsonOut {
		opts.Format = printer.FormatJSON
		return printer.New(os.Stdout, opts).Print(ref)
	}

	if !ref.IsVector() {
		s, err := printer.FormatScalar(ref, 0)
		if err != nil {
			return fmt.Errorf("failed to get value: %w", err)
		}
		if getShowType {
			printInfo("%s [%s]\n", s, ref.Type())
		} else {
			printInfo("%s\n", s)
		}
		return nil
	}

	opts.Format = printer.FormatText
	if quiet {
		return nil
	}
	return printer.New(os.Stdout, opts).Print(ref)
}
