package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/flexkit/flexb/printer"
	"github.com/joshuapare/flexkit/flexb/walker"
)

var (
	dumpDepth    int
	dumpNoTypes  bool
	dumpMaxBlob  int
	dumpIndent   int
	dumpVerified bool
	dumpMaxNodes int
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().IntVar(&dumpDepth, "depth", 0, "Maximum depth to expand (0 = unlimited)")
	cmd.Flags().BoolVar(&dumpNoTypes, "no-types", false, "Omit type annotations")
	cmd.Flags().IntVar(&dumpMaxBlob, "max-blob", printer.DefaultMaxBlobBytes, "Blob bytes to show in text output (0 = all)")
	cmd.Flags().IntVar(&dumpIndent, "indent", printer.DefaultIndentSize, "Spaces per indent level")
	cmd.Flags().BoolVar(&dumpVerified, "verify", false, "Verify the whole buffer before dumping")
	cmd.Flags().IntVar(&dumpMaxNodes, "max-nodes", walker.DefaultMaxNodes, "Stop after printing this many values")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file> [path]",
		Short: "Print a value tree",
		Long: `The dump command prints the tree below path (the root by default), one
line per value, or as a single JSON document with --json.

Example:
  flexbctl dump data.flexb
  flexbctl dump data.flexb mymap --no-types
  flexbctl dump data.flexb --json --indent 0

Containers shared by several parents are printed under each of them, so a
small file can describe a very large tree. --max-nodes bounds the output.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	path := args[0]
	valuePath := ""
	if len(args) > 1 {
		valuePath = args[1]
	}

	b, err := openFile(path, dumpVerified)
	if err != nil {
		return err
	}
	defer b.Close()

	ref, err := b.Find(valuePath)
	if err != nil {
		return fmt.Errorf("failed to find %q: %w", valuePath, err)
	}

	opts := printer.DefaultOptions()
	opts.MaxDepth = dumpDepth
	opts.ShowTypes = !dumpNoTypes
	opts.MaxBlobBytes = dumpMaxBlob
	opts.IndentSize = dumpIndent
	opts.MaxNodes = dumpMaxNodes
	if jsonOut {
		opts.Format = printer.FormatJSON
	}

	if quiet {
		return nil
	}
	if err := printer.New(os.Stdout, opts).Print(ref); err != nil {
		return fmt.Errorf("failed to dump: %w", err)
	}
	return nil
}
