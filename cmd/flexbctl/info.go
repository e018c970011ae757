package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/joshuapare/flexkit/flexb/walker"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Bind a buffer's root and report basic metadata",
		Long: `The info command decodes the root trailer of a FlexBuffers file and
displays its size, root type, widths and entry count. With --verbose it also
walks the tree and reports counts per type.

Example:
  flexbctl info data.flexb
  flexbctl info data.flexb --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

type infoResult struct {
	File        string            `json:"file"`
	Size        int               `json:"size"`
	RootType    string            `json:"root_type"`
	RootOffset  int               `json:"root_offset"`
	ParentWidth uint8             `json:"parent_width"`
	ByteWidth   uint8             `json:"byte_width"`
	Len         *int              `json:"len,omitempty"`
	Refs        uint64            `json:"refs,omitempty"`
	MaxDepth    int               `json:"max_depth,omitempty"`
	ByType      map[string]uint64 `json:"by_type,omitempty"`
}

func runInfo(args []string) error {
	path := args[0]

	b, err := openFile(path, false)
	if err != nil {
		return err
	}
	defer b.Close()

	info, err := b.Info()
	if err != nil {
		return fmt.Errorf("failed to read root: %w", err)
	}
	res := infoResult{
		File:        path,
		Size:        info.Size,
		RootType:    info.RootType.String(),
		RootOffset:  info.RootOffset,
		ParentWidth: info.ParentWidth,
		ByteWidth:   info.ByteWidth,
	}
	if info.Len >= 0 {
		res.Len = &info.Len
	}

	if verbose {
		root, err := b.Root()
		if err != nil {
			return err
		}
		stats, err := walker.Count(root)
		if err != nil {
			return fmt.Errorf("failed to walk tree: %w", err)
		}
		Logger().Debug("walked", zap.Uint64("refs", stats.Total), zap.Int("max_depth", stats.MaxDepth))
		res.Refs = stats.Total
		res.MaxDepth = stats.MaxDepth
		res.ByType = make(map[string]uint64, len(stats.ByType))
		for t, n := range stats.ByType {
			res.ByType[t.String()] = n
		}
	}

	if jsonOut {
		return printJSON(res)
	}

	printInfo("\nBuffer Information:\n")
	printInfo("  File: %s\n", path)
	if res.Size < 1024 {
		printInfo("  Size: %d bytes\n", res.Size)
	} else if res.Size < 1024*1024 {
		printInfo("  Size: %.1f KB\n", float64(res.Size)/1024)
	} else {
		printInfo("  Size: %.1f MB\n", float64(res.Size)/(1024*1024))
	}
	printInfo("  Root: %s at offset %d\n", res.RootType, res.RootOffset)
	printInfo("  Widths: slot %d, data %d\n", res.ParentWidth, res.ByteWidth)
	if res.Len != nil {
		printInfo("  Entries: %d\n", *res.Len)
	}
	if verbose {
		printInfo("  Refs: %d (max depth %d)\n", res.Refs, res.MaxDepth)
	}
	return nil
}
