package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/joshuapare/flexkit/flexb/verify"
	"github.com/joshuapare/flexkit/flexb/walker"
)

var verifyMaxDepth int

func init() {
	cmd := newVerifyCmd()
	cmd.Flags().IntVar(&verifyMaxDepth, "max-depth", walker.DefaultMaxDepth, "Maximum container nesting to accept")
	rootCmd.AddCommand(cmd)
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <file>",
		Short: "Verify buffer structure",
		Long: `The verify command decodes every value reachable from the root and checks
the invariants lookups rely on: container extents, map key widths, strictly
ascending keys, string terminators and blob lengths.

Example:
  flexbctl verify data.flexb
  flexbctl verify data.flexb --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args)
		},
	}
	return cmd
}

func runVerify(args []string) error {
	path := args[0]

	printVerbose("Verifying file: %s\n", path)

	b, err := openFile(path, false)
	if err != nil {
		return err
	}
	defer b.Close()

	err = verify.Trailer(b.Bytes())
	if err == nil {
		opts := walker.DefaultOptions()
		opts.MaxDepth = verifyMaxDepth
		err = verify.Tree(b.Bytes(), opts)
	}

	result := map[string]any{
		"file":  path,
		"valid": err == nil,
	}
	var verr *verify.ValidationError
	if errors.As(err, &verr) {
		result["error"] = verr.Message
		result["check"] = verr.Type
		if verr.Offset >= 0 {
			result["offset"] = verr.Offset
		}
		if p, ok := verr.Details["path"]; ok {
			result["path"] = p
		}
		Logger().Debug("verify failed", zap.String("check", verr.Type), zap.Int("offset", verr.Offset))
	}

	if jsonOut {
		if encErr := printJSON(result); encErr != nil {
			return encErr
		}
		return err
	}

	printInfo("\nVerifying %s...\n\n", path)
	if err != nil {
		printInfo("  ✗ %v\n", err)
		if p, ok := result["path"]; ok {
			printInfo("  at path %q\n", p)
		}
		printInfo("\nResult: ✗ INVALID\n")
		return fmt.Errorf("verification failed: %w", err)
	}
	printInfo("  ✓ Trailer valid\n")
	printInfo("  ✓ All values decode\n")
	printInfo("  ✓ Map keys sorted\n")
	printInfo("\nResult: ✓ VALID\n")
	return nil
}
