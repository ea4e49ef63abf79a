package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fluo/internal/diagfmt"
	"fluo/internal/driver"
	"fluo/internal/format"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] file.fl",
	Short: "Print a fluo source file in canonical form",
	Long: `Fmt parses the file and prints it back in canonical form. Syntax
extensions are lowered in the output, so the result is core language
only.`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "verify the printed output parses back to the same tree")
}

func runFmt(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	result, err := driver.Parse(filePath, driver.ParseOptions{
		MaxDiagnostics:    maxDiagnostics(cmd),
		AllowKeywordNames: manifestAllowsKeywordNames(filePath),
	})
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
	}
	if result.Failed || result.Bag.HasErrors() {
		return fmt.Errorf("parsing failed")
	}

	if check, _ := cmd.Flags().GetBool("check"); check {
		ok, msg := format.CheckRoundTrip(result.FileSet, result.Builder, result.FileID, filePath)
		fmt.Fprintln(os.Stderr, msg)
		if !ok {
			return fmt.Errorf("round-trip check failed")
		}
		return nil
	}

	fmt.Fprint(os.Stdout, format.NewPrinter(result.Builder).File(result.FileID))
	return nil
}
