package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fluo/internal/diagfmt"
	"fluo/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.fl",
	Short: "Parse a fluo source file and dump the lowered AST",
	Long: `Parse builds the AST for a fluo source file. Syntax extensions are
registered and lowered during the parse, so the dumped tree contains
only core-language constructs.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree)")
}

func runParse(cmd *cobra.Command, args []string) error {
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

	diagfmt.DumpAST(os.Stdout, result.Builder, result.FileID)
	return nil
}
