package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"fluo/internal/diagfmt"
	"fluo/internal/driver"
	"fluo/internal/ui"
)

var expandCmd = &cobra.Command{
	Use:   "expand [flags] file.fl|dir",
	Short: "Expand syntax extensions and print core-language output",
	Long: `Expand parses the input, lowers every syntax-extension invocation to
core-language code and prints the canonical result. Given a directory,
every *.fl file inside is expanded as an independent compilation unit.`,
	Args: cobra.ExactArgs(1),
	RunE: runExpand,
}

func init() {
	expandCmd.Flags().Bool("no-cache", false, "bypass the expansion disk cache")
	expandCmd.Flags().Int("jobs", 0, "parallel workers for directory mode (0 = GOMAXPROCS)")
	expandCmd.Flags().Bool("progress", false, "show interactive progress in directory mode")
}

func runExpand(cmd *cobra.Command, args []string) error {
	target := args[0]

	opts := driver.ExpandOptions{
		MaxDiagnostics:    maxDiagnostics(cmd),
		AllowKeywordNames: manifestAllowsKeywordNames(target),
	}
	if noCache, _ := cmd.Flags().GetBool("no-cache"); !noCache {
		// недоступный кеш не повод падать
		if cache, err := driver.OpenDiskCache("fluo"); err == nil {
			opts.Cache = cache
		}
	}

	info, err := os.Stat(target)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return runExpandDir(cmd, target, opts)
	}
	return runExpandFile(cmd, target, opts)
}

func runExpandFile(cmd *cobra.Command, path string, opts driver.ExpandOptions) error {
	res, err := driver.Expand(path, opts)
	if err != nil {
		return fmt.Errorf("expansion failed: %w", err)
	}

	reportExpandDiagnostics(cmd, res)
	if res.Failed {
		return fmt.Errorf("expansion failed")
	}

	fmt.Fprint(os.Stdout, res.Output)
	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings {
		fmt.Fprintf(os.Stderr, "%s: %s\n", path, res.Timing)
	}
	return nil
}

func runExpandDir(cmd *cobra.Command, dir string, opts driver.ExpandOptions) error {
	jobs, _ := cmd.Flags().GetInt("jobs")

	progress, _ := cmd.Flags().GetBool("progress")
	if progress && isTerminal(os.Stdout) {
		return runExpandDirProgress(cmd, dir, opts, jobs)
	}

	results, err := driver.ExpandDir(context.Background(), dir, opts, jobs)
	if err != nil {
		return err
	}
	return reportExpandDirResults(cmd, results)
}

type expandDirOutcome struct {
	results []driver.ExpandDirResult
	err     error
}

// runExpandDirProgress гоняет разворачивание под bubbletea-моделью:
// пайплайн шлёт события в канал, пока UI крутится рядом. Сами
// результаты печатаются после выхода из интерактивного режима.
func runExpandDirProgress(cmd *cobra.Command, dir string, opts driver.ExpandOptions, jobs int) error {
	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return err
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan expandDirOutcome, 1)
	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		results, err := driver.ExpandDir(context.Background(), dir, optsCopy, jobs)
		outcomeCh <- expandDirOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("expanding "+dir, files, events)
	_, uiErr := tea.NewProgram(model, tea.WithOutput(os.Stdout)).Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return uiErr
	}
	if outcome.err != nil {
		return outcome.err
	}
	return reportExpandDirResults(cmd, outcome.results)
}

func reportExpandDirResults(cmd *cobra.Command, results []driver.ExpandDirResult) error {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	showTimings, _ := cmd.Root().PersistentFlags().GetBool("timings")

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
			continue
		}
		reportExpandDiagnostics(cmd, r.Result)
		if r.Result.Failed {
			failed++
			continue
		}
		if !quiet {
			fmt.Fprintf(os.Stdout, "// %s\n%s\n", r.Path, r.Result.Output)
		}
		if showTimings {
			fmt.Fprintf(os.Stderr, "%s: %s\n", r.Path, r.Result.Timing)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

func reportExpandDiagnostics(cmd *cobra.Command, res *driver.ExpandResult) {
	if res == nil || res.Parse == nil || res.Parse.Bag.Len() == 0 {
		return
	}
	res.Parse.Bag.Sort()
	diagfmt.Pretty(os.Stderr, res.Parse.Bag, res.Parse.FileSet, diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		ShowNotes: true,
	})
}
