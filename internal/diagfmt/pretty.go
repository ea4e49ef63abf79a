package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"fluo/internal/diag"
	"fluo/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printOne(w, &d, fs, opts)
	}
}

func printOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	start, _ := fs.Resolve(d.Primary)
	file := fs.Get(d.Primary.File)

	sev := severityLabel(d.Severity)
	code := d.Code.ID()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
		code = color.New(color.Bold).Sprint(code)
	}

	fmt.Fprintf(w, "%s:%d:%d: %s[%s]: %s\n",
		displayPath(file.Path, opts.PathMode), start.Line, start.Col, sev, code, d.Message)

	printSourceLine(w, file, fs, d.Primary, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			nStart, _ := fs.Resolve(note.Span)
			nFile := fs.Get(note.Span.File)
			fmt.Fprintf(w, "%s:%d:%d: note: %s\n",
				displayPath(nFile.Path, opts.PathMode), nStart.Line, nStart.Col, note.Msg)
		}
	}
}

// printSourceLine печатает строку исходника и ^~~~ под спаном.
// Ширина подчёркивания считается в терминальных колонках, не в байтах,
// чтобы каретка не уезжала на не-ASCII строках.
func printSourceLine(w io.Writer, f *source.File, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	start, end := fs.Resolve(sp)
	line := f.GetLine(start.Line)
	if line == "" && sp.Len() > 0 {
		return
	}
	line = strings.ReplaceAll(line, "\t", "    ")

	fmt.Fprintf(w, "    %s\n", line)

	byteCol := int(start.Col) - 1
	if byteCol > len(line) {
		byteCol = len(line)
	}
	pad := runewidth.StringWidth(expandTabs(line[:byteCol]))

	markerLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		spanEnd := int(end.Col) - 1
		if spanEnd > len(line) {
			spanEnd = len(line)
		}
		markerLen = runewidth.StringWidth(line[byteCol:spanEnd])
		if markerLen < 1 {
			markerLen = 1
		}
	}

	marker := "^" + strings.Repeat("~", markerLen-1)
	if opts.Color {
		marker = color.New(color.FgHiRed, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", pad), marker)
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}

func severityLabel(s diag.Severity) string {
	switch s {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "info"
	}
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return color.New(color.FgHiRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgHiYellow, color.Bold)
	default:
		return color.New(color.FgHiBlue)
	}
}

func displayPath(path string, mode PathMode) string {
	switch mode {
	case PathModeBasename:
		return filepath.Base(path)
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return path
	default:
		return path
	}
}
