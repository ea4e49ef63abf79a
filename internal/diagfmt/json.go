package diagfmt

import (
	"encoding/json"
	"io"

	"fluo/internal/diag"
	"fluo/internal/source"
)

type jsonPos struct {
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

type jsonNote struct {
	Message string      `json:"message"`
	Span    source.Span `json:"span"`
}

type jsonDiag struct {
	Severity string      `json:"severity"`
	Code     string      `json:"code"`
	Message  string      `json:"message"`
	Path     string      `json:"path"`
	Span     source.Span `json:"span"`
	Start    *jsonPos    `json:"start,omitempty"`
	End      *jsonPos    `json:"end,omitempty"`
	Notes    []jsonNote  `json:"notes,omitempty"`
}

// JSON сериализует диагностики для редакторов и CI.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	out := make([]jsonDiag, 0, bag.Len())
	for _, d := range bag.Items() {
		if opts.Max > 0 && len(out) >= opts.Max {
			break
		}
		file := fs.Get(d.Primary.File)
		jd := jsonDiag{
			Severity: severityLabel(d.Severity),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Path:     displayPath(file.Path, opts.PathMode),
			Span:     d.Primary,
		}
		if opts.IncludePositions {
			start, end := fs.Resolve(d.Primary)
			jd.Start = &jsonPos{Line: start.Line, Col: start.Col}
			jd.End = &jsonPos{Line: end.Line, Col: end.Col}
		}
		if opts.IncludeNotes {
			for _, note := range d.Notes {
				jd.Notes = append(jd.Notes, jsonNote{Message: note.Msg, Span: note.Span})
			}
		}
		out = append(out, jd)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
