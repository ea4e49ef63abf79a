package driver

import (
	"time"

	"fluo/internal/format"
	"fluo/internal/source"
)

type ExpandOptions struct {
	MaxDiagnostics    int
	AllowKeywordNames bool
	// Cache, когда не nil, позволяет пропустить разбор неизменённого
	// файла целиком.
	Cache *DiskCache
	// Progress, когда не nil, получает события по ходу пайплайна.
	Progress ProgressSink
}

func (o *ExpandOptions) emit(path string, stage Stage, status Status) {
	if o.Progress != nil {
		o.Progress.OnEvent(Event{File: path, Stage: stage, Status: status})
	}
}

type ExpandResult struct {
	Parse  *ParseResult // nil при попадании в кеш
	Output string
	Cached bool
	Failed bool
	Timing Timings
}

// Expand is the main pipeline: parse the file, lowering every extension
// invocation inline, then print the canonical core-language output.
func Expand(path string, opts ExpandOptions) (*ExpandResult, error) {
	start := time.Now()
	opts.emit(path, StageLoad, StatusWorking)
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		opts.emit(path, StageLoad, StatusError)
		return nil, err
	}
	file := fs.Get(fileID)
	loadDur := time.Since(start)

	if opts.Cache != nil {
		var payload DiskPayload
		if hit, err := opts.Cache.Get(file.Hash, &payload); err == nil && hit &&
			payload.AllowKeywordNames == opts.AllowKeywordNames {
			opts.emit(path, StagePrint, StatusCached)
			return &ExpandResult{
				Output: payload.Output,
				Cached: true,
				Timing: Timings{Load: loadDur},
			}, nil
		}
	}

	start = time.Now()
	opts.emit(path, StageExpand, StatusWorking)
	parsed := parseLoaded(fs, file, ParseOptions{
		MaxDiagnostics:    opts.MaxDiagnostics,
		AllowKeywordNames: opts.AllowKeywordNames,
	})
	expandDur := time.Since(start)

	res := &ExpandResult{
		Parse:  parsed,
		Failed: parsed.Failed || parsed.Bag.HasErrors(),
		Timing: Timings{Load: loadDur, Expand: expandDur},
	}
	if res.Failed {
		opts.emit(path, StageExpand, StatusError)
		return res, nil
	}

	start = time.Now()
	opts.emit(path, StagePrint, StatusWorking)
	res.Output = format.NewPrinter(parsed.Builder).File(parsed.FileID)
	res.Timing.Print = time.Since(start)

	if opts.Cache != nil {
		// ошибка записи кеша не должна ломать компиляцию
		_ = opts.Cache.Put(file.Hash, &DiskPayload{
			Schema:            diskCacheSchemaVersion,
			AllowKeywordNames: opts.AllowKeywordNames,
			Output:            res.Output,
		})
	}
	opts.emit(path, StagePrint, StatusDone)
	return res, nil
}
