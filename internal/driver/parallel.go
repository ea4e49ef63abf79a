package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ExpandDirResult содержит результат разворачивания одного файла.
type ExpandDirResult struct {
	Path   string
	Result *ExpandResult
	Err    error // ошибка I/O; диагностики лежат в Result.Parse.Bag
}

// ListSourceFiles возвращает отсортированный список всех *.fl файлов.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".fl") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// детерминированный порядок
	sort.Strings(files)
	return files, nil
}

// ExpandDir разворачивает все *.fl файлы в директории параллельно.
// Каждый файл — отдельная единица компиляции со своим реестром правил,
// поэтому файлы независимы и порядок исполнения не важен.
// opts.Progress, если задан, получает события по мере работы горутин.
func ExpandDir(ctx context.Context, dir string, opts ExpandOptions, jobs int) ([]ExpandDirResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]ExpandDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, err := Expand(path, opts)
			results[i] = ExpandDirResult{Path: path, Result: res, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
