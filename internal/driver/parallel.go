package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"availspec/internal/diag"
	"availspec/internal/parser"
	"availspec/internal/source"
)

// ParseDirResult is the outcome for a single file of a directory run.
type ParseDirResult struct {
	Path   string
	FileID source.FileID
	Result *ParseResult
	Bag    *diag.Bag
	// CacheHit marks results replayed from the disk cache without a parse.
	CacheHit bool
}

// ListAvailFiles returns a sorted list of all *.avail files under dir.
func ListAvailFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".avail") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// deterministic order regardless of walk internals
	sort.Strings(files)
	return files, nil
}

// ParseDirOptions configures a directory run.
type ParseDirOptions struct {
	Grammar        parser.Grammar
	MaxDiagnostics int
	Jobs           int // <=0 means GOMAXPROCS
	Cache          *DiskCache
}

// ParseDir parses every *.avail file under dir in parallel. Results come
// back in path order. A file that fails to load still yields a result whose
// bag carries the I/O error, so one unreadable file cannot sink the run.
func ParseDir(ctx context.Context, dir string, opts ParseDirOptions) (*source.FileSet, []ParseDirResult, error) {
	files, err := ListAvailFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// preload sequentially: the FileSet is append-only and the workers
	// below only read it
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			// an empty stand-in keeps the I/O diagnostic's span resolvable
			fileIDs[path] = fileSet.AddVirtual(path, nil)
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]ParseDirResult, len(files))

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

			fileID := fileIDs[path]
			if loadErr, hadError := loadErrors[path]; hadError {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: fileID},
					"failed to load file: "+loadErr.Error()))
				results[i] = ParseDirResult{Path: path, FileID: fileID, Bag: bag}
				return nil
			}

			results[i] = parseOne(fileSet, fileID, path, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// parseOne runs the pipeline for one preloaded file, going through the disk
// cache when one is configured.
func parseOne(fileSet *source.FileSet, fileID source.FileID, path string, opts ParseDirOptions) ParseDirResult {
	file := fileSet.Get(fileID)

	if opts.Cache != nil {
		key := cacheKey(file.Hash, opts.Grammar)
		var payload CachePayload
		if ok, err := opts.Cache.Get(key, &payload); err == nil && ok {
			if bag := payload.replay(fileID, opts.MaxDiagnostics); bag != nil {
				return ParseDirResult{
					Path:     path,
					FileID:   fileID,
					Bag:      bag,
					CacheHit: true,
				}
			}
		}
	}

	res := parseFile(fileSet, fileID, opts.Grammar, opts.MaxDiagnostics)

	if opts.Cache != nil {
		key := cacheKey(file.Hash, opts.Grammar)
		// best effort: a cache write failure never fails the run
		_ = opts.Cache.Put(key, newCachePayload(path, opts.Grammar, res.Bag))
	}

	return ParseDirResult{
		Path:   path,
		FileID: fileID,
		Result: res,
		Bag:    res.Bag,
	}
}
