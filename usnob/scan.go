package usnob

import (
	"path/filepath"
	"sync"

	"github.com/alitto/pond"
)

// FileResult carries one .cat file's decoded stars or its open/read error,
// so a directory-wide scan can report per-file failure without aborting
// the rest of the batch.
type FileResult struct {
	Path  string
	Stars []*Star
	Err   error
}

// ScanDir walks dir for *.cat files and decodes each one, fanning the
// per-file work out across a bounded pond worker pool. Parallelism is
// strictly at the file level: each file's own records are still decoded
// serially and delivered as one ordered batch, so per-record order within
// a file is unaffected by which worker happens to finish first.
func ScanDir(dir string, workers int) ([]FileResult, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.cat"))
	if err != nil {
		return nil, err
	}

	if workers < 1 {
		workers = 1
	}

	pool := pond.New(workers, 0, pond.MinWorkers(workers))
	defer pool.StopAndWait()

	results := make([]FileResult, len(matches))
	var wg sync.WaitGroup
	wg.Add(len(matches))

	for i, path := range matches {
		i, path := i, path
		pool.Submit(func() {
			defer wg.Done()
			results[i] = decodeFile(path)
		})
	}

	wg.Wait()
	return results, nil
}

func decodeFile(path string) FileResult {
	f, err := Open(path)
	if err != nil {
		return FileResult{Path: path, Err: err}
	}
	defer f.Close()

	stars, err := f.All()
	return FileResult{Path: path, Stars: stars, Err: err}
}
