package pack

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
)

// FileDescriptor describes one regular file discovered by the Analyzer.
// Descriptors are immutable once returned from AnalyzeDirectory.
type FileDescriptor struct {
	Path          string `json:"path"`                 // absolute path on disk
	RelPath       string `json:"relative_path"`        // root-relative, slash-separated
	Size          int64  `json:"size"`                 // raw size in bytes
	EstimatedSize int64  `json:"estimated_compressed"` // estimator output
	Extension     string `json:"extension"`            // lowercase, with leading dot
}

// Warning records a file that could not be analyzed. Warnings are
// recoverable: the file is excluded from the result and the scan continues.
type Warning struct {
	Path string
	Err  error
}

func (w Warning) String() string {
	return fmt.Sprintf("could not analyze %s: %v", w.Path, w.Err)
}

// Analyzer walks a directory tree and produces one FileDescriptor per
// readable regular file, using an Estimator for the size predictions.
type Analyzer struct {
	est Estimator
}

// NewAnalyzer creates an Analyzer using the given Estimator.
func NewAnalyzer(est Estimator) Analyzer {
	return Analyzer{est: est}
}

type statWorkerData struct {
	path string
	rel  string
}

func statWorker(est Estimator, in <-chan statWorkerData, out chan<- FileDescriptor, warns chan<- Warning, wg *sync.WaitGroup) {
	defer wg.Done()

	for d := range in {
		info, err := os.Stat(d.path)
		if err != nil {
			warns <- Warning{Path: d.path, Err: err}
			continue
		}
		ext := strings.ToLower(filepath.Ext(d.path))
		out <- FileDescriptor{
			Path:          d.path,
			RelPath:       d.rel,
			Size:          info.Size(),
			EstimatedSize: est.Estimate(ext, info.Size()),
			Extension:     ext,
		}
	}
}

// AnalyzeDirectory recursively enumerates the regular files under root and
// returns one descriptor per readable file. Symlinks and directories are
// skipped. Files whose metadata cannot be read are reported as Warnings and
// excluded; they never abort the scan.
//
// Stat calls run on a small worker pool, so descriptors are sorted by
// relative path before returning. Callers always see the same order for the
// same tree regardless of scan completion order.
func (a Analyzer) AnalyzeDirectory(root string) ([]FileDescriptor, []Warning, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return nil, nil, err
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrExpectedDirectory, root)
	}

	descChan := make(chan FileDescriptor, runtime.NumCPU())
	warnChan := make(chan Warning, runtime.NumCPU())
	workChan := make(chan statWorkerData, runtime.NumCPU())
	var wg sync.WaitGroup

	wg.Add(runtime.NumCPU())
	for range runtime.NumCPU() {
		go statWorker(a.est, workChan, descChan, warnChan, &wg)
	}

	// Walker feeds the pool. Entries that fail to enumerate become warnings
	// rather than aborting the walk.
	go func() {
		defer close(workChan)
		filepath.WalkDir(root, func(subpath string, d fs.DirEntry, err error) error {
			if err != nil {
				warnChan <- Warning{Path: subpath, Err: err}
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			rel, err := filepath.Rel(root, subpath)
			if err != nil {
				warnChan <- Warning{Path: subpath, Err: err}
				return nil
			}
			workChan <- statWorkerData{path: subpath, rel: filepath.ToSlash(rel)}
			return nil
		})
	}()

	go func() {
		wg.Wait()
		close(descChan)
		close(warnChan)
	}()

	var (
		descs []FileDescriptor
		warns []Warning
	)
	for descChan != nil || warnChan != nil {
		select {
		case d, ok := <-descChan:
			if !ok {
				descChan = nil
				continue
			}
			descs = append(descs, d)
		case w, ok := <-warnChan:
			if !ok {
				warnChan = nil
				continue
			}
			warns = append(warns, w)
		}
	}

	sort.Slice(descs, func(i, j int) bool { return descs[i].RelPath < descs[j].RelPath })
	sort.Slice(warns, func(i, j int) bool { return warns[i].Path < warns[j].Path })
	return descs, warns, nil
}
