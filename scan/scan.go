// Package scan decodes many container files at once.
//
// A WorkingSet names the container files under a directory. A Scanner
// decodes them concurrently with a bounded number of workers. A file that
// cannot be read or decoded is reported and counted; it does not stop the
// scan.
package scan

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ezrec/moo/container"
	"github.com/ezrec/moo/envelope"
	"github.com/ezrec/moo/vector"
)

// PATTERN_DEFAULT matches container file names, compressed or not.
const PATTERN_DEFAULT = `(?i)\.moo(\.gz|\.xz)?$`

// WorkingSet is a sorted list of container files in a file system.
type WorkingSet struct {
	FS    fs.FS
	Paths []string
}

// FromFS collects the files of filesys whose names match pattern.
func FromFS(filesys fs.FS, pattern string) (ws *WorkingSet, err error) {
	if pattern == "" {
		pattern = PATTERN_DEFAULT
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return
	}

	out := &WorkingSet{FS: filesys}
	err = fs.WalkDir(filesys, ".", func(path string, d fs.DirEntry, err_in error) (err error) {
		if err_in != nil {
			return err_in
		}
		if d.IsDir() {
			return
		}
		if !re.MatchString(d.Name()) {
			return
		}
		out.Paths = append(out.Paths, path)
		return
	})
	if err != nil {
		return
	}

	slices.Sort(out.Paths)
	ws = out

	return
}

// Open builds a working set from a directory, or from a single file
// whatever its name.
func Open(path string, pattern string) (ws *WorkingSet, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}

	if info.IsDir() {
		return FromFS(os.DirFS(path), pattern)
	}

	ws = &WorkingSet{
		FS:    os.DirFS(filepath.Dir(path)),
		Paths: []string{filepath.Base(path)},
	}

	return
}

// Len is the number of files in the set.
func (ws *WorkingSet) Len() int {
	return len(ws.Paths)
}

// Result of decoding one file.
type Result struct {
	Path string
	Kind envelope.Kind
	File *container.File
	Err  error
}

// Scanner decodes the files of a working set.
type Scanner struct {
	Logger  *zap.Logger
	Workers int // at most this many files in flight; zero uses GOMAXPROCS
}

func (sc *Scanner) logger() *zap.Logger {
	if sc.Logger == nil {
		return zap.NewNop()
	}
	return sc.Logger
}

// Load reads and decodes one file of the set.
func (sc *Scanner) Load(ws *WorkingSet, path string) (result Result) {
	result.Path = path

	data, kind, err := envelope.ReadFS(ws.FS, path)
	result.Kind = kind
	if err != nil {
		result.Err = err
		return
	}

	dec := &container.Decoder{Logger: sc.logger().With(zap.String("path", path))}
	result.File, result.Err = dec.Decode(data)

	return
}

// Each decodes every file of the set and hands each result to fn, one at
// a time, in completion order. An error from fn or a cancelled ctx stops
// the scan.
func (sc *Scanner) Each(ctx context.Context, ws *WorkingSet, fn func(result Result) error) error {
	workers := sc.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var lock sync.Mutex
	for _, path := range ws.Paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			result := sc.Load(ws, path)
			if result.Err != nil {
				sc.logger().Warn("unreadable container",
					zap.String("path", path),
					zap.Error(result.Err))
			}

			lock.Lock()
			defer lock.Unlock()
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(result)
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	return err
}

// Match is a test found by a scan.
type Match struct {
	Path     string
	Position int
	File     *container.File
	Test     *vector.Test
}

// Summary counts the files visited by a scan.
type Summary struct {
	Searched int
	Errors   int
}

// Find looks for a test by hash across the set. When several files hold
// the hash, the match from the first file in path order is returned.
func (sc *Scanner) Find(ctx context.Context, ws *WorkingSet, hash vector.Hash) (match *Match, summary Summary, err error) {
	order := map[string]int{}
	for n, path := range ws.Paths {
		order[path] = n
	}

	err = sc.Each(ctx, ws, func(result Result) error {
		summary.Searched++
		if result.Err != nil {
			summary.Errors++
			return nil
		}

		test, position, err := result.File.Lookup(hash)
		if err != nil {
			return nil
		}

		if match != nil && order[match.Path] < order[result.Path] {
			return nil
		}
		match = &Match{
			Path:     result.Path,
			Position: position,
			File:     result.File,
			Test:     test,
		}
		return nil
	})
	if err != nil {
		match = nil
		return
	}

	if match == nil {
		err = container.ErrNotFound
	}

	return
}
