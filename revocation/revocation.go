// Package revocation loads the list of test hashes withdrawn from use.
//
// The list is text, one hash per line as 40 hex digits. Blank lines and
// lines starting with '#' are ignored, as is any line that is not exactly
// 40 characters long after trimming. A 40 character line that is not hex
// is an error.
package revocation

import (
	"bufio"
	"io"
	"io/fs"
	"iter"
	"os"
	"strings"

	"github.com/ezrec/moo/container"
	"github.com/ezrec/moo/vector"
)

// Set of revoked hashes. A Set is not modified after loading.
type Set struct {
	hashes map[vector.Hash]struct{}
}

// Load reads a revocation list.
func Load(file io.Reader) (set *Set, err error) {
	out := &Set{hashes: map[vector.Hash]struct{}{}}

	reader := bufio.NewReader(file)
	lineno := 0
	for {
		text, err_read := reader.ReadString('\n')
		if err_read != nil && err_read != io.EOF {
			err = err_read
			return
		}
		if len(text) == 0 && err_read == io.EOF {
			break
		}

		lineno++
		line := strings.TrimSpace(text)
		if len(line) == vector.HASH_SIZE*2 && !strings.HasPrefix(line, "#") {
			var hash vector.Hash
			hash, err = vector.ParseHash(line)
			if err != nil {
				err = &ErrEntry{LineNo: lineno, Line: line}
				return
			}
			out.hashes[hash] = struct{}{}
		}

		if err_read == io.EOF {
			break
		}
	}

	set = out

	return
}

// LoadFile reads a revocation list from a path.
func LoadFile(path string) (set *Set, err error) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	return Load(file)
}

// LoadFS reads a revocation list from a file system.
func LoadFS(filesys fs.FS, name string) (set *Set, err error) {
	file, err := filesys.Open(name)
	if err != nil {
		return
	}
	defer file.Close()

	return Load(file)
}

// Len is the number of revoked hashes.
func (set *Set) Len() int {
	if set == nil {
		return 0
	}
	return len(set.hashes)
}

// Contains reports whether hash is revoked.
func (set *Set) Contains(hash vector.Hash) (ok bool) {
	if set == nil {
		return
	}
	_, ok = set.hashes[hash]
	return
}

// IsRevoked reports whether the test's hash is revoked. Tests without a
// hash are never revoked.
func (set *Set) IsRevoked(test *vector.Test) bool {
	if test == nil || test.Hash == nil {
		return false
	}
	return set.Contains(*test.Hash)
}

// Accepted yields the tests of file that are not revoked, with their
// positions.
func (set *Set) Accepted(file *container.File) iter.Seq2[int, *vector.Test] {
	return func(yield func(int, *vector.Test) bool) {
		for n, test := range file.All() {
			if set.IsRevoked(test) {
				continue
			}
			if !yield(n, test) {
				return
			}
		}
	}
}

// Revoked yields the tests of file that are revoked, with their positions.
func (set *Set) Revoked(file *container.File) iter.Seq2[int, *vector.Test] {
	return func(yield func(int, *vector.Test) bool) {
		for n, test := range file.All() {
			if !set.IsRevoked(test) {
				continue
			}
			if !yield(n, test) {
				return
			}
		}
	}
}
