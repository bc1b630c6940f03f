package container

import (
	"iter"

	"github.com/ezrec/moo/vector"
)

// File is a decoded container: its header, its tests in file order, and
// an index from test hash to position. A File is not modified after
// decoding and is safe for concurrent readers.
type File struct {
	header   Header
	metadata *Metadata
	tests    []*vector.Test
	index    map[vector.Hash]int
}

func (file *File) Header() Header {
	return file.header
}

// Metadata returns the META chunk, if the container carried one.
func (file *File) Metadata() (meta *Metadata, ok bool) {
	return file.metadata, file.metadata != nil
}

// Len is the number of tests.
func (file *File) Len() int {
	return len(file.tests)
}

// Test at position n.
func (file *File) Test(n int) *vector.Test {
	return file.tests[n]
}

// All yields each test with its position.
func (file *File) All() iter.Seq2[int, *vector.Test] {
	return func(yield func(int, *vector.Test) bool) {
		for n, test := range file.tests {
			if !yield(n, test) {
				return
			}
		}
	}
}

// Lookup finds the test with the given hash. When several tests share a
// hash, the last one in the file is found.
func (file *File) Lookup(hash vector.Hash) (test *vector.Test, position int, err error) {
	position, ok := file.index[hash]
	if !ok {
		err = ErrNotFound
		position = -1
		return
	}

	test = file.tests[position]

	return
}

// Hashes yields each indexed hash with its position.
func (file *File) Hashes() iter.Seq2[vector.Hash, int] {
	return func(yield func(vector.Hash, int) bool) {
		for hash, position := range file.index {
			if !yield(hash, position) {
				return
			}
		}
	}
}
