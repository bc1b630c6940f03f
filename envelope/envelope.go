// Package envelope removes the transport compression around container
// files. The compression is found by its magic bytes, not by file name.
package envelope

import (
	"bytes"
	"compress/gzip"
	"io"
	"io/fs"
	"os"

	"github.com/ulikunitz/xz"
)

// Kind of envelope around a container.
type Kind int

const (
	KIND_RAW  = Kind(0) // raw
	KIND_GZIP = Kind(1) // gzip
	KIND_XZ   = Kind(2) // xz
)

var kindNames = [...]string{"raw", "gzip", "xz"}

func (kind Kind) String() string {
	if kind < 0 || int(kind) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[kind]
}

var (
	MAGIC_GZIP = []byte{0x1f, 0x8b}
	MAGIC_XZ   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// Sniff identifies the envelope of data.
func Sniff(data []byte) Kind {
	switch {
	case bytes.HasPrefix(data, MAGIC_GZIP):
		return KIND_GZIP
	case bytes.HasPrefix(data, MAGIC_XZ):
		return KIND_XZ
	}
	return KIND_RAW
}

// Unwrap returns the container bytes inside data. Raw data is returned as is.
func Unwrap(data []byte) (out []byte, kind Kind, err error) {
	kind = Sniff(data)

	var reader io.Reader
	switch kind {
	case KIND_GZIP:
		var gz *gzip.Reader
		gz, err = gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			err = &ErrEnvelope{Kind: kind, Err: err}
			return
		}
		defer gz.Close()
		reader = gz
	case KIND_XZ:
		reader, err = xz.NewReader(bytes.NewReader(data))
		if err != nil {
			err = &ErrEnvelope{Kind: kind, Err: err}
			return
		}
	default:
		out = data
		return
	}

	out, err = io.ReadAll(reader)
	if err != nil {
		out = nil
		err = &ErrEnvelope{Kind: kind, Err: err}
	}

	return
}

// Read loads all of file and unwraps it.
func Read(file io.Reader) (out []byte, kind Kind, err error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return
	}

	return Unwrap(data)
}

// ReadFile loads and unwraps the file at path.
func ReadFile(path string) (out []byte, kind Kind, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	return Unwrap(data)
}

// ReadFS loads and unwraps a file from a file system.
func ReadFS(filesys fs.FS, name string) (out []byte, kind Kind, err error) {
	data, err := fs.ReadFile(filesys, name)
	if err != nil {
		return
	}

	return Unwrap(data)
}
