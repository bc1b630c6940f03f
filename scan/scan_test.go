package scan

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ezrec/moo/chunk"
	"github.com/ezrec/moo/container"
	"github.com/ezrec/moo/envelope"
	"github.com/ezrec/moo/internal/moobuild"
	"github.com/ezrec/moo/vector"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func hashed(index uint32, seed byte) []byte {
	hash := vector.Hash{}
	for n := range hash {
		hash[n] = seed
	}

	b := &moobuild.Builder{}
	b.Header(1, 1, 1, "V30 ")
	b.Chunk("TEST", func(b *moobuild.Builder) {
		b.U32(index)
		b.Chunk("HASH", func(b *moobuild.Builder) { b.Raw(hash[:]...) })
	})
	return b.Bytes()
}

func gzipped(t *testing.T, data []byte) []byte {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func sampleFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"a/00.moo":       &fstest.MapFile{Data: hashed(0, 0xaa)},
		"a/01.MOO.gz":    &fstest.MapFile{Data: gzipped(t, hashed(1, 0xbb))},
		"b/02.moo":       &fstest.MapFile{Data: hashed(2, 0xbb)},
		"b/broken.moo":   &fstest.MapFile{Data: []byte("MOO \x10\x00\x00\x00")},
		"c/readme.txt":   &fstest.MapFile{Data: []byte("not a container")},
		"c/03.moo.bak":   &fstest.MapFile{Data: hashed(3, 0xcc)},
		"c/03.moo.xz.gz": &fstest.MapFile{Data: hashed(3, 0xcc)},
	}
}

func TestFromFS(t *testing.T) {
	assert := assert.New(t)

	ws, err := FromFS(sampleFS(t), "")
	assert.NoError(err)
	assert.Equal([]string{"a/00.moo", "a/01.MOO.gz", "b/02.moo", "b/broken.moo"}, ws.Paths)
	assert.Equal(4, ws.Len())

	ws, err = FromFS(sampleFS(t), `\.txt$`)
	assert.NoError(err)
	assert.Equal([]string{"c/readme.txt"}, ws.Paths)

	_, err = FromFS(sampleFS(t), `(`)
	assert.Error(err)
}

func TestEach(t *testing.T) {
	assert := assert.New(t)

	ws, err := FromFS(sampleFS(t), "")
	require.NoError(t, err)

	var paths []string
	kinds := map[string]envelope.Kind{}
	failed := 0
	sc := &Scanner{Workers: 2}
	err = sc.Each(context.Background(), ws, func(result Result) error {
		paths = append(paths, result.Path)
		kinds[result.Path] = result.Kind
		if result.Err != nil {
			failed++
			assert.ErrorIs(result.Err, chunk.ErrOutOfBounds, result.Path)
		}
		return nil
	})
	assert.NoError(err)

	sort.Strings(paths)
	assert.Equal(ws.Paths, paths)
	assert.Equal(envelope.KIND_GZIP, kinds["a/01.MOO.gz"])
	assert.Equal(1, failed)
}

func TestEach_Stop(t *testing.T) {
	assert := assert.New(t)

	ws, err := FromFS(sampleFS(t), "")
	require.NoError(t, err)

	stop := errors.New("stop")
	calls := 0
	sc := &Scanner{Workers: 1}
	err = sc.Each(context.Background(), ws, func(result Result) error {
		calls++
		return stop
	})
	assert.ErrorIs(err, stop)
	assert.Equal(1, calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = sc.Each(ctx, ws, func(result Result) error { return nil })
	assert.ErrorIs(err, context.Canceled)
}

func TestFind(t *testing.T) {
	assert := assert.New(t)

	ws, err := FromFS(sampleFS(t), "")
	require.NoError(t, err)

	var hash vector.Hash
	for n := range hash {
		hash[n] = 0xbb
	}

	sc := &Scanner{Workers: 4}
	match, summary, err := sc.Find(context.Background(), ws, hash)
	require.NoError(t, err)
	assert.Equal("a/01.MOO.gz", match.Path)
	assert.Equal(0, match.Position)
	assert.Equal(uint32(1), match.Test.Index)
	assert.Equal(Summary{Searched: 4, Errors: 1}, summary)

	hash[0] = 0
	match, summary, err = sc.Find(context.Background(), ws, hash)
	assert.ErrorIs(err, container.ErrNotFound)
	assert.Nil(match)
	assert.Equal(4, summary.Searched)
}

func TestOpen(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "x.moo"), hashed(0, 1), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.bin"), hashed(0, 2), 0644))

	ws, err := Open(dir, "")
	assert.NoError(err)
	assert.Equal([]string{"sub/x.moo"}, ws.Paths)

	// A single file is used whatever its name.
	ws, err = Open(filepath.Join(dir, "other.bin"), "")
	assert.NoError(err)
	assert.Equal([]string{"other.bin"}, ws.Paths)

	sc := &Scanner{}
	result := sc.Load(ws, "other.bin")
	assert.NoError(result.Err)
	assert.Equal(1, result.File.Len())

	_, err = Open(filepath.Join(dir, "missing"), "")
	assert.ErrorIs(err, os.ErrNotExist)
}
