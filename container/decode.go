// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package container

import (
	"go.uber.org/zap"

	"github.com/ezrec/moo/chunk"
	"github.com/ezrec/moo/vector"
)

// Decoder turns container bytes into a File.
type Decoder struct {
	Logger *zap.Logger
}

// Decode a complete container held in memory.
func Decode(data []byte) (file *File, err error) {
	return (&Decoder{}).Decode(data)
}

func (dec *Decoder) logger() *zap.Logger {
	if dec.Logger == nil {
		return zap.NewNop()
	}
	return dec.Logger
}

// Decode a complete container held in memory. Any read past the end of
// data is fatal; no partial File is returned.
func (dec *Decoder) Decode(data []byte) (file *File, err error) {
	log := dec.logger()
	cur := chunk.NewCursor(data)

	h, err := cur.ReadHeader()
	if err != nil {
		return
	}
	if h.Tag != chunk.TAG_MOO {
		err = &ErrInvalidContainer{Tag: h.Tag}
		return
	}

	out := &File{}
	err = cur.Enter(h, func() (err error) {
		out.header, err = ReadHeader(cur)
		return
	})
	if err != nil {
		return
	}

	log = log.With(zap.String("cpu", out.header.CpuType.String()))

	asm := &vector.Assembler{
		Logger: log,
		OnSkip: func(h chunk.Header, body *chunk.Cursor) {
			if h.Tag != chunk.TAG_META {
				return
			}
			meta, err := ReadMetadata(body)
			if err != nil {
				log.Warn("ignoring metadata", zap.Int("offset", h.Start), zap.Error(err))
				return
			}
			out.metadata = meta
		},
	}

	out.tests = make([]*vector.Test, 0, cur.Capacity(out.header.TestCount, chunk.HEADER_SIZE))
	out.index = make(map[vector.Hash]int)

	for range out.header.TestCount {
		var test *vector.Test
		test, err = asm.ReadTest(cur)
		if err != nil {
			return
		}

		position := len(out.tests)
		out.tests = append(out.tests, test)

		if test.Hash == nil {
			continue
		}
		if earlier, ok := out.index[*test.Hash]; ok {
			log.Warn("duplicate test hash",
				zap.Stringer("hash", test.Hash),
				zap.Int("earlier", earlier),
				zap.Int("later", position))
		}
		out.index[*test.Hash] = position
	}

	file = out

	return
}
