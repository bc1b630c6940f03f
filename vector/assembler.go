// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package vector

import (
	"go.uber.org/zap"

	"github.com/ezrec/moo/chunk"
	"github.com/ezrec/moo/cpu"
)

// Assembler builds Test records from a chunk stream.
type Assembler struct {
	Logger *zap.Logger

	// OnSkip, if set, sees every chunk passed over while seeking a TEST
	// chunk, with a cursor over its body.
	OnSkip func(h chunk.Header, body *chunk.Cursor)
}

func (asm *Assembler) logger() *zap.Logger {
	if asm == nil || asm.Logger == nil {
		return zap.NewNop()
	}
	return asm.Logger
}

// ReadTest decodes the next test record, skipping any other chunks before
// it. The cursor is left at the end of the TEST chunk.
func ReadTest(cur *chunk.Cursor) (test *Test, err error) {
	return (*Assembler)(nil).ReadTest(cur)
}

// ReadState decodes the state sub-chunks up to end.
func ReadState(cur *chunk.Cursor, end int) (state State, err error) {
	return (*Assembler)(nil).ReadState(cur, end)
}

// ReadTest decodes the next test record, skipping any other chunks before
// it. The cursor is left at the end of the TEST chunk.
func (asm *Assembler) ReadTest(cur *chunk.Cursor) (test *Test, err error) {
	var h chunk.Header

	// Seek.
	for {
		h, err = cur.ReadHeader()
		if err != nil {
			return
		}
		if h.Tag == chunk.TAG_TEST {
			break
		}
		asm.logger().Debug("skipping chunk",
			zap.String("tag", h.Tag.String()),
			zap.Int("offset", h.Start),
			zap.Uint32("length", h.Length))
		if asm != nil && asm.OnSkip != nil {
			asm.OnSkip(h, cur.Body(h))
		}
		err = cur.Skip(h)
		if err != nil {
			return
		}
	}

	// Body.
	result := &Test{}
	err = cur.Enter(h, func() (err error) {
		result.Index, err = cur.ReadU32()
		if err != nil {
			return
		}
		return cur.Walk(h.End, func(sub chunk.Header) error {
			return asm.readTestChunk(cur, sub, result)
		})
	})
	if err != nil {
		return
	}

	test = result

	return
}

func (asm *Assembler) readTestChunk(cur *chunk.Cursor, h chunk.Header, test *Test) (err error) {
	switch h.Tag {
	case chunk.TAG_NAME:
		var name []byte
		name, err = cur.ReadSized()
		test.Name = string(name)
	case chunk.TAG_BYTES:
		test.Bytes, err = cur.ReadSized()
	case chunk.TAG_INIT:
		test.Initial, err = asm.ReadState(cur, h.End)
	case chunk.TAG_FINAL:
		test.Final, err = asm.ReadState(cur, h.End)
	case chunk.TAG_CYCLES:
		test.Cycles, err = ReadCycles(cur)
	case chunk.TAG_EXCEPTION:
		var exception Exception
		exception.Number, err = cur.ReadU8()
		if err != nil {
			return
		}
		exception.FlagAddress, err = cur.ReadU32()
		if err != nil {
			return
		}
		test.Exception = &exception
	case chunk.TAG_HASH:
		var data []byte
		data, err = cur.ReadBytes(HASH_SIZE)
		if err != nil {
			return
		}
		var hash Hash
		copy(hash[:], data)
		test.Hash = &hash
	case chunk.TAG_GMET:
		// Generator metadata is not retained.
	default:
		asm.logger().Warn("unknown test chunk",
			zap.Uint32("test", test.Index),
			zap.String("tag", h.Tag.String()),
			zap.Int("offset", h.Start),
			zap.Uint32("length", h.Length))
	}

	return
}

// ReadState decodes the state sub-chunks up to end.
func (asm *Assembler) ReadState(cur *chunk.Cursor, end int) (state State, err error) {
	err = cur.Walk(end, func(h chunk.Header) (err error) {
		switch h.Tag {
		case chunk.TAG_REGS:
			state.Regs, err = ReadRegisters(cur, cpu.WIDTH_16)
		case chunk.TAG_RG32:
			state.Regs, err = ReadRegisters(cur, cpu.WIDTH_32)
		case chunk.TAG_RMSK:
			state.Masks, err = ReadRegisters(cur, cpu.WIDTH_16)
		case chunk.TAG_RM32:
			state.Masks, err = ReadRegisters(cur, cpu.WIDTH_32)
		case chunk.TAG_RAM:
			state.Ram, err = ReadRam(cur)
		case chunk.TAG_QUEUE:
			state.Queue, err = cur.ReadSized()
			state.HasQueue = err == nil
		case chunk.TAG_EA32:
			state.EffectiveAddress, err = ReadEffectiveAddress(cur)
		default:
			asm.logger().Debug("skipping state chunk",
				zap.String("tag", h.Tag.String()),
				zap.Int("offset", h.Start))
		}
		return
	})

	return
}
