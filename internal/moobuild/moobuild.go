// Package moobuild assembles MOO container bytes for tests.
package moobuild

import (
	"encoding/binary"
)

// Builder appends little-endian fields to a byte buffer.
type Builder struct {
	buf []byte
}

// Bytes returns the assembled buffer.
func (b *Builder) Bytes() []byte {
	return b.buf
}

func (b *Builder) U8(v uint8) *Builder {
	b.buf = append(b.buf, v)
	return b
}

func (b *Builder) U16(v uint16) *Builder {
	b.buf = binary.LittleEndian.AppendUint16(b.buf, v)
	return b
}

func (b *Builder) U32(v uint32) *Builder {
	b.buf = binary.LittleEndian.AppendUint32(b.buf, v)
	return b
}

func (b *Builder) U64(v uint64) *Builder {
	b.buf = binary.LittleEndian.AppendUint64(b.buf, v)
	return b
}

func (b *Builder) Raw(data ...byte) *Builder {
	b.buf = append(b.buf, data...)
	return b
}

// Sized writes a u32 length followed by data.
func (b *Builder) Sized(data []byte) *Builder {
	return b.U32(uint32(len(data))).Raw(data...)
}

// Chunk writes tag, a u32 length, and the body produced by fn.
func (b *Builder) Chunk(tag string, fn func(b *Builder)) *Builder {
	b.buf = append(b.buf, tag[:4]...)
	at := len(b.buf)
	b.U32(0)
	if fn != nil {
		fn(b)
	}
	binary.LittleEndian.PutUint32(b.buf[at:], uint32(len(b.buf)-at-4))
	return b
}

// Header writes a "MOO " chunk.
func (b *Builder) Header(major, minor uint8, count uint32, cpu string) *Builder {
	return b.Chunk("MOO ", func(b *Builder) {
		b.U8(major).U8(minor).U16(0).U32(count).Raw([]byte(cpu[:4])...)
	})
}

// Regs16 writes a 16-bit register body: the mask, then the values in
// ascending bit order.
func (b *Builder) Regs16(mask uint16, values ...uint16) *Builder {
	b.U16(mask)
	for _, v := range values {
		b.U16(v)
	}
	return b
}

// Regs32 writes a 32-bit register body.
func (b *Builder) Regs32(mask uint32, values ...uint32) *Builder {
	b.U32(mask)
	for _, v := range values {
		b.U32(v)
	}
	return b
}

// Cycle is one 15-byte bus cycle record.
type Cycle struct {
	Pins0     uint8
	Address   uint32
	Segment   uint8
	Memory    uint8
	Io        uint8
	Pins1     uint8
	Data      uint16
	Bus       uint8
	TState    uint8
	QueueOp   uint8
	QueueByte uint8
}

// Cycles writes a CYCL chunk.
func (b *Builder) Cycles(cycles ...Cycle) *Builder {
	return b.Chunk("CYCL", func(b *Builder) {
		b.U32(uint32(len(cycles)))
		for _, c := range cycles {
			b.U8(c.Pins0).U32(c.Address).U8(c.Segment).U8(c.Memory).U8(c.Io)
			b.U8(c.Pins1).U16(c.Data).U8(c.Bus).U8(c.TState).U8(c.QueueOp).U8(c.QueueByte)
		}
	})
}

// Nop returns the bytes of a one-test 8088 container: BYTS [0x90], INIT with
// ax=0x1234, an empty FINA, no cycles, and no hash.
func Nop() []byte {
	b := &Builder{}
	b.Header(1, 0, 1, "8088")
	b.Chunk("TEST", func(b *Builder) {
		b.U32(0)
		b.Chunk("NAME", func(b *Builder) { b.Sized([]byte("nop")) })
		b.Chunk("BYTS", func(b *Builder) { b.Sized([]byte{0x90}) })
		b.Chunk("INIT", func(b *Builder) {
			b.Chunk("REGS", func(b *Builder) { b.Regs16(0x0001, 0x1234) })
		})
		b.Chunk("FINA", nil)
		b.Cycles()
	})
	return b.Bytes()
}
