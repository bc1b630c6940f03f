package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ezrec/moo/chunk"
	"github.com/ezrec/moo/cpu"
	"github.com/ezrec/moo/internal/moobuild"
)

// testBody writes a TEST chunk with the given index and sub-chunks.
func testBody(b *moobuild.Builder, index uint32, fn func(b *moobuild.Builder)) {
	b.Chunk("TEST", func(b *moobuild.Builder) {
		b.U32(index)
		if fn != nil {
			fn(b)
		}
	})
}

func TestReadTest_Nop(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	b := &moobuild.Builder{}
	testBody(b, 0, func(b *moobuild.Builder) {
		b.Chunk("BYTS", func(b *moobuild.Builder) { b.Sized([]byte{0x90}) })
		b.Chunk("INIT", func(b *moobuild.Builder) {
			b.Chunk("REGS", func(b *moobuild.Builder) { b.Regs16(0x0001, 0x1234) })
		})
		b.Chunk("FINA", nil)
		b.Cycles()
	})

	cur := chunk.NewCursor(b.Bytes())
	test, err := ReadTest(cur)
	require.NoError(err)
	assert.Equal(cur.Len(), cur.Offset())

	assert.Equal([]byte{0x90}, test.Bytes)
	ax, err := test.Initial.Regs.Get(0)
	assert.NoError(err)
	assert.Equal(uint32(0x1234), ax)
	assert.False(test.Final.Regs.Has(0))
	assert.False(test.HasHash())
	assert.False(test.HasException())
	assert.Empty(test.Cycles)

	value, mask, ok := test.Expected(0)
	assert.True(ok)
	assert.Equal(uint32(0x1234), value)
	assert.Equal(^uint32(0), mask)
}

func TestReadTest_Full(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	hash := Hash{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

	b := &moobuild.Builder{}
	testBody(b, 7, func(b *moobuild.Builder) {
		b.Chunk("NAME", func(b *moobuild.Builder) { b.Sized([]byte("add al, 1")) })
		b.Chunk("BYTS", func(b *moobuild.Builder) { b.Sized([]byte{0x04, 0x01}) })
		b.Chunk("INIT", func(b *moobuild.Builder) {
			b.Chunk("RG32", func(b *moobuild.Builder) { b.Regs32(0x00000005, 0x10, 0x20) })
			b.Chunk("RAM ", func(b *moobuild.Builder) {
				b.U32(2).U32(0x400).U8(0x04).U32(0x401).U8(0x01)
			})
			b.Chunk("QUEU", func(b *moobuild.Builder) { b.Sized([]byte{0x04}) })
			b.Chunk("EA32", func(b *moobuild.Builder) {
				b.U8(2).U16(0x10).U32(0x1000).U32(0xffff).U32(0x20).U32(0x1020).U32(0x1020)
			})
		})
		b.Chunk("FINA", func(b *moobuild.Builder) {
			b.Chunk("RG32", func(b *moobuild.Builder) { b.Regs32(0x00000004, 0x21) })
			b.Chunk("RM32", func(b *moobuild.Builder) { b.Regs32(0x00000001, 0x0000fff0) })
		})
		b.Cycles(
			moobuild.Cycle{Pins0: 0x01, Address: 0x400, Segment: 2, Bus: 4, TState: 1},
			moobuild.Cycle{Pins0: 0x02, Address: 0x400, Memory: 0x04, Data: 0x0104, Bus: 7, TState: 3, QueueOp: 1, QueueByte: 0x04},
		)
		b.Chunk("EXCP", func(b *moobuild.Builder) { b.U8(6).U32(0x00000400) })
		b.Chunk("GMET", func(b *moobuild.Builder) { b.U64(12345).U16(3) })
		b.Chunk("HASH", func(b *moobuild.Builder) { b.Raw(hash[:]...) })
	})

	cur := chunk.NewCursor(b.Bytes())
	test, err := ReadTest(cur)
	require.NoError(err)

	assert.Equal(uint32(7), test.Index)
	assert.Equal("add al, 1", test.Name)
	assert.Equal(cpu.WIDTH_32, test.Width())
	assert.Equal([]RamEntry{{0x400, 0x04}, {0x401, 0x01}}, test.Initial.Ram)
	assert.True(test.Initial.HasQueue)
	assert.Equal([]byte{0x04}, test.Initial.Queue)
	assert.False(test.Final.HasQueue)
	require.NotNil(test.Initial.EffectiveAddress)
	assert.Equal(uint32(0x1020), test.Initial.EffectiveAddress.Physical)
	assert.Equal(uint16(0x10), test.Initial.EffectiveAddress.Selector)

	require.Len(test.Cycles, 2)
	assert.True(test.Cycles[0].ALE())
	assert.True(test.Cycles[0].BHE())
	assert.Equal(cpu.BUS_CODE, test.Cycles[0].Bus(cpu.FAMILY_80386))
	assert.Equal(uint16(0x0104), test.Cycles[1].DataBus)
	assert.True(test.Cycles[1].ReadingMemory())
	assert.False(test.Cycles[1].BHE())
	assert.Equal(uint8(0x04), test.Cycles[1].QueueByte)

	require.NotNil(test.Exception)
	assert.Equal(Exception{Number: 6, FlagAddress: 0x400}, *test.Exception)
	require.True(test.HasHash())
	assert.Equal(hash, *test.Hash)
	assert.Equal("0123456789ABCDEF000102030405060708090A0B", test.Hash.String())

	// Final present.
	value, _, ok := test.Expected(2)
	assert.True(ok)
	assert.Equal(uint32(0x21), value)

	// Final absent, masked: initial restricted to the mask.
	value, mask, ok := test.Expected(0)
	assert.True(ok)
	assert.Equal(uint32(0x0000fff0), mask)
	assert.Equal(uint32(0x10), value)
	assert.Equal(mask, test.Mask(0))
	assert.Equal(^uint32(0), test.Mask(2))
	assert.True(test.Check(0, 0x1f))
	assert.False(test.Check(0, 0x20))

	// Absent everywhere.
	_, _, ok = test.Expected(5)
	assert.False(ok)
	assert.True(test.Check(5, 0xdead))

	changes := test.Changed()
	assert.Equal([]Change{{Slot: 2, Name: "eax", Initial: 0x20, Final: 0x21}}, changes)
}

func TestReadTest_Seek(t *testing.T) {
	assert := assert.New(t)

	b := &moobuild.Builder{}
	b.Chunk("META", func(b *moobuild.Builder) { b.Raw(1, 2, 3) })
	b.Chunk("JUNK", nil)
	testBody(b, 3, nil)

	var skipped []chunk.Tag
	asm := &Assembler{
		OnSkip: func(h chunk.Header, body *chunk.Cursor) {
			skipped = append(skipped, h.Tag)
			assert.Equal(int(h.Length), body.Len())
		},
	}

	test, err := asm.ReadTest(chunk.NewCursor(b.Bytes()))
	assert.NoError(err)
	assert.Equal(uint32(3), test.Index)
	assert.Equal([]chunk.Tag{chunk.TAG_META, "JUNK"}, skipped)
}

func TestReadTest_Unknown(t *testing.T) {
	assert := assert.New(t)

	core, logs := observer.New(zap.DebugLevel)
	asm := &Assembler{Logger: zap.New(core)}

	b := &moobuild.Builder{}
	testBody(b, 1, func(b *moobuild.Builder) {
		b.Chunk("XTRA", func(b *moobuild.Builder) { b.Raw(0xff, 0xff) })
		// Recognized chunk with trailing padding.
		b.Chunk("BYTS", func(b *moobuild.Builder) { b.Sized([]byte{0xf4}).Raw(0, 0, 0) })
		b.Chunk("INIT", func(b *moobuild.Builder) {
			b.Chunk("REGX", func(b *moobuild.Builder) { b.Raw(1, 2, 3, 4) })
			b.Chunk("REGS", func(b *moobuild.Builder) { b.Regs16(0x1000, 0xf000).Raw(0xee) })
		})
	})

	test, err := asm.ReadTest(chunk.NewCursor(b.Bytes()))
	assert.NoError(err)
	assert.Equal([]byte{0xf4}, test.Bytes)
	assert.Equal(uint32(0xf000), test.Initial.Regs.Values[12])

	assert.Equal(1, logs.FilterMessage("unknown test chunk").Len())
	assert.Equal(1, logs.FilterMessage("skipping state chunk").Len())
}

func TestReadTest_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		fn   func(b *moobuild.Builder)
		err  error
	}){
		{"overrun", func(b *moobuild.Builder) {
			testBody(b, 0, func(b *moobuild.Builder) {
				b.Chunk("EXCP", func(b *moobuild.Builder) { b.U8(1) })
				b.Chunk("NAME", func(b *moobuild.Builder) { b.Sized(nil) })
			})
		}, chunk.ErrMisframed},
		{"short hash", func(b *moobuild.Builder) {
			testBody(b, 0, func(b *moobuild.Builder) {
				b.Chunk("HASH", func(b *moobuild.Builder) { b.Raw(1, 2, 3) })
			})
		}, chunk.ErrOutOfBounds},
		{"state overrun", func(b *moobuild.Builder) {
			testBody(b, 0, func(b *moobuild.Builder) {
				b.Chunk("INIT", func(b *moobuild.Builder) {
					b.Chunk("REGS", func(b *moobuild.Builder) { b.U16(0x0003).U16(1) })
					b.Chunk("QUEU", func(b *moobuild.Builder) { b.Sized(nil) })
				})
				b.Chunk("FINA", nil)
			})
		}, chunk.ErrMisframed},
		{"no test", func(b *moobuild.Builder) {
			b.Chunk("META", nil)
		}, chunk.ErrOutOfBounds},
		{"empty", func(b *moobuild.Builder) {}, chunk.ErrOutOfBounds},
		{"huge cycle count", func(b *moobuild.Builder) {
			testBody(b, 0, func(b *moobuild.Builder) {
				b.Chunk("CYCL", func(b *moobuild.Builder) { b.U32(0xffffffff).Raw(1, 2, 3) })
			})
		}, chunk.ErrOutOfBounds},
		{"huge ram count", func(b *moobuild.Builder) {
			testBody(b, 0, func(b *moobuild.Builder) {
				b.Chunk("INIT", func(b *moobuild.Builder) {
					b.Chunk("RAM ", func(b *moobuild.Builder) { b.U32(0x80000000).U32(0x100).U8(0x90) })
				})
			})
		}, chunk.ErrOutOfBounds},
		{"missing index", func(b *moobuild.Builder) {
			b.Chunk("TEST", func(b *moobuild.Builder) { b.U16(0) })
		}, chunk.ErrOutOfBounds},
	}

	for _, entry := range table {
		b := &moobuild.Builder{}
		entry.fn(b)
		test, err := ReadTest(chunk.NewCursor(b.Bytes()))
		assert.ErrorIs(err, entry.err, entry.name)
		assert.Nil(test, entry.name)
	}
}

func TestParseHash(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text string
		ok   bool
	}){
		{"0123456789abcdef0123456789ABCDEF01234567", true},
		{"0123456789abcdef0123456789ABCDEF0123456", false},
		{"0123456789abcdef0123456789ABCDEF0123456g", false},
		{"", false},
	}

	for _, entry := range table {
		hash, err := ParseHash(entry.text)
		if !entry.ok {
			assert.ErrorIs(err, ErrHashSyntax, entry.text)
			continue
		}
		assert.NoError(err)
		assert.Equal("0123456789ABCDEF0123456789ABCDEF01234567", hash.String())
	}
}

func TestFlagChanges(t *testing.T) {
	assert := assert.New(t)

	regs16 := func(flags uint32) Registers {
		r := Registers{Width: cpu.WIDTH_16, Bitmask: 1 << 13, Populated: true}
		r.Values[13] = flags
		return r
	}
	regs32 := func(eflags uint32) Registers {
		r := Registers{Width: cpu.WIDTH_32, Bitmask: 1 << 17, Populated: true}
		r.Values[17] = eflags
		return r
	}

	table := [](struct {
		name    string
		initial Registers
		final   Registers
		changes FlagChanges
	}){
		{"unchanged", regs16(0x0046), regs16(0x0046), FlagChanges{}},
		{"16-bit", regs16(0x0003), regs16(0x0842),
			FlagChanges{Set: []cpu.Flag{cpu.FLAG_ZF, cpu.FLAG_OF}, Cleared: []cpu.Flag{cpu.FLAG_CF}}},
		{"no final flags", regs16(0x0003), Registers{Width: cpu.WIDTH_16}, FlagChanges{}},
		{"no initial flags", Registers{Width: cpu.WIDTH_16}, regs16(0x0001),
			FlagChanges{Set: []cpu.Flag{cpu.FLAG_CF}}},
		{"32-bit", regs32(0x00020000), regs32(0x00200001),
			FlagChanges{Set: []cpu.Flag{cpu.FLAG_CF}, Cleared: []cpu.Flag{cpu.FLAG_VM}}},
	}

	for _, entry := range table {
		test := &Test{}
		test.Initial.Regs = entry.initial
		test.Final.Regs = entry.final
		assert.Equal(entry.changes, test.FlagChanges(), entry.name)
	}
}
