package container

import (
	"strings"

	"github.com/ezrec/moo/chunk"
	"github.com/ezrec/moo/cpu"
)

// Metadata is the optional "META" chunk describing a whole test set.
type Metadata struct {
	SetMajor  uint8
	SetMinor  uint8
	CpuType   cpu.Type
	Opcode    uint32
	Mnemonic  string
	TestCount uint32
	Seed      uint64
	FlagMask  uint32
}

// METADATA_SIZE is the minimum body size of a META chunk.
const METADATA_SIZE = 1 + 1 + 1 + 4 + 8 + 4 + 8 + 4

// ReadMetadata decodes a META body.
func ReadMetadata(cur *chunk.Cursor) (meta *Metadata, err error) {
	var out Metadata
	var cpuType uint8

	u8 := func(field *uint8) {
		if err == nil {
			*field, err = cur.ReadU8()
		}
	}
	u32 := func(field *uint32) {
		if err == nil {
			*field, err = cur.ReadU32()
		}
	}

	u8(&out.SetMajor)
	u8(&out.SetMinor)
	u8(&cpuType)
	u32(&out.Opcode)
	if err != nil {
		return
	}

	mnemonic, err := cur.ReadBytes(8)
	if err != nil {
		return
	}
	out.Mnemonic = strings.TrimSpace(strings.TrimRight(string(mnemonic), "\x00"))

	u32(&out.TestCount)
	if err == nil {
		out.Seed, err = cur.ReadU64()
	}
	u32(&out.FlagMask)
	if err != nil {
		return
	}

	out.CpuType = cpu.Type(cpuType)
	meta = &out

	return
}
