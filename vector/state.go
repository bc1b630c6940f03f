package vector

import (
	"github.com/ezrec/moo/chunk"
)

// RamEntry is one byte of memory at an address.
type RamEntry struct {
	Address uint32
	Value   uint8
}

// EffectiveAddress is the operand address computed for an instruction.
type EffectiveAddress struct {
	Segment  uint8
	Selector uint16
	Base     uint32
	Limit    uint32
	Offset   uint32
	Linear   uint32
	Physical uint32
}

// State is one machine snapshot, before or after an instruction.
type State struct {
	Regs             Registers
	Masks            Registers // don't-care masks, Populated when present
	Ram              []RamEntry
	Queue            []byte
	HasQueue         bool
	EffectiveAddress *EffectiveAddress
}

// RAM_ENTRY_SIZE is the on-disk size of one RamEntry.
const RAM_ENTRY_SIZE = 5

// ReadRam decodes a u32 count followed by that many address/value pairs.
func ReadRam(cur *chunk.Cursor) (ram []RamEntry, err error) {
	count, err := cur.ReadU32()
	if err != nil {
		return
	}

	ram = make([]RamEntry, 0, cur.Capacity(count, RAM_ENTRY_SIZE))
	for range count {
		var entry RamEntry
		entry.Address, err = cur.ReadU32()
		if err != nil {
			return
		}
		entry.Value, err = cur.ReadU8()
		if err != nil {
			return
		}
		ram = append(ram, entry)
	}

	return
}

// ReadEffectiveAddress decodes an EA32 body.
func ReadEffectiveAddress(cur *chunk.Cursor) (ea *EffectiveAddress, err error) {
	var out EffectiveAddress

	out.Segment, err = cur.ReadU8()
	if err != nil {
		return
	}
	out.Selector, err = cur.ReadU16()
	if err != nil {
		return
	}
	for _, field := range []*uint32{&out.Base, &out.Limit, &out.Offset, &out.Linear, &out.Physical} {
		*field, err = cur.ReadU32()
		if err != nil {
			return
		}
	}

	ea = &out
	return
}

// Memory returns the value recorded for address, latest entry first.
func (state *State) Memory(address uint32) (value uint8, ok bool) {
	for n := len(state.Ram) - 1; n >= 0; n-- {
		if state.Ram[n].Address == address {
			return state.Ram[n].Value, true
		}
	}
	return
}
