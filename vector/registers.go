package vector

import (
	"iter"
	"math/bits"

	"github.com/ezrec/moo/chunk"
	"github.com/ezrec/moo/cpu"
)

// Registers is a sparse register file. Slot n holds a value only when bit n
// of Bitmask is set.
type Registers struct {
	Width     cpu.Width
	Bitmask   uint32
	Values    [32]uint32
	Populated bool
}

// ReadRegisters decodes a bitmask of the given width, then one value of that
// width for each set bit, lowest bit first.
func ReadRegisters(cur *chunk.Cursor, width cpu.Width) (regs Registers, err error) {
	size := width.Bytes()

	mask, err := cur.ReadUint(size)
	if err != nil {
		return
	}

	regs.Width = width
	regs.Bitmask = uint32(mask)

	for slot := range width.Slots() {
		if !regs.Has(slot) {
			continue
		}
		var value uint64
		value, err = cur.ReadUint(size)
		if err != nil {
			return
		}
		regs.Values[slot] = uint32(value)
	}

	regs.Populated = true

	return
}

// Has reports whether slot carries a value.
func (regs *Registers) Has(slot int) bool {
	if slot < 0 || slot >= 32 {
		return false
	}
	return regs.Bitmask&(1<<slot) != 0
}

// Lookup returns the value at slot, if present.
func (regs *Registers) Lookup(slot int) (value uint32, ok bool) {
	if !regs.Has(slot) {
		return
	}
	return regs.Values[slot], true
}

// Get returns the value at slot, or an ErrRegister wrapping
// ErrRegisterAbsent.
func (regs *Registers) Get(slot int) (value uint32, err error) {
	value, ok := regs.Lookup(slot)
	if !ok {
		err = &ErrRegister{Width: regs.width(), Slot: slot}
	}
	return
}

// Count is the number of populated slots.
func (regs *Registers) Count() int {
	return bits.OnesCount32(regs.Bitmask)
}

// Name of the register at slot.
func (regs *Registers) Name(slot int) string {
	return cpu.RegisterName(regs.width(), slot)
}

// All yields the populated slots in ascending order.
func (regs *Registers) All() iter.Seq2[int, uint32] {
	return func(yield func(int, uint32) bool) {
		for slot := range 32 {
			if !regs.Has(slot) {
				continue
			}
			if !yield(slot, regs.Values[slot]) {
				return
			}
		}
	}
}

func (regs *Registers) width() cpu.Width {
	if regs.Width == 0 {
		return cpu.WIDTH_16
	}
	return regs.Width
}
