package vector

import (
	"github.com/ezrec/moo/cpu"
)

// Exception raised by the reference execution of a test.
type Exception struct {
	Number      uint8
	FlagAddress uint32
}

// Test is one recorded instruction execution.
type Test struct {
	Index     uint32
	Name      string
	Bytes     []byte
	Initial   State
	Final     State
	Cycles    []Cycle
	Exception *Exception
	Hash      *Hash
}

// Change is a register whose expected final value differs from its initial one.
type Change struct {
	Slot    int
	Name    string
	Initial uint32
	Final   uint32
}

func (test *Test) HasHash() bool {
	return test.Hash != nil
}

func (test *Test) HasException() bool {
	return test.Exception != nil
}

// Width of the registers recorded by the test.
func (test *Test) Width() cpu.Width {
	for _, regs := range []*Registers{&test.Initial.Regs, &test.Final.Regs} {
		if regs.Populated {
			return regs.Width
		}
	}
	return cpu.WIDTH_16
}

// Expected resolves the value a register must hold after the test, and the
// mask of bits that are significant.
//
// A final value wins when present. Otherwise the initial value carries
// over, restricted to the final mask when the final state masks that
// register. The mask is all ones unless the final state masks the register.
func (test *Test) Expected(slot int) (value uint32, mask uint32, ok bool) {
	mask = ^uint32(0)
	final_mask, masked := test.Final.Masks.Lookup(slot)
	if masked {
		mask = final_mask
	}

	value, ok = test.Final.Regs.Lookup(slot)
	if ok {
		return
	}

	value, ok = test.Initial.Regs.Lookup(slot)
	if ok && masked {
		value &= mask
	}

	return
}

// Mask of the significant bits of a register after the test.
func (test *Test) Mask(slot int) uint32 {
	_, mask, _ := test.Expected(slot)
	return mask
}

// Check compares an observed register value against the expected value
// under its mask. Registers with no expectation always match.
func (test *Test) Check(slot int, actual uint32) bool {
	value, mask, ok := test.Expected(slot)
	if !ok {
		return true
	}
	return actual&mask == value&mask
}

// Changed lists the registers whose final value is present and differs
// from the initial one, in slot order.
func (test *Test) Changed() (changes []Change) {
	for slot, final := range test.Final.Regs.All() {
		initial, ok := test.Initial.Regs.Lookup(slot)
		if ok && initial == final {
			continue
		}
		changes = append(changes, Change{
			Slot:    slot,
			Name:    test.Final.Regs.Name(slot),
			Initial: initial,
			Final:   final,
		})
	}
	return
}

// FlagChanges lists the flags a test set and cleared.
type FlagChanges struct {
	Set     []cpu.Flag
	Cleared []cpu.Flag
}

// FlagChanges compares the final flags register against the initial one.
// A test whose final state omits the flags register changes no flags; an
// initial state without one counts as all clear.
func (test *Test) FlagChanges() (changes FlagChanges) {
	slot := cpu.FlagSlot(test.Width())

	final, ok := test.Final.Regs.Lookup(slot)
	if !ok {
		return
	}
	initial, _ := test.Initial.Regs.Lookup(slot)

	diff := initial ^ final
	for bit := range 32 {
		if diff&(1<<bit) == 0 {
			continue
		}
		flag, known := cpu.FlagOf(bit)
		if !known {
			continue
		}
		if final&flag.Mask() != 0 {
			changes.Set = append(changes.Set, flag)
		} else {
			changes.Cleared = append(changes.Cleared, flag)
		}
	}

	return
}
