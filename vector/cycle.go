package vector

import (
	"fmt"

	"github.com/ezrec/moo/chunk"
	"github.com/ezrec/moo/cpu"
)

// Cycle is one sampled bus cycle.
type Cycle struct {
	Pins0        uint8
	AddressLatch uint32
	Segment      uint8
	MemoryStatus uint8
	IoStatus     uint8
	Pins1        uint8
	DataBus      uint16
	BusStatus    uint8
	TState       uint8
	QueueOp      uint8
	QueueByte    uint8
}

// CYCLE_SIZE is the on-disk size of one Cycle.
const CYCLE_SIZE = 15

// ReadCycles decodes a u32 count followed by that many cycles, in order.
func ReadCycles(cur *chunk.Cursor) (cycles []Cycle, err error) {
	count, err := cur.ReadU32()
	if err != nil {
		return
	}

	cycles = make([]Cycle, 0, cur.Capacity(count, CYCLE_SIZE))
	for range count {
		var cycle Cycle
		cycle, err = readCycle(cur)
		if err != nil {
			return
		}
		cycles = append(cycles, cycle)
	}

	return
}

func readCycle(cur *chunk.Cursor) (cycle Cycle, err error) {
	u8 := func(field *uint8) {
		if err == nil {
			*field, err = cur.ReadU8()
		}
	}

	u8(&cycle.Pins0)
	if err == nil {
		cycle.AddressLatch, err = cur.ReadU32()
	}
	u8(&cycle.Segment)
	u8(&cycle.MemoryStatus)
	u8(&cycle.IoStatus)
	u8(&cycle.Pins1)
	if err == nil {
		cycle.DataBus, err = cur.ReadU16()
	}
	u8(&cycle.BusStatus)
	u8(&cycle.TState)
	u8(&cycle.QueueOp)
	u8(&cycle.QueueByte)

	return
}

// ALE is the address latch enable pin.
func (cycle *Cycle) ALE() bool {
	return cycle.Pins0&cpu.PIN_ALE != 0
}

// BHE reports the bus high enable pin as active; it is active low.
func (cycle *Cycle) BHE() bool {
	return cycle.Pins0&cpu.PIN_BHE == 0
}

func (cycle *Cycle) Ready() bool {
	return cycle.Pins0&cpu.PIN_READY != 0
}

func (cycle *Cycle) Lock() bool {
	return cycle.Pins0&cpu.PIN_LOCK != 0
}

func (cycle *Cycle) ReadingMemory() bool {
	return cycle.MemoryStatus&cpu.MEM_MRDC != 0
}

func (cycle *Cycle) WritingMemory() bool {
	return cycle.MemoryStatus&cpu.MEM_MWTC != 0
}

func (cycle *Cycle) ReadingIo() bool {
	return cycle.IoStatus&cpu.IO_IORC != 0
}

func (cycle *Cycle) WritingIo() bool {
	return cycle.IoStatus&cpu.IO_IOWC != 0
}

// Bus decodes the bus status for a family.
func (cycle *Cycle) Bus(family cpu.Family) cpu.BusState {
	return family.BusStatus(cycle.BusStatus)
}

// Wait reports a wait state.
func (cycle *Cycle) Wait() bool {
	return cpu.TStateOf(cycle.TState) == cpu.T_W
}

// Describe renders the cycle as a single trace line.
func (cycle *Cycle) Describe(family cpu.Family) string {
	ale := ' '
	if cycle.ALE() {
		ale = 'A'
	}
	bhe := ' '
	if cycle.BHE() {
		bhe = 'B'
	}
	return fmt.Sprintf("%08X:%c%c %-2s M:%s I:%s D:%04X %-4s %-2s %s %02X",
		cycle.AddressLatch, ale, bhe,
		cpu.Segment(cycle.Segment),
		cpu.Strobes(cycle.MemoryStatus), cpu.Strobes(cycle.IoStatus),
		cycle.DataBus,
		cycle.Bus(family),
		family.TStateName(cycle.TState),
		cpu.QueueOp(cycle.QueueOp),
		cycle.QueueByte)
}
