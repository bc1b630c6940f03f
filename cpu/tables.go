package cpu

import (
	"fmt"
	"strings"
)

var registerNames16 = []string{
	"ax", "bx", "cx", "dx", "cs", "ss", "ds", "es",
	"sp", "bp", "si", "di", "ip", "flags",
}

var registerNames32 = []string{
	"cr0", "cr3", "eax", "ebx", "ecx", "edx", "esi", "edi", "ebp", "esp",
	"cs", "ds", "es", "fs", "gs", "ss", "eip", "eflags", "dr6", "dr7",
}

// RegisterNames is the bit position to name table for a register width.
func RegisterNames(width Width) []string {
	if width == WIDTH_32 {
		return registerNames32
	}
	return registerNames16
}

// RegisterName names the register at bit position slot. Unnamed positions
// are reported as "r<slot>".
func RegisterName(width Width, slot int) string {
	names := RegisterNames(width)
	if slot >= 0 && slot < len(names) {
		return names[slot]
	}
	return fmt.Sprintf("r%d", slot)
}

// RegisterSlot finds the bit position of a register name, case-insensitive.
func RegisterSlot(width Width, name string) (slot int, ok bool) {
	name = strings.ToLower(name)
	for n, reg := range RegisterNames(width) {
		if reg == name {
			return n, true
		}
	}
	return
}

// BusState is a decoded bus status code.
type BusState int

const (
	BUS_INTA = BusState(0) // INTA
	BUS_IOR  = BusState(1) // IOR
	BUS_IOW  = BusState(2) // IOW
	BUS_HALT = BusState(3) // HALT
	BUS_CODE = BusState(4) // CODE
	BUS_MEMR = BusState(5) // MEMR
	BUS_MEMW = BusState(6) // MEMW
	BUS_PASV = BusState(7) // PASV
)

var busStateNames = [...]string{
	BUS_INTA: "INTA",
	BUS_IOR:  "IOR",
	BUS_IOW:  "IOW",
	BUS_HALT: "HALT",
	BUS_CODE: "CODE",
	BUS_MEMR: "MEMR",
	BUS_MEMW: "MEMW",
	BUS_PASV: "PASV",
}

func (state BusState) String() string {
	if state < 0 || int(state) >= len(busStateNames) {
		return "----"
	}
	return busStateNames[state]
}

var busTable8086 = [8]BusState{
	BUS_INTA, BUS_IOR, BUS_IOW, BUS_HALT, BUS_CODE, BUS_MEMR, BUS_MEMW, BUS_PASV,
}

var busTable286 = [16]BusState{
	0x0: BUS_INTA, 0x1: BUS_PASV, 0x2: BUS_PASV, 0x3: BUS_PASV,
	0x4: BUS_HALT, 0x5: BUS_MEMR, 0x6: BUS_MEMW, 0x7: BUS_PASV,
	0x8: BUS_PASV, 0x9: BUS_IOR, 0xa: BUS_IOW, 0xb: BUS_PASV,
	0xc: BUS_PASV, 0xd: BUS_CODE, 0xe: BUS_PASV, 0xf: BUS_PASV,
}

var busTable386 = [8]BusState{
	BUS_INTA, BUS_PASV, BUS_IOR, BUS_IOW, BUS_CODE, BUS_HALT, BUS_MEMR, BUS_MEMW,
}

// BusStatus decodes a raw cycle bus status byte for a family.
func (family Family) BusStatus(status uint8) BusState {
	switch family {
	case FAMILY_80286:
		return busTable286[status&0x0f]
	case FAMILY_80386:
		return busTable386[status&0x07]
	}
	return busTable8086[status&0x07]
}

// TState is a bus cycle timing state.
type TState int

const (
	T_I = TState(0) // Ti
	T_1 = TState(1) // T1
	T_2 = TState(2) // T2
	T_3 = TState(3) // T3
	T_4 = TState(4) // T4
	T_W = TState(5) // Tw
)

var tStateNames = [...]string{"Ti", "T1", "T2", "T3", "T4", "Tw"}

// The 80286 calls its first two active states Ts and Tc.
var tStateNames286 = [...]string{"Ti", "Ts", "Tc", "T?", "T?", "Tw"}

// TStateOf decodes a raw T-state byte. Unknown values decode as Ti.
func TStateOf(raw uint8) TState {
	state := TState(raw & 0x07)
	if state > T_W {
		return T_I
	}
	return state
}

// TStateName names a raw T-state byte for a family.
func (family Family) TStateName(raw uint8) string {
	state := TStateOf(raw)
	if family == FAMILY_80286 {
		return tStateNames286[state]
	}
	return tStateNames[state]
}

// QueueOp is a prefetch queue operation recorded on a cycle.
type QueueOp int

const (
	QUEUE_IDLE     = QueueOp(0) // -
	QUEUE_FIRST    = QueueOp(1) // F
	QUEUE_FLUSH    = QueueOp(2) // E
	QUEUE_SUBSEQ   = QueueOp(3) // S
	QUEUE_OP_COUNT = 4
)

var queueOpNames = [QUEUE_OP_COUNT]string{"-", "F", "E", "S"}

func (op QueueOp) String() string {
	return queueOpNames[op&3]
}

// Segment names the segment status of a cycle.
func Segment(status uint8) string {
	switch status {
	case 0:
		return "ES"
	case 1:
		return "SS"
	case 2:
		return "CS"
	case 3:
		return "DS"
	}
	return "--"
}

// EffectiveSegment names the segment of an effective address record.
func EffectiveSegment(segment uint8) string {
	return [...]string{"CS", "SS", "DS", "ES", "FS", "GS", "-BAD-", "-BAD-"}[segment&0x07]
}
