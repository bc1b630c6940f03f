package cpu

// Flag is a bit position in the flags (16-bit) or eflags (32-bit) register.
type Flag int

const (
	FLAG_CF         = Flag(0)  // CF
	FLAG_RESERVED1  = Flag(1)  // R1
	FLAG_PF         = Flag(2)  // PF
	FLAG_RESERVED3  = Flag(3)  // R3
	FLAG_AF         = Flag(4)  // AF
	FLAG_RESERVED5  = Flag(5)  // R5
	FLAG_ZF         = Flag(6)  // ZF
	FLAG_SF         = Flag(7)  // SF
	FLAG_TF         = Flag(8)  // TF
	FLAG_IF         = Flag(9)  // IF
	FLAG_DF         = Flag(10) // DF
	FLAG_OF         = Flag(11) // OF
	FLAG_IOPL0      = Flag(12) // IOPL0
	FLAG_IOPL1      = Flag(13) // IOPL1
	FLAG_NT         = Flag(14) // NT
	FLAG_RESERVED15 = Flag(15) // R15
	FLAG_RF         = Flag(16) // RF
	FLAG_VM         = Flag(17) // VM
	FLAG_COUNT      = 18
)

var flagNames = [FLAG_COUNT]string{
	"CF", "R1", "PF", "R3", "AF", "R5", "ZF", "SF",
	"TF", "IF", "DF", "OF", "IOPL0", "IOPL1", "NT", "R15",
	"RF", "VM",
}

// FlagOf names bit position bit, if it is a known flag.
func FlagOf(bit int) (flag Flag, ok bool) {
	if bit < 0 || bit >= FLAG_COUNT {
		return
	}
	return Flag(bit), true
}

func (flag Flag) String() string {
	if flag < 0 || flag >= FLAG_COUNT {
		return "?"
	}
	return flagNames[flag]
}

// Mask is the flag's bit in the flags register.
func (flag Flag) Mask() uint32 {
	return 1 << uint(flag)
}

// FlagSlot is the register slot holding the flags for a width.
func FlagSlot(width Width) int {
	name := "flags"
	if width == WIDTH_32 {
		name = "eflags"
	}
	slot, _ := RegisterSlot(width, name)
	return slot
}
