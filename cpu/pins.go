package cpu

const (
	// Pins0 bits of a cycle.
	PIN_ALE   = 0x01 // address latch enable, active high
	PIN_BHE   = 0x02 // bus high enable, active low
	PIN_READY = 0x04
	PIN_LOCK  = 0x08

	// Memory status bits of a cycle.
	MEM_MRDC = 0x04 // read
	MEM_AMWC = 0x02 // advanced write
	MEM_MWTC = 0x01 // write

	// I/O status bits of a cycle.
	IO_IORC  = 0x04 // read
	IO_AIOWC = 0x02 // advanced write
	IO_IOWC  = 0x01 // write
)

// Strobes renders a three bit status field as read/advanced/write flags,
// such as "R--" or "-AW".
func Strobes(status uint8) string {
	out := []byte("---")
	for n, c := range []byte("RAW") {
		if status&(4>>n) != 0 {
			out[n] = c
		}
	}
	return string(out)
}
