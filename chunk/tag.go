package chunk

// Tag is the four character chunk identifier. Trailing spaces are significant.
type Tag string

const (
	TAG_MOO       = Tag("MOO ") // container
	TAG_META      = Tag("META") // file metadata
	TAG_TEST      = Tag("TEST") // test record
	TAG_NAME      = Tag("NAME")
	TAG_BYTES     = Tag("BYTS")
	TAG_INIT      = Tag("INIT")
	TAG_FINAL     = Tag("FINA")
	TAG_CYCLES    = Tag("CYCL")
	TAG_EXCEPTION = Tag("EXCP")
	TAG_HASH      = Tag("HASH")
	TAG_GMET      = Tag("GMET") // generator metadata, ignored

	// State sub-chunks.
	TAG_REGS  = Tag("REGS") // 16-bit registers
	TAG_RG32  = Tag("RG32") // 32-bit registers
	TAG_RMSK  = Tag("RMSK") // 16-bit register masks
	TAG_RM32  = Tag("RM32") // 32-bit register masks
	TAG_RAM   = Tag("RAM ")
	TAG_QUEUE = Tag("QUEU")
	TAG_EA32  = Tag("EA32") // effective address
)

const (
	// TAG_SIZE is the width of a tag on the wire.
	TAG_SIZE = 4
	// HEADER_SIZE is the width of a tag plus its u32 length.
	HEADER_SIZE = TAG_SIZE + 4
)

// String returns the tag with its padding intact.
func (tag Tag) String() string {
	return string(tag)
}
