// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// Type is a specific processor model.
type Type int

const (
	TYPE_8088    = Type(0) // 8088
	TYPE_8086    = Type(1) // 8086
	TYPE_V20     = Type(2) // V20
	TYPE_V30     = Type(3) // V30
	TYPE_80188   = Type(4) // 80188
	TYPE_80186   = Type(5) // 80186
	TYPE_80C286  = Type(6) // 80C286
	TYPE_80386EX = Type(7) // 80386EX
	TYPE_80286   = Type(8) // 80286
)

// TYPE_COUNT is the number of known processor models.
const TYPE_COUNT = 9

// Family is a group of processors sharing bus and register layouts.
type Family int

const (
	FAMILY_8086  = Family(0) // 8086
	FAMILY_V30   = Family(1) // V30
	FAMILY_80186 = Family(2) // 80186
	FAMILY_80286 = Family(3) // 80286
	FAMILY_80386 = Family(4) // 80386
)

// Width is the register width of a family, in bits.
type Width int

const (
	WIDTH_16 = Width(16)
	WIDTH_32 = Width(32)
)

type typeInfo struct {
	name   string
	id     string
	family Family
}

var typeTable = [TYPE_COUNT]typeInfo{
	TYPE_8088:    {"8088", "8088", FAMILY_8086},
	TYPE_8086:    {"8086", "8086", FAMILY_8086},
	TYPE_V20:     {"V20", "V20 ", FAMILY_V30},
	TYPE_V30:     {"V30", "V30 ", FAMILY_V30},
	TYPE_80188:   {"80188", "188 ", FAMILY_80186},
	TYPE_80186:   {"80186", "186 ", FAMILY_80186},
	TYPE_80C286:  {"80C286", "C286", FAMILY_80286},
	TYPE_80386EX: {"80386EX", "386E", FAMILY_80386},
	TYPE_80286:   {"80286", "286 ", FAMILY_80286},
}

var familyNames = [...]string{
	FAMILY_8086:  "8086",
	FAMILY_V30:   "V30",
	FAMILY_80186: "80186",
	FAMILY_80286: "80286",
	FAMILY_80386: "80386",
}

// Aliases are short identifiers accepted alongside the canonical ones.
var Aliases = map[string]Type{
	"88  ": TYPE_8088,
	"86  ": TYPE_8086,
}

// Types lists every known processor model.
func Types() (types []Type) {
	for n := range TYPE_COUNT {
		types = append(types, Type(n))
	}
	return
}

// Lookup resolves a four byte container identifier, canonical or alias.
// The match is exact and case sensitive, padding included.
func Lookup(id string) (cpuType Type, ok bool) {
	for n, info := range typeTable {
		if info.id == id {
			return Type(n), true
		}
	}

	cpuType, ok = Aliases[id]
	return
}

// Valid reports whether cpuType names a known model.
func (cpuType Type) Valid() bool {
	return cpuType >= 0 && cpuType < TYPE_COUNT
}

func (cpuType Type) String() string {
	if !cpuType.Valid() {
		return "unknown"
	}
	return typeTable[cpuType].name
}

// ID is the canonical four byte container identifier.
func (cpuType Type) ID() string {
	if !cpuType.Valid() {
		return "    "
	}
	return typeTable[cpuType].id
}

// Family of the model.
func (cpuType Type) Family() Family {
	if !cpuType.Valid() {
		return FAMILY_8086
	}
	return typeTable[cpuType].family
}

// Width of the model's registers.
func (cpuType Type) Width() Width {
	return cpuType.Family().Width()
}

// DataBusWidth is the external data bus width in bits.
func (cpuType Type) DataBusWidth() int {
	switch cpuType {
	case TYPE_8088, TYPE_V20, TYPE_80188:
		return 8
	}
	return 16
}

func (family Family) String() string {
	if family < 0 || int(family) >= len(familyNames) {
		return "unknown"
	}
	return familyNames[family]
}

// Width of the family's registers.
func (family Family) Width() Width {
	if family == FAMILY_80386 {
		return WIDTH_32
	}
	return WIDTH_16
}

// Slots is the number of register positions in a bitmask of this width.
func (width Width) Slots() int {
	return int(width)
}

// Bytes is the on-disk size of one register value.
func (width Width) Bytes() int {
	return int(width) / 8
}
