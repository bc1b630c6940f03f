package container

import (
	"slices"

	"github.com/ezrec/moo/chunk"
	"github.com/ezrec/moo/cpu"
)

// Version of a container header.
type Version struct {
	Major uint8
	Minor uint8
}

// layout is the version dependent part of a header.
type layout struct {
	idWidth int
	accepts []cpu.Type
}

var layout_1_0 = layout{
	idWidth: 4,
	accepts: []cpu.Type{
		cpu.TYPE_8088, cpu.TYPE_8086, cpu.TYPE_V20, cpu.TYPE_V30,
		cpu.TYPE_80286, cpu.TYPE_80386EX,
	},
}

var layout_1_1 = layout{
	idWidth: 4,
	accepts: cpu.Types(),
}

var layouts = map[Version]layout{
	{1, 0}: layout_1_0,
	{1, 1}: layout_1_1,
}

// Versions lists the supported header versions.
func Versions() (versions []Version) {
	for version := range layouts {
		versions = append(versions, version)
	}
	slices.SortFunc(versions, func(a, b Version) int {
		return int(a.Major)<<8 + int(a.Minor) - (int(b.Major)<<8 + int(b.Minor))
	})
	return
}

// Header is the body of the leading "MOO " chunk.
type Header struct {
	Version
	Reserved  [2]uint8
	TestCount uint32
	CpuID     string
	CpuType   cpu.Type
}

// ReadHeader decodes a header body, dispatching on its version for the
// width and accepted values of the cpu identifier.
func ReadHeader(cur *chunk.Cursor) (header Header, err error) {
	header.Major, err = cur.ReadU8()
	if err != nil {
		return
	}
	header.Minor, err = cur.ReadU8()
	if err != nil {
		return
	}
	reserved, err := cur.ReadBytes(len(header.Reserved))
	if err != nil {
		return
	}
	copy(header.Reserved[:], reserved)

	header.TestCount, err = cur.ReadU32()
	if err != nil {
		return
	}

	shape, ok := layouts[header.Version]
	if !ok {
		err = &ErrUnsupportedVersion{Major: header.Major, Minor: header.Minor}
		return
	}

	id, err := cur.ReadBytes(shape.idWidth)
	if err != nil {
		return
	}
	header.CpuID = string(id)

	cpuType, ok := cpu.Lookup(header.CpuID)
	if !ok || !slices.Contains(shape.accepts, cpuType) {
		err = &ErrUnsupportedCpu{ID: header.CpuID}
		return
	}
	header.CpuType = cpuType

	return
}
