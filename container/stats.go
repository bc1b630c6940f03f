package container

import (
	"slices"

	"github.com/ezrec/moo/cpu"
)

// Stats summarizes the bus activity of a File.
type Stats struct {
	Tests       int
	TotalCycles int
	MinCycles   int
	MaxCycles   int
	AvgCycles   float64

	MemoryReads  int
	MemoryWrites int
	CodeFetches  int
	IoReads      int
	IoWrites     int
	WaitStates   int

	Exceptions []uint8  // distinct exception numbers, ascending
	Modified   []string // registers changed by tests without exceptions

	// Flags, ascending by bit position.
	FlagsSet           []cpu.Flag // set by some test
	FlagsCleared       []cpu.Flag // cleared by some test
	FlagsModified      []cpu.Flag // set or cleared by some test
	FlagsAlwaysSet     []cpu.Flag // set by some test, never cleared
	FlagsAlwaysCleared []cpu.Flag // cleared by some test, never set
}

// Stats walks every test and cycle of the file.
//
// The 80386 family counts a transfer on its address strobe cycle. The
// other families count it on the passive cycle that ends the transfer,
// taking the bus state latched at the last address strobe for code fetches.
func (file *File) Stats() (stats Stats) {
	family := file.header.CpuType.Family()
	exceptions := map[uint8]bool{}
	modified := map[int]string{}
	flagsSet := map[cpu.Flag]bool{}
	flagsCleared := map[cpu.Flag]bool{}

	stats.Tests = len(file.tests)
	for n, test := range file.tests {
		count := len(test.Cycles)
		stats.TotalCycles += count
		if n == 0 || count < stats.MinCycles {
			stats.MinCycles = count
		}
		stats.MaxCycles = max(stats.MaxCycles, count)

		latched := cpu.BUS_PASV
		for _, cycle := range test.Cycles {
			if cycle.Wait() {
				stats.WaitStates++
			}

			bus := cycle.Bus(family)
			if cycle.ALE() {
				latched = bus
			}

			var active bool
			if family == cpu.FAMILY_80386 {
				active = cycle.ALE()
			} else {
				active = bus == cpu.BUS_PASV
			}
			if !active {
				continue
			}

			if cycle.ReadingMemory() {
				switch {
				case family == cpu.FAMILY_80386 && bus == cpu.BUS_CODE:
					stats.CodeFetches++
				case family != cpu.FAMILY_80386 && latched == cpu.BUS_CODE:
					stats.CodeFetches++
				}
				if family != cpu.FAMILY_80386 || bus == cpu.BUS_MEMR {
					stats.MemoryReads++
				}
			}
			if cycle.WritingMemory() {
				stats.MemoryWrites++
			}
			if cycle.ReadingIo() {
				stats.IoReads++
			}
			if cycle.WritingIo() {
				stats.IoWrites++
			}
		}

		changes := test.FlagChanges()
		for _, flag := range changes.Set {
			flagsSet[flag] = true
		}
		for _, flag := range changes.Cleared {
			flagsCleared[flag] = true
		}

		if test.Exception != nil {
			exceptions[test.Exception.Number] = true
			continue
		}
		for _, change := range test.Changed() {
			modified[change.Slot] = change.Name
		}
	}

	if stats.Tests > 0 {
		stats.AvgCycles = float64(stats.TotalCycles) / float64(stats.Tests)
	}

	for number := range exceptions {
		stats.Exceptions = append(stats.Exceptions, number)
	}
	slices.Sort(stats.Exceptions)

	var slots []int
	for slot := range modified {
		slots = append(slots, slot)
	}
	slices.Sort(slots)
	for _, slot := range slots {
		stats.Modified = append(stats.Modified, modified[slot])
	}

	for bit := range cpu.FLAG_COUNT {
		flag := cpu.Flag(bit)
		set, cleared := flagsSet[flag], flagsCleared[flag]
		if set {
			stats.FlagsSet = append(stats.FlagsSet, flag)
		}
		if cleared {
			stats.FlagsCleared = append(stats.FlagsCleared, flag)
		}
		if set || cleared {
			stats.FlagsModified = append(stats.FlagsModified, flag)
		}
		if set && !cleared {
			stats.FlagsAlwaysSet = append(stats.FlagsAlwaysSet, flag)
		}
		if cleared && !set {
			stats.FlagsAlwaysCleared = append(stats.FlagsAlwaysCleared, flag)
		}
	}

	return
}
