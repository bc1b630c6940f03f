package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/moo/cpu"
	"github.com/ezrec/moo/vector"
)

func hexBytes(data []byte) string {
	parts := make([]string, len(data))
	for n, b := range data {
		parts[n] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}

func renderRam(w io.Writer, label string, ram []vector.RamEntry) {
	if len(ram) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s:", label)
	for n, entry := range ram {
		if n%8 == 0 {
			fmt.Fprintf(w, "\n   ")
		}
		fmt.Fprintf(w, " %05X=%02X", entry.Address, entry.Value)
	}
	fmt.Fprintln(w)
}

func renderQueue(w io.Writer, label string, state *vector.State) {
	if !state.HasQueue {
		return
	}
	fmt.Fprintf(w, "  %s: [%s]\n", label, hexBytes(state.Queue))
}

// renderTest writes a human readable dump of one test.
func renderTest(w io.Writer, position int, test *vector.Test, cpuType cpu.Type, revoked bool, cycles bool) {
	fmt.Fprintf(w, "#%d (index %d) %s [%s]\n", position, test.Index, test.Name, hexBytes(test.Bytes))
	if test.Hash != nil {
		fmt.Fprintf(w, "  hash: %v", test.Hash)
		if revoked {
			fmt.Fprintf(w, " (revoked)")
		}
		fmt.Fprintln(w)
	}
	if test.Exception != nil {
		fmt.Fprintf(w, "  exception: %d, flags at %08X\n", test.Exception.Number, test.Exception.FlagAddress)
	}

	width := test.Width()
	fmt.Fprintf(w, "  registers:\n")
	for slot := range width.Slots() {
		initial, has := test.Initial.Regs.Lookup(slot)
		if !has {
			continue
		}
		expected, mask, _ := test.Expected(slot)
		line := fmt.Sprintf("    %-5s %0*X -> %0*X", cpu.RegisterName(width, slot),
			width.Bytes()*2, initial, width.Bytes()*2, expected)
		if mask != ^uint32(0) {
			line += fmt.Sprintf(" (mask %0*X)", width.Bytes()*2, mask)
		}
		fmt.Fprintln(w, line)
	}

	renderRam(w, "ram initial", test.Initial.Ram)
	renderRam(w, "ram final", test.Final.Ram)
	renderQueue(w, "queue initial", &test.Initial)
	renderQueue(w, "queue final", &test.Final)

	if ea := test.Initial.EffectiveAddress; ea != nil {
		fmt.Fprintf(w, "  effective address: %s:%08X linear %08X physical %08X\n",
			cpu.EffectiveSegment(ea.Segment), ea.Offset, ea.Linear, ea.Physical)
	}

	fmt.Fprintf(w, "  cycles: %d\n", len(test.Cycles))
	if cycles {
		family := cpuType.Family()
		for n := range test.Cycles {
			fmt.Fprintf(w, "    %4d %s\n", n, test.Cycles[n].Describe(family))
		}
	}
}
