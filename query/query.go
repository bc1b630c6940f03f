// Package query selects tests with Starlark predicate expressions, such as
//
//	len(bytes) == 1 and bytes[0] == 0x90 and not exception
//
// The expression sees these names for the test being matched:
//
//	index          test index
//	name           display name
//	bytes          opcode bytes, as a tuple of ints
//	opcode         first opcode byte, or None
//	cycles         number of bus cycles
//	exception      exception number, or None
//	flag_address   exception flag address, or None
//	hash           upper-case hex hash, or None
//	initial        initial registers, by name
//	final          final registers, by name
//	expected       expected final registers, by name
//	ram_initial    initial memory, by address
//	ram_final      final memory, by address
//	queue_initial  initial prefetch queue, a tuple of ints, or None
//	queue_final    final prefetch queue, a tuple of ints, or None
//	cpu            processor model name
package query

import (
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/moo/cpu"
	"github.com/ezrec/moo/vector"
)

// MAX_STEPS bounds the work of one predicate evaluation.
const MAX_STEPS = 1 << 20

var predeclared = []string{
	"index", "name", "bytes", "opcode", "cycles",
	"exception", "flag_address", "hash",
	"initial", "final", "expected",
	"ram_initial", "ram_final", "queue_initial", "queue_final",
	"cpu",
}

// Predicate is a compiled selection expression.
type Predicate struct {
	Expr string

	program *starlark.Program
}

// Compile checks and compiles a predicate expression.
func Compile(expr string) (pred *Predicate, err error) {
	if len(strings.TrimSpace(expr)) == 0 {
		err = &ErrExpression{Expr: expr, Err: ErrNoResult}
		return
	}

	opts := syntax.FileOptions{}
	known := map[string]bool{}
	for _, name := range predeclared {
		known[name] = true
	}

	src := "rc = (" + expr + "\n)\n"
	_, program, err := starlark.SourceProgramOptions(&opts, "where", src, func(name string) bool {
		return known[name]
	})
	if err != nil {
		err = &ErrExpression{Expr: expr, Err: err}
		return
	}

	pred = &Predicate{
		Expr:    expr,
		program: program,
	}

	return
}

// Match evaluates the predicate against a test from a container of the
// given processor model.
func (pred *Predicate) Match(test *vector.Test, cpuType cpu.Type) (ok bool, err error) {
	thread := &starlark.Thread{Name: "where"}
	thread.SetMaxExecutionSteps(MAX_STEPS)

	env, err := Environment(test, cpuType)
	if err != nil {
		err = &ErrExpression{Expr: pred.Expr, Err: err}
		return
	}

	globals, err := pred.program.Init(thread, env)
	if err != nil {
		err = &ErrExpression{Expr: pred.Expr, Err: err}
		return
	}

	rc, found := globals["rc"]
	if !found {
		err = &ErrExpression{Expr: pred.Expr, Err: ErrNoResult}
		return
	}

	ok = bool(rc.Truth())

	return
}

func byteTuple(data []byte) starlark.Tuple {
	tuple := make(starlark.Tuple, len(data))
	for n, b := range data {
		tuple[n] = starlark.MakeInt(int(b))
	}
	return tuple
}

func registerDict(regs *vector.Registers) (dict *starlark.Dict, err error) {
	dict = starlark.NewDict(regs.Count())
	for slot, value := range regs.All() {
		err = dict.SetKey(starlark.String(regs.Name(slot)), starlark.MakeUint64(uint64(value)))
		if err != nil {
			return
		}
	}
	return
}

func ramDict(ram []vector.RamEntry) (dict *starlark.Dict, err error) {
	dict = starlark.NewDict(len(ram))
	for _, entry := range ram {
		err = dict.SetKey(starlark.MakeUint64(uint64(entry.Address)), starlark.MakeInt(int(entry.Value)))
		if err != nil {
			return
		}
	}
	return
}

func queueValue(state *vector.State) starlark.Value {
	if !state.HasQueue {
		return starlark.None
	}
	return byteTuple(state.Queue)
}

// Environment builds the predeclared names for a test. Byte sequences
// are tuples of ints, so bytes[0] == 0x90 compares numbers.
func Environment(test *vector.Test, cpuType cpu.Type) (env starlark.StringDict, err error) {
	out := starlark.StringDict{
		"index":         starlark.MakeUint64(uint64(test.Index)),
		"name":          starlark.String(test.Name),
		"bytes":         byteTuple(test.Bytes),
		"opcode":        starlark.None,
		"cycles":        starlark.MakeInt(len(test.Cycles)),
		"exception":     starlark.None,
		"flag_address":  starlark.None,
		"hash":          starlark.None,
		"queue_initial": queueValue(&test.Initial),
		"queue_final":   queueValue(&test.Final),
		"cpu":           starlark.String(cpuType.String()),
	}

	dicts := []struct {
		name  string
		build func() (*starlark.Dict, error)
	}{
		{"initial", func() (*starlark.Dict, error) { return registerDict(&test.Initial.Regs) }},
		{"final", func() (*starlark.Dict, error) { return registerDict(&test.Final.Regs) }},
		{"ram_initial", func() (*starlark.Dict, error) { return ramDict(test.Initial.Ram) }},
		{"ram_final", func() (*starlark.Dict, error) { return ramDict(test.Final.Ram) }},
		{"expected", func() (*starlark.Dict, error) { return expectedDict(test) }},
	}
	for _, entry := range dicts {
		var dict *starlark.Dict
		dict, err = entry.build()
		if err != nil {
			return
		}
		out[entry.name] = dict
	}

	if len(test.Bytes) > 0 {
		out["opcode"] = starlark.MakeInt(int(test.Bytes[0]))
	}

	if test.Exception != nil {
		out["exception"] = starlark.MakeInt(int(test.Exception.Number))
		out["flag_address"] = starlark.MakeUint64(uint64(test.Exception.FlagAddress))
	}

	if test.Hash != nil {
		out["hash"] = starlark.String(test.Hash.String())
	}

	env = out

	return
}

func expectedDict(test *vector.Test) (dict *starlark.Dict, err error) {
	width := test.Width()
	dict = starlark.NewDict(width.Slots())
	for slot := range width.Slots() {
		value, _, ok := test.Expected(slot)
		if !ok {
			continue
		}
		err = dict.SetKey(starlark.String(cpu.RegisterName(width, slot)), starlark.MakeUint64(uint64(value)))
		if err != nil {
			return
		}
	}
	return
}
