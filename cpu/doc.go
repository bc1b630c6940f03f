// Package cpu holds the symbolic tables for the processors recorded in MOO
// test files.
//
// A container names its processor with a four byte identifier. The identifier
// resolves to a Type, and each Type belongs to a Family. The family selects
// the register width and the tables used to name bus status codes, T-states,
// and queue operations. None of these tables change how a file is decoded;
// registers are always decoded in ascending bit order, and the tables only
// translate a bit position or status code into a name.
package cpu
