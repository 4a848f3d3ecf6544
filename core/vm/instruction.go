// Copyright 2019 The evmone Authors
// Copyright 2014 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package vm

import (
	"math"
	"unsafe"
)

// InstructionExecFn is a handler for a single decoded instruction. It
// returns the next instruction to execute, or nil to terminate (having
// first set state.Status). This is the tail-threaded dispatch contract of
// control transfer is realized by the return value, not by a
// central switch.
type InstructionExecFn func(instr *Instruction, state *ExecutionState) *Instruction

// InstructionArgument is the per-position payload of a decoded instruction.
// In evmone this is an 8-byte untagged union; Go has no union type, so this
// struct carries every possible field instead (the discriminant is still
// implicit in which opcode sits at that position, the handler never consults
// more than one field).
type InstructionArgument struct {
	// Number holds, for gas-sensitive opcodes (GAS, CALL family, CREATE
	// family, SSTORE), the cumulative block gas cost through this
	// instruction; for PC, the original code offset.
	Number int64

	// PushValue points into the original code buffer at the first
	// immediate byte of a PUSH9..PUSH32. The code slice backing this
	// pointer must outlive the CodeAnalysis.
	PushValue []byte

	// SmallPushValue holds the big-endian-assembled immediate of a
	// PUSH1..PUSH8.
	SmallPushValue uint64

	// Block is populated only on BEGINBLOCK instructions, written exactly
	// once when the block closes.
	Block BlockInfo
}

// Instruction is one decoded entry in a CodeAnalysis.instrs stream.
type Instruction struct {
	Handler InstructionExecFn
	Arg     InstructionArgument
}

// next advances to the instruction immediately following instr in its
// CodeAnalysis.Instrs backing array. This is the Go translation of evmone's
// raw-pointer "instr + 1": the dispatch loop never indexes Instrs directly,
// it steps through memory exactly as the C++ baseline interpreter does.
// Safe as long as instr never points at the last element in its slice
// without an intervening handler that branches instead of falling through
// (true by construction: every instruction stream ends on a terminator
// whose handler never calls next).
func (instr *Instruction) next() *Instruction {
	return (*Instruction)(unsafe.Pointer(uintptr(unsafe.Pointer(instr)) + unsafe.Sizeof(Instruction{})))
}

// BlockInfo is the per-basic-block header precomputed by the analyzer and
// consumed once, at block entry, by the BEGINBLOCK handler. Conceptually 8
// bytes in evmone (uint32 + int16 + int16); kept as plain fields here since
// Go struct layout isn't pinned to that representation.
type BlockInfo struct {
	// GasCost is the sum of base gas costs of every opcode in the block.
	// Cannot overflow: max_code_size * max_instruction_base_cost fits in
	// a uint32 (see maxCodeSize and maxInstructionBaseCost in gas.go).
	GasCost uint32

	// StackReq is the minimum stack depth required at block entry for
	// every instruction in the block to have enough operands. May
	// saturate on overflow.
	StackReq int16

	// StackMaxGrowth is the maximum positive excursion of stack depth
	// above its entry value, used to check the 1024-slot limit at block
	// entry. Cannot overflow (see maxCodeSize and maxInstructionStackIncrease).
	StackMaxGrowth int16
}

// CodeAnalysis is the output of Analyze: a flat decoded instruction stream
// plus the jump-destination index. Immutable once constructed; the code
// slice given to Analyze must outlive it (large PUSH immediates are
// referenced by pointer into that slice, see InstructionArgument.PushValue).
type CodeAnalysis struct {
	Instrs []Instruction

	// CodeEnd is one-past-the-end of the original code buffer (its length).
	// Analyze clamps PUSH immediates to it; CODESIZE reports it.
	CodeEnd int

	// JumpdestOffsets is the ascending vector of original-code byte
	// offsets where JUMPDEST appeared.
	JumpdestOffsets []int32

	// JumpdestTargets is parallel to JumpdestOffsets: the index into
	// Instrs of the BEGINBLOCK that replaced each JUMPDEST.
	JumpdestTargets []int32
}

// FindJumpdest binary searches JumpdestOffsets for offset and returns the
// matching index into Instrs, or -1 if offset is not a valid jump
// destination.
func (a *CodeAnalysis) FindJumpdest(offset int64) int32 {
	if offset < 0 || offset > math.MaxInt32 {
		return -1
	}
	off := int32(offset)
	lo, hi := 0, len(a.JumpdestOffsets)
	for lo < hi {
		mid := (lo + hi) / 2
		if a.JumpdestOffsets[mid] < off {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(a.JumpdestOffsets) && a.JumpdestOffsets[lo] == off {
		return a.JumpdestTargets[lo]
	}
	return -1
}

// OpTableEntry is the static per-opcode metadata published by the opcode
// table.
type OpTableEntry struct {
	Handler      InstructionExecFn
	GasCost      int16
	StackReq     int8
	StackChange  int8
}

// OpTable is the 256-entry per-revision metadata array.
type OpTable [256]OpTableEntry
