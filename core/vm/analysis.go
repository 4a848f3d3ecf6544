// Copyright 2019 The evmone Authors
// This file is part of the go-ethereum library adaptation.
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

import "math"

// blockAnalysis accumulates the running totals for the basic block currently
// being scanned by Analyze. The update order mirrors evmone's analysis.cpp
// exactly: stackReq is widened against the *pre-update* stackChange before
// stackChange itself advances, since an instruction's requirement is relative
// to the stack depth at its own position, not at the block's end.
type blockAnalysis struct {
	gasCost        int64
	stackReq       int32
	stackChange    int32
	stackMaxGrowth int32
}

func (b *blockAnalysis) accumulate(e *OpTableEntry) {
	req := int32(e.StackReq) - b.stackChange
	if req > b.stackReq {
		b.stackReq = req
	}
	b.stackChange += int32(e.StackChange)
	if b.stackChange > b.stackMaxGrowth {
		b.stackMaxGrowth = b.stackChange
	}
	b.gasCost += int64(e.GasCost)
}

func (b *blockAnalysis) close() BlockInfo {
	return BlockInfo{
		GasCost:        uint32(b.gasCost),
		StackReq:       clampToInt16(b.stackReq),
		StackMaxGrowth: clampToInt16(b.stackMaxGrowth),
	}
}

// clampToInt16 saturates x into the int16 range, matching evmone's clamp<>
// template. BlockInfo.StackMaxGrowth cannot overflow for code up to
// maxCodeSize (see the bound check in gas.go's init); BlockInfo.StackReq has
// no such bound and saturates at math.MaxInt16 for long runs of
// stack-consuming opcodes.
func clampToInt16(x int32) int16 {
	if x > math.MaxInt16 {
		return math.MaxInt16
	}
	if x < math.MinInt16 {
		return math.MinInt16
	}
	return int16(x)
}

// Analyze walks code once, replaces every JUMPDEST with a BEGINBLOCK
// intrinsic carrying the precomputed header for the block it opens, and
// records each valid jump target as (offset, index-of-BEGINBLOCK) so
// CodeAnalysis.FindJumpdest can binary-search it later. Grounded directly on
// original_source/lib/evmone/analysis.cpp's analyze().
//
// code must outlive the returned CodeAnalysis: PUSH9..PUSH32 immediates are
// referenced by slicing into it rather than copying.
func Analyze(rev Revision, code []byte) *CodeAnalysis {
	analysisCount.Inc(1)

	table := GetOpTable(rev)
	beginBlockFn := table[BEGINBLOCK].Handler
	codeSize := len(code)

	a := &CodeAnalysis{CodeEnd: codeSize}
	a.Instrs = make([]Instruction, 0, codeSize+2)
	a.JumpdestOffsets = make([]int32, 0, codeSize/2+1)
	a.JumpdestTargets = make([]int32, 0, codeSize/2+1)

	var block blockAnalysis
	var blockStart int
	blockOpen := false
	// blockEmpty tracks whether the currently open block has had anything
	// (a real instruction, or an earlier JUMPDEST) fold into it yet. A
	// JUMPDEST that lands on an empty block collapses into that block's own
	// BEGINBLOCK instead of opening a new one, matching evmone: a JUMPDEST
	// as the very first opcode, or right after a terminator, never produces
	// an extra empty block. A JUMPDEST directly following another JUMPDEST
	// finds the block non-empty and opens a block of its own.
	blockEmpty := false

	openBlock := func() {
		blockStart = len(a.Instrs)
		a.Instrs = append(a.Instrs, Instruction{Handler: beginBlockFn})
		blockOpen = true
		blockEmpty = true
	}
	closeBlock := func() {
		a.Instrs[blockStart].Arg.Block = block.close()
		block = blockAnalysis{}
		blockOpen = false
	}

	openBlock()

	// lastOpTerminated tracks whether the most recently decoded *opcode*
	// (as opposed to the raw final byte of code, which may be push
	// immediate data that happens to collide with a terminator's byte
	// value) was a terminator, so the trailing-STOP rule below can't be
	// fooled by a truncated PUSH whose immediate bytes look like STOP or
	// SELFDESTRUCT.
	lastOpTerminated := false
	var lastOp OpCode

	for i := 0; i < codeSize; i++ {
		op := OpCode(code[i])

		if op == JUMPDEST {
			if !blockOpen {
				openBlock()
			} else if !blockEmpty {
				closeBlock()
				openBlock()
			}
			// JUMPDEST itself still costs gas in the real EVM even though
			// it folds into the BEGINBLOCK it opens rather than getting its
			// own Instrs entry; charge that to the (now guaranteed empty)
			// block it lands on.
			block.gasCost += GasJumpdest
			a.JumpdestOffsets = append(a.JumpdestOffsets, int32(i))
			a.JumpdestTargets = append(a.JumpdestTargets, int32(blockStart))
			blockEmpty = false
			lastOpTerminated = false
			continue
		}

		entry := &table[op]
		block.accumulate(entry)
		blockEmpty = false

		instr := Instruction{Handler: entry.Handler}

		switch {
		case op.IsPush() && op != PUSH0:
			size := op.PushSize()
			begin := i + 1
			end := begin + size
			if end > codeSize {
				end = codeSize
			}
			if size <= 8 {
				var v uint64
				for _, b := range code[begin:end] {
					v = v<<8 | uint64(b)
				}
				v <<= uint(8 * (size - (end - begin)))
				instr.Arg.SmallPushValue = v
			} else {
				instr.Arg.PushValue = code[begin:end]
			}
			i += size
		case op == GAS || op == CALL || op == CALLCODE || op == DELEGATECALL ||
			op == STATICCALL || op == CREATE || op == CREATE2 || op == SSTORE:
			instr.Arg.Number = block.gasCost
		case op == PC:
			instr.Arg.Number = int64(i)
		}

		a.Instrs = append(a.Instrs, instr)

		lastOp = op
		lastOpTerminated = op.IsTerminator()
		if lastOpTerminated {
			closeBlock()
			if i+1 < codeSize && OpCode(code[i+1]) != JUMPDEST {
				openBlock()
			}
		}
	}

	if blockOpen {
		closeBlock()
	}

	// Code that falls off the end without STOP/RETURN/REVERT/SELFDESTRUCT
	// behaves as an implicit STOP, per the Yellow Paper. A final JUMPI also
	// gets the STOP, since it falls through when its condition is zero.
	// lastOpTerminated reflects the last actual opcode decoded, not the raw
	// final byte, which may be push immediate data.
	if !lastOpTerminated || lastOp == JUMPI {
		a.Instrs = append(a.Instrs, Instruction{Handler: table[STOP].Handler})
	}

	return a
}
