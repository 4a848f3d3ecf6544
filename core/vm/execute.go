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

import "sync"

// Result is what Execute hands back to the caller. UsedMemory rides along
// the way evmone smuggles it through
// evmc_result.padding: it's diagnostic-only, never consumed by the EVM
// itself, so it doesn't need a home anywhere else.
type Result struct {
	Status     Status
	GasLeft    uint64
	Output     []byte
	UsedMemory uint64
}

var statePool = sync.Pool{
	New: func() any { return &ExecutionState{} },
}

// Execute runs code under msg against host, driving the tail-threaded
// dispatch loop: analyze once, then repeatedly hand
// the current *Instruction to its own handler and follow whatever it
// returns, until a handler returns nil. Grounded on
// original_source/lib/evmone/execution.cpp's execute().
func Execute(host Host, rev Revision, msg Message, code []byte) Result {
	analysis := Analyze(rev, code)
	return ExecuteAnalyzed(host, rev, msg, analysis)
}

// ExecuteAnalyzed runs a CodeAnalysis produced earlier, letting a caller that
// executes the same code repeatedly (e.g. a hot contract) amortize Analyze's
// cost across calls.
func ExecuteAnalyzed(host Host, rev Revision, msg Message, analysis *CodeAnalysis) Result {
	executeCount.Inc(1)

	state := statePool.Get().(*ExecutionState)
	state.reset(msg, rev, host, analysis, msg.Gas)
	defer func() {
		returnStack(state.Stack)
		statePool.Put(state)
	}()

	instr := &analysis.Instrs[0]
	for instr != nil {
		instr = instr.Handler(instr, state)
	}

	result := Result{Status: state.Status}
	if state.Status.Succeeded() {
		result.GasLeft = state.GasLeft
	}
	if state.Status == StatusSuccess || state.Status == StatusRevert {
		result.Output = state.Output
	}
	result.UsedMemory = uint64(state.Memory.Len())
	return result
}

// opBeginBlock is the BEGINBLOCK intrinsic every JUMPDEST decodes to
// It performs the three checks evmone hoists to block
// entry so no per-instruction recheck is needed for the rest of the block:
// enough gas for the whole block, enough stack depth for its deepest
// requirement, and no possibility of overflowing the 1024-slot stack at its
// peak growth.
func opBeginBlock(instr *Instruction, state *ExecutionState) *Instruction {
	block := &instr.Arg.Block

	if state.GasLeft < uint64(block.GasCost) {
		return state.exit(StatusOutOfGas)
	}
	state.GasLeft -= uint64(block.GasCost)
	state.CurrentBlockCost = block.GasCost

	if state.Stack.len() < int(block.StackReq) {
		return state.exit(StatusStackUnderflow)
	}
	if state.Stack.len()+int(block.StackMaxGrowth) > maxStackSize {
		return state.exit(StatusStackOverflow)
	}

	return instr.next()
}

// opJump and opJumpi resolve their target through CodeAnalysis.FindJumpdest
// rather than by scanning code at run time — the whole point of building the
// jumpdest index up front.
func opJump(instr *Instruction, state *ExecutionState) *Instruction {
	dest := state.Stack.pop()
	idx := state.Analysis.FindJumpdest(int64(dest.Uint64()))
	if idx < 0 || !dest.IsUint64() {
		return state.exit(StatusBadJumpDestination)
	}
	return &state.Analysis.Instrs[idx]
}

func opJumpi(instr *Instruction, state *ExecutionState) *Instruction {
	dest := state.Stack.pop()
	cond := state.Stack.pop()
	if cond.IsZero() {
		return instr.next()
	}
	idx := state.Analysis.FindJumpdest(int64(dest.Uint64()))
	if idx < 0 || !dest.IsUint64() {
		return state.exit(StatusBadJumpDestination)
	}
	return &state.Analysis.Instrs[idx]
}
