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

import "github.com/holiman/uint256"

func opPop(instr *Instruction, state *ExecutionState) *Instruction {
	state.Stack.pop()
	return instr.next()
}

func opMload(instr *Instruction, state *ExecutionState) *Instruction {
	offset := state.Stack.pop()
	off := asMemOffset(&offset)
	if !state.ensureMemory(off, 32) {
		return nil
	}
	val := new(uint256.Int).SetBytes(state.Memory.GetPtr(int64(off), 32))
	state.Stack.push(val)
	return instr.next()
}

func opMstore(instr *Instruction, state *ExecutionState) *Instruction {
	offset, val := state.Stack.pop(), state.Stack.pop()
	off := asMemOffset(&offset)
	if !state.ensureMemory(off, 32) {
		return nil
	}
	state.Memory.Set32(off, &val)
	return instr.next()
}

func opMstore8(instr *Instruction, state *ExecutionState) *Instruction {
	offset, val := state.Stack.pop(), state.Stack.pop()
	off := asMemOffset(&offset)
	if !state.ensureMemory(off, 1) {
		return nil
	}
	state.Memory.store[off] = byte(val.Uint64())
	return instr.next()
}

func opMcopy(instr *Instruction, state *ExecutionState) *Instruction {
	dst, src, size := state.Stack.pop(), state.Stack.pop(), state.Stack.pop()
	length := asMemOffset(&size)
	if length == 0 {
		return instr.next()
	}
	d, s := asMemOffset(&dst), asMemOffset(&src)
	max := d
	if s > max {
		max = s
	}
	if !state.ensureMemory(max, length) {
		return nil
	}
	if !state.useGas(GasFastestStep * toWordSize(length)) {
		return state.exit(StatusOutOfGas)
	}
	copy(state.Memory.store[d:d+length], state.Memory.store[s:s+length])
	return instr.next()
}

func opMsize(instr *Instruction, state *ExecutionState) *Instruction {
	state.Stack.push(new(uint256.Int).SetUint64(uint64(state.Memory.Len())))
	return instr.next()
}

func opSload(instr *Instruction, state *ExecutionState) *Instruction {
	loc := state.Stack.peek()
	key := loc.Bytes32()
	if state.Revision >= Berlin {
		cold := state.Host.AccessStorage(state.Message.Recipient, key)
		cost := uint64(GasSloadEIP2929)
		if cold {
			cost = GasSloadColdEIP2929
		}
		if !state.useGas(cost) {
			return state.exit(StatusOutOfGas)
		}
	}
	val := state.Host.GetStorage(state.Message.Recipient, key)
	loc.SetBytes(val[:])
	return instr.next()
}

func opSstore(instr *Instruction, state *ExecutionState) *Instruction {
	if state.Message.Static {
		return state.exit(StatusStaticStateChange)
	}
	loc, val := state.Stack.pop(), state.Stack.pop()
	key := loc.Bytes32()

	cost := uint64(GasSstoreReset)
	if state.Revision >= Berlin && state.Host.AccessStorage(state.Message.Recipient, key) {
		cost += GasSloadColdEIP2929
	}
	if !state.useGas(cost) {
		return state.exit(StatusOutOfGas)
	}
	state.Host.SetStorage(state.Message.Recipient, key, val.Bytes32())
	return instr.next()
}

func opTload(instr *Instruction, state *ExecutionState) *Instruction {
	loc := state.Stack.peek()
	key := loc.Bytes32()
	val := state.Host.GetTransientStorage(state.Message.Recipient, key)
	loc.SetBytes(val[:])
	return instr.next()
}

func opTstore(instr *Instruction, state *ExecutionState) *Instruction {
	if state.Message.Static {
		return state.exit(StatusStaticStateChange)
	}
	loc, val := state.Stack.pop(), state.Stack.pop()
	state.Host.SetTransientStorage(state.Message.Recipient, loc.Bytes32(), val.Bytes32())
	return instr.next()
}

func opPc(instr *Instruction, state *ExecutionState) *Instruction {
	state.Stack.push(new(uint256.Int).SetUint64(uint64(instr.Arg.Number)))
	return instr.next()
}

func opGas(instr *Instruction, state *ExecutionState) *Instruction {
	state.Stack.push(new(uint256.Int).SetUint64(state.liveGas(instr)))
	return instr.next()
}

func opPush0(instr *Instruction, state *ExecutionState) *Instruction {
	state.Stack.push(new(uint256.Int))
	return instr.next()
}

// makePush builds the PUSH1..PUSH32 handler for the given immediate width.
// Small pushes (<=8 bytes) were pre-assembled into Arg.SmallPushValue at
// analysis time; large ones keep a slice pointer into the original code via
// Arg.PushValue, decoded here — mirroring evmone's two-case split and
// other_examples/erigontech-erigon__instructions.go's makePush generator,
// adapted to read the pre-decoded analyzer output instead of rescanning code.
func makePush(size int) InstructionExecFn {
	if size <= 8 {
		return func(instr *Instruction, state *ExecutionState) *Instruction {
			state.Stack.push(new(uint256.Int).SetUint64(instr.Arg.SmallPushValue))
			return instr.next()
		}
	}
	return func(instr *Instruction, state *ExecutionState) *Instruction {
		state.Stack.push(new(uint256.Int).SetBytes(instr.Arg.PushValue))
		return instr.next()
	}
}

// makeDup and makeSwap build the DUP1..DUP16 and SWAP1..SWAP16 handlers,
// grounded on the same erigon generator pattern.
func makeDup(n int) InstructionExecFn {
	return func(instr *Instruction, state *ExecutionState) *Instruction {
		state.Stack.dup(n)
		return instr.next()
	}
}

func makeSwap(n int) InstructionExecFn {
	n++
	return func(instr *Instruction, state *ExecutionState) *Instruction {
		state.Stack.swap(n)
		return instr.next()
	}
}
