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
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

func opStop(instr *Instruction, state *ExecutionState) *Instruction {
	return state.exit(StatusSuccess)
}

func opReturn(instr *Instruction, state *ExecutionState) *Instruction {
	offset, size := state.Stack.pop(), state.Stack.pop()
	off, length := asMemOffset(&offset), asMemOffset(&size)
	if !state.ensureMemory(off, length) {
		return nil
	}
	state.Output = state.Memory.GetCopy(int64(off), int64(length))
	return state.exit(StatusSuccess)
}

func opRevert(instr *Instruction, state *ExecutionState) *Instruction {
	offset, size := state.Stack.pop(), state.Stack.pop()
	off, length := asMemOffset(&offset), asMemOffset(&size)
	if !state.ensureMemory(off, length) {
		return nil
	}
	state.Output = state.Memory.GetCopy(int64(off), int64(length))
	return state.exit(StatusRevert)
}

func opInvalid(instr *Instruction, state *ExecutionState) *Instruction {
	return state.exit(StatusInvalidInstruction)
}

func opUndefined(instr *Instruction, state *ExecutionState) *Instruction {
	return state.exit(StatusUndefinedInstruction)
}

func opSelfDestruct(instr *Instruction, state *ExecutionState) *Instruction {
	if state.Message.Static {
		return state.exit(StatusStaticStateChange)
	}
	beneficiary := state.Stack.pop()
	addr := addressFromUint256(&beneficiary)
	if state.Revision >= Berlin && state.Host.AccessAccount(addr) {
		if !state.useGas(GasSelfdestructNewAccount) {
			return state.exit(StatusOutOfGas)
		}
	}
	state.Host.SelfDestruct(state.Message.Recipient, addr)
	return state.exit(StatusSuccess)
}

// makeLog builds the LOG0..LOG4 handler for the given topic count. Grounded
// on other_examples/erigontech-erigon__instructions.go's makeLog, adapted to
// this module's Host-callback model: EmitLog replaces a direct StateDB
// append.
func makeLog(topicCount int) InstructionExecFn {
	return func(instr *Instruction, state *ExecutionState) *Instruction {
		if state.Message.Static {
			return state.exit(StatusStaticStateChange)
		}
		offset, size := state.Stack.pop(), state.Stack.pop()
		topics := make([]common.Hash, topicCount)
		for i := 0; i < topicCount; i++ {
			t := state.Stack.pop()
			topics[i] = common.Hash(t.Bytes32())
		}
		off, length := asMemOffset(&offset), asMemOffset(&size)
		if !state.ensureMemory(off, length) {
			return nil
		}
		if !state.useGas(GasLogData*length + GasLogTopic*uint64(topicCount)) {
			return state.exit(StatusOutOfGas)
		}
		data := state.Memory.GetCopy(int64(off), int64(length))
		state.Host.EmitLog(state.Message.Recipient, topics, data)
		return instr.next()
	}
}

// callLike implements the shared tail of CALL/CALLCODE/DELEGATECALL/
// STATICCALL: stage input from memory, take the forwarded gas from this
// frame, invoke the host, and splice the returned output back into memory
// and ReturnData. Each caller pops all of its operands beforehand and passes
// them in, since the stack shapes differ (DELEGATECALL and STATICCALL have
// no value operand).
func callLike(instr *Instruction, state *ExecutionState, kind CallKind, static bool, gas uint64, addr common.Address, value *uint256.Int, inOffset, inSize, outOffset, outSize uint256.Int) *Instruction {
	inOff, inLen := asMemOffset(&inOffset), asMemOffset(&inSize)
	outOff, outLen := asMemOffset(&outOffset), asMemOffset(&outSize)

	if !state.ensureMemory(inOff, inLen) || !state.ensureMemory(outOff, outLen) {
		return nil
	}

	input := state.Memory.GetCopy(int64(inOff), int64(inLen))

	// The forwarded gas (capped at what this frame has left) leaves the
	// frame for the call; the unused part comes back via res.GasLeft.
	if gas > state.GasLeft {
		gas = state.GasLeft
	}
	state.GasLeft -= gas

	msg := Message{
		Kind:      kind,
		Static:    static || state.Message.Static,
		Depth:     state.Message.Depth + 1,
		Gas:       gas,
		Recipient: addr,
		Sender:    state.Message.Recipient,
		Input:     input,
		Value:     value,
	}
	res := state.Host.Call(msg)

	state.ReturnData = res.Output
	if outLen > 0 {
		n := outLen
		if uint64(len(res.Output)) < n {
			n = uint64(len(res.Output))
		}
		state.Memory.Set(outOff, n, res.Output[:n])
	}
	state.GasLeft += res.GasLeft

	result := state.Stack.peek()
	if res.Status == StatusSuccess {
		result.SetOne()
	} else {
		result.Clear()
	}
	return instr.next()
}

func opCall(instr *Instruction, state *ExecutionState) *Instruction {
	gas, addr, value := state.Stack.pop(), state.Stack.pop(), state.Stack.pop()
	inOffset, inSize, outOffset, outSize := state.Stack.pop(), state.Stack.pop(), state.Stack.pop(), state.Stack.pop()
	if state.Message.Static && !value.IsZero() {
		return state.exit(StatusStaticStateChange)
	}
	state.Stack.push(new(uint256.Int))
	a := addressFromUint256(&addr)
	if !chargeCallAccountAccess(state, a, gas.Uint64()) {
		return nil
	}
	return callLike(instr, state, CallKindCall, false, gas.Uint64(), a, &value, inOffset, inSize, outOffset, outSize)
}

func opCallCode(instr *Instruction, state *ExecutionState) *Instruction {
	gas, addr, value := state.Stack.pop(), state.Stack.pop(), state.Stack.pop()
	inOffset, inSize, outOffset, outSize := state.Stack.pop(), state.Stack.pop(), state.Stack.pop(), state.Stack.pop()
	state.Stack.push(new(uint256.Int))
	a := addressFromUint256(&addr)
	if !chargeCallAccountAccess(state, a, gas.Uint64()) {
		return nil
	}
	return callLike(instr, state, CallKindCallCode, false, gas.Uint64(), a, &value, inOffset, inSize, outOffset, outSize)
}

func opDelegateCall(instr *Instruction, state *ExecutionState) *Instruction {
	gas, addr := state.Stack.pop(), state.Stack.pop()
	inOffset, inSize, outOffset, outSize := state.Stack.pop(), state.Stack.pop(), state.Stack.pop(), state.Stack.pop()
	state.Stack.push(new(uint256.Int))
	a := addressFromUint256(&addr)
	if !chargeCallAccountAccess(state, a, gas.Uint64()) {
		return nil
	}
	return callLike(instr, state, CallKindDelegateCall, false, gas.Uint64(), a, state.Message.Value, inOffset, inSize, outOffset, outSize)
}

func opStaticCall(instr *Instruction, state *ExecutionState) *Instruction {
	gas, addr := state.Stack.pop(), state.Stack.pop()
	inOffset, inSize, outOffset, outSize := state.Stack.pop(), state.Stack.pop(), state.Stack.pop(), state.Stack.pop()
	state.Stack.push(new(uint256.Int))
	a := addressFromUint256(&addr)
	if !chargeCallAccountAccess(state, a, gas.Uint64()) {
		return nil
	}
	return callLike(instr, state, CallKindStaticCall, true, gas.Uint64(), a, new(uint256.Int), inOffset, inSize, outOffset, outSize)
}

// chargeCallAccountAccess charges the EIP-2929 cold-access surcharge for the
// callee address, on top of the gas callLike forwards to the nested
// Host.Call.
func chargeCallAccountAccess(state *ExecutionState, addr common.Address, _ uint64) bool {
	if state.Revision < Berlin {
		return true
	}
	cost := uint64(GasWarmAccess)
	if state.Host.AccessAccount(addr) {
		cost = GasSloadColdEIP2929
	}
	if !state.useGas(cost) {
		state.exit(StatusOutOfGas)
		return false
	}
	return true
}

func createLike(instr *Instruction, state *ExecutionState, kind CallKind, value *uint256.Int, offset, size uint256.Int, salt *uint256.Int) *Instruction {
	if state.Message.Static {
		return state.exit(StatusStaticStateChange)
	}
	off, length := asMemOffset(&offset), asMemOffset(&size)
	if !state.ensureMemory(off, length) {
		return nil
	}
	if kind == CallKindCreate2 {
		if !state.useGas(GasSha3Word * toWordSize(length)) {
			return state.exit(StatusOutOfGas)
		}
	}
	init := state.Memory.GetCopy(int64(off), int64(length))

	msg := Message{
		Kind:      kind,
		Depth:     state.Message.Depth + 1,
		Gas:       state.GasLeft,
		Recipient: state.Message.Recipient,
		Sender:    state.Message.Recipient,
		Input:     init,
		Value:     value,
		Salt:      salt,
	}
	res := state.Host.Call(msg)
	state.GasLeft += res.GasLeft

	result := state.Stack.peek()
	if res.Status == StatusSuccess {
		result.SetBytes(res.CreateAddress.Bytes())
	} else {
		result.Clear()
		state.ReturnData = res.Output
	}
	return instr.next()
}

func opCreate(instr *Instruction, state *ExecutionState) *Instruction {
	value, offset, size := state.Stack.pop(), state.Stack.pop(), state.Stack.pop()
	state.Stack.push(new(uint256.Int))
	return createLike(instr, state, CallKindCreate, &value, offset, size, nil)
}

func opCreate2(instr *Instruction, state *ExecutionState) *Instruction {
	value, offset, size, salt := state.Stack.pop(), state.Stack.pop(), state.Stack.pop(), state.Stack.pop()
	state.Stack.push(new(uint256.Int))
	return createLike(instr, state, CallKindCreate2, &value, offset, size, &salt)
}
