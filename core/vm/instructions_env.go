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
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

func opSha3(instr *Instruction, state *ExecutionState) *Instruction {
	offset, size := state.Stack.pop(), state.Stack.pop()
	off, length := asMemOffset(&offset), asMemOffset(&size)
	if !state.ensureMemory(off, length) {
		return nil
	}
	if !state.useGas(GasSha3Word * toWordSize(length)) {
		return state.exit(StatusOutOfGas)
	}
	hash := crypto.Keccak256(state.Memory.GetPtr(int64(off), int64(length)))
	state.Stack.push(new(uint256.Int).SetBytes(hash))
	return instr.next()
}

func opAddress(instr *Instruction, state *ExecutionState) *Instruction {
	state.Stack.push(new(uint256.Int).SetBytes(state.Message.Recipient.Bytes()))
	return instr.next()
}

func opBalance(instr *Instruction, state *ExecutionState) *Instruction {
	addr := state.Stack.peek()
	a := addressFromUint256(addr)
	if state.Revision >= Berlin {
		cost := uint64(GasWarmAccess)
		if state.Host.AccessAccount(a) {
			cost = GasSloadColdEIP2929
		}
		if !state.useGas(cost) {
			return state.exit(StatusOutOfGas)
		}
	}
	addr.Set(state.Host.GetBalance(a))
	return instr.next()
}

func opOrigin(instr *Instruction, state *ExecutionState) *Instruction {
	state.Stack.push(new(uint256.Int).SetBytes(state.Host.GetTxContext().Origin.Bytes()))
	return instr.next()
}

func opCaller(instr *Instruction, state *ExecutionState) *Instruction {
	state.Stack.push(new(uint256.Int).SetBytes(state.Message.Sender.Bytes()))
	return instr.next()
}

func opCallValue(instr *Instruction, state *ExecutionState) *Instruction {
	v := new(uint256.Int)
	if state.Message.Value != nil {
		v.Set(state.Message.Value)
	}
	state.Stack.push(v)
	return instr.next()
}

func opCallDataLoad(instr *Instruction, state *ExecutionState) *Instruction {
	off := state.Stack.peek()
	o := asMemOffset(off)
	var buf [32]byte
	if o < uint64(len(state.Message.Input)) {
		copy(buf[:], state.Message.Input[o:])
	}
	off.SetBytes(buf[:])
	return instr.next()
}

func opCallDataSize(instr *Instruction, state *ExecutionState) *Instruction {
	state.Stack.push(new(uint256.Int).SetUint64(uint64(len(state.Message.Input))))
	return instr.next()
}

func opCallDataCopy(instr *Instruction, state *ExecutionState) *Instruction {
	destOffset, offset, size := state.Stack.pop(), state.Stack.pop(), state.Stack.pop()
	return copyToMemory(instr, state, destOffset, offset, size, state.Message.Input, GasFastestStep)
}

func opCodeSize(instr *Instruction, state *ExecutionState) *Instruction {
	state.Stack.push(new(uint256.Int).SetUint64(uint64(state.Analysis.CodeEnd)))
	return instr.next()
}

func opCodeCopy(instr *Instruction, state *ExecutionState) *Instruction {
	destOffset, offset, size := state.Stack.pop(), state.Stack.pop(), state.Stack.pop()
	code := state.Host.GetCode(state.Message.Recipient)
	return copyToMemory(instr, state, destOffset, offset, size, code, GasFastestStep)
}

func opGasprice(instr *Instruction, state *ExecutionState) *Instruction {
	gp := new(uint256.Int)
	if p := state.Host.GetTxContext().GasPrice; p != nil {
		gp.SetFromBig(p)
	}
	state.Stack.push(gp)
	return instr.next()
}

func opExtCodeSize(instr *Instruction, state *ExecutionState) *Instruction {
	addr := state.Stack.peek()
	a := addressFromUint256(addr)
	if !chargeColdAccountAccess(state, a) {
		return nil
	}
	addr.SetUint64(uint64(state.Host.GetCodeSize(a)))
	return instr.next()
}

func opExtCodeCopy(instr *Instruction, state *ExecutionState) *Instruction {
	addr, destOffset, offset, size := state.Stack.pop(), state.Stack.pop(), state.Stack.pop(), state.Stack.pop()
	a := addressFromUint256(&addr)
	if !chargeColdAccountAccess(state, a) {
		return nil
	}
	code := state.Host.GetCode(a)
	return copyToMemory(instr, state, destOffset, offset, size, code, GasFastestStep)
}

func opExtCodeHash(instr *Instruction, state *ExecutionState) *Instruction {
	addr := state.Stack.peek()
	a := addressFromUint256(addr)
	if !chargeColdAccountAccess(state, a) {
		return nil
	}
	if !state.Host.AccountExists(a) {
		addr.Clear()
		return instr.next()
	}
	addr.SetBytes(state.Host.GetCodeHash(a).Bytes())
	return instr.next()
}

func opReturnDataSize(instr *Instruction, state *ExecutionState) *Instruction {
	state.Stack.push(new(uint256.Int).SetUint64(uint64(len(state.ReturnData))))
	return instr.next()
}

func opReturnDataCopy(instr *Instruction, state *ExecutionState) *Instruction {
	destOffset, offset, size := state.Stack.pop(), state.Stack.pop(), state.Stack.pop()
	end := offset.Uint64() + size.Uint64()
	if !offset.IsUint64() || !size.IsUint64() || end > uint64(len(state.ReturnData)) {
		return state.exit(StatusInvalidMemoryAccess)
	}
	return copyToMemory(instr, state, destOffset, offset, size, state.ReturnData, GasFastestStep)
}

func opBlockhash(instr *Instruction, state *ExecutionState) *Instruction {
	num := state.Stack.peek()
	if !num.IsUint64() {
		num.Clear()
		return instr.next()
	}
	num.SetBytes(state.Host.GetBlockHash(num.Uint64()).Bytes())
	return instr.next()
}

func opCoinbase(instr *Instruction, state *ExecutionState) *Instruction {
	state.Stack.push(new(uint256.Int).SetBytes(state.Host.GetBlockContext().Coinbase.Bytes()))
	return instr.next()
}

func opTimestamp(instr *Instruction, state *ExecutionState) *Instruction {
	state.Stack.push(new(uint256.Int).SetUint64(state.Host.GetBlockContext().Time))
	return instr.next()
}

func opNumber(instr *Instruction, state *ExecutionState) *Instruction {
	n := new(uint256.Int)
	if v := state.Host.GetBlockContext().BlockNumber; v != nil {
		n.SetFromBig(v)
	}
	state.Stack.push(n)
	return instr.next()
}

// opDifficulty serves both DIFFICULTY (pre-Merge) and its PREVRANDAO alias
// (Merge onward): the opcode byte never changes, only which block-context
// field is meaningful (GLOSSARY, "DIFFICULTY/PREVRANDAO").
func opDifficulty(instr *Instruction, state *ExecutionState) *Instruction {
	bc := state.Host.GetBlockContext()
	if state.Revision >= Merge {
		if bc.Random != nil {
			state.Stack.push(new(uint256.Int).SetBytes(bc.Random.Bytes()))
		} else {
			state.Stack.push(new(uint256.Int))
		}
		return instr.next()
	}
	d := new(uint256.Int)
	if bc.Difficulty != nil {
		d.SetFromBig(bc.Difficulty)
	}
	state.Stack.push(d)
	return instr.next()
}

func opGasLimit(instr *Instruction, state *ExecutionState) *Instruction {
	state.Stack.push(new(uint256.Int).SetUint64(state.Host.GetBlockContext().GasLimit))
	return instr.next()
}

func opChainID(instr *Instruction, state *ExecutionState) *Instruction {
	state.Stack.push(new(uint256.Int))
	return instr.next()
}

func opSelfBalance(instr *Instruction, state *ExecutionState) *Instruction {
	state.Stack.push(state.Host.GetBalance(state.Message.Recipient))
	return instr.next()
}

func opBaseFee(instr *Instruction, state *ExecutionState) *Instruction {
	f := new(uint256.Int)
	if bf := state.Host.GetBlockContext().BaseFee; bf != nil {
		f.SetFromBig(bf)
	}
	state.Stack.push(f)
	return instr.next()
}

func opBlobHash(instr *Instruction, state *ExecutionState) *Instruction {
	idx := state.Stack.peek()
	hashes := state.Host.GetTxContext().BlobHashes
	if idx.IsUint64() && idx.Uint64() < uint64(len(hashes)) {
		idx.SetBytes(hashes[idx.Uint64()].Bytes())
	} else {
		idx.Clear()
	}
	return instr.next()
}

func opBlobBaseFee(instr *Instruction, state *ExecutionState) *Instruction {
	f := new(uint256.Int)
	if bf := state.Host.GetTxContext().BlobFeeCap; bf != nil {
		f.SetFromBig(bf)
	}
	state.Stack.push(f)
	return instr.next()
}

// copyToMemory implements the *COPY family's shared shape: pop dest/src
// offsets and size already done by the caller, grow memory, charge the
// word-rounded copy surcharge, then copy (zero-padding past the source's
// end, per the Yellow Paper's *COPY semantics).
func copyToMemory(instr *Instruction, state *ExecutionState, destOffset, offset, size uint256.Int, src []byte, wordGas uint64) *Instruction {
	length := asMemOffset(&size)
	dest := asMemOffset(&destOffset)
	if !state.ensureMemory(dest, length) {
		return nil
	}
	if wordGas > 0 && !state.useGas(wordGas*toWordSize(length)) {
		return state.exit(StatusOutOfGas)
	}
	if length == 0 {
		return instr.next()
	}
	srcOff := asMemOffset(&offset)
	dst := state.Memory.store[dest : dest+length]
	if srcOff < uint64(len(src)) {
		n := uint64(copy(dst, src[srcOff:]))
		for i := n; i < length; i++ {
			dst[i] = 0
		}
	} else {
		for i := range dst {
			dst[i] = 0
		}
	}
	return instr.next()
}

// chargeColdAccountAccess charges the EIP-2929 cold-access surcharge for
// opcodes that read another account's code or metadata (EXTCODESIZE,
// EXTCODECOPY, EXTCODEHASH). Pre-Berlin these cost only the static table
// entry, already charged by the block header.
func chargeColdAccountAccess(state *ExecutionState, addr common.Address) bool {
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

func addressFromUint256(v *uint256.Int) common.Address {
	return common.Address(v.Bytes20())
}
