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

// Arithmetic, comparison and bitwise opcode handlers, in the style of
// go-ethereum's uint256-based core/vm/instructions.go, which operates in
// place on stack slots rather than boxing through math/big.

func opAdd(instr *Instruction, state *ExecutionState) *Instruction {
	x, y := state.Stack.pop(), state.Stack.peek()
	y.Add(&x, y)
	return instr.next()
}

func opMul(instr *Instruction, state *ExecutionState) *Instruction {
	x, y := state.Stack.pop(), state.Stack.peek()
	y.Mul(&x, y)
	return instr.next()
}

func opSub(instr *Instruction, state *ExecutionState) *Instruction {
	x, y := state.Stack.pop(), state.Stack.peek()
	y.Sub(&x, y)
	return instr.next()
}

func opDiv(instr *Instruction, state *ExecutionState) *Instruction {
	x, y := state.Stack.pop(), state.Stack.peek()
	y.Div(&x, y)
	return instr.next()
}

func opSdiv(instr *Instruction, state *ExecutionState) *Instruction {
	x, y := state.Stack.pop(), state.Stack.peek()
	y.SDiv(&x, y)
	return instr.next()
}

func opMod(instr *Instruction, state *ExecutionState) *Instruction {
	x, y := state.Stack.pop(), state.Stack.peek()
	y.Mod(&x, y)
	return instr.next()
}

func opSmod(instr *Instruction, state *ExecutionState) *Instruction {
	x, y := state.Stack.pop(), state.Stack.peek()
	y.SMod(&x, y)
	return instr.next()
}

func opAddmod(instr *Instruction, state *ExecutionState) *Instruction {
	x, y, z := state.Stack.pop(), state.Stack.pop(), state.Stack.peek()
	if z.IsZero() {
		z.Clear()
	} else {
		z.AddMod(&x, &y, z)
	}
	return instr.next()
}

func opMulmod(instr *Instruction, state *ExecutionState) *Instruction {
	x, y, z := state.Stack.pop(), state.Stack.pop(), state.Stack.peek()
	z.MulMod(&x, &y, z)
	return instr.next()
}

func opExp(instr *Instruction, state *ExecutionState) *Instruction {
	base, exponent := state.Stack.pop(), state.Stack.peek()
	byteLen := (exponent.BitLen() + 7) / 8
	if byteLen > 0 {
		if !state.useGas(uint64(byteLen) * gasExpByte(state.Revision)) {
			return state.exit(StatusOutOfGas)
		}
	}
	exponent.Exp(&base, exponent)
	return instr.next()
}

func opSignExtend(instr *Instruction, state *ExecutionState) *Instruction {
	back, num := state.Stack.pop(), state.Stack.peek()
	num.ExtendSign(num, &back)
	return instr.next()
}

func opLt(instr *Instruction, state *ExecutionState) *Instruction {
	x, y := state.Stack.pop(), state.Stack.peek()
	if x.Lt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return instr.next()
}

func opGt(instr *Instruction, state *ExecutionState) *Instruction {
	x, y := state.Stack.pop(), state.Stack.peek()
	if x.Gt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return instr.next()
}

func opSlt(instr *Instruction, state *ExecutionState) *Instruction {
	x, y := state.Stack.pop(), state.Stack.peek()
	if x.Slt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return instr.next()
}

func opSgt(instr *Instruction, state *ExecutionState) *Instruction {
	x, y := state.Stack.pop(), state.Stack.peek()
	if x.Sgt(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return instr.next()
}

func opEq(instr *Instruction, state *ExecutionState) *Instruction {
	x, y := state.Stack.pop(), state.Stack.peek()
	if x.Eq(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	return instr.next()
}

func opIszero(instr *Instruction, state *ExecutionState) *Instruction {
	x := state.Stack.peek()
	if x.IsZero() {
		x.SetOne()
	} else {
		x.Clear()
	}
	return instr.next()
}

func opAnd(instr *Instruction, state *ExecutionState) *Instruction {
	x, y := state.Stack.pop(), state.Stack.peek()
	y.And(&x, y)
	return instr.next()
}

func opOr(instr *Instruction, state *ExecutionState) *Instruction {
	x, y := state.Stack.pop(), state.Stack.peek()
	y.Or(&x, y)
	return instr.next()
}

func opXor(instr *Instruction, state *ExecutionState) *Instruction {
	x, y := state.Stack.pop(), state.Stack.peek()
	y.Xor(&x, y)
	return instr.next()
}

func opNot(instr *Instruction, state *ExecutionState) *Instruction {
	x := state.Stack.peek()
	x.Not(x)
	return instr.next()
}

func opByte(instr *Instruction, state *ExecutionState) *Instruction {
	th, val := state.Stack.pop(), state.Stack.peek()
	val.Byte(&th)
	return instr.next()
}

func opShl(instr *Instruction, state *ExecutionState) *Instruction {
	shift, value := state.Stack.pop(), state.Stack.peek()
	if shift.LtUint64(256) {
		value.Lsh(value, uint(shift.Uint64()))
	} else {
		value.Clear()
	}
	return instr.next()
}

func opShr(instr *Instruction, state *ExecutionState) *Instruction {
	shift, value := state.Stack.pop(), state.Stack.peek()
	if shift.LtUint64(256) {
		value.Rsh(value, uint(shift.Uint64()))
	} else {
		value.Clear()
	}
	return instr.next()
}

func opSar(instr *Instruction, state *ExecutionState) *Instruction {
	shift, value := state.Stack.pop(), state.Stack.peek()
	if shift.GtUint64(256) {
		if value.Sign() >= 0 {
			value.Clear()
		} else {
			value.SetAllOne()
		}
		return instr.next()
	}
	value.SRsh(value, uint(shift.Uint64()))
	return instr.next()
}

// gasExpByte returns the per-byte surcharge EXP pays for its exponent,
// repriced from 10 to 50 by EIP-160 (SpuriousDragon).
func gasExpByte(rev Revision) uint64 {
	if rev >= SpuriousDragon {
		return 50
	}
	return 10
}
