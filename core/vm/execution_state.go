// Copyright 2019-2020 The evmone Authors
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

import "github.com/holiman/uint256"

// ExecutionState owns everything one Execute call mutates: stack, memory,
// return data, gas accounting, status, and the message/host pair. It
// borrows the CodeAnalysis by non-owning reference,
// "Lifecycles": code outlives analysis outlives state) and must not outlive
// it — the caller is responsible for keeping the CodeAnalysis (and the code
// slice behind it) alive for the duration of Execute.
type ExecutionState struct {
	Stack  *Stack
	Memory *Memory

	ReturnData []byte // last nested call's return data, for RETURNDATACOPY

	GasLeft uint64
	Status  Status

	// CurrentBlockCost is the gas cost of the block currently executing.
	// Needed only to reconstruct "live" gas for opcodes whose semantics
	// depend on gas remaining (GAS, CALL family, SSTORE): live gas is
	// GasLeft + (CurrentBlockCost - instr.Arg.Number).
	CurrentBlockCost uint32

	// Analysis is the non-owning borrow described above.
	Analysis *CodeAnalysis

	Revision Revision
	Message  Message
	Host     Host

	Output       []byte
	OutputOffset uint64
	OutputSize   uint64
}

// reset restores the contents of an ExecutionState so it can be pulled from
// a pool and reused across calls, mirroring evmone's execution_state::reset.
func (s *ExecutionState) reset(msg Message, rev Revision, host Host, a *CodeAnalysis, gas uint64) {
	if s.Stack == nil {
		s.Stack = newstack()
	} else {
		s.Stack.data = s.Stack.data[:0]
	}
	if s.Memory == nil {
		s.Memory = NewMemory()
	} else {
		s.Memory.store = s.Memory.store[:0]
		s.Memory.lastGasCost = 0
	}
	s.ReturnData = nil
	s.GasLeft = gas
	s.Status = StatusSuccess
	s.CurrentBlockCost = 0
	s.Analysis = a
	s.Revision = rev
	s.Message = msg
	s.Host = host
	s.Output = nil
	s.OutputOffset = 0
	s.OutputSize = 0
}

// exit terminates execution with the given status code and returns the nil
// sentinel the dispatch loop in execute.go reads as "stop".
func (s *ExecutionState) exit(status Status) *Instruction {
	s.Status = status
	switch status {
	case StatusOutOfGas:
		outOfGasCount.Inc(1)
	case StatusUndefinedInstruction:
		undefinedInstrCount.Inc(1)
	}
	return nil
}

// liveGas reconstructs "gas remaining right now" for opcodes whose cost
// depends on it, from the block's total cost (CurrentBlockCost) and the
// cumulative block cost through this instruction, stashed in
// InstructionArgument.Number at analysis time.
func (s *ExecutionState) liveGas(instr *Instruction) uint64 {
	return s.GasLeft + uint64(s.CurrentBlockCost) - uint64(instr.Arg.Number)
}

// useGas deducts amount from GasLeft, reporting whether there was enough.
// Handlers that charge dynamic gas (memory growth, access-list surcharges,
// hashing by the word) call this directly; the block's static cost was
// already charged up front by opBeginBlock.
func (s *ExecutionState) useGas(amount uint64) bool {
	if s.GasLeft < amount {
		return false
	}
	s.GasLeft -= amount
	return true
}

// ensureMemory grows Memory to cover [offset, offset+size), charging the
// incremental quadratic expansion cost first. Returns false (and sets
// OutOfGas) if the charge can't be paid or the requested region overflows
// uint64.
func (s *ExecutionState) ensureMemory(offset, size uint64) bool {
	if size == 0 {
		return true
	}
	end := offset + size
	if end < offset {
		s.Status = StatusOutOfGas
		return false
	}
	cost, err := memoryGasCost(s.Memory, end)
	if err != nil || !s.useGas(cost) {
		s.Status = StatusOutOfGas
		return false
	}
	s.Memory.Resize(toWordSize(end) * 32)
	return true
}

// asMemOffset converts a stack value used as a memory offset or length to a
// uint64, saturating to a value well past memoryGasCost's overflow cap when
// the original doesn't fit — the ensuing gas check then fails deterministically
// instead of silently wrapping.
func asMemOffset(v *uint256.Int) uint64 {
	if !v.IsUint64() {
		return 1 << 40
	}
	return v.Uint64()
}
