// Copyright 2015 The go-ethereum Authors
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

import "errors"

// Status is the terminal condition of an execution, set on ExecutionState
// before a handler returns a nil next-instruction pointer. STOP, RETURN and
// SELFDESTRUCT all settle on StatusSuccess; there is no separate status for
// each, the same collapsing evmc's evmc_status_code does.
type Status int

const (
	StatusSuccess Status = iota
	StatusRevert
	StatusOutOfGas
	StatusStackUnderflow
	StatusStackOverflow
	StatusBadJumpDestination
	StatusInvalidInstruction
	StatusUndefinedInstruction
	StatusStaticStateChange
	StatusInvalidMemoryAccess
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusRevert:
		return "revert"
	case StatusOutOfGas:
		return "out of gas"
	case StatusStackUnderflow:
		return "stack underflow"
	case StatusStackOverflow:
		return "stack overflow"
	case StatusBadJumpDestination:
		return "bad jump destination"
	case StatusInvalidInstruction:
		return "invalid instruction"
	case StatusUndefinedInstruction:
		return "undefined instruction"
	case StatusStaticStateChange:
		return "write protection"
	case StatusInvalidMemoryAccess:
		return "invalid memory access"
	default:
		return "unknown status"
	}
}

// Succeeded reports whether gas_left should survive into the Result (section
// 4.3's "Result assembly"): only SUCCESS and REVERT keep remaining gas.
func (s Status) Succeeded() bool {
	return s == StatusSuccess || s == StatusRevert
}

var errGasUintOverflow = errors.New("evm: gas uint64 overflow")
