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

import "github.com/holiman/uint256"

// Memory is the EVM's byte-addressable, word-growable working buffer: the
// concrete implementation MLOAD/MSTORE/RETURN/REVERT/CALL etc. operate on.
// Quadratic gas for growth is charged by the caller (the
// opcode's dynamic-gas handler), not by Memory itself.
type Memory struct {
	store       []byte
	lastGasCost uint64
}

func NewMemory() *Memory {
	return &Memory{}
}

// Len returns the current memory size in bytes.
func (m *Memory) Len() int {
	return len(m.store)
}

// Resize grows the buffer to size bytes, zero-filling the new region. It
// never shrinks.
func (m *Memory) Resize(size uint64) {
	if uint64(len(m.store)) < size {
		m.store = append(m.store, make([]byte, size-uint64(len(m.store)))...)
	}
}

// Set writes value into the memory region [offset, offset+size).
func (m *Memory) Set(offset, size uint64, value []byte) {
	if size == 0 {
		return
	}
	if offset+size > uint64(len(m.store)) {
		panic("vm: memory: invalid memory: store empty")
	}
	copy(m.store[offset:offset+size], value)
}

// Set32 writes val, left-padded to 32 bytes, at offset.
func (m *Memory) Set32(offset uint64, val *uint256.Int) {
	if offset+32 > uint64(len(m.store)) {
		panic("vm: memory: invalid memory: store empty")
	}
	b := val.Bytes32()
	copy(m.store[offset:offset+32], b[:])
}

// GetCopy returns an independent copy of the region [offset, offset+size).
func (m *Memory) GetCopy(offset, size int64) []byte {
	if size == 0 {
		return nil
	}
	if len(m.store) > int(offset) {
		cpy := make([]byte, size)
		copy(cpy, m.store[offset:offset+size])
		return cpy
	}
	return nil
}

// GetPtr returns a slice aliasing the region [offset, offset+size). Callers
// must not retain it past the next memory mutation.
func (m *Memory) GetPtr(offset, size int64) []byte {
	if size == 0 {
		return nil
	}
	return m.store[offset : offset+size]
}

// Data returns the whole backing slice.
func (m *Memory) Data() []byte {
	return m.store
}

// toWordSize returns the number of 32-byte words needed to hold size bytes.
func toWordSize(size uint64) uint64 {
	if size > 0xffffffffe0 {
		return 0xffffffffe0/32 + 1
	}
	return (size + 31) / 32
}

// memoryGasCost computes the quadratic memory-expansion gas for growing to
// newMemSize bytes, charging only the incremental region (grounded in
// other_examples/ethereum-go-ethereum__gas_table.go's memoryGasCost).
func memoryGasCost(mem *Memory, newMemSize uint64) (uint64, error) {
	if newMemSize == 0 {
		return 0, nil
	}
	if newMemSize > 0x1FFFFFFFE0 {
		return 0, errGasUintOverflow
	}
	newMemSizeWords := toWordSize(newMemSize)
	newMemSize = newMemSizeWords * 32

	if newMemSize > uint64(mem.Len()) {
		square := newMemSizeWords * newMemSizeWords
		linCoef := newMemSizeWords * GasMemory
		quadCoef := square / GasQuadCoeffDiv
		newTotalFee := linCoef + quadCoef

		fee := newTotalFee - mem.lastGasCost
		mem.lastGasCost = newTotalFee
		return fee, nil
	}
	return 0, nil
}

const (
	GasMemory       = 3
	GasQuadCoeffDiv = 512
)
