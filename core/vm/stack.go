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
	"sync"

	"github.com/holiman/uint256"
)

// Stack is the EVM's 256-bit-word operand stack. It treats the
// big-integer stack as an external collaborator referenced only through the
// contracts the core imposes (depth, 1024-slot limit); this is the concrete
// implementation opcode handlers in this module operate on.
type Stack struct {
	data []uint256.Int
}

var stackPool = sync.Pool{
	New: func() any {
		return &Stack{data: make([]uint256.Int, 0, 16)}
	},
}

func newstack() *Stack {
	return stackPool.Get().(*Stack)
}

func returnStack(s *Stack) {
	s.data = s.data[:0]
	stackPool.Put(s)
}

func (s *Stack) push(d *uint256.Int) {
	s.data = append(s.data, *d)
}

func (s *Stack) pop() (ret uint256.Int) {
	ret = s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return
}

func (s *Stack) len() int {
	return len(s.data)
}

func (s *Stack) swap(n int) {
	s.data[s.len()-n], s.data[s.len()-1] = s.data[s.len()-1], s.data[s.len()-n]
}

func (s *Stack) dup(n int) {
	s.push(&s.data[s.len()-n])
}

func (s *Stack) peek() *uint256.Int {
	return &s.data[s.len()-1]
}

// Back returns the n'th item from the top of the stack, 0-indexed.
func (s *Stack) Back(n int) *uint256.Int {
	return &s.data[s.len()-n-1]
}

// Data returns the live stack slice; callers must not retain or mutate it.
func (s *Stack) Data() []uint256.Int {
	return s.data
}
