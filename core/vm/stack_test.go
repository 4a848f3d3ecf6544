package vm

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
)

func TestStackPushPopOrder(t *testing.T) {
	s := newstack()
	defer returnStack(s)

	s.push(uint256.NewInt(10))
	s.push(uint256.NewInt(20))
	s.push(uint256.NewInt(30))
	assert.Equal(t, 3, s.len())

	v1 := s.pop()
	v2 := s.pop()
	v3 := s.pop()
	assert.Equal(t, uint64(30), v1.Uint64())
	assert.Equal(t, uint64(20), v2.Uint64())
	assert.Equal(t, uint64(10), v3.Uint64())
	assert.Equal(t, 0, s.len())
}

func TestStackDupAndSwap(t *testing.T) {
	s := newstack()
	defer returnStack(s)

	s.push(uint256.NewInt(10))
	s.push(uint256.NewInt(20))
	s.push(uint256.NewInt(30)) // top

	s.dup(2) // DUP2: duplicate the 2nd item from the top (20)
	assert.Equal(t, uint64(20), s.peek().Uint64())
	assert.Equal(t, 4, s.len())

	s.swap(2) // swap top (20) with the item below it (30)
	assert.Equal(t, uint64(30), s.peek().Uint64())
	assert.Equal(t, uint64(20), s.Back(1).Uint64())
}

func TestStackPoolReuseIsClean(t *testing.T) {
	s := newstack()
	s.push(uint256.NewInt(42))
	returnStack(s)

	s2 := newstack()
	defer returnStack(s2)
	assert.Equal(t, 0, s2.len())
}
