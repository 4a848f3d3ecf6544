package vm

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySetAndGet(t *testing.T) {
	m := NewMemory()
	m.Resize(64)
	assert.Equal(t, 64, m.Len())

	m.Set(0, 4, []byte{1, 2, 3, 4})
	assert.Equal(t, []byte{1, 2, 3, 4}, m.GetCopy(0, 4))

	m.Set32(32, uint256.NewInt(0xdeadbeef))
	got := new(uint256.Int).SetBytes(m.GetPtr(32, 32))
	assert.Equal(t, uint64(0xdeadbeef), got.Uint64())
}

func TestMemoryGasCostQuadratic(t *testing.T) {
	m := NewMemory()
	fee1, err := memoryGasCost(m, 32)
	require.NoError(t, err)
	assert.Equal(t, uint64(GasMemory), fee1) // 1 word, no quadratic term yet

	fee2, err := memoryGasCost(m, 32) // no growth, already paid
	require.NoError(t, err)
	assert.Zero(t, fee2)

	fee3, err := memoryGasCost(m, 64)
	require.NoError(t, err)
	assert.Equal(t, uint64(GasMemory), fee3) // incremental cost of the 2nd word
}

func TestMemoryGasCostOverflow(t *testing.T) {
	m := NewMemory()
	_, err := memoryGasCost(m, 0x1FFFFFFFE0+1)
	assert.ErrorIs(t, err, errGasUintOverflow)
}
