package vm

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteSimpleArithmeticReturnsSum(t *testing.T) {
	// PUSH1 3; PUSH1 5; ADD; PUSH1 0; MSTORE; PUSH1 32; PUSH1 0; RETURN
	code := []byte{
		byte(PUSH1), 3,
		byte(PUSH1), 5,
		byte(ADD),
		byte(PUSH1), 0,
		byte(MSTORE),
		byte(PUSH1), 32,
		byte(PUSH1), 0,
		byte(RETURN),
	}
	host := newMockHost()
	res := Execute(host, Cancun, Message{Gas: 1_000_000, Recipient: common.Address{1}}, code)

	require.Equal(t, StatusSuccess, res.Status)
	sum := new(uint256.Int).SetBytes(res.Output)
	assert.Equal(t, uint64(8), sum.Uint64())
	assert.Less(t, res.GasLeft, uint64(1_000_000))
}

func TestExecuteStopOnlyKeepsAllGas(t *testing.T) {
	host := newMockHost()
	res := Execute(host, Cancun, Message{Gas: 100, Recipient: common.Address{1}}, []byte{byte(STOP)})
	require.Equal(t, StatusSuccess, res.Status)
	assert.Equal(t, uint64(100), res.GasLeft)
}

func TestExecuteOutOfGas(t *testing.T) {
	code := []byte{byte(PUSH1), 1, byte(PUSH1), 2, byte(ADD), byte(STOP)}
	host := newMockHost()
	res := Execute(host, Cancun, Message{Gas: 1, Recipient: common.Address{1}}, code)
	assert.Equal(t, StatusOutOfGas, res.Status)
	assert.Zero(t, res.GasLeft)
}

func TestExecuteBadJumpDestination(t *testing.T) {
	code := []byte{byte(PUSH1), 0x42, byte(JUMP)}
	host := newMockHost()
	res := Execute(host, Cancun, Message{Gas: 1_000_000, Recipient: common.Address{1}}, code)
	assert.Equal(t, StatusBadJumpDestination, res.Status)
}

func TestExecuteJumpToValidDestination(t *testing.T) {
	// PUSH1 to JUMPDEST offset; JUMP; INVALID (dead); JUMPDEST; STOP
	code := []byte{
		byte(PUSH1), 4,
		byte(JUMP),
		byte(INVALID),
		byte(JUMPDEST),
		byte(STOP),
	}
	host := newMockHost()
	res := Execute(host, Cancun, Message{Gas: 1_000_000, Recipient: common.Address{1}}, code)
	assert.Equal(t, StatusSuccess, res.Status)
}

func TestExecuteStackUnderflow(t *testing.T) {
	host := newMockHost()
	res := Execute(host, Cancun, Message{Gas: 1_000_000, Recipient: common.Address{1}}, []byte{byte(ADD)})
	assert.Equal(t, StatusStackUnderflow, res.Status)
}

func TestExecuteRevertKeepsGasAndOutput(t *testing.T) {
	code := []byte{
		byte(PUSH1), 0xaa,
		byte(PUSH1), 0,
		byte(MSTORE8),
		byte(PUSH1), 1,
		byte(PUSH1), 0,
		byte(REVERT),
	}
	host := newMockHost()
	res := Execute(host, Cancun, Message{Gas: 1_000_000, Recipient: common.Address{1}}, code)
	require.Equal(t, StatusRevert, res.Status)
	assert.Equal(t, []byte{0xaa}, res.Output)
	assert.Greater(t, res.GasLeft, uint64(0))
}

func TestExecuteSstoreAndSload(t *testing.T) {
	// PUSH1 7; PUSH1 0; SSTORE; PUSH1 0; SLOAD
	code := []byte{
		byte(PUSH1), 7,
		byte(PUSH1), 0,
		byte(SSTORE),
		byte(PUSH1), 0,
		byte(SLOAD),
		byte(STOP),
	}
	host := newMockHost()
	addr := common.Address{9}
	res := Execute(host, Cancun, Message{Gas: 1_000_000, Recipient: addr}, code)
	require.Equal(t, StatusSuccess, res.Status)
	assert.Equal(t, common.BytesToHash([]byte{7}), host.storage[addr][common.Hash{}])
}

func TestExecuteStaticCallRejectsSstore(t *testing.T) {
	code := []byte{byte(PUSH1), 1, byte(PUSH1), 0, byte(SSTORE)}
	host := newMockHost()
	res := Execute(host, Cancun, Message{Gas: 1_000_000, Recipient: common.Address{1}, Static: true}, code)
	assert.Equal(t, StatusStaticStateChange, res.Status)
}

func TestExecuteCallDelegatesToHost(t *testing.T) {
	code := []byte{
		byte(PUSH1), 0, // outSize
		byte(PUSH1), 0, // outOffset
		byte(PUSH1), 0, // inSize
		byte(PUSH1), 0, // inOffset
		byte(PUSH1), 0, // value
		byte(PUSH1), 0xaa, // addr
		byte(PUSH2), 0x10, 0x00, // gas
		byte(CALL),
		byte(STOP),
	}
	host := newMockHost()
	var captured Message
	host.callFn = func(m Message) CallResult {
		captured = m
		return CallResult{Status: StatusSuccess, GasLeft: 100}
	}
	res := Execute(host, Cancun, Message{Gas: 1_000_000, Recipient: common.Address{1}}, code)
	require.Equal(t, StatusSuccess, res.Status)
	assert.Equal(t, CallKindCall, captured.Kind)
	assert.Equal(t, common.BytesToAddress([]byte{0xaa}), captured.Recipient)
}
