package vm

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// mockHost is a minimal Host double for exercising Execute without a real
// state backend: a zero-value struct satisfying a big interface, sized to
// the Host interface this package defines.
type mockHost struct {
	balances map[common.Address]*uint256.Int
	code     map[common.Address][]byte
	storage  map[common.Address]map[common.Hash]common.Hash
	tstorage map[common.Address]map[common.Hash]common.Hash
	logs     []mockLog
	calls    []Message
	callFn   func(Message) CallResult
	block    BlockContext
	tx       TxContext
}

type mockLog struct {
	addr   common.Address
	topics []common.Hash
	data   []byte
}

func newMockHost() *mockHost {
	return &mockHost{
		balances: make(map[common.Address]*uint256.Int),
		code:     make(map[common.Address][]byte),
		storage:  make(map[common.Address]map[common.Hash]common.Hash),
		tstorage: make(map[common.Address]map[common.Hash]common.Hash),
	}
}

func (h *mockHost) AccountExists(addr common.Address) bool { return h.code[addr] != nil }

func (h *mockHost) GetBalance(addr common.Address) *uint256.Int {
	if b, ok := h.balances[addr]; ok {
		return b.Clone()
	}
	return new(uint256.Int)
}

func (h *mockHost) GetCodeSize(addr common.Address) int { return len(h.code[addr]) }

func (h *mockHost) GetCodeHash(addr common.Address) common.Hash {
	return common.BytesToHash(h.code[addr])
}

func (h *mockHost) GetCode(addr common.Address) []byte { return h.code[addr] }

func (h *mockHost) GetStorage(addr common.Address, key common.Hash) common.Hash {
	return h.storage[addr][key]
}

func (h *mockHost) SetStorage(addr common.Address, key, value common.Hash) bool {
	if h.storage[addr] == nil {
		h.storage[addr] = make(map[common.Hash]common.Hash)
	}
	h.storage[addr][key] = value
	return true
}

func (h *mockHost) GetTransientStorage(addr common.Address, key common.Hash) common.Hash {
	return h.tstorage[addr][key]
}

func (h *mockHost) SetTransientStorage(addr common.Address, key, value common.Hash) {
	if h.tstorage[addr] == nil {
		h.tstorage[addr] = make(map[common.Hash]common.Hash)
	}
	h.tstorage[addr][key] = value
}

func (h *mockHost) GetBlockHash(number uint64) common.Hash { return common.Hash{} }

func (h *mockHost) GetBlockContext() BlockContext { return h.block }

func (h *mockHost) GetTxContext() TxContext { return h.tx }

func (h *mockHost) EmitLog(addr common.Address, topics []common.Hash, data []byte) {
	h.logs = append(h.logs, mockLog{addr, topics, data})
}

func (h *mockHost) Call(msg Message) CallResult {
	h.calls = append(h.calls, msg)
	if h.callFn != nil {
		return h.callFn(msg)
	}
	return CallResult{Status: StatusSuccess}
}

func (h *mockHost) SelfDestruct(addr, beneficiary common.Address) bool { return true }

func (h *mockHost) AccessAccount(addr common.Address) (coldAccess bool) { return false }

func (h *mockHost) AccessStorage(addr common.Address, key common.Hash) (coldAccess bool) {
	return false
}
