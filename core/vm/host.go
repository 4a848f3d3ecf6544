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
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// CallKind distinguishes the EVM closures that can spawn a nested frame.
type CallKind int

const (
	CallKindCall CallKind = iota
	CallKindDelegateCall
	CallKindCallCode
	CallKindStaticCall
	CallKindCreate
	CallKindCreate2
)

// Message describes the call being executed, the Go analogue of evmc_message
// and the Contract/ScopeContext fields the analyzer/executor actually
// consult.
type Message struct {
	Kind      CallKind
	Static    bool
	Depth     int
	Gas       uint64
	Recipient common.Address
	Sender    common.Address
	Input     []byte
	Value     *uint256.Int
	Salt      *uint256.Int // only meaningful for CallKindCreate2
}

// BlockContext carries block-scoped values opcode handlers may read
// (COINBASE, NUMBER, TIMESTAMP, ...). Mirrors core/vm/evm.go's BlockContext,
// trimmed to fields this module's handlers touch.
type BlockContext struct {
	Coinbase    common.Address
	GasLimit    uint64
	BlockNumber *big.Int
	Time        uint64
	Difficulty  *big.Int
	BaseFee     *big.Int
	BlobBaseFee *big.Int
	Random      *common.Hash
}

// TxContext carries transaction-scoped values (ORIGIN, GASPRICE, BLOBHASH).
type TxContext struct {
	Origin     common.Address
	GasPrice   *big.Int
	BlobHashes []common.Hash
	BlobFeeCap *big.Int
}

// CallResult is what a nested Host.Call returns to the opcode handler that
// invoked it.
type CallResult struct {
	Status       Status
	GasLeft      uint64
	Output       []byte
	CreateAddress common.Address // only meaningful for CREATE/CREATE2
}

// Host is the set of callbacks the interpreter needs from its embedder:
// account/storage/log/call/selfdestruct access. Section 6 calls this "the
// usual EVM host callbacks... treated as an opaque vtable" — this interface
// fixes the concrete method set the handlers in this module actually call,
// simplified from evmc_host_interface and core/vm/evm.go's
// StateDB/CanTransferFunc/TransferFunc/GetHashFunc.
type Host interface {
	AccountExists(addr common.Address) bool
	GetBalance(addr common.Address) *uint256.Int
	GetCodeSize(addr common.Address) int
	GetCodeHash(addr common.Address) common.Hash
	GetCode(addr common.Address) []byte
	GetStorage(addr common.Address, key common.Hash) common.Hash
	SetStorage(addr common.Address, key, value common.Hash) bool
	GetTransientStorage(addr common.Address, key common.Hash) common.Hash
	SetTransientStorage(addr common.Address, key, value common.Hash)
	GetBlockHash(number uint64) common.Hash
	GetBlockContext() BlockContext
	GetTxContext() TxContext
	EmitLog(addr common.Address, topics []common.Hash, data []byte)
	Call(msg Message) CallResult
	SelfDestruct(addr, beneficiary common.Address) bool
	AccessAccount(addr common.Address) (coldAccess bool)
	AccessStorage(addr common.Address, key common.Hash) (coldAccess bool)
}
