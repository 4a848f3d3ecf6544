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

// Base per-opcode gas costs, named the way the Yellow Paper and the
// teacher's params package name them.
const (
	GasZeroStep    = 0
	GasQuickStep   = 2
	GasFastestStep = 3
	GasFastStep    = 5
	GasMidStep     = 8
	GasSlowStep    = 10
	GasExtStep     = 20

	GasSha3                   = 30
	GasSha3Word               = 6
	GasBalance                = 700
	GasExtcodeSize            = 700
	GasExtcodeCopy            = 700
	GasExtcodeHash            = 700
	GasSload                  = 800
	GasSloadEIP2929           = 100
	GasSloadColdEIP2929       = 2100
	GasWarmAccess             = 100
	GasSstoreSet              = 20000
	GasSstoreReset            = 5000
	GasJumpdest               = 1
	GasLog                    = 375
	GasLogData                = 8
	GasLogTopic               = 375
	GasCreate                 = 32000
	GasCreateData             = 200
	GasCall                   = 700
	GasCallValue              = 9000
	GasCallStipend            = 2300
	GasNewAccount             = 25000
	GasSelfdestruct           = 5000
	GasSelfdestructNewAccount = 25000

	// maxCodeSize bounds the code a contract may deploy (EIP-170).
	maxCodeSize = 24576

	// maxInstructionBaseCost is the highest constant gas cost of any single
	// opcode. Used only in the static bound check documented on
	// BlockInfo.GasCost: maxCodeSize*maxInstructionBaseCost must fit in a
	// uint32.
	maxInstructionBaseCost = GasCreate

	// maxInstructionStackIncrease is the largest positive stack delta of
	// any single opcode (DUP16 is +1, but pushes are also +1; nothing
	// exceeds 1). Used in the analogous bound check for
	// BlockInfo.StackMaxGrowth.
	maxInstructionStackIncrease = 1

	// maxStackSize is the maximum number of 256-bit words the EVM stack may
	// ever hold at once, checked once at block entry.
	maxStackSize = 1024
)

func init() {
	// static_assert equivalents from analysis.hpp: verify the clamped
	// BlockInfo fields cannot silently overflow for any code the analyzer
	// will ever see.
	if maxCodeSize*maxInstructionBaseCost >= 1<<32 {
		panic("vm: potential BlockInfo.GasCost overflow")
	}
	if maxCodeSize*maxInstructionStackIncrease >= 1<<15 {
		panic("vm: potential BlockInfo.StackMaxGrowth overflow")
	}
}
