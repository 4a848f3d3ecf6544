// Copyright 2023 The evmone Authors
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

// Package vm implements a basic-block pre-analyzer and tail-threaded
// interpreter for EVM bytecode: Analyze decomposes code into basic blocks
// once, precomputing each block's gas and stack requirements, and Execute
// then walks the decoded instruction stream handler-to-handler with no
// per-instruction redispatch through a central switch.
package vm
