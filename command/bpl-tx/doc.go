// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 DuneRoot
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command bpl-tx - build, sign and verify transactions
//
// transactions are printed and read in their JSON projection; the
// tool never stores secrets or talks to the network
//
// an optional Lua configuration file selects the chain and enables
// file logging; without one everything goes to the console
package main
