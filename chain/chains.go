// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 DuneRoot
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - network selection
//
// the chain determines the address version prefix; it is selected
// once at startup and defaults to the live network
package chain

import (
	"sync"

	"github.com/DuneRoot/bpl-go/fault"
)

// names of all chains
const (
	Bpl     = "bpl"
	Testing = "testing"
)

// address version prefixes
//
// the version is the first byte of a raw address and fixes the
// leading character of its base58 form
const (
	BplAddressVersion     byte = 0x19 // addresses start with 'B'
	TestingAddressVersion byte = 0x1e // addresses start with 'D'
)

var globalData = struct {
	sync.RWMutex
	name           string
	addressVersion byte
	testing        bool
}{
	name:           Bpl,
	addressVersion: BplAddressVersion,
}

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Bpl, Testing:
		return true
	default:
		return false
	}
}

// Select - set the current chain by name
//
// normally called once at startup; an unknown name leaves the
// selection unchanged
func Select(name string) error {
	globalData.Lock()
	defer globalData.Unlock()

	switch name {
	case Bpl:
		globalData.addressVersion = BplAddressVersion
		globalData.testing = false
	case Testing:
		globalData.addressVersion = TestingAddressVersion
		globalData.testing = true
	default:
		return fault.ErrInvalidChain
	}
	globalData.name = name
	return nil
}

// Name - name of the current chain
func Name() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.name
}

// AddressVersion - address version prefix of the current chain
func AddressVersion() byte {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.addressVersion
}

// IsTesting - special for testing
func IsTesting() bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.testing
}
