// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 DuneRoot
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - base58 account addresses
//
// the raw form of an address is one version byte followed by the
// RIPEMD-160 digest of a compressed public key; the text form
// appends a four byte double SHA-256 checksum and encodes the
// result as base58
package address

import (
	"bytes"
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"

	"github.com/DuneRoot/bpl-go/chain"
	"github.com/DuneRoot/bpl-go/fault"
	"github.com/DuneRoot/bpl-go/util"
)

// byte sizes of the address forms
const (
	RawLength      = 21 // version byte + RIPEMD-160 digest
	checkedLength  = RawLength + checksumLength
	checksumLength = 4
)

// DecodeChecked - decode a base58 address and verify its checksum
//
// returns the raw 21 byte form; the version byte is not validated
// against the current chain so foreign addresses still decode
func DecodeChecked(address string) ([]byte, error) {
	addr := util.FromBase58(address)
	if 0 == len(addr) {
		return nil, fault.ErrCannotDecodeAddress
	}
	if checkedLength != len(addr) {
		return nil, fault.ErrAddressLength
	}
	if !bytes.Equal(checksum(addr[:RawLength]), addr[RawLength:]) {
		return nil, fault.ErrChecksumMismatch
	}
	return addr[:RawLength], nil
}

// EncodeChecked - append the checksum to a raw address and encode
// as base58
func EncodeChecked(raw []byte) string {
	buffer := make([]byte, 0, len(raw)+checksumLength)
	buffer = append(buffer, raw...)
	buffer = append(buffer, checksum(raw)...)
	return util.ToBase58(buffer)
}

// FromPublicKey - derive the address of a compressed public key on
// the current chain
func FromPublicKey(publicKey []byte) string {
	h := ripemd160.New()
	h.Write(publicKey)
	raw := make([]byte, 0, RawLength)
	raw = append(raw, chain.AddressVersion())
	raw = append(raw, h.Sum(nil)...)
	return EncodeChecked(raw)
}

// first four bytes of a double SHA-256
func checksum(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:checksumLength]
}
