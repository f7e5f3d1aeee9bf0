// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 DuneRoot
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"crypto/sha256"
	"encoding/hex"
)

// byte sizes for various fields
const (
	recipientLength   = 21 // version byte + RIPEMD-160 digest
	vendorFieldLength = 64 // always padded to this width
)

// Transaction - the unpacked transaction structure
//
// a transaction is built by one goroutine: construct, sign, then
// treat as read only; key, address and signature fields hold the
// hex or base58 text forms and are decoded during packing
type Transaction struct {
	Type               TxType
	Timestamp          uint32
	SenderPublicKey    string // hex, compressed
	RequesterPublicKey string // hex, empty means absent
	RecipientId        string // base58 with checksum, empty means absent
	VendorField        string // hex, at most 64 raw bytes
	Amount             uint64
	Fee                *uint64 // nil until the kind sets it
	Asset              Asset   // nil for kinds without a payload
	Signature          string  // DER hex, empty until signed
	SecondSignature    string  // DER hex, empty until second signed
}

// Packed - packed transactions are just a byte slice
type Packed []byte

// Type - the type code of a packed transaction
func (record Packed) Type() TxType {
	if 0 == len(record) {
		return InvalidTag
	}
	return TxType(record[0])
}

// Id - hex SHA-256 digest of the packed bytes
func (record Packed) Id() string {
	digest := sha256.Sum256(record)
	return hex.EncodeToString(digest[:])
}

// MarshalText - convert a packed transaction to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert hex text to a packed transaction
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*record = make([]byte, size)
	_, err := hex.Decode(*record, s)
	return err
}
