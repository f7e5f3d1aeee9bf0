// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 DuneRoot
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - secp256k1 keys and signatures
//
// keys are derived deterministically from a secret passphrase and
// signatures use the deterministic ECDSA nonce so the same digest
// always produces the same signature
package account

import (
	"encoding/hex"

	"github.com/DuneRoot/bpl-go/fault"
)

// PublicKey - compressed secp256k1 public key bytes
type PublicKey []byte

// PublicKeyFromHexString - decode the hex form of a public key
//
// only the hex encoding is checked here; curve validity is the
// verifier's concern
func PublicKeyFromHexString(s string) (PublicKey, error) {
	publicKey, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.ErrMalformedPublicKey
	}
	return publicKey, nil
}

// String - hex form for use by the fmt package (for %s)
func (publicKey PublicKey) String() string {
	return hex.EncodeToString(publicKey)
}

// GoString - hex form for use by the fmt package (for %#v)
func (publicKey PublicKey) GoString() string {
	return "<public-key:" + hex.EncodeToString(publicKey) + ">"
}

// MarshalText - convert a public key to its hex JSON form
func (publicKey PublicKey) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(publicKey))
	b := make([]byte, size)
	hex.Encode(b, publicKey)
	return b, nil
}

// UnmarshalText - convert hex text into a public key
func (publicKey *PublicKey) UnmarshalText(s []byte) error {
	key := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(key, s)
	if nil != err {
		return fault.ErrMalformedPublicKey
	}
	*publicKey = key[:byteCount]
	return nil
}
