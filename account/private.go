// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 DuneRoot
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// PrivateKey - secp256k1 signing key
type PrivateKey struct {
	key *btcec.PrivateKey
}

// PrivateKeyFromSecret - derive the signing key of a secret passphrase
//
// the key scalar is the SHA-256 of the passphrase bytes so the same
// passphrase always yields the same key pair
func PrivateKeyFromSecret(secret string) *PrivateKey {
	digest := sha256.Sum256([]byte(secret))
	key, _ := btcec.PrivKeyFromBytes(digest[:])
	return &PrivateKey{
		key: key,
	}
}

// PublicKey - the corresponding compressed public key
func (private *PrivateKey) PublicKey() PublicKey {
	return private.key.PubKey().SerializeCompressed()
}

// Bytes - the raw 32 byte key scalar
func (private *PrivateKey) Bytes() []byte {
	return private.key.Serialize()
}

// String - hex form of the key scalar for use by the fmt package (for %s)
func (private *PrivateKey) String() string {
	return hex.EncodeToString(private.Bytes())
}

// Sign - produce the DER signature of a digest
//
// the nonce is deterministic (RFC 6979) so signing is repeatable
func (private *PrivateKey) Sign(digest []byte) Signature {
	return Signature(ecdsa.Sign(private.key, digest).Serialize())
}
