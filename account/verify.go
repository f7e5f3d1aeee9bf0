// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 DuneRoot
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/DuneRoot/bpl-go/fault"
)

// Verify - check the DER signature of a digest against a compressed
// public key, both in their hex forms
//
// key or signature material that cannot be decoded is a verification
// class error; a well formed signature that does not match returns
// false with a nil error
func Verify(publicKeyHex string, digest []byte, signatureHex string) (bool, error) {
	publicKey, err := hex.DecodeString(publicKeyHex)
	if nil != err {
		return false, fault.ErrCannotDecodePublicKey
	}
	pub, err := btcec.ParsePubKey(publicKey)
	if nil != err {
		return false, fault.ErrCannotDecodePublicKey
	}

	signature, err := hex.DecodeString(signatureHex)
	if nil != err {
		return false, fault.ErrCannotDecodeSignature
	}
	sig, err := ecdsa.ParseDERSignature(signature)
	if nil != err {
		return false, fault.ErrCannotDecodeSignature
	}

	return sig.Verify(digest, pub), nil
}
