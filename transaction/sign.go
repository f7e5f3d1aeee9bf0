// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 DuneRoot
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"crypto/sha256"

	"github.com/DuneRoot/bpl-go/account"
	"github.com/DuneRoot/bpl-go/fault"
)

// the digest the first signature covers excludes both signature
// sections; the digest the second signature covers includes the
// first signature and excludes the second
//
// this asymmetry is protocol behaviour and must not be normalized

// Id - hex digest of the fully unsigned canonical bytes
//
// stable across signing; requires the fee to be set
func (tx *Transaction) Id() (string, error) {
	packed, err := tx.Pack(false, false)
	if nil != err {
		return "", err
	}
	return packed.Id(), nil
}

// Sign - store the first signature
//
// signs the fully unsigned digest with the key derived from the
// secret; re-signing overwrites and restarts the transaction, so a
// second signature made earlier no longer verifies
func (tx *Transaction) Sign(secret string) error {
	digest, err := tx.digest(false, false)
	if nil != err {
		return err
	}
	private := account.PrivateKeyFromSecret(secret)
	tx.Signature = private.Sign(digest).String()
	return nil
}

// SecondSign - store the second signature
//
// signs the digest of the bytes that include the first signature;
// an unsigned transaction has nothing for the second signature to
// cover so the call fails
func (tx *Transaction) SecondSign(secret string) error {
	if "" == tx.Signature {
		return fault.ErrMissingSignature
	}
	digest, err := tx.digest(true, false)
	if nil != err {
		return err
	}
	private := account.PrivateKeyFromSecret(secret)
	tx.SecondSignature = private.Sign(digest).String()
	return nil
}

// Verify - check the first signature against the sender key
//
// recomputes the digest Sign covered; a malformed key or signature
// is a verification class error while a clean mismatch is false
// with a nil error
func (tx *Transaction) Verify() (bool, error) {
	if "" == tx.Signature {
		return false, fault.ErrMissingSignature
	}
	digest, err := tx.digest(false, false)
	if fault.ErrMalformedPublicKey == err {
		// a key that cannot even be decoded is a verification
		// failure, not an encoding one
		return false, fault.ErrCannotDecodePublicKey
	}
	if nil != err {
		return false, err
	}
	return account.Verify(tx.SenderPublicKey, digest, tx.Signature)
}

// SecondVerify - check the second signature against the sender key
//
// recomputes the digest SecondSign covered
func (tx *Transaction) SecondVerify() (bool, error) {
	if "" == tx.SecondSignature {
		return false, fault.ErrMissingSignature
	}
	digest, err := tx.digest(true, false)
	if fault.ErrMalformedPublicKey == err {
		return false, fault.ErrCannotDecodePublicKey
	}
	if nil != err {
		return false, err
	}
	return account.Verify(tx.SenderPublicKey, digest, tx.SecondSignature)
}

// SHA-256 of the canonical bytes selected by the two switches
func (tx *Transaction) digest(includeSignature bool, includeSecondSignature bool) ([]byte, error) {
	packed, err := tx.Pack(includeSignature, includeSecondSignature)
	if nil != err {
		return nil, err
	}
	digest := sha256.Sum256(packed)
	return digest[:], nil
}
