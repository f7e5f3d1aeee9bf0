// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 DuneRoot
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/DuneRoot/bpl-go/account"
	"github.com/DuneRoot/bpl-go/fault"
)

// deterministic key derivation vectors
var testKeyDerivation = []struct {
	secret     string
	privateKey string
	publicKey  string
}{
	{
		secret:     "this is a top secret passphrase",
		privateKey: "d8839c2432bfd0a67ef10a804ba991eabba19f154a3d707917681d45822a5712",
		publicKey:  "034151a3ec46b5670a682b0a63394f863587d1bc97483b1b6c70eb58e7f0aed192",
	},
	{
		secret:     "this is a top secret second passphrase",
		privateKey: "038422b5c5758218669fcc343ee3fe74bc9f7f6f59caf0d41d89d96e881849d6",
		publicKey:  "03699e966b2525f9088a6941d8d94f7869964a000efe65783d78ac82e1199fe609",
	},
	{
		secret:     "bpl-go test secret",
		privateKey: "1f066f65707d861cb876962c296541dacd0c9485c7dde1612daeec9c2d527076",
		publicKey:  "02de318c5b33040734591cf2f3dc32a61d133761ba084d86099aea2a94a1ff5f3b",
	},
}

func TestPrivateKeyFromSecret(t *testing.T) {
	for index, test := range testKeyDerivation {
		private := account.PrivateKeyFromSecret(test.secret)
		if test.privateKey != private.String() {
			t.Errorf("%d: private key: actual: %s  expected: %s", index, private, test.privateKey)
		}
		if test.publicKey != private.PublicKey().String() {
			t.Errorf("%d: public key: actual: %s  expected: %s", index, private.PublicKey(), test.publicKey)
		}
	}
}

func TestSignAndVerify(t *testing.T) {
	private := account.PrivateKeyFromSecret("this is a top secret passphrase")
	publicKey := private.PublicKey().String()

	digest := sha256.Sum256([]byte("sample record"))
	signature := private.Sign(digest[:])
	if 0 == len(signature) {
		t.Fatalf("empty signature")
	}

	// deterministic nonce: signing twice gives identical bytes
	again := private.Sign(digest[:])
	if signature.String() != again.String() {
		t.Errorf("signature is not deterministic: %s != %s", signature, again)
	}

	ok, err := account.Verify(publicKey, digest[:], signature.String())
	if nil != err {
		t.Fatalf("verify error: %s", err)
	}
	if !ok {
		t.Fatalf("signature did not verify")
	}

	// a valid signature over different bytes is a clean mismatch
	other := sha256.Sum256([]byte("another record"))
	ok, err = account.Verify(publicKey, other[:], signature.String())
	if nil != err {
		t.Fatalf("verify error: %s", err)
	}
	if ok {
		t.Fatalf("signature verified the wrong digest")
	}

	// a different key is also a clean mismatch
	otherKey := account.PrivateKeyFromSecret("bpl-go test secret").PublicKey().String()
	ok, err = account.Verify(otherKey, digest[:], signature.String())
	if nil != err {
		t.Fatalf("verify error: %s", err)
	}
	if ok {
		t.Fatalf("signature verified under the wrong key")
	}
}

func TestVerifyMalformedInput(t *testing.T) {
	private := account.PrivateKeyFromSecret("this is a top secret passphrase")
	publicKey := private.PublicKey().String()

	digest := sha256.Sum256([]byte("sample record"))
	signature := private.Sign(digest[:]).String()

	malformed := []struct {
		publicKey string
		signature string
		expected  error
	}{
		{"zz", signature, fault.ErrCannotDecodePublicKey},         // not hex
		{"02deadbeef", signature, fault.ErrCannotDecodePublicKey}, // not on the curve
		{publicKey, "zz", fault.ErrCannotDecodeSignature},         // not hex
		{publicKey, "0102", fault.ErrCannotDecodeSignature},       // not DER
		{publicKey, "", fault.ErrCannotDecodeSignature},           // empty
	}

	for index, test := range malformed {
		_, err := account.Verify(test.publicKey, digest[:], test.signature)
		if test.expected != err {
			t.Errorf("%d: error: actual: %v  expected: %v", index, err, test.expected)
		}
		if !fault.IsErrVerification(err) {
			t.Errorf("%d: error lost its verification class: %v", index, err)
		}
	}
}

func TestPublicKeyFromHexString(t *testing.T) {
	publicKey, err := account.PublicKeyFromHexString(testKeyDerivation[0].publicKey)
	if nil != err {
		t.Fatalf("decode error: %s", err)
	}
	if 33 != len(publicKey) {
		t.Fatalf("wrong public key length: %d", len(publicKey))
	}
	if testKeyDerivation[0].publicKey != publicKey.String() {
		t.Errorf("public key: actual: %s  expected: %s", publicKey, testKeyDerivation[0].publicKey)
	}

	_, err = account.PublicKeyFromHexString("not-hex")
	if fault.ErrMalformedPublicKey != err {
		t.Errorf("error: actual: %v  expected: %v", err, fault.ErrMalformedPublicKey)
	}
}

func TestSignatureText(t *testing.T) {
	hexSignature := "3045022100deadbeef"

	var signature account.Signature
	err := signature.UnmarshalText([]byte(hexSignature))
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}

	text, err := signature.MarshalText()
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}
	if hexSignature != string(text) {
		t.Errorf("text: actual: %s  expected: %s", text, hexSignature)
	}

	expected, _ := hex.DecodeString(hexSignature)
	if string(expected) != string(signature) {
		t.Errorf("bytes: actual: %x  expected: %x", []byte(signature), expected)
	}
}
