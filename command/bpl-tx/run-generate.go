// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 DuneRoot
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/DuneRoot/bpl-go/account"
	"github.com/DuneRoot/bpl-go/address"
	"github.com/DuneRoot/bpl-go/fault"
)

// text form of a derived key pair
type rawKeyPair struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
	Address    string `json:"address"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	secret := c.String("secret")
	if "" == secret {
		return fault.ErrRequiredSecret
	}

	private := account.PrivateKeyFromSecret(secret)
	publicKey := private.PublicKey()

	pair := rawKeyPair{
		PublicKey:  publicKey.String(),
		PrivateKey: private.String(),
		Address:    address.FromPublicKey(publicKey),
	}

	if nil != m.log {
		m.log.Infof("generated key pair for address: %s", pair.Address)
	}

	return printJson(m.w, pair)
}
