// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 DuneRoot
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/DuneRoot/bpl-go/fault"
	"github.com/DuneRoot/bpl-go/transaction"
)

func runRegisterSecondSignature(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	secondSecret := c.String("second-secret")
	if "" == secondSecret {
		return fault.ErrRequiredSecret
	}

	tx, err := transaction.NewSecondSignatureRegistration(secondSecret, c.String("secret"))
	if nil != err {
		return err
	}

	if nil != m.log {
		m.log.Info("built second signature registration")
	}

	return printJson(m.w, tx)
}

func runRegisterDelegate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tx, err := transaction.NewDelegateRegistration(
		c.String("username"),
		c.String("secret"),
		c.String("second-secret"),
	)
	if nil != err {
		return err
	}

	if nil != m.log {
		m.log.Infof("built delegate registration: %s", c.String("username"))
	}

	return printJson(m.w, tx)
}
