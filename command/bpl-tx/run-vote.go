// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 DuneRoot
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/DuneRoot/bpl-go/transaction"
)

func runVote(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tx, err := transaction.NewVote(
		c.StringSlice("vote"),
		c.String("secret"),
		c.String("second-secret"),
	)
	if nil != err {
		return err
	}

	if nil != m.log {
		m.log.Infof("built vote by: %s", tx.RecipientId)
	}

	return printJson(m.w, tx)
}
