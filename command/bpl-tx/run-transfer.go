// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 DuneRoot
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/DuneRoot/bpl-go/transaction"
)

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tx, err := transaction.NewTransfer(
		c.String("recipient"),
		c.Uint64("amount"),
		c.String("vendor-field"),
		c.String("secret"),
		c.String("second-secret"),
	)
	if nil != err {
		return err
	}

	if m.verbose {
		id, _ := tx.Id()
		fmt.Fprintf(m.e, "transfer: %s\n", id)
	}
	if nil != m.log {
		m.log.Infof("built transfer to: %s", tx.RecipientId)
	}

	return printJson(m.w, tx)
}
