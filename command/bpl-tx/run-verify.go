// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 DuneRoot
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/urfave/cli"

	"github.com/DuneRoot/bpl-go/transaction"
)

// outcome of checking a received transaction
type verifyReply struct {
	Id              string `json:"id"`
	Signature       bool   `json:"signature"`
	SecondSignature *bool  `json:"secondSignature,omitempty"`
}

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tx, err := readTransaction(c.String("file"))
	if nil != err {
		return err
	}

	id, err := tx.Id()
	if nil != err {
		return err
	}

	reply := verifyReply{
		Id: id,
	}

	reply.Signature, err = tx.Verify()
	if nil != err {
		return err
	}

	if "" != tx.SecondSignature {
		ok, err := tx.SecondVerify()
		if nil != err {
			return err
		}
		reply.SecondSignature = &ok
	}

	if nil != m.log {
		m.log.Infof("verified: %s  signature ok: %t", id, reply.Signature)
	}

	err = printJson(m.w, reply)
	if nil != err {
		return err
	}

	if !reply.Signature || (nil != reply.SecondSignature && !*reply.SecondSignature) {
		return fmt.Errorf("signature verification failed")
	}
	return nil
}

func runId(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tx, err := readTransaction(c.String("file"))
	if nil != err {
		return err
	}

	id, err := tx.Id()
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "%s\n", id)
	return nil
}

// read a transaction projection from a file or standard input
func readTransaction(fileName string) (*transaction.Transaction, error) {
	var data []byte
	var err error

	if "" == fileName || "-" == fileName {
		data, err = ioutil.ReadAll(os.Stdin)
	} else {
		data, err = ioutil.ReadFile(fileName)
	}
	if nil != err {
		return nil, err
	}

	tx := &transaction.Transaction{}
	err = json.Unmarshal(data, tx)
	if nil != err {
		return nil, err
	}
	return tx, nil
}
