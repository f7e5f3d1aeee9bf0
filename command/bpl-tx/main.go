// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 DuneRoot
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/DuneRoot/bpl-go/chain"
	"github.com/DuneRoot/bpl-go/command/bpl-tx/configuration"
)

// context shared by all commands
type metadata struct {
	log     *logger.L // nil without a configuration file
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "bpl-tx"
	app.Usage = "build, sign and verify transactions"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Bpl,
			Usage: " connect to `NETWORK` [bpl|testing]",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " configuration `FILE` (optional, enables file logging)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "derive the key pair and address of a secret",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "secret, s",
					Value: "",
					Usage: "*secret passphrase `SECRET`",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "transfer",
			Usage:     "build and sign a transfer",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: "*address receiving the amount `ADDRESS`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*amount in the smallest unit `NUMBER`",
				},
				cli.StringFlag{
					Name:  "vendor-field, f",
					Value: "",
					Usage: " free text payload `HEX`",
				},
			}, secretFlags()...),
			Action: runTransfer,
		},
		{
			Name:      "vote",
			Usage:     "build and sign a delegate vote",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringSliceFlag{
					Name:  "vote, t",
					Usage: "*delegate key prefixed with + or - `VOTE`",
				},
			}, secretFlags()...),
			Action: runVote,
		},
		{
			Name:      "register-second-signature",
			Usage:     "build and sign a second signing key registration",
			ArgsUsage: "\n   (* = required)",
			Flags:     secretFlags(),
			Action:    runRegisterSecondSignature,
		},
		{
			Name:      "register-delegate",
			Usage:     "build and sign a delegate registration",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "username, u",
					Value: "",
					Usage: "*delegate username `NAME`",
				},
			}, secretFlags()...),
			Action: runRegisterDelegate,
		},
		{
			Name:      "verify",
			Usage:     "verify the signatures of a transaction in JSON form",
			ArgsUsage: "\n   (* = required)",
			Flags:     fileFlags(),
			Action:    runVerify,
		},
		{
			Name:      "id",
			Usage:     "recompute the identifier of a transaction in JSON form",
			ArgsUsage: "\n   (* = required)",
			Flags:     fileFlags(),
			Action:    runId,
		},
		{
			Name:  "version",
			Usage: "display bpl-tx version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// select the chain and set up logging
	app.Before = func(c *cli.Context) error {

		if "version" == c.Args().Get(0) {
			return nil
		}

		m := &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}

		network := c.GlobalString("network")
		configFile := c.GlobalString("config")

		if "" != configFile {
			cfg, err := configuration.GetConfiguration(configFile)
			if nil != err {
				return err
			}

			// an explicit --network overrides the configured chain
			if !c.GlobalIsSet("network") {
				network = cfg.Chain
			}

			err = logger.Initialise(cfg.Logging)
			if nil != err {
				return err
			}
			m.log = logger.New("bpl-tx")
		}

		err := chain.Select(network)
		if nil != err {
			return fmt.Errorf("network: %q can only be bpl/testing", network)
		}

		if m.verbose {
			fmt.Fprintf(m.e, "chain: %s\n", chain.Name())
		}

		c.App.Metadata["config"] = m
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if ok && nil != m.log {
			m.log.Flush()
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

// flags shared by the signing commands
func secretFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "secret, s",
			Value: "",
			Usage: "*secret passphrase `SECRET`",
		},
		cli.StringFlag{
			Name:  "second-secret, S",
			Value: "",
			Usage: " second secret passphrase `SECRET`",
		},
	}
}

// flags shared by the commands reading a transaction
func fileFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "file, f",
			Value: "",
			Usage: " transaction JSON `FILE` (default: standard input)",
		},
	}
}
