// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 DuneRoot
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - Lua configuration for the bpl-tx tool
//
// the file is a Lua program whose final value is the configuration
// table; arg[0] holds the file name so relative paths can be
// resolved against it
package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/DuneRoot/bpl-go/chain"
	"github.com/DuneRoot/bpl-go/fault"
)

// log rotation defaults
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "bpl-tx.log"
	defaultLogCount     = 10
	defaultLogSize      = 1024 * 1024
)

// Configuration - the full configuration file layout
type Configuration struct {
	Chain   string               `gluamapper:"chain" json:"chain"`
	Logging logger.Configuration `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - read and validate the configuration file
func GetConfiguration(fileName string) (*Configuration, error) {

	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}
	if _, err := os.Stat(fileName); nil != err {
		return nil, fault.ErrNotFoundConfigFile
	}

	// directories are relative to the configuration file
	dataDirectory, _ := filepath.Split(fileName)

	options := &Configuration{
		Chain: chain.Bpl,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}

	err = ParseConfigurationFile(fileName, options)
	if nil != err {
		return nil, err
	}

	if !chain.Valid(options.Chain) {
		return nil, fault.ErrInvalidChain
	}

	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(dataDirectory, options.Logging.Directory)
	}

	return options, nil
}
