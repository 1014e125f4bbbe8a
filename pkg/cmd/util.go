// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/mlml/mlml/pkg/config"
	"github.com/mlml/mlml/pkg/store"
	"github.com/mlml/mlml/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Get an expected flag, or exit if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected unsigned integer, or exit if an error arises.
func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

func getUint64(cmd *cobra.Command, flag string) uint64 {
	r, err := cmd.Flags().GetUint64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string, or exit if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Read the configuration named by the "--config" flag (or the defaults when
// none is given), then apply the database override.
func readConfig(cmd *cobra.Command) config.Config {
	var (
		cfg      = config.Default()
		err      error
		filename = getString(cmd, "config")
	)
	//
	if filename != "" {
		if cfg, err = config.Load(filename); err != nil {
			log.Error(err)
			os.Exit(2)
		}
		//
		log.Debugf("read configuration %s", filename)
	}
	//
	if db := getString(cmd, "db"); db != "" {
		cfg.DbPath = db
	}
	//
	return cfg
}

// Open the dataset database of a given configuration, exiting on failure.
func openStore(cfg config.Config) *store.Store {
	db, err := store.Open(cfg.DbPath)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	//
	return db
}

// Report an error, exiting with the given status.  Syntax errors are shown
// with the offending part of the input highlighted.
func exitWithError(err error, status int) {
	var serr *source.SyntaxError
	//
	if errors.As(err, &serr) {
		printSyntaxError(serr)
	} else {
		log.Error(err)
	}
	//
	os.Exit(status)
}

func printSyntaxError(err *source.SyntaxError) {
	line := err.FirstEnclosingLine()
	// Print error + line number
	fmt.Printf("%s:%d: %s\n", err.SourceFile().Filename(), line.Number(), err.Message())
	// Print line with highlight
	fmt.Println(err.Highlight())
}
