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
	"fmt"
	"os"

	"github.com/mlml/mlml/pkg/dataset"
	"github.com/mlml/mlml/pkg/store"
	"github.com/mlml/mlml/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [split(s)]",
	Short: "check a dataset for consistency.",
	Long: `Check the splits of a dataset for consistency.  Every row must decode, its
result and complexity must agree with the decoded expression, no entry may
occur twice across the checked splits, and each split must be balanced.  When
a configuration is given, expressions are also checked against its depth and
variable bounds.  By default, all splits are checked.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			cfg    = readConfig(cmd)
			db     = openStore(cfg)
			stats  = util.NewPerfStats()
			bounds dataset.Bounds
		)
		//
		if getString(cmd, "config") != "" {
			bounds = dataset.Bounds{MaxDepth: cfg.MaxDepth, MaxVariables: cfg.MaxVariables}
		}
		//
		failed, err := checkDataset(db, args, bounds)
		//
		if cerr := db.Close(); err == nil {
			err = cerr
		}
		//
		stats.Log("Checking dataset")
		//
		if err != nil {
			exitWithError(err, 1)
		} else if failed {
			os.Exit(1)
		}
	},
}

// Verify the given splits of a dataset (or all of them, when none are given),
// reporting every inconsistency found.  Returns true if any split failed.
func checkDataset(db *store.Store, names []string, bounds dataset.Bounds) (bool, error) {
	var failed bool
	//
	if len(names) == 0 {
		metas, err := db.Splits()
		if err != nil {
			return false, err
		}
		//
		for _, meta := range metas {
			names = append(names, meta.Split)
		}
	}
	//
	verifier := dataset.NewVerifier(bounds)
	//
	for _, name := range names {
		_, rows, err := db.ReadSplit(name)
		if err != nil {
			return failed, err
		}
		//
		errs := verifier.Check(name, rows)
		//
		for _, err := range errs {
			log.Error(err)
		}
		//
		if len(errs) == 0 {
			fmt.Printf("%s: %d rows ok\n", name, len(rows))
		}
		//
		failed = failed || len(errs) > 0
	}
	//
	return failed, nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
