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
	"github.com/mlml/mlml/pkg/dataset"
	"github.com/mlml/mlml/pkg/store"
	"github.com/mlml/mlml/pkg/util"
	"github.com/mlml/mlml/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags]",
	Short: "generate a dataset of labelled logic expressions.",
	Long: `Generate a dataset of propositional logic expressions, each paired with
an assignment to its variables and the resulting truth value.  Every split is
balanced between true and false entries, and no entry occurs twice across the
whole dataset.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(2)
		}
		//
		cfg := readConfig(cmd)
		applyGenerateFlags(cmd, &cfg)
		//
		if err := cfg.Validate(); err != nil {
			exitWithError(err, 2)
		}
		//
		ds, err := buildDataset(cfg)
		if err != nil {
			var exhausted *dataset.ExhaustedError
			//
			if errors.As(err, &exhausted) {
				log.Error("try a larger alphabet, depth or attempt limit")
			}
			//
			exitWithError(err, 1)
		}
		//
		mode, _ := cfg.RarityMode()
		//
		if !getFlag(cmd, "dry-run") {
			writeDataset(cfg, ds, mode, getFlag(cmd, "overwrite"))
		}
		//
		printDatasetSummary(ds)
	},
}

// Override configuration fields with any flags explicitly given.
func applyGenerateFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	//
	if flags.Changed("seed") {
		cfg.Seed = getUint64(cmd, "seed")
	}
	//
	if flags.Changed("alphabet") {
		cfg.Alphabet = getString(cmd, "alphabet")
	}
	//
	if flags.Changed("max-depth") {
		cfg.MaxDepth = getUint(cmd, "max-depth")
	}
	//
	if flags.Changed("max-vars") {
		cfg.MaxVariables = getUint(cmd, "max-vars")
	}
	//
	if flags.Changed("max-stall") {
		cfg.MaxStall = getUint(cmd, "max-stall")
	}
	//
	if flags.Changed("rarity") {
		cfg.Rarity = getString(cmd, "rarity")
	}
	//
	if flags.Changed("resample") {
		cfg.Resample = getFlag(cmd, "resample")
	}
}

func buildDataset(cfg config.Config) (*dataset.Dataset, error) {
	generator, err := cfg.Generator()
	if err != nil {
		return nil, err
	}
	//
	options, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	//
	builder, err := dataset.NewBuilder(generator, options)
	if err != nil {
		return nil, err
	}
	//
	log.WithFields(log.Fields{
		"seed":      cfg.Seed,
		"alphabet":  cfg.Alphabet,
		"max_depth": cfg.MaxDepth,
		"max_vars":  cfg.MaxVariables,
	}).Debug("building dataset")
	//
	return builder.Build(util.NewRandom(cfg.Seed))
}

// Write a dataset into the configured store.  A store already holding splits
// is only written when overwriting, in which case those splits are removed
// first.
func writeDataset(cfg config.Config, ds *dataset.Dataset, mode dataset.RarityMode, overwrite bool) {
	var stats = util.NewPerfStats()
	//
	db := openStore(cfg)
	//
	if overwrite {
		if err := db.Clear(); err != nil {
			db.Close() //nolint:errcheck
			exitWithError(err, 1)
		}
	}
	//
	if err := dataset.Export(ds, db, mode); err != nil {
		db.Close() //nolint:errcheck
		//
		if errors.Is(err, store.ErrForeignRun) {
			log.Errorf("%s already holds a dataset (use --overwrite to replace it)", cfg.DbPath)
		}
		//
		exitWithError(err, 1)
	} else if err := db.Close(); err != nil {
		exitWithError(err, 1)
	}
	//
	stats.Log("Writing dataset")
	log.Infof("wrote %d entries to %s", ds.Total(), cfg.DbPath)
}

func printDatasetSummary(ds *dataset.Dataset) {
	table := termio.NewTablePrinter("split", "rows", "true", "false")
	//
	for _, split := range ds.Splits() {
		trues, falses := split.Counts()
		table.AddRow(split.Name(), fmt.Sprint(split.Len()), fmt.Sprint(trues), fmt.Sprint(falses))
	}
	//
	printTable(table)
	fmt.Printf("%d entries, %d distinct shapes\n", ds.Total(), len(ds.Shapes()))
}

// Print a table to stdout, using escapes only when stdout is a terminal.
func printTable(table *termio.TablePrinter) {
	table.AnsiEscapes(termio.IsTerminal(os.Stdout))
	//
	if err := table.Print(os.Stdout); err != nil {
		log.Error(err)
	}
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().Uint64("seed", 0, "seed for the random source")
	generateCmd.Flags().String("alphabet", "", "variable symbols, either listed (\"abc\") or as a range (\"a-e\")")
	generateCmd.Flags().Uint("max-depth", 0, "maximum expression depth")
	generateCmd.Flags().Uint("max-vars", 0, "maximum number of distinct variables per expression")
	generateCmd.Flags().Uint("max-stall", 0, "consecutive rejected candidates before a split is abandoned")
	generateCmd.Flags().String("rarity", "running", "rarity column: \"running\" or \"final\"")
	generateCmd.Flags().Bool("resample", false, "draw a fresh alphabet subset for every candidate")
	generateCmd.Flags().Bool("dry-run", false, "build the dataset without writing it")
	generateCmd.Flags().Bool("overwrite", false, "replace any dataset already held in the database")
}
