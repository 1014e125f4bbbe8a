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
	"time"

	"github.com/mlml/mlml/pkg/dataset"
	"github.com/mlml/mlml/pkg/store"
	"github.com/mlml/mlml/pkg/util/termio"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags]",
	Short: "summarise a dataset.",
	Long: `Summarise the splits held in a dataset database, optionally listing the
most frequent expression shapes or the first rows of a given split.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			cfg    = readConfig(cmd)
			db     = openStore(cfg)
			shapes = getUint(cmd, "shapes")
			rows   = getUint(cmd, "rows")
			split  = getString(cmd, "split")
		)
		//
		err := inspect(db, shapes, rows, split)
		//
		if cerr := db.Close(); err == nil {
			err = cerr
		}
		//
		if err != nil {
			exitWithError(err, 1)
		}
	},
}

func inspect(db *store.Store, shapes uint, rows uint, split string) error {
	metas, err := db.Splits()
	if err != nil {
		return err
	} else if err := inspectSplits(db, metas); err != nil {
		return err
	}
	//
	if shapes > 0 {
		if err := inspectShapes(db, metas, shapes); err != nil {
			return err
		}
	}
	//
	if rows > 0 {
		if split == "" && len(metas) > 0 {
			split = metas[0].Split
		}
		//
		return inspectRows(db, split, rows)
	}
	//
	return nil
}

func inspectSplits(db *store.Store, metas []store.Meta) error {
	table := termio.NewTablePrinter("split", "rows", "true", "false", "run", "created")
	//
	for _, meta := range metas {
		_, rows, err := db.ReadSplit(meta.Split)
		if err != nil {
			return err
		}
		//
		trues := uint(0)
		//
		for _, row := range rows {
			if row.Result == "true" {
				trues++
			}
		}
		//
		table.AddRow(meta.Split, fmt.Sprint(meta.Rows), fmt.Sprint(trues),
			fmt.Sprint(meta.Rows-trues), meta.RunID.String(), meta.Created.Format(time.RFC3339))
	}
	//
	printTable(table)
	//
	return nil
}

// Print the most frequent shapes across every split.
func inspectShapes(db *store.Store, metas []store.Meta, n uint) error {
	var all []dataset.Row
	//
	for _, meta := range metas {
		_, rows, err := db.ReadSplit(meta.Split)
		if err != nil {
			return err
		}
		//
		all = append(all, rows...)
	}
	//
	shapes, err := dataset.CountShapes(all)
	if err != nil {
		return err
	}
	//
	shapes = shapes[:min(n, uint(len(shapes)))]
	table := termio.NewTablePrinter("shape", "count", "frequency")
	//
	for _, sc := range shapes {
		frequency := float64(sc.Count) / float64(len(all))
		table.AddRow(sc.Shape.String(), fmt.Sprint(sc.Count), fmt.Sprintf("%.4f", frequency))
	}
	//
	fitToTerminal(table, 0, 30)
	printTable(table)
	//
	return nil
}

// Print the first n rows of a given split.
func inspectRows(db *store.Store, split string, n uint) error {
	_, rows, err := db.ReadSplit(split)
	if err != nil {
		return err
	}
	//
	rows = rows[:min(n, uint(len(rows)))]
	table := termio.NewTablePrinter("expression", "result", "complexity", "rarity")
	//
	for _, row := range rows {
		table.AddRow(row.Expression, row.Result, fmt.Sprint(row.Complexity), fmt.Sprintf("%.4f", row.Rarity))
	}
	//
	fitToTerminal(table, 0, 30)
	printTable(table)
	//
	return nil
}

// Limit the width of a given column so that the table fits the terminal,
// assuming the other columns take up a given amount of space.
func fitToTerminal(table *termio.TablePrinter, col uint, others uint) {
	if width, ok := termio.TerminalWidth(os.Stdout); ok && width > others {
		table.SetMaxWidth(col, width-others)
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Uint("shapes", 0, "list the most frequent expression shapes")
	inspectCmd.Flags().Uint("rows", 0, "list the first rows of a split")
	inspectCmd.Flags().String("split", "", "split whose rows are listed (default is the first)")
}
