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
	"math/rand/v2"
	"os"
	"strings"

	"github.com/mlml/mlml/pkg/logic"
	"github.com/mlml/mlml/pkg/util"
	"github.com/mlml/mlml/pkg/util/source"
	"github.com/mlml/mlml/pkg/util/termio"
	"github.com/spf13/cobra"
)

// MAX_TABLE_VARIABLES bounds the number of variables for which a full truth
// table is printed.
const MAX_TABLE_VARIABLES = 8

var evalCmd = &cobra.Command{
	Use:   "eval [flags] [expression]",
	Short: "evaluate a logic expression.",
	Long: `Evaluate a logic expression, given either in the dataset encoding (e.g.
"[a: true; b: false] (a ∧ b)") or as a bare expression.  For a bare expression,
a random assignment is drawn unless a full truth table is requested.  ASCII
connectives (!, &, |, ->, <->) are accepted.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			rng      = util.NewRandom(getUint64(cmd, "seed"))
			filename = getString(cmd, "file")
		)
		//
		if filename != "" && len(args) == 0 {
			evalFile(filename, rng)
			return
		} else if filename != "" || len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(2)
		}
		//
		expr, state, err := readExpression("<input>", args[0], rng)
		if err != nil {
			exitWithError(err, 1)
		}
		//
		printExpression(expr)
		//
		if getFlag(cmd, "table") {
			printTruthTable(expr)
		} else {
			fmt.Printf("%s = %t\n", logic.Encode(expr, state), logic.Evaluate(expr, state))
		}
	},
}

// Evaluate every expression in a given file, one per line.
func evalFile(filename string, rng *rand.Rand) {
	lines, err := util.ReadLines(filename)
	if err != nil {
		exitWithError(err, 1)
	}
	//
	for i, line := range lines {
		expr, state, err := readExpression(fmt.Sprintf("%s:%d", filename, i+1), line, rng)
		if err != nil {
			exitWithError(err, 1)
		}
		//
		fmt.Printf("%s = %t\n", logic.Encode(expr, state), logic.Evaluate(expr, state))
	}
}

// Read an expression given either in the dataset encoding, or as a bare
// expression in which case an assignment is drawn at random.
func readExpression(name string, text string, rng *rand.Rand) (logic.Expr, logic.Assignment, error) {
	text = strings.TrimSpace(text)
	//
	if strings.HasPrefix(text, "[") {
		return logic.Decode(text)
	}
	//
	expr, err := logic.ParseFile(source.NewSourceFile(name, []byte(text)))
	if err != nil {
		return nil, logic.Assignment{}, err
	}
	//
	return expr, logic.SampleState(expr, rng), nil
}

func printExpression(expr logic.Expr) {
	fmt.Printf("expression: %s\n", expr)
	fmt.Printf("shape:      %s\n", logic.ToShape(expr))
	fmt.Printf("depth:      %d\n", logic.Depth(expr))
	fmt.Printf("complexity: %d\n", logic.Complexity(expr))
	fmt.Printf("variables:  %s\n", string(logic.Variables(expr)))
}

// Print the value of an expression under every assignment of its variables.
func printTruthTable(expr logic.Expr) {
	var (
		vars   = logic.Variables(expr)
		n      = uint(len(vars))
		height = uint(1) << n
	)
	//
	if n > MAX_TABLE_VARIABLES {
		exitWithError(fmt.Errorf("too many variables for a truth table (%d)", n), 1)
	}
	//
	headers := make([]string, 0, n+1)
	//
	for _, v := range vars {
		headers = append(headers, string(v))
	}
	//
	table := termio.NewTablePrinter(append(headers, expr.String())...)
	//
	for row := range height {
		var (
			bindings = make([]logic.Binding, n)
			cells    = make([]string, 0, n+1)
		)
		//
		for i, v := range vars {
			// first variable varies slowest
			value := (row>>(n-1-uint(i)))&1 == 0
			bindings[i] = logic.Binding{Symbol: v, Value: value}
			cells = append(cells, fmt.Sprint(value))
		}
		//
		state, err := logic.NewAssignment(bindings...)
		if err != nil {
			panic(err)
		}
		//
		result := logic.Evaluate(expr, state)
		table.AddRow(append(cells, fmt.Sprint(result))...)
		//
		if result {
			table.SetEscape(n, row+1, termio.BoldAnsiEscape().FgColour(termio.TERM_GREEN))
		} else {
			table.SetEscape(n, row+1, termio.BoldAnsiEscape().FgColour(termio.TERM_RED))
		}
	}
	//
	printTable(table)
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().Uint64("seed", 0, "seed used to draw an assignment")
	evalCmd.Flags().BoolP("table", "t", false, "print the full truth table")
	evalCmd.Flags().StringP("file", "f", "", "evaluate every expression in a file (one per line)")
}
