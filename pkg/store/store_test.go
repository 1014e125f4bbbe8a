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
package store

import (
	"errors"
	"testing"

	"github.com/mlml/mlml/pkg/dataset"
	"github.com/mlml/mlml/pkg/gen"
	"github.com/mlml/mlml/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Store_01(t *testing.T) {
	store := openInMemory(t)
	rows := []dataset.Row{
		{Expression: "[a: true] a", Result: "true", Complexity: 1, Rarity: 1},
		{Expression: "[a: false] ¬a", Result: "true", Complexity: 3, Rarity: 0.5},
	}
	//
	require.NoError(t, store.WriteSplit("train", rows))
	//
	meta, read, err := store.ReadSplit("train")
	require.NoError(t, err)
	assert.Equal(t, rows, read)
	assert.Equal(t, "train", meta.Split)
	assert.Equal(t, uint(2), meta.Rows)
	assert.Equal(t, store.RunID(), meta.RunID)
}

func Test_Store_02(t *testing.T) {
	store := openInMemory(t)
	// More than ten rows, such that key order matters
	rows := make([]dataset.Row, 25)
	for i := range rows {
		rows[i] = dataset.Row{Expression: "[a: true] a", Result: "true", Complexity: uint(i)}
	}
	//
	require.NoError(t, store.WriteSplit("valid", rows))
	require.NoError(t, store.WriteSplit("test", rows[:3]))
	//
	_, read, err := store.ReadSplit("valid")
	require.NoError(t, err)
	assert.Equal(t, rows, read)
	//
	metas, err := store.Splits()
	require.NoError(t, err)
	require.Len(t, metas, 2)
	assert.Equal(t, "test", metas[0].Split)
	assert.Equal(t, "valid", metas[1].Split)
}

func Test_Store_03(t *testing.T) {
	store := openInMemory(t)
	rows := []dataset.Row{{Expression: "[a: true] a", Result: "true", Complexity: 1, Rarity: 1}}
	// Rewriting a split replaces it
	require.NoError(t, store.WriteSplit("train", append(rows, rows...)))
	require.NoError(t, store.WriteSplit("train", rows))
	//
	_, read, err := store.ReadSplit("train")
	require.NoError(t, err)
	assert.Equal(t, rows, read)
}

func Test_Store_Invalid(t *testing.T) {
	store := openInMemory(t)
	//
	assert.Error(t, store.WriteSplit("", nil))
	assert.Error(t, store.WriteSplit("a/b", nil))
	assert.Error(t, store.WriteSplit("meta", nil))
	//
	_, _, err := store.ReadSplit("missing")
	assert.True(t, errors.Is(err, ErrUnknownSplit))
}

func Test_Store_Persistent(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	require.NoError(t, err)
	//
	rows := []dataset.Row{{Expression: "[a, b: true] (a ∧ b)", Result: "true", Complexity: 4, Rarity: 1}}
	require.NoError(t, store.WriteSplit("train", rows))
	require.NoError(t, store.Close())
	//
	store, err = Open(dir)
	require.NoError(t, err)
	defer store.Close()
	//
	_, read, err := store.ReadSplit("train")
	require.NoError(t, err)
	assert.Equal(t, rows, read)
}

func Test_Store_ForeignRun(t *testing.T) {
	var (
		dir  = t.TempDir()
		rows = []dataset.Row{{Expression: "[a: true] a", Result: "true", Complexity: 1, Rarity: 1}}
	)
	//
	first, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, first.WriteSplit("train", rows))
	require.NoError(t, first.WriteSplit("test", rows))
	require.NoError(t, first.Close())
	// A later run cannot mix its splits with those of the first
	second, err := Open(dir)
	require.NoError(t, err)
	//
	defer second.Close()
	//
	err = second.WriteSplit("train", rows)
	assert.True(t, errors.Is(err, ErrForeignRun))
	//
	metas, err := second.Splits()
	require.NoError(t, err)
	require.Len(t, metas, 2)
	assert.Equal(t, metas[0].RunID, metas[1].RunID)
	assert.NotEqual(t, second.RunID(), metas[0].RunID)
	// Once cleared, only the new run's splits remain
	require.NoError(t, second.Clear())
	require.NoError(t, second.WriteSplit("train", rows))
	//
	metas, err = second.Splits()
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, "train", metas[0].Split)
	assert.Equal(t, second.RunID(), metas[0].RunID)
	//
	_, _, err = second.ReadSplit("test")
	assert.True(t, errors.Is(err, ErrUnknownSplit))
}

func Test_Store_Clear(t *testing.T) {
	store := openInMemory(t)
	rows := make([]dataset.Row, 12)
	//
	require.NoError(t, store.WriteSplit("train", rows))
	require.NoError(t, store.WriteSplit("valid", rows[:2]))
	require.NoError(t, store.Clear())
	//
	metas, err := store.Splits()
	require.NoError(t, err)
	assert.Empty(t, metas)
	// Clearing an empty store is harmless
	require.NoError(t, store.Clear())
	require.NoError(t, store.WriteSplit("valid", rows[:1]))
	//
	_, read, err := store.ReadSplit("valid")
	require.NoError(t, err)
	assert.Len(t, read, 1)
}

func Test_Store_Export(t *testing.T) {
	var (
		store        = openInMemory(t)
		generator, _ = gen.NewGenerator(2, 2, gen.Uniform())
		specs        = []dataset.SplitSpec{{Name: "train", Target: 4}, {Name: "valid", Target: 4}, {Name: "test", Target: 4}}
	)
	//
	builder, err := dataset.NewBuilder(generator, dataset.Options{Splits: specs, Alphabet: []rune("ab"), MaxStall: 10_000})
	require.NoError(t, err)
	ds, err := builder.Build(util.NewRandom(1))
	require.NoError(t, err)
	require.NoError(t, dataset.Export(ds, store, dataset.RarityFinal))
	//
	for _, split := range ds.Splits() {
		_, read, err := store.ReadSplit(split.Name())
		require.NoError(t, err)
		assert.Equal(t, ds.Rows(split, dataset.RarityFinal), read)
	}
}

// ============================================================================
// Framework
// ============================================================================

func openInMemory(t *testing.T) *Store {
	store, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	//
	return store
}
