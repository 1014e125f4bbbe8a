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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mlml/mlml/pkg/dataset"
	log "github.com/sirupsen/logrus"
)

// META_PREFIX identifies the keys holding split metadata.
const META_PREFIX = "meta/"

// ErrUnknownSplit is returned when reading a split which was never written.
var ErrUnknownSplit = errors.New("unknown split")

// ErrForeignRun is returned when writing into a store which already holds
// splits written by another run.  Such a store must be cleared first, so that
// the splits it holds always form one dataset.
var ErrForeignRun = errors.New("store holds splits from another run")

// Meta describes a split held in a store.
type Meta struct {
	Split string `json:"split"`
	Rows  uint   `json:"rows"`
	// Identifies the run which wrote this split.  Splits written through the
	// same store handle share a run identifier.
	RunID   uuid.UUID `json:"run_id"`
	Created time.Time `json:"created"`
}

// Store is a dataset sink backed by a badger database.  Each row is held as a
// JSON value under the key "<split>/<row>", where the row index is zero padded
// so that rows iterate in order.
type Store struct {
	db    *badger.DB
	runID uuid.UUID
}

// Open a store at a given directory, creating it when necessary.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("database path is required")
	} else if err := os.MkdirAll(path, 0750); err != nil {
		return nil, fmt.Errorf("creating database directory %s: %w", path, err)
	}
	//
	return open(badger.DefaultOptions(path))
}

// OpenInMemory opens a store which is discarded when closed.
func OpenInMemory() (*Store, error) {
	return open(badger.DefaultOptions("").WithInMemory(true))
}

func open(opts badger.Options) (*Store, error) {
	db, err := badger.Open(opts.WithLogger(&badgerLogger{}))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	//
	return &Store{db, uuid.New()}, nil
}

// RunID returns the identifier recorded against every split written through
// this handle.
func (p *Store) RunID() uuid.UUID {
	return p.runID
}

// WriteSplit implementation for the dataset.Sink interface.  Existing rows of
// a split with the same name, written through this handle, are replaced.
// Writing into a store holding splits of another run fails with
// ErrForeignRun.
func (p *Store) WriteSplit(name string, rows []dataset.Row) error {
	if name == "" || strings.Contains(name, "/") || name+"/" == META_PREFIX {
		return fmt.Errorf("invalid split name \"%s\"", name)
	} else if err := p.checkRun(); err != nil {
		return err
	} else if err := p.dropSplit(name); err != nil {
		return err
	}
	//
	batch := p.db.NewWriteBatch()
	defer batch.Cancel()
	//
	for i, row := range rows {
		data, err := json.Marshal(row)
		if err != nil {
			return err
		} else if err := batch.Set(rowKey(name, uint(i)), data); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	//
	meta, err := json.Marshal(Meta{name, uint(len(rows)), p.runID, time.Now().UTC()})
	if err != nil {
		return err
	} else if err := batch.Set([]byte(META_PREFIX+name), meta); err != nil {
		return err
	} else if err := batch.Flush(); err != nil {
		return fmt.Errorf("flushing split %s: %w", name, err)
	}
	//
	log.Debugf("wrote %d rows to split %s", len(rows), name)
	//
	return nil
}

// Close implementation for the dataset.Sink interface.
func (p *Store) Close() error {
	return p.db.Close()
}

// Splits returns the metadata of every split held in this store, ordered by
// name.
func (p *Store) Splits() ([]Meta, error) {
	var metas []Meta
	//
	err := p.db.View(func(txn *badger.Txn) error {
		return scan(txn, []byte(META_PREFIX), func(_ []byte, value []byte) error {
			var meta Meta
			//
			if err := json.Unmarshal(value, &meta); err != nil {
				return err
			}
			//
			metas = append(metas, meta)
			//
			return nil
		})
	})
	//
	return metas, err
}

// ReadSplit returns the metadata and rows of a given split, in the order they
// were written.
func (p *Store) ReadSplit(name string) (Meta, []dataset.Row, error) {
	var (
		meta Meta
		rows []dataset.Row
	)
	//
	err := p.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(META_PREFIX + name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrUnknownSplit, name)
		} else if err != nil {
			return err
		} else if err := item.Value(func(value []byte) error {
			return json.Unmarshal(value, &meta)
		}); err != nil {
			return err
		}
		//
		rows = make([]dataset.Row, 0, meta.Rows)
		//
		return scan(txn, splitPrefix(name), func(key []byte, value []byte) error {
			var row dataset.Row
			//
			if err := json.Unmarshal(value, &row); err != nil {
				return fmt.Errorf("malformed row %s: %w", key, err)
			}
			//
			rows = append(rows, row)
			//
			return nil
		})
	})
	//
	if err == nil && uint(len(rows)) != meta.Rows {
		err = fmt.Errorf("split %s holds %d rows, expected %d", name, len(rows), meta.Rows)
	}
	//
	return meta, rows, err
}

// Clear removes every split held in this store, whichever run wrote it.
func (p *Store) Clear() error {
	metas, err := p.Splits()
	if err != nil {
		return err
	}
	//
	for _, meta := range metas {
		if err := p.dropSplit(meta.Split); err != nil {
			return fmt.Errorf("clearing split %s: %w", meta.Split, err)
		}
	}
	//
	log.Debugf("cleared %d splits", len(metas))
	//
	return nil
}

// Fail if any split held in this store was written by another run.
func (p *Store) checkRun() error {
	metas, err := p.Splits()
	if err != nil {
		return err
	}
	//
	for _, meta := range metas {
		if meta.RunID != p.runID {
			return fmt.Errorf("%w (split %s, run %s)", ErrForeignRun, meta.Split, meta.RunID)
		}
	}
	//
	return nil
}

// Remove all rows (and metadata) of a given split.
func (p *Store) dropSplit(name string) error {
	keys := [][]byte{[]byte(META_PREFIX + name)}
	//
	err := p.db.View(func(txn *badger.Txn) error {
		return scan(txn, splitPrefix(name), func(key []byte, _ []byte) error {
			keys = append(keys, bytes.Clone(key))
			return nil
		})
	})
	//
	if err != nil {
		return err
	}
	//
	batch := p.db.NewWriteBatch()
	defer batch.Cancel()
	//
	for _, key := range keys {
		if err := batch.Delete(key); err != nil {
			return err
		}
	}
	//
	return batch.Flush()
}

// Visit every key-value pair with a given prefix, in key order.
func scan(txn *badger.Txn, prefix []byte, fn func(key []byte, value []byte) error) error {
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()
	//
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		//
		if err := item.Value(func(value []byte) error {
			return fn(item.Key(), value)
		}); err != nil {
			return err
		}
	}
	//
	return nil
}

func splitPrefix(name string) []byte {
	return []byte(name + "/")
}

func rowKey(name string, index uint) []byte {
	return fmt.Appendf(nil, "%s/%010d", name, index)
}

// badgerLogger routes the database's internal logging through logrus, one
// level down so that routine messages only appear in verbose mode.
type badgerLogger struct{}

func (l *badgerLogger) Errorf(format string, args ...any) {
	log.Errorf(format, args...)
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	log.Warnf(format, args...)
}

func (l *badgerLogger) Infof(format string, args ...any) {
	log.Debugf(format, args...)
}

func (l *badgerLogger) Debugf(format string, args ...any) {
	log.Tracef(format, args...)
}
