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
package util

import (
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats provides a snapshot of memory allocation at a given point in time,
// such that the cost of a stage (e.g. building a dataset) can be reported.
type PerfStats struct {
	// Starting time
	startTime time.Time
	// Starting total memory allocation
	startMem uint64
	// Starting number of gc events
	startGc uint32
}

// NewPerfStats takes a snapshot of the current time and memory usage.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	return &PerfStats{time.Now(), m.TotalAlloc, m.NumGC}
}

// Elapsed returns the time since this snapshot was taken.
func (p *PerfStats) Elapsed() time.Duration {
	return time.Since(p.startTime)
}

// Log reports (at debug level) the time taken and memory allocated since this
// snapshot was taken.
func (p *PerfStats) Log(prefix string) {
	p.LogWith(prefix, nil)
}

// LogWith is as Log, but includes additional fields in the report.  A "count"
// field is additionally reported as a rate per second.
func (p *PerfStats) LogWith(prefix string, fields log.Fields) {
	var (
		m       runtime.MemStats
		seconds = p.Elapsed().Seconds()
		all     = log.Fields{}
	)
	//
	runtime.ReadMemStats(&m)
	//
	for k, v := range fields {
		all[k] = v
	}
	//
	if count, ok := fields["count"].(uint); ok && seconds > 0 {
		all["per_second"] = float64(count) / seconds
	}
	//
	all["seconds"] = seconds
	all["alloc_mb"] = (m.TotalAlloc - p.startMem) / 1024 / 1024
	all["gcs"] = m.NumGC - p.startGc
	all["heap_mb"] = m.Alloc / 1024 / 1024
	//
	log.WithFields(all).Debugf("%s complete", prefix)
}
