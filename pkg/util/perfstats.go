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
	"fmt"
	"runtime"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats records the time, memory allocated and garbage collections at a
// given point, such that the cost of some operation can be reported later.
type PerfStats struct {
	startTime time.Time
	// Total bytes allocated at start
	startMem uint64
	// Number of gc events at start
	startGc uint32
}

// NewPerfStats takes a snapshot of the current state.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	return &PerfStats{time.Now(), m.TotalAlloc, m.NumGC}
}

// Log reports (at debug level) the time taken, memory allocated and garbage
// collections performed since this snapshot was taken.
func (p *PerfStats) Log(prefix string) {
	var m runtime.MemStats
	//
	if !log.IsLevelEnabled(log.DebugLevel) {
		return
	}
	//
	runtime.ReadMemStats(&m)
	//
	log.WithFields(log.Fields{
		"time":  time.Since(p.startTime).Round(time.Microsecond),
		"alloc": formatBytes(m.TotalAlloc - p.startMem),
		"gcs":   m.NumGC - p.startGc,
	}).Debug(prefix)
}

func formatBytes(n uint64) string {
	const unit = 1024
	//
	if n < unit {
		return strconv.FormatUint(n, 10) + "b"
	}
	//
	var (
		div, exp = uint64(unit), 0
	)
	//
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	//
	return fmt.Sprintf("%.1f%cb", float64(n)/float64(div), "KMGTPE"[exp])
}
