// Copyright 2026 The DYOD Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package chunk implements Chunk, a horizontal partition of a table
// holding one equal-length segment per column.
package chunk

import (
	"github.com/cespare/xxhash/v2"

	"github.com/phnm/DYOD-WS1819/colval"
	"github.com/phnm/DYOD-WS1819/ids"
	"github.com/phnm/DYOD-WS1819/kernelerr"
	"github.com/phnm/DYOD-WS1819/segment"
)

// Chunk is an ordered list of equal-length segments, one per column, plus a
// frozen flag. A frozen chunk rejects AddSegment and Append.
type Chunk struct {
	segments []segment.Segment
	frozen   bool
}

// New returns an empty, unfrozen chunk.
func New() *Chunk {
	return &Chunk{}
}

// AddSegment appends s as the chunk's next column. Fails Immutable once the
// chunk is frozen.
func (c *Chunk) AddSegment(s segment.Segment) error {
	if c.frozen {
		return kernelerr.NewImmutable("cannot add a segment to a frozen chunk")
	}
	c.segments = append(c.segments, s)
	return nil
}

// Append adds one row: row must carry exactly one variant per column, each
// appended to its matching segment. The chunk's segments must be
// Appendable; table.Table guarantees this by construction.
func (c *Chunk) Append(row []colval.Variant) error {
	if c.frozen {
		return kernelerr.NewImmutable("cannot append to a frozen chunk")
	}
	if len(row) != len(c.segments) {
		return kernelerr.NewPrecondition("row has %d values, chunk has %d columns", len(row), len(c.segments))
	}
	for i, v := range row {
		a, ok := c.segments[i].(segment.Appendable)
		if !ok {
			return kernelerr.NewTypeMismatch("column %d segment is not appendable", i)
		}
		if err := a.Append(v); err != nil {
			return err
		}
	}
	return nil
}

// GetSegment returns the shared segment handle for the given column.
func (c *Chunk) GetSegment(col ids.ColumnID) (segment.Segment, error) {
	if int(col) < 0 || int(col) >= len(c.segments) {
		return nil, kernelerr.NewOutOfRange("column id %d out of range [0, %d)", col, len(c.segments))
	}
	return c.segments[col], nil
}

// ColumnCount returns the number of segments (columns) in this chunk.
func (c *Chunk) ColumnCount() int { return len(c.segments) }

// Size returns the chunk's row count, the max of its segments' sizes. By
// invariant every segment has equal size; max is a defensive fallback.
func (c *Chunk) Size() int {
	max := 0
	for _, s := range c.segments {
		if s.Size() > max {
			max = s.Size()
		}
	}
	return max
}

// Freeze marks the chunk read-only. Idempotent.
func (c *Chunk) Freeze() { c.frozen = true }

// IsWriteable reports whether the chunk still accepts AddSegment/Append.
func (c *Chunk) IsWriteable() bool { return !c.frozen }

// Fingerprint combines every segment's fingerprint into one digest, stable
// across equal chunk contents and sensitive to any segment's change.
func (c *Chunk) Fingerprint() uint64 {
	h := xxhash.New()
	for _, s := range c.segments {
		var buf [8]byte
		fp := s.Fingerprint()
		for i := 0; i < 8; i++ {
			buf[i] = byte(fp >> (8 * i))
		}
		h.Write(buf[:])
	}
	return h.Sum64()
}
