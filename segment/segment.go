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

// Package segment implements the three physical column representations a
// chunk can hold: mutable value segments, immutable dictionary-compressed
// segments, and late-materialized reference segments.
package segment

import (
	"github.com/phnm/DYOD-WS1819/colval"
	"github.com/phnm/DYOD-WS1819/ids"
)

// Kind tags a Segment's physical representation, replacing the dynamic
// dynamic_pointer_cast dispatch of the seminar's C++ original with a plain
// switch over a closed tag.
type Kind int

const (
	KindValue Kind = iota
	KindDictionary
	KindReference
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindDictionary:
		return "dictionary"
	case KindReference:
		return "reference"
	default:
		return "unknown"
	}
}

// Segment is the common, column-aligned container every chunk slot holds.
type Segment interface {
	Kind() Kind
	DataType() colval.DataType
	Size() int
	// At is the tagged-value accessor. It is explicitly slow: kernels that
	// care about throughput reach for a concrete segment's Values()/Get()
	// instead.
	At(i int) (colval.Variant, error)
	// Fingerprint returns a stable digest of the segment's contents, used
	// by tests and logs to compare chunks without a deep structural walk.
	Fingerprint() uint64
}

// Appendable is implemented by segments that accept new rows. Value
// segments implement it for real; dictionary segments implement it only to
// report that they are immutable once built.
type Appendable interface {
	Segment
	Append(v colval.Variant) error
}

// TableHandle is the minimal surface a reference segment needs from its
// referenced table. table.Table implements it; the interface lives here
// (rather than being imported from package table) so that segment does not
// depend on table, which in turn depends on segment to hold its columns.
type TableHandle interface {
	ColumnCount() int
	ChunkCount() int
	ChunkSegment(chunkID ids.ChunkID, col ids.ColumnID) (Segment, error)
}
