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

// Package ids holds the primitive identifiers shared by every layer of the
// storage kernel: chunk and column identifiers, the dictionary ValueID, and
// the RowID/PosList pair a table scan produces.
package ids

import "math"

// ChunkID identifies a chunk within a table, in chunk creation order.
type ChunkID uint32

// ChunkOffset identifies a row within a chunk.
type ChunkOffset uint32

// ColumnID identifies a column within a table's schema.
type ColumnID uint16

// ValueID is a dictionary index, widened to 32 bits at API boundaries.
type ValueID uint32

// InvalidValueID is the canonical 32-bit sentinel returned by
// DictionarySegment.LowerBound/UpperBound when no dictionary entry
// satisfies the bound. Narrower attribute-vector widths use the all-ones
// value of their own width as their sentinel; see segment.AttributeVector.
const InvalidValueID ValueID = math.MaxUint32

// RowID addresses a single row of a table.
type RowID struct {
	ChunkID     ChunkID
	ChunkOffset ChunkOffset
}

// PosList is an ordered sequence of RowIDs, the output of a table scan.
// It is built once and is safe to share across reference segments once a
// scan returns it: nothing mutates a PosList after construction.
type PosList []RowID
