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

package segment

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/phnm/DYOD-WS1819/colval"
	"github.com/phnm/DYOD-WS1819/ids"
	"github.com/phnm/DYOD-WS1819/kernelerr"
)

// ReferenceSegment is a late-materialized result column: a shared PosList
// of RowIDs pointing into referencedTable/referencedColumn. Every segment
// on a scan's output chunk shares the same PosList pointer instead of each
// holding its own copy.
type ReferenceSegment struct {
	referencedTable  TableHandle
	referencedColumn ids.ColumnID
	posList          ids.PosList
}

// NewReferenceSegment wraps a PosList targeting one column of
// referencedTable. table_scan.go is responsible for the "no chaining"
// invariant: referencedTable must already be the ultimate origin table,
// never another reference segment's table.
func NewReferenceSegment(referencedTable TableHandle, referencedColumn ids.ColumnID, posList ids.PosList) *ReferenceSegment {
	return &ReferenceSegment{
		referencedTable:  referencedTable,
		referencedColumn: referencedColumn,
		posList:          posList,
	}
}

func (r *ReferenceSegment) Kind() Kind { return KindReference }

func (r *ReferenceSegment) DataType() colval.DataType {
	seg, err := r.referencedTable.ChunkSegment(0, r.referencedColumn)
	if err != nil || r.referencedTable.ChunkCount() == 0 {
		return colval.DataType(-1)
	}
	return seg.DataType()
}

func (r *ReferenceSegment) Size() int { return len(r.posList) }

// At resolves row i through the PosList into the referenced table's
// underlying segment, one indirection, never chained further.
func (r *ReferenceSegment) At(i int) (colval.Variant, error) {
	if i < 0 || i >= len(r.posList) {
		return colval.Variant{}, kernelerr.NewOutOfRange("reference segment index %d out of range [0, %d)", i, len(r.posList))
	}
	row := r.posList[i]
	seg, err := r.referencedTable.ChunkSegment(row.ChunkID, r.referencedColumn)
	if err != nil {
		return colval.Variant{}, err
	}
	return seg.At(int(row.ChunkOffset))
}

func (r *ReferenceSegment) PosList() ids.PosList { return r.posList }

func (r *ReferenceSegment) ReferencedTable() TableHandle { return r.referencedTable }

func (r *ReferenceSegment) ReferencedColumn() ids.ColumnID { return r.referencedColumn }

func (r *ReferenceSegment) Fingerprint() uint64 {
	h := xxhash.New()
	for _, row := range r.posList {
		fmt.Fprintf(h, "%d:%d|", row.ChunkID, row.ChunkOffset)
	}
	return h.Sum64()
}
