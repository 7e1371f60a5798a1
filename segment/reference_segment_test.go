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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phnm/DYOD-WS1819/colval"
	"github.com/phnm/DYOD-WS1819/ids"
	"github.com/phnm/DYOD-WS1819/kernelerr"
)

// fakeTable is a minimal single-chunk TableHandle stand-in so this package
// can test ReferenceSegment without importing package table.
type fakeTable struct {
	chunks [][]Segment
}

func (f *fakeTable) ColumnCount() int { return len(f.chunks[0]) }
func (f *fakeTable) ChunkCount() int  { return len(f.chunks) }
func (f *fakeTable) ChunkSegment(chunkID ids.ChunkID, col ids.ColumnID) (Segment, error) {
	if int(chunkID) >= len(f.chunks) {
		return nil, kernelerr.NewOutOfRange("chunk %d out of range", chunkID)
	}
	row := f.chunks[chunkID]
	if int(col) >= len(row) {
		return nil, kernelerr.NewOutOfRange("column %d out of range", col)
	}
	return row[col], nil
}

func TestReferenceSegmentResolvesThroughPosList(t *testing.T) {
	vs := NewValueSegment[int32](colval.Int)
	require.NoError(t, vs.Append(colval.NewInt(10)))
	require.NoError(t, vs.Append(colval.NewInt(20)))
	require.NoError(t, vs.Append(colval.NewInt(30)))

	table := &fakeTable{chunks: [][]Segment{{vs}}}
	posList := ids.PosList{
		{ChunkID: 0, ChunkOffset: 2},
		{ChunkID: 0, ChunkOffset: 0},
	}
	rs := NewReferenceSegment(table, 0, posList)

	assert.Equal(t, KindReference, rs.Kind())
	assert.Equal(t, 2, rs.Size())

	v, err := rs.At(0)
	require.NoError(t, err)
	got, ok := colval.As[int32](v)
	require.True(t, ok)
	assert.Equal(t, int32(30), got)

	v, err = rs.At(1)
	require.NoError(t, err)
	got, ok = colval.As[int32](v)
	require.True(t, ok)
	assert.Equal(t, int32(10), got)
}

func TestReferenceSegmentAtOutOfRange(t *testing.T) {
	vs := NewValueSegment[int32](colval.Int)
	require.NoError(t, vs.Append(colval.NewInt(1)))
	table := &fakeTable{chunks: [][]Segment{{vs}}}
	rs := NewReferenceSegment(table, 0, ids.PosList{{ChunkID: 0, ChunkOffset: 0}})

	_, err := rs.At(5)
	require.Error(t, err)
	assert.True(t, kernelerr.Is(err, kernelerr.OutOfRange))
}

func TestReferenceSegmentFingerprintReflectsPosList(t *testing.T) {
	vs := NewValueSegment[int32](colval.Int)
	require.NoError(t, vs.Append(colval.NewInt(1)))
	table := &fakeTable{chunks: [][]Segment{{vs}}}

	a := NewReferenceSegment(table, 0, ids.PosList{{ChunkID: 0, ChunkOffset: 0}})
	b := NewReferenceSegment(table, 0, ids.PosList{{ChunkID: 0, ChunkOffset: 0}})
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	c := NewReferenceSegment(table, 0, ids.PosList{{ChunkID: 1, ChunkOffset: 0}})
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}
