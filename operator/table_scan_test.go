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

package operator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phnm/DYOD-WS1819/colval"
	"github.com/phnm/DYOD-WS1819/ids"
	"github.com/phnm/DYOD-WS1819/kernelerr"
	"github.com/phnm/DYOD-WS1819/registry"
	"github.com/phnm/DYOD-WS1819/table"
)

func seedTable(t *testing.T, chunkSize int) *table.Table {
	t.Helper()
	tbl := table.New(chunkSize)
	require.NoError(t, tbl.AddColumn("id", colval.Int))
	require.NoError(t, tbl.AddColumn("name", colval.String))

	rows := []struct {
		id   int32
		name string
	}{
		{1, "alice"}, {2, "bob"}, {3, "carol"}, {4, "dave"}, {5, "erin"},
	}
	for _, r := range rows {
		require.NoError(t, tbl.Append([]colval.Variant{colval.NewInt(r.id), colval.NewString(r.name)}))
	}
	return tbl
}

func newGetTableOp(t *testing.T, name string, tbl *table.Table) *GetTable {
	t.Helper()
	reg := registry.New()
	require.NoError(t, reg.AddTable(name, tbl))
	return NewGetTable(reg, name)
}

func TestGetTableResolvesAtConstruction(t *testing.T) {
	tbl := seedTable(t, 100)
	op := newGetTableOp(t, "people", tbl)

	got, err := op.Execute()
	require.NoError(t, err)
	assert.Same(t, tbl, got)
}

func TestGetTableMissingFailsNotFound(t *testing.T) {
	reg := registry.New()
	op := NewGetTable(reg, "missing")
	_, err := op.Execute()
	require.Error(t, err)
	assert.True(t, kernelerr.Is(err, kernelerr.NotFound))
}

func TestTableScanOverValueSegment(t *testing.T) {
	tbl := seedTable(t, 100)
	src := newGetTableOp(t, "people", tbl)
	scan := NewTableScan(src, 0, Ge, colval.NewInt(3), 2)

	out, err := scan.Execute()
	require.NoError(t, err)
	assert.Equal(t, 1, out.ChunkCount())
	assert.Equal(t, 3, out.RowCount())

	c, err := out.GetChunk(0)
	require.NoError(t, err)
	seg, err := c.GetSegment(0)
	require.NoError(t, err)
	assert.Equal(t, "reference", seg.Kind().String())
}

func TestTableScanOverDictionarySegment(t *testing.T) {
	tbl := seedTable(t, 2)
	require.NoError(t, tbl.CompressChunk(0))
	require.NoError(t, tbl.CompressChunk(1))

	src := newGetTableOp(t, "people", tbl)
	scan := NewTableScan(src, 0, Eq, colval.NewInt(3), 4)

	out, err := scan.Execute()
	require.NoError(t, err)
	assert.Equal(t, 1, out.RowCount())
}

func TestTableScanExecuteIsCached(t *testing.T) {
	tbl := seedTable(t, 100)
	src := newGetTableOp(t, "people", tbl)
	scan := NewTableScan(src, 0, Lt, colval.NewInt(3), 1)

	first, err := scan.Execute()
	require.NoError(t, err)
	second, err := scan.Execute()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestTableScanTypeMismatchFails(t *testing.T) {
	tbl := seedTable(t, 100)
	src := newGetTableOp(t, "people", tbl)
	scan := NewTableScan(src, 0, Eq, colval.NewString("not an int"), 1)

	_, err := scan.Execute()
	require.Error(t, err)
	assert.True(t, kernelerr.Is(err, kernelerr.TypeMismatch))
}

func seedDecimalTable(t *testing.T, chunkSize int) *table.Table {
	t.Helper()
	tbl := table.New(chunkSize)
	require.NoError(t, tbl.AddColumn("price", colval.Decimal))

	for _, s := range []string{"1.50", "2.00", "2.50", "3.00", "3.50"} {
		d, err := decimal.NewFromString(s)
		require.NoError(t, err)
		require.NoError(t, tbl.Append([]colval.Variant{colval.NewDecimal(d)}))
	}
	return tbl
}

func TestTableScanOverDecimalValueSegment(t *testing.T) {
	tbl := seedDecimalTable(t, 100)
	src := newGetTableOp(t, "prices", tbl)
	search, err := decimal.NewFromString("2.50")
	require.NoError(t, err)
	scan := NewTableScan(src, 0, Ge, colval.NewDecimal(search), 2)

	out, err := scan.Execute()
	require.NoError(t, err)
	assert.Equal(t, 3, out.RowCount())
}

func TestTableScanOverDecimalDictionarySegment(t *testing.T) {
	tbl := seedDecimalTable(t, 2)
	require.NoError(t, tbl.CompressChunk(0))
	require.NoError(t, tbl.CompressChunk(1))

	src := newGetTableOp(t, "prices", tbl)
	search, err := decimal.NewFromString("2.50")
	require.NoError(t, err)
	scan := NewTableScan(src, 0, Eq, colval.NewDecimal(search), 4)

	out, err := scan.Execute()
	require.NoError(t, err)
	assert.Equal(t, 1, out.RowCount())
}

func TestTableScanAccessorsExposeParameters(t *testing.T) {
	tbl := seedTable(t, 100)
	src := newGetTableOp(t, "people", tbl)
	search := colval.NewInt(3)
	scan := NewTableScan(src, 1, Ge, search, 1)

	assert.Equal(t, ids.ColumnID(1), scan.ColumnID())
	assert.Equal(t, Ge, scan.ScanType())
	assert.Equal(t, search, scan.SearchValue())
}

func TestChainedTableScanRetargetsOrigin(t *testing.T) {
	tbl := seedTable(t, 100)
	src := newGetTableOp(t, "people", tbl)
	first := NewTableScan(src, 0, Ge, colval.NewInt(2), 1)
	second := NewTableScan(first, 1, NotEq, colval.NewString("carol"), 1)

	out, err := second.Execute()
	require.NoError(t, err)
	assert.Equal(t, 3, out.RowCount())

	c, err := out.GetChunk(0)
	require.NoError(t, err)
	seg, err := c.GetSegment(0)
	require.NoError(t, err)
	assert.Equal(t, "reference", seg.Kind().String())

	v, err := seg.At(0)
	require.NoError(t, err)
	got, ok := colval.As[int32](v)
	require.True(t, ok)
	assert.Equal(t, int32(2), got)
}
