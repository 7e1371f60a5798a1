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
	"runtime"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"

	"github.com/phnm/DYOD-WS1819/chunk"
	"github.com/phnm/DYOD-WS1819/colval"
	"github.com/phnm/DYOD-WS1819/ids"
	"github.com/phnm/DYOD-WS1819/kernelerr"
	"github.com/phnm/DYOD-WS1819/kernellog"
	"github.com/phnm/DYOD-WS1819/segment"
	"github.com/phnm/DYOD-WS1819/table"
)

// ScanType is the comparator a TableScan applies between a column's values
// and its search value.
type ScanType int

const (
	Eq ScanType = iota
	NotEq
	Lt
	Le
	Gt
	Ge
)

func (s ScanType) String() string {
	switch s {
	case Eq:
		return "="
	case NotEq:
		return "!="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	default:
		return "?"
	}
}

// TableScan filters one column of its input by a ScanType against a search
// value, producing a reference-only result table: one chunk, one reference
// segment per input column, all sharing a single PosList.
type TableScan struct {
	base
	input       Operator
	column      ids.ColumnID
	scanType    ScanType
	searchValue colval.Variant
	workers     int
}

// NewTableScan builds a scan node. workers bounds per-chunk scan
// parallelism; 0 selects runtime.GOMAXPROCS(0).
func NewTableScan(input Operator, column ids.ColumnID, scanType ScanType, searchValue colval.Variant, workers int) *TableScan {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &TableScan{input: input, column: column, scanType: scanType, searchValue: searchValue, workers: workers}
}

// ColumnID returns the column this scan filters.
func (ts *TableScan) ColumnID() ids.ColumnID { return ts.column }

// ScanType returns the comparator this scan applies.
func (ts *TableScan) ScanType() ScanType { return ts.scanType }

// SearchValue returns the value the column is compared against.
func (ts *TableScan) SearchValue() colval.Variant { return ts.searchValue }

func (ts *TableScan) Execute() (*table.Table, error) {
	return ts.cachedExecute(func() (*table.Table, error) {
		input, err := ts.input.Execute()
		if err != nil {
			return nil, err
		}

		colType, err := input.ColumnType(ts.column)
		if err != nil {
			return nil, err
		}
		if colType != ts.searchValue.DataType() {
			return nil, kernelerr.NewTypeMismatch("cannot scan %s column with a %s search value", colType, ts.searchValue.DataType())
		}

		kernellog.Debug("table_scan start", kernellog.Fields{
			"table": input.ID().String(), "column": ts.column, "op": ts.scanType.String(),
		})

		var (
			posList ids.PosList
			origin  segment.TableHandle
		)
		switch colType {
		case colval.Int:
			v, _ := colval.As[int32](ts.searchValue)
			posList, origin, err = scanColumn(input, ts.column, ts.scanType, v, orderedCmp[int32], ts.workers)
		case colval.Float:
			v, _ := colval.As[float32](ts.searchValue)
			posList, origin, err = scanColumn(input, ts.column, ts.scanType, v, orderedCmp[float32], ts.workers)
		case colval.Double:
			v, _ := colval.As[float64](ts.searchValue)
			posList, origin, err = scanColumn(input, ts.column, ts.scanType, v, orderedCmp[float64], ts.workers)
		case colval.String:
			v, _ := colval.As[string](ts.searchValue)
			posList, origin, err = scanColumn(input, ts.column, ts.scanType, v, orderedCmp[string], ts.workers)
		case colval.Decimal:
			v, _ := colval.As[decimal.Decimal](ts.searchValue)
			posList, origin, err = scanColumn(input, ts.column, ts.scanType, v, decimalCmp, ts.workers)
		default:
			return nil, kernelerr.NewTypeMismatch("unsupported column type %s", colType)
		}
		if err != nil {
			kernellog.Warn("table_scan failed", err, kernellog.Fields{"table": input.ID().String()})
			return nil, err
		}
		if origin == nil {
			origin = input
		}

		out, err := buildReferenceResult(input, origin, posList)
		if err != nil {
			return nil, err
		}
		kernellog.Debug("table_scan done", kernellog.Fields{
			"table": input.ID().String(), "matches": len(posList),
		})
		return out, nil
	})
}

func orderedCmp[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func decimalCmp(a, b decimal.Decimal) int { return a.Cmp(b) }

// comparisonHolds applies op's comparator meaning to a three-way cmp
// result: the same six-way switch every scan kernel below shares,
// regardless of how value and search were produced.
func comparisonHolds[T any](op ScanType, cmp func(a, b T) int, value, search T) bool {
	c := cmp(value, search)
	switch op {
	case Eq:
		return c == 0
	case NotEq:
		return c != 0
	case Lt:
		return c < 0
	case Le:
		return c <= 0
	case Gt:
		return c > 0
	case Ge:
		return c >= 0
	default:
		return false
	}
}

// scanColumn dispatches across every chunk of input's column, in
// parallel, bounded by workers. It returns the assembled PosList in
// ascending (chunk_id, chunk_offset) order plus the discovered origin
// table: nil unless passthrough through a reference segment occurred, in
// which case every chunk's origin must agree (guaranteed by the no-
// chaining invariant on the input table).
func scanColumn[T any](input *table.Table, col ids.ColumnID, op ScanType, search T, cmp func(a, b T) int, workers int) (ids.PosList, segment.TableHandle, error) {
	chunkCount := input.ChunkCount()
	partials := make([]ids.PosList, chunkCount)
	origins := make([]segment.TableHandle, chunkCount)

	g := &errgroup.Group{}
	if workers > 0 {
		g.SetLimit(workers)
	}
	for k := 0; k < chunkCount; k++ {
		k := k
		g.Go(func() error {
			c, err := input.GetChunk(ids.ChunkID(k))
			if err != nil {
				return err
			}
			s, err := c.GetSegment(col)
			if err != nil {
				return err
			}
			partial, origin, err := scanSegment(ids.ChunkID(k), s, op, cmp, search)
			if err != nil {
				return err
			}
			partials[k] = partial
			origins[k] = origin
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var out ids.PosList
	var origin segment.TableHandle
	for k := 0; k < chunkCount; k++ {
		out = append(out, partials[k]...)
		if origins[k] != nil {
			origin = origins[k]
		}
	}
	return out, origin, nil
}

// scanSegment evaluates one chunk's contribution to the PosList,
// dispatching on the segment's physical kind. origin is non-nil only for
// a reference segment, naming the ultimate table rows should be attributed
// to.
func scanSegment[T any](chunkID ids.ChunkID, s segment.Segment, op ScanType, cmp func(a, b T) int, search T) (ids.PosList, segment.TableHandle, error) {
	switch s.Kind() {
	case segment.KindValue:
		vs, ok := s.(*segment.ValueSegment[T])
		if !ok {
			return nil, nil, kernelerr.NewTypeMismatch("value segment does not hold the expected type")
		}
		var out ids.PosList
		for i, v := range vs.Values() {
			if comparisonHolds(op, cmp, v, search) {
				out = append(out, ids.RowID{ChunkID: chunkID, ChunkOffset: ids.ChunkOffset(i)})
			}
		}
		return out, nil, nil

	case segment.KindDictionary:
		ds, ok := s.(*segment.DictionarySegment[T])
		if !ok {
			return nil, nil, kernelerr.NewTypeMismatch("dictionary segment does not hold the expected type")
		}
		predicate, err := dictionaryPredicate(ds, op, cmp, search)
		if err != nil {
			return nil, nil, err
		}
		attrs := ds.AttributeVector()
		n := attrs.Size()
		var out ids.PosList
		for i := 0; i < n; i++ {
			code, err := attrs.Get(i)
			if err != nil {
				return nil, nil, err
			}
			if predicate(code) {
				out = append(out, ids.RowID{ChunkID: chunkID, ChunkOffset: ids.ChunkOffset(i)})
			}
		}
		return out, nil, nil

	case segment.KindReference:
		rs, ok := s.(*segment.ReferenceSegment)
		if !ok {
			return nil, nil, kernelerr.NewTypeMismatch("unexpected reference segment implementation")
		}
		origin := rs.ReferencedTable()
		originCol := rs.ReferencedColumn()
		var out ids.PosList
		for _, row := range rs.PosList() {
			originSeg, err := origin.ChunkSegment(row.ChunkID, originCol)
			if err != nil {
				return nil, nil, err
			}
			v, err := valueAt[T](originSeg, row.ChunkOffset)
			if err != nil {
				return nil, nil, err
			}
			if comparisonHolds(op, cmp, v, search) {
				out = append(out, row)
			}
		}
		return out, origin, nil

	default:
		return nil, nil, kernelerr.NewTypeMismatch("unknown segment kind")
	}
}

// valueAt reads a typed value out of a value or dictionary segment at a
// given offset. Reference segments never reach here: the no-chaining
// invariant guarantees an origin table's segments are value or
// dictionary only.
func valueAt[T any](s segment.Segment, offset ids.ChunkOffset) (T, error) {
	var zero T
	switch seg := s.(type) {
	case *segment.ValueSegment[T]:
		return seg.Get(int(offset))
	case *segment.DictionarySegment[T]:
		return seg.Get(int(offset))
	default:
		return zero, kernelerr.NewTypeMismatch("origin segment does not hold the expected type")
	}
}

// dictionaryPredicate builds a predicate over attribute codes from
// lower_bound/upper_bound alone, so a dictionary segment scans without
// ever decompressing a row. lb==INVALID means every dictionary entry is
// smaller than the search value; a valid lb with D[lb]!=search means the
// search value falls in a gap between two entries. Eq and NotEq read D[lb]
// to tell an exact hit from both of those cases; Le reads it to choose
// between code<=lb and code<lb. That single D[lb] read is the only place
// the dictionary scan touches a dictionary value.
func dictionaryPredicate[T any](ds *segment.DictionarySegment[T], op ScanType, cmp func(a, b T) int, search T) (func(uint32) bool, error) {
	lb := ds.LowerBound(search)
	ub := ds.UpperBound(search)
	lbMatchesSearch := func() (bool, error) {
		if lb == ids.InvalidValueID {
			return false, nil
		}
		dv, err := ds.ValueByValueID(lb)
		if err != nil {
			return false, err
		}
		return cmp(dv, search) == 0, nil
	}

	switch op {
	case Eq:
		eq, err := lbMatchesSearch()
		if err != nil {
			return nil, err
		}
		if !eq {
			return func(uint32) bool { return false }, nil
		}
		return func(code uint32) bool { return code == uint32(lb) }, nil

	case NotEq:
		eq, err := lbMatchesSearch()
		if err != nil {
			return nil, err
		}
		if !eq {
			return func(uint32) bool { return true }, nil
		}
		return func(code uint32) bool { return code != uint32(lb) }, nil

	case Lt:
		if lb == ids.InvalidValueID {
			return func(uint32) bool { return true }, nil
		}
		return func(code uint32) bool { return code < uint32(lb) }, nil

	case Le:
		if lb == ids.InvalidValueID || ub == ids.InvalidValueID {
			return func(uint32) bool { return true }, nil
		}
		eq, err := lbMatchesSearch()
		if err != nil {
			return nil, err
		}
		if eq {
			return func(code uint32) bool { return code <= uint32(lb) }, nil
		}
		return func(code uint32) bool { return code < uint32(lb) }, nil

	case Gt:
		if ub == ids.InvalidValueID {
			return func(uint32) bool { return false }, nil
		}
		return func(code uint32) bool { return code >= uint32(ub) }, nil

	case Ge:
		if lb == ids.InvalidValueID {
			return func(uint32) bool { return false }, nil
		}
		return func(code uint32) bool { return code >= uint32(lb) }, nil

	default:
		return nil, kernelerr.NewTypeMismatch("unknown scan type")
	}
}

// buildReferenceResult assembles the scan's output table: same schema as
// input, one chunk of reference segments over origin, all columns sharing
// posList.
func buildReferenceResult(input *table.Table, origin segment.TableHandle, posList ids.PosList) (*table.Table, error) {
	out := table.New(input.ChunkSize())
	for col := 0; col < input.ColumnCount(); col++ {
		name, err := input.ColumnName(ids.ColumnID(col))
		if err != nil {
			return nil, err
		}
		dt, err := input.ColumnType(ids.ColumnID(col))
		if err != nil {
			return nil, err
		}
		if err := out.AddColumn(name, dt); err != nil {
			return nil, err
		}
	}

	c := chunk.New()
	for col := 0; col < input.ColumnCount(); col++ {
		rs := segment.NewReferenceSegment(origin, ids.ColumnID(col), posList)
		if err := c.AddSegment(rs); err != nil {
			return nil, err
		}
	}
	out.EmplaceChunk(c)
	return out, nil
}
