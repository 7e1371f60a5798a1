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
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/google/btree"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"

	"github.com/phnm/DYOD-WS1819/colval"
	"github.com/phnm/DYOD-WS1819/ids"
	"github.com/phnm/DYOD-WS1819/kernelerr"
)

// DictionarySegment is an immutable segment storing a sorted, duplicate-
// free dictionary plus a width-fitted attribute vector of codes. cmp is a
// three-way comparator (negative/zero/positive), the monomorphized stand-in
// for T's ordering since not every supported T (decimal.Decimal) satisfies
// constraints.Ordered.
type DictionarySegment[T any] struct {
	dataType   colval.DataType
	dictionary []T
	attrs      *AttributeVector
	cmp        func(a, b T) int
}

// NewDictionarySegment builds a dictionary segment from a value segment
// snapshot: read the source into a working buffer, compute its sorted
// unique set, pick an attribute-vector width from the dictionary's size,
// then fix each row's code via a lower-bound lookup (always an exact hit
// by construction).
func NewDictionarySegment[T any](src *ValueSegment[T], cmp func(a, b T) int) (*DictionarySegment[T], error) {
	values := src.Values()
	less := func(a, b T) bool { return cmp(a, b) < 0 }

	tree := btree.NewG(32, less)
	for _, v := range values {
		tree.ReplaceOrInsert(v)
	}
	dictionary := make([]T, 0, tree.Len())
	tree.Ascend(func(item T) bool {
		dictionary = append(dictionary, item)
		return true
	})

	width := WidthForCount(len(dictionary))
	attrs := NewAttributeVector(len(values), width)
	for i, v := range values {
		idx := sort.Search(len(dictionary), func(j int) bool { return cmp(dictionary[j], v) >= 0 })
		if err := attrs.Set(i, uint32(idx)); err != nil {
			return nil, err
		}
	}

	return &DictionarySegment[T]{
		dataType:   src.DataType(),
		dictionary: dictionary,
		attrs:      attrs,
		cmp:        cmp,
	}, nil
}

func (d *DictionarySegment[T]) Kind() Kind                { return KindDictionary }
func (d *DictionarySegment[T]) DataType() colval.DataType { return d.dataType }
func (d *DictionarySegment[T]) Size() int                 { return d.attrs.Size() }

// Get returns D[attribute[i]].
func (d *DictionarySegment[T]) Get(i int) (T, error) {
	var zero T
	code, err := d.attrs.Get(i)
	if err != nil {
		return zero, err
	}
	return d.dictionary[code], nil
}

func (d *DictionarySegment[T]) At(i int) (colval.Variant, error) {
	v, err := d.Get(i)
	if err != nil {
		return colval.Variant{}, err
	}
	return colval.NewVariant(d.dataType, v), nil
}

// Append always fails: dictionary segments are immutable once built.
func (d *DictionarySegment[T]) Append(colval.Variant) error {
	return kernelerr.NewImmutable("dictionary segments are immutable")
}

// ValueByValueID returns D[id] with no bounds relaxation: an id at or past
// the dictionary's length is OutOfRange, never clamped.
func (d *DictionarySegment[T]) ValueByValueID(id ids.ValueID) (T, error) {
	var zero T
	if int(id) >= len(d.dictionary) {
		return zero, kernelerr.NewOutOfRange("value id %d out of range [0, %d)", id, len(d.dictionary))
	}
	return d.dictionary[id], nil
}

// LowerBound returns the first dictionary index i with D[i] >= v, or
// ids.InvalidValueID if every entry is smaller than v.
func (d *DictionarySegment[T]) LowerBound(v T) ids.ValueID {
	idx := sort.Search(len(d.dictionary), func(j int) bool { return d.cmp(d.dictionary[j], v) >= 0 })
	if idx == len(d.dictionary) {
		return ids.InvalidValueID
	}
	return ids.ValueID(idx)
}

// UpperBound returns the first dictionary index i with D[i] > v, or
// ids.InvalidValueID if no entry exceeds v.
func (d *DictionarySegment[T]) UpperBound(v T) ids.ValueID {
	idx := sort.Search(len(d.dictionary), func(j int) bool { return d.cmp(d.dictionary[j], v) > 0 })
	if idx == len(d.dictionary) {
		return ids.InvalidValueID
	}
	return ids.ValueID(idx)
}

func (d *DictionarySegment[T]) UniqueValuesCount() int { return len(d.dictionary) }

// Dictionary returns a copy of the sorted unique value set.
func (d *DictionarySegment[T]) Dictionary() []T {
	out := make([]T, len(d.dictionary))
	copy(out, d.dictionary)
	return out
}

func (d *DictionarySegment[T]) AttributeVector() *AttributeVector { return d.attrs }

func (d *DictionarySegment[T]) Fingerprint() uint64 {
	h := xxhash.New()
	for _, v := range d.dictionary {
		fmt.Fprintf(h, "%v|", v)
	}
	n := d.attrs.Size()
	for i := 0; i < n; i++ {
		code, _ := d.attrs.Get(i)
		fmt.Fprintf(h, "%d,", code)
	}
	return h.Sum64()
}

// Compress type-switches a value segment to its dictionary-encoded form,
// the Go stand-in for the seminar's make_shared_by_data_type<DictionarySegment>
// dispatch table. Passing an already-compressed or reference segment fails.
func Compress(s Segment) (Segment, error) {
	switch vs := s.(type) {
	case *ValueSegment[int32]:
		return NewDictionarySegment[int32](vs, orderedCmp[int32])
	case *ValueSegment[float32]:
		return NewDictionarySegment[float32](vs, orderedCmp[float32])
	case *ValueSegment[float64]:
		return NewDictionarySegment[float64](vs, orderedCmp[float64])
	case *ValueSegment[string]:
		return NewDictionarySegment[string](vs, orderedCmp[string])
	case *ValueSegment[decimal.Decimal]:
		return NewDictionarySegment[decimal.Decimal](vs, decimalCmp)
	case *DictionarySegment[int32], *DictionarySegment[float32], *DictionarySegment[float64],
		*DictionarySegment[string], *DictionarySegment[decimal.Decimal]:
		return nil, kernelerr.NewPrecondition("segment is already dictionary-compressed")
	default:
		return nil, kernelerr.NewTypeMismatch("segment kind %T cannot be dictionary-compressed", s)
	}
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

func decimalCmp(a, b decimal.Decimal) int {
	return a.Cmp(b)
}
