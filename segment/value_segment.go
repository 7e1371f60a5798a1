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
	"github.com/phnm/DYOD-WS1819/kernelerr"
)

// ValueSegment is an append-only flat vector of T. It is the only segment
// kind that ever accepts new rows.
type ValueSegment[T any] struct {
	dataType colval.DataType
	values   []T
}

// NewValueSegment returns an empty value segment tagged with dataType.
// dataType must match T (e.g. colval.Int for T=int32); the factories in
// package table enforce this pairing.
func NewValueSegment[T any](dataType colval.DataType) *ValueSegment[T] {
	return &ValueSegment[T]{dataType: dataType}
}

func (s *ValueSegment[T]) Kind() Kind                  { return KindValue }
func (s *ValueSegment[T]) DataType() colval.DataType   { return s.dataType }
func (s *ValueSegment[T]) Size() int                   { return len(s.values) }
func (s *ValueSegment[T]) Values() []T                 { return s.values }

// Get returns the value at row i, failing OutOfRange outside [0, size).
func (s *ValueSegment[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(s.values) {
		return zero, kernelerr.NewOutOfRange("value segment index %d out of range [0, %d)", i, len(s.values))
	}
	return s.values[i], nil
}

// At is the slow tagged-value accessor; see Segment.At.
func (s *ValueSegment[T]) At(i int) (colval.Variant, error) {
	v, err := s.Get(i)
	if err != nil {
		return colval.Variant{}, err
	}
	return colval.NewVariant(s.dataType, v), nil
}

// Append adds one row. It fails TypeMismatch when v's dynamic type does
// not agree with the segment's T.
func (s *ValueSegment[T]) Append(v colval.Variant) error {
	if v.DataType() != s.dataType {
		return kernelerr.NewTypeMismatch("cannot append %s value into %s column", v.DataType(), s.dataType)
	}
	t, ok := colval.As[T](v)
	if !ok {
		return kernelerr.NewTypeMismatch("variant tagged %s did not hold a %T", v.DataType(), t)
	}
	s.values = append(s.values, t)
	return nil
}

func (s *ValueSegment[T]) Fingerprint() uint64 {
	h := xxhash.New()
	for _, v := range s.values {
		fmt.Fprintf(h, "%v|", v)
	}
	return h.Sum64()
}
