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

// Package colval implements the closed tagged-value union (AllTypeVariant
// in the seminar's vocabulary) that crosses schema and operator boundaries,
// plus the lookup from a column type name to its DataType.
package colval

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DataType enumerates the closed set of supported column types.
type DataType int

const (
	Int DataType = iota
	Float
	Double
	String
	Decimal
)

func (d DataType) String() string {
	switch d {
	case Int:
		return "int"
	case Float:
		return "float"
	case Double:
		return "double"
	case String:
		return "string"
	case Decimal:
		return "decimal"
	default:
		return fmt.Sprintf("datatype(%d)", int(d))
	}
}

var byName = map[string]DataType{
	"int":     Int,
	"float":   Float,
	"double":  Double,
	"string":  String,
	"decimal": Decimal,
}

// ParseDataType resolves a column type name ("int", "float", "double",
// "string", "decimal") to its DataType. The bool result is false for any
// name outside the closed set. Table.AddColumn takes the DataType, not the
// name, and does not call this function.
func ParseDataType(name string) (DataType, bool) {
	dt, ok := byName[name]
	return dt, ok
}

// Variant is a tagged value that can hold any one of the supported column
// types. It is deliberately the only place in the kernel that carries a
// dynamic type tag; every segment and scan kernel is monomorphized per Go
// type and only touches Variant at its boundary.
type Variant struct {
	typ DataType
	raw any
}

// NewVariant builds a Variant from an already-known DataType and a raw Go
// value. Prefer the New<Type> constructors below at call sites where the
// type is known statically.
func NewVariant(typ DataType, raw any) Variant {
	return Variant{typ: typ, raw: raw}
}

func NewInt(v int32) Variant     { return Variant{typ: Int, raw: v} }
func NewFloat(v float32) Variant { return Variant{typ: Float, raw: v} }
func NewDouble(v float64) Variant { return Variant{typ: Double, raw: v} }
func NewString(v string) Variant  { return Variant{typ: String, raw: v} }
func NewDecimal(v decimal.Decimal) Variant { return Variant{typ: Decimal, raw: v} }

// DataType reports the variant's dynamic type.
func (v Variant) DataType() DataType { return v.typ }

// Raw exposes the underlying Go value. Segment kernels should prefer As[T]
// over Raw: this accessor exists for schema-boundary code that cannot name
// T at compile time, not for hot paths.
func (v Variant) Raw() any { return v.raw }

// As attempts to read the variant's underlying value as T. The bool result
// is false when T does not match the variant's dynamic type, mirroring a
// failed type_cast<T> in the seminar's C++ original.
func As[T any](v Variant) (T, bool) {
	t, ok := v.raw.(T)
	return t, ok
}

func (v Variant) String() string {
	return fmt.Sprintf("%v", v.raw)
}
