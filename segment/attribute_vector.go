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
	"math"

	"github.com/phnm/DYOD-WS1819/ids"
	"github.com/phnm/DYOD-WS1819/kernelerr"
)

// Width is the storage width, in bytes, of a dictionary segment's
// attribute vector. Replaces the seminar's FittedAttributeVector<W>
// template with the closed {W8, W16, W32} tagged variant the redesign
// notes call for.
type Width int

const (
	Width8  Width = 1
	Width16 Width = 2
	Width32 Width = 4
)

// WidthForCount picks the narrowest width that can address a dictionary of
// n unique values while still leaving its own all-ones value free for
// INVALID_VALUE_ID: n < 2^8 fits in one byte, n < 2^16 in two, otherwise
// four. The cutoffs are strict so the all-ones code of each width never
// collides with a real dictionary index.
func WidthForCount(n int) Width {
	switch {
	case n < 1<<8:
		return Width8
	case n < 1<<16:
		return Width16
	default:
		return Width32
	}
}

// AttributeVector is a fixed-length array of dictionary indices, stored at
// one of three widths. Every element is either a valid ValueID or the
// width-specific INVALID_VALUE_ID sentinel (the all-ones value of that
// width).
type AttributeVector struct {
	width Width
	w8    []uint8
	w16   []uint16
	w32   []uint32
}

// NewAttributeVector allocates a vector of length n at the given width,
// filled with that width's INVALID_VALUE_ID sentinel.
func NewAttributeVector(n int, width Width) *AttributeVector {
	av := &AttributeVector{width: width}
	switch width {
	case Width8:
		av.w8 = make([]uint8, n)
		for i := range av.w8 {
			av.w8[i] = math.MaxUint8
		}
	case Width16:
		av.w16 = make([]uint16, n)
		for i := range av.w16 {
			av.w16[i] = math.MaxUint16
		}
	default:
		av.w32 = make([]uint32, n)
		for i := range av.w32 {
			av.w32[i] = math.MaxUint32
		}
	}
	return av
}

func (a *AttributeVector) Width() Width { return a.width }

func (a *AttributeVector) Size() int {
	switch a.width {
	case Width8:
		return len(a.w8)
	case Width16:
		return len(a.w16)
	default:
		return len(a.w32)
	}
}

// Get returns the dictionary index at row i, widened to 32 bits.
func (a *AttributeVector) Get(i int) (uint32, error) {
	if i < 0 || i >= a.Size() {
		return 0, kernelerr.NewOutOfRange("attribute vector index %d out of range [0, %d)", i, a.Size())
	}
	switch a.width {
	case Width8:
		return uint32(a.w8[i]), nil
	case Width16:
		return uint32(a.w16[i]), nil
	default:
		return a.w32[i], nil
	}
}

// Set stores a ValueID at row i, failing OutOfRange if id exceeds what
// this vector's width can represent, or if i is out of bounds.
func (a *AttributeVector) Set(i int, id uint32) error {
	if i < 0 || i >= a.Size() {
		return kernelerr.NewOutOfRange("attribute vector index %d out of range [0, %d)", i, a.Size())
	}
	switch a.width {
	case Width8:
		if id > math.MaxUint8 {
			return kernelerr.NewOutOfRange("value id %d does not fit in a %d-bit attribute vector", id, 8*int(a.width))
		}
		a.w8[i] = uint8(id)
	case Width16:
		if id > math.MaxUint16 {
			return kernelerr.NewOutOfRange("value id %d does not fit in a %d-bit attribute vector", id, 8*int(a.width))
		}
		a.w16[i] = uint16(id)
	default:
		a.w32[i] = id
	}
	return nil
}

// invalidValueIDForWidth returns the all-ones sentinel of the given width,
// widened to ids.ValueID. Exposed for tests pinning down that the sentinel
// is always the all-ones value of the code's own width, not a fixed
// constant across widths.
func invalidValueIDForWidth(w Width) ids.ValueID {
	switch w {
	case Width8:
		return ids.ValueID(uint8(math.MaxUint8))
	case Width16:
		return ids.ValueID(uint16(math.MaxUint16))
	default:
		return ids.ValueID(uint32(math.MaxUint32))
	}
}
