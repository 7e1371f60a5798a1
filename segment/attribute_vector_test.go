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

	"github.com/phnm/DYOD-WS1819/kernelerr"
)

func TestWidthForCountBoundaries(t *testing.T) {
	assert.Equal(t, Width8, WidthForCount(0))
	assert.Equal(t, Width8, WidthForCount(255))
	assert.Equal(t, Width16, WidthForCount(256))
	assert.Equal(t, Width16, WidthForCount(65535))
	assert.Equal(t, Width32, WidthForCount(65536))
}

func TestAttributeVectorSentinelFill(t *testing.T) {
	av := NewAttributeVector(3, Width8)
	for i := 0; i < 3; i++ {
		got, err := av.Get(i)
		require.NoError(t, err)
		assert.Equal(t, uint32(invalidValueIDForWidth(Width8)), got)
	}
}

func TestAttributeVectorSetAndGet(t *testing.T) {
	av := NewAttributeVector(4, Width16)
	require.NoError(t, av.Set(2, 1000))

	got, err := av.Get(2)
	require.NoError(t, err)
	assert.Equal(t, uint32(1000), got)
}

func TestAttributeVectorSetOutOfWidthRange(t *testing.T) {
	av := NewAttributeVector(1, Width8)
	err := av.Set(0, 1000)
	require.Error(t, err)
	assert.True(t, kernelerr.Is(err, kernelerr.OutOfRange))
}

func TestAttributeVectorIndexOutOfRange(t *testing.T) {
	av := NewAttributeVector(1, Width8)
	_, err := av.Get(5)
	require.Error(t, err)
	assert.True(t, kernelerr.Is(err, kernelerr.OutOfRange))

	err = av.Set(-1, 0)
	require.Error(t, err)
	assert.True(t, kernelerr.Is(err, kernelerr.OutOfRange))
}
