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

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phnm/DYOD-WS1819/kernelerr"
	"github.com/phnm/DYOD-WS1819/table"
)

func TestAddAndGetTable(t *testing.T) {
	r := New()
	tbl := table.NewDefault()
	require.NoError(t, r.AddTable("orders", tbl))

	got, err := r.GetTable("orders")
	require.NoError(t, err)
	assert.Same(t, tbl, got)
	assert.True(t, r.HasTable("orders"))
}

func TestAddTableRejectsDuplicate(t *testing.T) {
	r := New()
	require.NoError(t, r.AddTable("orders", table.NewDefault()))
	err := r.AddTable("orders", table.NewDefault())
	require.Error(t, err)
	assert.True(t, kernelerr.Is(err, kernelerr.DuplicateName))
}

func TestGetTableNotFound(t *testing.T) {
	r := New()
	_, err := r.GetTable("missing")
	require.Error(t, err)
	assert.True(t, kernelerr.Is(err, kernelerr.NotFound))
}

func TestDropTable(t *testing.T) {
	r := New()
	require.NoError(t, r.AddTable("orders", table.NewDefault()))
	require.NoError(t, r.DropTable("orders"))
	assert.False(t, r.HasTable("orders"))

	err := r.DropTable("orders")
	require.Error(t, err)
	assert.True(t, kernelerr.Is(err, kernelerr.NotFound))
}

func TestTableNamesSorted(t *testing.T) {
	r := New()
	require.NoError(t, r.AddTable("zeta", table.NewDefault()))
	require.NoError(t, r.AddTable("alpha", table.NewDefault()))
	assert.Equal(t, []string{"alpha", "zeta"}, r.TableNames())
}

func TestReset(t *testing.T) {
	r := New()
	require.NoError(t, r.AddTable("orders", table.NewDefault()))
	r.Reset()
	assert.Empty(t, r.TableNames())
}
