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

// Package registry implements the external table-name registry GetTable
// resolves against: concurrent reads, rare writes, guarded by a single
// RWMutex. Its internal policy is intentionally out of scope for the
// storage kernel proper; this is the minimal collaborator operator.GetTable
// needs.
package registry

import (
	"sort"
	"sync"

	"github.com/phnm/DYOD-WS1819/kernelerr"
	"github.com/phnm/DYOD-WS1819/table"
)

// Registry maps table names to *table.Table instances.
type Registry struct {
	mu     sync.RWMutex
	tables map[string]*table.Table
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{tables: make(map[string]*table.Table)}
}

// AddTable registers t under name. Fails DuplicateName if the name is
// already taken.
func (r *Registry) AddTable(name string, t *table.Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tables[name]; exists {
		return kernelerr.NewDuplicateName("table %q already registered", name)
	}
	r.tables[name] = t
	return nil
}

// DropTable removes name from the registry. Fails NotFound if absent.
func (r *Registry) DropTable(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tables[name]; !exists {
		return kernelerr.NewNotFound("no table named %q", name)
	}
	delete(r.tables, name)
	return nil
}

// GetTable resolves name to its table. Fails NotFound if absent.
func (r *Registry) GetTable(name string) (*table.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, exists := r.tables[name]
	if !exists {
		return nil, kernelerr.NewNotFound("no table named %q", name)
	}
	return t, nil
}

// HasTable reports whether name is registered.
func (r *Registry) HasTable(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.tables[name]
	return exists
}

// TableNames returns every registered name, sorted.
func (r *Registry) TableNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset drops every registered table.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables = make(map[string]*table.Table)
}
