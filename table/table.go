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

// Package table implements Table: a schema, an ordered list of chunks, a
// chunk-size policy, and the per-chunk at-most-once compression operation.
package table

import (
	"math"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/phnm/DYOD-WS1819/chunk"
	"github.com/phnm/DYOD-WS1819/colval"
	"github.com/phnm/DYOD-WS1819/ids"
	"github.com/phnm/DYOD-WS1819/kernelerr"
	"github.com/phnm/DYOD-WS1819/kernellog"
	"github.com/phnm/DYOD-WS1819/segment"
)

// DefaultChunkSize mirrors the seminar's "max representable ChunkOffset −
// 1": chunks never grow to the point that ChunkOffset could overflow.
const DefaultChunkSize = math.MaxUint32 - 1

// Table is a schema plus an ordered, append-only list of chunks. Only the
// last chunk is ever mutable: Append freezes the old tail when it starts a
// new chunk, and CompressChunk turns one given earlier chunk into
// dictionary-encoded form.
type Table struct {
	id uuid.UUID

	mu       sync.Mutex // guards schema and chunks slice structure, not chunk contents
	names    []string
	types    []colval.DataType
	byName   map[string]ids.ColumnID
	chunks   []*chunk.Chunk
	onces    []*sync.Once
	compress []bool

	chunkSize int
}

// New returns a table with an empty schema and a single empty chunk
// installed, using chunkSize as the per-chunk row cap.
func New(chunkSize int) *Table {
	t := &Table{
		id:        uuid.New(),
		byName:    make(map[string]ids.ColumnID),
		chunkSize: chunkSize,
	}
	t.chunks = append(t.chunks, chunk.New())
	t.onces = append(t.onces, &sync.Once{})
	t.compress = append(t.compress, false)
	return t
}

// NewDefault returns New(DefaultChunkSize).
func NewDefault() *Table {
	return New(DefaultChunkSize)
}

// ID returns the table's stable identity, assigned at construction.
func (t *Table) ID() uuid.UUID { return t.id }

func newValueSegment(dt colval.DataType) (segment.Appendable, error) {
	switch dt {
	case colval.Int:
		return segment.NewValueSegment[int32](dt), nil
	case colval.Float:
		return segment.NewValueSegment[float32](dt), nil
	case colval.Double:
		return segment.NewValueSegment[float64](dt), nil
	case colval.String:
		return segment.NewValueSegment[string](dt), nil
	case colval.Decimal:
		return segment.NewValueSegment[decimal.Decimal](dt), nil
	default:
		return nil, kernelerr.NewTypeMismatch("unsupported column type %s", dt)
	}
}

// AddColumn appends a new column to the schema and an empty value segment
// of the matching type to every existing chunk, including the mutable
// tail. Fails DuplicateName if name is already taken.
func (t *Table) AddColumn(name string, dt colval.DataType) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.byName[name]; exists {
		return kernelerr.NewDuplicateName("column %q already exists", name)
	}

	for _, c := range t.chunks {
		s, err := newValueSegment(dt)
		if err != nil {
			return err
		}
		if err := c.AddSegment(s); err != nil {
			return err
		}
	}

	id := ids.ColumnID(len(t.names))
	t.names = append(t.names, name)
	t.types = append(t.types, dt)
	t.byName[name] = id
	return nil
}

// Append adds one row, routing into the mutable tail chunk and rolling
// over to a fresh chunk (freezing the old tail) once it reaches chunkSize.
func (t *Table) Append(row []colval.Variant) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	tail := t.chunks[len(t.chunks)-1]
	if tail.Size() >= t.chunkSize {
		fresh := chunk.New()
		for _, dt := range t.types {
			s, err := newValueSegment(dt)
			if err != nil {
				return err
			}
			if err := fresh.AddSegment(s); err != nil {
				return err
			}
		}
		tail.Freeze()
		t.chunks = append(t.chunks, fresh)
		t.onces = append(t.onces, &sync.Once{})
		t.compress = append(t.compress, false)
		tail = fresh
	}
	return tail.Append(row)
}

// CompressChunk dictionary-compresses the chunk at chunkID, exactly once.
// chunkID must name a sealed chunk (chunk_id < chunk_count − 1); the tail
// chunk is always mutable and may never be compressed. Concurrent calls
// for the same chunkID observe the operation run exactly once; all but the
// first return once the first's build has published.
func (t *Table) CompressChunk(chunkID ids.ChunkID) error {
	t.mu.Lock()
	if int(chunkID) >= len(t.chunks)-1 {
		t.mu.Unlock()
		return kernelerr.NewPrecondition("chunk %d is the mutable tail chunk and cannot be compressed", chunkID)
	}
	once := t.onces[chunkID]
	t.mu.Unlock()

	var buildErr error
	once.Do(func() {
		kernellog.Debug("compress_chunk start", kernellog.Fields{"table": t.id.String(), "chunk": chunkID})

		t.mu.Lock()
		src := t.chunks[chunkID]
		t.mu.Unlock()

		fresh := chunk.New()
		for col := 0; col < src.ColumnCount(); col++ {
			s, err := src.GetSegment(ids.ColumnID(col))
			if err != nil {
				buildErr = err
				return
			}
			compressed, err := segment.Compress(s)
			if err != nil {
				buildErr = err
				return
			}
			if err := fresh.AddSegment(compressed); err != nil {
				buildErr = err
				return
			}
		}
		fresh.Freeze()

		t.mu.Lock()
		t.chunks[chunkID] = fresh
		t.compress[chunkID] = true
		t.mu.Unlock()

		kernellog.Debug("compress_chunk done", kernellog.Fields{"table": t.id.String(), "chunk": chunkID})
	})
	return buildErr
}

// EmplaceChunk installs c as a chunk of the table. If the table currently
// holds exactly one empty chunk, c replaces it; otherwise c is appended.
func (t *Table) EmplaceChunk(c *chunk.Chunk) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.chunks) == 1 && t.chunks[0].Size() == 0 {
		t.chunks[0] = c
		return
	}
	t.chunks = append(t.chunks, c)
	t.onces = append(t.onces, &sync.Once{})
	t.compress = append(t.compress, false)
}

func (t *Table) ColumnCount() int { return len(t.names) }

func (t *Table) ChunkCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.chunks)
}

func (t *Table) RowCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	total := 0
	for _, c := range t.chunks {
		total += c.Size()
	}
	return total
}

func (t *Table) ColumnName(id ids.ColumnID) (string, error) {
	if int(id) >= len(t.names) {
		return "", kernelerr.NewOutOfRange("column id %d out of range [0, %d)", id, len(t.names))
	}
	return t.names[id], nil
}

func (t *Table) ColumnType(id ids.ColumnID) (colval.DataType, error) {
	if int(id) >= len(t.types) {
		return 0, kernelerr.NewOutOfRange("column id %d out of range [0, %d)", id, len(t.types))
	}
	return t.types[id], nil
}

func (t *Table) ColumnIDByName(name string) (ids.ColumnID, error) {
	id, ok := t.byName[name]
	if !ok {
		return 0, kernelerr.NewNotFound("no column named %q", name)
	}
	return id, nil
}

func (t *Table) ColumnNames() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

func (t *Table) ChunkSize() int { return t.chunkSize }

// GetChunk returns the chunk at the given id.
func (t *Table) GetChunk(id ids.ChunkID) (*chunk.Chunk, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if int(id) >= len(t.chunks) {
		return nil, kernelerr.NewOutOfRange("chunk id %d out of range [0, %d)", id, len(t.chunks))
	}
	return t.chunks[id], nil
}

// ChunkSegment implements segment.TableHandle, the minimal surface
// reference segments need from their origin table.
func (t *Table) ChunkSegment(chunkID ids.ChunkID, col ids.ColumnID) (segment.Segment, error) {
	c, err := t.GetChunk(chunkID)
	if err != nil {
		return nil, err
	}
	return c.GetSegment(col)
}

var _ segment.TableHandle = (*Table)(nil)
