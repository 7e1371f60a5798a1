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

// Package kernelerr implements the closed error-kind taxonomy of the
// storage kernel. Every failure in the kernel is fatal to the current
// operation and carries one of these six kinds; callers distinguish kinds
// with Is, not by matching on error strings.
package kernelerr

import "github.com/pkg/errors"

// Kind identifies one of the six fatal error categories the kernel raises.
type Kind int

const (
	TypeMismatch Kind = iota
	Immutable
	OutOfRange
	DuplicateName
	NotFound
	Precondition
)

func (k Kind) String() string {
	switch k {
	case TypeMismatch:
		return "type mismatch"
	case Immutable:
		return "immutable"
	case OutOfRange:
		return "out of range"
	case DuplicateName:
		return "duplicate name"
	case NotFound:
		return "not found"
	case Precondition:
		return "precondition violation"
	default:
		return "unknown error kind"
	}
}

// Sentinel errors, one per Kind, suitable for errors.Is comparisons.
var (
	ErrTypeMismatch  = errors.New("type mismatch")
	ErrImmutable     = errors.New("immutable")
	ErrOutOfRange    = errors.New("out of range")
	ErrDuplicateName = errors.New("duplicate name")
	ErrNotFound      = errors.New("not found")
	ErrPrecondition  = errors.New("precondition violation")
)

func sentinelFor(k Kind) error {
	switch k {
	case TypeMismatch:
		return ErrTypeMismatch
	case Immutable:
		return ErrImmutable
	case OutOfRange:
		return ErrOutOfRange
	case DuplicateName:
		return ErrDuplicateName
	case NotFound:
		return ErrNotFound
	case Precondition:
		return ErrPrecondition
	default:
		return errors.New(k.String())
	}
}

// New wraps the sentinel for k with a formatted call-site message.
func New(k Kind, format string, args ...interface{}) error {
	return errors.Wrapf(sentinelFor(k), format, args...)
}

func NewTypeMismatch(format string, args ...interface{}) error {
	return New(TypeMismatch, format, args...)
}

func NewImmutable(format string, args ...interface{}) error {
	return New(Immutable, format, args...)
}

func NewOutOfRange(format string, args ...interface{}) error {
	return New(OutOfRange, format, args...)
}

func NewDuplicateName(format string, args ...interface{}) error {
	return New(DuplicateName, format, args...)
}

func NewNotFound(format string, args ...interface{}) error {
	return New(NotFound, format, args...)
}

func NewPrecondition(format string, args ...interface{}) error {
	return New(Precondition, format, args...)
}

// Is reports whether err was produced for the given Kind.
func Is(err error, k Kind) bool {
	return errors.Is(err, sentinelFor(k))
}
