// Copyright 2026 The casper-sdk authors
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

package clvalue

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is
var (
	ErrTruncatedList      = errors.New("list truncated")
	ErrTypeMismatch       = errors.New("CL type mismatch")
	ErrInvalidBooleanByte = errors.New("invalid boolean byte")
	ErrOutOfRange         = errors.New("value out of range")
	ErrIndexOutOfBounds   = errors.New("index out of bounds")
	ErrDuplicateMapKey    = errors.New("duplicate map key")
)

// TruncatedListError indicates a list whose bytes ran out before the
// declared element count was reached
type TruncatedListError struct {
	Declared uint32
	Decoded  uint32
}

func (e TruncatedListError) Error() string {
	return fmt.Sprintf(
		"list truncated: declared %d elements, bytes ran out after %d",
		e.Declared,
		e.Decoded,
	)
}

func (TruncatedListError) Is(target error) bool {
	return target == ErrTruncatedList
}

// TypeMismatchError indicates a value whose shape doesn't match the
// supplied or embedded CLType
type TypeMismatchError struct {
	Expected string
	Actual   string
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf(
		"CL type mismatch: expected %s, got %s",
		e.Expected,
		e.Actual,
	)
}

func (TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// InvalidBooleanByteError indicates a boolean, option-presence or
// result-branch byte that wasn't 0 or 1
type InvalidBooleanByteError struct {
	Value byte
}

func (e InvalidBooleanByteError) Error() string {
	return fmt.Sprintf("invalid boolean byte %d", e.Value)
}

func (InvalidBooleanByteError) Is(target error) bool {
	return target == ErrInvalidBooleanByte
}

// OutOfRangeError indicates a big-integer length byte exceeding the
// type's maximum width, or a negative big integer
type OutOfRangeError struct {
	Kind   string
	Reason string
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("%s out of range: %s", e.Kind, e.Reason)
}

func (OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// IndexOutOfBoundsError indicates a container access with an invalid index
type IndexOutOfBoundsError struct {
	Index int
	Size  int
}

func (e IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("index %d out of bounds for size %d", e.Index, e.Size)
}

func (IndexOutOfBoundsError) Is(target error) bool {
	return target == ErrIndexOutOfBounds
}

// DuplicateMapKeyError indicates an attempt to add a key already present
// in a map, or duplicate keys in decoded map bytes
type DuplicateMapKeyError struct {
	Key string
}

func (e DuplicateMapKeyError) Error() string {
	return fmt.Sprintf("duplicate map key %q", e.Key)
}

func (DuplicateMapKeyError) Is(target error) bool {
	return target == ErrDuplicateMapKey
}
