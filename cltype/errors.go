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

package cltype

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is
var (
	ErrUnknownTypeTag  = errors.New("unknown CL type tag")
	ErrTruncatedInput  = errors.New("input truncated")
	ErrInvalidTypeJSON = errors.New("invalid CL type JSON")
)

// UnknownTypeTagError indicates an unrecognized tag byte in a CLType
// binary encoding
type UnknownTypeTagError struct {
	Tag byte
}

func NewUnknownTypeTagError(tag byte) UnknownTypeTagError {
	return UnknownTypeTagError{Tag: tag}
}

func (e UnknownTypeTagError) Error() string {
	return fmt.Sprintf("unknown CL type tag %d", e.Tag)
}

func (UnknownTypeTagError) Is(target error) bool {
	return target == ErrUnknownTypeTag
}

// TruncatedInputError indicates fewer bytes remaining than a fixed-width or
// length-prefixed field requires
type TruncatedInputError struct {
	Field    string
	Expected int
	Actual   int
}

func NewTruncatedInputError(
	field string,
	expected int,
	actual int,
) TruncatedInputError {
	return TruncatedInputError{
		Field:    field,
		Expected: expected,
		Actual:   actual,
	}
}

func (e TruncatedInputError) Error() string {
	return fmt.Sprintf(
		"truncated input reading %s: need %d bytes, have %d",
		e.Field,
		e.Expected,
		e.Actual,
	)
}

func (TruncatedInputError) Is(target error) bool {
	return target == ErrTruncatedInput
}

// InvalidTypeJSONError indicates JSON that doesn't match the CLType grammar
// of a bare string for simple types or a single-key object for composites
type InvalidTypeJSONError struct {
	Reason string
}

func (e InvalidTypeJSONError) Error() string {
	return "invalid CL type JSON: " + e.Reason
}

func (InvalidTypeJSONError) Is(target error) bool {
	return target == ErrInvalidTypeJSON
}
