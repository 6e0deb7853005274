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
	"strings"

	"github.com/davidatwhiletrue/casper-js-sdk-sub001/cltype"
)

// List is a homogeneous sequence: a 4-byte little-endian element count
// followed by the concatenated element bytes. The builder methods are
// single-writer; once the list has been shared or serialized it must be
// treated as frozen
type List struct {
	elemType cltype.CLType
	items    []CLValue
}

func NewCLList(elemType cltype.CLType) *List {
	return &List{elemType: elemType}
}

// ElemType returns the declared element type
func (l *List) ElemType() cltype.CLType {
	return l.elemType
}

func (l *List) Len() int {
	return len(l.items)
}

// Append adds a value, which must match the declared element type
func (l *List) Append(val CLValue) error {
	if !val.Type().Equal(l.elemType) {
		return TypeMismatchError{
			Expected: l.elemType.String(),
			Actual:   val.Type().String(),
		}
	}
	l.items = append(l.items, val)
	return nil
}

// Get returns the element at idx
func (l *List) Get(idx int) (CLValue, error) {
	if idx < 0 || idx >= len(l.items) {
		return nil, IndexOutOfBoundsError{Index: idx, Size: len(l.items)}
	}
	return l.items[idx], nil
}

// Set replaces the element at idx, which must match the element type
func (l *List) Set(idx int, val CLValue) error {
	if idx < 0 || idx >= len(l.items) {
		return IndexOutOfBoundsError{Index: idx, Size: len(l.items)}
	}
	if !val.Type().Equal(l.elemType) {
		return TypeMismatchError{
			Expected: l.elemType.String(),
			Actual:   val.Type().String(),
		}
	}
	l.items[idx] = val
	return nil
}

// Remove deletes the element at idx
func (l *List) Remove(idx int) error {
	if idx < 0 || idx >= len(l.items) {
		return IndexOutOfBoundsError{Index: idx, Size: len(l.items)}
	}
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	return nil
}

// Elements returns the elements in order. The returned slice is shared
// with the list and must not be modified
func (l *List) Elements() []CLValue {
	return l.items
}

func (l *List) Type() cltype.CLType {
	return cltype.NewList(l.elemType)
}

func (l *List) Bytes() []byte {
	ret := putU32(uint32(len(l.items)))
	for _, item := range l.items {
		ret = append(ret, item.Bytes()...)
	}
	return ret
}

func (l *List) String() string {
	elems := make([]string, 0, len(l.items))
	for _, item := range l.items {
		elems = append(elems, item.String())
	}
	return "[" + strings.Join(elems, ",") + "]"
}

func (l *List) parsed() any {
	ret := make([]any, 0, len(l.items))
	for _, item := range l.items {
		ret = append(ret, item.parsed())
	}
	return ret
}
