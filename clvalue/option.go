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
	"github.com/davidatwhiletrue/casper-js-sdk-sub001/cltype"
)

// Option is a possibly-absent value: one presence byte (0 = None,
// 1 = Some) followed by the inner value's bytes when present
type Option struct {
	inner cltype.CLType
	value CLValue
}

// NewCLOptionSome wraps a present value
func NewCLOptionSome(val CLValue) *Option {
	return &Option{
		inner: val.Type(),
		value: val,
	}
}

// NewCLOptionNone builds an absent value of the given inner type
func NewCLOptionNone(inner cltype.CLType) *Option {
	return &Option{inner: inner}
}

func (o *Option) IsEmpty() bool {
	return o.value == nil
}

// Value returns the inner value, or nil when absent
func (o *Option) Value() CLValue {
	return o.value
}

func (o *Option) Type() cltype.CLType {
	return cltype.NewOption(o.inner)
}

func (o *Option) Bytes() []byte {
	if o.value == nil {
		return []byte{0}
	}
	return append([]byte{1}, o.value.Bytes()...)
}

func (o *Option) String() string {
	if o.value == nil {
		return ""
	}
	return o.value.String()
}

func (o *Option) parsed() any {
	if o.value == nil {
		return nil
	}
	return o.value.parsed()
}
