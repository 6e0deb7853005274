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
	"fmt"

	"github.com/davidatwhiletrue/casper-js-sdk-sub001/cltype"
)

// Tuples encode as the concatenation of their element bytes in declared
// order, with no length prefix. The arity is static from the type.

// Tuple1 is a single-element tuple
type Tuple1 struct {
	inner CLValue
}

func NewCLTuple1(val CLValue) *Tuple1 {
	return &Tuple1{inner: val}
}

func (t *Tuple1) Value() CLValue {
	return t.inner
}

func (t *Tuple1) Type() cltype.CLType {
	return cltype.NewTuple1(t.inner.Type())
}

func (t *Tuple1) Bytes() []byte {
	return t.inner.Bytes()
}

func (t *Tuple1) String() string {
	return fmt.Sprintf("(%s)", t.inner)
}

func (t *Tuple1) parsed() any {
	return []any{t.inner.parsed()}
}

// Tuple2 is a two-element tuple
type Tuple2 struct {
	inner1 CLValue
	inner2 CLValue
}

func NewCLTuple2(val1 CLValue, val2 CLValue) *Tuple2 {
	return &Tuple2{inner1: val1, inner2: val2}
}

func (t *Tuple2) Value1() CLValue {
	return t.inner1
}

func (t *Tuple2) Value2() CLValue {
	return t.inner2
}

func (t *Tuple2) Type() cltype.CLType {
	return cltype.NewTuple2(t.inner1.Type(), t.inner2.Type())
}

func (t *Tuple2) Bytes() []byte {
	return append(t.inner1.Bytes(), t.inner2.Bytes()...)
}

func (t *Tuple2) String() string {
	return fmt.Sprintf("(%s, %s)", t.inner1, t.inner2)
}

func (t *Tuple2) parsed() any {
	return []any{t.inner1.parsed(), t.inner2.parsed()}
}

// Tuple3 is a three-element tuple
type Tuple3 struct {
	inner1 CLValue
	inner2 CLValue
	inner3 CLValue
}

func NewCLTuple3(val1 CLValue, val2 CLValue, val3 CLValue) *Tuple3 {
	return &Tuple3{inner1: val1, inner2: val2, inner3: val3}
}

func (t *Tuple3) Value1() CLValue {
	return t.inner1
}

func (t *Tuple3) Value2() CLValue {
	return t.inner2
}

func (t *Tuple3) Value3() CLValue {
	return t.inner3
}

func (t *Tuple3) Type() cltype.CLType {
	return cltype.NewTuple3(
		t.inner1.Type(),
		t.inner2.Type(),
		t.inner3.Type(),
	)
}

func (t *Tuple3) Bytes() []byte {
	ret := append(t.inner1.Bytes(), t.inner2.Bytes()...)
	return append(ret, t.inner3.Bytes()...)
}

func (t *Tuple3) String() string {
	return fmt.Sprintf("(%s, %s, %s)", t.inner1, t.inner2, t.inner3)
}

func (t *Tuple3) parsed() any {
	return []any{
		t.inner1.parsed(),
		t.inner2.parsed(),
		t.inner3.parsed(),
	}
}
