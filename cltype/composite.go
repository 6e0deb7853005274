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
	"encoding/binary"
	"encoding/json"
	"fmt"
)

// ByteArray is a fixed-size byte array type. The size lives in the type
// descriptor, not the value bytes
type ByteArray struct {
	Size uint32
}

func NewByteArray(size uint32) *ByteArray {
	return &ByteArray{Size: size}
}

func (t *ByteArray) Bytes() []byte {
	ret := make([]byte, 5)
	ret[0] = byte(TypeIDByteArray)
	binary.LittleEndian.PutUint32(ret[1:], t.Size)
	return ret
}

func (t *ByteArray) TypeID() TypeID {
	return TypeIDByteArray
}

func (t *ByteArray) String() string {
	return fmt.Sprintf("ByteArray (%d)", t.Size)
}

func (t *ByteArray) Equal(other CLType) bool {
	o, ok := other.(*ByteArray)
	return ok && o.Size == t.Size
}

func (t *ByteArray) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]uint32{"ByteArray": t.Size})
}

// Option wraps an inner type whose values may be absent
type Option struct {
	Inner CLType
}

func NewOption(inner CLType) *Option {
	return &Option{Inner: inner}
}

func (t *Option) Bytes() []byte {
	return append([]byte{byte(TypeIDOption)}, t.Inner.Bytes()...)
}

func (t *Option) TypeID() TypeID {
	return TypeIDOption
}

func (t *Option) String() string {
	return fmt.Sprintf("Option (%s)", t.Inner)
}

func (t *Option) Equal(other CLType) bool {
	o, ok := other.(*Option)
	return ok && o.Inner.Equal(t.Inner)
}

func (t *Option) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]CLType{"Option": t.Inner})
}

// List is a variable-length sequence of a single element type
type List struct {
	Elem CLType
}

func NewList(elem CLType) *List {
	return &List{Elem: elem}
}

func (t *List) Bytes() []byte {
	return append([]byte{byte(TypeIDList)}, t.Elem.Bytes()...)
}

func (t *List) TypeID() TypeID {
	return TypeIDList
}

func (t *List) String() string {
	return fmt.Sprintf("List (%s)", t.Elem)
}

func (t *List) Equal(other CLType) bool {
	o, ok := other.(*List)
	return ok && o.Elem.Equal(t.Elem)
}

func (t *List) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]CLType{"List": t.Elem})
}

// Map is an ordered collection of key/value pairs
type Map struct {
	Key CLType
	Val CLType
}

func NewMap(key CLType, val CLType) *Map {
	return &Map{Key: key, Val: val}
}

func (t *Map) Bytes() []byte {
	ret := []byte{byte(TypeIDMap)}
	ret = append(ret, t.Key.Bytes()...)
	ret = append(ret, t.Val.Bytes()...)
	return ret
}

func (t *Map) TypeID() TypeID {
	return TypeIDMap
}

func (t *Map) String() string {
	return fmt.Sprintf("Map (%s: %s)", t.Key, t.Val)
}

func (t *Map) Equal(other CLType) bool {
	o, ok := other.(*Map)
	return ok && o.Key.Equal(t.Key) && o.Val.Equal(t.Val)
}

func (t *Map) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]map[string]CLType{
		"Map": {
			"key":   t.Key,
			"value": t.Val,
		},
	})
}

// Tuple1 is a single-element tuple
type Tuple1 struct {
	Inner CLType
}

func NewTuple1(inner CLType) *Tuple1 {
	return &Tuple1{Inner: inner}
}

func (t *Tuple1) Bytes() []byte {
	return append([]byte{byte(TypeIDTuple1)}, t.Inner.Bytes()...)
}

func (t *Tuple1) TypeID() TypeID {
	return TypeIDTuple1
}

func (t *Tuple1) String() string {
	return fmt.Sprintf("Tuple1 (%s)", t.Inner)
}

func (t *Tuple1) Equal(other CLType) bool {
	o, ok := other.(*Tuple1)
	return ok && o.Inner.Equal(t.Inner)
}

func (t *Tuple1) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string][]CLType{"Tuple1": {t.Inner}})
}

// Tuple2 is a two-element tuple
type Tuple2 struct {
	Inner1 CLType
	Inner2 CLType
}

func NewTuple2(inner1 CLType, inner2 CLType) *Tuple2 {
	return &Tuple2{Inner1: inner1, Inner2: inner2}
}

func (t *Tuple2) Bytes() []byte {
	ret := []byte{byte(TypeIDTuple2)}
	ret = append(ret, t.Inner1.Bytes()...)
	ret = append(ret, t.Inner2.Bytes()...)
	return ret
}

func (t *Tuple2) TypeID() TypeID {
	return TypeIDTuple2
}

func (t *Tuple2) String() string {
	return fmt.Sprintf("Tuple2 (%s, %s)", t.Inner1, t.Inner2)
}

func (t *Tuple2) Equal(other CLType) bool {
	o, ok := other.(*Tuple2)
	return ok && o.Inner1.Equal(t.Inner1) && o.Inner2.Equal(t.Inner2)
}

func (t *Tuple2) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string][]CLType{"Tuple2": {t.Inner1, t.Inner2}})
}

// Tuple3 is a three-element tuple
type Tuple3 struct {
	Inner1 CLType
	Inner2 CLType
	Inner3 CLType
}

func NewTuple3(inner1 CLType, inner2 CLType, inner3 CLType) *Tuple3 {
	return &Tuple3{Inner1: inner1, Inner2: inner2, Inner3: inner3}
}

func (t *Tuple3) Bytes() []byte {
	ret := []byte{byte(TypeIDTuple3)}
	ret = append(ret, t.Inner1.Bytes()...)
	ret = append(ret, t.Inner2.Bytes()...)
	ret = append(ret, t.Inner3.Bytes()...)
	return ret
}

func (t *Tuple3) TypeID() TypeID {
	return TypeIDTuple3
}

func (t *Tuple3) String() string {
	return fmt.Sprintf(
		"Tuple3 (%s, %s, %s)",
		t.Inner1,
		t.Inner2,
		t.Inner3,
	)
}

func (t *Tuple3) Equal(other CLType) bool {
	o, ok := other.(*Tuple3)
	return ok && o.Inner1.Equal(t.Inner1) && o.Inner2.Equal(t.Inner2) &&
		o.Inner3.Equal(t.Inner3)
}

func (t *Tuple3) MarshalJSON() ([]byte, error) {
	return json.Marshal(
		map[string][]CLType{"Tuple3": {t.Inner1, t.Inner2, t.Inner3}},
	)
}

// Result holds an ok branch type and an err branch type
type Result struct {
	Ok  CLType
	Err CLType
}

func NewResult(ok CLType, err CLType) *Result {
	return &Result{Ok: ok, Err: err}
}

func (t *Result) Bytes() []byte {
	ret := []byte{byte(TypeIDResult)}
	ret = append(ret, t.Ok.Bytes()...)
	ret = append(ret, t.Err.Bytes()...)
	return ret
}

func (t *Result) TypeID() TypeID {
	return TypeIDResult
}

func (t *Result) String() string {
	return fmt.Sprintf("Result (ok: %s, err: %s)", t.Ok, t.Err)
}

func (t *Result) Equal(other CLType) bool {
	o, ok := other.(*Result)
	return ok && o.Ok.Equal(t.Ok) && o.Err.Equal(t.Err)
}

func (t *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]map[string]CLType{
		"Result": {
			"ok":  t.Ok,
			"err": t.Err,
		},
	})
}

// Dynamic stands in for a value whose declared type is Any but whose
// concrete shape is known from context, such as an entry-point argument
// schema resolved from a contract's stored metadata. Decoding is driven
// entirely by the Inner type; the declared id is kept so the value can be
// re-encoded under its original declaration
type Dynamic struct {
	ID    TypeID
	Inner CLType
}

func NewDynamic(id TypeID, inner CLType) *Dynamic {
	return &Dynamic{ID: id, Inner: inner}
}

func (t *Dynamic) Bytes() []byte {
	return []byte{byte(t.ID)}
}

func (t *Dynamic) TypeID() TypeID {
	return t.ID
}

func (t *Dynamic) String() string {
	return fmt.Sprintf("Dynamic (%s)", t.Inner)
}

func (t *Dynamic) Equal(other CLType) bool {
	o, ok := other.(*Dynamic)
	return ok && o.ID == t.ID && o.Inner.Equal(t.Inner)
}

func (t *Dynamic) MarshalJSON() ([]byte, error) {
	if st, ok := simpleTypesByID[t.ID]; ok {
		return st.MarshalJSON()
	}
	return nil, NewUnknownTypeTagError(byte(t.ID))
}
