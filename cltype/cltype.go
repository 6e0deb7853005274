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
	"encoding/json"
)

// TypeID is the single tag byte identifying a CLType variant in the binary
// format
type TypeID uint8

const (
	TypeIDBool      TypeID = 0
	TypeIDI32       TypeID = 1
	TypeIDI64       TypeID = 2
	TypeIDU8        TypeID = 3
	TypeIDU32       TypeID = 4
	TypeIDU64       TypeID = 5
	TypeIDU128      TypeID = 6
	TypeIDU256      TypeID = 7
	TypeIDU512      TypeID = 8
	TypeIDUnit      TypeID = 9
	TypeIDString    TypeID = 10
	TypeIDKey       TypeID = 11
	TypeIDURef      TypeID = 12
	TypeIDOption    TypeID = 13
	TypeIDList      TypeID = 14
	TypeIDByteArray TypeID = 15
	TypeIDResult    TypeID = 16
	TypeIDMap       TypeID = 17
	TypeIDTuple1    TypeID = 18
	TypeIDTuple2    TypeID = 19
	TypeIDTuple3    TypeID = 20
	TypeIDAny       TypeID = 21
	TypeIDPublicKey TypeID = 22
)

// CLType describes the shape of a CLValue. Composite types exclusively own
// their child CLType nodes, and the tree never contains cycles
type CLType interface {
	json.Marshaler
	// Bytes returns the binary encoding of the type descriptor itself
	Bytes() []byte
	TypeID() TypeID
	String() string
	// Equal reports structural equality: same tag and recursively equal
	// children
	Equal(other CLType) bool
}

// SimpleType is a CLType without children. The package-level singletons
// below are the only instances
type SimpleType struct {
	id   TypeID
	name string
}

var (
	Bool      = SimpleType{id: TypeIDBool, name: "Bool"}
	Int32     = SimpleType{id: TypeIDI32, name: "I32"}
	Int64     = SimpleType{id: TypeIDI64, name: "I64"}
	UInt8     = SimpleType{id: TypeIDU8, name: "U8"}
	UInt32    = SimpleType{id: TypeIDU32, name: "U32"}
	UInt64    = SimpleType{id: TypeIDU64, name: "U64"}
	UInt128   = SimpleType{id: TypeIDU128, name: "U128"}
	UInt256   = SimpleType{id: TypeIDU256, name: "U256"}
	UInt512   = SimpleType{id: TypeIDU512, name: "U512"}
	Unit      = SimpleType{id: TypeIDUnit, name: "Unit"}
	String    = SimpleType{id: TypeIDString, name: "String"}
	Key       = SimpleType{id: TypeIDKey, name: "Key"}
	URef      = SimpleType{id: TypeIDURef, name: "URef"}
	Any       = SimpleType{id: TypeIDAny, name: "Any"}
	PublicKey = SimpleType{id: TypeIDPublicKey, name: "PublicKey"}
)

var simpleTypesByName = map[string]SimpleType{
	Bool.name:      Bool,
	Int32.name:     Int32,
	Int64.name:     Int64,
	UInt8.name:     UInt8,
	UInt32.name:    UInt32,
	UInt64.name:    UInt64,
	UInt128.name:   UInt128,
	UInt256.name:   UInt256,
	UInt512.name:   UInt512,
	Unit.name:      Unit,
	String.name:    String,
	Key.name:       Key,
	URef.name:      URef,
	Any.name:       Any,
	PublicKey.name: PublicKey,
}

var simpleTypesByID = map[TypeID]SimpleType{
	TypeIDBool:      Bool,
	TypeIDI32:       Int32,
	TypeIDI64:       Int64,
	TypeIDU8:        UInt8,
	TypeIDU32:       UInt32,
	TypeIDU64:       UInt64,
	TypeIDU128:      UInt128,
	TypeIDU256:      UInt256,
	TypeIDU512:      UInt512,
	TypeIDUnit:      Unit,
	TypeIDString:    String,
	TypeIDKey:       Key,
	TypeIDURef:      URef,
	TypeIDAny:       Any,
	TypeIDPublicKey: PublicKey,
}

func (t SimpleType) Bytes() []byte {
	return []byte{byte(t.id)}
}

func (t SimpleType) TypeID() TypeID {
	return t.id
}

func (t SimpleType) String() string {
	return t.name
}

func (t SimpleType) Equal(other CLType) bool {
	o, ok := other.(SimpleType)
	return ok && o.id == t.id
}

func (t SimpleType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.name)
}
