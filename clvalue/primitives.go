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
	"encoding/binary"
	"encoding/hex"
	"strconv"

	"github.com/davidatwhiletrue/casper-js-sdk-sub001/cltype"
)

// Bool encodes as a single 0x00/0x01 byte
type Bool bool

func NewCLBool(val bool) Bool {
	return Bool(val)
}

func (b Bool) Type() cltype.CLType {
	return cltype.Bool
}

func (b Bool) Bytes() []byte {
	if b {
		return []byte{1}
	}
	return []byte{0}
}

func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}

func (b Bool) parsed() any {
	return bool(b)
}

// Int32 encodes as 4 little-endian bytes
type Int32 int32

func NewCLInt32(val int32) Int32 {
	return Int32(val)
}

func (i Int32) Type() cltype.CLType {
	return cltype.Int32
}

func (i Int32) Bytes() []byte {
	ret := make([]byte, 4)
	binary.LittleEndian.PutUint32(ret, uint32(i))
	return ret
}

func (i Int32) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (i Int32) parsed() any {
	return int32(i)
}

// Int64 encodes as 8 little-endian bytes
type Int64 int64

func NewCLInt64(val int64) Int64 {
	return Int64(val)
}

func (i Int64) Type() cltype.CLType {
	return cltype.Int64
}

func (i Int64) Bytes() []byte {
	ret := make([]byte, 8)
	binary.LittleEndian.PutUint64(ret, uint64(i))
	return ret
}

func (i Int64) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (i Int64) parsed() any {
	return int64(i)
}

// UInt8 encodes as a single byte
type UInt8 uint8

func NewCLUInt8(val uint8) UInt8 {
	return UInt8(val)
}

func (u UInt8) Type() cltype.CLType {
	return cltype.UInt8
}

func (u UInt8) Bytes() []byte {
	return []byte{byte(u)}
}

func (u UInt8) String() string {
	return strconv.FormatUint(uint64(u), 10)
}

func (u UInt8) parsed() any {
	return uint8(u)
}

// UInt32 encodes as 4 little-endian bytes
type UInt32 uint32

func NewCLUInt32(val uint32) UInt32 {
	return UInt32(val)
}

func (u UInt32) Type() cltype.CLType {
	return cltype.UInt32
}

func (u UInt32) Bytes() []byte {
	return putU32(uint32(u))
}

func (u UInt32) String() string {
	return strconv.FormatUint(uint64(u), 10)
}

func (u UInt32) parsed() any {
	return uint32(u)
}

// UInt64 encodes as 8 little-endian bytes
type UInt64 uint64

func NewCLUInt64(val uint64) UInt64 {
	return UInt64(val)
}

func (u UInt64) Type() cltype.CLType {
	return cltype.UInt64
}

func (u UInt64) Bytes() []byte {
	ret := make([]byte, 8)
	binary.LittleEndian.PutUint64(ret, uint64(u))
	return ret
}

func (u UInt64) String() string {
	return strconv.FormatUint(uint64(u), 10)
}

func (u UInt64) parsed() any {
	return uint64(u)
}

// String encodes as a 4-byte little-endian UTF-8 byte-length prefix
// followed by the UTF-8 bytes
type String string

func NewCLString(val string) String {
	return String(val)
}

func (s String) Type() cltype.CLType {
	return cltype.String
}

func (s String) Bytes() []byte {
	ret := putU32(uint32(len(s)))
	return append(ret, []byte(s)...)
}

func (s String) String() string {
	return string(s)
}

func (s String) parsed() any {
	return string(s)
}

// Unit encodes as zero bytes
type Unit struct{}

func NewCLUnit() Unit {
	return Unit{}
}

func (Unit) Type() cltype.CLType {
	return cltype.Unit
}

func (Unit) Bytes() []byte {
	return []byte{}
}

func (Unit) String() string {
	return ""
}

func (Unit) parsed() any {
	return nil
}

// ByteArray encodes as exactly its bytes, with no prefix. The length lives
// in the type descriptor
type ByteArray []byte

func NewCLByteArray(val []byte) ByteArray {
	ret := make(ByteArray, len(val))
	copy(ret, val)
	return ret
}

func (b ByteArray) Type() cltype.CLType {
	return cltype.NewByteArray(uint32(len(b)))
}

func (b ByteArray) Bytes() []byte {
	ret := make([]byte, len(b))
	copy(ret, b)
	return ret
}

func (b ByteArray) String() string {
	return hex.EncodeToString(b)
}

func (b ByteArray) parsed() any {
	return hex.EncodeToString(b)
}
