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
	"errors"

	"github.com/davidatwhiletrue/casper-js-sdk-sub001/cltype"
	"github.com/davidatwhiletrue/casper-js-sdk-sub001/keys"
)

// Decoding is stateless recursive descent: each CLType variant has its own
// rule below and advances the byte cursor by a statically known or
// length-prefixed amount. Failures surface before any value is returned;
// there are no partial results.

// FromBytesByType decodes exactly one value of the given type from a prefix
// of data, returning the unconsumed remainder so callers can decode
// consecutive values without rescanning
func FromBytesByType(
	data []byte,
	t cltype.CLType,
) (CLValue, []byte, error) {
	switch t := t.(type) {
	case cltype.SimpleType:
		return simpleFromBytes(data, t)
	case *cltype.ByteArray:
		raw, rest, err := readBytes(data, int(t.Size), "ByteArray")
		if err != nil {
			return nil, nil, err
		}
		return NewCLByteArray(raw), rest, nil
	case *cltype.Option:
		return optionFromBytes(data, t)
	case *cltype.List:
		return listFromBytes(data, t)
	case *cltype.Map:
		return mapFromBytes(data, t)
	case *cltype.Tuple1:
		inner, rest, err := FromBytesByType(data, t.Inner)
		if err != nil {
			return nil, nil, err
		}
		return NewCLTuple1(inner), rest, nil
	case *cltype.Tuple2:
		inner1, rest, err := FromBytesByType(data, t.Inner1)
		if err != nil {
			return nil, nil, err
		}
		inner2, rest, err := FromBytesByType(rest, t.Inner2)
		if err != nil {
			return nil, nil, err
		}
		return NewCLTuple2(inner1, inner2), rest, nil
	case *cltype.Tuple3:
		inner1, rest, err := FromBytesByType(data, t.Inner1)
		if err != nil {
			return nil, nil, err
		}
		inner2, rest, err := FromBytesByType(rest, t.Inner2)
		if err != nil {
			return nil, nil, err
		}
		inner3, rest, err := FromBytesByType(rest, t.Inner3)
		if err != nil {
			return nil, nil, err
		}
		return NewCLTuple3(inner1, inner2, inner3), rest, nil
	case *cltype.Result:
		return resultFromBytes(data, t)
	case *cltype.Dynamic:
		// The declared type was Any; the fallback drives the decode
		return FromBytesByType(data, t.Inner)
	}
	return nil, nil, cltype.NewUnknownTypeTagError(byte(t.TypeID()))
}

// FromBytes decodes one value of the given type and requires the input to
// be fully consumed
func FromBytes(data []byte, t cltype.CLType) (CLValue, error) {
	val, remainder, err := FromBytesByType(data, t)
	if err != nil {
		return nil, err
	}
	if len(remainder) > 0 {
		return nil, TypeMismatchError{
			Expected: t.String(),
			Actual:   "value with trailing bytes",
		}
	}
	return val, nil
}

// FromBytesWithType decodes the self-describing form: the buffer begins
// with a CLType's own binary encoding immediately followed by that type's
// value bytes. The unconsumed remainder is returned
func FromBytesWithType(data []byte) (CLValue, []byte, error) {
	t, rest, err := cltype.FromBytes(data)
	if err != nil {
		return nil, nil, err
	}
	return FromBytesByType(rest, t)
}

func simpleFromBytes(
	data []byte,
	t cltype.SimpleType,
) (CLValue, []byte, error) {
	switch t.TypeID() {
	case cltype.TypeIDBool:
		raw, rest, err := readBytes(data, 1, "Bool")
		if err != nil {
			return nil, nil, err
		}
		if raw[0] > 1 {
			return nil, nil, InvalidBooleanByteError{Value: raw[0]}
		}
		return NewCLBool(raw[0] == 1), rest, nil
	case cltype.TypeIDI32:
		raw, rest, err := readBytes(data, 4, "I32")
		if err != nil {
			return nil, nil, err
		}
		return NewCLInt32(int32(binary.LittleEndian.Uint32(raw))), rest, nil
	case cltype.TypeIDI64:
		raw, rest, err := readBytes(data, 8, "I64")
		if err != nil {
			return nil, nil, err
		}
		return NewCLInt64(int64(binary.LittleEndian.Uint64(raw))), rest, nil
	case cltype.TypeIDU8:
		raw, rest, err := readBytes(data, 1, "U8")
		if err != nil {
			return nil, nil, err
		}
		return NewCLUInt8(raw[0]), rest, nil
	case cltype.TypeIDU32:
		raw, rest, err := readBytes(data, 4, "U32")
		if err != nil {
			return nil, nil, err
		}
		return NewCLUInt32(binary.LittleEndian.Uint32(raw)), rest, nil
	case cltype.TypeIDU64:
		raw, rest, err := readBytes(data, 8, "U64")
		if err != nil {
			return nil, nil, err
		}
		return NewCLUInt64(binary.LittleEndian.Uint64(raw)), rest, nil
	case cltype.TypeIDU128:
		val, rest, err := decodeBig(data, maxUInt128Bytes, "U128")
		if err != nil {
			return nil, nil, err
		}
		return UInt128{val: val}, rest, nil
	case cltype.TypeIDU256:
		val, rest, err := decodeBig(data, maxUInt256Bytes, "U256")
		if err != nil {
			return nil, nil, err
		}
		return UInt256{val: val}, rest, nil
	case cltype.TypeIDU512:
		val, rest, err := decodeBig(data, maxUInt512Bytes, "U512")
		if err != nil {
			return nil, nil, err
		}
		return UInt512{val: val}, rest, nil
	case cltype.TypeIDUnit:
		return NewCLUnit(), data, nil
	case cltype.TypeIDString:
		return stringFromBytes(data)
	case cltype.TypeIDKey:
		key, rest, err := keys.NewKeyFromBytes(data)
		if err != nil {
			return nil, nil, err
		}
		return NewCLKey(key), rest, nil
	case cltype.TypeIDURef:
		uref, rest, err := keys.NewURefFromBytes(data)
		if err != nil {
			return nil, nil, err
		}
		return NewCLURef(uref), rest, nil
	case cltype.TypeIDPublicKey:
		pub, rest, err := keys.NewPublicKeyFromBytes(data)
		if err != nil {
			return nil, nil, err
		}
		return NewCLPublicKey(pub), rest, nil
	case cltype.TypeIDAny:
		// Value bytes carry no type and no length; without context the
		// whole remainder belongs to the Any leaf
		return NewCLAny(data), []byte{}, nil
	}
	return nil, nil, cltype.NewUnknownTypeTagError(byte(t.TypeID()))
}

func stringFromBytes(data []byte) (CLValue, []byte, error) {
	strLen, rest, err := readU32(data, "String length")
	if err != nil {
		return nil, nil, err
	}
	raw, rest, err := readBytes(rest, int(strLen), "String")
	if err != nil {
		return nil, nil, err
	}
	return NewCLString(string(raw)), rest, nil
}

func optionFromBytes(
	data []byte,
	t *cltype.Option,
) (CLValue, []byte, error) {
	raw, rest, err := readBytes(data, 1, "Option presence byte")
	if err != nil {
		return nil, nil, err
	}
	switch raw[0] {
	case 0:
		return NewCLOptionNone(t.Inner), rest, nil
	case 1:
		inner, rest, err := FromBytesByType(rest, t.Inner)
		if err != nil {
			return nil, nil, err
		}
		return NewCLOptionSome(inner), rest, nil
	}
	return nil, nil, InvalidBooleanByteError{Value: raw[0]}
}

// minEncodedLen returns the smallest number of bytes a value of type t can
// occupy on the wire. Container decoders use it to reject declared element
// counts the remaining input provably cannot satisfy, keeping decode work
// bounded by input size
func minEncodedLen(t cltype.CLType) int {
	switch t := t.(type) {
	case cltype.SimpleType:
		switch t.TypeID() {
		case cltype.TypeIDBool, cltype.TypeIDU8:
			return 1
		case cltype.TypeIDI32, cltype.TypeIDU32:
			return 4
		case cltype.TypeIDI64, cltype.TypeIDU64:
			return 8
		// Big ints and strings are at least their length prefix
		case cltype.TypeIDU128, cltype.TypeIDU256, cltype.TypeIDU512:
			return 1
		case cltype.TypeIDString:
			return 4
		case cltype.TypeIDKey, cltype.TypeIDURef, cltype.TypeIDPublicKey:
			return 33
		}
		// Unit and Any can occupy zero bytes
		return 0
	case *cltype.ByteArray:
		return int(t.Size)
	case *cltype.Option:
		return 1
	case *cltype.Result:
		return 1
	case *cltype.List:
		return 4
	case *cltype.Map:
		return 4
	case *cltype.Tuple1:
		return minEncodedLen(t.Inner)
	case *cltype.Tuple2:
		return minEncodedLen(t.Inner1) + minEncodedLen(t.Inner2)
	case *cltype.Tuple3:
		return minEncodedLen(t.Inner1) +
			minEncodedLen(t.Inner2) +
			minEncodedLen(t.Inner3)
	case *cltype.Dynamic:
		return minEncodedLen(t.Inner)
	}
	return 0
}

func listFromBytes(data []byte, t *cltype.List) (CLValue, []byte, error) {
	count, rest, err := readU32(data, "List count")
	if err != nil {
		return nil, nil, err
	}
	// Zero-width element types get a one-byte floor so a four-byte buffer
	// cannot declare an enormous list of them
	elemWidth := minEncodedLen(t.Elem)
	if elemWidth == 0 {
		elemWidth = 1
	}
	// Division keeps the comparison overflow-safe for huge widths
	if uint64(count) > uint64(len(rest))/uint64(elemWidth) {
		return nil, nil, TruncatedListError{Declared: count, Decoded: 0}
	}
	ret := NewCLList(t.Elem)
	for i := uint32(0); i < count; i++ {
		var item CLValue
		item, rest, err = FromBytesByType(rest, t.Elem)
		if err != nil {
			if errors.Is(err, cltype.ErrTruncatedInput) {
				return nil, nil, TruncatedListError{
					Declared: count,
					Decoded:  i,
				}
			}
			return nil, nil, err
		}
		ret.items = append(ret.items, item)
	}
	return ret, rest, nil
}

func mapFromBytes(data []byte, t *cltype.Map) (CLValue, []byte, error) {
	count, rest, err := readU32(data, "Map count")
	if err != nil {
		return nil, nil, err
	}
	entryWidth := minEncodedLen(t.Key) + minEncodedLen(t.Val)
	if entryWidth == 0 {
		entryWidth = 1
	}
	if uint64(count) > uint64(len(rest))/uint64(entryWidth) {
		return nil, nil, cltype.NewTruncatedInputError(
			"Map entries",
			int(uint64(count)*uint64(entryWidth)),
			len(rest),
		)
	}
	ret := NewCLMap(t.Key, t.Val)
	for i := uint32(0); i < count; i++ {
		var key, val CLValue
		key, rest, err = FromBytesByType(rest, t.Key)
		if err != nil {
			return nil, nil, err
		}
		val, rest, err = FromBytesByType(rest, t.Val)
		if err != nil {
			return nil, nil, err
		}
		// Reject rather than silently overwrite so no entry from the
		// untrusted input is ever dropped
		rendered := key.String()
		if _, ok := ret.Get(rendered); ok {
			return nil, nil, DuplicateMapKeyError{Key: rendered}
		}
		ret.entries = append(ret.entries, MapEntry{Key: key, Value: val})
	}
	return ret, rest, nil
}

func resultFromBytes(
	data []byte,
	t *cltype.Result,
) (CLValue, []byte, error) {
	raw, rest, err := readBytes(data, 1, "Result branch byte")
	if err != nil {
		return nil, nil, err
	}
	switch raw[0] {
	case 0:
		val, rest, err := FromBytesByType(rest, t.Err)
		if err != nil {
			return nil, nil, err
		}
		return &Result{
			okType:  t.Ok,
			errType: t.Err,
			value:   val,
		}, rest, nil
	case 1:
		val, rest, err := FromBytesByType(rest, t.Ok)
		if err != nil {
			return nil, nil, err
		}
		return &Result{
			okType:    t.Ok,
			errType:   t.Err,
			isSuccess: true,
			value:     val,
		}, rest, nil
	}
	return nil, nil, InvalidBooleanByteError{Value: raw[0]}
}
