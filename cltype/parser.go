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
)

// FromBytes parses one CLType from the front of data and returns the
// unconsumed remainder, allowing a caller to continue parsing a
// concatenated type stream. Simple types consume only their tag byte;
// composite types recurse into their children
func FromBytes(data []byte) (CLType, []byte, error) {
	if len(data) == 0 {
		return nil, nil, NewTruncatedInputError("CL type tag", 1, 0)
	}
	tag := TypeID(data[0])
	rest := data[1:]
	if simple, ok := simpleTypesByID[tag]; ok {
		return simple, rest, nil
	}
	switch tag {
	case TypeIDByteArray:
		if len(rest) < 4 {
			return nil, nil, NewTruncatedInputError(
				"ByteArray size",
				4,
				len(rest),
			)
		}
		size := binary.LittleEndian.Uint32(rest)
		return NewByteArray(size), rest[4:], nil
	case TypeIDOption:
		inner, rest, err := FromBytes(rest)
		if err != nil {
			return nil, nil, err
		}
		return NewOption(inner), rest, nil
	case TypeIDList:
		elem, rest, err := FromBytes(rest)
		if err != nil {
			return nil, nil, err
		}
		return NewList(elem), rest, nil
	case TypeIDMap:
		key, rest, err := FromBytes(rest)
		if err != nil {
			return nil, nil, err
		}
		val, rest, err := FromBytes(rest)
		if err != nil {
			return nil, nil, err
		}
		return NewMap(key, val), rest, nil
	case TypeIDTuple1:
		inner, rest, err := FromBytes(rest)
		if err != nil {
			return nil, nil, err
		}
		return NewTuple1(inner), rest, nil
	case TypeIDTuple2:
		inner1, rest, err := FromBytes(rest)
		if err != nil {
			return nil, nil, err
		}
		inner2, rest, err := FromBytes(rest)
		if err != nil {
			return nil, nil, err
		}
		return NewTuple2(inner1, inner2), rest, nil
	case TypeIDTuple3:
		inner1, rest, err := FromBytes(rest)
		if err != nil {
			return nil, nil, err
		}
		inner2, rest, err := FromBytes(rest)
		if err != nil {
			return nil, nil, err
		}
		inner3, rest, err := FromBytes(rest)
		if err != nil {
			return nil, nil, err
		}
		return NewTuple3(inner1, inner2, inner3), rest, nil
	case TypeIDResult:
		okType, rest, err := FromBytes(rest)
		if err != nil {
			return nil, nil, err
		}
		errType, rest, err := FromBytes(rest)
		if err != nil {
			return nil, nil, err
		}
		return NewResult(okType, errType), rest, nil
	}
	return nil, nil, NewUnknownTypeTagError(data[0])
}
