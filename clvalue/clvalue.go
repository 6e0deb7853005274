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

	"github.com/davidatwhiletrue/casper-js-sdk-sub001/cltype"
)

// CLValue is a self-contained typed value with its own binary encoding.
// Values are created either by the New* factories from native inputs or by
// the parser functions from bytes/JSON; both paths yield equal values for
// the same logical input. Once a value has been shared or serialized it
// must be treated as frozen: concurrent reads are safe, mutation is not
type CLValue interface {
	// Type returns the CLType describing this value's shape
	Type() cltype.CLType
	// Bytes returns the binary encoding. It is a pure function of the
	// value and never fails
	Bytes() []byte
	// String returns the human rendering, which is also the canonical
	// form used for map key lookup
	String() string
	// parsed returns the representation used for the "parsed" JSON echo
	parsed() any
}

// readBytes consumes exactly n bytes from the front of data
func readBytes(
	data []byte,
	n int,
	field string,
) ([]byte, []byte, error) {
	if len(data) < n {
		return nil, nil, cltype.NewTruncatedInputError(field, n, len(data))
	}
	return data[:n], data[n:], nil
}

// readU32 consumes a 4-byte little-endian length or count prefix
func readU32(data []byte, field string) (uint32, []byte, error) {
	raw, rest, err := readBytes(data, 4, field)
	if err != nil {
		return 0, nil, err
	}
	return binary.LittleEndian.Uint32(raw), rest, nil
}

func putU32(val uint32) []byte {
	ret := make([]byte, 4)
	binary.LittleEndian.PutUint32(ret, val)
	return ret
}
