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
	"encoding/hex"

	"github.com/davidatwhiletrue/casper-js-sdk-sub001/cltype"
)

// Any holds value bytes whose concrete type isn't embedded in the wire
// format. Decoding them into a typed value needs an externally supplied or
// context-resolved CLType; until then the raw bytes are carried as-is
type Any []byte

func NewCLAny(data []byte) Any {
	ret := make(Any, len(data))
	copy(ret, data)
	return ret
}

func (a Any) Type() cltype.CLType {
	return cltype.Any
}

func (a Any) Bytes() []byte {
	ret := make([]byte, len(a))
	copy(ret, a)
	return ret
}

func (a Any) String() string {
	return hex.EncodeToString(a)
}

func (a Any) parsed() any {
	return hex.EncodeToString(a)
}

// Resolve decodes the held bytes under a concrete type, the retry path for
// Any leaves whose shape becomes known after the fact. All bytes must be
// consumed
func (a Any) Resolve(t cltype.CLType) (CLValue, error) {
	val, remainder, err := FromBytesByType(a, t)
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
