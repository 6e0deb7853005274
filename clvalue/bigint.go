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
	"math/big"

	"github.com/davidatwhiletrue/casper-js-sdk-sub001/cltype"
)

const (
	maxUInt128Bytes = 16
	maxUInt256Bytes = 32
	maxUInt512Bytes = 64
)

// Big unsigned integers encode as one length byte N followed by the N-byte
// little-endian minimal magnitude. N=0 encodes zero; the magnitude never
// carries a leading zero byte.

func encodeBig(val *big.Int) []byte {
	magnitude := val.Bytes()
	ret := make([]byte, 1+len(magnitude))
	ret[0] = byte(len(magnitude))
	// big.Int.Bytes is big-endian, the wire wants little-endian
	for i, b := range magnitude {
		ret[len(magnitude)-i] = b
	}
	return ret
}

func decodeBig(
	data []byte,
	maxBytes int,
	kind string,
) (*big.Int, []byte, error) {
	if len(data) == 0 {
		return nil, nil, cltype.NewTruncatedInputError(
			kind+" length byte",
			1,
			0,
		)
	}
	magLen := int(data[0])
	if magLen > maxBytes {
		return nil, nil, OutOfRangeError{
			Kind: kind,
			Reason: fmt.Sprintf(
				"length byte %d exceeds maximum width %d",
				magLen,
				maxBytes,
			),
		}
	}
	if len(data)-1 < magLen {
		return nil, nil, cltype.NewTruncatedInputError(
			kind+" magnitude",
			magLen,
			len(data)-1,
		)
	}
	// A padded magnitude would re-encode shorter, breaking byte-exact
	// round-trips; only the minimal form is accepted
	if magLen > 0 && data[magLen] == 0 {
		return nil, nil, OutOfRangeError{
			Kind:   kind,
			Reason: "magnitude padded with a trailing zero byte",
		}
	}
	magnitude := make([]byte, magLen)
	for i := 0; i < magLen; i++ {
		magnitude[magLen-1-i] = data[1+i]
	}
	return new(big.Int).SetBytes(magnitude), data[1+magLen:], nil
}

func checkBigRange(val *big.Int, maxBytes int, kind string) error {
	if val.Sign() < 0 {
		return OutOfRangeError{Kind: kind, Reason: "negative value"}
	}
	if len(val.Bytes()) > maxBytes {
		return OutOfRangeError{
			Kind: kind,
			Reason: fmt.Sprintf(
				"magnitude is %d bytes, maximum width is %d",
				len(val.Bytes()),
				maxBytes,
			),
		}
	}
	return nil
}

// UInt128 is an unsigned integer of up to 16 bytes
type UInt128 struct {
	val *big.Int
}

func NewCLUInt128(val *big.Int) (UInt128, error) {
	if err := checkBigRange(val, maxUInt128Bytes, "U128"); err != nil {
		return UInt128{}, err
	}
	return UInt128{val: new(big.Int).Set(val)}, nil
}

func (u UInt128) Type() cltype.CLType {
	return cltype.UInt128
}

func (u UInt128) Bytes() []byte {
	return encodeBig(u.val)
}

func (u UInt128) Value() *big.Int {
	return new(big.Int).Set(u.val)
}

func (u UInt128) String() string {
	return u.val.String()
}

func (u UInt128) parsed() any {
	return u.val.String()
}

// UInt256 is an unsigned integer of up to 32 bytes
type UInt256 struct {
	val *big.Int
}

func NewCLUInt256(val *big.Int) (UInt256, error) {
	if err := checkBigRange(val, maxUInt256Bytes, "U256"); err != nil {
		return UInt256{}, err
	}
	return UInt256{val: new(big.Int).Set(val)}, nil
}

func (u UInt256) Type() cltype.CLType {
	return cltype.UInt256
}

func (u UInt256) Bytes() []byte {
	return encodeBig(u.val)
}

func (u UInt256) Value() *big.Int {
	return new(big.Int).Set(u.val)
}

func (u UInt256) String() string {
	return u.val.String()
}

func (u UInt256) parsed() any {
	return u.val.String()
}

// UInt512 is an unsigned integer of up to 64 bytes. Token amounts in motes
// are U512 values
type UInt512 struct {
	val *big.Int
}

func NewCLUInt512(val *big.Int) (UInt512, error) {
	if err := checkBigRange(val, maxUInt512Bytes, "U512"); err != nil {
		return UInt512{}, err
	}
	return UInt512{val: new(big.Int).Set(val)}, nil
}

// NewCLUInt512FromUint64 wraps a native uint64, which always fits
func NewCLUInt512FromUint64(val uint64) UInt512 {
	return UInt512{val: new(big.Int).SetUint64(val)}
}

func (u UInt512) Type() cltype.CLType {
	return cltype.UInt512
}

func (u UInt512) Bytes() []byte {
	return encodeBig(u.val)
}

func (u UInt512) Value() *big.Int {
	return new(big.Int).Set(u.val)
}

func (u UInt512) String() string {
	return u.val.String()
}

func (u UInt512) parsed() any {
	return u.val.String()
}
