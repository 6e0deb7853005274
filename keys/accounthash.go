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

package keys

import (
	"encoding/json"
	"fmt"
	"strings"
)

const AccountHashSize = 32

const accountHashPrefix = "account-hash-"

// AccountHash is the blake2b-256 account address derived from a public key
type AccountHash [AccountHashSize]byte

func NewAccountHash(data []byte) AccountHash {
	a := AccountHash{}
	copy(a[:], data)
	return a
}

// NewAccountHashFromString parses the account-hash-<hex> string form. The
// prefix is optional
func NewAccountHashFromString(s string) (AccountHash, error) {
	s = strings.TrimPrefix(s, accountHashPrefix)
	decoded, err := DecodeChecksummed(s)
	if err != nil {
		return AccountHash{}, err
	}
	if len(decoded) != AccountHashSize {
		return AccountHash{}, InvalidKeyFormatError{
			Kind: "account hash",
			Reason: fmt.Sprintf(
				"must be %d bytes, got %d",
				AccountHashSize,
				len(decoded),
			),
		}
	}
	return NewAccountHash(decoded), nil
}

func (a AccountHash) Bytes() []byte {
	return a[:]
}

func (a AccountHash) String() string {
	return accountHashPrefix + EncodeChecksummed(a[:])
}

func (a AccountHash) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *AccountHash) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	tmp, err := NewAccountHashFromString(s)
	if err != nil {
		return err
	}
	*a = tmp
	return nil
}
