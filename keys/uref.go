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
	"strconv"
	"strings"
)

const URefAddrSize = 32

// AccessRights is the bit set of permissions carried by a URef
type AccessRights uint8

const (
	AccessRightsNone         AccessRights = 0
	AccessRightsRead         AccessRights = 1
	AccessRightsWrite        AccessRights = 2
	AccessRightsReadWrite    AccessRights = 3
	AccessRightsAdd          AccessRights = 4
	AccessRightsReadAdd      AccessRights = 5
	AccessRightsAddWrite     AccessRights = 6
	AccessRightsReadAddWrite AccessRights = 7
)

// URef is an unforgeable reference to on-chain storage: a 32-byte address
// plus an access-rights byte
type URef struct {
	Address      [URefAddrSize]byte
	AccessRights AccessRights
}

func NewURef(address [URefAddrSize]byte, rights AccessRights) URef {
	return URef{Address: address, AccessRights: rights}
}

// NewURefFromBytes parses a URef from the front of data and returns the
// unconsumed remainder
func NewURefFromBytes(data []byte) (URef, []byte, error) {
	if len(data) < URefAddrSize+1 {
		return URef{}, nil, InvalidKeyFormatError{
			Kind: "URef",
			Reason: fmt.Sprintf(
				"need %d bytes, have %d",
				URefAddrSize+1,
				len(data),
			),
		}
	}
	var ret URef
	copy(ret.Address[:], data[:URefAddrSize])
	rights := data[URefAddrSize]
	if rights > uint8(AccessRightsReadAddWrite) {
		return URef{}, nil, InvalidKeyFormatError{
			Kind:   "URef",
			Reason: fmt.Sprintf("access rights byte %d out of range", rights),
		}
	}
	ret.AccessRights = AccessRights(rights)
	return ret, data[URefAddrSize+1:], nil
}

// NewURefFromString parses the uref-<addr hex>-<rights> string form
func NewURefFromString(s string) (URef, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || parts[0] != "uref" {
		return URef{}, InvalidKeyFormatError{
			Kind:   "URef",
			Reason: "expected uref-<address>-<rights>",
		}
	}
	addr, err := DecodeChecksummed(parts[1])
	if err != nil {
		return URef{}, err
	}
	if len(addr) != URefAddrSize {
		return URef{}, InvalidKeyFormatError{
			Kind: "URef",
			Reason: fmt.Sprintf(
				"address must be %d bytes, got %d",
				URefAddrSize,
				len(addr),
			),
		}
	}
	rights, err := strconv.ParseUint(parts[2], 10, 8)
	if err != nil || rights > uint64(AccessRightsReadAddWrite) {
		return URef{}, InvalidKeyFormatError{
			Kind:   "URef",
			Reason: fmt.Sprintf("bad access rights %q", parts[2]),
		}
	}
	var ret URef
	copy(ret.Address[:], addr)
	ret.AccessRights = AccessRights(rights)
	return ret, nil
}

func (u URef) Bytes() []byte {
	ret := make([]byte, 0, URefAddrSize+1)
	ret = append(ret, u.Address[:]...)
	ret = append(ret, byte(u.AccessRights))
	return ret
}

func (u URef) String() string {
	return fmt.Sprintf(
		"uref-%s-%03d",
		EncodeChecksummed(u.Address[:]),
		u.AccessRights,
	)
}

func (u URef) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u *URef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	tmp, err := NewURefFromString(s)
	if err != nil {
		return err
	}
	*u = tmp
	return nil
}
