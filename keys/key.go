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

// KeyTag identifies the variant of a global-state Key
type KeyTag uint8

const (
	KeyTagAccount KeyTag = 0
	KeyTagHash    KeyTag = 1
	KeyTagURef    KeyTag = 2
)

const HashSize = 32

// Hash is a 32-byte contract or package hash
type Hash [HashSize]byte

func NewHash(data []byte) Hash {
	h := Hash{}
	copy(h[:], data)
	return h
}

func (h Hash) Bytes() []byte {
	return h[:]
}

func (h Hash) String() string {
	return EncodeChecksummed(h[:])
}

// Key is a tagged union over the addressable global-state key variants.
// Exactly one of the variant fields is set, matching Tag
type Key struct {
	Tag     KeyTag
	Account AccountHash
	Hash    Hash
	URef    URef
}

func NewKeyFromAccount(account AccountHash) Key {
	return Key{Tag: KeyTagAccount, Account: account}
}

func NewKeyFromHash(hash Hash) Key {
	return Key{Tag: KeyTagHash, Hash: hash}
}

func NewKeyFromURef(uref URef) Key {
	return Key{Tag: KeyTagURef, URef: uref}
}

// NewKeyFromBytes parses a tagged key from the front of data and returns
// the unconsumed remainder
func NewKeyFromBytes(data []byte) (Key, []byte, error) {
	if len(data) == 0 {
		return Key{}, nil, InvalidKeyFormatError{
			Kind:   "key",
			Reason: "missing tag byte",
		}
	}
	tag := KeyTag(data[0])
	rest := data[1:]
	switch tag {
	case KeyTagAccount, KeyTagHash:
		if len(rest) < HashSize {
			return Key{}, nil, InvalidKeyFormatError{
				Kind: "key",
				Reason: fmt.Sprintf(
					"need %d bytes after tag, have %d",
					HashSize,
					len(rest),
				),
			}
		}
		if tag == KeyTagAccount {
			return NewKeyFromAccount(
				NewAccountHash(rest[:HashSize]),
			), rest[HashSize:], nil
		}
		return NewKeyFromHash(NewHash(rest[:HashSize])), rest[HashSize:], nil
	case KeyTagURef:
		uref, rest, err := NewURefFromBytes(rest)
		if err != nil {
			return Key{}, nil, err
		}
		return NewKeyFromURef(uref), rest, nil
	}
	return Key{}, nil, InvalidKeyFormatError{
		Kind:   "key",
		Reason: fmt.Sprintf("unknown tag %d", data[0]),
	}
}

// NewKeyFromString parses the prefixed string forms account-hash-<hex>,
// hash-<hex> and uref-<hex>-<rights>
func NewKeyFromString(s string) (Key, error) {
	switch {
	case strings.HasPrefix(s, accountHashPrefix):
		account, err := NewAccountHashFromString(s)
		if err != nil {
			return Key{}, err
		}
		return NewKeyFromAccount(account), nil
	case strings.HasPrefix(s, "hash-"):
		decoded, err := DecodeChecksummed(strings.TrimPrefix(s, "hash-"))
		if err != nil {
			return Key{}, err
		}
		if len(decoded) != HashSize {
			return Key{}, InvalidKeyFormatError{
				Kind: "key",
				Reason: fmt.Sprintf(
					"hash must be %d bytes, got %d",
					HashSize,
					len(decoded),
				),
			}
		}
		return NewKeyFromHash(NewHash(decoded)), nil
	case strings.HasPrefix(s, "uref-"):
		uref, err := NewURefFromString(s)
		if err != nil {
			return Key{}, err
		}
		return NewKeyFromURef(uref), nil
	}
	return Key{}, InvalidKeyFormatError{
		Kind:   "key",
		Reason: fmt.Sprintf("unknown prefix in %q", s),
	}
}

// Bytes returns the tagged wire form: one tag byte plus the variant payload
func (k Key) Bytes() []byte {
	switch k.Tag {
	case KeyTagAccount:
		return append([]byte{byte(KeyTagAccount)}, k.Account.Bytes()...)
	case KeyTagHash:
		return append([]byte{byte(KeyTagHash)}, k.Hash.Bytes()...)
	case KeyTagURef:
		return append([]byte{byte(KeyTagURef)}, k.URef.Bytes()...)
	}
	return nil
}

func (k Key) String() string {
	switch k.Tag {
	case KeyTagAccount:
		return k.Account.String()
	case KeyTagHash:
		return "hash-" + k.Hash.String()
	case KeyTagURef:
		return k.URef.String()
	}
	return fmt.Sprintf("key-unknown-%d", k.Tag)
}

func (k Key) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *Key) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	tmp, err := NewKeyFromString(s)
	if err != nil {
		return err
	}
	*k = tmp
	return nil
}
