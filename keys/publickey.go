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
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"filippo.io/edwards25519"
	"github.com/btcsuite/btcd/btcec/v2"
	"golang.org/x/crypto/blake2b"
)

// KeyAlgorithm is the signature scheme tag prefixing a public key on the
// wire and in its hex string form
type KeyAlgorithm uint8

const (
	KeyAlgorithmED25519   KeyAlgorithm = 1
	KeyAlgorithmSECP256K1 KeyAlgorithm = 2
)

const (
	ED25519KeySize   = 32
	SECP256K1KeySize = 33
)

func (a KeyAlgorithm) String() string {
	switch a {
	case KeyAlgorithmED25519:
		return "ED25519"
	case KeyAlgorithmSECP256K1:
		return "SECP256K1"
	}
	return fmt.Sprintf("KeyAlgorithm(%d)", uint8(a))
}

// KeySize returns the raw key length in bytes for the algorithm
func (a KeyAlgorithm) KeySize() int {
	switch a {
	case KeyAlgorithmED25519:
		return ED25519KeySize
	case KeyAlgorithmSECP256K1:
		return SECP256K1KeySize
	}
	return 0
}

// PublicKey is an account public key: one algorithm tag byte followed by
// the raw key bytes. Signing and verification live outside this library;
// the key is carried only for identity and hashing
type PublicKey struct {
	alg KeyAlgorithm
	key []byte
}

// NewPublicKey validates and wraps raw key bytes for the given algorithm
func NewPublicKey(alg KeyAlgorithm, key []byte) (PublicKey, error) {
	if len(key) != alg.KeySize() || alg.KeySize() == 0 {
		return PublicKey{}, InvalidKeyFormatError{
			Kind: "public key",
			Reason: fmt.Sprintf(
				"%s key must be %d bytes, got %d",
				alg,
				alg.KeySize(),
				len(key),
			),
		}
	}
	switch alg {
	case KeyAlgorithmED25519:
		point, err := new(edwards25519.Point).SetBytes(key)
		if err != nil {
			return PublicKey{}, InvalidKeyFormatError{
				Kind:   "public key",
				Reason: fmt.Sprintf("bad ed25519 point: %s", err),
			}
		}
		// SetBytes reduces out-of-range field elements instead of
		// rejecting them; round-trip the encoding so only canonical
		// point encodings are accepted
		if !bytes.Equal(point.Bytes(), key) {
			return PublicKey{}, InvalidKeyFormatError{
				Kind:   "public key",
				Reason: "non-canonical ed25519 point encoding",
			}
		}
	case KeyAlgorithmSECP256K1:
		if _, err := btcec.ParsePubKey(key); err != nil {
			return PublicKey{}, InvalidKeyFormatError{
				Kind:   "public key",
				Reason: fmt.Sprintf("bad secp256k1 key: %s", err),
			}
		}
	}
	ret := PublicKey{
		alg: alg,
		key: make([]byte, len(key)),
	}
	copy(ret.key, key)
	return ret, nil
}

// NewPublicKeyFromBytes parses a tagged public key from the front of data
// and returns the unconsumed remainder
func NewPublicKeyFromBytes(data []byte) (PublicKey, []byte, error) {
	if len(data) == 0 {
		return PublicKey{}, nil, InvalidKeyFormatError{
			Kind:   "public key",
			Reason: "missing algorithm tag",
		}
	}
	alg := KeyAlgorithm(data[0])
	keySize := alg.KeySize()
	if keySize == 0 {
		return PublicKey{}, nil, InvalidKeyFormatError{
			Kind:   "public key",
			Reason: fmt.Sprintf("unknown algorithm tag %d", data[0]),
		}
	}
	if len(data) < 1+keySize {
		return PublicKey{}, nil, InvalidKeyFormatError{
			Kind: "public key",
			Reason: fmt.Sprintf(
				"need %d bytes, have %d",
				1+keySize,
				len(data),
			),
		}
	}
	ret, err := NewPublicKey(alg, data[1:1+keySize])
	if err != nil {
		return PublicKey{}, nil, err
	}
	return ret, data[1+keySize:], nil
}

// NewPublicKeyFromHex parses the tagged hex string form, accepting
// checksummed mixed-case hex
func NewPublicKeyFromHex(s string) (PublicKey, error) {
	data, err := DecodeChecksummed(s)
	if err != nil {
		return PublicKey{}, err
	}
	ret, remainder, err := NewPublicKeyFromBytes(data)
	if err != nil {
		return PublicKey{}, err
	}
	if len(remainder) > 0 {
		return PublicKey{}, InvalidKeyFormatError{
			Kind:   "public key",
			Reason: fmt.Sprintf("%d trailing bytes", len(remainder)),
		}
	}
	return ret, nil
}

func (p PublicKey) Algorithm() KeyAlgorithm {
	return p.alg
}

// Bytes returns the tagged wire form: algorithm byte plus raw key bytes
func (p PublicKey) Bytes() []byte {
	ret := make([]byte, 0, 1+len(p.key))
	ret = append(ret, byte(p.alg))
	ret = append(ret, p.key...)
	return ret
}

func (p PublicKey) String() string {
	return EncodeChecksummed(p.Bytes())
}

// AccountHash derives the on-chain account address: blake2b-256 over the
// lowercased algorithm name, a zero byte and the raw key bytes
func (p PublicKey) AccountHash() AccountHash {
	preimage := make([]byte, 0, len(p.alg.String())+1+len(p.key))
	preimage = append(preimage, []byte(strings.ToLower(p.alg.String()))...)
	preimage = append(preimage, 0x00)
	preimage = append(preimage, p.key...)
	return AccountHash(blake2b.Sum256(preimage))
}

func (p PublicKey) Equal(other PublicKey) bool {
	return p.alg == other.alg && string(p.key) == string(other.key)
}

func (p PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PublicKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	tmp, err := NewPublicKeyFromHex(s)
	if err != nil {
		return err
	}
	*p = tmp
	return nil
}
