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
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Inputs longer than this are rendered as plain lowercase hex. The checksum
// scheme (CEP-57) only covers small byte strings such as hashes and keys
const checksumMaxBytes = 75

// EncodeChecksummed renders data as mixed-case checksummed hex. Each hex
// digit that is a letter is uppercased when the next bit of the blake2b-256
// hash of the input is set; digit nibbles do not consume checksum bits
func EncodeChecksummed(data []byte) string {
	encoded := hex.EncodeToString(data)
	if len(data) > checksumMaxBytes {
		return encoded
	}
	hash := blake2b.Sum256(data)
	out := []byte(encoded)
	bitIdx := 0
	for i, c := range out {
		if c < 'a' || c > 'f' {
			continue
		}
		// The bit stream advances only on letter nibbles, LSB first
		// within each hash byte
		if (hash[bitIdx/8]>>(bitIdx%8))&1 == 1 {
			out[i] = c - 'a' + 'A'
		}
		bitIdx++
	}
	return string(out)
}

// DecodeChecksummed decodes checksummed hex, verifying the mixed-case
// checksum. All-lowercase and all-uppercase inputs carry no checksum and
// are accepted unchecked
func DecodeChecksummed(encoded string) ([]byte, error) {
	decoded, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, InvalidKeyFormatError{
			Kind:   "checksummed hex",
			Reason: err.Error(),
		}
	}
	if len(decoded) > checksumMaxBytes {
		return decoded, nil
	}
	lower := strings.ToLower(encoded)
	if encoded == lower || encoded == strings.ToUpper(encoded) {
		return decoded, nil
	}
	if EncodeChecksummed(decoded) != encoded {
		return nil, ErrChecksumMismatch
	}
	return decoded, nil
}
