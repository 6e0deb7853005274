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
	"encoding/json"

	"github.com/davidatwhiletrue/casper-js-sdk-sub001/cltype"
)

// The JSON wire form of a CLValue is {"cl_type": ..., "bytes": <hex>,
// "parsed": ...}. The parsed field is a human-readable echo only: it is
// emitted on encode and ignored on decode, which reconstructs the value
// from cl_type and bytes alone
type jsonEnvelope struct {
	CLType json.RawMessage `json:"cl_type"`
	Bytes  string          `json:"bytes"`
	Parsed any             `json:"parsed,omitempty"`
}

// ToJSON encodes a value into its JSON wire form
func ToJSON(val CLValue) ([]byte, error) {
	typeJSON, err := json.Marshal(val.Type())
	if err != nil {
		return nil, err
	}
	return json.Marshal(jsonEnvelope{
		CLType: typeJSON,
		Bytes:  hex.EncodeToString(val.Bytes()),
		Parsed: val.parsed(),
	})
}

// FromJSON decodes a value from its JSON wire form. The bytes must decode
// fully under the declared cl_type; trailing bytes are rejected
func FromJSON(data []byte) (CLValue, error) {
	var envelope jsonEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}
	if envelope.CLType == nil {
		return nil, TypeMismatchError{
			Expected: "cl_type field",
			Actual:   "absent",
		}
	}
	t, err := cltype.FromRawJSON(envelope.CLType)
	if err != nil {
		return nil, err
	}
	valueBytes, err := hex.DecodeString(envelope.Bytes)
	if err != nil {
		return nil, err
	}
	return FromBytes(valueBytes, t)
}
