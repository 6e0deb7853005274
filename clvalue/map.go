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
	"strings"

	"github.com/davidatwhiletrue/casper-js-sdk-sub001/cltype"
)

// MapEntry is one ordered key/value pair of a Map
type MapEntry struct {
	Key   CLValue
	Value CLValue
}

// Map is an ordered collection of key/value pairs: a 4-byte little-endian
// pair count followed by the concatenated key and value bytes of each pair
// in construction order. The wire format is not canonically sorted, so the
// order is significant for byte-exact re-encoding. Lookup compares keys by
// their canonical rendering; construction rejects duplicate renderings, and
// since every key must carry the declared key type, keys of different types
// can never coexist
type Map struct {
	keyType cltype.CLType
	valType cltype.CLType
	entries []MapEntry
}

func NewCLMap(keyType cltype.CLType, valType cltype.CLType) *Map {
	return &Map{
		keyType: keyType,
		valType: valType,
	}
}

func (m *Map) KeyType() cltype.CLType {
	return m.keyType
}

func (m *Map) ValType() cltype.CLType {
	return m.valType
}

func (m *Map) Len() int {
	return len(m.entries)
}

// Append adds a pair. The key and value must match the declared types and
// the key's rendering must not already be present
func (m *Map) Append(key CLValue, val CLValue) error {
	if !key.Type().Equal(m.keyType) {
		return TypeMismatchError{
			Expected: m.keyType.String(),
			Actual:   key.Type().String(),
		}
	}
	if !val.Type().Equal(m.valType) {
		return TypeMismatchError{
			Expected: m.valType.String(),
			Actual:   val.Type().String(),
		}
	}
	rendered := key.String()
	if _, ok := m.Get(rendered); ok {
		return DuplicateMapKeyError{Key: rendered}
	}
	m.entries = append(m.entries, MapEntry{Key: key, Value: val})
	return nil
}

// Get looks up a value by the key's canonical rendering. The second return
// is false when the key is absent
func (m *Map) Get(rendered string) (CLValue, bool) {
	for _, entry := range m.entries {
		if entry.Key.String() == rendered {
			return entry.Value, true
		}
	}
	return nil, false
}

// Find looks up a value by key, matching on the key's canonical rendering
// rather than instance identity
func (m *Map) Find(key CLValue) (CLValue, bool) {
	return m.Get(key.String())
}

// Entries returns the pairs in construction order. The returned slice is
// shared with the map and must not be modified
func (m *Map) Entries() []MapEntry {
	return m.entries
}

func (m *Map) Type() cltype.CLType {
	return cltype.NewMap(m.keyType, m.valType)
}

func (m *Map) Bytes() []byte {
	ret := putU32(uint32(len(m.entries)))
	for _, entry := range m.entries {
		ret = append(ret, entry.Key.Bytes()...)
		ret = append(ret, entry.Value.Bytes()...)
	}
	return ret
}

func (m *Map) String() string {
	pairs := make([]string, 0, len(m.entries))
	for _, entry := range m.entries {
		pairs = append(
			pairs,
			fmt.Sprintf("%s:%s", entry.Key, entry.Value),
		)
	}
	return "{" + strings.Join(pairs, ",") + "}"
}

func (m *Map) parsed() any {
	ret := make([]any, 0, len(m.entries))
	for _, entry := range m.entries {
		ret = append(ret, map[string]any{
			"key":   entry.Key.parsed(),
			"value": entry.Value.parsed(),
		})
	}
	return ret
}
