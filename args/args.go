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

// Package args provides the named runtime-argument map passed alongside
// transactions and contract calls: an insertion-ordered mapping from
// argument name to CLValue that round-trips byte-exactly through both its
// binary and JSON wire forms
package args

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/davidatwhiletrue/casper-js-sdk-sub001/cltype"
	"github.com/davidatwhiletrue/casper-js-sdk-sub001/clvalue"
)

// NamedArg is one name/value pair
type NamedArg struct {
	Name  string
	Value clvalue.CLValue
}

// Args is an ordered collection of named arguments. Insertion order is
// preserved and significant for byte-exact re-encoding
type Args struct {
	entries []NamedArg
}

func NewArgs() *Args {
	return &Args{}
}

func (a *Args) Len() int {
	return len(a.entries)
}

// Insert appends a named argument. Duplicate names are rejected
func (a *Args) Insert(name string, val clvalue.CLValue) error {
	if _, ok := a.Get(name); ok {
		return fmt.Errorf("duplicate argument name %q", name)
	}
	a.entries = append(a.entries, NamedArg{Name: name, Value: val})
	return nil
}

// Get returns the value for name; the second return is false when absent
func (a *Args) Get(name string) (clvalue.CLValue, bool) {
	for _, entry := range a.entries {
		if entry.Name == name {
			return entry.Value, true
		}
	}
	return nil, false
}

// Entries returns the arguments in insertion order. The returned slice is
// shared with the collection and must not be modified
func (a *Args) Entries() []NamedArg {
	return a.entries
}

// Bytes encodes a 4-byte little-endian count followed by each argument as
// its name string and self-describing value (type bytes then value bytes)
func (a *Args) Bytes() []byte {
	ret := make([]byte, 4)
	binary.LittleEndian.PutUint32(ret, uint32(len(a.entries)))
	for _, entry := range a.entries {
		ret = append(ret, clvalue.NewCLString(entry.Name).Bytes()...)
		ret = append(ret, entry.Value.Type().Bytes()...)
		ret = append(ret, entry.Value.Bytes()...)
	}
	return ret
}

// FromBytes parses an argument collection, the inverse of Bytes
func FromBytes(data []byte) (*Args, error) {
	count, rest, err := decodeCount(data)
	if err != nil {
		return nil, err
	}
	ret := NewArgs()
	for i := uint32(0); i < count; i++ {
		var name clvalue.CLValue
		name, rest, err = clvalue.FromBytesByType(rest, cltype.String)
		if err != nil {
			return nil, err
		}
		var val clvalue.CLValue
		val, rest, err = clvalue.FromBytesWithType(rest)
		if err != nil {
			return nil, err
		}
		if err := ret.Insert(name.String(), val); err != nil {
			return nil, err
		}
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("%d trailing bytes after arguments", len(rest))
	}
	return ret, nil
}

func decodeCount(data []byte) (uint32, []byte, error) {
	if len(data) < 4 {
		return 0, nil, cltype.NewTruncatedInputError(
			"argument count",
			4,
			len(data),
		)
	}
	return binary.LittleEndian.Uint32(data), data[4:], nil
}

// MarshalJSON emits the Named array form: [[name, clValueJSON], ...]
func (a *Args) MarshalJSON() ([]byte, error) {
	pairs := make([]json.RawMessage, 0, len(a.entries))
	for _, entry := range a.entries {
		nameJSON, err := json.Marshal(entry.Name)
		if err != nil {
			return nil, err
		}
		valJSON, err := clvalue.ToJSON(entry.Value)
		if err != nil {
			return nil, err
		}
		pair, err := json.Marshal(
			[]json.RawMessage{nameJSON, valJSON},
		)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	return json.Marshal(pairs)
}

// UnmarshalJSON accepts both the Named array form and the legacy plain
// object form {name: clValueJSON, ...}
func (a *Args) UnmarshalJSON(data []byte) error {
	switch firstJSONByte(data) {
	case '[':
		var pairs [][]json.RawMessage
		if err := json.Unmarshal(data, &pairs); err != nil {
			return err
		}
		return a.fromPairs(pairs)
	case '{':
		return a.fromObject(data)
	}
	return fmt.Errorf("arguments must be an array of pairs or an object")
}

func firstJSONByte(data []byte) byte {
	for _, c := range data {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return c
	}
	return 0
}

// fromObject walks the object with a token decoder so entry order follows
// the document; unmarshalling into a Go map would make the resulting
// Bytes() encoding nondeterministic
func (a *Args) fromObject(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}
	ret := NewArgs()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("argument name must be a string")
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		val, err := clvalue.FromJSON(raw)
		if err != nil {
			return err
		}
		if err := ret.Insert(name, val); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*a = *ret
	return nil
}

func (a *Args) fromPairs(pairs [][]json.RawMessage) error {
	ret := NewArgs()
	for _, pair := range pairs {
		if len(pair) != 2 {
			return fmt.Errorf(
				"argument pair must have 2 elements, got %d",
				len(pair),
			)
		}
		var name string
		if err := json.Unmarshal(pair[0], &name); err != nil {
			return fmt.Errorf("argument name: %w", err)
		}
		val, err := clvalue.FromJSON(pair[1])
		if err != nil {
			return err
		}
		if err := ret.Insert(name, val); err != nil {
			return err
		}
	}
	*a = *ret
	return nil
}
