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
	"github.com/davidatwhiletrue/casper-js-sdk-sub001/cltype"
)

// Contracts store their entry-point argument schemas as a
// Map<String, List<Tuple2<String, Any>>> blob: variant name to argument
// list, where each Any leaf holds a CLType binary encoding describing the
// argument's concrete type. Since a CLType encoding is self-delimiting,
// the Any leaves can be resolved in place while walking the blob.

// SchemaArg is one resolved argument declaration
type SchemaArg struct {
	Name string
	Type cltype.CLType
}

// SchemaEntry is one entry-point variant with its arguments in declared
// order
type SchemaEntry struct {
	Name string
	Args []SchemaArg
}

// ParseSchemas decodes an argument-schema blob, resolving every Any leaf
// to the concrete CLType it declares. The whole input must be consumed
func ParseSchemas(data []byte) ([]SchemaEntry, error) {
	count, rest, err := readU32(data, "schema count")
	if err != nil {
		return nil, err
	}
	var entries []SchemaEntry
	seen := map[string]struct{}{}
	for i := uint32(0); i < count; i++ {
		var name CLValue
		name, rest, err = FromBytesByType(rest, cltype.String)
		if err != nil {
			return nil, err
		}
		variant := name.String()
		if _, ok := seen[variant]; ok {
			return nil, DuplicateMapKeyError{Key: variant}
		}
		seen[variant] = struct{}{}
		var args []SchemaArg
		args, rest, err = parseSchemaArgs(rest)
		if err != nil {
			return nil, err
		}
		entries = append(entries, SchemaEntry{Name: variant, Args: args})
	}
	if len(rest) > 0 {
		return nil, TypeMismatchError{
			Expected: "fully consumed schema blob",
			Actual:   "trailing bytes",
		}
	}
	return entries, nil
}

func parseSchemaArgs(data []byte) ([]SchemaArg, []byte, error) {
	count, rest, err := readU32(data, "schema argument count")
	if err != nil {
		return nil, nil, err
	}
	var args []SchemaArg
	for i := uint32(0); i < count; i++ {
		var name CLValue
		name, rest, err = FromBytesByType(rest, cltype.String)
		if err != nil {
			return nil, nil, err
		}
		// The Any leaf is a CLType encoding, which knows its own length
		var argType cltype.CLType
		argType, rest, err = cltype.FromBytes(rest)
		if err != nil {
			return nil, nil, err
		}
		args = append(args, SchemaArg{
			Name: name.String(),
			Type: cltype.NewDynamic(cltype.TypeIDAny, argType),
		})
	}
	return args, rest, nil
}
