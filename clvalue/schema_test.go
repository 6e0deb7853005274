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

package clvalue_test

import (
	"testing"

	"github.com/davidatwhiletrue/casper-js-sdk-sub001/cltype"
	"github.com/davidatwhiletrue/casper-js-sdk-sub001/clvalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Builds the Map<String, List<Tuple2<String, Any>>> blob a contract stores
// for its entry-point argument schemas, with each Any leaf holding a CLType
// encoding
func buildSchemaBlob(entries []clvalue.SchemaEntry) []byte {
	data := clvalue.NewCLUInt32(uint32(len(entries))).Bytes()
	for _, entry := range entries {
		data = append(data, clvalue.NewCLString(entry.Name).Bytes()...)
		data = append(
			data,
			clvalue.NewCLUInt32(uint32(len(entry.Args))).Bytes()...,
		)
		for _, arg := range entry.Args {
			data = append(data, clvalue.NewCLString(arg.Name).Bytes()...)
			data = append(data, arg.Type.Bytes()...)
		}
	}
	return data
}

func TestParseSchemas(t *testing.T) {
	blob := buildSchemaBlob([]clvalue.SchemaEntry{
		{
			Name: "transfer",
			Args: []clvalue.SchemaArg{
				{Name: "recipient", Type: cltype.Key},
				{Name: "amount", Type: cltype.UInt512},
			},
		},
		{
			Name: "approve",
			Args: []clvalue.SchemaArg{
				{
					Name: "spender",
					Type: cltype.NewOption(cltype.Key),
				},
			},
		},
		{
			Name: "init",
			Args: nil,
		},
	})

	entries, err := clvalue.ParseSchemas(blob)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "transfer", entries[0].Name)
	require.Len(t, entries[0].Args, 2)
	assert.Equal(t, "recipient", entries[0].Args[0].Name)
	assert.Equal(t, "amount", entries[0].Args[1].Name)

	// Each Any leaf resolves to a Dynamic carrying the declared type
	recipient, ok := entries[0].Args[0].Type.(*cltype.Dynamic)
	require.True(t, ok)
	assert.True(t, recipient.Inner.Equal(cltype.Key))
	amount, ok := entries[0].Args[1].Type.(*cltype.Dynamic)
	require.True(t, ok)
	assert.True(t, amount.Inner.Equal(cltype.UInt512))

	assert.Equal(t, "approve", entries[1].Name)
	require.Len(t, entries[1].Args, 1)
	spender, ok := entries[1].Args[0].Type.(*cltype.Dynamic)
	require.True(t, ok)
	assert.True(t, spender.Inner.Equal(cltype.NewOption(cltype.Key)))

	assert.Equal(t, "init", entries[2].Name)
	assert.Empty(t, entries[2].Args)
}

func TestParseSchemasResolvedTypesDriveDecode(t *testing.T) {
	blob := buildSchemaBlob([]clvalue.SchemaEntry{
		{
			Name: "set_count",
			Args: []clvalue.SchemaArg{
				{Name: "count", Type: cltype.UInt32},
			},
		},
	})
	entries, err := clvalue.ParseSchemas(blob)
	require.NoError(t, err)

	// Use the resolved type to decode an argument that arrived untyped
	val, remainder, err := clvalue.FromBytesByType(
		clvalue.NewCLUInt32(7).Bytes(),
		entries[0].Args[0].Type,
	)
	require.NoError(t, err)
	assert.Empty(t, remainder)
	assert.Equal(t, "7", val.String())
}

func TestParseSchemasMalformed(t *testing.T) {
	// Truncated in the middle of an argument's type encoding
	blob := buildSchemaBlob([]clvalue.SchemaEntry{
		{
			Name: "f",
			Args: []clvalue.SchemaArg{
				{Name: "a", Type: cltype.NewList(cltype.UInt8)},
			},
		},
	})
	_, err := clvalue.ParseSchemas(blob[:len(blob)-1])
	assert.Error(t, err)

	// Trailing garbage
	_, err = clvalue.ParseSchemas(append(blob, 0xff))
	assert.ErrorIs(t, err, clvalue.ErrTypeMismatch)

	// Duplicate variant names
	dup := buildSchemaBlob([]clvalue.SchemaEntry{
		{Name: "f", Args: nil},
		{Name: "f", Args: nil},
	})
	_, err = clvalue.ParseSchemas(dup)
	assert.ErrorIs(t, err, clvalue.ErrDuplicateMapKey)
}
