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
	"math/big"
	"reflect"
	"testing"

	"github.com/davidatwhiletrue/casper-js-sdk-sub001/cltype"
	"github.com/davidatwhiletrue/casper-js-sdk-sub001/clvalue"
	"github.com/davidatwhiletrue/casper-js-sdk-sub001/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUInt512(t *testing.T, val string) clvalue.UInt512 {
	t.Helper()
	bigVal, ok := new(big.Int).SetString(val, 10)
	require.True(t, ok)
	ret, err := clvalue.NewCLUInt512(bigVal)
	require.NoError(t, err)
	return ret
}

func boolList(t *testing.T, vals ...bool) *clvalue.List {
	t.Helper()
	ret := clvalue.NewCLList(cltype.Bool)
	for _, val := range vals {
		require.NoError(t, ret.Append(clvalue.NewCLBool(val)))
	}
	return ret
}

var primitiveTestDefs = []struct {
	name     string
	value    clvalue.CLValue
	bytesHex string
}{
	{
		name:     "bool true",
		value:    clvalue.NewCLBool(true),
		bytesHex: "01",
	},
	{
		name:     "bool false",
		value:    clvalue.NewCLBool(false),
		bytesHex: "00",
	},
	{
		name:     "i32 negative",
		value:    clvalue.NewCLInt32(-2),
		bytesHex: "feffffff",
	},
	{
		name:     "i64",
		value:    clvalue.NewCLInt64(67305985),
		bytesHex: "0102030400000000",
	},
	{
		name:     "u8",
		value:    clvalue.NewCLUInt8(7),
		bytesHex: "07",
	},
	{
		name:     "u32 max",
		value:    clvalue.NewCLUInt32(4294967295),
		bytesHex: "ffffffff",
	},
	{
		name:     "u64",
		value:    clvalue.NewCLUInt64(1),
		bytesHex: "0100000000000000",
	},
	{
		name:     "string",
		value:    clvalue.NewCLString("ABC-DEF"),
		bytesHex: "070000004142432d444546",
	},
	{
		name:     "empty string",
		value:    clvalue.NewCLString(""),
		bytesHex: "00000000",
	},
	{
		name:     "unit",
		value:    clvalue.NewCLUnit(),
		bytesHex: "",
	},
	{
		name:     "byte array",
		value:    clvalue.NewCLByteArray([]byte{0xde, 0xad, 0xbe, 0xef}),
		bytesHex: "deadbeef",
	},
}

func TestPrimitiveBytesRoundTrip(t *testing.T) {
	for _, testDef := range primitiveTestDefs {
		t.Run(testDef.name, func(t *testing.T) {
			expectedBytes := test.DecodeHexString(testDef.bytesHex)
			assert.Equal(t, expectedBytes, testDef.value.Bytes())
			parsed, remainder, err := clvalue.FromBytesByType(
				expectedBytes,
				testDef.value.Type(),
			)
			require.NoError(t, err)
			assert.Empty(t, remainder)
			assert.True(
				t,
				reflect.DeepEqual(testDef.value, parsed),
				"parsed value %v doesn't equal original %v",
				parsed,
				testDef.value,
			)
		})
	}
}

func TestFactoryAndParserPathsAgree(t *testing.T) {
	// Both construction paths must produce identical values for the same
	// logical input
	factory := boolList(t, true, false)
	parsed, remainder, err := clvalue.FromBytesByType(
		test.DecodeHexString("020000000100"),
		cltype.NewList(cltype.Bool),
	)
	require.NoError(t, err)
	assert.Empty(t, remainder)
	require.True(t, reflect.DeepEqual(clvalue.CLValue(factory), parsed))
	assert.Equal(t, factory.Bytes(), parsed.Bytes())
}
