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
	"encoding/json"
	"reflect"
	"testing"

	"github.com/davidatwhiletrue/casper-js-sdk-sub001/cltype"
	"github.com/davidatwhiletrue/casper-js-sdk-sub001/clvalue"
	"github.com/davidatwhiletrue/casper-js-sdk-sub001/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringToJSON(t *testing.T) {
	data, err := clvalue.ToJSON(clvalue.NewCLString("ABC-DEF"))
	require.NoError(t, err)
	assert.True(t, test.JSONEqual(
		data,
		[]byte(
			`{"bytes":"070000004142432d444546","cl_type":"String","parsed":"ABC-DEF"}`,
		),
	), "got %s", data)
}

func TestFromJSONIgnoresParsedEcho(t *testing.T) {
	// parsed is a human echo only; a lying echo must not affect decode
	val, err := clvalue.FromJSON([]byte(
		`{"bytes":"070000004142432d444546","cl_type":"String","parsed":"WRONG"}`,
	))
	require.NoError(t, err)
	assert.Equal(t, "ABC-DEF", val.String())

	val, err = clvalue.FromJSON([]byte(
		`{"bytes":"0467295a93","cl_type":"U512"}`,
	))
	require.NoError(t, err)
	assert.Equal(t, "2472159591", val.String())
}

func jsonRoundTripValues(t *testing.T) []clvalue.CLValue {
	t.Helper()
	m := clvalue.NewCLMap(cltype.String, cltype.Int32)
	require.NoError(
		t,
		m.Append(clvalue.NewCLString("ABC"), clvalue.NewCLInt32(123)),
	)
	return []clvalue.CLValue{
		clvalue.NewCLBool(true),
		clvalue.NewCLInt32(-5),
		clvalue.NewCLInt64(1234567890123),
		clvalue.NewCLUInt8(255),
		clvalue.NewCLUInt32(0),
		clvalue.NewCLUInt64(18446744073709551615),
		mustUInt512(t, "2472159591"),
		clvalue.NewCLString("héllo wörld"),
		clvalue.NewCLUnit(),
		clvalue.NewCLByteArray([]byte{1, 2, 3}),
		clvalue.NewCLOptionSome(clvalue.NewCLString("x")),
		clvalue.NewCLOptionNone(cltype.UInt64),
		boolList(t, true, false, true),
		m,
		clvalue.NewCLTuple1(clvalue.NewCLUInt8(1)),
		clvalue.NewCLTuple2(
			clvalue.NewCLString("k"),
			clvalue.NewCLUInt32(2),
		),
		clvalue.NewCLTuple3(
			clvalue.NewCLBool(false),
			clvalue.NewCLString(""),
			clvalue.NewCLUInt8(9),
		),
		clvalue.NewCLResultOk(clvalue.NewCLUInt32(1), cltype.String),
		clvalue.NewCLResultErr(cltype.UInt32, clvalue.NewCLString("e")),
	}
}

func TestJSONRoundTrip(t *testing.T) {
	for _, val := range jsonRoundTripValues(t) {
		data, err := clvalue.ToJSON(val)
		require.NoError(t, err, "%s", val)
		parsed, err := clvalue.FromJSON(data)
		require.NoError(t, err, "%s", val)
		assert.True(
			t,
			reflect.DeepEqual(val, parsed),
			"%s: parsed %#v doesn't equal original %#v",
			val,
			parsed,
			val,
		)
		// Re-encoding must preserve the bytes field exactly
		reencoded, err := clvalue.ToJSON(parsed)
		require.NoError(t, err)
		var origEnv, reEnv struct {
			Bytes string `json:"bytes"`
		}
		require.NoError(t, json.Unmarshal(data, &origEnv))
		require.NoError(t, json.Unmarshal(reencoded, &reEnv))
		assert.Equal(t, origEnv.Bytes, reEnv.Bytes)
	}
}

func TestFromJSONInvalid(t *testing.T) {
	testDefs := []string{
		`{"bytes":"00"}`,
		`{"cl_type":"Bool","bytes":"zz"}`,
		`{"cl_type":"NotAType","bytes":"00"}`,
		// Bool with an extra byte
		`{"cl_type":"Bool","bytes":"0000"}`,
		// ByteArray(32) with 10 bytes
		`{"cl_type":{"ByteArray":32},"bytes":"00010203040506070809"}`,
	}
	for _, jsonData := range testDefs {
		_, err := clvalue.FromJSON([]byte(jsonData))
		assert.Error(t, err, "input %s", jsonData)
	}
}
