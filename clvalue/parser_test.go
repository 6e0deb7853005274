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
	"crypto/ed25519"
	"sync"
	"testing"

	"github.com/davidatwhiletrue/casper-js-sdk-sub001/cltype"
	"github.com/davidatwhiletrue/casper-js-sdk-sub001/clvalue"
	"github.com/davidatwhiletrue/casper-js-sdk-sub001/internal/test"
	"github.com/davidatwhiletrue/casper-js-sdk-sub001/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestFromBytesWithType(t *testing.T) {
	// String type tag, then the value bytes, then unrelated trailing data
	data := test.DecodeHexString("0a" + "070000004142432d444546" + "ffff")
	val, remainder, err := clvalue.FromBytesWithType(data)
	require.NoError(t, err)
	assert.Equal(t, "ABC-DEF", val.String())
	// remainder length = total - len(typeBytes) - len(valueBytes)
	assert.Len(t, remainder, len(data)-1-11)
}

func TestFromBytesWithTypeComposite(t *testing.T) {
	original := boolList(t, true, false)
	data := append(original.Type().Bytes(), original.Bytes()...)
	val, remainder, err := clvalue.FromBytesWithType(data)
	require.NoError(t, err)
	assert.Empty(t, remainder)
	assert.Equal(t, original.Bytes(), val.Bytes())
	assert.True(t, original.Type().Equal(val.Type()))
}

func TestFromBytesWithTypeBadTag(t *testing.T) {
	_, _, err := clvalue.FromBytesWithType([]byte{0xee, 0x01})
	assert.ErrorIs(t, err, cltype.ErrUnknownTypeTag)
}

func TestByteArrayTruncated(t *testing.T) {
	// ByteArray(32) given only 10 bytes must fail, never return a short
	// array
	_, _, err := clvalue.FromBytesByType(
		make([]byte, 10),
		cltype.NewByteArray(32),
	)
	assert.ErrorIs(t, err, cltype.ErrTruncatedInput)
}

func TestBoolDecodeInvalidByte(t *testing.T) {
	_, _, err := clvalue.FromBytesByType([]byte{2}, cltype.Bool)
	assert.ErrorIs(t, err, clvalue.ErrInvalidBooleanByte)
	_, _, err = clvalue.FromBytesByType([]byte{}, cltype.Bool)
	assert.ErrorIs(t, err, cltype.ErrTruncatedInput)
}

func TestFromBytesRejectsTrailingBytes(t *testing.T) {
	_, err := clvalue.FromBytes([]byte{1, 0xff}, cltype.Bool)
	assert.ErrorIs(t, err, clvalue.ErrTypeMismatch)
}

func TestConsecutiveValuesDecode(t *testing.T) {
	// An argument-vector style buffer: U8, then String, then Bool
	data := test.DecodeHexString("07" + "0100000041" + "01")
	first, rest, err := clvalue.FromBytesByType(data, cltype.UInt8)
	require.NoError(t, err)
	assert.Equal(t, "7", first.String())
	second, rest, err := clvalue.FromBytesByType(rest, cltype.String)
	require.NoError(t, err)
	assert.Equal(t, "A", second.String())
	third, rest, err := clvalue.FromBytesByType(rest, cltype.Bool)
	require.NoError(t, err)
	assert.Equal(t, "true", third.String())
	assert.Empty(t, rest)
}

func TestKeyLeavesDecode(t *testing.T) {
	pub := ed25519.NewKeyFromSeed(make([]byte, ed25519.SeedSize)).
		Public().(ed25519.PublicKey)
	pubKey, err := keys.NewPublicKey(keys.KeyAlgorithmED25519, pub)
	require.NoError(t, err)

	clPub := clvalue.NewCLPublicKey(pubKey)
	parsed, remainder, err := clvalue.FromBytesByType(
		clPub.Bytes(),
		cltype.PublicKey,
	)
	require.NoError(t, err)
	assert.Empty(t, remainder)
	assert.Equal(t, clPub.Bytes(), parsed.Bytes())
	assert.Equal(t, clPub.String(), parsed.String())

	uref := keys.NewURef(
		[32]byte{0x01, 0x02},
		keys.AccessRightsReadAddWrite,
	)
	clURef := clvalue.NewCLURef(uref)
	parsed, remainder, err = clvalue.FromBytesByType(
		clURef.Bytes(),
		cltype.URef,
	)
	require.NoError(t, err)
	assert.Empty(t, remainder)
	assert.Equal(t, clURef.Bytes(), parsed.Bytes())

	key := keys.NewKeyFromAccount(pubKey.AccountHash())
	clKey := clvalue.NewCLKey(key)
	parsed, remainder, err = clvalue.FromBytesByType(
		clKey.Bytes(),
		cltype.Key,
	)
	require.NoError(t, err)
	assert.Empty(t, remainder)
	assert.Equal(t, clKey.Bytes(), parsed.Bytes())
}

func TestAnyDecodeAndResolve(t *testing.T) {
	// Bare Any consumes the whole remainder
	val, remainder, err := clvalue.FromBytesByType(
		test.DecodeHexString("07000000"),
		cltype.Any,
	)
	require.NoError(t, err)
	assert.Empty(t, remainder)
	anyVal, ok := val.(clvalue.Any)
	require.True(t, ok)

	// Retrying the decode under a concrete type resolves it
	resolved, err := anyVal.Resolve(cltype.UInt32)
	require.NoError(t, err)
	assert.Equal(t, "7", resolved.String())

	// A Dynamic type drives the decode directly
	dynVal, remainder, err := clvalue.FromBytesByType(
		test.DecodeHexString("07000000"),
		cltype.NewDynamic(cltype.TypeIDAny, cltype.UInt32),
	)
	require.NoError(t, err)
	assert.Empty(t, remainder)
	assert.Equal(t, "7", dynVal.String())
}

// Frozen values must be safe for concurrent read-only use
func TestFrozenValueConcurrentReads(t *testing.T) {
	defer goleak.VerifyNone(t)
	list := clvalue.NewCLList(cltype.String)
	require.NoError(t, list.Append(clvalue.NewCLString("ABC")))
	require.NoError(t, list.Append(clvalue.NewCLString("DEF")))
	frozen := list.Bytes()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, frozen, list.Bytes())
				_ = list.String()
				if _, err := clvalue.ToJSON(list); err != nil {
					t.Error(err)
				}
			}
		}()
	}
	wg.Wait()
}
