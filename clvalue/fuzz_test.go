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

import "testing"

func FuzzFromBytesWithType(f *testing.F) {
	// Seed corpus with valid self-describing values
	f.Add([]byte{0x00, 0x01})                   // Bool true
	f.Add([]byte{0x03, 0x07})                   // U8 7
	f.Add([]byte{0x04, 0x01, 0x00, 0x00, 0x00}) // U32 1
	f.Add(
		[]byte{0x08, 0x04, 0x67, 0x29, 0x5a, 0x93},
	) // U512 2472159591
	f.Add([]byte{0x09}) // Unit
	f.Add(
		[]byte{0x0a, 0x03, 0x00, 0x00, 0x00, 0x41, 0x42, 0x43},
	) // String "ABC"
	f.Add([]byte{0x0d, 0x05, 0x00}) // Option(U64) None
	f.Add(
		[]byte{0x0e, 0x00, 0x02, 0x00, 0x00, 0x00, 0x01, 0x00},
	) // List(Bool) [true, false]
	f.Add(
		[]byte{0x0f, 0x02, 0x00, 0x00, 0x00, 0xde, 0xad},
	) // ByteArray(2)
	f.Add(
		[]byte{0x10, 0x04, 0x0a, 0x01, 0x2a, 0x00, 0x00, 0x00},
	) // Result(U32, String) Ok 42
	f.Add(
		[]byte{0x11, 0x0a, 0x01, 0x00, 0x00, 0x00, 0x00},
	) // Map(String, I32) empty
	f.Add([]byte{0x12, 0x00, 0x01}) // Tuple1(Bool)
	f.Add([]byte{0x15, 0xff, 0xff}) // Any

	f.Fuzz(func(t *testing.T, data []byte) {
		val, _, err := FromBytesWithType(data)
		if err != nil {
			return
		}
		// Anything that decodes must re-encode without panicking
		_ = val.Bytes()
		if _, err := ToJSON(val); err != nil {
			t.Errorf("ToJSON failed for decoded value: %s", err)
		}
	})
}
