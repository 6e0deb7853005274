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

package cltype

import "testing"

func FuzzFromBytes(f *testing.F) {
	// Seed corpus with valid type encodings
	f.Add([]byte{0x00})                         // Bool
	f.Add([]byte{0x08})                         // U512
	f.Add([]byte{0x0d, 0x0a})                   // Option(String)
	f.Add([]byte{0x0e, 0x13, 0x0a, 0x15})       // List(Tuple2(String, Any))
	f.Add([]byte{0x0f, 0x20, 0x00, 0x00, 0x00}) // ByteArray(32)
	f.Add([]byte{0x10, 0x04, 0x0a})             // Result(U32, String)
	f.Add(
		[]byte{0x11, 0x0a, 0x0e, 0x13, 0x0a, 0x15},
	) // Map(String, List(Tuple2(String, Any)))
	f.Add([]byte{0x14, 0x00, 0x09, 0x0b}) // Tuple3(Bool, Unit, Key)

	f.Fuzz(func(t *testing.T, data []byte) {
		parsed, _, err := FromBytes(data)
		if err != nil {
			return
		}
		// A parsed type must survive its own re-encoding
		reparsed, remainder, err := FromBytes(parsed.Bytes())
		if err != nil {
			t.Errorf("re-parse failed: %s", err)
			return
		}
		if len(remainder) != 0 {
			t.Errorf("%d bytes left unconsumed on re-parse", len(remainder))
		}
		if !reparsed.Equal(parsed) {
			t.Errorf("re-parsed type %s != %s", reparsed, parsed)
		}
	})
}
