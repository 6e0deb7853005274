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

// Package clvalue implements the CLValue codec: self-describing typed
// values with a byte-exact binary encoding and a parallel JSON encoding,
// used for every contract argument, stored value and transaction payload.
//
// Values are built either from native inputs via the New* factories or
// from untrusted bytes via the parser entry points:
//
//   - FromBytesByType decodes one value of a known type from a buffer
//     prefix and returns the unconsumed remainder
//   - FromBytesWithType decodes the self-describing form, where the
//     buffer opens with the CLType's own binary encoding
//   - FromJSON/ToJSON convert the {"cl_type", "bytes", "parsed"} JSON
//     wire form
//
// Decoding is fail-fast: a malformed buffer produces an error from the
// taxonomy in errors.go and never a partial value.
package clvalue
