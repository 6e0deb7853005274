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

// Package keys provides the key-shaped leaf types the CLValue codec
// treats as opaque: global-state keys, URefs, account public keys and
// account hashes, along with the checksummed hex rendering they share.
// Signing and verification are out of scope; keys here are carried for
// identity, hashing and wire encoding only.
package keys
