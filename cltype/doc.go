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

// Package cltype models the Casper virtual machine's recursive type
// grammar: the tagged tree of primitive and composite type descriptors
// that gives every CLValue its shape.
//
// Types exist in two wire forms that this package converts between:
//
//   - binary: a single tag byte per variant, with composites recursing
//     into their children (FromBytes, CLType.Bytes)
//   - JSON: a bare string for simple types ("U512") and a single-key
//     object for composites ({"List": inner}); FromRawJSON accepts both
//     and CLType.MarshalJSON emits the canonical form
//
// Simple types are shared singletons; composite constructors own their
// children, and trees never contain cycles.
package cltype
