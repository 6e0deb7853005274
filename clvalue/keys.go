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
	"github.com/davidatwhiletrue/casper-js-sdk-sub001/keys"
)

// The key-shaped leaf types supply their own wire forms via the keys
// package; these wrappers only pair them with their CLType.

// Key wraps a global-state key
type Key struct {
	Value keys.Key
}

func NewCLKey(val keys.Key) Key {
	return Key{Value: val}
}

func (k Key) Type() cltype.CLType {
	return cltype.Key
}

func (k Key) Bytes() []byte {
	return k.Value.Bytes()
}

func (k Key) String() string {
	return k.Value.String()
}

func (k Key) parsed() any {
	return k.Value.String()
}

// URef wraps an unforgeable storage reference
type URef struct {
	Value keys.URef
}

func NewCLURef(val keys.URef) URef {
	return URef{Value: val}
}

func (u URef) Type() cltype.CLType {
	return cltype.URef
}

func (u URef) Bytes() []byte {
	return u.Value.Bytes()
}

func (u URef) String() string {
	return u.Value.String()
}

func (u URef) parsed() any {
	return u.Value.String()
}

// PublicKey wraps an account public key
type PublicKey struct {
	Value keys.PublicKey
}

func NewCLPublicKey(val keys.PublicKey) PublicKey {
	return PublicKey{Value: val}
}

func (p PublicKey) Type() cltype.CLType {
	return cltype.PublicKey
}

func (p PublicKey) Bytes() []byte {
	return p.Value.Bytes()
}

func (p PublicKey) String() string {
	return p.Value.String()
}

func (p PublicKey) parsed() any {
	return p.Value.String()
}
