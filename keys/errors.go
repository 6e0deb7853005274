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

package keys

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidKeyFormat = errors.New("invalid key format")
	ErrChecksumMismatch = errors.New("checksummed hex mismatch")
)

// InvalidKeyFormatError indicates bytes or a string that don't form a
// valid key, URef or public key
type InvalidKeyFormatError struct {
	Kind   string
	Reason string
}

func (e InvalidKeyFormatError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Kind, e.Reason)
}

func (InvalidKeyFormatError) Is(target error) bool {
	return target == ErrInvalidKeyFormat
}
