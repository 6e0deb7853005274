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
	"fmt"

	"github.com/davidatwhiletrue/casper-js-sdk-sub001/cltype"
)

// Result is a two-branch value: one tag byte (1 = Ok, 0 = Err) followed by
// the selected branch's bytes. Both branch types are carried so the full
// CLType survives regardless of which branch is populated
type Result struct {
	okType    cltype.CLType
	errType   cltype.CLType
	isSuccess bool
	value     CLValue
}

// NewCLResultOk wraps an ok-branch value; errType describes the unpopulated
// err branch
func NewCLResultOk(val CLValue, errType cltype.CLType) *Result {
	return &Result{
		okType:    val.Type(),
		errType:   errType,
		isSuccess: true,
		value:     val,
	}
}

// NewCLResultErr wraps an err-branch value; okType describes the
// unpopulated ok branch
func NewCLResultErr(okType cltype.CLType, val CLValue) *Result {
	return &Result{
		okType:  okType,
		errType: val.Type(),
		value:   val,
	}
}

func (r *Result) IsSuccess() bool {
	return r.isSuccess
}

// Value returns the populated branch's value
func (r *Result) Value() CLValue {
	return r.value
}

func (r *Result) Type() cltype.CLType {
	return cltype.NewResult(r.okType, r.errType)
}

func (r *Result) Bytes() []byte {
	tag := byte(0)
	if r.isSuccess {
		tag = 1
	}
	return append([]byte{tag}, r.value.Bytes()...)
}

func (r *Result) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Ok(%s)", r.value)
	}
	return fmt.Sprintf("Err(%s)", r.value)
}

func (r *Result) parsed() any {
	if r.isSuccess {
		return map[string]any{"Ok": r.value.parsed()}
	}
	return map[string]any{"Err": r.value.parsed()}
}
