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

import (
	"encoding/json"
	"fmt"
)

// The JSON grammar uses a bare string for simple types ("U512") and a
// single-key object for composites ({"List": inner}). This is the one
// parser for that grammar; every call site goes through it rather than
// re-deriving the shape locally.

// FromRawJSON parses a CLType from its JSON form. It accepts both the
// bare-string shorthand and the single-key object form
func FromRawJSON(data json.RawMessage) (CLType, error) {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		simple, ok := simpleTypesByName[name]
		if !ok {
			return nil, InvalidTypeJSONError{
				Reason: fmt.Sprintf("unknown type name %q", name),
			}
		}
		return simple, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, InvalidTypeJSONError{
			Reason: "expected string or object",
		}
	}
	if len(fields) != 1 {
		return nil, InvalidTypeJSONError{
			Reason: fmt.Sprintf(
				"expected single-key object, got %d keys",
				len(fields),
			),
		}
	}
	for key, raw := range fields {
		switch key {
		case "ByteArray":
			var size uint32
			if err := json.Unmarshal(raw, &size); err != nil {
				return nil, InvalidTypeJSONError{
					Reason: "ByteArray size must be a number",
				}
			}
			return NewByteArray(size), nil
		case "Option":
			inner, err := FromRawJSON(raw)
			if err != nil {
				return nil, err
			}
			return NewOption(inner), nil
		case "List":
			elem, err := FromRawJSON(raw)
			if err != nil {
				return nil, err
			}
			return NewList(elem), nil
		case "Map":
			return mapFromRawJSON(raw)
		case "Tuple1":
			elems, err := tupleElemsFromRawJSON(raw, 1)
			if err != nil {
				return nil, err
			}
			return NewTuple1(elems[0]), nil
		case "Tuple2":
			elems, err := tupleElemsFromRawJSON(raw, 2)
			if err != nil {
				return nil, err
			}
			return NewTuple2(elems[0], elems[1]), nil
		case "Tuple3":
			elems, err := tupleElemsFromRawJSON(raw, 3)
			if err != nil {
				return nil, err
			}
			return NewTuple3(elems[0], elems[1], elems[2]), nil
		case "Result":
			return resultFromRawJSON(raw)
		default:
			return nil, InvalidTypeJSONError{
				Reason: fmt.Sprintf("unknown type key %q", key),
			}
		}
	}
	// Unreachable, the map has exactly one entry
	return nil, InvalidTypeJSONError{Reason: "empty object"}
}

func mapFromRawJSON(data json.RawMessage) (CLType, error) {
	var fields struct {
		Key   json.RawMessage `json:"key"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, InvalidTypeJSONError{
			Reason: "Map expects {\"key\": ..., \"value\": ...}",
		}
	}
	if fields.Key == nil || fields.Value == nil {
		return nil, InvalidTypeJSONError{
			Reason: "Map requires both key and value types",
		}
	}
	keyType, err := FromRawJSON(fields.Key)
	if err != nil {
		return nil, err
	}
	valType, err := FromRawJSON(fields.Value)
	if err != nil {
		return nil, err
	}
	return NewMap(keyType, valType), nil
}

func resultFromRawJSON(data json.RawMessage) (CLType, error) {
	var fields struct {
		Ok  json.RawMessage `json:"ok"`
		Err json.RawMessage `json:"err"`
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, InvalidTypeJSONError{
			Reason: "Result expects {\"ok\": ..., \"err\": ...}",
		}
	}
	if fields.Ok == nil || fields.Err == nil {
		return nil, InvalidTypeJSONError{
			Reason: "Result requires both ok and err types",
		}
	}
	okType, err := FromRawJSON(fields.Ok)
	if err != nil {
		return nil, err
	}
	errType, err := FromRawJSON(fields.Err)
	if err != nil {
		return nil, err
	}
	return NewResult(okType, errType), nil
}

func tupleElemsFromRawJSON(
	data json.RawMessage,
	arity int,
) ([]CLType, error) {
	var rawElems []json.RawMessage
	if err := json.Unmarshal(data, &rawElems); err != nil {
		return nil, InvalidTypeJSONError{
			Reason: fmt.Sprintf("Tuple%d expects an array", arity),
		}
	}
	if len(rawElems) != arity {
		return nil, InvalidTypeJSONError{
			Reason: fmt.Sprintf(
				"Tuple%d expects %d element types, got %d",
				arity,
				arity,
				len(rawElems),
			),
		}
	}
	elems := make([]CLType, 0, arity)
	for _, raw := range rawElems {
		elem, err := FromRawJSON(raw)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
	return elems, nil
}
