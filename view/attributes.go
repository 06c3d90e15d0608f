/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/
package view

import (
	"reflect"

	"dirpx.dev/jsonview/apis"
	uref "dirpx.dev/jsonview/utils/reflect"
)

// Attributes projects inst onto the declared fields. "id" is never an
// attribute. Declared fields missing from inst are nil, and nil values are
// dropped when TrimNullAttributes is set. The map returned by a
// WithAttributes hook is read, never modified.
func (v *View) Attributes(inst any, rc *apis.RequestContext) map[string]any {
	if v.hooks.attributes == nil {
		return DefaultAttributes(v, inst, rc)
	}
	src := v.hooks.attributes(v, inst, rc)
	out := make(map[string]any, len(src))
	for k, val := range src {
		if _, ok := v.fieldSet[k]; !ok || k == "id" {
			continue
		}
		if v.opts.TrimNullAttributes && apis.IsAbsent(val) {
			continue
		}
		out[k] = val
	}
	return out
}

// DefaultAttributes is the reflection-based attribute extractor. Structs
// (and pointers to them) are matched by tag, Go name, then folded Go name;
// maps with string keys by exact key. The request context is not consulted.
func DefaultAttributes(v *View, inst any, _ *apis.RequestContext) map[string]any {
	out := make(map[string]any, len(v.fields))
	if apis.IsAbsent(inst) {
		return out
	}
	cfg := v.Config()
	rv, ok := uref.Indirect(reflect.ValueOf(inst), cfg)
	if !ok {
		return out
	}
	for _, name := range v.fields {
		if name == "id" {
			continue
		}
		val, _ := fieldValue(rv, name, cfg)
		if apis.IsAbsent(val) {
			if v.opts.TrimNullAttributes {
				continue
			}
			val = nil
		}
		out[name] = val
	}
	return out
}

// fieldValue returns the raw value of the named field of rv. found is false
// when rv has no such field.
func fieldValue(rv reflect.Value, name string, cfg apis.Config) (val any, found bool) {
	switch rv.Kind() {
	case reflect.Struct:
		idx, ok := uref.Fields(rv.Type(), cfg.Tag).Lookup(name)
		if !ok {
			return nil, false
		}
		f, ok := uref.Field(rv, idx)
		if !ok {
			return nil, true
		}
		return f.Interface(), true

	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return nil, false
		}
		e := rv.MapIndex(reflect.ValueOf(name).Convert(kt))
		if !e.IsValid() {
			return nil, false
		}
		return e.Interface(), true
	}
	return nil, false
}
