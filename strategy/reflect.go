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
package strategy

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"dirpx.dev/jsonview/apis"
	uref "dirpx.dev/jsonview/utils/reflect"
)

// ErrNoID is raised when an instance exposes no id attribute. It is an
// authoring error and is never recovered by the view layer.
var ErrNoID = errors.New("jsonview(strategy): instance has no id attribute")

// NewReflectStrategy creates an apis.Strategy that reads the id through
// reflection, memoizing field lookups per type.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy is the universal fallback. Structs answer with the field
// tagged `<tag>:"id"` or, failing that, the field named cfg.IDField; maps
// with string keys answer with the "id" entry.
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// cacheKey ensures memoization respects all config knobs that affect resolution.
type cacheKey struct {
	t       reflect.Type
	idField string
	tag     string
}

// idFieldCache caches id field index paths by (type, config knobs).
// A nil path records that the type has no id field.
var idFieldCache sync.Map // key: cacheKey, val: []int

// TryResolve reads the id of v. It panics with ErrNoID when v has no id.
func (reflectStrategy) TryResolve(v any, cfg apis.Config) (string, bool, bool) {
	if v == nil {
		return "", false, false
	}
	rv, ok := uref.Indirect(reflect.ValueOf(v), cfg)
	if !ok {
		return "", false, true
	}

	switch rv.Kind() {
	case reflect.Struct:
		idx := idIndex(rv.Type(), cfg)
		if idx == nil {
			panic(fmt.Errorf("%w: %s", ErrNoID, rv.Type()))
		}
		f, ok := uref.Field(rv, idx)
		if !ok {
			return "", false, true
		}
		return Stringify(f.Interface())

	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			e := rv.MapIndex(reflect.ValueOf("id").Convert(rv.Type().Key()))
			if e.IsValid() {
				return Stringify(e.Interface())
			}
		}
	}
	panic(fmt.Errorf("%w: %s", ErrNoID, rv.Type()))
}

// idIndex resolves the id field of struct type t with memoization.
func idIndex(t reflect.Type, cfg apis.Config) []int {
	key := cacheKey{t: t, idField: cfg.IDField, tag: cfg.Tag}
	if v, ok := idFieldCache.Load(key); ok {
		return v.([]int)
	}

	var idx []int
	fi := uref.Fields(t, cfg.Tag)
	if i, ok := fi.Tagged("id"); ok {
		idx = i
	} else if i, ok := fi.Named(cfg.IDField); ok {
		idx = i
	}

	idFieldCache.Store(key, idx)
	return idx
}

// Stringify converts an id value to its string form. Absent values
// (nil, not loaded) report ok=false; handled is always true.
func Stringify(v any) (id string, ok bool, handled bool) {
	if apis.IsAbsent(v) {
		return "", false, true
	}
	switch x := v.(type) {
	case string:
		return x, true, true
	case []byte:
		return string(x), true, true
	case apis.Identifier:
		return x.ResourceID(), true, true
	case fmt.Stringer:
		return x.String(), true, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		return Stringify(rv.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true, true
	case reflect.String:
		return rv.String(), true, true
	}
	return fmt.Sprint(v), true, true
}
