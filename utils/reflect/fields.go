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

package reflect

import (
	"reflect"
	"strings"
	"sync"
)

// FieldIndex maps the names a struct's exported fields answer to onto
// their index paths. Promoted fields of embedded structs are included;
// shallower fields win over deeper ones.
type FieldIndex struct {
	tagged map[string][]int
	named  map[string][]int
	folded map[string][]int
}

// fieldKey ensures memoization respects the tag key in use.
type fieldKey struct {
	t   reflect.Type
	tag string
}

// fieldCache caches FieldIndex values by (struct type, tag key).
var fieldCache sync.Map // key: fieldKey, val: *FieldIndex

// Fields returns the FieldIndex of struct type t using tag as the primary
// struct tag key ("json" is always consulted after it).
// It returns nil when t is not a struct.
func Fields(t reflect.Type, tag string) *FieldIndex {
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	key := fieldKey{t: t, tag: tag}
	if v, ok := fieldCache.Load(key); ok {
		return v.(*FieldIndex)
	}

	fi := &FieldIndex{
		tagged: map[string][]int{},
		named:  map[string][]int{},
		folded: map[string][]int{},
	}
	// json names are weaker than names from the primary tag.
	jsonNames := map[string][]int{}
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() {
			continue
		}
		if name, ok := tagName(f.Tag, tag); ok {
			put(fi.tagged, name, f.Index)
		}
		if tag != "json" {
			if name, ok := tagName(f.Tag, "json"); ok {
				put(jsonNames, name, f.Index)
			}
		}
		put(fi.named, f.Name, f.Index)
		put(fi.folded, fold(f.Name), f.Index)
	}
	for name, idx := range jsonNames {
		if _, ok := fi.tagged[name]; !ok {
			fi.tagged[name] = idx
		}
	}

	actual, _ := fieldCache.LoadOrStore(key, fi)
	return actual.(*FieldIndex)
}

// Tagged returns the field whose tag names it name.
func (fi *FieldIndex) Tagged(name string) ([]int, bool) {
	idx, ok := fi.tagged[name]
	return idx, ok
}

// Named returns the field with Go name name.
func (fi *FieldIndex) Named(name string) ([]int, bool) {
	idx, ok := fi.named[name]
	return idx, ok
}

// Lookup resolves an attribute name: tag name first, then exact Go name,
// then a case-insensitive match ignoring underscores ("created_at" finds
// CreatedAt).
func (fi *FieldIndex) Lookup(name string) ([]int, bool) {
	if idx, ok := fi.tagged[name]; ok {
		return idx, true
	}
	if idx, ok := fi.named[name]; ok {
		return idx, true
	}
	idx, ok := fi.folded[fold(name)]
	return idx, ok
}

// Field returns the value of field idx in struct value v. It returns false
// when an embedded pointer on the path is nil.
func Field(v reflect.Value, idx []int) (reflect.Value, bool) {
	f, err := v.FieldByIndexErr(idx)
	if err != nil {
		return reflect.Value{}, false
	}
	return f, true
}

func put(m map[string][]int, name string, idx []int) {
	if old, ok := m[name]; ok && len(old) <= len(idx) {
		return
	}
	m[name] = idx
}

func tagName(st reflect.StructTag, key string) (string, bool) {
	v, ok := st.Lookup(key)
	if !ok {
		return "", false
	}
	name, _, _ := strings.Cut(v, ",")
	if name == "" || name == "-" {
		return "", false
	}
	return name, true
}

func fold(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", ""))
}
