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

package apis

// Data is what a URL or render call is about: one resource, a collection
// of resources, or nothing (the zero value, addressed by the collection URL).
type Data struct {
	one        any
	many       []any
	collection bool
}

// Single wraps one resource instance.
func Single(v any) Data {
	return Data{one: v}
}

// Collection wraps a list of resource instances.
func Collection(vs ...any) Data {
	if vs == nil {
		vs = []any{}
	}
	return Data{many: vs, collection: true}
}

// CollectionOf wraps a typed slice without the caller converting it to []any.
func CollectionOf[T any](vs []T) Data {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return Data{many: out, collection: true}
}

// IsCollection reports whether d was built by Collection or CollectionOf.
func (d Data) IsCollection() bool { return d.collection }

// IsRoot reports whether d carries no instance at all.
func (d Data) IsRoot() bool { return !d.collection && d.one == nil }

// One returns the single instance, or nil for collections and root data.
func (d Data) One() any { return d.one }

// Many returns the collection members, or nil for single and root data.
func (d Data) Many() []any { return d.many }
