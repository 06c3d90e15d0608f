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

import "reflect"

// NotLoaded is the placeholder for an association that exists but has not
// been fetched. Persistence layers store it in association fields; views
// render it as null.
var NotLoaded = notLoaded{}

type notLoaded struct{}

// Loaded implements Loader.
func (notLoaded) Loaded() bool { return false }

// String implements fmt.Stringer.
func (notLoaded) String() string { return "<not loaded>" }

// Loader is implemented by lazy association wrappers that know whether
// their value has been fetched.
type Loader interface {
	Loaded() bool
}

// Identifier is the reflection-free fast path for resource identity.
// Values implementing it never go through struct inspection.
type Identifier interface {
	// ResourceID returns the canonical string id of the resource.
	ResourceID() string
}

// IsAbsent reports whether v is nil, a typed nil pointer/map/slice/interface,
// or an association that has not been loaded.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return true
		}
	}
	if l, ok := v.(Loader); ok && !l.Loaded() {
		return true
	}
	return false
}
