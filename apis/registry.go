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

// Registry maps Go types and resource type names to views.
// Reads must be safe for concurrent use; writes happen at startup.
type Registry interface {
	// Register associates the nearest named type of t with v.
	// Re-registering the same (type, view) pair is a no-op; registering a
	// different view for a known type or resource type name is an error.
	Register(t reflect.Type, v View) error
	// Lookup returns the view registered for t.
	Lookup(t reflect.Type) (v View, ok bool)
	// LookupType returns the view registered under a resource type name.
	LookupType(name string) (v View, ok bool)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Entry
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// Entry is a single (Go type, view) association in a Registry snapshot.
type Entry struct {
	// Type is the registered reflect.Type.
	Type reflect.Type
	// View is the associated view.
	View View
}
