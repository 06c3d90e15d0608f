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
package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"dirpx.dev/jsonview/apis"
	"dirpx.dev/jsonview/config"
	uref "dirpx.dev/jsonview/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("jsonview(registry): nil reflect.Type provided")
	// ErrNilView is returned when a nil view is provided.
	ErrNilView = errors.New("jsonview(registry): nil view provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a type, or a resource type name, with a different view.
	ErrConflictingRegistration = errors.New("jsonview(registry): conflicting view registration")
)

// New constructs a Registry that normalizes types according to cfg.
func New(cfg apis.Config) apis.Registry {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &registry{cfg: cfg, log: config.Logger(cfg)}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// cfg is the configuration used for type normalization.
	cfg apis.Config
	// log receives registration diagnostics.
	log *slog.Logger
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// byType maps normalized reflect.Type to its view.
	byType sync.Map // map[reflect.Type]apis.View
	// byName maps resource type names to the registered Go type.
	byName sync.Map // map[string]reflect.Type
	// count tracks the number of registered entries.
	count int
}

// Register associates the nearest named type of t with v.
// It is idempotent for the same (type, view) pair.
func (r *registry) Register(t reflect.Type, v apis.View) error {
	// Validate inputs early.
	if t == nil {
		return ErrNilType
	}
	if v == nil {
		return ErrNilView
	}
	name := v.Type()
	if name == "" {
		return apis.ErrEmptyType
	}

	b, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.byType.Load(b); ok {
		if sameView(old.(apis.View), v) {
			return nil // idempotent re-registration
		}
		return fmt.Errorf("%w: %s already bound to %q", ErrConflictingRegistration, b, old.(apis.View).Type())
	}
	if ot, ok := r.byName.Load(name); ok {
		return fmt.Errorf("%w: type %q already bound to %s", ErrConflictingRegistration, name, ot.(reflect.Type))
	}

	r.byType.Store(b, v)
	r.byName.Store(name, b)
	r.count++
	r.log.Debug("view registered", "type", name, "go_type", b.String())
	return nil
}

// Lookup returns the view registered for t.
func (r *registry) Lookup(t reflect.Type) (apis.View, bool) {
	if t == nil {
		return nil, false
	}
	nt, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return nil, false
	}
	if v, ok := r.byType.Load(nt); ok {
		return v.(apis.View), true
	}
	return nil, false
}

// LookupType returns the view registered under a resource type name.
func (r *registry) LookupType(name string) (apis.View, bool) {
	t, ok := r.byName.Load(name)
	if !ok {
		return nil, false
	}
	if v, ok := r.byType.Load(t); ok {
		return v.(apis.View), true
	}
	return nil, false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.byType.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Type: key.(reflect.Type),
			View: value.(apis.View),
		})
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byType.Clear()
	r.byName.Clear()
	r.count = 0
}

// sameView compares views without panicking on non-comparable implementations.
func sameView(a, b apis.View) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) || !reflect.TypeOf(a).Comparable() {
		return false
	}
	return a == b
}
