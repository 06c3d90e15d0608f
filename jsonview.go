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

package jsonview

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/jsonview/apis"
	"dirpx.dev/jsonview/builder"
	"dirpx.dev/jsonview/config"
	"dirpx.dev/jsonview/view"
)

// init initializes the global state.
func init() {
	// Initialize state with default cfg, reg, and res.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.reg = b.BuildRegistry(s.cfg, nil, nil)
	s.res = b.BuildResolver(s.cfg, nil, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("jsonview: builder returned nil registry")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("jsonview: builder returned nil resolver")
)

// ID resolves the id of v using the global resolver and configuration.
// ok is false for nil and not-loaded values.
func ID(v any) (id string, ok bool) {
	s := st.Load()
	return s.res.Resolve(v, s.cfg)
}

// Register binds the Go type of sample to v in the global registry.
func Register(sample any, v apis.View) error {
	return RegisterType(reflect.TypeOf(sample), v)
}

// RegisterType binds t to v in the global registry.
func RegisterType(t reflect.Type, v apis.View) error {
	return st.Load().reg.Register(t, v)
}

// Lookup returns the view registered for the Go type of v.
func Lookup(v any) (apis.View, bool) {
	return st.Load().reg.Lookup(reflect.TypeOf(v))
}

// LookupType returns the view registered under a resource type name.
func LookupType(name string) (apis.View, bool) {
	return st.Load().reg.LookupType(name)
}

// Define builds a view wired to the global state and registers it for the
// Go type of sample. The view follows later SetConfig/SetResolver/SetRegistry
// calls for identity, attribute and relationship resolution.
func Define(sample any, def view.Definition, opts ...view.Option) (*view.View, error) {
	base := []view.Option{
		view.WithConfigSource(Config),
		view.WithResolver(liveResolver{}),
		view.WithRegistry(liveRegistry{}),
	}
	v, err := view.New(def, append(base, opts...)...)
	if err != nil {
		return nil, err
	}
	if err := Register(sample, v); err != nil {
		return nil, err
	}
	return v, nil
}

// MustDefine is like Define but panics on error.
func MustDefine(sample any, def view.Definition, opts ...view.Option) *view.View {
	v, err := Define(sample, def, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// SetAll explicitly sets all global state components.
//
// Nil arguments rebuild the corresponding layer with the (new) builder and
// unpin it, except for ext which is always replaced. Non-nil reg and res
// are pinned. Tests use SetAll to get a deterministic snapshot.
func SetAll(cfg *apis.Config, ext any, reg apis.Registry, res apis.Resolver, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	if cfg != nil {
		next.cfg = *cfg
	}
	if bld != nil {
		next.bld = bld
	}
	next.ext = ext
	next.reg, next.preg = reg, reg != nil
	next.res, next.pres = res, res != nil
	if next.reg == nil {
		next.reg = next.bld.BuildRegistry(next.cfg, old.reg, next.ext)
	}
	if next.res == nil {
		next.res = next.bld.BuildResolver(next.cfg, old.res, next.ext)
	}
	publish(&next)
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration to cfg and rebuilds the layers
// that are not pinned. Registered views are carried over by the default
// builder.
func SetConfig(cfg apis.Config) {
	update(func(s *state) { s.cfg = cfg })
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry replaces and pins the global registry. A nil reg is ignored.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}
	update(func(s *state) { s.reg, s.preg = reg, true })
}

// Resolver returns the global identity resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver replaces and pins the global resolver. A nil res is ignored.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}
	update(func(s *state) { s.res, s.pres = res, true })
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder replaces the global builder and rebuilds unpinned layers.
// A nil b is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	update(func(s *state) { s.bld = b })
}

// SetExt replaces the extension payload and rebuilds unpinned layers.
func SetExt[T any](ext T) {
	update(func(s *state) { s.ext = ext })
}

// ExtAs returns the extension payload as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsRegistryPinned returns whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry stops SetConfig/SetBuilder/SetExt from rebuilding the registry.
func PinRegistry() {
	pin(func(s *state) { s.preg = true })
}

// UnpinRegistry lets the registry be rebuilt again.
func UnpinRegistry() {
	pin(func(s *state) { s.preg = false })
}

// IsResolverPinned returns whether the global resolver is pinned.
func IsResolverPinned() bool {
	return st.Load().pres
}

// PinResolver stops SetConfig/SetBuilder/SetExt from rebuilding the resolver.
func PinResolver() {
	pin(func(s *state) { s.pres = true })
}

// UnpinResolver lets the resolver be rebuilt again.
func UnpinResolver() {
	pin(func(s *state) { s.pres = false })
}

// update applies mutate to a copy of the current state, rebuilds unpinned
// layers from the old ones, and publishes the result.
func update(mutate func(*state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	mutate(&next)
	if !next.preg {
		next.reg = next.bld.BuildRegistry(next.cfg, old.reg, next.ext)
	}
	if !next.pres {
		next.res = next.bld.BuildResolver(next.cfg, old.res, next.ext)
	}
	publish(&next)
}

// pin flips pin flags without rebuilding anything.
func pin(mutate func(*state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	mutate(&next)
	publish(&next)
}

// publish validates s and stores it. Callers hold buildMu.
func publish(s *state) {
	if s.reg == nil {
		panic(ErrNilRegistry)
	}
	if s.res == nil {
		panic(ErrNilResolver)
	}
	st.Store(s)
}

// liveRegistry forwards to whatever registry is currently published, so
// views built by Define survive registry rebuilds.
type liveRegistry struct{}

func (liveRegistry) Register(t reflect.Type, v apis.View) error { return Registry().Register(t, v) }
func (liveRegistry) Lookup(t reflect.Type) (apis.View, bool) { return Registry().Lookup(t) }
func (liveRegistry) LookupType(name string) (apis.View, bool) { return Registry().LookupType(name) }
func (liveRegistry) Entries() []apis.Entry { return Registry().Entries() }
func (liveRegistry) Count() int { return Registry().Count() }
func (liveRegistry) Reset() { Registry().Reset() }

// liveResolver forwards to the currently published resolver and config.
type liveResolver struct{}

func (liveResolver) Resolve(v any, _ apis.Config) (string, bool) { return ID(v) }

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global state.
var st atomic.Pointer[state]

// state is the global state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers copy the current state, change the copy and
// swap it in.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// ext is the extension payload handed to the builder.
	ext any
	// reg is the global view registry.
	reg apis.Registry
	// res is the global identity resolver.
	res apis.Resolver
	// bld builds reg and res.
	bld apis.Builder
	// preg indicates whether reg is pinned.
	preg bool
	// pres indicates whether res is pinned.
	pres bool
}
