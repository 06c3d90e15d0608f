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
package builder

import (
	"dirpx.dev/jsonview/apis"
	"dirpx.dev/jsonview/config"
	"dirpx.dev/jsonview/registry"
	"dirpx.dev/jsonview/resolver"
	"dirpx.dev/jsonview/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds a new apis.Registry for cfg. Views held by a previous
// registry are carried over; entries that no longer normalize under cfg are
// dropped with a warning on cfg's logger.
func (b *builder) BuildRegistry(cfg apis.Config, preg apis.Registry, _ any) apis.Registry {
	nreg := registry.New(cfg)
	if preg == nil {
		return nreg
	}
	log := config.Logger(cfg)
	for _, e := range preg.Entries() {
		if err := nreg.Register(e.Type, e.View); err != nil {
			log.Warn("view dropped on registry rebuild", "type", e.View.Type(), "go_type", e.Type.String(), "error", err)
		}
	}
	return nreg
}

// BuildResolver builds the default identity chain:
// absent (nil, not loaded) -> apis.Identifier -> reflection.
func (b *builder) BuildResolver(_ apis.Config, _ apis.Resolver, _ any) apis.Resolver {
	return resolver.New(
		strategy.NewAbsentStrategy(),
		strategy.NewIdentifierStrategy(),
		strategy.NewReflectStrategy(),
	)
}
