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
	"dirpx.dev/jsonview/apis"
)

// Option configures a View during New.
type Option func(*View)

// WithConfig sets the process configuration (id field, tags, unwrap depth).
func WithConfig(cfg apis.Config) Option {
	return func(v *View) { v.cfg = cfg }
}

// WithConfigSource makes the view read its configuration from fn on every
// call, so it follows later reconfiguration. It takes precedence over
// WithConfig.
func WithConfigSource(fn func() apis.Config) Option {
	return func(v *View) { v.cfgFn = fn }
}

// WithResolver replaces the identity resolver chain.
func WithResolver(res apis.Resolver) Option {
	return func(v *View) { v.res = res }
}

// WithPluralizer replaces the text-inflection collaborator.
func WithPluralizer(p apis.Pluralizer) Option {
	return func(v *View) { v.plural = p }
}

// WithRegistry sets the registry used to resolve relationship targets by
// resource type name.
func WithRegistry(reg apis.Registry) Option {
	return func(v *View) { v.reg = reg }
}

// WithType overrides Type.
func WithType(fn func(v *View) string) Option {
	return func(v *View) { v.hooks.typ = fn }
}

// WithID overrides ID.
func WithID(fn func(v *View, inst any) (string, bool)) Option {
	return func(v *View) { v.hooks.id = fn }
}

// WithTypeURL overrides TypeURL.
func WithTypeURL(fn func(v *View) string) Option {
	return func(v *View) { v.hooks.typeURL = fn }
}

// WithAttributes overrides Attributes. The result is still restricted to
// the declared fields and trimmed when TrimNullAttributes is set.
func WithAttributes(fn func(v *View, inst any, rc *apis.RequestContext) map[string]any) Option {
	return func(v *View) { v.hooks.attributes = fn }
}

// WithRelationships overrides Relationships.
func WithRelationships(fn func(v *View) map[string]apis.Relationship) Option {
	return func(v *View) { v.hooks.relationships = fn }
}

// WithURLFor overrides URLFor.
func WithURLFor(fn func(v *View, d apis.Data, rc *apis.RequestContext) string) Option {
	return func(v *View) { v.hooks.urlFor = fn }
}

// WithURLForRelationship overrides URLForRelationship.
func WithURLForRelationship(fn func(v *View, d apis.Data, name string, rc *apis.RequestContext) string) Option {
	return func(v *View) { v.hooks.urlForRelationship = fn }
}

// WithShow overrides Show.
func WithShow(fn func(v *View, inst any, rc *apis.RequestContext, params apis.Params) apis.Fragment) Option {
	return func(v *View) { v.hooks.show = fn }
}

// WithIndex overrides Index.
func WithIndex(fn func(v *View, insts []any, rc *apis.RequestContext, params apis.Params) []apis.Fragment) Option {
	return func(v *View) { v.hooks.index = fn }
}
