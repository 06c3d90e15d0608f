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
// Package jsonview renders Go values as JSON:API resource objects.
//
// The unit of work is a view: the per-resource-type declaration of its
// type name, attribute fields, relationships and URL shape, plus the rules
// deriving ids, attribute maps, relationship links and canonical URLs from
// an instance and an optional request context. Views are defined once at
// startup and shared read-only by every request.
//
// # Packages
//
//   - apis: contracts and value types (View, Data, RequestContext, Fragment,
//     Relationship, NotLoaded, Registry, Resolver, Strategy, Builder).
//   - view: the default View with overridable capabilities.
//   - strategy, resolver: the identity chain (absent -> Identifier -> reflection).
//   - registry, builder: the view registry and its construction.
//   - config: process knobs and YAML view options.
//   - inflect: pluralization of type names.
//   - render: the render dispatcher; render/ginview binds it to gin.
//
// # Global state
//
// This package holds a read-mostly snapshot of configuration, registry,
// resolver and builder, published through an atomic pointer. Reads are
// lock-free:
//
//	v, ok := jsonview.Lookup(post)
//	id, ok := jsonview.ID(post)
//
// Writers (SetConfig, SetBuilder, SetExt, SetRegistry, SetResolver, SetAll)
// take a short build mutex, derive a new snapshot and swap it in. Layers
// replaced explicitly with SetRegistry/SetResolver are pinned and survive
// later rebuilds until unpinned.
//
// # Defining views
//
//	var Posts = jsonview.MustDefine(Post{}, view.Definition{
//		Options: apis.Options{Type: "post", Pluralize: true},
//		Fields:  []string{"id", "title", "body"},
//		Relationships: map[string]apis.Relationship{
//			"author": {Target: "user", Policy: apis.AlwaysInclude},
//		},
//	})
//
// Define wires the view to the published resolver and registry, so
// relationship targets declared by type name resolve whichever order the
// views are defined in.
//
// # Scope
//
// Walking relationship graphs into an "included" array, pagination, sparse
// fieldsets and sorting belong to the document assembler above this layer.
package jsonview
