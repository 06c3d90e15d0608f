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
// Package view is the default implementation of the apis.View contract.
//
// A view is declared once per resource type, usually at package level:
//
//	var Posts = view.MustNew(view.Definition{
//		Options: apis.Options{Type: "post", Namespace: "/api", Pluralize: true},
//		Fields:  []string{"id", "title", "body", "created_at"},
//		Relationships: map[string]apis.Relationship{
//			"author":   {Target: "user", Policy: apis.AlwaysInclude},
//			"comments": {Target: "comment"},
//		},
//	}, view.WithRegistry(jsonview.Registry()))
//
// and rendered per request:
//
//	frag := Posts.Show(post, rc, nil)
//	url := Posts.URLFor(apis.Single(post), rc) // https://api.example.com/api/posts/5
//
// # Overrides
//
// Every capability (Type, ID, TypeURL, Attributes, Relationships, URLFor,
// URLForRelationship, Show, Index) has a Default* implementation and a
// With* option replacing it. Replacements receive the *View and may call
// both the other capabilities and the defaults:
//
//	view.WithAttributes(func(v *view.View, inst any, rc *apis.RequestContext) map[string]any {
//		attrs := view.DefaultAttributes(v, inst, rc)
//		attrs["title"] = strings.ToUpper(attrs["title"].(string))
//		return attrs
//	})
//
// An Attributes replacement is still restricted to the declared fields.
//
// # Absent data
//
// nil instances, apis.NotLoaded and apis.Loader values reporting
// Loaded() == false render as null ids and empty attributes. They never
// produce errors. Missing id attributes and unknown URL schemes are
// authoring errors and panic.
package view
