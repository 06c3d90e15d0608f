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
	"net/url"

	"dirpx.dev/jsonview/apis"
)

// URLFor returns the canonical URL of d: the collection URL for root and
// collection data, the resource URL for a single instance. With a request
// context the URL is absolute.
func (v *View) URLFor(d apis.Data, rc *apis.RequestContext) string {
	if v.hooks.urlFor != nil {
		return v.hooks.urlFor(v, d, rc)
	}
	return DefaultURLFor(v, d, rc)
}

// DefaultURLFor builds "{namespace}/{typeURL}[/{id}]", prefixed with
// "{scheme}://{host}" when rc is present. A single instance without an id
// addresses the collection.
func DefaultURLFor(v *View, d apis.Data, rc *apis.RequestContext) string {
	p := v.opts.Namespace + "/" + v.TypeURL()
	if !d.IsCollection() && !d.IsRoot() {
		if id, ok := v.ID(d.One()); ok {
			p += "/" + url.PathEscape(id)
		}
	}
	if rc == nil {
		return p
	}
	return rc.Origin() + p
}

// URLForRelationship returns the relationship URL of d for name.
func (v *View) URLForRelationship(d apis.Data, name string, rc *apis.RequestContext) string {
	if v.hooks.urlForRelationship != nil {
		return v.hooks.urlForRelationship(v, d, name, rc)
	}
	return DefaultURLForRelationship(v, d, name, rc)
}

// DefaultURLForRelationship appends "/relationships/{name}" to URLFor.
func DefaultURLForRelationship(v *View, d apis.Data, name string, rc *apis.RequestContext) string {
	return v.URLFor(d, rc) + "/relationships/" + name
}

// RelatedURL returns the related-resource URL of d for name,
// "{URLFor}/{name}", for any apis.View.
func RelatedURL(v apis.View, d apis.Data, name string, rc *apis.RequestContext) string {
	return v.URLFor(d, rc) + "/" + name
}
