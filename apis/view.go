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

import (
	"encoding/json"

	"github.com/stretchr/objx"
)

// Params is the loosely typed bag of query parameters handed through to the
// query layer. Views accept it but do not interpret it.
type Params = objx.Map

// View is the capability set a resource type exposes to renderers.
//
// Implementations must be immutable and safe for concurrent use. The
// default implementation lives in package view; hand-written
// implementations are accepted everywhere a View is.
type View interface {
	// Type returns the JSON:API resource type. Never empty.
	Type() string
	// Options returns the per-type configuration.
	Options() Options
	// ID returns the string id of v; ok is false when v has no identity
	// (nil or not loaded).
	ID(v any) (id string, ok bool)
	// TypeURL returns the URL path segment for the type.
	TypeURL() string
	// Fields returns the declared field names.
	Fields() []string
	// Attributes projects v onto the declared fields.
	Attributes(v any, rc *RequestContext) map[string]any
	// Relationships returns the relationship descriptor table.
	Relationships() map[string]Relationship
	// URLFor returns the canonical URL of d.
	URLFor(d Data, rc *RequestContext) string
	// URLForRelationship returns the relationship URL of d for name.
	URLForRelationship(d Data, name string, rc *RequestContext) string
	// Show renders exactly one resource.
	Show(v any, rc *RequestContext, params Params) Fragment
	// Index renders a collection, preserving order.
	Index(vs []any, rc *RequestContext, params Params) []Fragment
}

// Fragment is one rendered resource object.
type Fragment struct {
	Type          string                        `json:"type"`
	ID            string                        `json:"id,omitempty"`
	Attributes    map[string]any                `json:"attributes"`
	Relationships map[string]RelationshipObject `json:"relationships,omitempty"`
	Links         Links                         `json:"links"`
}

// Links is a JSON:API links object.
type Links struct {
	Self    string `json:"self,omitempty"`
	Related string `json:"related,omitempty"`
}

// RelationshipObject is one entry of a resource's relationships member.
type RelationshipObject struct {
	Links Links    `json:"links"`
	Data  *Linkage `json:"data,omitempty"`
}

// ResourceIdentifier identifies a related resource.
type ResourceIdentifier struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Linkage is relationship data: null or one identifier for to-one
// relationships, an array for to-many.
type Linkage struct {
	Many        bool
	Identifiers []ResourceIdentifier
}

// MarshalJSON implements json.Marshaler.
func (l Linkage) MarshalJSON() ([]byte, error) {
	if l.Many {
		if l.Identifiers == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(l.Identifiers)
	}
	if len(l.Identifiers) == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(l.Identifiers[0])
}
