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
	"reflect"

	"dirpx.dev/jsonview/apis"
	uref "dirpx.dev/jsonview/utils/reflect"
)

// Show renders exactly one resource.
func (v *View) Show(inst any, rc *apis.RequestContext, params apis.Params) apis.Fragment {
	if v.hooks.show != nil {
		return v.hooks.show(v, inst, rc, params)
	}
	return DefaultShow(v, inst, rc, params)
}

// DefaultShow assembles type, id, attributes, the self link and one
// relationship object per descriptor. AlwaysInclude relationships whose
// value on inst is present and loaded also carry linkage data.
func DefaultShow(v *View, inst any, rc *apis.RequestContext, _ apis.Params) apis.Fragment {
	d := apis.Single(inst)
	f := apis.Fragment{
		Type:       v.Type(),
		Attributes: v.Attributes(inst, rc),
		Links:      apis.Links{Self: v.URLFor(d, rc)},
	}
	if id, ok := v.ID(inst); ok {
		f.ID = id
	}

	rels := v.Relationships()
	if len(rels) == 0 {
		return f
	}
	f.Relationships = make(map[string]apis.RelationshipObject, len(rels))
	for name, rel := range rels {
		obj := apis.RelationshipObject{
			Links: apis.Links{
				Self:    v.URLForRelationship(d, name, rc),
				Related: RelatedURL(v, d, name, rc),
			},
		}
		if rel.Policy == apis.AlwaysInclude {
			if l, ok := v.linkage(inst, name, rel); ok {
				obj.Data = &l
			}
		}
		f.Relationships[name] = obj
	}
	return f
}

// Index renders a collection, preserving order.
func (v *View) Index(insts []any, rc *apis.RequestContext, params apis.Params) []apis.Fragment {
	if v.hooks.index != nil {
		return v.hooks.index(v, insts, rc, params)
	}
	return DefaultIndex(v, insts, rc, params)
}

// DefaultIndex calls Show for every instance.
func DefaultIndex(v *View, insts []any, rc *apis.RequestContext, params apis.Params) []apis.Fragment {
	out := make([]apis.Fragment, 0, len(insts))
	for _, inst := range insts {
		out = append(out, v.Show(inst, rc, params))
	}
	return out
}

// Target resolves the view a relationship points at: the pinned View, or
// the view registered under Target in reg.
func Target(reg apis.Registry, rel apis.Relationship) (apis.View, bool) {
	if rel.View != nil {
		return rel.View, true
	}
	if reg == nil || rel.Target == "" {
		return nil, false
	}
	return reg.LookupType(rel.Target)
}

// linkage reads relationship name from inst. It reports false when inst
// has no such field or the association has not been loaded.
func (v *View) linkage(inst any, name string, rel apis.Relationship) (apis.Linkage, bool) {
	if apis.IsAbsent(inst) {
		return apis.Linkage{}, false
	}
	cfg := v.Config()
	rv, ok := uref.Indirect(reflect.ValueOf(inst), cfg)
	if !ok {
		return apis.Linkage{}, false
	}
	val, found := fieldValue(rv, name, cfg)
	if !found {
		return apis.Linkage{}, false
	}
	if l, ok := val.(apis.Loader); ok && !l.Loaded() {
		return apis.Linkage{}, false
	}

	typ := rel.Target
	idOf := v.ID
	if tv, ok := Target(v.reg, rel); ok {
		typ = tv.Type()
		idOf = tv.ID
	}

	if val == nil {
		return apis.Linkage{}, true
	}
	rval := reflect.ValueOf(val)
	switch rval.Kind() {
	case reflect.Slice, reflect.Array:
		l := apis.Linkage{Many: true, Identifiers: make([]apis.ResourceIdentifier, 0, rval.Len())}
		for i := 0; i < rval.Len(); i++ {
			if id, ok := idOf(rval.Index(i).Interface()); ok {
				l.Identifiers = append(l.Identifiers, apis.ResourceIdentifier{Type: typ, ID: id})
			}
		}
		return l, true
	}
	if id, ok := idOf(val); ok {
		return apis.Linkage{Identifiers: []apis.ResourceIdentifier{{Type: typ, ID: id}}}, true
	}
	return apis.Linkage{}, true
}
