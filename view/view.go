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
	"errors"
	"fmt"
	"sync"

	"dirpx.dev/jsonview/apis"
	"dirpx.dev/jsonview/builder"
	"dirpx.dev/jsonview/config"
	"dirpx.dev/jsonview/inflect"
)

var (
	// ErrNoFields is returned when a definition does not declare its fields.
	ErrNoFields = errors.New("jsonview(view): fields not declared")
	// ErrDuplicateField is returned when a field is declared twice.
	ErrDuplicateField = errors.New("jsonview(view): duplicate field")
	// ErrFieldConflict is returned when a relationship shares its name with
	// a declared attribute field.
	ErrFieldConflict = errors.New("jsonview(view): relationship name collides with field")
	// ErrNoTarget is returned when a relationship names no target view.
	ErrNoTarget = errors.New("jsonview(view): relationship has no target")
)

// Definition declares a resource type. It is consumed by New and never
// referenced afterwards.
type Definition struct {
	apis.Options
	// Fields is the ordered set of field names. "id" may be listed; it is
	// rendered as the resource id, never as an attribute. A nil slice is
	// an authoring error; an empty one declares a type without attributes.
	Fields []string
	// Relationships is the relationship descriptor table.
	Relationships map[string]apis.Relationship
}

// View is the default apis.View implementation. Each capability can be
// replaced with a With* option; replacements receive the View so they can
// call the other capabilities or the Default* implementations.
//
// A View is immutable after New and safe for concurrent use.
type View struct {
	opts     apis.Options
	fields   []string
	fieldSet map[string]struct{}
	rels     map[string]apis.Relationship

	cfg    apis.Config
	cfgFn  func() apis.Config
	res    apis.Resolver
	plural apis.Pluralizer
	reg    apis.Registry

	typeURL     string
	typeURLOnce sync.Once

	hooks hooks
}

// Ensure View implements apis.View.
var _ apis.View = (*View)(nil)

type hooks struct {
	typ                func(*View) string
	id                 func(*View, any) (string, bool)
	typeURL            func(*View) string
	attributes         func(*View, any, *apis.RequestContext) map[string]any
	relationships      func(*View) map[string]apis.Relationship
	urlFor             func(*View, apis.Data, *apis.RequestContext) string
	urlForRelationship func(*View, apis.Data, string, *apis.RequestContext) string
	show               func(*View, any, *apis.RequestContext, apis.Params) apis.Fragment
	index              func(*View, []any, *apis.RequestContext, apis.Params) []apis.Fragment
}

// New validates def and builds a View.
func New(def Definition, opts ...Option) (*View, error) {
	if err := def.Options.Validate(); err != nil {
		return nil, err
	}
	if def.Fields == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoFields, def.Type)
	}

	v := &View{
		opts:     def.Options,
		fields:   make([]string, 0, len(def.Fields)),
		fieldSet: make(map[string]struct{}, len(def.Fields)),
		rels:     make(map[string]apis.Relationship, len(def.Relationships)),
		cfg:      config.DefaultConfig(),
	}
	for _, f := range def.Fields {
		if _, dup := v.fieldSet[f]; dup {
			return nil, fmt.Errorf("%w: %q.%s", ErrDuplicateField, def.Type, f)
		}
		v.fieldSet[f] = struct{}{}
		v.fields = append(v.fields, f)
	}
	for name, rel := range def.Relationships {
		if _, clash := v.fieldSet[name]; clash {
			return nil, fmt.Errorf("%w: %q.%s", ErrFieldConflict, def.Type, name)
		}
		if rel.View == nil && rel.Target == "" {
			return nil, fmt.Errorf("%w: %q.%s", ErrNoTarget, def.Type, name)
		}
		v.rels[name] = rel
	}

	for _, opt := range opts {
		opt(v)
	}
	if v.res == nil {
		v.res = builder.New().BuildResolver(v.cfg, nil, nil)
	}
	if v.plural == nil {
		v.plural = inflect.Default()
	}
	if v.Type() == "" {
		return nil, apis.ErrEmptyType
	}
	return v, nil
}

// MustNew is like New but panics on configuration errors. It suits
// package-level view declarations.
func MustNew(def Definition, opts ...Option) *View {
	v, err := New(def, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// FromOptions builds a View from options loaded with config.LoadViews.
func FromOptions(o apis.Options, fields []string, rels map[string]apis.Relationship, opts ...Option) (*View, error) {
	return New(Definition{Options: o, Fields: fields, Relationships: rels}, opts...)
}

// Type returns the resource type.
func (v *View) Type() string {
	if v.hooks.typ != nil {
		return v.hooks.typ(v)
	}
	return v.opts.Type
}

// Options returns the per-type configuration.
func (v *View) Options() apis.Options { return v.opts }

// Config returns the process configuration the view reads instances with:
// the live source set by WithConfigSource, or the one set by WithConfig.
func (v *View) Config() apis.Config {
	if v.cfgFn != nil {
		return v.cfgFn()
	}
	return v.cfg
}

// Registry returns the registry used to resolve relationship targets, if any.
func (v *View) Registry() apis.Registry { return v.reg }

// Fields returns a copy of the declared field names in declaration order.
func (v *View) Fields() []string {
	return append([]string(nil), v.fields...)
}

// ID returns the string id of inst; ok is false for nil and not-loaded
// instances.
func (v *View) ID(inst any) (string, bool) {
	if v.hooks.id != nil {
		return v.hooks.id(v, inst)
	}
	return DefaultID(v, inst)
}

// DefaultID resolves ids through the view's resolver chain.
func DefaultID(v *View, inst any) (string, bool) {
	return v.res.Resolve(inst, v.Config())
}

// TypeURL returns the URL segment for the type.
func (v *View) TypeURL() string {
	if v.hooks.typeURL != nil {
		return v.hooks.typeURL(v)
	}
	return DefaultTypeURL(v)
}

// DefaultTypeURL returns the pluralized type when Pluralize is set, the type
// otherwise. The result is computed once.
func DefaultTypeURL(v *View) string {
	v.typeURLOnce.Do(func() {
		v.typeURL = v.Type()
		if v.opts.Pluralize {
			v.typeURL = v.plural.Plural(v.typeURL)
		}
	})
	return v.typeURL
}

// Relationships returns a copy of the relationship descriptor table.
func (v *View) Relationships() map[string]apis.Relationship {
	if v.hooks.relationships != nil {
		return v.hooks.relationships(v)
	}
	return DefaultRelationships(v)
}

// DefaultRelationships returns a copy of the declared relationships.
func DefaultRelationships(v *View) map[string]apis.Relationship {
	out := make(map[string]apis.Relationship, len(v.rels))
	for k, r := range v.rels {
		out[k] = r
	}
	return out
}
