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
// Package render adapts a host framework's generic render call, a named
// action plus a loosely typed parameter bag, to apis.View Show and Index.
//
// The bag recognizes three keys:
//
//	data     the instance (show) or instances (index); apis.Data or any slice
//	context  *apis.RequestContext, optional
//	params   objx.Map or map[string]any, optional; handed through to the view
//
// Dispatch is pure routing: no business logic lives here.
package render

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/stretchr/objx"

	"dirpx.dev/jsonview/apis"
)

const (
	// ActionShow renders one resource.
	ActionShow = "show"
	// ActionIndex renders a collection.
	ActionIndex = "index"
)

var (
	// ErrUnknownAction is returned for actions other than show and index.
	ErrUnknownAction = errors.New("jsonview(render): unknown action")
	// ErrNilView is returned when no view is given.
	ErrNilView = errors.New("jsonview(render): nil view")
	// ErrInvalidBag is returned when a bag entry has an unsupported type.
	ErrInvalidBag = errors.New("jsonview(render): invalid parameter bag")
)

// Dispatcher routes render actions to views. The zero value is not usable;
// construct with New.
type Dispatcher struct {
	log *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the dispatcher logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.log = l
		}
	}
}

// New constructs a Dispatcher.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Render dispatches action to v. It returns an apis.Fragment for show and
// a []apis.Fragment for index.
func (d *Dispatcher) Render(v apis.View, action string, bag objx.Map) (any, error) {
	if v == nil {
		return nil, ErrNilView
	}
	rc, err := contextOf(bag)
	if err != nil {
		return nil, err
	}
	params, err := paramsOf(bag)
	if err != nil {
		return nil, err
	}
	data := bag.Get("data").Data()

	switch action {
	case ActionShow:
		d.log.Debug("render", "action", action, "type", v.Type())
		return v.Show(One(data), rc, params), nil
	case ActionIndex:
		insts, err := Many(data)
		if err != nil {
			return nil, err
		}
		d.log.Debug("render", "action", action, "type", v.Type(), "count", len(insts))
		return v.Index(insts, rc, params), nil
	}
	d.log.Warn("unknown render action", "action", action, "type", v.Type())
	return nil, fmt.Errorf("%w: %q", ErrUnknownAction, action)
}

// Show is Render with ActionShow, returning the typed fragment.
func (d *Dispatcher) Show(v apis.View, bag objx.Map) (apis.Fragment, error) {
	out, err := d.Render(v, ActionShow, bag)
	if err != nil {
		return apis.Fragment{}, err
	}
	return out.(apis.Fragment), nil
}

// Index is Render with ActionIndex, returning the typed fragments.
func (d *Dispatcher) Index(v apis.View, bag objx.Map) ([]apis.Fragment, error) {
	out, err := d.Render(v, ActionIndex, bag)
	if err != nil {
		return nil, err
	}
	return out.([]apis.Fragment), nil
}

// Bag builds a parameter bag.
func Bag(data any, rc *apis.RequestContext, params apis.Params) objx.Map {
	return objx.Map{"data": data, "context": rc, "params": params}
}

// One extracts the single instance carried by data.
func One(data any) any {
	if d, ok := data.(apis.Data); ok {
		return d.One()
	}
	return data
}

// Many extracts the instances carried by data. apis.Data values and slices
// of any element type are accepted; nil yields an empty collection.
func Many(data any) ([]any, error) {
	switch x := data.(type) {
	case nil:
		return []any{}, nil
	case apis.Data:
		if x.IsCollection() {
			return x.Many(), nil
		}
		if x.IsRoot() {
			return []any{}, nil
		}
		return []any{x.One()}, nil
	case []any:
		return x, nil
	}
	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: data of type %T is not a collection", ErrInvalidBag, data)
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

func contextOf(bag objx.Map) (*apis.RequestContext, error) {
	switch x := bag.Get("context").Data().(type) {
	case nil:
		return nil, nil
	case *apis.RequestContext:
		return x, nil
	case apis.RequestContext:
		return &x, nil
	default:
		return nil, fmt.Errorf("%w: context of type %T", ErrInvalidBag, x)
	}
}

func paramsOf(bag objx.Map) (apis.Params, error) {
	switch x := bag.Get("params").Data().(type) {
	case nil:
		return objx.Map{}, nil
	case objx.Map:
		return x, nil
	case map[string]any:
		return objx.New(x), nil
	default:
		return nil, fmt.Errorf("%w: params of type %T", ErrInvalidBag, x)
	}
}
