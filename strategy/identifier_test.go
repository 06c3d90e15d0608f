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
package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/jsonview/apis"
	"dirpx.dev/jsonview/config"
	"dirpx.dev/jsonview/strategy"
)

type slug string

func (s slug) ResourceID() string { return "slug-" + string(s) }

func TestIdentifierStrategy(t *testing.T) {
	s := strategy.NewIdentifierStrategy()
	cfg := config.DefaultConfig()

	id, ok, handled := s.TryResolve(slug("a"), cfg)
	assert.True(t, handled)
	assert.True(t, ok)
	assert.Equal(t, "slug-a", id)

	_, _, handled = s.TryResolve(struct{ ID int }{1}, cfg)
	assert.False(t, handled, "non-Identifier values fall through")

	_, _, handled = s.TryResolve(nil, cfg)
	assert.False(t, handled)
}

type lazy struct{ loaded bool }

func (l *lazy) Loaded() bool { return l.loaded }

func TestAbsentStrategy(t *testing.T) {
	s := strategy.NewAbsentStrategy()
	cfg := config.DefaultConfig()

	var nilPtr *struct{ ID int }
	for name, v := range map[string]any{
		"nil":          nil,
		"typed nil":    nilPtr,
		"not loaded":   apis.NotLoaded,
		"loader false": &lazy{},
	} {
		_, ok, handled := s.TryResolve(v, cfg)
		assert.True(t, handled, name)
		assert.False(t, ok, name)
	}

	_, _, handled := s.TryResolve(&lazy{loaded: true}, cfg)
	assert.False(t, handled, "loaded values fall through")
	_, _, handled = s.TryResolve(struct{ ID int }{1}, cfg)
	assert.False(t, handled)
}
