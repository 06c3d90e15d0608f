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
// Package inflect is the text-inflection collaborator used to pluralize
// resource type names in URLs.
package inflect

import (
	"sync"

	"github.com/jinzhu/inflection"

	"dirpx.dev/jsonview/apis"
)

// Default returns the process-wide pluralizer backed by jinzhu/inflection.
func Default() apis.Pluralizer {
	return english{}
}

type english struct{}

// Plural implements apis.Pluralizer.
func (english) Plural(word string) string {
	return inflection.Plural(word)
}

// inflection keeps its rule tables in package globals.
var mu sync.Mutex

// Irregular registers an irregular singular/plural pair with the default
// pluralizer, e.g. Irregular("person", "people").
// Call it during startup, before views render.
func Irregular(singular, plural string) {
	mu.Lock()
	defer mu.Unlock()
	inflection.AddIrregular(singular, plural)
}

// Uncountable registers words whose plural equals the singular.
// Call it during startup, before views render.
func Uncountable(words ...string) {
	mu.Lock()
	defer mu.Unlock()
	inflection.AddUncountable(words...)
}

// Static returns a pluralizer that consults overrides first and falls back
// to p. It never touches global inflection state.
func Static(p apis.Pluralizer, overrides map[string]string) apis.Pluralizer {
	if p == nil {
		p = Default()
	}
	m := make(map[string]string, len(overrides))
	for k, v := range overrides {
		m[k] = v
	}
	return apis.PluralizerFunc(func(word string) string {
		if pl, ok := m[word]; ok {
			return pl
		}
		return p.Plural(word)
	})
}
