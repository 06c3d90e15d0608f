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
package inflect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/jsonview/apis"
	"dirpx.dev/jsonview/inflect"
)

func TestDefault(t *testing.T) {
	p := inflect.Default()
	for in, want := range map[string]string{
		"post":     "posts",
		"category": "categories",
		"person":   "people",
		"status":   "statuses",
	} {
		assert.Equal(t, want, p.Plural(in), in)
	}
}

func TestIrregularAndUncountable(t *testing.T) {
	inflect.Irregular("octopus", "octopodes")
	inflect.Uncountable("metadata")

	p := inflect.Default()
	assert.Equal(t, "octopodes", p.Plural("octopus"))
	assert.Equal(t, "metadata", p.Plural("metadata"))
}

func TestStatic(t *testing.T) {
	p := inflect.Static(nil, map[string]string{"cactus": "cacti"})
	assert.Equal(t, "cacti", p.Plural("cactus"))
	assert.Equal(t, "posts", p.Plural("post"))

	upper := apis.PluralizerFunc(func(w string) string { return w + "Z" })
	overrides := map[string]string{"a": "b"}
	p = inflect.Static(upper, overrides)
	overrides["a"] = "mutated"
	assert.Equal(t, "b", p.Plural("a"))
	assert.Equal(t, "cZ", p.Plural("c"))
}
