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
package render_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/objx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/jsonview/apis"
	"dirpx.dev/jsonview/render"
	"dirpx.dev/jsonview/view"
)

type Post struct {
	ID   int
	Text string
}

// recordingView wraps a view and records what the dispatcher handed it.
type recordingView struct {
	*view.View
	shown   []any
	indexed [][]any
	rc      *apis.RequestContext
	params  apis.Params
}

func (r *recordingView) Show(v any, rc *apis.RequestContext, params apis.Params) apis.Fragment {
	r.shown = append(r.shown, v)
	r.rc, r.params = rc, params
	return r.View.Show(v, rc, params)
}

func (r *recordingView) Index(vs []any, rc *apis.RequestContext, params apis.Params) []apis.Fragment {
	r.indexed = append(r.indexed, vs)
	r.rc, r.params = rc, params
	return r.View.Index(vs, rc, params)
}

func newRecording(t *testing.T) *recordingView {
	t.Helper()
	v, err := view.New(view.Definition{
		Options: apis.Options{Type: "post", Pluralize: true},
		Fields:  []string{"id", "text"},
	})
	require.NoError(t, err)
	return &recordingView{View: v}
}

func TestRender_Show(t *testing.T) {
	v := newRecording(t)
	d := render.New()
	rc := &apis.RequestContext{Scheme: "https", Host: "api.example.com"}

	out, err := d.Render(v, render.ActionShow, render.Bag(Post{ID: 1, Text: "a"}, rc, objx.Map{"include": "author"}))
	require.NoError(t, err)

	f, ok := out.(apis.Fragment)
	require.True(t, ok)
	assert.Equal(t, "1", f.ID)
	assert.Equal(t, "https://api.example.com/posts/1", f.Links.Self)
	assert.Equal(t, []any{Post{ID: 1, Text: "a"}}, v.shown)
	assert.Same(t, rc, v.rc)
	assert.Equal(t, "author", v.params.Get("include").Str())
}

func TestRender_ShowUnwrapsData(t *testing.T) {
	v := newRecording(t)

	f, err := render.New().Show(v, objx.Map{"data": apis.Single(Post{ID: 2})})
	require.NoError(t, err)
	assert.Equal(t, "2", f.ID)
	assert.Nil(t, v.rc)
	assert.NotNil(t, v.params)
}

func TestRender_Index(t *testing.T) {
	cases := []struct {
		name string
		data any
		want []string
	}{
		{"any slice", []any{Post{ID: 1}, Post{ID: 2}}, []string{"1", "2"}},
		{"typed slice", []Post{{ID: 3}, {ID: 4}}, []string{"3", "4"}},
		{"pointer slice", []*Post{{ID: 5}}, []string{"5"}},
		{"array", [2]Post{{ID: 6}, {ID: 7}}, []string{"6", "7"}},
		{"collection", apis.CollectionOf([]Post{{ID: 8}}), []string{"8"}},
		{"single data", apis.Single(Post{ID: 9}), []string{"9"}},
		{"root data", apis.Data{}, []string{}},
		{"nil", nil, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := newRecording(t)
			out, err := render.New().Index(v, render.Bag(tc.data, nil, nil))
			require.NoError(t, err)

			ids := make([]string, 0, len(out))
			for _, f := range out {
				ids = append(ids, f.ID)
			}
			assert.Equal(t, tc.want, ids)
			require.Len(t, v.indexed, 1)
		})
	}
}

func TestRender_ContextAndParamsForms(t *testing.T) {
	v := newRecording(t)
	d := render.New()

	_, err := d.Render(v, render.ActionShow, objx.Map{
		"data":    Post{ID: 1},
		"context": apis.RequestContext{Scheme: "http", Host: "h", Port: 8080},
		"params":  map[string]any{"page": 2},
	})
	require.NoError(t, err)
	require.NotNil(t, v.rc)
	assert.Equal(t, 8080, v.rc.Port)
	assert.Equal(t, 2, v.params.Get("page").Int())
}

func TestRender_Errors(t *testing.T) {
	v := newRecording(t)
	d := render.New()

	_, err := d.Render(nil, render.ActionShow, nil)
	assert.ErrorIs(t, err, render.ErrNilView)

	_, err = d.Render(v, "destroy", render.Bag(Post{ID: 1}, nil, nil))
	assert.ErrorIs(t, err, render.ErrUnknownAction)

	_, err = d.Render(v, render.ActionShow, objx.Map{"context": "http://h"})
	assert.ErrorIs(t, err, render.ErrInvalidBag)

	_, err = d.Render(v, render.ActionShow, objx.Map{"params": 42})
	assert.ErrorIs(t, err, render.ErrInvalidBag)

	_, err = d.Index(v, objx.Map{"data": Post{ID: 1}})
	assert.ErrorIs(t, err, render.ErrInvalidBag)

	assert.Empty(t, v.shown)
	assert.Empty(t, v.indexed)
}

func TestRender_Logs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	d := render.New(render.WithLogger(log))

	_, err := d.Index(newRecording(t), render.Bag([]Post{{ID: 1}}, nil, nil))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "action=index")
	assert.Contains(t, buf.String(), "count=1")

	buf.Reset()
	_, err = d.Render(newRecording(t), "bogus", nil)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestOneMany(t *testing.T) {
	assert.Equal(t, Post{ID: 1}, render.One(apis.Single(Post{ID: 1})))
	assert.Equal(t, Post{ID: 1}, render.One(Post{ID: 1}))
	assert.Nil(t, render.One(apis.Data{}))

	got, err := render.Many(apis.Collection())
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = render.Many("posts")
	assert.ErrorIs(t, err, render.ErrInvalidBag)
}
