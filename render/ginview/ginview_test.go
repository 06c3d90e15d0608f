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
package ginview_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/jsonview/apis"
	"dirpx.dev/jsonview/render"
	"dirpx.dev/jsonview/render/ginview"
	"dirpx.dev/jsonview/view"
)

type Post struct {
	ID   int
	Text string
}

var posts = []Post{{ID: 1, Text: "first"}, {ID: 2, Text: "second"}}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	v, err := view.New(view.Definition{
		Options: apis.Options{Type: "post", Namespace: "/api", Pluralize: true},
		Fields:  []string{"id", "text"},
	})
	require.NoError(t, err)

	r := ginview.New(nil)
	e := gin.New()
	e.GET("/api/posts", r.Handler(v, render.ActionIndex, func(*gin.Context) (any, error) {
		return posts, nil
	}))
	e.GET("/api/posts/:id", r.Handler(v, render.ActionShow, func(c *gin.Context) (any, error) {
		if c.Param("id") == "boom" {
			return nil, errors.New("database unavailable")
		}
		for _, p := range posts {
			if strconv.Itoa(p.ID) == c.Param("id") {
				return p, nil
			}
		}
		return nil, ginview.ErrNotFound
	}))
	e.GET("/direct", func(c *gin.Context) {
		r.Show(c, v, posts[0])
	})
	return e
}

func serve(e *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestHandler_Show(t *testing.T) {
	e := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "http://api.example.com/api/posts/1", nil)
	w := serve(e, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ginview.MediaType, w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data": {
		"type": "post",
		"id": "1",
		"attributes": {"text": "first"},
		"links": {"self": "http://api.example.com/api/posts/1"}
	}}`, w.Body.String())
}

func TestHandler_Index(t *testing.T) {
	e := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "http://api.example.com:8080/api/posts?page=2", nil)
	w := serve(e, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data": [
		{"type": "post", "id": "1", "attributes": {"text": "first"}, "links": {"self": "http://api.example.com:8080/api/posts/1"}},
		{"type": "post", "id": "2", "attributes": {"text": "second"}, "links": {"self": "http://api.example.com:8080/api/posts/2"}}
	]}`, w.Body.String())
}

func TestHandler_ForwardedProto(t *testing.T) {
	e := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "http://api.example.com/direct", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	w := serve(e, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"self":"https://api.example.com/api/posts/1"`)
}

func TestHandler_Errors(t *testing.T) {
	e := newRouter(t)

	w := serve(e, httptest.NewRequest(http.MethodGet, "/api/posts/99", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, ginview.MediaType, w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"errors": [{"status": "404", "title": "Not Found"}]}`, w.Body.String())

	w = serve(e, httptest.NewRequest(http.MethodGet, "/api/posts/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"errors": [{"status": "500", "title": "Internal Server Error"}]}`, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/api/posts/1", nil)
	req.Header.Set("X-Forwarded-Proto", "gopher")
	w = serve(e, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/x?include=author&sort=a&sort=b", nil)

	p := ginview.Params(c)
	assert.Equal(t, "author", p.Get("include").Str())
	assert.Equal(t, []string{"a", "b"}, p.Get("sort").Data())
}

func TestRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "http://[::1]:9000/x?q=1", nil)

	rc, err := ginview.RequestContext(c)
	require.NoError(t, err)
	assert.Equal(t, "http", rc.Scheme)
	assert.Equal(t, "::1", rc.Host)
	assert.Equal(t, 9000, rc.Port)
	assert.Equal(t, "1", rc.Query.Get("q"))
	assert.Equal(t, "http://[::1]:9000", rc.Origin())
}
