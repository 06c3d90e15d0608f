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
// Package ginview binds views to gin. Importing it is what enables
// request-derived absolute URLs and render dispatch for gin handlers; the
// core packages never depend on gin.
package ginview

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/objx"

	"dirpx.dev/jsonview/apis"
	"dirpx.dev/jsonview/render"
)

// MediaType is the JSON:API media type.
const MediaType = "application/vnd.api+json"

// Renderer writes JSON:API responses from gin handlers.
type Renderer struct {
	d   *render.Dispatcher
	log *slog.Logger
}

// New constructs a Renderer. A nil logger discards diagnostics.
func New(log *slog.Logger) *Renderer {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Renderer{d: render.New(render.WithLogger(log)), log: log}
}

// RequestContext derives the request context of c.
func RequestContext(c *gin.Context) (*apis.RequestContext, error) {
	return apis.RequestContextFromHTTP(c.Request)
}

// Params returns the query parameters of c as a bag. Repeated keys keep
// every value; single values are unwrapped.
func Params(c *gin.Context) apis.Params {
	out := objx.Map{}
	for k, vs := range c.Request.URL.Query() {
		if len(vs) == 1 {
			out[k] = vs[0]
			continue
		}
		out[k] = vs
	}
	return out
}

// Show renders data as a single resource document.
func (r *Renderer) Show(c *gin.Context, v apis.View, data any) {
	r.Render(c, v, render.ActionShow, data)
}

// Index renders data as a collection document.
func (r *Renderer) Index(c *gin.Context, v apis.View, data any) {
	r.Render(c, v, render.ActionIndex, data)
}

// Render dispatches action and writes {"data": ...} with status 200.
// Configuration failures answer 500 with a JSON:API error object.
func (r *Renderer) Render(c *gin.Context, v apis.View, action string, data any) {
	rc, err := RequestContext(c)
	if err != nil {
		r.fail(c, err)
		return
	}
	out, err := r.d.Render(v, action, render.Bag(data, rc, Params(c)))
	if err != nil {
		r.fail(c, err)
		return
	}
	c.Header("Content-Type", MediaType)
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// Handler returns a gin handler rendering whatever load returns.
// A load error answers 404 when it wraps ErrNotFound, 500 otherwise.
func (r *Renderer) Handler(v apis.View, action string, load func(c *gin.Context) (any, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := load(c)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				c.Header("Content-Type", MediaType)
				c.JSON(http.StatusNotFound, errorDoc(http.StatusNotFound, "Not Found"))
				return
			}
			r.fail(c, err)
			return
		}
		r.Render(c, v, action, data)
	}
}

// ErrNotFound is returned by Handler loaders when the resource does not exist.
var ErrNotFound = errors.New("jsonview(ginview): resource not found")

func (r *Renderer) fail(c *gin.Context, err error) {
	r.log.Error("render failed", "path", c.Request.URL.Path, "error", err)
	c.Header("Content-Type", MediaType)
	c.JSON(http.StatusInternalServerError, errorDoc(http.StatusInternalServerError, "Internal Server Error"))
}

func errorDoc(status int, title string) gin.H {
	return gin.H{"errors": []gin.H{{"status": strconv.Itoa(status), "title": title}}}
}
