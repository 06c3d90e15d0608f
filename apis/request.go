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
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ErrUnknownScheme is raised when a request context carries a scheme with no
// known default port. It is a configuration error.
var ErrUnknownScheme = errors.New("jsonview: unknown url scheme")

// RequestContext describes the connection a render call answers.
// A nil *RequestContext means "no connection": URLs are rendered relative.
type RequestContext struct {
	Scheme string
	Host   string
	// Port is the connection port. Zero means unspecified and is treated
	// like the scheme default.
	Port  int
	Query url.Values
}

// NewRequestContext validates scheme and returns a context.
func NewRequestContext(scheme, host string, port int) (*RequestContext, error) {
	scheme = strings.ToLower(scheme)
	if _, err := DefaultPort(scheme); err != nil {
		return nil, err
	}
	return &RequestContext{Scheme: scheme, Host: host, Port: port, Query: url.Values{}}, nil
}

// RequestContextFromHTTP derives a context from an incoming request.
// The scheme comes from X-Forwarded-Proto when present, otherwise from the
// TLS state of the connection.
func RequestContextFromHTTP(r *http.Request) (*RequestContext, error) {
	if r == nil {
		return nil, nil
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := r.Header.Get("X-Forwarded-Proto"); p != "" {
		scheme = strings.TrimSpace(strings.Split(p, ",")[0])
	}

	host, port := r.Host, 0
	if h, p, err := net.SplitHostPort(r.Host); err == nil {
		n, perr := strconv.Atoi(p)
		if perr != nil {
			return nil, fmt.Errorf("jsonview: invalid port in host %q: %w", r.Host, perr)
		}
		host, port = h, n
	} else if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
		// IPv6 literal on the default port
		host = host[1 : len(host)-1]
	}

	rc, err := NewRequestContext(scheme, host, port)
	if err != nil {
		return nil, err
	}
	if r.URL != nil {
		rc.Query = r.URL.Query()
	}
	return rc, nil
}

// DefaultPort returns the well-known port of scheme, matched
// case-insensitively.
func DefaultPort(scheme string) (int, error) {
	switch strings.ToLower(scheme) {
	case "http", "ws":
		return 80, nil
	case "https", "wss":
		return 443, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
}

// HostForContext returns the authority for absolute URLs: the bare host when
// the port is the scheme default, "host:port" otherwise. IPv6 hosts are
// bracketed exactly once, whether or not rc.Host already carries brackets.
// It panics with ErrUnknownScheme for schemes with no default port.
func HostForContext(rc *RequestContext) string {
	def, err := DefaultPort(rc.Scheme)
	if err != nil {
		panic(err)
	}
	host := strings.TrimSuffix(strings.TrimPrefix(rc.Host, "["), "]")
	if rc.Port == 0 || rc.Port == def {
		if strings.Contains(host, ":") {
			// IPv6 literal
			return "[" + host + "]"
		}
		return host
	}
	return net.JoinHostPort(host, strconv.Itoa(rc.Port))
}

// Origin returns "scheme://authority" for rc. The scheme is lower-cased.
func (rc *RequestContext) Origin() string {
	return strings.ToLower(rc.Scheme) + "://" + HostForContext(rc)
}
