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

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"dirpx.dev/jsonview/apis"
)

// ErrDuplicateType is returned when a views file declares the same resource
// type twice.
var ErrDuplicateType = errors.New("jsonview(config): duplicate resource type")

// Views is the per-type options declared in a views file, keyed by type.
//
// A views file looks like:
//
//	views:
//	  - type: post
//	    namespace: /api
//	    pluralize: true
//	  - type: comment
//	    trim_null_attributes: true
type Views map[string]apis.Options

type viewsFile struct {
	Views []apis.Options `yaml:"views"`
}

// LoadViews decodes a views file from r. Unknown keys are rejected, every
// entry must name a type, and types must be unique.
func LoadViews(r io.Reader) (Views, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f viewsFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Views{}, nil
		}
		return nil, fmt.Errorf("jsonview(config): decode views: %w", err)
	}

	out := make(Views, len(f.Views))
	for i, o := range f.Views {
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("jsonview(config): views[%d]: %w", i, err)
		}
		if _, dup := out[o.Type]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateType, o.Type)
		}
		out[o.Type] = o
	}
	return out, nil
}

// LoadViewsFile reads and decodes the views file at path.
func LoadViewsFile(path string) (Views, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("jsonview(config): %w", err)
	}
	return LoadViews(bytes.NewReader(b))
}
