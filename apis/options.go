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

import "errors"

// ErrEmptyType is returned when a view is declared without a resource type.
var ErrEmptyType = errors.New("jsonview: resource type must not be empty")

// Options is the per-resource-type configuration surface.
type Options struct {
	// Type is the JSON:API resource type, e.g. "post". Required.
	Type string `yaml:"type"`
	// Namespace is prepended verbatim to every URL path, e.g. "/api/v1".
	Namespace string `yaml:"namespace"`
	// Pluralize makes the URL type segment use the plural form of Type.
	Pluralize bool `yaml:"pluralize"`
	// TrimNullAttributes drops attributes whose value is nil.
	TrimNullAttributes bool `yaml:"trim_null_attributes"`
}

// Validate reports configuration errors in o.
func (o Options) Validate() error {
	if o.Type == "" {
		return ErrEmptyType
	}
	return nil
}
