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
package strategy

import (
	"dirpx.dev/jsonview/apis"
)

// NewAbsentStrategy creates an apis.Strategy that answers null for nil
// values and associations that have not been loaded.
func NewAbsentStrategy() apis.Strategy {
	return &absentStrategy{}
}

// absentStrategy must run first: a not-loaded placeholder may still satisfy
// apis.Identifier or carry an ID field holding a zero value.
type absentStrategy struct{}

// Ensure absentStrategy implements apis.Strategy.
var _ apis.Strategy = (*absentStrategy)(nil)

// TryResolve handles v when it has no identity.
func (*absentStrategy) TryResolve(v any, _ apis.Config) (string, bool, bool) {
	if apis.IsAbsent(v) {
		return "", false, true
	}
	return "", false, false
}
