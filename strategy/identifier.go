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

// NewIdentifierStrategy creates an apis.Strategy that uses apis.Identifier.
func NewIdentifierStrategy() apis.Strategy {
	return &identifierStrategy{}
}

// identifierStrategy is a zero-cost fast path: if v implements apis.Identifier,
// return its ResourceID() and stop the chain.
type identifierStrategy struct{}

// Ensure identifierStrategy implements apis.Strategy.
var _ apis.Strategy = (*identifierStrategy)(nil)

// TryResolve checks if v implements apis.Identifier and returns its ResourceID().
func (*identifierStrategy) TryResolve(v any, _ apis.Config) (string, bool, bool) {
	if v == nil {
		return "", false, false
	}
	if n, ok := v.(apis.Identifier); ok {
		return n.ResourceID(), true, true
	}
	return "", false, false
}
