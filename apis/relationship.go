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

import "fmt"

// Policy decides when a relationship is materialized into a document.
type Policy int

const (
	// OnDemand relationships are materialized only when the request asks
	// for them. The decision belongs to the query layer.
	OnDemand Policy = iota
	// AlwaysInclude relationships are materialized whenever the related
	// data is present and loaded.
	AlwaysInclude
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case OnDemand:
		return "on_demand"
	case AlwaysInclude:
		return "always_include"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// Relationship describes one named reference from a resource type to another.
type Relationship struct {
	// Target is the resource type of the related view. It is resolved
	// through a Registry, which lets views reference each other.
	Target string
	// View optionally pins the related view directly. When set it wins
	// over Target.
	View View
	// Policy is the inclusion policy.
	Policy Policy
}
