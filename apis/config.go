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

import "log/slog"

// Config carries read-only knobs shared by every view in a process.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// IDField is the Go struct field consulted by the reflection identity
	// strategy when no field carries an explicit `id` tag.
	IDField string

	// Tag is the struct tag key used to map attribute and id names onto
	// struct fields (e.g. `jsonapi:"title"`). The `json` tag is always
	// consulted as a fallback.
	Tag string

	// MaxUnwrap limits pointer/interface unwrapping depth when locating the
	// underlying struct of an instance.
	MaxUnwrap int

	// Logger receives diagnostics from registries and dispatchers.
	// A nil Logger disables logging.
	Logger *slog.Logger
}
