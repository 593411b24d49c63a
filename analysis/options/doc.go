// Copyright the Vigil contributors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
Package options maps the string-keyed configuration entries supplied to an
analysis session onto the typed, memoized accessors consumed by the rest of
the engine.

Use [Load](filename) to read an option file, or [New] to wrap an
already-parsed table. An option file is yaml (json is accepted too) with a
flat "options" map and an optional "checkers" section:

	options:
	  mode: shallow
	  widen-loops: "true"

	checkers:
	  taint.sql:
	    strict: "true"

Checker entries are flattened into scoped keys of the form "name:option".
Scoped lookups walk up the dotted checker hierarchy when requested, so an
option set on package "taint" applies to "taint.sql" unless overridden.

Accessors resolve each option at most once per session and return the cached
result afterwards. An [AnalyzerOptions] belongs to a single analysis session
and is not safe for concurrent use; concurrent analyses need one instance
each, or external serialization.
*/
package options
