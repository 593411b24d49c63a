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

package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vigil-tools/vigil/analysis/checkers"
	"github.com/vigil-tools/vigil/internal/funcutil"
)

// AnalyzerOptions owns the option table of one analysis session and resolves
// typed accessor queries against it.
//
// The table captured at construction is never modified. Global lookups that
// miss record their effective default in a separate side table, so a later
// [AnalyzerOptions.Effective] call reflects every option the session ever
// queried. Resolved accessor values are cached for the session lifetime and
// never recomputed, even if the underlying table changes.
//
// An AnalyzerOptions is owned by exactly one session and performs no internal
// locking.
type AnalyzerOptions struct {
	// table is the option snapshot supplied at construction.
	table map[string]string

	// observed records the default of every global option queried without a
	// table entry. The first recorded default sticks for the session.
	observed map[string]string

	// memo holds the resolved value of each typed accessor, keyed by option
	// name. Entries are set at most once and never cleared.
	memo map[string]any
}

// New returns an AnalyzerOptions resolving against a copy of table.
func New(table map[string]string) *AnalyzerOptions {
	t := make(map[string]string, len(table))
	for k, v := range table {
		t[k] = v
	}
	return &AnalyzerOptions{
		table:    t,
		observed: map[string]string{},
		memo:     map[string]any{},
	}
}

// lookup consults the snapshot only.
func (o *AnalyzerOptions) lookup(key string) funcutil.Optional[string] {
	if v, ok := o.table[key]; ok {
		return funcutil.Some(v)
	}
	return funcutil.None[string]()
}

// CheckerOption resolves option name for the checker or package scope. The
// exact key "scope:name" is tried first; when searchInParents is set and the
// scope is a dotted path, each parent scope is tried in turn ("a.b.c" falls
// back to "a.b", then "a"). The most specific match wins. Returns def when
// no candidate scope has an entry. Never writes to any table.
func (o *AnalyzerOptions) CheckerOption(scope string, name string, def string, searchInParents bool) string {
	for {
		if v := o.lookup(scope + ":" + name); v.IsSome() {
			return v.Value()
		}
		if !searchInParents {
			return def
		}
		pos := strings.LastIndexByte(scope, '.')
		if pos < 0 {
			return def
		}
		scope = scope[:pos]
		if scope == "" {
			return def
		}
	}
}

// OptionAsString resolves the unscoped option name. The first query of an
// option absent from the table records def as its effective default, which is
// then returned by every later query regardless of the default they pass.
func (o *AnalyzerOptions) OptionAsString(name string, def string) string {
	if v := o.lookup(name); v.IsSome() {
		return v.Value()
	}
	if v, ok := o.observed[name]; ok {
		return v
	}
	o.observed[name] = def
	return def
}

// StringOption resolves option name in the given scope, or globally when
// scope is empty.
func (o *AnalyzerOptions) StringOption(name string, def string, scope string, searchInParents bool) string {
	if scope != "" {
		return o.CheckerOption(scope, name, def, searchInParents)
	}
	return o.OptionAsString(name, def)
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// OptionAsBool resolves option name to a boolean. Only the exact strings
// "true" and "false" are recognized; any other value, including the empty
// string, yields def. Malformed values are user data and are not reported,
// since this layer has no diagnostic channel.
func (o *AnalyzerOptions) OptionAsBool(name string, def bool, scope string, searchInParents bool) bool {
	switch o.StringOption(name, boolString(def), scope, searchInParents) {
	case "true":
		return true
	case "false":
		return false
	default:
		return def
	}
}

// OptionAsInt resolves option name to a base-10 integer. A value that does
// not parse is a contract violation: option values reach this layer through
// a validated schema, so a malformed integer is a bug, not user input.
func (o *AnalyzerOptions) OptionAsInt(name string, def int, scope string, searchInParents bool) int {
	v := o.StringOption(name, strconv.Itoa(def), scope, searchInParents)
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(fmt.Sprintf("options: value %q of option %q is not numeric", v, name))
	}
	return n
}

// memoized returns the cached value for key, computing and caching it on the
// first call. The cached value is never recomputed within the session.
func memoized[T any](o *AnalyzerOptions, key string, compute func() T) T {
	if v, ok := o.memo[key]; ok {
		return v.(T)
	}
	v := compute()
	o.memo[key] = v
	return v
}

// Effective returns the session's effective configuration: the snapshot
// merged over the recorded defaults of every global option queried so far.
// Snapshot entries win. The result is a fresh map.
func (o *AnalyzerOptions) Effective() map[string]string {
	out := make(map[string]string, len(o.table)+len(o.observed))
	for k, v := range o.observed {
		out[k] = v
	}
	for k, v := range o.table {
		out[k] = v
	}
	return out
}

// RegisteredCheckers returns the identifiers of the checkers known to the
// engine, hiding experimental ones unless requested.
func (o *AnalyzerOptions) RegisteredCheckers(includeExperimental bool) []string {
	return checkers.Names(includeExperimental)
}
