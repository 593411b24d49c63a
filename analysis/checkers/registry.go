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

// Package checkers holds the static registry of checkers known to the
// analysis engine. The registry only describes checkers; running them is the
// engine's business.
package checkers

import (
	"strings"

	"github.com/vigil-tools/vigil/internal/funcutil"
)

// A Checker describes one registered checker. The name is a dotted path whose
// leading components form the package hierarchy used for scoped option lookup
// (e.g. "core.nilderef" belongs to package "core").
type Checker struct {
	// Name is the fully qualified checker identifier.
	Name string

	// Description is a one-line summary shown in listings.
	Description string
}

// Checkers under the "alpha" namespace are experimental and hidden from
// listings unless explicitly requested; checkers under "debug" are internal
// development aids and never listed.
const (
	experimentalNamespace = "alpha."
	debugNamespace        = "debug."
)

var registry = []Checker{
	{"core.nilderef", "Check for nil pointer dereferences"},
	{"core.divzero", "Check for division by zero"},
	{"core.sliceindex", "Check for out-of-bounds slice and array indexing"},
	{"core.uninitread", "Check for reads of uninitialized values through unsafe pointers"},
	{"core.callvariadic", "Check argument counts at variadic call sites"},
	{"runtime.closedchannel", "Check for sends on closed channels"},
	{"runtime.doubleclose", "Check for closing an already-closed channel"},
	{"runtime.waitgroup", "Check for WaitGroup counter misuse"},
	{"taint.command", "Track tainted data into command execution"},
	{"taint.sql", "Track tainted data into SQL queries"},
	{"unsafe.pointerarith", "Check unsafe.Pointer arithmetic against object bounds"},
	{"alpha.escape", "Experimental escape-based alias reasoning"},
	{"alpha.loopbounds", "Experimental symbolic loop bound inference"},
	{"alpha.taint.log", "Experimental tracking of tainted data into log sinks"},
	{"debug.dumpconfig", "Dump the effective analyzer configuration"},
	{"debug.dumpexplodedgraph", "Dump the exploded graph after analysis"},
}

// All returns every registered checker, including experimental and debug ones.
func All() []Checker {
	out := make([]Checker, len(registry))
	copy(out, registry)
	return out
}

// IsExperimental returns true if name lives in the experimental namespace.
func IsExperimental(name string) bool {
	return strings.HasPrefix(name, experimentalNamespace)
}

// Names returns the identifiers of the registered checkers, excluding the
// debug namespace, and excluding experimental checkers unless
// includeExperimental is set. Order follows registration order.
func Names(includeExperimental bool) []string {
	visible := funcutil.Filter(registry, func(c Checker) bool {
		if strings.HasPrefix(c.Name, debugNamespace) {
			return false
		}
		return includeExperimental || !IsExperimental(c.Name)
	})
	return funcutil.Map(visible, func(c Checker) string { return c.Name })
}
