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

import "fmt"

// UserModeKind is the coarse analysis depth selected by the user. It decides
// the default of several thresholds below.
type UserModeKind int

const (
	// UserModeShallow trades precision for speed.
	UserModeShallow UserModeKind = iota + 1

	// UserModeDeep is the default, thorough mode.
	UserModeDeep
)

var userModeNames = map[string]UserModeKind{
	"shallow": UserModeShallow,
	"deep":    UserModeDeep,
}

// ExplorationStrategyKind selects the work-list ordering of the engine's
// state-space exploration.
type ExplorationStrategyKind int

const (
	ExplorationDFS ExplorationStrategyKind = iota + 1
	ExplorationBFS
	ExplorationUnexploredFirst
	ExplorationUnexploredFirstQueue
	ExplorationUnexploredFirstLocationQueue
	ExplorationBFSBlockDFSContents
)

var explorationStrategyNames = map[string]ExplorationStrategyKind{
	"dfs":                             ExplorationDFS,
	"bfs":                             ExplorationBFS,
	"unexplored_first":                ExplorationUnexploredFirst,
	"unexplored_first_queue":          ExplorationUnexploredFirstQueue,
	"unexplored_first_location_queue": ExplorationUnexploredFirstLocationQueue,
	"bfs_block_dfs_contents":          ExplorationBFSBlockDFSContents,
}

// IPAKind selects how much inter-procedural reasoning the engine performs.
// The kinds are ordered: a kind enables everything below it.
type IPAKind int

const (
	// IPANone performs intra-procedural analysis only.
	IPANone IPAKind = iota + 1

	// IPABasicInlining inlines calls resolved directly, ignoring dynamic
	// dispatch through interfaces.
	IPABasicInlining

	// IPAInlining inlines all statically resolved calls.
	IPAInlining

	// IPADynamic additionally devirtualizes interface calls with a known
	// concrete receiver.
	IPADynamic

	// IPADynamicBifurcate devirtualizes speculatively, splitting the state on
	// the receiver type.
	IPADynamicBifurcate
)

var ipaKindNames = map[string]IPAKind{
	"none":              IPANone,
	"basic-inlining":    IPABasicInlining,
	"inlining":          IPAInlining,
	"dynamic":           IPADynamic,
	"dynamic-bifurcate": IPADynamicBifurcate,
}

// MethodInlineKind restricts which methods the engine may inline. Ordered:
// a configured kind permits inlining of that kind and everything below it.
type MethodInlineKind int

const (
	// MethodInlineNone forbids method inlining entirely.
	MethodInlineNone MethodInlineKind = iota + 1

	// MethodInlineExported permits inlining of exported methods.
	MethodInlineExported

	// MethodInlineAll permits inlining of any method.
	MethodInlineAll
)

var methodInlineKindNames = map[string]MethodInlineKind{
	"none":     MethodInlineNone,
	"exported": MethodInlineExported,
	"all":      MethodInlineAll,
}

// parseEnum maps s through names, panicking on unknown text. Enum option
// values come from the component's own defaults or a validated front end, so
// an unrecognized string is a logic error rather than a user mistake.
func parseEnum[T any](names map[string]T, option string, s string) T {
	v, ok := names[s]
	if !ok {
		panic(fmt.Sprintf("options: invalid value %q for option %q", s, option))
	}
	return v
}

// Defaults that depend on the user mode. Go cannot check these tables for
// exhaustiveness over the mode constants, so a test does.
var (
	ipaModeDefaults = map[UserModeKind]string{
		UserModeShallow: "inlining",
		UserModeDeep:    "dynamic-bifurcate",
	}
	maxInlinableSizeDefaults = map[UserModeKind]int{
		UserModeShallow: 4,
		UserModeDeep:    100,
	}
	maxNodesDefaults = map[UserModeKind]int{
		UserModeShallow: 75000,
		UserModeDeep:    225000,
	}
)

// UserMode returns the coarse analysis depth. Option "mode", default "deep".
func (o *AnalyzerOptions) UserMode() UserModeKind {
	return memoized(o, "mode", func() UserModeKind {
		return parseEnum(userModeNames, "mode", o.OptionAsString("mode", "deep"))
	})
}

// ExplorationStrategy returns the work-list ordering. Option
// "exploration-strategy", default "unexplored_first_queue".
func (o *AnalyzerOptions) ExplorationStrategy() ExplorationStrategyKind {
	return memoized(o, "exploration-strategy", func() ExplorationStrategyKind {
		s := o.OptionAsString("exploration-strategy", "unexplored_first_queue")
		return parseEnum(explorationStrategyNames, "exploration-strategy", s)
	})
}

// IPAMode returns the inter-procedural analysis kind. Option "ipa"; the
// default follows the user mode.
func (o *AnalyzerOptions) IPAMode() IPAKind {
	return memoized(o, "ipa", func() IPAKind {
		s := o.OptionAsString("ipa", ipaModeDefaults[o.UserMode()])
		return parseEnum(ipaKindNames, "ipa", s)
	})
}

// MayInlineMethod reports whether the engine may inline methods of kind k.
// Always false when the IPA mode does not reach full inlining. Option
// "method-inlining", default "exported".
func (o *AnalyzerOptions) MayInlineMethod(k MethodInlineKind) bool {
	if o.IPAMode() < IPAInlining {
		return false
	}
	mode := memoized(o, "method-inlining", func() MethodInlineKind {
		s := o.OptionAsString("method-inlining", "exported")
		return parseEnum(methodInlineKindNames, "method-inlining", s)
	})
	return mode >= k
}
