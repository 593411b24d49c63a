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

import "os"

// The accessors below are the typed surface the engine consumes. Each one
// resolves its option at most once per session; the global resolution path
// records the effective default so Effective() lists every option ever
// queried.

func (o *AnalyzerOptions) boolOption(name string, def bool) bool {
	return memoized(o, name, func() bool {
		return o.OptionAsBool(name, def, "", false)
	})
}

func (o *AnalyzerOptions) intOption(name string, def int) int {
	return memoized(o, name, func() int {
		return o.OptionAsInt(name, def, "", false)
	})
}

// ShouldSynthesizeBodies reports whether the engine models well-known
// functions with synthetic bodies instead of treating them as opaque.
func (o *AnalyzerOptions) ShouldSynthesizeBodies() bool {
	return o.boolOption("synthesize-bodies", true)
}

// ShouldPrunePaths reports whether diagnostic paths are pruned of irrelevant
// steps before reporting.
func (o *AnalyzerOptions) ShouldPrunePaths() bool {
	return o.boolOption("prune-paths", true)
}

// ShouldInlineClosures reports whether closure calls may be inlined.
func (o *AnalyzerOptions) ShouldInlineClosures() bool {
	return o.boolOption("inline-closures", true)
}

// ShouldWidenLoops reports whether loops beyond the unrolling bound have
// their state widened instead of dropped.
func (o *AnalyzerOptions) ShouldWidenLoops() bool {
	return o.boolOption("widen-loops", false)
}

// ShouldUnrollLoops reports whether loops with known bounds are unrolled.
func (o *AnalyzerOptions) ShouldUnrollLoops() bool {
	return o.boolOption("unroll-loops", false)
}

// ShouldDisplayNotesAsEvents reports whether path notes are rendered as
// events in diagnostics.
func (o *AnalyzerOptions) ShouldDisplayNotesAsEvents() bool {
	return o.boolOption("notes-as-events", false)
}

// ShouldEagerlyAssume reports whether comparison results are eagerly split
// into true/false states.
func (o *AnalyzerOptions) ShouldEagerlyAssume() bool {
	return o.boolOption("eagerly-assume", true)
}

// ShouldAggressivelySimplifyBinaryOperation reports whether symbolic binary
// operations are aggressively canonicalized.
func (o *AnalyzerOptions) ShouldAggressivelySimplifyBinaryOperation() bool {
	return o.boolOption("aggressive-binary-operation-simplification", false)
}

// MayInlineStdlib reports whether standard library functions may be inlined.
func (o *AnalyzerOptions) MayInlineStdlib() bool {
	return o.boolOption("stdlib-inlining", true)
}

// MayInlineGenerics reports whether generic function instantiations may be
// inlined.
func (o *AnalyzerOptions) MayInlineGenerics() bool {
	return o.boolOption("generic-inlining", true)
}

// ShouldSuppressNilReturnPaths reports whether bug paths that depend on an
// inlined function returning nil are suppressed.
func (o *AnalyzerOptions) ShouldSuppressNilReturnPaths() bool {
	return o.boolOption("suppress-nil-return-paths", true)
}

// ShouldAvoidSuppressingNilArgumentPaths reports whether nil-return
// suppression is skipped when the nil flowed in through an argument.
func (o *AnalyzerOptions) ShouldAvoidSuppressingNilArgumentPaths() bool {
	return o.boolOption("avoid-suppressing-nil-argument-paths", false)
}

// ShouldSuppressInlinedDefensiveChecks reports whether defensive nil checks
// inside inlined callees are suppressed.
func (o *AnalyzerOptions) ShouldSuppressInlinedDefensiveChecks() bool {
	return o.boolOption("suppress-inlined-defensive-checks", true)
}

// ShouldSuppressFromStdlib reports whether reports whose path goes through
// the standard library are suppressed.
func (o *AnalyzerOptions) ShouldSuppressFromStdlib() bool {
	return o.boolOption("suppress-stdlib", true)
}

// ShouldCrosscheckWithSolver reports whether reports are re-validated with a
// constraint solver before being emitted.
func (o *AnalyzerOptions) ShouldCrosscheckWithSolver() bool {
	return o.boolOption("crosscheck-with-solver", false)
}

// ShouldReportInMainPackageOnly reports whether diagnostics outside the main
// package are relocated to it.
func (o *AnalyzerOptions) ShouldReportInMainPackageOnly() bool {
	return o.boolOption("report-in-main-package", false)
}

// ShouldWriteStableReportFilename reports whether report files use stable
// deterministic names instead of unique ones.
func (o *AnalyzerOptions) ShouldWriteStableReportFilename() bool {
	return o.boolOption("stable-report-filename", false)
}

// ShouldSerializeStats reports whether per-run statistics are serialized.
func (o *AnalyzerOptions) ShouldSerializeStats() bool {
	return o.boolOption("serialize-stats", false)
}

// IncludeDeferEdgesInCFG reports whether defer execution edges are modeled
// in the control-flow graph.
func (o *AnalyzerOptions) IncludeDeferEdgesInCFG() bool {
	return o.boolOption("cfg-defer-edges", true)
}

// IncludePanicEdgesInCFG reports whether implicit panic edges are modeled.
func (o *AnalyzerOptions) IncludePanicEdgesInCFG() bool {
	return o.boolOption("cfg-panic-edges", true)
}

// IncludeScopesInCFG reports whether lexical scope boundaries appear in the
// control-flow graph.
func (o *AnalyzerOptions) IncludeScopesInCFG() bool {
	return o.boolOption("cfg-scopes", false)
}

// ShouldConditionalizeStaticInitializers reports whether package-level
// initializers are modeled as conditionally executed.
func (o *AnalyzerOptions) ShouldConditionalizeStaticInitializers() bool {
	return o.boolOption("cfg-conditional-static-initializers", true)
}

// AlwaysInlineSize is the maximum number of basic blocks of a function that
// is always inlined regardless of other heuristics.
func (o *AnalyzerOptions) AlwaysInlineSize() int {
	return o.intOption("ipa-always-inline-size", 3)
}

// MaxInlinableSize is the maximum number of basic blocks of a function
// considered for inlining. The default follows the user mode.
func (o *AnalyzerOptions) MaxInlinableSize() int {
	return memoized(o, "max-inlinable-size", func() int {
		def := maxInlinableSizeDefaults[o.UserMode()]
		return o.OptionAsInt("max-inlinable-size", def, "", false)
	})
}

// GraphTrimInterval is the number of exploded nodes explored between
// reclamation passes over the graph.
func (o *AnalyzerOptions) GraphTrimInterval() int {
	return o.intOption("graph-trim-interval", 1000)
}

// MaxSymbolComplexity is the complexity cutoff beyond which symbolic
// expressions are conservatively collapsed.
func (o *AnalyzerOptions) MaxSymbolComplexity() int {
	return o.intOption("max-symbol-complexity", 35)
}

// MaxTimesInlineLarge is how many times a large function may be inlined
// before being treated as opaque.
func (o *AnalyzerOptions) MaxTimesInlineLarge() int {
	return o.intOption("max-times-inline-large", 32)
}

// MinCFGSizeTreatFunctionsAsLarge is the basic-block count at which a
// function counts as large for the inlining heuristics.
func (o *AnalyzerOptions) MinCFGSizeTreatFunctionsAsLarge() int {
	return o.intOption("min-cfg-size-treat-functions-as-large", 14)
}

// MaxNodesPerTopLevelFunction bounds the exploded graph built for one entry
// function. The default follows the user mode.
func (o *AnalyzerOptions) MaxNodesPerTopLevelFunction() int {
	return memoized(o, "max-nodes", func() int {
		def := maxNodesDefaults[o.UserMode()]
		return o.OptionAsInt("max-nodes", def, "", false)
	})
}

// LogLevel is the verbosity of the session's log group.
func (o *AnalyzerOptions) LogLevel() int {
	return o.intOption("log-level", int(InfoLevel))
}

// Verbose returns true if the verbosity setting is Debug or above.
func (o *AnalyzerOptions) Verbose() bool {
	return o.LogLevel() >= int(DebugLevel)
}

// CrossModuleDir is the directory holding serialized summaries of external
// modules. Cleared to the empty string when it does not name an existing
// directory.
func (o *AnalyzerOptions) CrossModuleDir() string {
	return memoized(o, "cross-module-dir", func() string {
		dir := o.OptionAsString("cross-module-dir", "")
		if dir != "" {
			if st, err := os.Stat(dir); err != nil || !st.IsDir() {
				dir = ""
			}
		}
		return dir
	})
}

// CrossModuleIndexName is the file name of the external function index inside
// CrossModuleDir.
func (o *AnalyzerOptions) CrossModuleIndexName() string {
	return memoized(o, "cross-module-index-name", func() string {
		return o.OptionAsString("cross-module-index-name", "fnindex.txt")
	})
}

// NaiveCrossModuleEnabled reports whether the experimental cross-module
// analysis is enabled.
func (o *AnalyzerOptions) NaiveCrossModuleEnabled() bool {
	return o.boolOption("experimental-enable-naive-cross-module-analysis", false)
}
