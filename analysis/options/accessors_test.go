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
	"os"
	"path/filepath"
	"testing"
)

func TestBooleanAccessorDefaults(t *testing.T) {
	o := New(nil)
	for _, tc := range []struct {
		name string
		got  bool
		want bool
	}{
		{"synthesize-bodies", o.ShouldSynthesizeBodies(), true},
		{"prune-paths", o.ShouldPrunePaths(), true},
		{"inline-closures", o.ShouldInlineClosures(), true},
		{"widen-loops", o.ShouldWidenLoops(), false},
		{"unroll-loops", o.ShouldUnrollLoops(), false},
		{"notes-as-events", o.ShouldDisplayNotesAsEvents(), false},
		{"eagerly-assume", o.ShouldEagerlyAssume(), true},
		{"aggressive-binary-operation-simplification", o.ShouldAggressivelySimplifyBinaryOperation(), false},
		{"stdlib-inlining", o.MayInlineStdlib(), true},
		{"generic-inlining", o.MayInlineGenerics(), true},
		{"suppress-nil-return-paths", o.ShouldSuppressNilReturnPaths(), true},
		{"avoid-suppressing-nil-argument-paths", o.ShouldAvoidSuppressingNilArgumentPaths(), false},
		{"suppress-inlined-defensive-checks", o.ShouldSuppressInlinedDefensiveChecks(), true},
		{"suppress-stdlib", o.ShouldSuppressFromStdlib(), true},
		{"crosscheck-with-solver", o.ShouldCrosscheckWithSolver(), false},
		{"report-in-main-package", o.ShouldReportInMainPackageOnly(), false},
		{"stable-report-filename", o.ShouldWriteStableReportFilename(), false},
		{"serialize-stats", o.ShouldSerializeStats(), false},
		{"cfg-defer-edges", o.IncludeDeferEdgesInCFG(), true},
		{"cfg-panic-edges", o.IncludePanicEdgesInCFG(), true},
		{"cfg-scopes", o.IncludeScopesInCFG(), false},
		{"cfg-conditional-static-initializers", o.ShouldConditionalizeStaticInitializers(), true},
		{"experimental-enable-naive-cross-module-analysis", o.NaiveCrossModuleEnabled(), false},
	} {
		if tc.got != tc.want {
			t.Errorf("default of %q: expected %v, got %v", tc.name, tc.want, tc.got)
		}
	}
}

func TestIntegerAccessorDefaults(t *testing.T) {
	o := New(nil)
	for _, tc := range []struct {
		name string
		got  int
		want int
	}{
		{"ipa-always-inline-size", o.AlwaysInlineSize(), 3},
		{"graph-trim-interval", o.GraphTrimInterval(), 1000},
		{"max-symbol-complexity", o.MaxSymbolComplexity(), 35},
		{"max-times-inline-large", o.MaxTimesInlineLarge(), 32},
		{"min-cfg-size-treat-functions-as-large", o.MinCFGSizeTreatFunctionsAsLarge(), 14},
		{"log-level", o.LogLevel(), int(InfoLevel)},
	} {
		if tc.got != tc.want {
			t.Errorf("default of %q: expected %d, got %d", tc.name, tc.want, tc.got)
		}
	}
}

func TestMaxInlinableSizeFollowsUserMode(t *testing.T) {
	deep := New(nil)
	if v := deep.MaxInlinableSize(); v != 100 {
		t.Errorf("deep mode default should be 100, got %d", v)
	}
	shallow := New(map[string]string{"mode": "shallow"})
	if v := shallow.MaxInlinableSize(); v != 4 {
		t.Errorf("shallow mode default should be 4, got %d", v)
	}
}

func TestMaxInlinableSizeExplicitOverride(t *testing.T) {
	o := New(map[string]string{"mode": "shallow", "max-inlinable-size": "50"})
	if v := o.MaxInlinableSize(); v != 50 {
		t.Errorf("explicit option should override the mode default, got %d", v)
	}
}

func TestMaxNodesFollowsUserMode(t *testing.T) {
	deep := New(nil)
	if v := deep.MaxNodesPerTopLevelFunction(); v != 225000 {
		t.Errorf("deep mode default should be 225000, got %d", v)
	}
	shallow := New(map[string]string{"mode": "shallow"})
	if v := shallow.MaxNodesPerTopLevelFunction(); v != 75000 {
		t.Errorf("shallow mode default should be 75000, got %d", v)
	}
}

func TestVerbose(t *testing.T) {
	if New(nil).Verbose() {
		t.Errorf("default log level should not be verbose")
	}
	o := New(map[string]string{"log-level": "4"})
	if !o.Verbose() {
		t.Errorf("debug log level should be verbose")
	}
}

func TestCrossModuleDirClearedWhenMissing(t *testing.T) {
	o := New(map[string]string{"cross-module-dir": filepath.Join("testdata", "no-such-dir")})
	if v := o.CrossModuleDir(); v != "" {
		t.Errorf("non-existing directory should clear the option, got %q", v)
	}
}

func TestCrossModuleDirKeptWhenPresent(t *testing.T) {
	dir := t.TempDir()
	o := New(map[string]string{"cross-module-dir": dir})
	if v := o.CrossModuleDir(); v != dir {
		t.Errorf("existing directory should be kept, got %q", v)
	}
	// Cached even if the directory disappears afterwards.
	os.Remove(dir)
	if v := o.CrossModuleDir(); v != dir {
		t.Errorf("cached value should survive directory removal, got %q", v)
	}
}

func TestCrossModuleIndexNameDefault(t *testing.T) {
	o := New(nil)
	if v := o.CrossModuleIndexName(); v != "fnindex.txt" {
		t.Errorf("unexpected default index name %q", v)
	}
}

func TestAccessorPopulatesEffectiveConfig(t *testing.T) {
	o := New(nil)
	o.ShouldWidenLoops()
	if v, ok := o.Effective()["widen-loops"]; !ok || v != "false" {
		t.Errorf("querying an accessor should record its default, got %q (present: %v)", v, ok)
	}
}
