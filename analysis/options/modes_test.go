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

import "testing"

func TestUserModeDefaultsToDeep(t *testing.T) {
	o := New(nil)
	if o.UserMode() != UserModeDeep {
		t.Errorf("expected deep mode by default")
	}
}

func TestUserModeShallow(t *testing.T) {
	o := New(map[string]string{"mode": "shallow"})
	if o.UserMode() != UserModeShallow {
		t.Errorf("expected shallow mode")
	}
}

func TestUserModeInvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on invalid mode string")
		}
	}()
	New(map[string]string{"mode": "turbo"}).UserMode()
}

func TestExplorationStrategyDefault(t *testing.T) {
	o := New(nil)
	if o.ExplorationStrategy() != ExplorationUnexploredFirstQueue {
		t.Errorf("unexpected default exploration strategy")
	}
}

func TestExplorationStrategyOverride(t *testing.T) {
	o := New(map[string]string{"exploration-strategy": "dfs"})
	if o.ExplorationStrategy() != ExplorationDFS {
		t.Errorf("expected dfs strategy")
	}
}

func TestIPAModeFollowsUserMode(t *testing.T) {
	deep := New(nil)
	if deep.IPAMode() != IPADynamicBifurcate {
		t.Errorf("deep mode should default to dynamic-bifurcate")
	}
	shallow := New(map[string]string{"mode": "shallow"})
	if shallow.IPAMode() != IPAInlining {
		t.Errorf("shallow mode should default to inlining")
	}
}

func TestIPAModeExplicitOverride(t *testing.T) {
	o := New(map[string]string{"ipa": "none"})
	if o.IPAMode() != IPANone {
		t.Errorf("explicit ipa option should override the mode default")
	}
}

func TestMayInlineMethodGatedOnIPAMode(t *testing.T) {
	o := New(map[string]string{"ipa": "basic-inlining", "method-inlining": "all"})
	if o.MayInlineMethod(MethodInlineExported) {
		t.Errorf("method inlining must be off below full inlining")
	}
}

func TestMayInlineMethodOrdering(t *testing.T) {
	o := New(nil) // deep mode, default "exported"
	if !o.MayInlineMethod(MethodInlineExported) {
		t.Errorf("default should permit exported method inlining")
	}
	if o.MayInlineMethod(MethodInlineAll) {
		t.Errorf("default should not permit inlining all methods")
	}
	all := New(map[string]string{"method-inlining": "all"})
	if !all.MayInlineMethod(MethodInlineAll) {
		t.Errorf("method-inlining=all should permit every kind")
	}
}

func TestModeDefaultTablesCoverAllModes(t *testing.T) {
	// Go has no exhaustiveness checking over enum constants; keep the
	// per-mode default tables honest here instead.
	for _, mode := range []UserModeKind{UserModeShallow, UserModeDeep} {
		if _, ok := ipaModeDefaults[mode]; !ok {
			t.Errorf("ipaModeDefaults misses mode %d", mode)
		}
		if _, ok := maxInlinableSizeDefaults[mode]; !ok {
			t.Errorf("maxInlinableSizeDefaults misses mode %d", mode)
		}
		if _, ok := maxNodesDefaults[mode]; !ok {
			t.Errorf("maxNodesDefaults misses mode %d", mode)
		}
	}
	for mode, text := range ipaModeDefaults {
		if _, ok := ipaKindNames[text]; !ok {
			t.Errorf("ipaModeDefaults value %q for mode %d is not a valid ipa kind", text, mode)
		}
	}
}
