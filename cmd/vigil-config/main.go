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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vigil-tools/vigil/analysis/checkers"
	"github.com/vigil-tools/vigil/analysis/options"
	"github.com/vigil-tools/vigil/internal/formatutil"
	"gopkg.in/yaml.v3"
)

var (
	optionPath   = flag.String("config", "", "Option file path for the analysis")
	listCheckers = flag.Bool("checkers", false, "List the registered checkers instead of dumping the configuration")
	experimental = flag.Bool("experimental", false, "Include experimental checkers in the listing")
)

const usage = ` Show the effective analyzer configuration, or the registered checkers.
Usage:
    vigil-config [options]
Examples:
% vigil-config -config config.yaml
% vigil-config -checkers -experimental
Options:
`

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *listCheckers {
		printCheckers(*experimental)
		return
	}

	opts := options.New(nil)
	if *optionPath != "" {
		options.SetGlobalOptionFile(*optionPath)
		var err error
		opts, err = options.LoadGlobal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not load option file %q: %v\n", *optionPath, err)
			os.Exit(1)
		}
	}

	logger := options.NewLogGroup(opts)
	logger.Debugf("loaded %d option entries", len(opts.Effective()))

	queryAll(opts)
	b, err := yaml.Marshal(opts.Effective())
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not marshal configuration: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s[config]\n%s", formatutil.Faint("---\n"), b)
}

func printCheckers(experimental bool) {
	for _, name := range checkers.Names(experimental) {
		if checkers.IsExperimental(name) {
			fmt.Printf("  %s %s\n", formatutil.Yellow(name), formatutil.Faint("(experimental)"))
		} else {
			fmt.Printf("  %s\n", formatutil.Green(name))
		}
	}
}

// queryAll touches every typed accessor so the effective configuration lists
// each option with its default.
func queryAll(o *options.AnalyzerOptions) {
	o.UserMode()
	o.ExplorationStrategy()
	o.IPAMode()
	o.MayInlineMethod(options.MethodInlineExported)
	o.ShouldSynthesizeBodies()
	o.ShouldPrunePaths()
	o.ShouldInlineClosures()
	o.ShouldWidenLoops()
	o.ShouldUnrollLoops()
	o.ShouldDisplayNotesAsEvents()
	o.ShouldEagerlyAssume()
	o.ShouldAggressivelySimplifyBinaryOperation()
	o.MayInlineStdlib()
	o.MayInlineGenerics()
	o.ShouldSuppressNilReturnPaths()
	o.ShouldAvoidSuppressingNilArgumentPaths()
	o.ShouldSuppressInlinedDefensiveChecks()
	o.ShouldSuppressFromStdlib()
	o.ShouldCrosscheckWithSolver()
	o.ShouldReportInMainPackageOnly()
	o.ShouldWriteStableReportFilename()
	o.ShouldSerializeStats()
	o.IncludeDeferEdgesInCFG()
	o.IncludePanicEdgesInCFG()
	o.IncludeScopesInCFG()
	o.ShouldConditionalizeStaticInitializers()
	o.AlwaysInlineSize()
	o.MaxInlinableSize()
	o.GraphTrimInterval()
	o.MaxSymbolComplexity()
	o.MaxTimesInlineLarge()
	o.MinCFGSizeTreatFunctionsAsLarge()
	o.MaxNodesPerTopLevelFunction()
	o.LogLevel()
	o.CrossModuleDir()
	o.CrossModuleIndexName()
	o.NaiveCrossModuleEnabled()
}
