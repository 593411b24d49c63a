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
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// The global option file
	optionFile string
)

// SetGlobalOptionFile sets the global option filename.
func SetGlobalOptionFile(filename string) {
	optionFile = filename
}

// LoadGlobal loads the option file that has been set by SetGlobalOptionFile.
func LoadGlobal() (*AnalyzerOptions, error) {
	return Load(optionFile)
}

// optionFileFormat is the on-disk shape of an option file. Checker sections
// are flattened into scoped "name:option" keys after parsing.
type optionFileFormat struct {
	Options  map[string]string            `yaml:"options"`
	Checkers map[string]map[string]string `yaml:"checkers"`
}

// Load reads an analyzer option table from a yaml (or json) file.
func Load(filename string) (*AnalyzerOptions, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("could not read option file: %w", err)
	}
	return parse(b)
}

func parse(b []byte) (*AnalyzerOptions, error) {
	var raw optionFileFormat
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("could not unmarshal option file: %w", err)
	}
	table := make(map[string]string, len(raw.Options))
	for k, v := range raw.Options {
		if k == "" {
			return nil, fmt.Errorf("option file contains an empty option name")
		}
		table[k] = v
	}
	for name, opts := range raw.Checkers {
		if name == "" || strings.Contains(name, ":") {
			return nil, fmt.Errorf("invalid checker name %q in option file", name)
		}
		for k, v := range opts {
			if k == "" {
				return nil, fmt.Errorf("checker %q has an empty option name", name)
			}
			table[name+":"+k] = v
		}
	}
	return New(table), nil
}
