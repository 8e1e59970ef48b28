// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/consensys/go-forms/pkg/util/termio"
)

// CONFIG_ENV names the environment variable consulted for a configuration file
// when none is given on the command line.
const CONFIG_ENV = "FORMS_CONFIG"

// FORMAT_TEXT selects plain text output.
const FORMAT_TEXT = "text"

// FORMAT_YAML selects YAML output.
const FORMAT_YAML = "yaml"

// Config captures the settings which can be given in a configuration file.
// Command-line flags take precedence over these.
type Config struct {
	// Output format ("text" or "yaml").
	Format string `toml:"format"`
	// Whether or not to check the use of parameters after parsing.
	Check bool `toml:"check"`
	// When to colour output ("auto", "always" or "never").
	Colour string `toml:"colour"`
	// Whether or not to retain comments when listing tokens.
	Comments bool `toml:"comments"`
}

// DefaultConfig returns the settings used in the absence of a configuration
// file.
func DefaultConfig() Config {
	return Config{FORMAT_TEXT, true, "auto", false}
}

// LoadConfig reads a configuration file in TOML format.  Settings which are not
// given retain their defaults, whilst unknown settings are rejected.  An empty
// path gives the default configuration.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	//
	if path == "" {
		return cfg, nil
	}
	//
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	} else if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		//
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		//
		return cfg, fmt.Errorf("%s: unknown setting(s) %s", path, strings.Join(keys, ", "))
	}
	//
	return cfg.applyDefaults()
}

// ColourMode returns the colour mode selected by this configuration.
func (p Config) ColourMode() termio.ColourMode {
	// Already validated
	mode, _ := termio.ParseColourMode(p.Colour)
	return mode
}

// Fill in settings left blank, and check the remainder.
func (p Config) applyDefaults() (Config, error) {
	defaults := DefaultConfig()
	//
	if p.Format == "" {
		p.Format = defaults.Format
	}
	//
	if p.Colour == "" {
		p.Colour = defaults.Colour
	}
	//
	if err := checkFormat(p.Format); err != nil {
		return p, err
	} else if _, err := termio.ParseColourMode(p.Colour); err != nil {
		return p, err
	}
	//
	return p, nil
}

func checkFormat(format string) error {
	switch format {
	case FORMAT_TEXT, FORMAT_YAML:
		return nil
	default:
		return fmt.Errorf("unknown output format \"%s\"", format)
	}
}

// Determine the configuration file to use, giving precedence to the command
// line.
func configPath(flag string) string {
	if flag != "" {
		return flag
	}
	//
	return os.Getenv(CONFIG_ENV)
}
