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
	"io"
	"os"

	"github.com/consensys/go-forms/pkg/form"
	"github.com/consensys/go-forms/pkg/util/source"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] source_file...",
	Short: "Parse one or more source files into typed forms.",
	Long: `Parse one or more source files into typed forms.
	Every top-level form is recognised as a module, a block, a module entry,
	an expression or (failing that) a generic form.  Forms are printed in
	their canonical rendering, or as a YAML outline.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg parseConfig
		//
		cfg.format = getFormat(cmd, config)
		cfg.check = !getSetting(cmd, "no-check", !config.Check)
		cfg.colour = config.ColourMode().Enabled(os.Stdout)
		//
		files := readSourceFiles(cmd, args)
		//
		if code := runParse(os.Stdout, files, cfg); code != 0 {
			os.Exit(code)
		}
	},
}

// parse config encapsulates the parameters used when parsing.
type parseConfig struct {
	// Output format
	format string
	// Whether or not to check the use of parameters
	check bool
	// Whether or not to colour the output
	colour bool
}

// outlineListing is the serialised form of the nodes parsed from a given file.
type outlineListing struct {
	File  string    `yaml:"file"`
	Forms []Outline `yaml:"forms"`
}

// Parse every file, stopping at the first file with an error.  This returns the
// exit code.
func runParse(out io.Writer, files []source.File, cfg parseConfig) int {
	var listings []outlineListing
	//
	for i := range files {
		file := &files[i]
		//
		nodes, ok := parseAndCheck(out, file, cfg.check, cfg.colour)
		if !ok {
			return EXIT_SOURCE
		}
		//
		listing := outlineListing{File: file.Filename()}
		//
		for _, n := range nodes {
			listing.Forms = append(listing.Forms, NewOutline(n))
		}
		//
		listings = append(listings, listing)
		//
		if cfg.format == FORMAT_TEXT {
			for _, n := range nodes {
				fmt.Fprintln(out, n.String())
			}
		}
	}
	//
	if cfg.format == FORMAT_YAML {
		return writeYaml(out, listings)
	}
	//
	return 0
}

// Parse a given file and, optionally, check its use of parameters.  Any errors
// are printed, in which case false is returned.
func parseAndCheck(out io.Writer, file *source.File, check bool, colour bool) ([]form.Node, bool) {
	nodes, err := parseFile(file)
	if err != nil {
		printSourceError(out, file, err, colour)
		return nil, false
	} else if !check {
		return nodes, true
	}
	//
	errs := checkNodes(file.Filename(), nodes)
	//
	for _, err := range errs {
		printSourceError(out, file, err, colour)
	}
	//
	return nodes, len(errs) == 0
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().String("format", FORMAT_TEXT, "output format (text or yaml)")
	parseCmd.Flags().Bool("no-check", false, "do not check the use of parameters")
}
