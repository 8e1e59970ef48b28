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
	"strings"

	"github.com/consensys/go-forms/pkg/token"
	"github.com/consensys/go-forms/pkg/util/source"
	"github.com/consensys/go-forms/pkg/util/termio"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [flags] source_file...",
	Short: "Print the tokens of one or more source files.",
	Long: `Print the tokens of one or more source files.
	Each token is listed with its location and kind, either as a table or
	as YAML.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg tokensConfig
		//
		cfg.format = getFormat(cmd, config)
		cfg.comments = getSetting(cmd, "comments", config.Comments)
		cfg.colour = config.ColourMode().Enabled(os.Stdout)
		//
		files := readSourceFiles(cmd, args)
		//
		if code := runTokens(os.Stdout, files, cfg); code != 0 {
			os.Exit(code)
		}
	},
}

// tokens config encapsulates the parameters used when listing tokens.
type tokensConfig struct {
	// Output format
	format string
	// Whether or not to include comment tokens
	comments bool
	// Whether or not to colour the output
	colour bool
}

// tokenListing is the serialised form of the tokens in a given file.
type tokenListing struct {
	File   string        `yaml:"file"`
	Tokens []token.Token `yaml:"tokens"`
}

// List the tokens of every file, stopping at the first file with an error.
// This returns the exit code.
func runTokens(out io.Writer, files []source.File, cfg tokensConfig) int {
	var listings []tokenListing
	//
	for i := range files {
		file := &files[i]
		//
		tokens, err := tokenizeFile(file)
		if err != nil {
			printSourceError(out, file, err, cfg.colour)
			return EXIT_SOURCE
		}
		//
		if !cfg.comments {
			tokens = withoutComments(tokens)
		}
		//
		listings = append(listings, tokenListing{file.Filename(), tokens})
	}
	//
	if cfg.format == FORMAT_YAML {
		return writeYaml(out, listings)
	}
	//
	for _, listing := range listings {
		if err := tokenTable(listing.Tokens, cfg.colour).Print(out); err != nil {
			fmt.Fprintln(out, err)
			return EXIT_IO
		}
	}
	//
	return 0
}

// Construct a table of tokens, with one row per token.
func tokenTable(tokens token.Tokens, colour bool) *termio.TablePrinter {
	table := termio.NewTablePrinter(3)
	table.AnsiEscapes(colour)
	//
	for _, t := range tokens {
		// Comments include their terminating newline
		text := strings.TrimRight(t.Text, "\r\n")
		row := table.AddRow(t.Loc.String(), t.Kind.String(), text)
		table.SetEscape(1, row, kindEscape(t.Kind))
	}
	// Avoid excessively long lines for long comments and strings
	table.SetMaxWidth(2, 72)
	//
	return table
}

// Determine the colour used to show a given kind of token.
func kindEscape(kind token.Kind) termio.AnsiEscape {
	escape := termio.NewAnsiEscape()
	//
	switch {
	case kind.IsComment():
		return escape.FgColour(termio.TERM_GREEN)
	case kind == token.KEYWORD:
		return escape.Bold().FgColour(termio.TERM_BLUE)
	case kind.IsLiteral() || kind == token.EMPTY_LITERAL:
		return escape.FgColour(termio.TERM_MAGENTA)
	case kind.IsSymbol():
		return escape.FgColour(termio.TERM_CYAN)
	default:
		return escape
	}
}

func withoutComments(tokens token.Tokens) token.Tokens {
	var result token.Tokens
	//
	for _, t := range tokens {
		if !t.Kind.IsComment() {
			result = append(result, t)
		}
	}
	//
	return result
}

// Write a given value as YAML, returning the exit code.
func writeYaml(out io.Writer, value any) int {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	//
	if err := encoder.Encode(value); err != nil {
		fmt.Fprintln(out, err)
		return EXIT_IO
	} else if err := encoder.Close(); err != nil {
		fmt.Fprintln(out, err)
		return EXIT_IO
	}
	//
	return 0
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().String("format", FORMAT_TEXT, "output format (text or yaml)")
	tokensCmd.Flags().Bool("comments", false, "include comments in the listing")
}
