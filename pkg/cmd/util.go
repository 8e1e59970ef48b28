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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-forms/pkg/util/source"
	"github.com/consensys/go-forms/pkg/util/termio"
	"github.com/spf13/cobra"
)

// EXIT_FLAGS is the exit code used when the command line is invalid.
const EXIT_FLAGS = 2

// EXIT_IO is the exit code used when some file cannot be read.
const EXIT_IO = 3

// EXIT_SOURCE is the exit code used when some source file contains an error.
const EXIT_SOURCE = 4

// Get an expected flag, or exit if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_FLAGS)
	}

	return r
}

// Get an expected string flag, or exit if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_FLAGS)
	}

	return r
}

// Get the output format, preferring the command line over the configuration.
func getFormat(cmd *cobra.Command, cfg Config) string {
	format := cfg.Format
	//
	if cmd.Flags().Changed("format") {
		format = getString(cmd, "format")
	}
	//
	if err := checkFormat(format); err != nil {
		fmt.Println(err)
		os.Exit(EXIT_FLAGS)
	}
	//
	return format
}

// Get a boolean setting, preferring the command line over the configuration.
func getSetting(cmd *cobra.Command, flag string, setting bool) bool {
	if cmd.Flags().Changed(flag) {
		return getFlag(cmd, flag)
	}
	//
	return setting
}

// Read a given set of source files, or exit if an error arises.
func readSourceFiles(cmd *cobra.Command, filenames []string) []source.File {
	if len(filenames) == 0 {
		fmt.Println(cmd.UsageString())
		os.Exit(EXIT_FLAGS)
	}
	//
	files, err := source.ReadFiles(filenames...)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_IO)
	}
	//
	return files
}

var highlightEscape = termio.NewAnsiEscape().Bold().FgColour(termio.TERM_RED)

// Print an error arising from a given source file.  Errors carrying a location
// are printed along with the enclosing line, and the offending text
// highlighted.
func printSourceError(out io.Writer, file *source.File, err error, colour bool) {
	var srcErr *source.Error
	//
	if !errors.As(err, &srcErr) {
		fmt.Fprintf(out, "%s: %s\n", file.Filename(), err)
		return
	}
	//
	span := file.SpanOf(srcErr)
	line := file.FindFirstEnclosingLine(span)
	col := max(0, span.Start()-line.Start())
	// Highlight should not extend past the end of the line
	length := max(1, min(span.Length(), line.Length()-col))
	// Print error + line number
	fmt.Fprintf(out, "%s:%d:%d: %s error: %s\n", file.Filename(), line.Number(), col+1,
		srcErr.Kind().String(), srcErr.Message())
	// Print line
	fmt.Fprintln(out, line.String())
	// Print indent, preserving tabs
	fmt.Fprint(out, indentOf(line.String(), col))
	// Print highlight
	fmt.Fprintln(out, highlightEscape.Wrap(strings.Repeat("^", length), colour))
}

// Construct whitespace matching the first n characters of a line, such that
// any tabs are kept.
func indentOf(line string, n int) string {
	var builder strings.Builder
	//
	for i, c := range []rune(line) {
		if i >= n {
			break
		} else if c == '\t' {
			builder.WriteRune('\t')
		} else {
			builder.WriteRune(' ')
		}
	}
	// Account for highlighting beyond the end of the line
	if extra := n - len([]rune(line)); extra > 0 {
		builder.WriteString(strings.Repeat(" ", extra))
	}
	//
	return builder.String()
}
