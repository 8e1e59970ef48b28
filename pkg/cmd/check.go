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

	"github.com/consensys/go-forms/pkg/util/source"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] source_file...",
	Short: "Check one or more source files for errors.",
	Long: `Check one or more source files for errors.
	Every file is parsed and the parameters of every function are checked for
	linear use.  All files are checked, even if some contain errors.`,
	Run: func(cmd *cobra.Command, args []string) {
		colour := config.ColourMode().Enabled(os.Stdout)
		quiet := getFlag(cmd, "quiet")
		files := readSourceFiles(cmd, args)
		//
		if code := runCheck(os.Stdout, files, quiet, colour); code != 0 {
			os.Exit(code)
		}
	},
}

// Check every file, returning the exit code.
func runCheck(out io.Writer, files []source.File, quiet bool, colour bool) int {
	failures := 0
	//
	for i := range files {
		file := &files[i]
		//
		if _, ok := parseAndCheck(out, file, true, colour); !ok {
			failures++
		} else if !quiet {
			fmt.Fprintf(out, "%s: ok\n", file.Filename())
		}
	}
	//
	if failures > 0 {
		if !quiet {
			fmt.Fprintf(out, "%d of %d file(s) failed\n", failures, len(files))
		}
		//
		return EXIT_SOURCE
	}
	//
	return 0
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolP("quiet", "q", false, "only report errors")
}
