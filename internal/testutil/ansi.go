// Package testutil provides shared testing utilities used across the project.
package testutil

import "regexp"

// ansiRegex matches ANSI Control Sequence Introducer sequences, which start
// with ESC [ and end with a letter.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripAnsiCodes removes ANSI escape codes from a string, so CLI output can
// be asserted on without color codes interfering.
//
// Parameters:
//   - s: The string potentially containing ANSI escape codes.
//
// Returns:
//   - string: The input string with all ANSI escape codes removed.
func StripAnsiCodes(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}
