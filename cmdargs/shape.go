package cmdargs

import (
	"regexp"
	"strings"
)

// lineChar is any character except line terminators (\n, \r, U+2028, U+2029).
// Flag names and inline values can't span lines.
const lineChar = `[^\n\r\x{2028}\x{2029}]`

// A flag name starts with one or more of [A-Za-z0-9_] and may be wrapped in
// matching single or double quotes.
const assignmentFlagPattern = `^--?(` +
	`([a-zA-Z0-9_]+` + lineChar + `*)|` +
	`("[a-zA-Z0-9_]+` + lineChar + `*")|` +
	`('[a-zA-Z0-9_]+` + lineChar + `*')` +
	`)=` + lineChar + `+$`

// The patterns are not mutually exclusive, Classify ranks them.
var (
	standaloneDashesRe   = regexp.MustCompile(`^--?-?$`)
	assignmentFlagRe     = regexp.MustCompile(assignmentFlagPattern)
	dashesThenFlagNameRe = regexp.MustCompile(`^--?[a-zA-Z0-9_]+`)
)

// IsStandaloneDashes reports whether arg consists of 1 to 3 dashes only
func IsStandaloneDashes(arg string) bool {
	return standaloneDashesRe.MatchString(arg)
}

// IsAssignmentFlagArg reports whether arg is a flag with an inline value:
// one or two dashes, a flag name (bare, "double-quoted" or 'single-quoted'), "=" and at least one more character.
// Quotes around the name must match: `--'name"=value` is not an assignment flag.
func IsAssignmentFlagArg(arg string) bool {
	return assignmentFlagRe.MatchString(arg)
}

// IsAnyAssignmentArg reports whether arg contains "=" anywhere
func IsAnyAssignmentArg(arg string) bool {
	return strings.Contains(arg, "=")
}

// StartsWithDashesThenName reports whether arg starts with one or two dashes followed by
// at least one [A-Za-z0-9_] character
func StartsWithDashesThenName(arg string) bool {
	return dashesThenFlagNameRe.MatchString(arg)
}

// StartsWithDash reports whether the first character of arg is a dash
func StartsWithDash(arg string) bool {
	return strings.HasPrefix(arg, "-")
}
