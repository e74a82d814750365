package filterargv

import (
	"os"
)

// Source returns the arguments to filter
type Source func() []string

// CommandLine is the source used by the package *CommandLine functions.
// It returns os.Args without the program name, following the stdlib flag.Parse() convention.
var CommandLine Source = func() []string {
	if len(os.Args) == 0 {
		return nil
	}
	return os.Args[1:]
}

// FilterCommandLine filters the arguments provided by CommandLine.
// See Filter
func FilterCommandLine(opts Options) ([]string, error) {
	return Filter(CommandLine(), opts)
}

// AssignmentArgsOnlyCommandLine returns assignment arguments provided by CommandLine.
// See AssignmentArgsOnly
func AssignmentArgsOnlyCommandLine() []string {
	return AssignmentArgsOnly(CommandLine())
}

// FlagArgsOnlyCommandLine returns flag arguments provided by CommandLine.
// See FlagArgsOnly
func FlagArgsOnlyCommandLine() []string {
	return FlagArgsOnly(CommandLine())
}
