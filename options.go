package filterargv

import (
	"strings"
)

// Assignments selects which assignment arguments ("name=value", "--name=value") are kept
type Assignments string

const (
	// AssignmentsAll keeps all assignment arguments
	AssignmentsAll Assignments = "all"
	// AssignmentsNone discards all assignment arguments
	AssignmentsNone Assignments = "none"
	// AssignmentsNoFlag keeps "name=value" but discards "--name=value"
	AssignmentsNoFlag Assignments = "noflag"
)

// Normalize returns the canonical Assignments value. Case, dashes and underscores are ignored,
// and one trailing "s" is dropped, so "no-Flags", "noFlag" and "no_flags" all mean AssignmentsNoFlag.
// Empty value means AssignmentsAll.
func (a Assignments) Normalize() (Assignments, error) {
	if a == "" {
		return AssignmentsAll, nil
	}
	switch normalized := Assignments(cleanOptionValue(string(a))); normalized {
	case AssignmentsAll, AssignmentsNone, AssignmentsNoFlag:
		return normalized, nil
	default:
		return "", &OptionsError{Field: "assignments", Value: string(a), Err: ErrInvalidAssignments}
	}
}

var optionValueSeparators = strings.NewReplacer("-", "", "_", "")

func cleanOptionValue(value string) string {
	value = optionValueSeparators.Replace(strings.ToLower(value))
	return strings.TrimSuffix(value, "s")
}

// Options defines which kinds of arguments Filter keeps.
// The zero value is not the default: every omitted bool field means "drop".
// Start from DefaultOptions() and change fields with the With* methods.
type Options struct {
	// KeepLonelyDashes keeps "-", "--" and "---"
	KeepLonelyDashes bool `flag:"keep-lonely-dashes" flagUsage:"keep lonely dashes (-, --, ---)" mapstructure:"keep-lonely-dashes"`
	// Assignments is one of "all", "none", "noflag" (in any spelling accepted by Assignments.Normalize)
	Assignments Assignments `flag:"assignments" flagUsage:"keep assignments: all, none, noflag (name=value but not --name=value)" mapstructure:"assignments"`
	// Flags keeps "-v", "--verbose"
	Flags bool `flag:"flags" flagUsage:"keep flags (-v, --verbose)" mapstructure:"flags"`
	// StandardArgs keeps arguments that are neither flags, assignments nor lonely dashes
	StandardArgs bool `flag:"standard-args" flagUsage:"keep arguments that are neither flags, assignments nor dashes" mapstructure:"standard-args"`
}

// DefaultOptions drops flags and lonely dashes and keeps everything else
func DefaultOptions() Options {
	return Options{
		KeepLonelyDashes: false,
		Assignments:      AssignmentsAll,
		Flags:            false,
		StandardArgs:     true,
	}
}

// AssignmentArgsOnlyOptions keeps "name=value" and "--name=value" arguments only
func AssignmentArgsOnlyOptions() Options {
	return Options{
		KeepLonelyDashes: false,
		Assignments:      AssignmentsAll,
		Flags:            false,
		StandardArgs:     false,
	}
}

// FlagArgsOnlyOptions keeps "-v", "--verbose" arguments only
func FlagArgsOnlyOptions() Options {
	return Options{
		KeepLonelyDashes: false,
		Assignments:      AssignmentsNone,
		Flags:            true,
		StandardArgs:     false,
	}
}

func (opts Options) WithKeepLonelyDashes(keep bool) Options {
	opts.KeepLonelyDashes = keep
	return opts
}

func (opts Options) WithAssignments(assignments Assignments) Options {
	opts.Assignments = assignments
	return opts
}

func (opts Options) WithFlags(keep bool) Options {
	opts.Flags = keep
	return opts
}

func (opts Options) WithStandardArgs(keep bool) Options {
	opts.StandardArgs = keep
	return opts
}

// Normalize validates the options and returns them with canonical Assignments value.
// Returns *OptionsError if Assignments is invalid.
func (opts Options) Normalize() (Options, error) {
	assignments, err := opts.Assignments.Normalize()
	if err != nil {
		return Options{}, err
	}
	opts.Assignments = assignments
	return opts, nil
}
